package repo

import (
	"context"

	"github.com/nikmy/meowcal/internal/repo/models"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

// SelectionsRepo keeps every date a user picked, newest first on read.
type SelectionsRepo interface {
	Save(ctx context.Context, s models.Selection) error
	Last(ctx context.Context, userID int64) (*models.Selection, error)
	List(ctx context.Context, userID int64, filters ...Filter) ([]models.Selection, error)

	Close(ctx context.Context) error
}

func New(ctx context.Context, log logger.Logger, cfg Config) (SelectionsRepo, error) {
	switch cfg.Driver {
	case DriverMongo:
		r, err := newMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, errors.WrapFail(err, "init mongo selections repo")
		}
		return r, nil
	case DriverSQLite, "":
		r, err := newSQLite(ctx, cfg.SQLite, log)
		if err != nil {
			return nil, errors.WrapFail(err, "init sqlite selections repo")
		}
		return r, nil
	default:
		return nil, errors.Errorf("unknown selections driver %q", cfg.Driver)
	}
}
