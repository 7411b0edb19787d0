package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikmy/meowcal/internal/repo/models"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS selections (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   INTEGER NOT NULL,
	widget    TEXT    NOT NULL,
	year      INTEGER NOT NULL,
	month     INTEGER NOT NULL,
	day       INTEGER NOT NULL,
	picked_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS selections_user_picked_at ON selections(user_id, picked_at DESC);
`

func newSQLite(ctx context.Context, cfg SQLiteConfig, log logger.Logger) (*sqliteRepo, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	busy := cfg.BusyTimeout
	if busy == 0 {
		busy = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, busy.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapFail(err, "open sqlite db")
	}

	// a second connection to ":memory:" would see an empty database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	_, err = db.ExecContext(ctx, sqliteSchema)
	if err != nil {
		_ = db.Close()
		return nil, errors.WrapFail(err, "migrate sqlite schema")
	}

	return &sqliteRepo{
		db:  db,
		log: log.With("sqlite_repo"),
	}, nil
}

type sqliteRepo struct {
	db  *sql.DB
	log logger.Logger
}

func (r *sqliteRepo) Save(ctx context.Context, s models.Selection) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO selections (user_id, widget, year, month, day, picked_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.UserID, s.WidgetID, s.Date.Year, s.Date.Month, s.Date.Day, s.PickedAt.UnixMilli(),
	)
	return errors.WrapFail(err, "insert selection")
}

func (r *sqliteRepo) Last(ctx context.Context, userID int64) (*models.Selection, error) {
	selected, err := r.List(ctx, userID, Limit(1))
	if err != nil {
		return nil, err
	}

	if len(selected) == 0 {
		return nil, nil
	}
	return &selected[0], nil
}

func (r *sqliteRepo) List(ctx context.Context, userID int64, filters ...Filter) ([]models.Selection, error) {
	f := applyFilters(filters)

	where := []string{"user_id = ?"}
	args := []any{userID}

	if f.widget != nil {
		where = append(where, "widget = ?")
		args = append(args, *f.widget)
	}
	if f.year != nil {
		where = append(where, "year = ?")
		args = append(args, *f.year)
	}
	args = append(args, f.limit)

	q := `SELECT user_id, widget, year, month, day, picked_at FROM selections WHERE ` +
		strings.Join(where, " AND ") +
		` ORDER BY picked_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.WrapFail(err, "query selections")
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.log.Warn(errors.WrapFail(err, "close rows"))
		}
	}()

	var selected []models.Selection
	for rows.Next() {
		var (
			s        models.Selection
			d        calendar.Date
			pickedAt int64
		)

		err := rows.Scan(&s.UserID, &s.WidgetID, &d.Year, &d.Month, &d.Day, &pickedAt)
		if err != nil {
			return nil, errors.WrapFail(err, "scan selection")
		}

		s.Date = d
		s.PickedAt = time.UnixMilli(pickedAt).UTC()
		selected = append(selected, s)
	}

	return selected, errors.WrapFail(rows.Err(), "iterate selections")
}

func (r *sqliteRepo) Close(context.Context) error {
	return errors.WrapFail(r.db.Close(), "close sqlite db")
}
