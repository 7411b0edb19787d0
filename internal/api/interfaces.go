package api

import (
	"context"

	"github.com/nikmy/meowcal/internal/repo"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type selectionsRepo interface {
	repo.SelectionsRepo
}
