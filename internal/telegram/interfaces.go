package telegram

import (
	"github.com/nikmy/meowcal/internal/repo"
)

type selectionsRepo interface {
	repo.SelectionsRepo
}
