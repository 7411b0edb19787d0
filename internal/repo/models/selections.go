package models

import (
	"time"

	"github.com/nikmy/meowcal/pkg/calendar"
)

// Selection is a date picked through a calendar widget.
type Selection struct {
	UserID   int64         `json:"user" bson:"user"`
	WidgetID string        `json:"widget" bson:"widget"`
	Date     calendar.Date `json:"date" bson:"date"`
	PickedAt time.Time     `json:"pickedAt" bson:"pickedAt"`
}

const (
	SelectionFieldUser     = "user"
	SelectionFieldWidget   = "widget"
	SelectionFieldYear     = "date.year"
	SelectionFieldPickedAt = "pickedAt"
)
