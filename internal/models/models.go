package models

import (
	"errors"
	"fmt"
	"time"
)

// Entry is one logged activity interval. Entries are never edited once stored.
type Entry struct {
	ID              int64
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	Category        string
	Description     string
	HasPhone        bool
	HasTVOn         bool
	DurationMinutes int
	Duration        string // "{h}h {m}m"
	CreatedAt       time.Time
}

// EntryDraft is what the input form (or a seed file) submits before the
// duration has been computed.
type EntryDraft struct {
	Date        string `toml:"date"`
	StartTime   string `toml:"start"`
	EndTime     string `toml:"end"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
	HasPhone    bool   `toml:"has_phone"`
	HasTVOn     bool   `toml:"has_tv_on"`
}

type CategoryAggregate struct {
	Category        string `json:"category"`
	TotalMinutes    int    `json:"total_minutes"`
	PercentageOfDay string `json:"percentage_of_day"` // one decimal, e.g. "45.1"
}

type Analysis struct {
	Categories []CategoryAggregate `json:"analysis"`
	Insights   []string            `json:"insights"`
}

var (
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime    = errors.New("invalid time, expected HH:MM")
	ErrEndBeforeStart = errors.New("end time is before start time")
	ErrEmptyCategory  = errors.New("category is required")
)

// ValidationError ties one of the sentinel errors above to the field that
// failed.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
