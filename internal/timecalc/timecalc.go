package timecalc

import (
	"fmt"
	"time"

	"github.com/emilianohg/daylog/internal/models"
)

var clockLayouts = []string{"15:04", "15:04:05"}

// Duration is the length of an entry split into whole hours and minutes.
type Duration struct {
	Hours        int
	Minutes      int
	TotalMinutes int
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}

// ParseClock parses a 24-hour time of day. Seconds are accepted but the
// result is anchored to the zero date so two clocks can be subtracted.
func ParseClock(s string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, models.ErrInvalidTime
}

// ComputeDuration returns the whole minutes between start and end on the same
// day. Partial minutes are floored. An end before start is rejected; entries
// crossing midnight are not supported.
func ComputeDuration(start, end string) (Duration, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Duration{}, &models.ValidationError{Field: "start", Err: err}
	}
	e, err := ParseClock(end)
	if err != nil {
		return Duration{}, &models.ValidationError{Field: "end", Err: err}
	}
	if e.Before(s) {
		return Duration{}, &models.ValidationError{Field: "end", Err: models.ErrEndBeforeStart}
	}

	total := int(e.Sub(s) / time.Minute)
	return Duration{
		Hours:        total / 60,
		Minutes:      total % 60,
		TotalMinutes: total,
	}, nil
}

// FormatMinutes formats a minute count the same way Duration.String does.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// ParseDate checks a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, models.ErrInvalidDate
	}
	return t, nil
}

// Today returns the local date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}
