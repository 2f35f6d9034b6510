package timecalc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/emilianohg/daylog/internal/models"
	"github.com/emilianohg/daylog/internal/timecalc"
)

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       timecalc.Duration
	}{
		{"09:00", "17:30", timecalc.Duration{Hours: 8, Minutes: 30, TotalMinutes: 510}},
		{"00:00", "23:59", timecalc.Duration{Hours: 23, Minutes: 59, TotalMinutes: 1439}},
		{"12:15", "12:15", timecalc.Duration{}},
		{"07:45", "08:10", timecalc.Duration{Hours: 0, Minutes: 25, TotalMinutes: 25}},
		{"10:00:00", "10:01:59", timecalc.Duration{Hours: 0, Minutes: 1, TotalMinutes: 1}},
	}
	for _, tt := range tests {
		got, err := timecalc.ComputeDuration(tt.start, tt.end)
		if err != nil {
			t.Fatalf("ComputeDuration(%q, %q): %v", tt.start, tt.end, err)
		}
		if got != tt.want {
			t.Errorf("ComputeDuration(%q, %q) = %+v, want %+v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestComputeDurationRejectsEndBeforeStart(t *testing.T) {
	_, err := timecalc.ComputeDuration("23:00", "01:00")
	if !errors.Is(err, models.ErrEndBeforeStart) {
		t.Fatalf("err = %v, want ErrEndBeforeStart", err)
	}
	var verr *models.ValidationError
	if !errors.As(err, &verr) || verr.Field != "end" {
		t.Errorf("err = %#v, want ValidationError on end", err)
	}
}

func TestComputeDurationInvalidTime(t *testing.T) {
	tests := []struct {
		start, end, field string
	}{
		{"", "10:00", "start"},
		{"25:00", "10:00", "start"},
		{"09:00", "noon", "end"},
	}
	for _, tt := range tests {
		_, err := timecalc.ComputeDuration(tt.start, tt.end)
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ComputeDuration(%q, %q) err = %v, want ValidationError", tt.start, tt.end, err)
		}
		if verr.Field != tt.field || !errors.Is(err, models.ErrInvalidTime) {
			t.Errorf("ComputeDuration(%q, %q) err = %v, want invalid %s", tt.start, tt.end, err, tt.field)
		}
	}
}

// Every start <= end pair on a 15 minute grid must round-trip through the
// "{h}h {m}m" form.
func TestComputeDurationConsistency(t *testing.T) {
	for s := 0; s < 24*60; s += 15 {
		for e := s; e < 24*60; e += 15 {
			start := fmt.Sprintf("%02d:%02d", s/60, s%60)
			end := fmt.Sprintf("%02d:%02d", e/60, e%60)
			d, err := timecalc.ComputeDuration(start, end)
			if err != nil {
				t.Fatalf("ComputeDuration(%q, %q): %v", start, end, err)
			}
			if d.TotalMinutes < 0 || d.TotalMinutes != 60*d.Hours+d.Minutes || d.TotalMinutes != e-s {
				t.Fatalf("ComputeDuration(%q, %q) = %+v", start, end, d)
			}
			var h, m int
			if _, err := fmt.Sscanf(d.String(), "%dh %dm", &h, &m); err != nil || 60*h+m != d.TotalMinutes {
				t.Fatalf("String() = %q does not match %d minutes", d.String(), d.TotalMinutes)
			}
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "0h 0m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{650, "10h 50m"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatMinutes(tt.total); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := timecalc.ParseDate("2026-02-27"); err != nil {
		t.Errorf("ParseDate valid: %v", err)
	}
	for _, s := range []string{"", "27/02/2026", "2026-13-01"} {
		if _, err := timecalc.ParseDate(s); !errors.Is(err, models.ErrInvalidDate) {
			t.Errorf("ParseDate(%q) err = %v, want ErrInvalidDate", s, err)
		}
	}
}
