package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emilianohg/daylog/internal/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[[entry]]
date = "2026-02-27"
start = "09:00"
end = "17:30"
category = "Work"
description = "release"
has_phone = true

[[entry]]
date = "2026-02-27"
start = "18:00"
end = "19:00"
category = "Family"
has_tv_on = true
`)

	drafts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}
	want := models.EntryDraft{
		Date: "2026-02-27", StartTime: "09:00", EndTime: "17:30",
		Category: "Work", Description: "release", HasPhone: true,
	}
	if drafts[0] != want {
		t.Errorf("drafts[0] = %+v, want %+v", drafts[0], want)
	}
	if !drafts[1].HasTVOn || drafts[1].HasPhone {
		t.Errorf("drafts[1] flags = %+v", drafts[1])
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	path := writeFile(t, `
[[entry]]
date = "2026-02-27"
strat = "09:00"
`)
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "strat") {
		t.Fatalf("LoadFile err = %v, want unknown key error", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("LoadFile on missing file succeeded")
	}
}

type recorder struct {
	added  []models.EntryDraft
	failAt int
}

func (r *recorder) Add(d models.EntryDraft) (*models.Entry, error) {
	if len(r.added) == r.failAt {
		return nil, models.ErrEmptyCategory
	}
	r.added = append(r.added, d)
	return &models.Entry{Category: d.Category}, nil
}

func TestApplyStopsAtFirstError(t *testing.T) {
	drafts := []models.EntryDraft{{Category: "a"}, {Category: "b"}, {Category: "c"}}

	r := &recorder{failAt: 1}
	n, err := Apply(r, drafts)
	if n != 1 || !errors.Is(err, models.ErrEmptyCategory) {
		t.Fatalf("Apply = %d, %v", n, err)
	}
	if !strings.Contains(err.Error(), "entry 2") {
		t.Errorf("error %q does not name the entry", err)
	}

	r = &recorder{failAt: -1}
	if n, err := Apply(r, drafts); n != 3 || err != nil {
		t.Errorf("Apply = %d, %v; want 3, nil", n, err)
	}
}
