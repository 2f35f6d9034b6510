package seed

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/emilianohg/daylog/internal/models"
)

// File is the layout of a seed file:
//
//	[[entry]]
//	date = "2026-02-27"
//	start = "09:00"
//	end = "17:30"
//	category = "Work"
//	description = "release"
//	has_phone = true
type File struct {
	Entries []models.EntryDraft `toml:"entry"`
}

// LoadFile decodes the drafts in path. Unknown keys are an error so typos do
// not silently drop data.
func LoadFile(path string) ([]models.EntryDraft, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode %s: unknown key %s", path, undecoded[0])
	}
	return f.Entries, nil
}

// Adder is satisfied by *tracker.Tracker.
type Adder interface {
	Add(models.EntryDraft) (*models.Entry, error)
}

// Apply appends every draft in order and stops at the first rejected one.
func Apply(a Adder, drafts []models.EntryDraft) (int, error) {
	for i, d := range drafts {
		if _, err := a.Add(d); err != nil {
			return i, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return len(drafts), nil
}
