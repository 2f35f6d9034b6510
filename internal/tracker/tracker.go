package tracker

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/emilianohg/daylog/internal/analysis"
	"github.com/emilianohg/daylog/internal/log"
	"github.com/emilianohg/daylog/internal/models"
	"github.com/emilianohg/daylog/internal/repository"
	"github.com/emilianohg/daylog/internal/timecalc"
)

// Tracker validates submitted entries, appends them to the store and runs the
// aggregation over the current contents.
type Tracker struct {
	entries *repository.EntryRepo
	logger  *log.Logger
}

func New(db *sql.DB, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Discard()
	}
	return &Tracker{
		entries: repository.NewEntryRepo(db),
		logger:  logger.WithComponent(log.ComponentTracker),
	}
}

// Validate checks a draft and returns its duration.
func Validate(d models.EntryDraft) (timecalc.Duration, error) {
	if _, err := timecalc.ParseDate(d.Date); err != nil {
		return timecalc.Duration{}, &models.ValidationError{Field: "date", Err: err}
	}
	if strings.TrimSpace(d.Category) == "" {
		return timecalc.Duration{}, &models.ValidationError{Field: "category", Err: models.ErrEmptyCategory}
	}
	return timecalc.ComputeDuration(d.StartTime, d.EndTime)
}

// Add validates the draft, computes its duration and appends it.
func (t *Tracker) Add(d models.EntryDraft) (*models.Entry, error) {
	duration, err := Validate(d)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			t.logger.Warn("entry rejected",
				log.FieldOperation, log.OpValidate,
				log.FieldErrorType, log.ErrorTypeValidation,
				"field", verr.Field,
				log.FieldError, verr.Err)
		}
		return nil, err
	}

	entry, err := t.entries.Create(models.Entry{
		Date:            d.Date,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Category:        strings.TrimSpace(d.Category),
		Description:     strings.TrimSpace(d.Description),
		HasPhone:        d.HasPhone,
		HasTVOn:         d.HasTVOn,
		DurationMinutes: duration.TotalMinutes,
		Duration:        duration.String(),
	})
	if err != nil {
		t.logger.Error("append entry failed",
			log.FieldOperation, log.OpAppend,
			log.FieldErrorType, log.ErrorTypeDatabase,
			log.FieldError, err)
		return nil, err
	}

	t.logger.Info("entry appended",
		log.FieldOperation, log.OpAppend,
		log.FieldEntryID, entry.ID,
		log.FieldDate, entry.Date,
		log.FieldCategory, entry.Category,
		log.FieldDurationMinutes, entry.DurationMinutes)
	return entry, nil
}

// Entries returns every stored entry in submission order.
func (t *Tracker) Entries() ([]models.Entry, error) {
	return t.entries.GetAll()
}

// EntriesOn returns the entries logged for one date.
func (t *Tracker) EntriesOn(date string) ([]models.Entry, error) {
	if _, err := timecalc.ParseDate(date); err != nil {
		return nil, &models.ValidationError{Field: "date", Err: err}
	}
	entries, err := t.entries.GetByDate(date)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("daily entries loaded",
		log.FieldOperation, log.OpList,
		log.FieldDate, date,
		log.FieldCount, len(entries))
	return entries, nil
}

// Count returns how many entries the store holds.
func (t *Tracker) Count() (int, error) {
	return t.entries.Count()
}

// Categories lists categories already used, in first-use order.
func (t *Tracker) Categories() ([]string, error) {
	return t.entries.Categories()
}

// Analyze aggregates a snapshot of the whole store.
func (t *Tracker) Analyze() (models.Analysis, error) {
	entries, err := t.entries.GetAll()
	if err != nil {
		return models.Analysis{}, err
	}
	result := analysis.Aggregate(entries)
	t.logger.Debug("analysis computed",
		log.FieldOperation, log.OpAnalyze,
		log.FieldCount, len(entries),
		"categories", len(result.Categories),
		"insights", len(result.Insights))
	return result, nil
}
