package repository

import (
	"database/sql"

	"github.com/emilianohg/daylog/internal/models"
)

const entryColumns = `id, entry_date, start_time, end_time, category, description,
	has_phone, has_tv_on, duration_minutes, duration, created_at`

// EntryRepo is an append-only store of entries. Reads return entries in the
// order they were created.
type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

func (r *EntryRepo) Create(e models.Entry) (*models.Entry, error) {
	result, err := r.db.Exec(`
		INSERT INTO entries (entry_date, start_time, end_time, category, description,
			has_phone, has_tv_on, duration_minutes, duration)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.Date, e.StartTime, e.EndTime, e.Category, e.Description,
		e.HasPhone, e.HasTVOn, e.DurationMinutes, e.Duration)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *EntryRepo) GetByID(id int64) (*models.Entry, error) {
	row := r.db.QueryRow("SELECT "+entryColumns+" FROM entries WHERE id = ?", id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EntryRepo) GetAll() ([]models.Entry, error) {
	rows, err := r.db.Query("SELECT " + entryColumns + " FROM entries ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *EntryRepo) GetByDate(date string) ([]models.Entry, error) {
	rows, err := r.db.Query("SELECT "+entryColumns+" FROM entries WHERE entry_date = ? ORDER BY id", date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *EntryRepo) Count() (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	return n, err
}

// Categories returns each distinct category once, in first-use order.
func (r *EntryRepo) Categories() ([]string, error) {
	rows, err := r.db.Query(`
		SELECT category
		FROM entries
		GROUP BY category
		ORDER BY MIN(id)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.Entry, error) {
	var e models.Entry
	if err := s.Scan(
		&e.ID, &e.Date, &e.StartTime, &e.EndTime, &e.Category, &e.Description,
		&e.HasPhone, &e.HasTVOn, &e.DurationMinutes, &e.Duration, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]models.Entry, error) {
	entries := []models.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}
