package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/seedpass/internal/domain/model"
	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PasswordStore = (*PasswordRepo)(nil)

// sortColumns maps each SortColumn to the literal column reference used in
// ORDER BY. Nothing outside this table is ever written into query text.
var sortColumns = map[model.SortColumn]string{
	model.SortBySeedText:  "seed_text",
	model.SortByCreatedAt: "created_at",
}

// PasswordRepo is the SQLite implementation of the PasswordStore port interface.
type PasswordRepo struct {
	db  *DB
	now func() time.Time
}

// NewPasswordRepo creates a new PasswordRepo backed by the given DB.
func NewPasswordRepo(db *DB) *PasswordRepo {
	return &PasswordRepo{db: db, now: time.Now}
}

// Upsert writes the password for seedText stamped with the current local
// time at second precision, replacing any existing record for the seed.
func (r *PasswordRepo) Upsert(ctx context.Context, seedText, password string) (model.PasswordRecord, error) {
	createdAt := r.now().Local().Truncate(time.Second)

	const query = `INSERT OR REPLACE INTO passwords (seed_text, password, created_at) VALUES (?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query, seedText, password, createdAt.Format(model.TimestampLayout))
	if err != nil {
		return model.PasswordRecord{}, fmt.Errorf("upsert password %q: %w: %w", seedText, driven.ErrStorageUnavailable, err)
	}

	return model.PasswordRecord{
		SeedText:  seedText,
		Password:  password,
		CreatedAt: createdAt,
	}, nil
}

// List returns every record whose seed text contains q.Search (case-sensitive
// substring; empty matches all), ordered by q.OrderBy then seed_text.
func (r *PasswordRepo) List(ctx context.Context, q model.ListQuery) ([]model.PasswordRecord, error) {
	column, ok := sortColumns[q.OrderBy]
	if !ok {
		return nil, fmt.Errorf("list passwords: %w: %q", model.ErrInvalidSortColumn, q.OrderBy)
	}
	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}

	var b strings.Builder
	var args []any
	b.WriteString(`SELECT seed_text, password, created_at FROM passwords`)
	if q.Search != "" {
		b.WriteString(` WHERE instr(seed_text, ?) > 0`)
		args = append(args, q.Search)
	}
	b.WriteString(` ORDER BY `)
	b.WriteString(column)
	b.WriteString(` `)
	b.WriteString(direction)
	if column != "seed_text" {
		b.WriteString(`, seed_text ASC`)
	}

	rows, err := r.db.Reader.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list passwords: %w: %w", driven.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	result := []model.PasswordRecord{}
	for rows.Next() {
		rec, err := scanPassword(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passwords: %w: %w", driven.ErrStorageUnavailable, err)
	}
	return result, nil
}

// Get returns the record for seedText, or (nil, nil) if none exists.
func (r *PasswordRepo) Get(ctx context.Context, seedText string) (*model.PasswordRecord, error) {
	const query = `SELECT seed_text, password, created_at FROM passwords WHERE seed_text = ?`

	rec, err := scanPassword(r.db.Reader.QueryRowContext(ctx, query, seedText))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPassword(s scanner) (model.PasswordRecord, error) {
	var rec model.PasswordRecord
	var createdAt string
	if err := s.Scan(&rec.SeedText, &rec.Password, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scan password: %w: %w", driven.ErrStorageUnavailable, err)
	}

	// created_at is local wall-clock time without an offset. During the hour
	// repeated by a DST fall-back the instant is ambiguous and Go picks the
	// first occurrence; the formatted value still round-trips unchanged.
	t, err := time.ParseInLocation(model.TimestampLayout, createdAt, time.Local)
	if err != nil {
		return rec, fmt.Errorf("parse created_at for %q: %w", rec.SeedText, err)
	}
	rec.CreatedAt = t
	return rec, nil
}
