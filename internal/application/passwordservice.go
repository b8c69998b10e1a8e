package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ericfisherdev/seedpass/internal/domain/model"
	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

// MaxLength caps the requested password length so a single request cannot
// force an arbitrarily large allocation.
const MaxLength = 1024

var (
	// ErrEmptySeed is returned when the seed text is empty after trimming.
	ErrEmptySeed = errors.New("seed text must not be empty")

	// ErrInvalidLength is returned when the requested length exceeds MaxLength.
	ErrInvalidLength = fmt.Errorf("password length must not exceed %d", MaxLength)
)

// PasswordService is the entry point used by the driving adapters: it
// validates input, generates passwords and persists them.
type PasswordService struct {
	generator *Generator
	store     driven.PasswordStore
}

// NewPasswordService creates a PasswordService with the required dependencies.
func NewPasswordService(generator *Generator, store driven.PasswordStore) *PasswordService {
	return &PasswordService{
		generator: generator,
		store:     store,
	}
}

// Generate derives a password for seedText and stores it, replacing any
// earlier password for the same seed. length <= 0 selects DefaultLength.
// On a storage failure the error is returned and the write is not retried.
func (s *PasswordService) Generate(ctx context.Context, seedText string, length int) (model.PasswordRecord, error) {
	password, seed, err := s.derive(seedText, length)
	if err != nil {
		return model.PasswordRecord{}, err
	}

	record, err := s.store.Upsert(ctx, seed, password)
	if err != nil {
		return model.PasswordRecord{}, fmt.Errorf("save password: %w", err)
	}
	return record, nil
}

// Preview derives a password for seedText without storing it.
func (s *PasswordService) Preview(seedText string, length int) (string, error) {
	password, _, err := s.derive(seedText, length)
	return password, err
}

// List returns stored records matching q.
func (s *PasswordService) List(ctx context.Context, q model.ListQuery) ([]model.PasswordRecord, error) {
	if q.OrderBy == "" {
		q.OrderBy = model.SortByCreatedAt
	}
	if !q.OrderBy.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidSortColumn, q.OrderBy)
	}
	return s.store.List(ctx, q)
}

// Get returns the stored record for seedText. Returns driven.ErrPasswordNotFound
// if no password has been stored for it.
func (s *PasswordService) Get(ctx context.Context, seedText string) (model.PasswordRecord, error) {
	seed := strings.TrimSpace(seedText)
	if seed == "" {
		return model.PasswordRecord{}, ErrEmptySeed
	}

	record, err := s.store.Get(ctx, seed)
	if err != nil {
		return model.PasswordRecord{}, err
	}
	if record == nil {
		return model.PasswordRecord{}, fmt.Errorf("%w: %q", driven.ErrPasswordNotFound, seed)
	}
	return *record, nil
}

func (s *PasswordService) derive(seedText string, length int) (password, seed string, err error) {
	seed = strings.TrimSpace(seedText)
	if seed == "" {
		return "", "", ErrEmptySeed
	}
	if length <= 0 {
		length = DefaultLength
	}
	if length > MaxLength {
		return "", "", ErrInvalidLength
	}
	return s.generator.Generate(seed, length), seed, nil
}
