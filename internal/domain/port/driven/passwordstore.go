package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/seedpass/internal/domain/model"
)

var (
	// ErrStorageUnavailable is returned when the backing store cannot be
	// opened, read or written. It wraps the underlying driver error.
	ErrStorageUnavailable = errors.New("password storage unavailable")

	// ErrPasswordNotFound is returned when no record exists for a seed text.
	ErrPasswordNotFound = errors.New("password not found")
)

// PasswordStore defines the driven port for persisting generated passwords.
// There is at most one record per seed text and records are never deleted.
type PasswordStore interface {
	// Upsert stamps the current time and writes the record, replacing any
	// record with the same seed text. The write is committed before it returns.
	Upsert(ctx context.Context, seedText, password string) (model.PasswordRecord, error)

	// List returns every record whose seed text contains q.Search, ordered by
	// q.OrderBy. Returns model.ErrInvalidSortColumn for an unknown column.
	List(ctx context.Context, q model.ListQuery) ([]model.PasswordRecord, error)

	// Get returns the record for seedText, or (nil, nil) if none exists.
	Get(ctx context.Context, seedText string) (*model.PasswordRecord, error)
}
