package driven

import "context"

// StorageProbe reports whether the password storage can currently serve
// requests. Implementations return an error wrapping ErrStorageUnavailable
// when it cannot.
type StorageProbe interface {
	Ping(ctx context.Context) error
}
