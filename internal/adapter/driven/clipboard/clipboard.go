// Package clipboard adapts the system clipboard to the driven.Clipboard port.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

// ErrUnsupported is returned when no clipboard utility is available on the
// host (for example a headless Linux box without xclip, xsel or wl-copy).
var ErrUnsupported = errors.New("system clipboard unavailable")

// Compile-time interface satisfaction check.
var _ driven.Clipboard = (*System)(nil)

// System writes to the operating system clipboard.
type System struct {
	unsupported bool
	write       func(string) error
}

// NewSystem creates a System clipboard writer.
func NewSystem() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

// WriteText places text on the clipboard. Empty text is a no-op.
func (s *System) WriteText(text string) error {
	if text == "" {
		return nil
	}
	if s.unsupported {
		return ErrUnsupported
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
