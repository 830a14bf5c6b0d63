package dnswire

import "errors"

var (
	// ErrWire is the sentinel for DNS wire-format violations.
	// Wrap it with fmt.Errorf("context: %w", ErrWire) to add context.
	ErrWire = errors.New("dns wire error")
)
