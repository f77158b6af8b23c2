package assets

import (
	"errors"
	"fmt"
)

// Package-level errors.
var (
	// ErrClosed is returned when operating on a closed Manager.
	ErrClosed = errors.New("assets: manager is closed")

	// ErrNilDevice is returned by NewManager when Config.Device is nil.
	ErrNilDevice = errors.New("assets: device must not be nil")

	// ErrNilQueue is returned by NewManager when Config.Queue is nil.
	ErrNilQueue = errors.New("assets: queue must not be nil")

	// ErrNilLoader is returned by NewManager when Config.Loader is nil.
	ErrNilLoader = errors.New("assets: content loader must not be nil")

	// ErrFallbackUnavailable indicates the builtin fallback texture failed
	// to decode at startup. There is no safe degraded mode below the
	// fallback, so this aborts Manager construction.
	ErrFallbackUnavailable = errors.New("assets: builtin fallback texture failed to load")

	// ErrNotInFlight is returned by WaitFor for a Guid that is neither
	// cached nor awaiting a worker result; such a Guid can never resolve.
	ErrNotInFlight = errors.New("assets: guid is not in flight")
)

// LoadError reports that a load request failed. Update returns it for the
// first failed result of a drain pass; callers recover the failing identity
// with errors.As.
type LoadError struct {
	Guid Guid
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: load %q (%s) failed: %v", e.Path, e.Guid, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }
