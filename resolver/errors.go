package resolver

import (
	"errors"
	"fmt"
)

// ErrResolution matches both NoResolverError and ResolutionError.
var ErrResolution = errors.New("link resolution failed")

// NoResolverError is returned when no resolver is registered for a domain.
type NoResolverError struct {
	Domain string
}

func (e *NoResolverError) Error() string {
	return fmt.Sprintf("no resolver registered for %q", e.Domain)
}

func (e *NoResolverError) Is(target error) bool {
	return target == ErrResolution
}

// ResolutionError is returned when a resolver could not find a direct URL in the player page.
type ResolutionError struct {
	Domain string
	URL    string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: no direct link in %s", e.Domain, e.URL)
	}
	return fmt.Sprintf("%s: resolve %s: %s", e.Domain, e.URL, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}
