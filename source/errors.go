package source

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every NotFoundError with errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that an identifier does not lead to a real page: every
// primary field of the extracted record came back empty.
type NotFoundError struct {
	ShowID     string
	CategoryID string
}

func (e *NotFoundError) Error() string {
	if e.CategoryID == "" {
		return fmt.Sprintf("show %q not found", e.ShowID)
	}
	return fmt.Sprintf("season %q of show %q not found", e.CategoryID, e.ShowID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
