package model

import (
	"errors"
	"fmt"
	"time"
)

// Date layouts
const (
	ReleaseDateLayout = "2006-01-02"
	LongDateLayout    = "January 2, 2006"
)

// ErrMalformedDate reports a creation date that is not YYYY-MM-DD
var ErrMalformedDate = errors.New("malformed creation date")

// FormatCreationDate converts an ISO date (YYYY-MM-DD) to its long form,
// e.g. "2025-03-11" becomes "March 11, 2025"
func FormatCreationDate(isoDate string) (string, error) {
	t, err := time.Parse(ReleaseDateLayout, isoDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedDate, isoDate)
	}
	return t.Format(LongDateLayout), nil
}
