package models

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a claim status write does not match
// the forward-only transition table.
var ErrInvalidTransition = errors.New("invalid claim status transition")

// ErrUpstreamUnavailable is returned when the disaster feed cannot be
// fetched. Stored rows are left untouched when it occurs.
var ErrUpstreamUnavailable = errors.New("disaster feed unavailable")

// Document rejection reasons.
const (
	RejectOversize       = "oversize"
	RejectDisallowedType = "disallowed type"
)

// DocumentRejectedError aborts a whole claim creation, identifying which
// file failed validation and why.
type DocumentRejectedError struct {
	FileName string
	Reason   string
}

func (e *DocumentRejectedError) Error() string {
	return fmt.Sprintf("document %q rejected: %s", e.FileName, e.Reason)
}
