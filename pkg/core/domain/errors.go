package domain

import "errors"

var (
	ErrNotFound     = errors.New("link not found")
	ErrInvalidAlias = errors.New("invalid alias")
	ErrValidation   = errors.New("validation failed")
)

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidAlias reports whether err indicates a malformed short code.
func IsInvalidAlias(err error) bool { return errors.Is(err, ErrInvalidAlias) }

// IsValidation reports whether err is a rejected-input condition.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
