package domain

import "errors"

// ErrNotFound is returned when a user has no stored preferences
var ErrNotFound = errors.New("not found")

// ErrInvalidSchedule is returned for malformed delivery time or timezone values
var ErrInvalidSchedule = errors.New("invalid schedule")
