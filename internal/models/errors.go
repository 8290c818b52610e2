package models

import "errors"

// ErrEmptyPatch is returned when an update supplies no fields.
var ErrEmptyPatch = errors.New("no fields supplied")
