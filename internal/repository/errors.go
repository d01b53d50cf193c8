package repository

import "errors"

// ErrStateNotFound is returned when nothing was stored yet.
var ErrStateNotFound = errors.New("state not found")
