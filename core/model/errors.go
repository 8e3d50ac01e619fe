package model

import "errors"

// ErrIntegrity marks data integrity failures in the input roster.
// Integrity errors abort a run before any planning happens.
var ErrIntegrity = errors.New("roster integrity")
