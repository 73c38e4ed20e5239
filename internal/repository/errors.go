package repository

import "errors"

// ErrNotFound indicates the requested record or report request does not
// exist. Callers distinguish it from storage failures with errors.Is.
var ErrNotFound = errors.New("not found")
