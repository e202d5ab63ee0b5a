package repositories

import "errors"

// ErrNotFound indicates the requested row does not exist. Handlers map it to
// HTTP status codes instead of string-matching driver messages.
var ErrNotFound = errors.New("repositories: record not found")
