package service

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrNotFound is returned when the requested row does not exist in the
// store, at read, update or delete time.
var ErrNotFound = errors.New("not found")

// ValidationError reports a rejected input field, including a foreign
// key that references a missing row.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
