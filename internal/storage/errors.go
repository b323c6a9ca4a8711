package storage

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable matches any failure of the underlying database.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Error wraps a driver failure with the store operation that hit it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
