package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoteNotFound  = errors.New("note not found")
	ErrChordNotFound = errors.New("chord not found")
	ErrTemporary     = errors.New("temporary failure")
)

// WrapError keeps the error kind matchable while adding the failing operation.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
