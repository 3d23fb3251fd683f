package core

import (
	"errors"
	"fmt"
	"strings"
)

var ErrContentValidation = errors.New("content validation failed")

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError lists every problem found in a Content Model.
type ValidationError struct {
	Issues []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%s: %s", ErrContentValidation, e.Issues[0])
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %d issues: %s", ErrContentValidation, len(e.Issues), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrContentValidation
}
