package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("student not found")

	// ErrDuplicateRollNumber is returned when a create or update would give
	// two records the same roll number.
	ErrDuplicateRollNumber = errors.New("roll number already exists")
)

// ValidationError reports the first input field that failed validation.
// Field is the json name of the field ("name", "rollno", "std", "mobile");
// Tag is the rule it broke ("required", "min", "mobile").
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: failed %q", e.Field, e.Tag)
}
