package booking

import (
	"fmt"
	"strings"
)

// MissingFieldsError rejects a booking before any store I/O happens.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required booking fields: %s", strings.Join(e.Fields, ", "))
}

func NewMissingFieldsError(fields ...string) error {
	return &MissingFieldsError{Fields: fields}
}
