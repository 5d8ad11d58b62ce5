package booking

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports a missing session or booking.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError carries the offending fields of a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// CapacityError reports a request for more students than the session allows.
type CapacityError struct {
	MaxStudents int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("maximum number of students is %d", e.MaxStudents)
}
