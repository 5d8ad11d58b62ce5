package session

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports a missing catalog session.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %s not found", e.ID)
}

// ValidationError carries the offending fields of a rejected catalog payload.
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
