package models

import "strings"

// ValidationError reports why a payload was rejected at the API boundary.
// Each entry names the offending field and the constraint it broke.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Problems, "; ")
}
