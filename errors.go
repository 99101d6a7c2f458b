package docsite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotLoaded is returned by Store.Get before a load has succeeded.
var ErrNotLoaded = errors.New("docsite: configuration not loaded")

// Violation names one field that failed validation and the rule it broke.
type Violation struct {
	Field      string // dotted path, e.g. "header.search.indexName"
	Constraint string
}

func (v Violation) String() string {
	return v.Field + " " + v.Constraint
}

// ValidationError reports every violation found in a site configuration.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "docsite: invalid configuration: " + strings.Join(parts, "; ")
}

// Field returns the first offending field.
func (e *ValidationError) Field() string {
	if len(e.Violations) == 0 {
		return ""
	}
	return e.Violations[0].Field
}

// Has reports whether field is among the violations.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// LoadError reports overlay or defaults input that could not be read into
// its target field.
type LoadError struct {
	Source   string // "env" or "defaults"
	Variable string // environment variable, empty for defaults
	Field    string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("docsite: load %s %s into %s: %v", e.Source, e.Variable, e.Field, e.Err)
	}
	return fmt.Sprintf("docsite: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
