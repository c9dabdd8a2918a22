package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrLogNotFound      = errors.New("log file not found")
	ErrInvalidLevel     = errors.New("invalid log level")
	ErrInvalidLogName   = errors.New("invalid log file name")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrEmptyMessage     = errors.New("message must not be empty")
)

// ValidationError carries per-field detail for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	var b strings.Builder
	b.WriteString("validation failed")
	for _, field := range fields {
		fmt.Fprintf(&b, "; %s: %s", field, e.Fields[field])
	}
	return b.String()
}
