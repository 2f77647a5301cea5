// File: caep/errors.go
package caep

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArgument indicates inconsistent configuration-identification
	// parameters supplied by the calling program.
	ErrArgument = errors.New("inconsistent configuration arguments")

	// ErrSchema indicates that no field descriptors could be derived
	// from the target at all.
	ErrSchema = errors.New("unable to derive schema")

	// ErrNotSupported indicates a declared field uses a feature this
	// layer cannot support.
	ErrNotSupported = errors.New("not supported")

	// ErrCLIParse wraps command-line parse failures.
	ErrCLIParse = errors.New("failed to parse command-line arguments")
)

// FieldError reports a specific field whose declaration or raw value could
// not be processed.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Msg)
}

// fieldErrorf builds a *FieldError with a formatted message.
func fieldErrorf(field, format string, args ...any) error {
	return &FieldError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// InvalidField is a single post-merge validation failure, expressed in
// terms of the command-line flag it belongs to.
type InvalidField struct {
	Flag    string
	Message string
}

// ValidationError aggregates post-merge validation failures, one entry per
// invalid field.
type ValidationError struct {
	Fields []InvalidField
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Flag == "" {
			msgs = append(msgs, f.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s for --%s", f.Message, f.Flag))
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}
