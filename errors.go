package jayson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/jayson/value"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooFewItems   = "too_few_items"
	CodeTooManyItems  = "too_many_items"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeDuplicateKey  = "duplicate_key"
)

// ValidationError represents a single validation entry.
type ValidationError struct {
	Path    string // dot/bracket path, "$" for the document root.
	Code    string // One of the codes listed above.
	Message string
	// Value is the offending value, or its length/count for size rules.
	Value *value.Value
	// Params carries structured parameters (e.g., {"min":1, "max":10}) for
	// i18n and observability.
	Params map[string]any
}

func (e ValidationError) Error() string { return e.Message + " at " + e.Path }

// ToValue renders {path, code, message, value?}.
func (e ValidationError) ToValue() value.Value {
	var b value.ObjectBuilder
	b.Set("path", value.String(e.Path))
	b.Set("code", value.String(e.Code))
	b.Set("message", value.String(e.Message))
	if e.Value != nil {
		b.Set("value", *e.Value)
	}
	return b.Build()
}

// MarshalJSON encodes ToValue.
func (e ValidationError) MarshalJSON() ([]byte, error) { return value.Marshal(e.ToValue()), nil }

// Issues is a collection of validation errors that implements error.
type Issues []ValidationError

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at address.city
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ValidationResult is the outcome of Validate. Valid is true iff Errors is
// empty. Warnings lists schema constructs that were accepted but not applied.
type ValidationResult struct {
	Valid    bool
	Errors   Issues
	Warnings []string
}

// ToValue renders {valid, errors, warnings?}.
func (r ValidationResult) ToValue() value.Value {
	errs := make([]value.Value, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e.ToValue()
	}
	var b value.ObjectBuilder
	b.Set("valid", value.Bool(r.Valid))
	b.Set("errors", value.Array(errs...))
	if len(r.Warnings) > 0 {
		ws := make([]value.Value, len(r.Warnings))
		for i, w := range r.Warnings {
			ws[i] = value.String(w)
		}
		b.Set("warnings", value.Array(ws...))
	}
	return b.Build()
}

// MarshalJSON encodes ToValue.
func (r ValidationResult) MarshalJSON() ([]byte, error) { return value.Marshal(r.ToValue()), nil }

// Err returns the errors as an error value, or nil when the result is valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

func newResult(errs Issues, warnings []string) ValidationResult {
	if errs == nil {
		errs = Issues{}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs, Warnings: warnings}
}
