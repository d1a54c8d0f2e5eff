package jayson

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/reoring/jayson/i18n"
	"github.com/reoring/jayson/value"
)

// Syntax selects the text format of an input document.
type Syntax int

const (
	SyntaxJSON Syntax = iota
	SyntaxYAML
)

func (s Syntax) String() string {
	if s == SyntaxYAML {
		return "yaml"
	}
	return "json"
}

// ParseSyntax maps "json"/"yaml"/"yml" to a Syntax.
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return SyntaxJSON, nil
	case "yaml", "yml":
		return SyntaxYAML, nil
	}
	return SyntaxJSON, fmt.Errorf("unknown syntax %q", s)
}

// SyntaxForPath picks YAML for .yaml/.yml file names and JSON otherwise.
func SyntaxForPath(name string) Syntax {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return SyntaxYAML
	}
	return SyntaxJSON
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Error
)

// ParseSeverity maps "ignore"/"error" to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "", "ignore":
		return Ignore, nil
	case "error":
		return Error, nil
	}
	return Ignore, fmt.Errorf("unknown severity %q", s)
}

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore keeps the last value, Error rejects the document.
}

// ParseOpt bundles parsing options. The zero value parses JSON with unlimited
// depth and size, and lets the last duplicate key win.
type ParseOpt struct {
	Syntax     Syntax
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
}

func (o ParseOpt) decodeOptions() value.DecodeOptions {
	return value.DecodeOptions{
		MaxDepth:            o.MaxDepth,
		MaxBytes:            o.MaxBytes,
		RejectDuplicateKeys: o.Strictness.OnDuplicateKey == Error,
	}
}

// ValidateOpt tunes Validate.
type ValidateOpt struct {
	// AssertFormats checks "format" on strings (email, uri, date-time, date,
	// time, uuid, hostname, ipv4, ipv6). Unknown formats always pass.
	AssertFormats bool
	// FailFast stops at the first error.
	FailFast bool
	// Translator renders messages for this call; nil uses the process-wide
	// i18n translator.
	Translator i18n.Translator
}

// TemplateOpt tunes GenerateTemplate.
type TemplateOpt struct {
	// UseDefaults returns a node's "default" verbatim when present.
	UseDefaults bool
	// IncludeOptional also generates properties that are not required.
	IncludeOptional bool
	// Now supplies the instant used for date and time formats; nil means
	// time.Now.
	Now func() time.Time
}

func (o TemplateOpt) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// DecodeText decodes a JSON or YAML document according to opt.
func DecodeText(data []byte, opt ParseOpt) (value.Value, error) {
	if opt.Syntax == SyntaxYAML {
		return value.DecodeYAML(data, opt.decodeOptions())
	}
	return value.Decode(data, opt.decodeOptions())
}

func firstOpt[T any](opts []T) T {
	var zero T
	if len(opts) == 0 {
		return zero
	}
	return opts[0]
}
