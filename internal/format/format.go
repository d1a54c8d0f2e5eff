// Package format holds the string-format knowledge shared by inference,
// validation, template generation and code generation: the ordered detection
// patterns, format assertions, canned examples and identifier casing.
package format

import (
	"net/netip"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Format names.
const (
	Email    = "email"
	URI      = "uri"
	DateTime = "date-time"
	Date     = "date"
	Time     = "time"
	UUID     = "uuid"
	Hostname = "hostname"
	IPv4     = "ipv4"
	IPv6     = "ipv6"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uriRe      = regexp.MustCompile(`^https?://[^\s/$.?#][^\s]*$`)
	dateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe     = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
	uuidRe     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	hostnameRe = regexp.MustCompile(`(?i)^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)*$`)
)

// detectors is consulted in order; the first match wins.
var detectors = []struct {
	name string
	re   *regexp.Regexp
}{
	{Email, emailRe},
	{URI, uriRe},
	{DateTime, dateTimeRe},
	{Date, dateRe},
	{UUID, uuidRe},
}

// Detect returns the format of s, or "" when no detector matches.
func Detect(s string) string {
	for _, d := range detectors {
		if d.re.MatchString(s) {
			return d.name
		}
	}
	return ""
}

// Known reports whether Check understands the format.
func Known(name string) bool {
	switch name {
	case Email, URI, DateTime, Date, Time, UUID, Hostname, IPv4, IPv6:
		return true
	}
	return false
}

// Check reports whether s conforms to the named format. Unknown formats
// always pass.
func Check(name, s string) bool {
	switch name {
	case Email:
		return emailRe.MatchString(s)
	case URI:
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
	case DateTime:
		m := dateTimeRe.FindStringSubmatch(s)
		if m == nil {
			return false
		}
		layout := "2006-01-02T15:04:05.999999999"
		if m[2] != "" {
			layout = time.RFC3339Nano
		}
		_, err := time.Parse(layout, s)
		return err == nil
	case Date:
		if !dateRe.MatchString(s) {
			return false
		}
		_, err := time.Parse(time.DateOnly, s)
		return err == nil
	case Time:
		return timeRe.MatchString(s)
	case UUID:
		if !uuidRe.MatchString(s) {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	case Hostname:
		return len(s) <= 253 && hostnameRe.MatchString(s)
	case IPv4:
		a, err := netip.ParseAddr(s)
		return err == nil && a.Is4()
	case IPv6:
		a, err := netip.ParseAddr(s)
		return err == nil && a.Is6()
	}
	return true
}

// SampleUUID is the fixed UUID used in generated examples.
var SampleUUID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

// Example returns a canned example for the named format. Date and time
// formats are derived from now in UTC with millisecond precision. Unknown
// formats render as "<name>".
func Example(name string, now time.Time) string {
	now = now.UTC()
	switch name {
	case DateTime:
		return now.Format("2006-01-02T15:04:05.000Z")
	case Date:
		return now.Format(time.DateOnly)
	case Time:
		return now.Format(time.TimeOnly)
	case Email:
		return "user@example.com"
	case URI:
		return "https://example.com"
	case UUID:
		return SampleUUID.String()
	case Hostname:
		return "example.com"
	case IPv4:
		return "127.0.0.1"
	case IPv6:
		return "::1"
	}
	return "<" + name + ">"
}
