package explain

import (
	"regexp"
	"strings"
)

// suffixRule maps a trailing key segment to an explanation template. The
// %s placeholder receives the readable form of the remaining prefix.
type suffixRule struct {
	suffix   string
	template string
}

// suffixRules is evaluated top to bottom; the first matching suffix wins,
// so longer suffixes (_USERNAME) must come before their tails (_NAME).
var suffixRules = []suffixRule{
	{"_URL", "The URL endpoint for %s."},
	{"_URI", "The URI for %s."},
	{"_HOST", "The hostname or IP address for %s."},
	{"_PORT", "The network port for %s."},
	{"_KEY", "The authentication or API key for %s."},
	{"_SECRET", "A secret value for %s (keep this private)."},
	{"_TOKEN", "An access token for %s."},
	{"_PASSWORD", "The password for %s."},
	{"_USERNAME", "The username for %s."},
	{"_USER", "The username for %s."},
	{"_NAME", "The name of %s."},
	{"_PATH", "The file or directory path for %s."},
	{"_DIR", "The directory path for %s."},
	{"_FILE", "The file path for %s."},
	{"_SIZE", "The size setting for %s."},
	{"_LIMIT", "The maximum limit for %s."},
	{"_COUNT", "The number of items for %s."},
	{"_TIMEOUT", "The timeout duration (in seconds) for %s."},
	{"_TTL", "The time-to-live duration for %s."},
	{"_ENABLED", "Enables or disables %s."},
	{"_DISABLED", "Disables %s."},
	{"_MODE", "The operating mode for %s."},
	{"_LEVEL", "The level setting for %s."},
	{"_MAX", "The maximum value for %s."},
	{"_MIN", "The minimum value for %s."},
	{"_ID", "The unique identifier for %s."},
	{"_VERSION", "The version of %s."},
}

// Value shape patterns for the type-sniffing fallback.
var (
	urlPattern    = regexp.MustCompile(`(?i)^https?://`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	pathPattern   = regexp.MustCompile(`^(/|\.\.?/|[A-Za-z]:\\)`)
)

// Boolean literal sets, matched case-insensitively against the whole value.
var (
	boolTrueLiterals  = map[string]bool{"true": true, "yes": true, "on": true, "1": true, "enabled": true}
	boolFalseLiterals = map[string]bool{"false": true, "no": true, "off": true, "0": true, "disabled": true}
)

// valueHint classifies a value by its apparent type and returns a short
// phrase describing it, or "" when nothing matches. Detection order:
// boolean, number, URL, email, filesystem path.
func valueHint(value string) string {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)

	switch {
	case boolTrueLiterals[lower]:
		return "enables this feature"
	case boolFalseLiterals[lower]:
		return "disables this feature"
	case numberPattern.MatchString(trimmed):
		return "numeric value"
	case urlPattern.MatchString(trimmed):
		return "appears to be a URL"
	case emailPattern.MatchString(trimmed):
		return "appears to be an email address"
	case pathPattern.MatchString(trimmed):
		return "appears to be a file path"
	}
	return ""
}

// readable converts an UPPER_SNAKE or dotted key into a lower-case phrase,
// e.g. "DATABASE_CONNECTION" becomes "database connection".
func readable(key string) string {
	words := strings.FieldsFunc(strings.ToLower(key), func(r rune) bool {
		return r == '_' || r == '.'
	})
	return strings.Join(words, " ")
}
