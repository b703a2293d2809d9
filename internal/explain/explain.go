// Package explain maps configuration keys to beginner-friendly explanation
// sentences. It first consults a built-in dictionary of well-known keys and
// falls back to heuristics based on the key's segments and the value's
// apparent type. The fallback is total: every key/value pair yields a
// non-empty sentence.
package explain

import (
	"fmt"
	"strings"
)

// Explain returns an explanation for a configuration key/value pair.
// Dictionary hits return their fixed sentence regardless of value.
func Explain(key, value string) string {
	normalized := strings.ToUpper(key)
	if text, ok := knownKeys[normalized]; ok {
		return text
	}

	// Dotted paths from JSON/YAML/HCL documents are retried in their
	// env-style spelling, so "database.host" finds DATABASE_HOST.
	flat := strings.ReplaceAll(normalized, ".", "_")
	if text, ok := knownKeys[flat]; ok {
		return text
	}

	return fallback(flat, value)
}

// fallback synthesizes an explanation for a key missing from the
// dictionary. Suffix rules are tried first, then value-type sniffing, then
// a generic sentence. This path never fails.
func fallback(key, value string) string {
	for _, rule := range suffixRules {
		if len(key) > len(rule.suffix) && strings.HasSuffix(key, rule.suffix) {
			subject := readable(strings.TrimSuffix(key, rule.suffix))
			return fmt.Sprintf(rule.template, subject)
		}
	}

	phrase := readable(key)
	if phrase == "" {
		phrase = strings.ToLower(key)
	}
	if hint := valueHint(value); hint != "" {
		return fmt.Sprintf("Sets the %s (%s).", phrase, hint)
	}
	return fmt.Sprintf("Configuration setting for %s.", phrase)
}
