package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vk/explainmyconfig/internal/config"
)

// parseEnv parses env-style KEY=VALUE lines. Blank lines and full-line `#`
// comments are skipped. A line without a separator aborts the parse; the
// error names the line and how many entries were read before it, so earlier
// pairs are never silently dropped from diagnostics.
func parseEnv(path string, src []byte) ([]config.Entry, error) {
	var entries []config.Entry

	scanner := bufio.NewScanner(bytes.NewReader(src))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rest, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, &config.ParseError{
				Path: path,
				Line: lineNum,
				Err:  fmt.Errorf("%w (%d entries parsed before this line)", config.ErrMalformedLine, len(entries)),
			}
		}

		value, quoted := stripQuotes(strings.TrimSpace(rest))
		if !quoted {
			value = stripInlineComment(value)
		}

		entries = append(entries, config.Entry{Key: key, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, &config.FileError{Path: path, Err: err}
	}

	return entries, nil
}

// stripQuotes removes one matching pair of surrounding single or double
// quotes and reports whether the value was quoted.
func stripQuotes(value string) (string, bool) {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return value[1 : len(value)-1], true
		}
	}
	return value, false
}

// stripInlineComment drops a trailing ` # ...` comment from an unquoted
// value. URLs are left alone since `#` marks a fragment there.
func stripInlineComment(value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimRight(value[:idx], " \t")
	}
	return value
}
