// Package render formats explained configuration entries as plain-text
// blocks for terminal output.
package render

import (
	"fmt"
	"io"

	"github.com/vk/explainmyconfig/internal/config"
	"github.com/vk/explainmyconfig/internal/explain"
)

// maxValueWidth caps the displayed value length; longer values are
// truncated with an ellipsis for readability.
const maxValueWidth = 80

// Block formats a single entry with its explanation:
//
//	KEY = value
//	-> explanation
func Block(key, value, explanation string) string {
	if len(value) > maxValueWidth {
		value = value[:maxValueWidth-3] + "..."
	}
	return fmt.Sprintf("%s = %s\n-> %s\n", key, value, explanation)
}

// Document writes one block per entry in document order, separated by blank
// lines. Every entry produces exactly one block; none are skipped.
func Document(w io.Writer, doc *config.Document) error {
	if len(doc.Entries) == 0 {
		_, err := fmt.Fprintln(w, "No configuration entries found in the file.")
		return err
	}

	for i, entry := range doc.Entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		block := Block(entry.Key, entry.Value, explain.Explain(entry.Key, entry.Value))
		if _, err := io.WriteString(w, block); err != nil {
			return err
		}
	}
	return nil
}
