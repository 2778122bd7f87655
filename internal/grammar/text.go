package grammar

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// continuation is a newline followed by indentation and an alternation bar,
// which continues the rule on the line before it.
var continuation = regexp.MustCompile(`\n\s+\|`)

// Normalize splits grammar text into rule lines. Lines that begin with
// whitespace followed by '|' are joined onto the line before them, so
//
//	<S> -> a <A>
//	     | b
//
// becomes the single line "<S> -> a <A> | b". Leading and trailing whitespace
// of the whole text is removed first. Windows line endings are accepted.
func Normalize(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	text = continuation.ReplaceAllString(text, " |")
	return strings.Split(text, "\n")
}

// ReadFile reads the grammar at path and returns its normalized rule lines.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar: %w", err)
	}

	return Normalize(string(data)), nil
}
