// Package shared provides common utility functions used across multiple
// packages in the devsetup codebase.
package shared

import (
	"fmt"
	"strings"
)

// NormalizeName lowercases and trims a logical package name so that
// catalog lookups and de-duplication are case-insensitive.
func NormalizeName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// FirstLine returns the first non-empty line of command output,
// trimmed. Backends print their version as the first line of
// `--version` output, some after a leading blank line.
func FirstLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
