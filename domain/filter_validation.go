package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var validSectionRegex = regexp.MustCompile(`^[\p{L}\p{N}\s\-_/]+$`)

// ValidateSection validates a section filter value before it is embedded
// into an engine filter expression.
func ValidateSection(section string) error {
	if strings.TrimSpace(section) == "" {
		return fmt.Errorf("empty or whitespace-only section not allowed")
	}

	if len(section) > 100 {
		return fmt.Errorf("section too long: maximum 100 characters, got %d", len(section))
	}

	if !validSectionRegex.MatchString(section) {
		return fmt.Errorf("invalid characters in section: %s", section)
	}

	for _, r := range section {
		if unicode.IsControl(r) {
			return fmt.Errorf("control characters not allowed in section: %s", section)
		}
	}

	return nil
}
