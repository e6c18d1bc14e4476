package driver

import "strings"

// buildSectionFilter builds the engine filter expression for a section
// restriction. The value is quoted and escaped; validation of the section
// itself happens in the domain layer before it reaches the driver.
func buildSectionFilter(section string) string {
	escaped := strings.ReplaceAll(section, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `section = "` + escaped + `"`
}
