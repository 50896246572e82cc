package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultProjectNameConstant is returned when sanitization leaves nothing usable.
	DefaultProjectNameConstant = "my-webflow-extension"
	// MaximumProjectNameLengthConstant mirrors the npm package name length limit.
	MaximumProjectNameLengthConstant = 214
	hyphenSeparatorConstant          = "-"
)

var (
	whitespaceRunPattern       = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	disallowedCharacterPattern = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRunPattern           = regexp.MustCompile(`-+`)
)

// SanitizeProjectName converts arbitrary input into a lowercase, hyphen separated identifier.
//
// The result always matches ^[a-z0-9]+(-[a-z0-9]+)*$, is at most
// MaximumProjectNameLengthConstant characters long, and falls back to
// DefaultProjectNameConstant when nothing survives normalization.
func SanitizeProjectName(input string) string {
	lowercased := cases.Lower(language.Und).String(input)
	hyphenated := whitespaceRunPattern.ReplaceAllString(lowercased, hyphenSeparatorConstant)
	stripped := disallowedCharacterPattern.ReplaceAllString(hyphenated, "")
	collapsed := hyphenRunPattern.ReplaceAllString(stripped, hyphenSeparatorConstant)
	trimmed := strings.Trim(collapsed, hyphenSeparatorConstant)

	if len(trimmed) > MaximumProjectNameLengthConstant {
		// truncation can expose a hyphen at the cut point
		trimmed = strings.TrimRight(trimmed[:MaximumProjectNameLengthConstant], hyphenSeparatorConstant)
	}

	if len(trimmed) == 0 {
		return DefaultProjectNameConstant
	}

	return trimmed
}
