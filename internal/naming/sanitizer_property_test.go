//go:build property
// +build property

package naming

import (
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var sanitizedShapePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSanitizeProjectNameProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sanitizing twice equals sanitizing once", prop.ForAll(
		func(input string) bool {
			once := SanitizeProjectName(input)
			return SanitizeProjectName(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output has the package name shape", prop.ForAll(
		func(input string) bool {
			sanitized := SanitizeProjectName(input)
			return sanitizedShapePattern.MatchString(sanitized) && len(sanitized) <= MaximumProjectNameLengthConstant
		},
		gen.AnyString(),
	))

	properties.Property("hyphen and space heavy input keeps the shape", prop.ForAll(
		func(words []string) bool {
			sanitized := SanitizeProjectName(strings.Join(words, " - "))
			return sanitizedShapePattern.MatchString(sanitized)
		},
		gen.SliceOf(gen.RegexMatch(`^[A-Za-z0-9 _.-]{0,12}$`)),
	))

	properties.Property("long inputs are bounded", prop.ForAll(
		func(repetitions int) bool {
			return len(SanitizeProjectName(strings.Repeat("ab-", repetitions))) <= MaximumProjectNameLengthConstant
		},
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}
