package naming_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flash-brew-digital/create-webflow-extension/internal/naming"
)

const (
	sanitizerSubtestNameTemplateConstant = "%d_%s"
	longNameRepetitionCountConstant      = 300
)

var sanitizedNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSanitizeProjectName(testInstance *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases_mixed_case", input: "MyExtension", expected: "myextension"},
		{name: "lowercases_uppercase", input: "UPPERCASE", expected: "uppercase"},
		{name: "single_space", input: "my extension", expected: "my-extension"},
		{name: "space_run", input: "my   extension", expected: "my-extension"},
		{name: "tab_and_newline_run", input: "my\t\nextension", expected: "my-extension"},
		{name: "special_characters", input: "test@#$name", expected: "testname"},
		{name: "underscore_and_bang", input: "hello_world!", expected: "helloworld"},
		{name: "double_hyphen", input: "my--extension", expected: "my-extension"},
		{name: "hyphen_runs", input: "a---b---c", expected: "a-b-c"},
		{name: "edge_hyphens", input: "-my-extension-", expected: "my-extension"},
		{name: "edge_hyphen_runs", input: "---test---", expected: "test"},
		{name: "surrounding_whitespace", input: "  my-extension  ", expected: "my-extension"},
		{name: "empty_input", input: "", expected: naming.DefaultProjectNameConstant},
		{name: "whitespace_only", input: "   ", expected: naming.DefaultProjectNameConstant},
		{name: "symbols_only", input: "@#$%", expected: naming.DefaultProjectNameConstant},
		{name: "realistic_title", input: "My Webflow Extension", expected: "my-webflow-extension"},
		{name: "realistic_with_digits", input: "Cool App 2024", expected: "cool-app-2024"},
		{name: "dotted_name", input: "test.extension.name", expected: "testextensionname"},
		{name: "hyphen_around_removed_symbol", input: "a - b", expected: "a-b"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(sanitizerSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			sanitized := naming.SanitizeProjectName(testCase.input)
			require.Equal(testInstance, testCase.expected, sanitized)
			require.Equal(testInstance, sanitized, naming.SanitizeProjectName(sanitized))
			require.Regexp(testInstance, sanitizedNamePattern, sanitized)
		})
	}
}

func TestSanitizeProjectNameTruncatesLongInput(testInstance *testing.T) {
	sanitized := naming.SanitizeProjectName(strings.Repeat("a", longNameRepetitionCountConstant))
	require.Len(testInstance, sanitized, naming.MaximumProjectNameLengthConstant)
	require.Equal(testInstance, sanitized, naming.SanitizeProjectName(sanitized))
}

func TestSanitizeProjectNameDropsHyphenExposedByTruncation(testInstance *testing.T) {
	input := strings.Repeat("a", naming.MaximumProjectNameLengthConstant-1) + "-bcd"

	sanitized := naming.SanitizeProjectName(input)

	require.Len(testInstance, sanitized, naming.MaximumProjectNameLengthConstant-1)
	require.False(testInstance, strings.HasSuffix(sanitized, "-"))
	require.Equal(testInstance, sanitized, naming.SanitizeProjectName(sanitized))
}
