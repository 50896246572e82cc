package template_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flash-brew-digital/create-webflow-extension/internal/template"
)

func TestParseSource(testInstance *testing.T) {
	testCases := []struct {
		name           string
		rawSource      string
		expectedSource template.Source
		expectError    bool
	}{
		{
			name:           "default_template",
			rawSource:      template.DefaultSourceConstant,
			expectedSource: template.Source{Owner: "Flash-Brew-Digital", Repository: "webflow-extension-starter", Reference: "template"},
		},
		{
			name:           "reference_defaults_to_head",
			rawSource:      "owner/repo",
			expectedSource: template.Source{Owner: "owner", Repository: "repo", Reference: "HEAD"},
		},
		{
			name:           "empty_reference_defaults_to_head",
			rawSource:      "owner/repo#",
			expectedSource: template.Source{Owner: "owner", Repository: "repo", Reference: "HEAD"},
		},
		{name: "missing_repository", rawSource: "owner", expectError: true},
		{name: "empty_owner", rawSource: "/repo#main", expectError: true},
		{name: "nested_path", rawSource: "owner/repo/extra", expectError: true},
		{name: "empty", rawSource: "", expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			source, parseError := template.ParseSource(testCase.rawSource)
			if testCase.expectError {
				require.ErrorIs(testInstance, parseError, template.ErrInvalidSource)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedSource, source)
		})
	}
}

func TestSourceString(testInstance *testing.T) {
	source, parseError := template.ParseSource("owner/repo")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, "owner/repo#HEAD", source.String())
}
