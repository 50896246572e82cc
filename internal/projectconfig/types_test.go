package projectconfig_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
)

func TestParsePackageManager(testInstance *testing.T) {
	testCases := []struct {
		input         string
		expected      projectconfig.PackageManager
		expectFailure bool
	}{
		{input: "pnpm", expected: projectconfig.PackageManagerPNPM},
		{input: "NPM", expected: projectconfig.PackageManagerNPM},
		{input: " yarn ", expected: projectconfig.PackageManagerYarn},
		{input: "bun", expected: projectconfig.PackageManagerBun},
		{input: "deno", expectFailure: true},
		{input: "", expectFailure: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testResolverSubtestNameTemplateConstant, testCaseIndex, testCase.input), func(testInstance *testing.T) {
			packageManager, parseError := projectconfig.ParsePackageManager(testCase.input)
			if testCase.expectFailure {
				require.Error(testInstance, parseError)
				require.Contains(testInstance, parseError.Error(), `"pnpm", "npm", "yarn", "bun"`)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expected, packageManager)
		})
	}
}

func TestParseLinter(testInstance *testing.T) {
	testCases := []struct {
		input         string
		expected      projectconfig.Linter
		expectFailure bool
	}{
		{input: "oxlint", expected: projectconfig.LinterOxlint},
		{input: "Biome", expected: projectconfig.LinterBiome},
		{input: "eslint", expected: projectconfig.LinterESLint},
		{input: "prettier", expectFailure: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testResolverSubtestNameTemplateConstant, testCaseIndex, testCase.input), func(testInstance *testing.T) {
			linter, parseError := projectconfig.ParseLinter(testCase.input)
			if testCase.expectFailure {
				require.Error(testInstance, parseError)
				require.Contains(testInstance, parseError.Error(), `"oxlint", "biome", "eslint"`)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expected, linter)
		})
	}
}

func TestNamesFollowPresentationOrder(testInstance *testing.T) {
	require.Equal(testInstance, []string{"pnpm", "npm", "yarn", "bun"}, projectconfig.PackageManagerNames())
	require.Equal(testInstance, []string{"oxlint", "biome", "eslint"}, projectconfig.LinterNames())
}
