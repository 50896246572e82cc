package packagemanager_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flash-brew-digital/create-webflow-extension/internal/packagemanager"
	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
)

const testTableSubtestNameTemplateConstant = "%d_%s"

func TestResolveExecutor(testInstance *testing.T) {
	testCases := []struct {
		name           string
		manager        projectconfig.PackageManager
		probedVersion  string
		expectedRunner packagemanager.Runner
	}{
		{name: "npm_uses_npx", manager: projectconfig.PackageManagerNPM, expectedRunner: packagemanager.Runner{Binary: "npx"}},
		{name: "bun_uses_bunx", manager: projectconfig.PackageManagerBun, expectedRunner: packagemanager.Runner{Binary: "bunx"}},
		{name: "pnpm_uses_dlx", manager: projectconfig.PackageManagerPNPM, expectedRunner: packagemanager.Runner{Binary: "pnpm", Arguments: []string{"dlx"}}},
		{name: "classic_yarn_uses_npx", manager: projectconfig.PackageManagerYarn, probedVersion: "1.22.22\n", expectedRunner: packagemanager.Runner{Binary: "npx"}},
		{name: "berry_yarn_uses_dlx", manager: projectconfig.PackageManagerYarn, probedVersion: "4.5.1", expectedRunner: packagemanager.Runner{Binary: "yarn", Arguments: []string{"dlx"}}},
		{name: "unparseable_classic_prefix", manager: projectconfig.PackageManagerYarn, probedVersion: "1.x-nightly", expectedRunner: packagemanager.Runner{Binary: "npx"}},
		{name: "unparseable_other_prefix", manager: projectconfig.PackageManagerYarn, probedVersion: "unknown", expectedRunner: packagemanager.Runner{Binary: "yarn", Arguments: []string{"dlx"}}},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testTableSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedRunner, packagemanager.ResolveExecutor(testCase.manager, testCase.probedVersion))
		})
	}
}

func TestRunnerCommandPrependsRunnerArguments(testInstance *testing.T) {
	runner := packagemanager.ResolveExecutor(projectconfig.PackageManagerPNPM, "")

	command := runner.Command(packagemanager.LinterInitializerArguments(projectconfig.LinterBiome, projectconfig.PackageManagerPNPM)...)

	require.Equal(testInstance, []string{
		"dlx", "ultracite", "init", "--linter", "biome", "--pm", "pnpm", "--editors", "vscode", "--quiet",
	}, command)
	require.Equal(testInstance, []string{"dlx"}, runner.Arguments)
}

func TestManagerHelpers(testInstance *testing.T) {
	require.Equal(testInstance, []string{"install"}, packagemanager.InstallArguments())
	require.Equal(testInstance, []string{"--version"}, packagemanager.VersionArguments())
	require.Equal(testInstance, []string{"install", "-g", "-s", "bun"}, packagemanager.GlobalInstallArguments(projectconfig.PackageManagerBun))
	require.Equal(testInstance, "npm", packagemanager.BootstrapBinary())
	require.Equal(testInstance, "yarn dev", packagemanager.DevScriptCommand(projectconfig.PackageManagerYarn))
	require.Equal(testInstance, "bun install", packagemanager.InstallCommand(projectconfig.PackageManagerBun))

	for _, manager := range projectconfig.PackageManagers() {
		require.Equal(testInstance, manager == projectconfig.PackageManagerYarn, packagemanager.RequiresVersionProbe(manager))
		require.Equal(testInstance, manager == projectconfig.PackageManagerNPM, packagemanager.IsBootstrapManager(manager))
	}
}
