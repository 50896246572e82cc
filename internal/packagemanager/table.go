package packagemanager

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
)

const (
	npxBinaryConstant                    = "npx"
	bunxBinaryConstant                   = "bunx"
	yarnBinaryConstant                   = "yarn"
	pnpmBinaryConstant                   = "pnpm"
	npmBinaryConstant                    = "npm"
	dlxArgumentConstant                  = "dlx"
	installArgumentConstant              = "install"
	versionFlagConstant                  = "--version"
	globalFlagConstant                   = "-g"
	silentFlagConstant                   = "-s"
	devScriptConstant                    = "dev"
	classicYarnMajorVersionConstant      = 1
	classicYarnVersionPrefixConstant     = "1."
	versionPrefixCharacterConstant       = "v"
	linterInitializerPackageConstant     = "ultracite"
	linterInitializerCommandConstant     = "init"
	linterInitializerLinterFlagConstant  = "--linter"
	linterInitializerManagerFlagConstant = "--pm"
	linterInitializerEditorsFlagConstant = "--editors"
	linterInitializerEditorConstant      = "vscode"
	linterInitializerQuietFlagConstant   = "--quiet"
)

// Runner names the binary and leading arguments used to execute a package without installing it.
type Runner struct {
	Binary    string
	Arguments []string
}

// Command returns the runner arguments followed by the provided arguments.
func (runner Runner) Command(arguments ...string) []string {
	combined := make([]string, 0, len(runner.Arguments)+len(arguments))
	combined = append(combined, runner.Arguments...)
	return append(combined, arguments...)
}

// ResolveExecutor selects the package runner for the manager. probedVersion is
// the output of `<manager> --version` and is only consulted for yarn.
func ResolveExecutor(manager projectconfig.PackageManager, probedVersion string) Runner {
	switch manager {
	case projectconfig.PackageManagerNPM:
		return Runner{Binary: npxBinaryConstant}
	case projectconfig.PackageManagerBun:
		return Runner{Binary: bunxBinaryConstant}
	case projectconfig.PackageManagerYarn:
		if IsClassicYarn(probedVersion) {
			return Runner{Binary: npxBinaryConstant}
		}
		return Runner{Binary: yarnBinaryConstant, Arguments: []string{dlxArgumentConstant}}
	default:
		return Runner{Binary: pnpmBinaryConstant, Arguments: []string{dlxArgumentConstant}}
	}
}

// IsClassicYarn reports whether the version string belongs to yarn 1.x.
func IsClassicYarn(probedVersion string) bool {
	trimmedVersion := strings.TrimPrefix(strings.TrimSpace(probedVersion), versionPrefixCharacterConstant)
	parsedVersion, parseError := semver.NewVersion(trimmedVersion)
	if parseError != nil {
		return strings.HasPrefix(trimmedVersion, classicYarnVersionPrefixConstant)
	}
	return parsedVersion.Major() == classicYarnMajorVersionConstant
}

// Binary returns the executable name of the manager.
func Binary(manager projectconfig.PackageManager) string {
	return string(manager)
}

// InstallArguments returns the arguments that install project dependencies.
func InstallArguments() []string {
	return []string{installArgumentConstant}
}

// VersionArguments returns the arguments used to probe whether a binary is available.
func VersionArguments() []string {
	return []string{versionFlagConstant}
}

// BootstrapBinary returns the manager used to install the other managers.
func BootstrapBinary() string {
	return npmBinaryConstant
}

// GlobalInstallArguments returns the bootstrap arguments that install manager globally.
func GlobalInstallArguments(manager projectconfig.PackageManager) []string {
	return []string{installArgumentConstant, globalFlagConstant, silentFlagConstant, string(manager)}
}

// RequiresVersionProbe reports whether ResolveExecutor needs the manager version.
func RequiresVersionProbe(manager projectconfig.PackageManager) bool {
	return manager == projectconfig.PackageManagerYarn
}

// IsBootstrapManager reports whether the manager is assumed to be installed.
func IsBootstrapManager(manager projectconfig.PackageManager) bool {
	return manager == projectconfig.PackageManagerNPM
}

// DevScriptCommand returns the command line shown to start the development server.
func DevScriptCommand(manager projectconfig.PackageManager) string {
	return strings.Join([]string{Binary(manager), devScriptConstant}, " ")
}

// InstallCommand returns the command line shown to install dependencies.
func InstallCommand(manager projectconfig.PackageManager) string {
	return strings.Join(append([]string{Binary(manager)}, InstallArguments()...), " ")
}

// LinterInitializerArguments returns the initializer invocation that follows the runner arguments.
func LinterInitializerArguments(linter projectconfig.Linter, manager projectconfig.PackageManager) []string {
	return []string{
		linterInitializerPackageConstant,
		linterInitializerCommandConstant,
		linterInitializerLinterFlagConstant,
		string(linter),
		linterInitializerManagerFlagConstant,
		string(manager),
		linterInitializerEditorsFlagConstant,
		linterInitializerEditorConstant,
		linterInitializerQuietFlagConstant,
	}
}
