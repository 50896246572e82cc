package projectconfig

import (
	"fmt"
	"strings"
)

const (
	packageManagerPNPMStringConstant          = "pnpm"
	packageManagerNPMStringConstant           = "npm"
	packageManagerYarnStringConstant          = "yarn"
	packageManagerBunStringConstant           = "bun"
	linterOxlintStringConstant                = "oxlint"
	linterBiomeStringConstant                 = "biome"
	linterESLintStringConstant                = "eslint"
	unsupportedPackageManagerTemplateConstant = "unsupported package manager %q (expected one of %s)"
	unsupportedLinterTemplateConstant         = "unsupported linter %q (expected one of %s)"
	supportedValuesSeparatorConstant          = ", "
	supportedValuesQuotedTemplateConstant     = "%q"
)

// PackageManager enumerates the JavaScript package managers a project can be set up with.
type PackageManager string

// Supported package managers.
const (
	PackageManagerPNPM PackageManager = PackageManager(packageManagerPNPMStringConstant)
	PackageManagerNPM  PackageManager = PackageManager(packageManagerNPMStringConstant)
	PackageManagerYarn PackageManager = PackageManager(packageManagerYarnStringConstant)
	PackageManagerBun  PackageManager = PackageManager(packageManagerBunStringConstant)
)

// Linter enumerates the linter and formatter toolchains the initializer can install.
type Linter string

// Supported linters.
const (
	LinterOxlint Linter = Linter(linterOxlintStringConstant)
	LinterBiome  Linter = Linter(linterBiomeStringConstant)
	LinterESLint Linter = Linter(linterESLintStringConstant)
)

// Built-in defaults applied when neither flags nor configuration choose a value.
const (
	DefaultPackageManager = PackageManagerPNPM
	DefaultLinter         = LinterOxlint
)

// PackageManagers lists the supported package managers in presentation order.
func PackageManagers() []PackageManager {
	return []PackageManager{PackageManagerPNPM, PackageManagerNPM, PackageManagerYarn, PackageManagerBun}
}

// Linters lists the supported linters in presentation order.
func Linters() []Linter {
	return []Linter{LinterOxlint, LinterBiome, LinterESLint}
}

// ParsePackageManager converts user input into a PackageManager.
func ParsePackageManager(rawValue string) (PackageManager, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	for _, packageManager := range PackageManagers() {
		if string(packageManager) == normalizedValue {
			return packageManager, nil
		}
	}
	return "", fmt.Errorf(unsupportedPackageManagerTemplateConstant, rawValue, quoteValues(PackageManagerNames()))
}

// ParseLinter converts user input into a Linter.
func ParseLinter(rawValue string) (Linter, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	for _, linter := range Linters() {
		if string(linter) == normalizedValue {
			return linter, nil
		}
	}
	return "", fmt.Errorf(unsupportedLinterTemplateConstant, rawValue, quoteValues(LinterNames()))
}

// PackageManagerNames returns the package manager identifiers as strings.
func PackageManagerNames() []string {
	names := make([]string, 0, len(PackageManagers()))
	for _, packageManager := range PackageManagers() {
		names = append(names, string(packageManager))
	}
	return names
}

// LinterNames returns the linter identifiers as strings.
func LinterNames() []string {
	names := make([]string, 0, len(Linters()))
	for _, linter := range Linters() {
		names = append(names, string(linter))
	}
	return names
}

func quoteValues(values []string) string {
	quotedValues := make([]string, 0, len(values))
	for _, value := range values {
		quotedValues = append(quotedValues, fmt.Sprintf(supportedValuesQuotedTemplateConstant, value))
	}
	return strings.Join(quotedValues, supportedValuesSeparatorConstant)
}

// ProjectConfig is the fully resolved description of the project to scaffold.
// It is built once by the Resolver and passed by value afterwards.
type ProjectConfig struct {
	Name           string
	PackageManager PackageManager
	Linter         Linter
	SkipGit        bool
	SkipInstall    bool
	Quiet          bool
}
