package projectconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/flash-brew-digital/create-webflow-extension/internal/naming"
	"github.com/flash-brew-digital/create-webflow-extension/internal/prompt"
)

const (
	namePromptMessageConstant            = "What is the name of your Webflow Designer Extension?"
	namePromptPlaceholderConstant        = "My Webflow Extension"
	nameRequiredMessageConstant          = "You must provide a name for your extension"
	packageManagerPromptMessageConstant  = "Package Manager"
	linterPromptMessageConstant          = "Linter and Formatter"
	skipGitPromptMessageConstant         = "Skip initializing a git repository?"
	recommendedHintConstant              = "recommended"
	prompterNotConfiguredMessageConstant = "interactive resolution requires a prompter"
	promptFailureTemplateConstant        = "%s: %w"
	invalidDefaultsTemplateConstant      = "invalid configured default: %w"
)

// ErrPrompterNotConfigured indicates interactive resolution was requested without a prompter.
var ErrPrompterNotConfigured = errors.New(prompterNotConfiguredMessageConstant)

// Options carries values supplied on the command line. Nil pointers mark values the operator did not set.
type Options struct {
	Name           *string
	PackageManager *PackageManager
	Linter         *Linter
	SkipGit        *bool
	SkipInstall    *bool
}

// Defaults carries configured fallbacks for values that were neither supplied nor prompted.
type Defaults struct {
	PackageManager PackageManager
	Linter         Linter
}

// BuiltInDefaults returns the defaults used when configuration does not override them.
func BuiltInDefaults() Defaults {
	return Defaults{PackageManager: DefaultPackageManager, Linter: DefaultLinter}
}

// ParseDefaults validates configured default names.
func ParseDefaults(packageManagerName string, linterName string) (Defaults, error) {
	defaults := BuiltInDefaults()
	if len(packageManagerName) > 0 {
		packageManager, parseError := ParsePackageManager(packageManagerName)
		if parseError != nil {
			return Defaults{}, fmt.Errorf(invalidDefaultsTemplateConstant, parseError)
		}
		defaults.PackageManager = packageManager
	}
	if len(linterName) > 0 {
		linter, parseError := ParseLinter(linterName)
		if parseError != nil {
			return Defaults{}, fmt.Errorf(invalidDefaultsTemplateConstant, parseError)
		}
		defaults.Linter = linter
	}
	return defaults, nil
}

// Resolution is the result of resolving a ProjectConfig.
type Resolution struct {
	Config    ProjectConfig
	Cancelled bool
}

// Resolver merges supplied options, defaults, and prompted answers into a ProjectConfig.
type Resolver struct {
	prompter prompt.Prompter
	defaults Defaults
}

// NewResolver constructs a Resolver. The prompter may be nil when only quiet resolution is used.
func NewResolver(prompter prompt.Prompter, defaults Defaults) *Resolver {
	if len(defaults.PackageManager) == 0 {
		defaults.PackageManager = DefaultPackageManager
	}
	if len(defaults.Linter) == 0 {
		defaults.Linter = DefaultLinter
	}
	return &Resolver{prompter: prompter, defaults: defaults}
}

// ResolveQuiet fills every missing value from defaults without prompting.
func (resolver *Resolver) ResolveQuiet(options Options) Resolution {
	nameInput := naming.DefaultProjectNameConstant
	if options.Name != nil {
		nameInput = *options.Name
	}

	return Resolution{Config: ProjectConfig{
		Name:           naming.SanitizeProjectName(nameInput),
		PackageManager: valueOrDefault(options.PackageManager, resolver.defaults.PackageManager),
		Linter:         valueOrDefault(options.Linter, resolver.defaults.Linter),
		SkipGit:        valueOrDefault(options.SkipGit, false),
		SkipInstall:    valueOrDefault(options.SkipInstall, false),
		Quiet:          true,
	}}
}

// ResolveInteractive prompts for every value that was not supplied.
func (resolver *Resolver) ResolveInteractive(executionContext context.Context, options Options) (Resolution, error) {
	if resolver.prompter == nil {
		return Resolution{}, ErrPrompterNotConfigured
	}

	config := ProjectConfig{SkipInstall: valueOrDefault(options.SkipInstall, false)}

	if options.Name != nil {
		config.Name = naming.SanitizeProjectName(*options.Name)
	} else {
		answer, promptError := resolver.prompter.Text(executionContext, prompt.TextRequest{
			Message:     namePromptMessageConstant,
			Placeholder: namePromptPlaceholderConstant,
			Validate:    requireName,
		})
		if promptError != nil {
			return Resolution{}, fmt.Errorf(promptFailureTemplateConstant, namePromptMessageConstant, promptError)
		}
		if answer.Cancelled {
			return Resolution{Cancelled: true}, nil
		}
		config.Name = naming.SanitizeProjectName(answer.Value)
	}

	if options.PackageManager != nil {
		config.PackageManager = *options.PackageManager
	} else {
		answer, promptError := resolver.prompter.Select(executionContext, prompt.SelectRequest{
			Message:      packageManagerPromptMessageConstant,
			Options:      packageManagerOptions(),
			InitialValue: string(resolver.defaults.PackageManager),
		})
		if promptError != nil {
			return Resolution{}, fmt.Errorf(promptFailureTemplateConstant, packageManagerPromptMessageConstant, promptError)
		}
		if answer.Cancelled {
			return Resolution{Cancelled: true}, nil
		}
		packageManager, parseError := ParsePackageManager(answer.Value)
		if parseError != nil {
			return Resolution{}, parseError
		}
		config.PackageManager = packageManager
	}

	if options.Linter != nil {
		config.Linter = *options.Linter
	} else {
		answer, promptError := resolver.prompter.Select(executionContext, prompt.SelectRequest{
			Message:      linterPromptMessageConstant,
			Options:      linterOptions(),
			InitialValue: string(resolver.defaults.Linter),
		})
		if promptError != nil {
			return Resolution{}, fmt.Errorf(promptFailureTemplateConstant, linterPromptMessageConstant, promptError)
		}
		if answer.Cancelled {
			return Resolution{Cancelled: true}, nil
		}
		linter, parseError := ParseLinter(answer.Value)
		if parseError != nil {
			return Resolution{}, parseError
		}
		config.Linter = linter
	}

	if options.SkipGit != nil {
		config.SkipGit = *options.SkipGit
	} else {
		answer, promptError := resolver.prompter.Confirm(executionContext, prompt.ConfirmRequest{
			Message:      skipGitPromptMessageConstant,
			InitialValue: false,
		})
		if promptError != nil {
			return Resolution{}, fmt.Errorf(promptFailureTemplateConstant, skipGitPromptMessageConstant, promptError)
		}
		if answer.Cancelled {
			return Resolution{Cancelled: true}, nil
		}
		config.SkipGit = answer.Value
	}

	return Resolution{Config: config}, nil
}

func requireName(input string) string {
	if len(input) == 0 {
		return nameRequiredMessageConstant
	}
	return ""
}

func packageManagerOptions() []prompt.Option {
	options := make([]prompt.Option, 0, len(PackageManagers()))
	for _, packageManager := range PackageManagers() {
		option := prompt.Option{Value: string(packageManager), Label: string(packageManager)}
		if packageManager == PackageManagerPNPM {
			option.Hint = recommendedHintConstant
		}
		options = append(options, option)
	}
	return options
}

func linterOptions() []prompt.Option {
	options := make([]prompt.Option, 0, len(Linters()))
	for _, linter := range Linters() {
		option := prompt.Option{Value: string(linter), Label: linterLabel(linter)}
		if linter == LinterOxlint {
			option.Hint = recommendedHintConstant
		}
		options = append(options, option)
	}
	return options
}

func linterLabel(linter Linter) string {
	switch linter {
	case LinterOxlint:
		return "Oxlint and Oxfmt"
	case LinterBiome:
		return "Biome"
	case LinterESLint:
		return "ESLint, Prettier, Stylelint"
	default:
		return string(linter)
	}
}

func valueOrDefault[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}
