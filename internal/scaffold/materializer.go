package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/flash-brew-digital/create-webflow-extension/internal/execshell"
	"github.com/flash-brew-digital/create-webflow-extension/internal/packagemanager"
	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
	"github.com/flash-brew-digital/create-webflow-extension/internal/prompt"
	"github.com/flash-brew-digital/create-webflow-extension/internal/ui"
)

const (
	targetDirectoryExistsMessageConstant     = "already exists"
	cloneFailedMessageConstant               = "could not clone the template"
	configureFailedMessageConstant           = "could not configure the extension"
	packageManagerUnavailableMessageConstant = "package manager unavailable"
	linterSetupFailedMessageConstant         = "could not set up the linter and formatter"
	dependencyInstallFailedMessageConstant   = "could not install the dependencies"
	dependenciesNotConfiguredMessageConstant = "materializer dependencies not configured"
)

const (
	targetDirectoryExistsTemplateConstant     = "Directory %q %w!"
	stepFailureTemplateConstant               = "%w: %w"
	packageManagerUnavailableTemplateConstant = "%w: could not install %s, install it manually and try again: %w"
	workingDirectoryErrorTemplateConstant     = "resolving working directory: %w"
	directoryInspectionErrorTemplateConstant  = "inspecting %s: %w"
	overwritePromptTemplateConstant           = "Directory %q already exists. Overwrite?"
	gitInitArgumentConstant                   = "init"
)

const (
	cloneStartedMessageConstant             = "Cloning the built-in template..."
	cloneSucceededMessageConstant           = "Template cloned!"
	cloneFailedStatusConstant               = "Sorry, we could not clone the template"
	configureStartedMessageConstant         = "Configuring your extension..."
	configureSucceededMessageConstant       = "Extension configured!"
	configureFailedStatusConstant           = "Sorry, we could not configure the extension"
	packageManagerStartedTemplateConstant   = "Checking for %s..."
	packageManagerSucceededTemplateConstant = "%s is ready!"
	packageManagerFailedTemplateConstant    = "Sorry, we could not install %s. Please install it manually and try again."
	linterStartedMessageConstant            = "Setting up your linter and formatter..."
	linterSucceededMessageConstant          = "Linter and formatter set up!"
	linterFailedStatusConstant              = "Sorry, we could not set up the linter and formatter"
	gitStartedMessageConstant               = "Initializing git repository..."
	gitSucceededMessageConstant             = "Git repository initialized!"
	gitFailedStatusConstant                 = "Sorry, we could not initialize a git repository"
	gitMissingNoteConstant                  = "Git is not installed, skipping git initialization. Visit https://git-scm.com/install/ to install it."
	installStartedTemplateConstant          = "Installing dependencies with %s..."
	installSucceededMessageConstant         = "Dependencies installed!"
	installFailedStatusConstant             = "Sorry, we could not install the dependencies"
)

var (
	// ErrTargetDirectoryExists indicates the project directory exists and a quiet run cannot ask to overwrite it.
	ErrTargetDirectoryExists = errors.New(targetDirectoryExistsMessageConstant)
	// ErrCloneFailed indicates the template could not be downloaded or extracted.
	ErrCloneFailed = errors.New(cloneFailedMessageConstant)
	// ErrConfigureFailed indicates the manifests could not be rewritten.
	ErrConfigureFailed = errors.New(configureFailedMessageConstant)
	// ErrPackageManagerUnavailable indicates the selected package manager is missing and could not be installed.
	ErrPackageManagerUnavailable = errors.New(packageManagerUnavailableMessageConstant)
	// ErrLinterSetupFailed indicates the linter initializer failed.
	ErrLinterSetupFailed = errors.New(linterSetupFailedMessageConstant)
	// ErrDependencyInstallFailed indicates the dependency install failed.
	ErrDependencyInstallFailed = errors.New(dependencyInstallFailedMessageConstant)
	// ErrDependenciesNotConfigured indicates a Materializer built without its collaborators.
	ErrDependenciesNotConfigured = errors.New(dependenciesNotConfiguredMessageConstant)
)

// Outcome describes a finished materialization.
type Outcome struct {
	Cancelled       bool
	TargetDirectory string
	GitInitialized  bool
}

// Materializer runs the scaffolding pipeline.
type Materializer struct {
	dependencies Dependencies
}

// NewMaterializer validates dependencies and constructs a Materializer. Reporter
// and SummaryPrinter are optional.
func NewMaterializer(dependencies Dependencies) (*Materializer, error) {
	if dependencies.FileSystem == nil || dependencies.Fetcher == nil || dependencies.Configurator == nil || dependencies.Executor == nil {
		return nil, ErrDependenciesNotConfigured
	}
	if dependencies.Reporter == nil {
		dependencies.Reporter = ui.NopStatusReporter{}
	}
	return &Materializer{dependencies: dependencies}, nil
}

// Materialize creates <cwd>/<config.Name> and runs every setup step in order.
func (materializer *Materializer) Materialize(executionContext context.Context, config projectconfig.ProjectConfig) (Outcome, error) {
	workingDirectory, workingDirectoryError := materializer.dependencies.FileSystem.Getwd()
	if workingDirectoryError != nil {
		return Outcome{}, fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
	}
	targetDirectory := filepath.Join(workingDirectory, config.Name)
	outcome := Outcome{TargetDirectory: targetDirectory}

	proceed, preflightError := materializer.confirmTarget(executionContext, config, targetDirectory)
	if preflightError != nil {
		return outcome, preflightError
	}
	if !proceed {
		outcome.Cancelled = true
		return outcome, nil
	}

	if cloneError := materializer.cloneTemplate(executionContext, targetDirectory); cloneError != nil {
		return outcome, cloneError
	}
	if configureError := materializer.configureManifests(targetDirectory, config); configureError != nil {
		return outcome, configureError
	}
	probedVersion, ensureError := materializer.ensurePackageManager(executionContext, config.PackageManager)
	if ensureError != nil {
		return outcome, ensureError
	}
	if linterError := materializer.setUpLinter(executionContext, config, targetDirectory, probedVersion); linterError != nil {
		return outcome, linterError
	}
	if !config.SkipGit {
		outcome.GitInitialized = materializer.initializeGit(executionContext, targetDirectory)
	}
	if !config.SkipInstall {
		if installError := materializer.installDependencies(executionContext, config.PackageManager, targetDirectory); installError != nil {
			return outcome, installError
		}
	}

	if !config.Quiet && materializer.dependencies.SummaryPrinter != nil {
		materializer.dependencies.SummaryPrinter.PrintSummary(ui.Summary{
			ProjectName:    config.Name,
			InstallCommand: packagemanager.InstallCommand(config.PackageManager),
			DevCommand:     packagemanager.DevScriptCommand(config.PackageManager),
			InstallSkipped: config.SkipInstall,
		})
	}
	return outcome, nil
}

// confirmTarget reports whether the pipeline may write into targetDirectory.
func (materializer *Materializer) confirmTarget(executionContext context.Context, config projectconfig.ProjectConfig, targetDirectory string) (bool, error) {
	exists, inspectionError := materializer.dependencies.FileSystem.DirectoryExists(targetDirectory)
	if inspectionError != nil {
		return false, fmt.Errorf(directoryInspectionErrorTemplateConstant, targetDirectory, inspectionError)
	}
	if !exists {
		return true, nil
	}
	if config.Quiet || materializer.dependencies.Prompter == nil {
		return false, fmt.Errorf(targetDirectoryExistsTemplateConstant, config.Name, ErrTargetDirectoryExists)
	}

	answer, promptError := materializer.dependencies.Prompter.Confirm(executionContext, prompt.ConfirmRequest{
		Message:      fmt.Sprintf(overwritePromptTemplateConstant, config.Name),
		InitialValue: false,
	})
	if promptError != nil {
		return false, promptError
	}
	return !answer.Cancelled && answer.Value, nil
}

func (materializer *Materializer) cloneTemplate(executionContext context.Context, targetDirectory string) error {
	reporter := materializer.dependencies.Reporter
	reporter.StepStarted(cloneStartedMessageConstant)
	if fetchError := materializer.dependencies.Fetcher.Fetch(executionContext, materializer.dependencies.TemplateSource, targetDirectory); fetchError != nil {
		reporter.StepFailed(cloneFailedStatusConstant)
		return fmt.Errorf(stepFailureTemplateConstant, ErrCloneFailed, fetchError)
	}
	reporter.StepSucceeded(cloneSucceededMessageConstant)
	return nil
}

func (materializer *Materializer) configureManifests(targetDirectory string, config projectconfig.ProjectConfig) error {
	reporter := materializer.dependencies.Reporter
	reporter.StepStarted(configureStartedMessageConstant)
	if configureError := materializer.dependencies.Configurator.Configure(targetDirectory, config); configureError != nil {
		reporter.StepFailed(configureFailedStatusConstant)
		return fmt.Errorf(stepFailureTemplateConstant, ErrConfigureFailed, configureError)
	}
	reporter.StepSucceeded(configureSucceededMessageConstant)
	return nil
}

// ensurePackageManager makes sure the manager binary runs, installing it with
// the bootstrap manager when needed. It returns the probed version output.
func (materializer *Materializer) ensurePackageManager(executionContext context.Context, manager projectconfig.PackageManager) (string, error) {
	if packagemanager.IsBootstrapManager(manager) {
		return "", nil
	}

	reporter := materializer.dependencies.Reporter
	binary := packagemanager.Binary(manager)
	reporter.StepStarted(fmt.Sprintf(packageManagerStartedTemplateConstant, binary))

	probeResult, probeError := materializer.probe(executionContext, binary)
	if probeError == nil {
		reporter.StepSucceeded(fmt.Sprintf(packageManagerSucceededTemplateConstant, binary))
		return probeResult.StandardOutput, nil
	}
	if contextError := executionContext.Err(); contextError != nil {
		return "", contextError
	}

	_, installError := materializer.dependencies.Executor.ExecuteBinary(executionContext, packagemanager.BootstrapBinary(), execshell.CommandDetails{
		Arguments: packagemanager.GlobalInstallArguments(manager),
	})
	if installError != nil {
		reporter.StepFailed(fmt.Sprintf(packageManagerFailedTemplateConstant, binary))
		return "", fmt.Errorf(packageManagerUnavailableTemplateConstant, ErrPackageManagerUnavailable, binary, installError)
	}

	reporter.StepSucceeded(fmt.Sprintf(packageManagerSucceededTemplateConstant, binary))
	return "", nil
}

func (materializer *Materializer) setUpLinter(executionContext context.Context, config projectconfig.ProjectConfig, targetDirectory string, probedVersion string) error {
	reporter := materializer.dependencies.Reporter
	reporter.StepStarted(linterStartedMessageConstant)

	if packagemanager.RequiresVersionProbe(config.PackageManager) && len(strings.TrimSpace(probedVersion)) == 0 {
		probeResult, probeError := materializer.probe(executionContext, packagemanager.Binary(config.PackageManager))
		if probeError != nil {
			reporter.StepFailed(linterFailedStatusConstant)
			return fmt.Errorf(stepFailureTemplateConstant, ErrLinterSetupFailed, probeError)
		}
		probedVersion = probeResult.StandardOutput
	}

	runner := packagemanager.ResolveExecutor(config.PackageManager, probedVersion)
	_, runError := materializer.dependencies.Executor.ExecuteBinary(executionContext, runner.Binary, execshell.CommandDetails{
		Arguments:        runner.Command(packagemanager.LinterInitializerArguments(config.Linter, config.PackageManager)...),
		WorkingDirectory: targetDirectory,
	})
	if runError != nil {
		reporter.StepFailed(linterFailedStatusConstant)
		return fmt.Errorf(stepFailureTemplateConstant, ErrLinterSetupFailed, runError)
	}
	reporter.StepSucceeded(linterSucceededMessageConstant)
	return nil
}

// initializeGit runs git init and reports whether a repository was created.
// A missing git binary and a failed init are reported but never fatal.
func (materializer *Materializer) initializeGit(executionContext context.Context, targetDirectory string) bool {
	reporter := materializer.dependencies.Reporter
	reporter.StepStarted(gitStartedMessageConstant)

	if _, probeError := materializer.dependencies.Executor.ExecuteGit(executionContext, execshell.CommandDetails{Arguments: packagemanager.VersionArguments()}); probeError != nil {
		reporter.Note(gitMissingNoteConstant)
		return false
	}

	if _, initError := materializer.dependencies.Executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitInitArgumentConstant},
		WorkingDirectory: targetDirectory,
	}); initError != nil {
		reporter.StepFailed(gitFailedStatusConstant)
		return false
	}

	reporter.StepSucceeded(gitSucceededMessageConstant)
	return true
}

func (materializer *Materializer) installDependencies(executionContext context.Context, manager projectconfig.PackageManager, targetDirectory string) error {
	reporter := materializer.dependencies.Reporter
	reporter.StepStarted(fmt.Sprintf(installStartedTemplateConstant, packagemanager.Binary(manager)))

	if _, installError := materializer.dependencies.Executor.ExecuteBinary(executionContext, packagemanager.Binary(manager), execshell.CommandDetails{
		Arguments:        packagemanager.InstallArguments(),
		WorkingDirectory: targetDirectory,
	}); installError != nil {
		reporter.StepFailed(installFailedStatusConstant)
		return fmt.Errorf(stepFailureTemplateConstant, ErrDependencyInstallFailed, installError)
	}

	reporter.StepSucceeded(installSucceededMessageConstant)
	return nil
}

func (materializer *Materializer) probe(executionContext context.Context, binary string) (execshell.ExecutionResult, error) {
	return materializer.dependencies.Executor.ExecuteBinary(executionContext, binary, execshell.CommandDetails{Arguments: packagemanager.VersionArguments()})
}
