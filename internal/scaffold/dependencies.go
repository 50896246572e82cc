package scaffold

import (
	"context"

	"github.com/flash-brew-digital/create-webflow-extension/internal/execshell"
	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
	"github.com/flash-brew-digital/create-webflow-extension/internal/prompt"
	"github.com/flash-brew-digital/create-webflow-extension/internal/template"
	"github.com/flash-brew-digital/create-webflow-extension/internal/ui"
)

// FileSystem exposes the filesystem queries used before cloning.
type FileSystem interface {
	Getwd() (string, error)
	DirectoryExists(path string) (bool, error)
}

// TemplateFetcher downloads a template into a directory.
type TemplateFetcher interface {
	Fetch(executionContext context.Context, source template.Source, targetDirectory string) error
}

// ManifestConfigurator rewrites the manifests of a cloned template.
type ManifestConfigurator interface {
	Configure(projectDirectory string, config projectconfig.ProjectConfig) error
}

// CommandExecutor runs external tools.
type CommandExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecuteBinary(executionContext context.Context, binary string, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// StatusReporter renders step transitions. ui.NopStatusReporter silences them.
type StatusReporter interface {
	StepStarted(message string)
	StepSucceeded(message string)
	StepFailed(message string)
	Note(message string)
}

// SummaryPrinter renders the next steps after an interactive run.
type SummaryPrinter interface {
	PrintSummary(summary ui.Summary)
}

// Dependencies groups the collaborators of a Materializer.
type Dependencies struct {
	FileSystem     FileSystem
	Fetcher        TemplateFetcher
	Configurator   ManifestConfigurator
	Executor       CommandExecutor
	Prompter       prompt.Prompter
	Reporter       StatusReporter
	SummaryPrinter SummaryPrinter
	TemplateSource template.Source
}
