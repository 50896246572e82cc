package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"syscall"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flash-brew-digital/create-webflow-extension/internal/execshell"
	"github.com/flash-brew-digital/create-webflow-extension/internal/filesystem"
	"github.com/flash-brew-digital/create-webflow-extension/internal/manifest"
	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
	"github.com/flash-brew-digital/create-webflow-extension/internal/prompt"
	"github.com/flash-brew-digital/create-webflow-extension/internal/scaffold"
	"github.com/flash-brew-digital/create-webflow-extension/internal/template"
	"github.com/flash-brew-digital/create-webflow-extension/internal/ui"
	"github.com/flash-brew-digital/create-webflow-extension/internal/utils"
	"github.com/flash-brew-digital/create-webflow-extension/internal/utils/flags"
)

const (
	applicationNameConstant                 = "create-webflow-extension"
	applicationUseConstant                  = applicationNameConstant + " [name]"
	versionTemplateConstant                 = "{{.Version}}\n"
	fallbackVersionConstant                 = "0.0.0-dev"
	configurationTypeConstant               = "yaml"
	environmentPrefixConstant               = "CREATE_WEBFLOW_EXTENSION"
	nameFlagNameConstant                    = "name"
	nameFlagShorthandConstant               = "n"
	nameFlagUsageConstant                   = "Project name"
	packageManagerFlagNameConstant          = "pm"
	packageManagerFlagUsageConstant         = "Package manager"
	linterFlagNameConstant                  = "linter"
	linterFlagShorthandConstant             = "l"
	linterFlagUsageConstant                 = "Linter and formatter"
	skipGitFlagNameConstant                 = "skip-git"
	skipGitFlagAliasConstant                = "sg"
	skipGitFlagUsageConstant                = "Skip initializing a git repository"
	skipInstallFlagNameConstant             = "skip-install"
	skipInstallFlagAliasConstant            = "si"
	skipInstallFlagUsageConstant            = "Skip installing dependencies"
	quietFlagNameConstant                   = "quiet"
	quietFlagShorthandConstant              = "q"
	quietFlagUsageConstant                  = "Suppress interactive prompts and visual output"
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured diagnostic log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured diagnostic log format."
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	templateSourceErrorTemplateConstant     = "invalid template configuration: %w"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	projectResolvedMessageConstant          = "project configuration resolved"
	projectNameFieldConstant                = "name"
	packageManagerFieldConstant             = "package_manager"
	linterFieldConstant                     = "linter"
	quietFieldConstant                      = "quiet"
	exitCodeSuccessConstant                 = 0
	exitCodeFailureConstant                 = 1
	operationCancelledMessageConstant       = "operation cancelled"
)

// applicationVersion is replaced at build time with -ldflags "-X".
var applicationVersion = "1.0.0"

var errOperationCancelled = errors.New(operationCancelledMessageConstant)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common   ApplicationCommonConfiguration   `mapstructure:"common"`
	Defaults ApplicationDefaultsConfiguration `mapstructure:"defaults"`
	Template ApplicationTemplateConfiguration `mapstructure:"template"`
}

// ApplicationCommonConfiguration stores diagnostic logging configuration.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationDefaultsConfiguration overrides the choices used when neither a flag nor a prompt supplies one.
type ApplicationDefaultsConfiguration struct {
	PackageManager string `mapstructure:"package_manager"`
	Linter         string `mapstructure:"linter"`
}

// ApplicationTemplateConfiguration names the template repository and its archive host.
type ApplicationTemplateConfiguration struct {
	Source         string `mapstructure:"source"`
	ArchiveBaseURL string `mapstructure:"archive_base_url"`
}

// ApplicationOption customizes an Application, mainly for tests.
type ApplicationOption func(application *Application)

// WithStreams replaces the standard input, output and error streams.
func WithStreams(input io.Reader, output io.Writer, errorOutput io.Writer) ApplicationOption {
	return func(application *Application) {
		application.input = input
		application.output = output
		application.errorOutput = errorOutput
	}
}

// WithCommandRunner replaces the process runner used for git and package managers.
func WithCommandRunner(runner execshell.CommandRunner) ApplicationOption {
	return func(application *Application) {
		application.commandRunner = runner
	}
}

// WithHTTPClient replaces the client used to download the template archive.
func WithHTTPClient(httpClient *http.Client) ApplicationOption {
	return func(application *Application) {
		application.httpClient = httpClient
	}
}

// WithVersion overrides the reported version.
func WithVersion(version string) ApplicationOption {
	return func(application *Application) {
		application.version = version
	}
}

// Application wires the Cobra root command, configuration loader, diagnostic
// logger and the scaffolding pipeline.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	input                 io.Reader
	output                io.Writer
	errorOutput           io.Writer
	palette               ui.Palette
	commandRunner         execshell.CommandRunner
	httpClient            *http.Client
	fileSystem            filesystem.OSFileSystem
	version               string

	configurationFilePath   string
	logLevelFlagValue       string
	logFormatFlagValue      string
	nameFlagValue           string
	packageManagerFlagValue string
	linterFlagValue         string
	skipGitFlagValue        bool
	skipInstallFlagValue    bool
	quietFlagValue          bool
	skipGitDefinition       flags.ToggleDefinition
	skipInstallDefinition   flags.ToggleDefinition
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication(options ...ApplicationOption) *Application {
	application := &Application{
		logger:        zap.NewNop(),
		input:         os.Stdin,
		output:        os.Stdout,
		errorOutput:   os.Stderr,
		commandRunner: execshell.NewOSCommandRunner(),
		httpClient:    http.DefaultClient,
		version:       applicationVersion,
	}
	for _, option := range options {
		option(application)
	}
	application.palette = ui.NewPalette(isTerminal(application.output))
	application.loggerFactory = utils.NewLoggerFactory(application.errorOutput)

	application.configurationLoader = utils.NewConfigurationLoader(utils.ConfigurationSource{
		Name:              applicationNameConstant,
		Type:              configurationTypeConstant,
		EnvironmentPrefix: environmentPrefixConstant,
		SearchPaths:       utils.DefaultSearchPaths(applicationNameConstant),
		Embedded:          EmbeddedDefaultConfiguration(),
	})

	cobraCommand := &cobra.Command{
		Use:           applicationUseConstant,
		Short:         ui.Description(),
		Long:          ui.Description(),
		Version:       resolveVersion(application.version),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}
	cobraCommand.SetVersionTemplate(versionTemplateConstant)
	cobraCommand.SetIn(application.input)
	cobraCommand.SetOut(application.output)
	cobraCommand.SetErr(application.errorOutput)

	application.bindFlags(cobraCommand)
	application.rootCommand = cobraCommand
	return application
}

func (application *Application) bindFlags(command *cobra.Command) {
	flagSet := command.Flags()
	flagSet.StringVarP(&application.nameFlagValue, nameFlagNameConstant, nameFlagShorthandConstant, "", nameFlagUsageConstant)
	flags.AddChoiceFlag(flagSet, &application.packageManagerFlagValue, flags.ChoiceDefinition{
		Name:          packageManagerFlagNameConstant,
		Choices:       projectconfig.PackageManagerNames(),
		DefaultChoice: string(projectconfig.DefaultPackageManager),
		Usage:         packageManagerFlagUsageConstant,
	})
	flags.AddChoiceFlag(flagSet, &application.linterFlagValue, flags.ChoiceDefinition{
		Name:          linterFlagNameConstant,
		Shorthand:     linterFlagShorthandConstant,
		Choices:       projectconfig.LinterNames(),
		DefaultChoice: string(projectconfig.DefaultLinter),
		Usage:         linterFlagUsageConstant,
	})

	application.skipGitDefinition = flags.ToggleDefinition{
		Name:    skipGitFlagNameConstant,
		Aliases: []string{skipGitFlagAliasConstant},
		Usage:   skipGitFlagUsageConstant,
	}
	flags.AddToggleFlag(flagSet, &application.skipGitFlagValue, application.skipGitDefinition)
	application.skipInstallDefinition = flags.ToggleDefinition{
		Name:    skipInstallFlagNameConstant,
		Aliases: []string{skipInstallFlagAliasConstant},
		Usage:   skipInstallFlagUsageConstant,
	}
	flags.AddToggleFlag(flagSet, &application.skipInstallFlagValue, application.skipInstallDefinition)
	flagSet.BoolVarP(&application.quietFlagValue, quietFlagNameConstant, quietFlagShorthandConstant, false, quietFlagUsageConstant)

	persistentFlagSet := command.PersistentFlags()
	persistentFlagSet.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	flags.AddChoiceFlag(persistentFlagSet, &application.logLevelFlagValue, flags.ChoiceDefinition{
		Name:          logLevelFlagNameConstant,
		Choices:       utils.LogLevelNames(),
		DefaultChoice: string(utils.LogLevelError),
		Usage:         logLevelFlagUsageConstant,
	})
	flags.AddChoiceFlag(persistentFlagSet, &application.logFormatFlagValue, flags.ChoiceDefinition{
		Name:          logFormatFlagNameConstant,
		Choices:       utils.LogFormatNames(),
		DefaultChoice: string(utils.LogFormatConsole),
		Usage:         logFormatFlagUsageConstant,
	})
}

// Run executes the command line and returns the process exit code. A
// cancelled run prints "Cancelled." and exits 0; any other failure prints
// "Error: <message>" to the error stream and exits 1.
func (application *Application) Run(executionContext context.Context, arguments []string) int {
	normalizedArguments := flags.NormalizeToggleArguments(arguments)
	if normalizedArguments == nil {
		normalizedArguments = []string{}
	}
	application.rootCommand.SetArgs(normalizedArguments)

	executionError := application.rootCommand.ExecuteContext(executionContext)
	_ = application.flushLogger()

	switch {
	case executionError == nil:
		return exitCodeSuccessConstant
	case errors.Is(executionError, errOperationCancelled), errors.Is(executionError, context.Canceled):
		ui.NewConsolePrinter(application.output, application.palette).PrintCancelled()
		return exitCodeSuccessConstant
	default:
		ui.NewConsolePrinter(application.errorOutput, application.palette).PrintError(executionError)
		return exitCodeFailureConstant
	}
}

// Execute builds a fresh application and runs it against the process arguments.
func Execute(executionContext context.Context) int {
	return NewApplication().Run(executionContext, os.Args[1:])
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}
	application.configurationMetadata = loadedConfiguration

	if command.Flags().Changed(logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}
	if command.Flags().Changed(logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}
	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)
	return nil
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	executionContext := command.Context()

	defaults, defaultsError := projectconfig.ParseDefaults(application.configuration.Defaults.PackageManager, application.configuration.Defaults.Linter)
	if defaultsError != nil {
		return defaultsError
	}
	templateSource, sourceError := template.ParseSource(application.configuration.Template.Source)
	if sourceError != nil {
		return fmt.Errorf(templateSourceErrorTemplateConstant, sourceError)
	}
	options, optionsError := application.collectOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	consolePrinter := ui.NewConsolePrinter(application.output, application.palette)
	ioPrompter := prompt.NewIOPrompter(application.input, application.output, application.palette)
	resolver := projectconfig.NewResolver(ioPrompter, defaults)

	var resolution projectconfig.Resolution
	if application.quietFlagValue {
		resolution = resolver.ResolveQuiet(options)
	} else {
		consolePrinter.PrintTitle()
		consolePrinter.PrintIntro()
		interactiveResolution, resolveError := resolver.ResolveInteractive(executionContext, options)
		if resolveError != nil {
			return resolveError
		}
		resolution = interactiveResolution
	}
	if resolution.Cancelled {
		return errOperationCancelled
	}

	config := resolution.Config
	application.logger.Debug(
		projectResolvedMessageConstant,
		zap.String(projectNameFieldConstant, config.Name),
		zap.String(packageManagerFieldConstant, string(config.PackageManager)),
		zap.String(linterFieldConstant, string(config.Linter)),
		zap.Bool(quietFieldConstant, config.Quiet),
	)

	materializer, materializerError := application.buildMaterializer(config, ioPrompter, consolePrinter, templateSource)
	if materializerError != nil {
		return materializerError
	}
	outcome, materializeError := materializer.Materialize(executionContext, config)
	if materializeError != nil {
		return materializeError
	}
	if outcome.Cancelled {
		return errOperationCancelled
	}
	return nil
}

// collectOptions turns the supplied flags into resolver options. A positional
// name takes precedence over --name.
func (application *Application) collectOptions(command *cobra.Command, arguments []string) (projectconfig.Options, error) {
	options := projectconfig.Options{}
	flagSet := command.Flags()

	if len(arguments) > 0 {
		options.Name = &arguments[0]
	} else if flagSet.Changed(nameFlagNameConstant) {
		options.Name = &application.nameFlagValue
	}
	if flagSet.Changed(packageManagerFlagNameConstant) {
		packageManager, parseError := projectconfig.ParsePackageManager(application.packageManagerFlagValue)
		if parseError != nil {
			return projectconfig.Options{}, parseError
		}
		options.PackageManager = &packageManager
	}
	if flagSet.Changed(linterFlagNameConstant) {
		linter, parseError := projectconfig.ParseLinter(application.linterFlagValue)
		if parseError != nil {
			return projectconfig.Options{}, parseError
		}
		options.Linter = &linter
	}
	if flags.ToggleChanged(flagSet, application.skipGitDefinition) {
		options.SkipGit = &application.skipGitFlagValue
	}
	if flags.ToggleChanged(flagSet, application.skipInstallDefinition) {
		options.SkipInstall = &application.skipInstallFlagValue
	}
	return options, nil
}

func (application *Application) buildMaterializer(config projectconfig.ProjectConfig, prompter prompt.Prompter, consolePrinter *ui.ConsolePrinter, templateSource template.Source) (*scaffold.Materializer, error) {
	shellExecutor, executorError := execshell.NewShellExecutor(application.logger, application.commandRunner)
	if executorError != nil {
		return nil, executorError
	}
	if application.humanReadableLoggingEnabled() {
		shellExecutor = shellExecutor.WithEventObserver(ui.NewConsoleCommandEventLogger(application.logger))
	}

	var reporter scaffold.StatusReporter = ui.NopStatusReporter{}
	if !config.Quiet {
		reporter = ui.NewConsoleStatusReporter(application.output, application.palette)
	}

	return scaffold.NewMaterializer(scaffold.Dependencies{
		FileSystem:     application.fileSystem,
		Fetcher:        template.NewArchiveFetcher(application.httpClient, application.configuration.Template.ArchiveBaseURL, application.fileSystem, application.logger),
		Configurator:   manifest.NewConfigurator(application.fileSystem),
		Executor:       shellExecutor,
		Prompter:       prompter,
		Reporter:       reporter,
		SummaryPrinter: consolePrinter,
		TemplateSource: templateSource,
	})
}

func (application *Application) humanReadableLoggingEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(application.configuration.Common.LogFormat), string(utils.LogFormatConsole))
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}
	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP), errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

// resolveVersion returns the canonical semantic version, or a development
// placeholder when the build did not stamp a valid one.
func resolveVersion(rawVersion string) string {
	parsedVersion, parseError := semver.NewVersion(strings.TrimSpace(rawVersion))
	if parseError != nil {
		return fallbackVersionConstant
	}
	return parsedVersion.String()
}

func isTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	fileInfo, statError := file.Stat()
	if statError != nil {
		return false
	}
	return fileInfo.Mode()&os.ModeCharDevice != 0
}
