package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
)

const (
	versionFlagArgumentConstant               = "--version"
	installSubcommandNameConstant             = "install"
	globalFlagArgumentConstant                = "-g"
	gitInitSubcommandNameConstant             = "init"
	linterInitializerNameConstant             = "ultracite"
	minimumGlobalInstallArgumentCountConstant = 2
)

const (
	probeStartTemplateConstant                    = "Checking whether %s is available"
	probeSuccessTemplateConstant                  = "%s is available"
	probeFailureTemplateConstant                  = "%s is not usable (exit code %d%s)"
	probeExecutionFailureTemplateConstant         = "%s is not available: %s"
	globalInstallStartTemplateConstant            = "Installing %s globally with %s"
	globalInstallSuccessTemplateConstant          = "Installed %s globally with %s"
	globalInstallFailureTemplateConstant          = "Failed to install %s globally with %s (exit code %d%s)"
	globalInstallExecutionFailureTemplateConstant = "Unable to install %s globally with %s: %s"
	dependencyStartTemplateConstant               = "Installing dependencies with %s in %s"
	dependencySuccessTemplateConstant             = "Installed dependencies with %s in %s"
	dependencyFailureTemplateConstant             = "Failed to install dependencies with %s in %s (exit code %d%s)"
	dependencyExecutionFailureTemplateConstant    = "Unable to install dependencies with %s in %s: %s"
	gitInitStartTemplateConstant                  = "Initializing git repository in %s"
	gitInitSuccessTemplateConstant                = "Initialized git repository in %s"
	gitInitFailureTemplateConstant                = "Failed to initialize git repository in %s (exit code %d%s)"
	gitInitExecutionFailureTemplateConstant       = "Unable to initialize git repository in %s: %s"
	linterSetupStartTemplateConstant              = "Running %s through %s in %s"
	linterSetupSuccessTemplateConstant            = "Completed %s through %s in %s"
	linterSetupFailureTemplateConstant            = "%s through %s failed in %s (exit code %d%s)"
	linterSetupExecutionFailureTemplateConstant   = "Unable to run %s through %s in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	switch {
	case len(arguments) == 1 && arguments[0] == versionFlagArgumentConstant:
		return formatter.describeProbeMessage(command, result, failure, stage)
	case command.Name == CommandGit && formatter.argumentAtIndex(arguments, 0) == gitInitSubcommandNameConstant:
		return formatter.describeGitInitMessage(command, result, failure, stage)
	case formatter.argumentAtIndex(arguments, 0) == installSubcommandNameConstant && containsArgument(arguments, globalFlagArgumentConstant):
		return formatter.describeGlobalInstallMessage(command, result, failure, stage)
	case len(arguments) == 1 && arguments[0] == installSubcommandNameConstant:
		return formatter.describeDependencyInstallMessage(command, result, failure, stage)
	case containsArgument(arguments, linterInitializerNameConstant):
		return formatter.describeLinterSetupMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeProbeMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	binary := string(command.Name)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(probeStartTemplateConstant, binary)
	case messageStageSuccess:
		return fmt.Sprintf(probeSuccessTemplateConstant, binary)
	case messageStageFailure:
		return fmt.Sprintf(probeFailureTemplateConstant, binary, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(probeExecutionFailureTemplateConstant, binary, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGlobalInstallMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < minimumGlobalInstallArgumentCountConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
	installedPackage := arguments[len(arguments)-1]
	installer := string(command.Name)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(globalInstallStartTemplateConstant, installedPackage, installer)
	case messageStageSuccess:
		return fmt.Sprintf(globalInstallSuccessTemplateConstant, installedPackage, installer)
	case messageStageFailure:
		return fmt.Sprintf(globalInstallFailureTemplateConstant, installedPackage, installer, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(globalInstallExecutionFailureTemplateConstant, installedPackage, installer, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeDependencyInstallMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	manager := string(command.Name)
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(dependencyStartTemplateConstant, manager, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(dependencySuccessTemplateConstant, manager, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(dependencyFailureTemplateConstant, manager, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(dependencyExecutionFailureTemplateConstant, manager, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitInitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitInitStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitInitSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitInitFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitInitExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeLinterSetupMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	runner := string(command.Name)
	workingDirectory := formatter.describeWorkingDirectory(command)
	invocation := strings.Join(formatter.argumentsFrom(command.Details.Arguments, linterInitializerNameConstant), commandArgumentsJoinSeparatorConstant)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(linterSetupStartTemplateConstant, invocation, runner, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(linterSetupSuccessTemplateConstant, invocation, runner, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(linterSetupFailureTemplateConstant, invocation, runner, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(linterSetupExecutionFailureTemplateConstant, invocation, runner, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index < 0 || index >= len(arguments) {
		return emptyStringConstant
	}
	return strings.TrimSpace(arguments[index])
}

func (formatter CommandMessageFormatter) argumentsFrom(arguments []string, firstArgument string) []string {
	for argumentIndex, argument := range arguments {
		if argument == firstArgument {
			return arguments[argumentIndex:]
		}
	}
	return arguments
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}
