package execshell

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandNameFieldConstant                  = "command"
	commandArgumentsFieldConstant             = "arguments"
	workingDirectoryFieldConstant             = "working_directory"
	exitCodeFieldConstant                     = "exit_code"
	standardErrorFieldConstant                = "stderr"
	commandStartedLogMessageConstant          = "command started"
	commandCompletedLogMessageConstant        = "command completed"
	commandFailedLogMessageConstant           = "command exited with failure"
	commandExecutionFailedLogMessageConstant  = "command could not be executed"
)

// CommandName identifies an executable invoked through the shell executor.
type CommandName string

// Executables the scaffolder invokes by a fixed name. Package managers and
// package runners are named at call time.
const (
	CommandGit CommandName = "git"
	CommandNPM CommandName = "npm"
)

// CommandDetails describes the arguments and working directory for a command invocation.
type CommandDetails struct {
	Arguments        []string
	WorkingDirectory string
}

// ShellCommand couples an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a finished process.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner starts processes. OSCommandRunner is the production implementation.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

var (
	// ErrLoggerNotConfigured indicates the executor was created without a logger.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates the executor was created without a runner.
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
)

// CommandFailedError reports a process that ran and exited with a non-zero code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command together with its exit code and trimmed standard error.
func (failure CommandFailedError) Error() string {
	return CommandMessageFormatter{}.BuildFailureMessage(failure.Command, failure.Result)
}

// CommandExecutionError reports a process that could not be started or was interrupted.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the command and the underlying cause.
func (failure CommandExecutionError) Error() string {
	return CommandMessageFormatter{}.BuildExecutionFailureMessage(failure.Command, failure.Cause)
}

// Unwrap exposes the underlying cause.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

// ShellExecutor runs commands through a CommandRunner, logging every invocation
// at debug level and notifying an optional observer about the command lifecycle.
type ShellExecutor struct {
	logger   *zap.Logger
	runner   CommandRunner
	observer CommandEventObserver
}

// NewShellExecutor validates dependencies and constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	return &ShellExecutor{
		logger:   logger,
		runner:   runner,
		observer: noopCommandEventObserver{},
	}, nil
}

// WithEventObserver returns a copy of the executor that reports lifecycle events to observer.
func (executor *ShellExecutor) WithEventObserver(observer CommandEventObserver) *ShellExecutor {
	observedExecutor := *executor
	if observer == nil {
		observer = noopCommandEventObserver{}
	}
	observedExecutor.observer = observer
	return &observedExecutor
}

// Execute runs the command. A non-zero exit code yields CommandFailedError; a
// runner failure or an interrupted context yields CommandExecutionError.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logStarted(command)
	executor.observer.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError == nil && executionContext != nil && executionContext.Err() != nil {
		runError = executionContext.Err()
	}
	if runError != nil {
		executor.logExecutionFailure(command, runError)
		executor.observer.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.logCompleted(command, executionResult)
	executor.observer.CommandCompleted(command, executionResult)
	if executionResult.ExitCode != 0 {
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}
	return executionResult, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

// ExecuteBinary runs an executable chosen at call time, such as a package manager or package runner.
func (executor *ShellExecutor) ExecuteBinary(executionContext context.Context, binary string, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandName(binary), Details: details})
}

func (executor *ShellExecutor) logStarted(command ShellCommand) {
	executor.logger.Debug(commandStartedLogMessageConstant, commandFields(command)...)
}

func (executor *ShellExecutor) logCompleted(command ShellCommand, result ExecutionResult) {
	if result.ExitCode != 0 {
		fields := append(commandFields(command),
			zap.Int(exitCodeFieldConstant, result.ExitCode),
			zap.String(standardErrorFieldConstant, strings.TrimSpace(result.StandardError)),
		)
		executor.logger.Debug(commandFailedLogMessageConstant, fields...)
		return
	}
	executor.logger.Debug(commandCompletedLogMessageConstant, append(commandFields(command), zap.Int(exitCodeFieldConstant, result.ExitCode))...)
}

func (executor *ShellExecutor) logExecutionFailure(command ShellCommand, failure error) {
	executor.logger.Debug(commandExecutionFailedLogMessageConstant, append(commandFields(command), zap.Error(failure))...)
}

func commandFields(command ShellCommand) []zap.Field {
	return []zap.Field{
		zap.String(commandNameFieldConstant, string(command.Name)),
		zap.Strings(commandArgumentsFieldConstant, command.Details.Arguments),
		zap.String(workingDirectoryFieldConstant, command.Details.WorkingDirectory),
	}
}
