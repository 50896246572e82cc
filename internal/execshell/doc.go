// Package execshell runs the external tools the scaffolder orchestrates: git,
// the selected package manager and its package runner.
//
// ShellExecutor wraps a CommandRunner with zap logging and lifecycle
// observers, and converts non-zero exits and start failures into
// CommandFailedError and CommandExecutionError values.
package execshell
