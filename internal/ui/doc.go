// Package ui renders the human-facing console output of the scaffolder: the
// title and next-steps summary, per-step status lines, prompt styling and the
// command event log. Diagnostics stay on the structured zap logger.
package ui
