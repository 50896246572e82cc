// Package cli wires the create-webflow-extension root command: flag parsing
// with Cobra, layered configuration, the diagnostic logger, and the hand-off
// from the config resolver to the project materializer. Run maps the outcome
// to the process exit code.
package cli
