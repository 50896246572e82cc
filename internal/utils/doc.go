// Package utils holds the ambient plumbing shared by the command line entry
// point: ConfigurationLoader layers embedded YAML, an optional
// create-webflow-extension.yaml and CREATE_WEBFLOW_EXTENSION_* environment
// variables through Viper, and LoggerFactory builds the diagnostic zap logger.
package utils
