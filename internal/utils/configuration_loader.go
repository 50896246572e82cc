package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	workingDirectorySearchPathConstant              = "."
	userConfigurationDirectoryNameConstant          = ".config"
	configurationReadErrorTemplateConstant          = "failed to read configuration %s: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
	defaultConfigurationTypeConstant                = "yaml"
)

// ConfigurationSource names where a ConfigurationLoader looks for values.
type ConfigurationSource struct {
	// Name is the file name without extension, e.g. create-webflow-extension.
	// Without a name the search paths are skipped.
	Name string
	// Type defaults to yaml.
	Type              string
	EnvironmentPrefix string
	SearchPaths       []string
	// Embedded holds the built-in configuration merged before any file.
	Embedded []byte
}

// ConfigurationLoader layers embedded defaults, an optional file and environment
// variables through Viper and decodes the result with mapstructure tags.
type ConfigurationLoader struct {
	source                 ConfigurationSource
	environmentKeyReplacer *strings.Replacer
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// DefaultSearchPaths returns the working directory followed by $HOME/.config/<applicationName>.
func DefaultSearchPaths(applicationName string) []string {
	searchPaths := []string{workingDirectorySearchPathConstant}
	homeDirectory, homeError := os.UserHomeDir()
	if homeError == nil && len(homeDirectory) > 0 {
		searchPaths = append(searchPaths, filepath.Join(homeDirectory, userConfigurationDirectoryNameConstant, applicationName))
	}
	return searchPaths
}

// NewConfigurationLoader constructs a loader for the provided source.
func NewConfigurationLoader(source ConfigurationSource) *ConfigurationLoader {
	source.Name = strings.TrimSpace(source.Name)
	source.Type = strings.TrimSpace(source.Type)
	if len(source.Type) == 0 {
		source.Type = defaultConfigurationTypeConstant
	}
	source.SearchPaths = append([]string(nil), source.SearchPaths...)
	source.Embedded = append([]byte(nil), source.Embedded...)
	return &ConfigurationLoader{
		source:                 source,
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// LoadConfiguration decodes the layered configuration into targetConfiguration.
// An explicit configurationFilePath must exist; a file missing from the search
// paths is not an error.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType(loader.source.Type)

	if len(loader.source.Embedded) > 0 {
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.source.Embedded)); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}
	}

	searchesPaths := len(loader.source.Name) > 0 && len(loader.source.SearchPaths) > 0
	if searchesPaths {
		viperInstance.SetConfigName(loader.source.Name)
		for _, searchPath := range loader.source.SearchPaths {
			viperInstance.AddConfigPath(searchPath)
		}
	}
	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	if len(loader.source.EnvironmentPrefix) > 0 {
		viperInstance.SetEnvPrefix(loader.source.EnvironmentPrefix)
	}
	viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	viperInstance.AutomaticEnv()

	if searchesPaths || len(configurationFilePath) > 0 {
		if readError := viperInstance.MergeInConfig(); readError != nil {
			var notFoundError viper.ConfigFileNotFoundError
			if !errors.As(readError, &notFoundError) {
				return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, viperInstance.ConfigFileUsed(), readError)
			}
		}
	}

	if unmarshalError := viperInstance.Unmarshal(targetConfiguration, viper.DecodeHook(trimStringsHook())); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

// trimStringsHook strips surrounding whitespace from every string value,
// including values supplied through the environment.
func trimStringsHook() mapstructure.DecodeHookFuncKind {
	return func(sourceKind reflect.Kind, targetKind reflect.Kind, data any) (any, error) {
		if sourceKind != reflect.String || targetKind != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(reflect.ValueOf(data).String()), nil
	}
}
