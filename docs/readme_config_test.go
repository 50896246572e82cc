package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/flash-brew-digital/create-webflow-extension/cmd/cli"
	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
	"github.com/flash-brew-digital/create-webflow-extension/internal/template"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# create-webflow-extension.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

type readmeConfiguration struct {
	Defaults struct {
		PackageManager string `yaml:"package_manager"`
		Linter         string `yaml:"linter"`
	} `yaml:"defaults"`
	Template struct {
		Source string `yaml:"source"`
	} `yaml:"template"`
}

func readmeConfigurationSnippet(testInstance *testing.T) string {
	testInstance.Helper()
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	contentBytes, readError := os.ReadFile(filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant))
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	fenceEndRelativeIndex := strings.Index(contentText[headerIndex:], yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : headerIndex+fenceEndRelativeIndex])
}

func TestReadmeConfigurationMatchesEmbeddedDefaults(testInstance *testing.T) {
	snippet := readmeConfigurationSnippet(testInstance)

	var documented map[string]any
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippet), &documented))
	var embedded map[string]any
	require.NoError(testInstance, yaml.Unmarshal(cli.EmbeddedDefaultConfiguration(), &embedded))

	require.Empty(testInstance, cmp.Diff(embedded, documented))
}

func TestReadmeConfigurationValuesAreValid(testInstance *testing.T) {
	var configuration readmeConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(readmeConfigurationSnippet(testInstance)), &configuration))

	defaults, defaultsError := projectconfig.ParseDefaults(configuration.Defaults.PackageManager, configuration.Defaults.Linter)
	require.NoError(testInstance, defaultsError)
	require.Equal(testInstance, projectconfig.BuiltInDefaults(), defaults)

	_, sourceError := template.ParseSource(configuration.Template.Source)
	require.NoError(testInstance, sourceError)
}
