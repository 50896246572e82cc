package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
)

const (
	// PackageManifestFileNameConstant is the npm package manifest.
	PackageManifestFileNameConstant = "package.json"
	// WebflowManifestFileNameConstant is the Webflow Designer Extension manifest.
	WebflowManifestFileNameConstant    = "webflow.json"
	manifestFilePermissionsConstant    = fs.FileMode(0o644)
	readManifestErrorTemplateConstant  = "reading %s: %w"
	writeManifestErrorTemplateConstant = "writing %s: %w"
)

// FileSystem exposes the file operations required to rewrite manifests.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// Configurator rewrites the manifests of a cloned template in place.
type Configurator struct {
	fileSystem FileSystem
}

// NewConfigurator constructs a Configurator.
func NewConfigurator(fileSystem FileSystem) *Configurator {
	return &Configurator{fileSystem: fileSystem}
}

// Configure patches package.json and webflow.json in projectDirectory. Both
// documents are prepared before either is written.
func (configurator *Configurator) Configure(projectDirectory string, config projectconfig.ProjectConfig) error {
	packageManifestPath := filepath.Join(projectDirectory, PackageManifestFileNameConstant)
	webflowManifestPath := filepath.Join(projectDirectory, WebflowManifestFileNameConstant)

	packageManifest, readError := configurator.fileSystem.ReadFile(packageManifestPath)
	if readError != nil {
		return fmt.Errorf(readManifestErrorTemplateConstant, PackageManifestFileNameConstant, readError)
	}
	webflowManifest, readError := configurator.fileSystem.ReadFile(webflowManifestPath)
	if readError != nil {
		return fmt.Errorf(readManifestErrorTemplateConstant, WebflowManifestFileNameConstant, readError)
	}

	patchedPackageManifest, patchError := PatchPackageManifest(packageManifest, config.Name, config.PackageManager)
	if patchError != nil {
		return patchError
	}
	patchedWebflowManifest, patchError := PatchWebflowManifest(webflowManifest, config.Name)
	if patchError != nil {
		return patchError
	}

	if writeError := configurator.fileSystem.WriteFile(packageManifestPath, patchedPackageManifest, manifestFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(writeManifestErrorTemplateConstant, PackageManifestFileNameConstant, writeError)
	}
	if writeError := configurator.fileSystem.WriteFile(webflowManifestPath, patchedWebflowManifest, manifestFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(writeManifestErrorTemplateConstant, WebflowManifestFileNameConstant, writeError)
	}
	return nil
}
