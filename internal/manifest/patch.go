package manifest

import (
	"fmt"

	"github.com/flash-brew-digital/create-webflow-extension/internal/projectconfig"
)

const (
	nameFieldConstant                  = "name"
	packageManagerFieldConstant        = "packageManager"
	parsePackageErrorTemplateConstant  = "parsing package.json: %w"
	parseWebflowErrorTemplateConstant  = "parsing webflow.json: %w"
	updatePackageErrorTemplateConstant = "updating package.json: %w"
	updateWebflowErrorTemplateConstant = "updating webflow.json: %w"
)

// PatchPackageManifest sets the package name. The packageManager field pins
// pnpm in the template and is removed for every other manager.
func PatchPackageManifest(data []byte, projectName string, packageManager projectconfig.PackageManager) ([]byte, error) {
	document, parseError := ParseDocument(data)
	if parseError != nil {
		return nil, fmt.Errorf(parsePackageErrorTemplateConstant, parseError)
	}
	if setError := document.SetString(nameFieldConstant, projectName); setError != nil {
		return nil, fmt.Errorf(updatePackageErrorTemplateConstant, setError)
	}
	if packageManager != projectconfig.PackageManagerPNPM {
		document.Delete(packageManagerFieldConstant)
	}
	return document.Marshal()
}

// PatchWebflowManifest sets the extension name and validates it against the
// schema. Members the tool does not write pass through unchecked.
func PatchWebflowManifest(data []byte, projectName string) ([]byte, error) {
	document, parseError := ParseDocument(data)
	if parseError != nil {
		return nil, fmt.Errorf(parseWebflowErrorTemplateConstant, parseError)
	}
	if setError := document.SetString(nameFieldConstant, projectName); setError != nil {
		return nil, fmt.Errorf(updateWebflowErrorTemplateConstant, setError)
	}

	patchedManifest, marshalError := document.Marshal()
	if marshalError != nil {
		return nil, fmt.Errorf(updateWebflowErrorTemplateConstant, marshalError)
	}
	if validationError := ValidateWebflowManifest(patchedManifest, nameFieldConstant); validationError != nil {
		return nil, validationError
	}
	return patchedManifest, nil
}
