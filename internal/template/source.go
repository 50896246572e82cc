package template

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultSourceConstant names the starter template cloned by default.
	DefaultSourceConstant = "Flash-Brew-Digital/webflow-extension-starter#template"
	// DefaultArchiveBaseURLConstant is the archive host for GitHub repositories.
	DefaultArchiveBaseURLConstant = "https://codeload.github.com"
	defaultReferenceConstant      = "HEAD"
	referenceSeparatorConstant    = "#"
	pathSeparatorConstant         = "/"
	sourceStringTemplateConstant  = "%s/%s#%s"
	invalidSourceMessageConstant  = "invalid template source"
	invalidSourceTemplateConstant = "%w %q: expected owner/repository[#reference]"
)

// ErrInvalidSource indicates a template source that does not name an owner and repository.
var ErrInvalidSource = errors.New(invalidSourceMessageConstant)

// Source identifies a repository snapshot to download.
type Source struct {
	Owner      string
	Repository string
	Reference  string
}

// ParseSource parses owner/repository#reference. The reference defaults to HEAD.
func ParseSource(rawSource string) (Source, error) {
	trimmedSource := strings.TrimSpace(rawSource)
	repositoryPart, reference, hasReference := strings.Cut(trimmedSource, referenceSeparatorConstant)
	if !hasReference || len(strings.TrimSpace(reference)) == 0 {
		reference = defaultReferenceConstant
	}

	owner, repository, hasRepository := strings.Cut(repositoryPart, pathSeparatorConstant)
	owner = strings.TrimSpace(owner)
	repository = strings.TrimSpace(repository)
	if !hasRepository || len(owner) == 0 || len(repository) == 0 || strings.Contains(repository, pathSeparatorConstant) {
		return Source{}, fmt.Errorf(invalidSourceTemplateConstant, ErrInvalidSource, rawSource)
	}

	return Source{Owner: owner, Repository: repository, Reference: strings.TrimSpace(reference)}, nil
}

// String renders the source in owner/repository#reference form.
func (source Source) String() string {
	return fmt.Sprintf(sourceStringTemplateConstant, source.Owner, source.Repository, source.Reference)
}
