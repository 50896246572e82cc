package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	webflowSchemaResourceConstant        = "webflow.schema.json"
	instancePathSeparatorConstant        = "/"
	issueSeparatorConstant               = "; "
	issueTemplateConstant                = "%s: %s"
	rootInstancePathConstant             = "(root)"
	invalidManifestMessageConstant       = "webflow.json does not match the manifest schema"
	invalidManifestTemplateConstant      = "%w: %s"
	schemaUnmarshalErrorTemplateConstant = "unmarshaling schema JSON: %w"
	schemaResourceErrorTemplateConstant  = "adding schema resource: %w"
	schemaCompileErrorTemplateConstant   = "compiling schema: %w"
	schemaLoadErrorTemplateConstant      = "loading schema: %w"
	instanceParseErrorTemplateConstant   = "preparing webflow.json for validation: %w"
)

//go:embed schema/webflow.schema.json
var webflowSchemaBytes []byte

var (
	compiledWebflowSchema *jsonschema.Schema
	compileWebflowOnce    sync.Once
	compileWebflowError   error
	issuePrinter          = message.NewPrinter(language.English)
)

// ErrInvalidWebflowManifest indicates webflow.json content rejected by the schema.
var ErrInvalidWebflowManifest = errors.New(invalidManifestMessageConstant)

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Path    string
	Message string
}

func webflowSchema() (*jsonschema.Schema, error) {
	compileWebflowOnce.Do(func() {
		schemaDocument, unmarshalError := jsonschema.UnmarshalJSON(bytes.NewReader(webflowSchemaBytes))
		if unmarshalError != nil {
			compileWebflowError = fmt.Errorf(schemaUnmarshalErrorTemplateConstant, unmarshalError)
			return
		}

		compiler := jsonschema.NewCompiler()
		if resourceError := compiler.AddResource(webflowSchemaResourceConstant, schemaDocument); resourceError != nil {
			compileWebflowError = fmt.Errorf(schemaResourceErrorTemplateConstant, resourceError)
			return
		}
		compiledWebflowSchema, compileWebflowError = compiler.Compile(webflowSchemaResourceConstant)
		if compileWebflowError != nil {
			compileWebflowError = fmt.Errorf(schemaCompileErrorTemplateConstant, compileWebflowError)
		}
	})
	return compiledWebflowSchema, compileWebflowError
}

// ValidateWebflowManifest checks webflow.json content against the embedded schema.
// Schema violations are reported as ErrInvalidWebflowManifest with every issue
// listed. When members are given, only violations inside those top-level
// members are reported.
func ValidateWebflowManifest(data []byte, members ...string) error {
	schema, schemaError := webflowSchema()
	if schemaError != nil {
		return fmt.Errorf(schemaLoadErrorTemplateConstant, schemaError)
	}

	instance, instanceError := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if instanceError != nil {
		return fmt.Errorf(instanceParseErrorTemplateConstant, instanceError)
	}

	validationError := schema.Validate(instance)
	if validationError == nil {
		return nil
	}

	var schemaViolation *jsonschema.ValidationError
	if !errors.As(validationError, &schemaViolation) {
		return validationError
	}

	issues := filterIssues(collectIssues(schemaViolation, nil), members)
	if len(issues) == 0 {
		return nil
	}
	renderedIssues := make([]string, 0, len(issues))
	for _, issue := range issues {
		renderedIssues = append(renderedIssues, fmt.Sprintf(issueTemplateConstant, issue.Path, issue.Message))
	}
	return fmt.Errorf(invalidManifestTemplateConstant, ErrInvalidWebflowManifest, strings.Join(renderedIssues, issueSeparatorConstant))
}

func collectIssues(violation *jsonschema.ValidationError, issues []ValidationIssue) []ValidationIssue {
	if len(violation.Causes) > 0 {
		for _, cause := range violation.Causes {
			issues = collectIssues(cause, issues)
		}
		return issues
	}

	issuePath := rootInstancePathConstant
	if len(violation.InstanceLocation) > 0 {
		issuePath = instancePathSeparatorConstant + strings.Join(violation.InstanceLocation, instancePathSeparatorConstant)
	}
	issueMessage := violation.Error()
	if violation.ErrorKind != nil {
		issueMessage = violation.ErrorKind.LocalizedString(issuePrinter)
	}
	return append(issues, ValidationIssue{Path: issuePath, Message: issueMessage})
}

func filterIssues(issues []ValidationIssue, members []string) []ValidationIssue {
	if len(members) == 0 {
		return issues
	}
	filtered := make([]ValidationIssue, 0, len(issues))
	for _, issue := range issues {
		for _, member := range members {
			memberPath := instancePathSeparatorConstant + member
			if issue.Path == memberPath || strings.HasPrefix(issue.Path, memberPath+instancePathSeparatorConstant) {
				filtered = append(filtered, issue)
				break
			}
		}
	}
	return filtered
}
