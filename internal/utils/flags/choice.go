package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderPrefix       = "<"
	choicePlaceholderSuffix       = ">"
	choiceSeparatorLiteral        = "|"
	choiceUsageEmptyTemplate      = "`%s`"
	choiceUsageFullTemplate       = "`%s` %s"
	choiceTypeNameConstant        = "string"
	choiceListSeparatorConstant   = ", "
	choiceQuotedTemplateConstant  = "%q"
	choiceInvalidTemplateConstant = "invalid value %q (expected one of %s)"
)

// ChoiceDefinition describes a flag restricted to a fixed set of values.
type ChoiceDefinition struct {
	Name          string
	Shorthand     string
	Choices       []string
	DefaultChoice string
	Usage         string
}

// AddChoiceFlag registers a string flag that accepts only the defined choices,
// case-insensitively, and stores the canonical spelling in target. The default
// choice is highlighted in the usage text but not assigned to target.
func AddChoiceFlag(flagSet *pflag.FlagSet, target *string, definition ChoiceDefinition) {
	if flagSet == nil || len(definition.Name) == 0 {
		return
	}
	value := &choiceFlagValue{choices: definition.Choices, target: target}
	flagSet.VarP(value, definition.Name, definition.Shorthand, FormatChoiceUsage(definition.DefaultChoice, definition.Choices, definition.Usage))
}

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := buildChoicePlaceholder(defaultChoice, choices)
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

type choiceFlagValue struct {
	choices []string
	target  *string
	current string
}

func (value *choiceFlagValue) Set(rawValue string) error {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	for _, choice := range value.choices {
		if strings.ToLower(strings.TrimSpace(choice)) != normalizedValue {
			continue
		}
		value.current = strings.TrimSpace(choice)
		if value.target != nil {
			*value.target = value.current
		}
		return nil
	}
	return fmt.Errorf(choiceInvalidTemplateConstant, rawValue, quoteChoices(value.choices))
}

func (value *choiceFlagValue) String() string {
	if value == nil {
		return ""
	}
	return value.current
}

func (value *choiceFlagValue) Type() string {
	return choiceTypeNameConstant
}

func quoteChoices(choices []string) string {
	quoted := make([]string, 0, len(choices))
	for _, choice := range choices {
		quoted = append(quoted, fmt.Sprintf(choiceQuotedTemplateConstant, strings.TrimSpace(choice)))
	}
	return strings.Join(quoted, choiceListSeparatorConstant)
}

func buildChoicePlaceholder(defaultChoice string, choices []string) string {
	highlightedChoices := highlightDefaultChoice(defaultChoice, choices)
	return choicePlaceholderPrefix + strings.Join(highlightedChoices, choiceSeparatorLiteral) + choicePlaceholderSuffix
}

func highlightDefaultChoice(defaultChoice string, choices []string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	highlighted := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		if len(trimmedChoice) == 0 {
			continue
		}

		normalizedChoice := strings.ToLower(trimmedChoice)
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}

		displayValue := trimmedChoice
		if normalizedChoice == normalizedDefault {
			displayValue = strings.ToUpper(trimmedChoice)
		}

		highlighted = append(highlighted, displayValue)
		seen[normalizedChoice] = struct{}{}
	}
	return highlighted
}
