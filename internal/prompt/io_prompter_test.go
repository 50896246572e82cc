package prompt_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flash-brew-digital/create-webflow-extension/internal/prompt"
	"github.com/flash-brew-digital/create-webflow-extension/internal/ui"
)

const (
	testPromptSubtestNameTemplateConstant = "%d_%s"
	testTextMessageConstant               = "What is the name of your Webflow Designer Extension?"
	testTextPlaceholderConstant           = "My Webflow Extension"
	testValidationMessageConstant         = "You must provide a name for your extension"
	testSelectMessageConstant             = "Package Manager"
	testConfirmMessageConstant            = "Skip initializing a git repository?"
)

func newTestPrompter(input string) (*prompt.IOPrompter, *bytes.Buffer) {
	output := &bytes.Buffer{}
	return prompt.NewIOPrompter(strings.NewReader(input), output, ui.NewPalette(false)), output
}

func rejectEmpty(input string) string {
	if len(input) == 0 {
		return testValidationMessageConstant
	}
	return ""
}

func TestIOPrompterText(testInstance *testing.T) {
	testCases := []struct {
		name              string
		input             string
		expectedAnswer    prompt.Answer[string]
		expectedRetryText bool
	}{
		{
			name:           "accepts_trimmed_input",
			input:          "  Cool App  \n",
			expectedAnswer: prompt.Accepted("Cool App"),
		},
		{
			name:              "re_asks_after_empty_input",
			input:             "\nSecond Try\n",
			expectedAnswer:    prompt.Accepted("Second Try"),
			expectedRetryText: true,
		},
		{
			name:           "accepts_final_line_without_newline",
			input:          "Last Line",
			expectedAnswer: prompt.Accepted("Last Line"),
		},
		{
			name:           "end_of_input_cancels",
			input:          "",
			expectedAnswer: prompt.Cancelled[string](),
		},
		{
			name:              "end_of_input_after_rejection_cancels",
			input:             "\n",
			expectedAnswer:    prompt.Cancelled[string](),
			expectedRetryText: true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testPromptSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			prompter, output := newTestPrompter(testCase.input)

			answer, answerError := prompter.Text(context.Background(), prompt.TextRequest{
				Message:     testTextMessageConstant,
				Placeholder: testTextPlaceholderConstant,
				Validate:    rejectEmpty,
			})

			require.NoError(testInstance, answerError)
			require.Equal(testInstance, testCase.expectedAnswer, answer)
			require.Contains(testInstance, output.String(), testTextMessageConstant)
			require.Contains(testInstance, output.String(), testTextPlaceholderConstant)
			if testCase.expectedRetryText {
				require.Contains(testInstance, output.String(), testValidationMessageConstant)
			} else {
				require.NotContains(testInstance, output.String(), testValidationMessageConstant)
			}
		})
	}
}

func TestIOPrompterSelect(testInstance *testing.T) {
	options := []prompt.Option{
		{Value: "pnpm", Label: "pnpm", Hint: "recommended"},
		{Value: "npm", Label: "npm"},
		{Value: "yarn", Label: "yarn"},
		{Value: "bun", Label: "bun"},
	}

	testCases := []struct {
		name           string
		input          string
		initialValue   string
		expectedAnswer prompt.Answer[string]
		expectRetry    bool
	}{
		{name: "empty_picks_initial", input: "\n", initialValue: "pnpm", expectedAnswer: prompt.Accepted("pnpm")},
		{name: "empty_picks_non_first_initial", input: "\n", initialValue: "yarn", expectedAnswer: prompt.Accepted("yarn")},
		{name: "number_selects_option", input: "4\n", initialValue: "pnpm", expectedAnswer: prompt.Accepted("bun")},
		{name: "value_selects_option", input: "NPM\n", initialValue: "pnpm", expectedAnswer: prompt.Accepted("npm")},
		{name: "out_of_range_retries", input: "9\n2\n", initialValue: "pnpm", expectedAnswer: prompt.Accepted("npm"), expectRetry: true},
		{name: "unknown_value_retries", input: "deno\nyarn\n", initialValue: "pnpm", expectedAnswer: prompt.Accepted("yarn"), expectRetry: true},
		{name: "end_of_input_cancels", input: "", initialValue: "pnpm", expectedAnswer: prompt.Cancelled[string]()},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testPromptSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			prompter, output := newTestPrompter(testCase.input)

			answer, answerError := prompter.Select(context.Background(), prompt.SelectRequest{
				Message:      testSelectMessageConstant,
				Options:      options,
				InitialValue: testCase.initialValue,
			})

			require.NoError(testInstance, answerError)
			require.Equal(testInstance, testCase.expectedAnswer, answer)
			require.Contains(testInstance, output.String(), "1) pnpm (recommended)")
			require.Contains(testInstance, output.String(), "4) bun")
			if testCase.expectRetry {
				require.Contains(testInstance, output.String(), "Please choose a number between 1 and 4.")
			}
		})
	}
}

func TestIOPrompterSelectRequiresOptions(testInstance *testing.T) {
	prompter, _ := newTestPrompter("1\n")

	_, answerError := prompter.Select(context.Background(), prompt.SelectRequest{Message: testSelectMessageConstant})

	require.ErrorIs(testInstance, answerError, prompt.ErrSelectWithoutOptions)
}

func TestIOPrompterConfirm(testInstance *testing.T) {
	testCases := []struct {
		name           string
		input          string
		initialValue   bool
		expectedAnswer prompt.Answer[bool]
		expectedSuffix string
	}{
		{name: "empty_uses_false_default", input: "\n", initialValue: false, expectedAnswer: prompt.Accepted(false), expectedSuffix: "[y/N]"},
		{name: "empty_uses_true_default", input: "\n", initialValue: true, expectedAnswer: prompt.Accepted(true), expectedSuffix: "[Y/n]"},
		{name: "short_yes", input: "y\n", expectedAnswer: prompt.Accepted(true), expectedSuffix: "[y/N]"},
		{name: "long_yes_mixed_case", input: "YES\n", expectedAnswer: prompt.Accepted(true), expectedSuffix: "[y/N]"},
		{name: "long_no", input: "no\n", initialValue: true, expectedAnswer: prompt.Accepted(false), expectedSuffix: "[Y/n]"},
		{name: "garbage_retries", input: "maybe\ny\n", expectedAnswer: prompt.Accepted(true), expectedSuffix: "[y/N]"},
		{name: "end_of_input_cancels", input: "", expectedAnswer: prompt.Cancelled[bool](), expectedSuffix: "[y/N]"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testPromptSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			prompter, output := newTestPrompter(testCase.input)

			answer, answerError := prompter.Confirm(context.Background(), prompt.ConfirmRequest{
				Message:      testConfirmMessageConstant,
				InitialValue: testCase.initialValue,
			})

			require.NoError(testInstance, answerError)
			require.Equal(testInstance, testCase.expectedAnswer, answer)
			require.Contains(testInstance, output.String(), testCase.expectedSuffix)
		})
	}
}

func TestIOPrompterCancelledContextCancelsPrompt(testInstance *testing.T) {
	prompter, _ := newTestPrompter("ignored\n")
	cancelledContext, cancel := context.WithCancel(context.Background())
	cancel()

	answer, answerError := prompter.Confirm(cancelledContext, prompt.ConfirmRequest{Message: testConfirmMessageConstant})

	require.NoError(testInstance, answerError)
	require.True(testInstance, answer.Cancelled)
}

func TestIOPrompterWithoutReaderFails(testInstance *testing.T) {
	prompter := prompt.NewIOPrompter(nil, &bytes.Buffer{}, ui.NewPalette(false))

	_, answerError := prompter.Text(context.Background(), prompt.TextRequest{Message: testTextMessageConstant})

	require.ErrorIs(testInstance, answerError, prompt.ErrReaderNotConfigured)
}
