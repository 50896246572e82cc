package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flash-brew-digital/create-webflow-extension/internal/ui"
)

const (
	questionMarkerConstant                   = "?"
	questionTemplateConstant                 = "%s %s"
	placeholderSuffixTemplateConstant        = " (%s)"
	optionLineTemplateConstant               = "  %d) %s%s\n"
	optionHintTemplateConstant               = " (%s)"
	selectInputTemplateConstant              = "Select an option [%d]: "
	selectRetryTemplateConstant              = "Please choose a number between 1 and %d.\n"
	confirmYesDefaultSuffixConstant          = " [Y/n] "
	confirmNoDefaultSuffixConstant           = " [y/N] "
	confirmRetryMessageConstant              = "Please answer yes or no.\n"
	validationMessageTemplateConstant        = "%s\n"
	textInputSuffixConstant                  = " "
	lineTerminatorConstant                   = "\n"
	affirmativeShortLiteralConstant          = "y"
	affirmativeLongLiteralConstant           = "yes"
	negativeShortLiteralConstant             = "n"
	negativeLongLiteralConstant              = "no"
	selectWithoutOptionsMessageConstant      = "select prompt requires at least one option"
	promptReaderNotConfiguredMessageConstant = "prompt reader not configured"
	promptWriteErrorTemplateConstant         = "unable to render prompt: %w"
	promptReadErrorTemplateConstant          = "unable to read answer: %w"
	lineReadResultChannelCapacityConstant    = 1
)

var (
	// ErrSelectWithoutOptions indicates a select prompt was issued with no options.
	ErrSelectWithoutOptions = errors.New(selectWithoutOptionsMessageConstant)
	// ErrReaderNotConfigured indicates the prompter has no input source.
	ErrReaderNotConfigured = errors.New(promptReaderNotConfiguredMessageConstant)
)

// IOPrompter renders questions to a writer and reads answers line by line.
type IOPrompter struct {
	reader  *bufio.Reader
	writer  io.Writer
	palette ui.Palette
}

// NewIOPrompter constructs a prompter from the provided reader, writer and palette.
func NewIOPrompter(input io.Reader, output io.Writer, palette ui.Palette) *IOPrompter {
	prompter := &IOPrompter{writer: output, palette: palette}
	if input != nil {
		prompter.reader = bufio.NewReader(input)
	}
	return prompter
}

// Text asks a free-text question, repeating it until Validate accepts the answer.
func (prompter *IOPrompter) Text(executionContext context.Context, request TextRequest) (Answer[string], error) {
	for {
		question := prompter.formatQuestion(request.Message)
		if len(request.Placeholder) > 0 {
			question += prompter.palette.Dim(fmt.Sprintf(placeholderSuffixTemplateConstant, request.Placeholder))
		}
		if writeError := prompter.write(question + textInputSuffixConstant); writeError != nil {
			return Answer[string]{}, writeError
		}

		line, cancelled, readError := prompter.readLine(executionContext)
		if readError != nil {
			return Answer[string]{}, readError
		}
		if cancelled {
			return Cancelled[string](), nil
		}

		if request.Validate != nil {
			if validationMessage := request.Validate(line); len(validationMessage) > 0 {
				if writeError := prompter.write(prompter.palette.Yellow(fmt.Sprintf(validationMessageTemplateConstant, validationMessage))); writeError != nil {
					return Answer[string]{}, writeError
				}
				continue
			}
		}

		return Accepted(line), nil
	}
}

// Select asks a single-choice question. An empty answer picks InitialValue.
func (prompter *IOPrompter) Select(executionContext context.Context, request SelectRequest) (Answer[string], error) {
	if len(request.Options) == 0 {
		return Answer[string]{}, ErrSelectWithoutOptions
	}

	initialIndex := 0
	for optionIndex, option := range request.Options {
		if option.Value == request.InitialValue {
			initialIndex = optionIndex
			break
		}
	}

	var rendered strings.Builder
	rendered.WriteString(prompter.formatQuestion(request.Message))
	rendered.WriteString(lineTerminatorConstant)
	for optionIndex, option := range request.Options {
		hint := ""
		if len(option.Hint) > 0 {
			hint = prompter.palette.Dim(fmt.Sprintf(optionHintTemplateConstant, option.Hint))
		}
		rendered.WriteString(fmt.Sprintf(optionLineTemplateConstant, optionIndex+1, prompter.optionLabel(option), hint))
	}
	if writeError := prompter.write(rendered.String()); writeError != nil {
		return Answer[string]{}, writeError
	}

	for {
		if writeError := prompter.write(fmt.Sprintf(selectInputTemplateConstant, initialIndex+1)); writeError != nil {
			return Answer[string]{}, writeError
		}

		line, cancelled, readError := prompter.readLine(executionContext)
		if readError != nil {
			return Answer[string]{}, readError
		}
		if cancelled {
			return Cancelled[string](), nil
		}

		if selectedOption, matched := matchOption(request.Options, line, initialIndex); matched {
			return Accepted(selectedOption.Value), nil
		}

		if writeError := prompter.write(fmt.Sprintf(selectRetryTemplateConstant, len(request.Options))); writeError != nil {
			return Answer[string]{}, writeError
		}
	}
}

// Confirm asks a yes/no question. An empty answer picks InitialValue.
func (prompter *IOPrompter) Confirm(executionContext context.Context, request ConfirmRequest) (Answer[bool], error) {
	suffix := confirmNoDefaultSuffixConstant
	if request.InitialValue {
		suffix = confirmYesDefaultSuffixConstant
	}

	for {
		if writeError := prompter.write(prompter.formatQuestion(request.Message) + prompter.palette.Dim(suffix)); writeError != nil {
			return Answer[bool]{}, writeError
		}

		line, cancelled, readError := prompter.readLine(executionContext)
		if readError != nil {
			return Answer[bool]{}, readError
		}
		if cancelled {
			return Cancelled[bool](), nil
		}

		switch strings.ToLower(line) {
		case "":
			return Accepted(request.InitialValue), nil
		case affirmativeShortLiteralConstant, affirmativeLongLiteralConstant:
			return Accepted(true), nil
		case negativeShortLiteralConstant, negativeLongLiteralConstant:
			return Accepted(false), nil
		}

		if writeError := prompter.write(confirmRetryMessageConstant); writeError != nil {
			return Answer[bool]{}, writeError
		}
	}
}

func (prompter *IOPrompter) formatQuestion(message string) string {
	return fmt.Sprintf(questionTemplateConstant, prompter.palette.Cyan(questionMarkerConstant), prompter.palette.Bold(message))
}

func (prompter *IOPrompter) optionLabel(option Option) string {
	if len(option.Label) > 0 {
		return option.Label
	}
	return option.Value
}

func (prompter *IOPrompter) write(text string) error {
	if prompter.writer == nil {
		return nil
	}
	if _, writeError := io.WriteString(prompter.writer, text); writeError != nil {
		return fmt.Errorf(promptWriteErrorTemplateConstant, writeError)
	}
	return nil
}

type lineReadResult struct {
	line      string
	readError error
}

// readLine returns the trimmed next line. End of input without data and a done
// context both report cancellation.
func (prompter *IOPrompter) readLine(executionContext context.Context) (string, bool, error) {
	if prompter.reader == nil {
		return "", false, ErrReaderNotConfigured
	}
	if executionContext == nil {
		executionContext = context.Background()
	}
	if executionContext.Err() != nil {
		return "", true, nil
	}

	results := make(chan lineReadResult, lineReadResultChannelCapacityConstant)
	go func() {
		line, readError := prompter.reader.ReadString('\n')
		results <- lineReadResult{line: line, readError: readError}
	}()

	select {
	case <-executionContext.Done():
		return "", true, nil
	case result := <-results:
		if result.readError != nil && !errors.Is(result.readError, io.EOF) {
			return "", false, fmt.Errorf(promptReadErrorTemplateConstant, result.readError)
		}
		if errors.Is(result.readError, io.EOF) && len(result.line) == 0 {
			return "", true, nil
		}
		return strings.TrimSpace(result.line), false, nil
	}
}

func matchOption(options []Option, answer string, initialIndex int) (Option, bool) {
	if len(answer) == 0 {
		return options[initialIndex], true
	}

	if selectedNumber, parseError := strconv.Atoi(answer); parseError == nil {
		if selectedNumber >= 1 && selectedNumber <= len(options) {
			return options[selectedNumber-1], true
		}
		return Option{}, false
	}

	for _, option := range options {
		if strings.EqualFold(option.Value, answer) {
			return option, true
		}
	}

	return Option{}, false
}
