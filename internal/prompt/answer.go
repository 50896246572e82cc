package prompt

import "context"

// Answer carries either an accepted value or the cancellation variant.
type Answer[T any] struct {
	Value     T
	Cancelled bool
}

// Accepted wraps a value supplied by the operator.
func Accepted[T any](value T) Answer[T] {
	return Answer[T]{Value: value}
}

// Cancelled reports that the operator abandoned the prompt.
func Cancelled[T any]() Answer[T] {
	return Answer[T]{Cancelled: true}
}

// Option describes one entry of a single-choice question.
type Option struct {
	Value string
	Label string
	Hint  string
}

// TextRequest describes a free-text question.
type TextRequest struct {
	Message     string
	Placeholder string
	// Validate returns a non-empty message when the input must be re-entered.
	Validate func(input string) string
}

// SelectRequest describes a single-choice question.
type SelectRequest struct {
	Message      string
	Options      []Option
	InitialValue string
}

// ConfirmRequest describes a yes/no question.
type ConfirmRequest struct {
	Message      string
	InitialValue bool
}

// Prompter solicits values from the operator.
type Prompter interface {
	Text(executionContext context.Context, request TextRequest) (Answer[string], error)
	Select(executionContext context.Context, request SelectRequest) (Answer[string], error)
	Confirm(executionContext context.Context, request ConfirmRequest) (Answer[bool], error)
}
