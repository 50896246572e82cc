// Package prompt collects operator input over line-oriented readers.
//
// IOPrompter renders text, single-choice, and yes/no questions to a writer and
// reads answers from a reader. Every answer is an Answer value whose Cancelled
// variant signals that the operator closed the input or interrupted the run;
// callers check it explicitly instead of unwinding through errors.
package prompt
