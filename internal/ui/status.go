package ui

import (
	"fmt"
	"io"
)

const (
	stepStartedGlyphConstant   = "◇"
	stepSucceededGlyphConstant = "✔"
	stepFailedGlyphConstant    = "✖"
	noteGlyphConstant          = "●"
	statusLineTemplateConstant = "%s %s\n"
)

// ConsoleStatusReporter writes one line per pipeline step transition.
type ConsoleStatusReporter struct {
	writer  io.Writer
	palette Palette
}

// NewConsoleStatusReporter constructs a reporter writing to writer.
func NewConsoleStatusReporter(writer io.Writer, palette Palette) *ConsoleStatusReporter {
	return &ConsoleStatusReporter{writer: writer, palette: palette}
}

// StepStarted announces a step that is about to run.
func (reporter *ConsoleStatusReporter) StepStarted(message string) {
	reporter.writeLine(reporter.palette.Cyan(stepStartedGlyphConstant), message)
}

// StepSucceeded reports a step that finished.
func (reporter *ConsoleStatusReporter) StepSucceeded(message string) {
	reporter.writeLine(reporter.palette.Green(stepSucceededGlyphConstant), message)
}

// StepFailed reports a step that did not finish.
func (reporter *ConsoleStatusReporter) StepFailed(message string) {
	reporter.writeLine(reporter.palette.Red(stepFailedGlyphConstant), message)
}

// Note reports information that does not change the outcome of a step.
func (reporter *ConsoleStatusReporter) Note(message string) {
	reporter.writeLine(reporter.palette.Yellow(noteGlyphConstant), message)
}

func (reporter *ConsoleStatusReporter) writeLine(glyph string, message string) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	fmt.Fprintf(reporter.writer, statusLineTemplateConstant, glyph, message)
}

// NopStatusReporter discards all status output. It is used in quiet mode.
type NopStatusReporter struct{}

// StepStarted implements the status reporter contract for quiet runs.
func (NopStatusReporter) StepStarted(string) {}

// StepSucceeded implements the status reporter contract for quiet runs.
func (NopStatusReporter) StepSucceeded(string) {}

// StepFailed implements the status reporter contract for quiet runs.
func (NopStatusReporter) StepFailed(string) {}

// Note implements the status reporter contract for quiet runs.
func (NopStatusReporter) Note(string) {}
