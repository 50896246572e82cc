package ui

import (
	"fmt"
	"io"
	"strings"
)

const (
	titleTextConstant              = "Create Webflow Extension"
	descriptionTextConstant        = "Scaffold a new Webflow Designer Extension project with a built-in template."
	introTextConstant              = "Set up your project by answering a few questions:"
	readyTextConstant              = "Your extension is ready to go!"
	gettingStartedHeadingConstant  = "  To get started:"
	webflowHeadingConstant         = "  Then in Webflow:"
	changeDirectoryCommandConstant = "cd"
	indentedLineTemplateConstant   = "  %s\n"
	commandLineTemplateConstant    = "  %s %s\n"
	webflowStepTemplateConstant    = "  %d. %s"
	cancelledTextConstant          = "Cancelled."
	errorPrefixConstant            = "Error:"
	errorLineTemplateConstant      = "%s %s\n"
	blankLineConstant              = "\n"
)

// WebflowSetupSteps lists the manual steps that register the extension inside Webflow.
func WebflowSetupSteps() []string {
	return []string{
		"Open your Webflow workspace settings",
		"Navigate to Apps & Integrations → Develop",
		"Click Create an App and configure it accordingly",
		"Open a project in the Designer",
		"Press E to open the apps panel and launch your extension",
	}
}

// Description is the one-line description of the tool.
func Description() string {
	return descriptionTextConstant
}

// Summary describes the finished project for the next-steps screen.
type Summary struct {
	ProjectName    string
	InstallCommand string
	DevCommand     string
	InstallSkipped bool
}

// ConsolePrinter renders the decorative title, intro, summary and terminal messages.
type ConsolePrinter struct {
	writer  io.Writer
	palette Palette
}

// NewConsolePrinter constructs a printer writing to writer.
func NewConsolePrinter(writer io.Writer, palette Palette) *ConsolePrinter {
	return &ConsolePrinter{writer: writer, palette: palette}
}

// PrintTitle writes the program title and description.
func (printer *ConsolePrinter) PrintTitle() {
	printer.write(blankLineConstant)
	printer.write(printer.palette.Bold(printer.palette.Cyan(titleTextConstant)) + blankLineConstant)
	printer.write(printer.palette.Dim(descriptionTextConstant) + blankLineConstant)
	printer.write(blankLineConstant)
}

// PrintIntro writes the line shown before the interactive questions.
func (printer *ConsolePrinter) PrintIntro() {
	printer.write(printer.palette.Cyan(introTextConstant) + blankLineConstant)
}

// PrintSummary writes the next-steps screen.
func (printer *ConsolePrinter) PrintSummary(summary Summary) {
	printer.write(printer.palette.Green(readyTextConstant) + blankLineConstant)
	printer.write(blankLineConstant)
	printer.write(printer.palette.Bold(gettingStartedHeadingConstant) + blankLineConstant)
	printer.write(blankLineConstant)
	printer.write(fmt.Sprintf(commandLineTemplateConstant, printer.palette.Cyan(changeDirectoryCommandConstant), summary.ProjectName))
	if summary.InstallSkipped {
		printer.write(fmt.Sprintf(indentedLineTemplateConstant, printer.palette.Cyan(summary.InstallCommand)))
	}
	printer.write(fmt.Sprintf(indentedLineTemplateConstant, printer.palette.Cyan(summary.DevCommand)))
	printer.write(blankLineConstant)
	printer.write(printer.palette.Bold(webflowHeadingConstant) + blankLineConstant)
	printer.write(blankLineConstant)
	for stepIndex, step := range WebflowSetupSteps() {
		printer.write(printer.palette.Dim(fmt.Sprintf(webflowStepTemplateConstant, stepIndex+1, step)) + blankLineConstant)
	}
	printer.write(blankLineConstant)
}

// PrintCancelled writes the cancellation notice.
func (printer *ConsolePrinter) PrintCancelled() {
	printer.write(blankLineConstant + printer.palette.Dim(cancelledTextConstant) + blankLineConstant)
}

// PrintError writes a failure line with the error prefix.
func (printer *ConsolePrinter) PrintError(failure error) {
	if failure == nil {
		return
	}
	printer.write(fmt.Sprintf(errorLineTemplateConstant, printer.palette.Red(errorPrefixConstant), strings.TrimSpace(failure.Error())))
}

func (printer *ConsolePrinter) write(text string) {
	if printer == nil || printer.writer == nil {
		return
	}
	_, _ = io.WriteString(printer.writer, text)
}
