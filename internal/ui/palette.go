package ui

import "github.com/gookit/color"

// Palette applies terminal styling to console text. A disabled palette returns text unchanged.
type Palette struct {
	enabled bool
}

// NewPalette constructs a palette. Styling additionally requires terminal color support.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Bold renders text in bold.
func (palette Palette) Bold(text string) string {
	return palette.render(color.Bold, text)
}

// Cyan renders text in cyan.
func (palette Palette) Cyan(text string) string {
	return palette.render(color.Cyan, text)
}

// Green renders text in green.
func (palette Palette) Green(text string) string {
	return palette.render(color.Green, text)
}

// Red renders text in red.
func (palette Palette) Red(text string) string {
	return palette.render(color.Red, text)
}

// Yellow renders text in yellow.
func (palette Palette) Yellow(text string) string {
	return palette.render(color.Yellow, text)
}

// Dim renders secondary text.
func (palette Palette) Dim(text string) string {
	return palette.render(color.Gray, text)
}

func (palette Palette) render(style color.Color, text string) string {
	if !palette.enabled {
		return text
	}
	return style.Sprint(text)
}
