package model

import (
	"io"

	"github.com/pkg/errors"
)

// clearSequence moves the cursor home and erases the terminal
const clearSequence = "\033[H\033[2J"

// Renderer draws a generation to some display surface
type Renderer interface {
	Display(g *Grid) error
	Clear() error
}

// TextRenderer writes grids as text, one line per row, '#' alive and '.' dead
type TextRenderer struct {
	Out io.Writer
}

// Display renders the grid to the writer
func (r *TextRenderer) Display(g *Grid) error {
	if _, err := io.WriteString(r.Out, g.String()); err != nil {
		return errors.Wrap(err, "[TextRenderer.Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, clearSequence); err != nil {
		return errors.Wrap(err, "[TextRenderer.Clear] failed to clear terminal")
	}
	return nil
}
