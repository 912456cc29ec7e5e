package model

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenRenderer draws grids on a full-screen terminal and watches for quit keys
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style

	quit     chan struct{}
	quitOnce sync.Once
}

// NewScreenRenderer takes over the terminal. Call Close to restore it.
func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialise screen")
	}
	return newScreenRenderer(screen), nil
}

func newScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	r := &ScreenRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
		quit:   make(chan struct{}),
	}
	go r.pollEvents()
	return r
}

// Display draws the grid at the top-left corner; cells beyond the screen are not shown
func (r *ScreenRenderer) Display(g *Grid) error {
	for row := range g.rows {
		for col := range g.cols {
			glyph := rune(glyphDead)
			if g.cells[g.index(row, col)] {
				glyph = glyphAlive
			}
			r.screen.SetContent(col, row, glyph, nil, r.style)
		}
	}
	r.screen.Show()
	return nil
}

// Clear blanks the screen
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Quit is closed once the user presses Esc, q or Ctrl+C
func (r *ScreenRenderer) Quit() <-chan struct{} {
	return r.quit
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}

func (r *ScreenRenderer) pollEvents() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			// screen finalised
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				r.quitOnce.Do(func() { close(r.quit) })
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}
