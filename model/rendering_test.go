package model

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestTextRendererDisplay(t *testing.T) {
	tests := []struct {
		name string
		grid []string
		want string
	}{
		{name: "mixed", grid: []string{"#.#", ".#.", "..."}, want: "#.#\n.#.\n...\n"},
		{name: "single row", grid: []string{"##.##"}, want: "##.##\n"},
		{name: "single column", grid: []string{"#", ".", "#"}, want: "#\n.\n#\n"},
		{name: "empty", grid: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &TextRenderer{Out: &buf}
			if err := r.Display(mustParse(t, tt.grid...)); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Fatalf("Display wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTextRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{Out: &buf}
	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != clearSequence {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}

func newSimulationRenderer(t *testing.T) (tcell.SimulationScreen, *ScreenRenderer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(10, 5)
	r := newScreenRenderer(screen)
	t.Cleanup(r.Close)
	return screen, r
}

func TestScreenRendererDisplay(t *testing.T) {
	screen, r := newSimulationRenderer(t)
	g := mustParse(t,
		"#..",
		".#.",
	)
	if err := r.Display(g); err != nil {
		t.Fatal(err)
	}

	cells, width, _ := screen.GetContents()
	for row := range g.Rows() {
		for col := range g.Cols() {
			want := '.'
			if g.Get(row, col) {
				want = '#'
			}
			cell := cells[row*width+col]
			if len(cell.Runes) == 0 || cell.Runes[0] != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", row, col, cell.Runes, want)
			}
		}
	}
}

func TestScreenRendererQuitKey(t *testing.T) {
	screen, r := newSimulationRenderer(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-r.Quit():
	case <-time.After(2 * time.Second):
		t.Fatal("quit key was not reported")
	}
}
