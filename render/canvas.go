package render

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Cell is one buffered terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}
