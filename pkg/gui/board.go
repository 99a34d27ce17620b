package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

const statsWidth = 12

// BoardView is a tview primitive drawing the latest game view and its score
// panel. It is only touched from the application goroutine.
type BoardView struct {
	*tview.Box

	view   game.View
	theme  Theme
	status string
}

func NewBoardView(t Theme) *BoardView {
	bv := &BoardView{
		Box:   tview.NewBox(),
		theme: t,
	}
	bv.Box.SetDrawFunc(bv.draw)
	return bv
}

// SetView replaces the view drawn on the next redraw
func (bv *BoardView) SetView(v game.View) *BoardView {
	bv.view = v
	return bv
}

// SetStatus sets the line shown under the score panel, e.g. "PAUSED"
func (bv *BoardView) SetStatus(status string) *BoardView {
	bv.status = status
	return bv
}

func (bv *BoardView) SetTheme(t Theme) *BoardView {
	bv.theme = t
	return bv
}

// Size returns the terminal cells needed to draw the board and stats
func (bv *BoardView) Size() (int, int) {
	w, h := BoardSize(bv.view.W, bv.view.H)
	return w + 2 + statsWidth, h
}

func (bv *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if bv.view.W == 0 {
		return x, y, width, height
	}

	w, h := bv.Size()
	if w < width {
		x += (width - w) / 2
	}
	if h < height {
		y += (height - h) / 2
	}

	DrawBoard(screen, x, y, bv.view, bv.theme)
	bw, _ := BoardSize(bv.view.W, bv.view.H)
	DrawStats(screen, x+bw+2, y+1, bv.view, bv.theme, bv.status)

	return x, y, width, height
}
