package game

import (
	"strings"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// View is a read-only snapshot of an engine for renderers.
type View struct {
	W, H int

	Board      []mino.Block
	Piece      mino.Mino
	PieceBlock mino.Block
	Ghost      mino.Mino

	Score  int
	Lines  int
	Pieces int

	State    State
	GameOver bool
}

func (e *Engine) View() View {
	board := make([]mino.Block, len(e.board.M))
	copy(board, e.board.M)

	v := View{
		W:          e.board.W,
		H:          e.board.H,
		Board:      board,
		Piece:      e.piece.Cells(),
		PieceBlock: e.piece.Block(),
		Score:      e.score,
		Lines:      e.lines,
		Pieces:     e.pieces,
		State:      e.state,
		GameOver:   e.state == StateGameOver,
	}

	if !v.GameOver {
		v.Ghost = e.piece.Ghost(e.board)
	}

	return v
}

// Block returns what should be drawn at x, y: the active piece first, then
// locked cells, then the ghost of the landing position.
func (v View) Block(x int, y int) mino.Block {
	p := mino.Point{X: x, Y: y}
	if v.Piece.HasPoint(p) {
		return v.PieceBlock
	}

	if x >= 0 && x < v.W && y >= 0 && y < v.H {
		if b := v.Board[mino.I(x, y, v.W)]; b != mino.BlockNone {
			return b
		}
	}

	if v.Ghost.HasPoint(p) {
		return mino.BlockGhost
	}

	return mino.BlockNone
}

// Render returns the visible board with the active piece, top to bottom.
func (v View) Render() string {
	var b strings.Builder

	for y := 0; y < v.H; y++ {
		for x := 0; x < v.W; x++ {
			b.WriteRune(v.Block(x, y).Rune())
		}

		if y < v.H-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}
