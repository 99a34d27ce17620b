package game

import (
	"errors"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Engine owns the board, the active piece and the score of one game.
//
// Engine is not safe for concurrent use. Hosts deliver input and gravity
// ticks from a single goroutine.
type Engine struct {
	board *mino.Board
	piece *mino.Piece
	rand  mino.Randomizer
	state State

	score  int
	lines  int
	pieces int

	// OnEvent, when set, is called synchronously with *event.LockEvent,
	// *event.ScoreEvent and *event.GameOverEvent values.
	OnEvent func(interface{})
}

func NewEngine(cfg Config, r mino.Randomizer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := mino.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	return NewEngineFromBoard(b, r)
}

// NewEngineFromBoard starts a game on a pre-filled board. The first piece
// is spawned immediately and may end the game at once.
func NewEngineFromBoard(b *mino.Board, r mino.Randomizer) (*Engine, error) {
	if b == nil {
		return nil, errors.New("board is required")
	} else if r == nil {
		return nil, errors.New("randomizer is required")
	}

	if err := (Config{Width: b.W, Height: b.H}).Validate(); err != nil {
		return nil, err
	}

	e := &Engine{board: b, rand: r}
	e.spawn()

	return e, nil
}

func (e *Engine) emit(ev interface{}) {
	if e.OnEvent != nil {
		e.OnEvent(ev)
	}
}

func (e *Engine) spawn() {
	e.state = StateSpawning

	e.piece = mino.SpawnPiece(e.rand.Next(), e.board.W)
	if !e.board.Fits(e.piece.Cells()) {
		e.setGameOver()
		return
	}

	e.state = StateFalling
}

func (e *Engine) setGameOver() {
	e.state = StateGameOver

	e.emit(&event.GameOverEvent{Score: e.score, Lines: e.lines})
}

func (e *Engine) lock() {
	e.state = StateLocking

	lockOut := false
	for _, c := range e.piece.Cells() {
		if c.Y < 0 {
			lockOut = true
		}
	}

	e.board.LockPiece(e.piece)
	e.pieces++

	if lockOut {
		e.emit(&event.LockEvent{Shape: e.piece.Shape.String()})
		e.setGameOver()
		return
	}

	cleared := e.board.ClearFullLines()
	points := LineScore(cleared)

	e.score += points
	e.lines += cleared

	e.emit(&event.LockEvent{Shape: e.piece.Shape.String(), Cleared: cleared})
	if cleared > 0 {
		e.emit(&event.ScoreEvent{Lines: cleared, Points: points, Score: e.score})
	}

	e.spawn()
}

// Tick applies gravity. It returns true while the piece is still falling;
// false means the piece locked or the game is over.
func (e *Engine) Tick() bool {
	if e.state != StateFalling {
		return false
	}

	if e.piece.TickFall(e.board) {
		return true
	}

	e.lock()

	return false
}

func (e *Engine) MoveLeft() bool {
	if e.state != StateFalling {
		return false
	}

	return e.piece.TryMove(e.board, -1)
}

func (e *Engine) MoveRight() bool {
	if e.state != StateFalling {
		return false
	}

	return e.piece.TryMove(e.board, 1)
}

func (e *Engine) Rotate() bool {
	if e.state != StateFalling {
		return false
	}

	return e.piece.TryRotate(e.board)
}

// SoftDrop lowers the piece one row, locking it when it can not fall.
func (e *Engine) SoftDrop() bool {
	return e.Tick()
}

// HardDrop drops the piece to its landing row and locks it. It returns the
// number of rows dropped.
func (e *Engine) HardDrop() int {
	if e.state != StateFalling {
		return 0
	}

	rows := e.piece.HardDrop(e.board)
	e.lock()

	return rows
}

// ProcessAction applies an input command. It reports whether the command
// changed the game.
func (e *Engine) ProcessAction(a event.GameAction) bool {
	if e.state != StateFalling {
		return false
	}

	switch a {
	case event.ActionMoveLeft:
		return e.MoveLeft()
	case event.ActionMoveRight:
		return e.MoveRight()
	case event.ActionRotate:
		return e.Rotate()
	case event.ActionSoftDrop:
		e.SoftDrop()
		return true
	case event.ActionHardDrop:
		e.HardDrop()
		return true
	}

	return false
}

func (e *Engine) State() State { return e.state }

func (e *Engine) GameOver() bool { return e.state == StateGameOver }

func (e *Engine) Score() int { return e.score }

func (e *Engine) LinesCleared() int { return e.lines }

func (e *Engine) PiecesLocked() int { return e.pieces }

// Board returns a copy of the locked cells.
func (e *Engine) Board() *mino.Board { return e.board.Clone() }

// Piece returns a copy of the active piece.
func (e *Engine) Piece() mino.Piece { return *e.piece }
