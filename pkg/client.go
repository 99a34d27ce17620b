package pkg

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	messageRows = 6
	helpText    = "←→/hl move  ↑/x/k rotate  ↓/j soft drop  space hard drop  p pause  r new game  q quit"
)

type ClientOptions struct {
	Config   Config
	Seed     int64
	Sequence []mino.Shape
	// Matrix pre-fills every new board with garbage cells "x,y,x,y..."
	Matrix   string
	Nick     string
	LogLevel int
}

// Client hosts one game in the terminal. Every engine call happens on the
// application goroutine: key handling runs there and gravity ticks are
// queued onto it.
type Client struct {
	App      *tview.Application
	Board    *gui.BoardView
	Messages *tview.TextView
	Layout   *tview.Grid
	Engine   *game.Engine
	Clock    *Clock
	Player   *Player

	opts   ClientOptions
	theme  gui.Theme
	paused bool
}

func NewClient(opts ClientOptions) (*Client, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	theme, err := gui.ImportThemes(opts.Config.Theme, opts.Config.Themes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, opts.Config.Theme)
	}

	app := tview.NewApplication()
	board := gui.NewBoardView(theme)

	messages := tview.NewTextView().
		SetScrollable(true).
		SetWrap(true)

	help := tview.NewTextView().
		SetText(helpText).
		SetTextAlign(tview.AlignCenter)

	layout := tview.NewGrid().
		SetRows(1, 0, messageRows).
		SetColumns(0).
		AddItem(help, 0, 0, 1, 1, 0, 0, false).
		AddItem(board, 1, 0, 1, 1, 0, 0, true).
		AddItem(messages, 2, 0, 1, 1, 0, 0, false)

	cl := &Client{
		App:      app,
		Board:    board,
		Messages: messages,
		Layout:   layout,
		Clock:    NewClock(opts.Config.Gravity()),
		Player:   NewPlayer(opts.Nick),
		opts:     opts,
		theme:    theme,
	}

	if err := cl.NewGame(); err != nil {
		return nil, err
	}

	app.SetInputCapture(cl.HandleKey)

	return cl, nil
}

// MinSize returns the smallest terminal which fits the whole layout
func (cl *Client) MinSize() (int, int) {
	w, h := cl.Board.Size()
	return w, h + 1 + messageRows
}

func (cl *Client) randomizer() (mino.Randomizer, error) {
	if len(cl.opts.Sequence) > 0 {
		return mino.NewSequence(cl.opts.Sequence...), nil
	}
	return mino.NewRandomizer(cl.opts.Config.Randomizer, cl.opts.Seed+int64(cl.Player.Games))
}

// NewGame replaces the engine with a fresh game
func (cl *Client) NewGame() error {
	b, err := mino.NewBoard(cl.opts.Config.Board.Width, cl.opts.Config.Board.Height)
	if err != nil {
		return err
	}
	if cl.opts.Matrix != "" {
		if err := b.ParseCells(cl.opts.Matrix, mino.BlockGarbage); err != nil {
			return fmt.Errorf("invalid matrix: %w", err)
		}
	}

	r, err := cl.randomizer()
	if err != nil {
		return err
	}

	e, err := game.NewEngineFromBoard(b, r)
	if err != nil {
		return err
	}
	e.OnEvent = cl.handleEvent

	cl.Engine = e
	cl.paused = false
	cl.Clock.Resume()
	cl.Clock.Reset()

	cl.Logf(LogStandard, "New game for %s", cl.Player.Name)
	cl.Logf(LogDebug, "Board:\n%s", e.View().Render())
	if e.GameOver() {
		// The pre-filled matrix blocked the first spawn
		cl.handleEvent(&event.GameOverEvent{})
	}

	cl.render()
	return nil
}

func (cl *Client) handleEvent(ev interface{}) {
	switch ev := ev.(type) {
	case *event.LockEvent:
		cl.Logf(LogVerbose, "Locked %s", ev.Shape)
	case *event.ScoreEvent:
		cl.Logf(LogStandard, "Cleared %d line(s) for %d points", ev.Lines, ev.Points)
	case *event.GameOverEvent:
		best := cl.Player.Finish(ev.Score, ev.Lines)
		cl.Logf(LogStandard, "Game over! Score %d, %d lines", ev.Score, ev.Lines)
		if best && ev.Score > 0 {
			cl.Logf(LogStandard, "New best score")
		}
		cl.Logf(LogStandard, "Press r for a new game")
	}
}

// Logf writes to the log file and to the message pane when level is enabled
func (cl *Client) Logf(level int, format string, a ...interface{}) {
	if level > cl.opts.LogLevel {
		return
	}

	msg := fmt.Sprintf(format, a...)
	log.Println(msg)
	fmt.Fprintln(cl.Messages, msg)
	cl.Messages.ScrollToEnd()
}

func (cl *Client) status() string {
	if cl.Engine.GameOver() {
		return ActionNewGamePrompt
	} else if cl.paused {
		return "PAUSED"
	}
	return ""
}

func (cl *Client) render() {
	cl.Board.SetView(cl.Engine.View()).SetStatus(cl.status())
}

// Tick applies one gravity step. It must run on the application goroutine.
func (cl *Client) Tick() {
	if cl.paused || cl.Engine.GameOver() {
		return
	}

	cl.Engine.Tick()
	cl.render()
}

// TogglePause stops or restarts gravity and input of a running game
func (cl *Client) TogglePause() {
	if cl.Engine.GameOver() {
		return
	}

	cl.paused = cl.Clock.Toggle()
	if cl.paused {
		cl.Logf(LogDebug, "%s", ActionPause)
	} else {
		cl.Logf(LogDebug, "%s", ActionResume)
	}
	cl.render()
}

// HandleKey is the application's input capture
func (cl *Client) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		cl.App.Stop()
		return nil
	}

	if ev.Key() == tcell.KeyRune {
		if a, ok := clientAction(ev.Rune()); ok {
			switch a {
			case ActionPause:
				cl.TogglePause()
			case ActionNewGame:
				if cl.Engine.GameOver() {
					if err := cl.NewGame(); err != nil {
						cl.Logf(LogStandard, "Failed to start a new game: %s", err)
					}
				}
			case ActionExit:
				cl.App.Stop()
			}
			return nil
		}
	}

	a := gui.GameActionFor(ev)
	if a == event.ActionUnknown {
		return ev
	}
	if cl.paused {
		return nil
	}

	if cl.Engine.ProcessAction(a) {
		cl.Logf(LogVerbose, "%s", a)
	}
	cl.render()
	return nil
}

// Run starts the gravity clock and blocks until the application stops or ctx
// is done
func (cl *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		cl.App.Stop()
	}()

	go cl.Clock.Run(ctx, func() {
		cl.App.QueueUpdateDraw(cl.Tick)
	})

	return cl.App.SetRoot(cl.Layout, true).Run()
}
