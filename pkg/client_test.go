package pkg

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func newTestClient(t *testing.T, level int) *Client {
	cl, err := NewClient(ClientOptions{
		Config:   DefaultConfig(),
		Sequence: []mino.Shape{mino.ShapeO},
		Nick:     "tester",
		LogLevel: level,
	})
	require.NoError(t, err)
	return cl
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestClientMovesPiece(t *testing.T) {
	cl := newTestClient(t, LogStandard)
	require.Equal(t, 4, cl.Engine.Piece().X)

	assert.Nil(t, cl.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, 3, cl.Engine.Piece().X)

	assert.Nil(t, cl.HandleKey(runeKey('l')))
	assert.Equal(t, 4, cl.Engine.Piece().X)

	cl.Tick()
	assert.Equal(t, 1, cl.Engine.Piece().Y)

	assert.Nil(t, cl.HandleKey(runeKey(' ')))
	assert.Equal(t, 1, cl.Engine.PiecesLocked())

	unbound := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Equal(t, unbound, cl.HandleKey(unbound))
}

func TestClientPause(t *testing.T) {
	cl := newTestClient(t, LogDebug)

	cl.HandleKey(runeKey('p'))
	assert.True(t, cl.Clock.Paused())
	assert.Equal(t, "PAUSED", cl.status())

	cl.Tick()
	cl.HandleKey(runeKey('h'))
	assert.Equal(t, 0, cl.Engine.Piece().Y)
	assert.Equal(t, 4, cl.Engine.Piece().X)

	cl.HandleKey(runeKey('p'))
	assert.False(t, cl.Clock.Paused())
	cl.Tick()
	assert.Equal(t, 1, cl.Engine.Piece().Y)

	assert.Contains(t, cl.Messages.GetText(true), string(ActionPause))
}

func TestClientNewGame(t *testing.T) {
	cl := newTestClient(t, LogStandard)

	// Restart is ignored while playing
	e := cl.Engine
	cl.HandleKey(runeKey('r'))
	assert.Same(t, e, cl.Engine)

	for i := 0; i < 10; i++ {
		cl.HandleKey(runeKey(' '))
	}
	require.True(t, cl.Engine.GameOver())
	assert.Equal(t, ActionNewGamePrompt, cl.status())
	assert.Equal(t, 1, cl.Player.Games)
	assert.Contains(t, cl.Messages.GetText(true), "Game over! Score 0, 0 lines")

	// Pause and moves are ignored once the game is over
	cl.HandleKey(runeKey('p'))
	assert.False(t, cl.paused)

	cl.HandleKey(runeKey('r'))
	assert.NotSame(t, e, cl.Engine)
	assert.False(t, cl.Engine.GameOver())
	assert.Equal(t, 0, cl.Engine.PiecesLocked())
}

func TestClientMatrix(t *testing.T) {
	cl, err := NewClient(ClientOptions{
		Config:   DefaultConfig(),
		Sequence: []mino.Shape{mino.ShapeO},
		Matrix:   "4,0",
	})
	require.NoError(t, err)
	assert.True(t, cl.Engine.GameOver())
	assert.Equal(t, 1, cl.Player.Games)

	_, err = NewClient(ClientOptions{Config: DefaultConfig(), Matrix: "4"})
	assert.Error(t, err)
}

func TestClientInvalidOptions(t *testing.T) {
	conf := DefaultConfig()
	conf.Theme = "missing"
	_, err := NewClient(ClientOptions{Config: conf})
	assert.Error(t, err)

	conf = DefaultConfig()
	conf.Randomizer = "lucky"
	_, err = NewClient(ClientOptions{Config: conf})
	assert.Error(t, err)
}

func TestClientLogLevel(t *testing.T) {
	cl := newTestClient(t, LogStandard)

	cl.Logf(LogVerbose, "hidden %d", 1)
	cl.Logf(LogStandard, "shown %d", 2)

	text := cl.Messages.GetText(true)
	assert.NotContains(t, text, "hidden 1")
	assert.Contains(t, text, "shown 2")
}

func TestClientMinSize(t *testing.T) {
	cl := newTestClient(t, LogStandard)

	w, h := cl.MinSize()
	assert.Greater(t, w, mino.DefaultWidth*2)
	assert.Equal(t, mino.DefaultHeight+2+1+messageRows, h)
}
