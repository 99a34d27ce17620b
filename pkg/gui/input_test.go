package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

func TestGameActionFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want event.GameAction
	}{
		{"left arrow", tcell.KeyLeft, 0, event.ActionMoveLeft},
		{"h", tcell.KeyRune, 'h', event.ActionMoveLeft},
		{"right arrow", tcell.KeyRight, 0, event.ActionMoveRight},
		{"l", tcell.KeyRune, 'l', event.ActionMoveRight},
		{"up arrow", tcell.KeyUp, 0, event.ActionRotate},
		{"x", tcell.KeyRune, 'x', event.ActionRotate},
		{"k", tcell.KeyRune, 'k', event.ActionRotate},
		{"down arrow", tcell.KeyDown, 0, event.ActionSoftDrop},
		{"j", tcell.KeyRune, 'j', event.ActionSoftDrop},
		{"space", tcell.KeyRune, ' ', event.ActionHardDrop},
		{"unbound rune", tcell.KeyRune, 'p', event.ActionUnknown},
		{"unbound key", tcell.KeyEnter, 0, event.ActionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			assert.Equal(t, tt.want, GameActionFor(ev))
		})
	}
}
