package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'x', a: event.ActionRotate},
	{r: 'X', a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
}

// GameActionFor returns the game command bound to a key event, or
// ActionUnknown
func GameActionFor(ev *tcell.EventKey) event.GameAction {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range keybindings {
		if (bind.k != 0 && bind.k != k) || (bind.r != 0 && bind.r != r) || (bind.m != 0 && bind.m != ev.Modifiers()) {
			continue
		}
		if bind.k == 0 && k != tcell.KeyRune {
			continue
		}

		return bind.a
	}

	return event.ActionUnknown
}
