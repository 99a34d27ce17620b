package pkg

// Action is a client command which is not a game move
type Action string

const (
	ActionPause         Action = "Pause"
	ActionResume               = "Resume"
	ActionNewGamePrompt        = "New Game?"
	ActionNewGame              = "New Game"
	ActionExit                 = "Exit"
)

type clientKey struct {
	r rune
	a Action
}

var clientKeys = []clientKey{
	{'p', ActionPause},
	{'P', ActionPause},
	{'r', ActionNewGame},
	{'R', ActionNewGame},
	{'q', ActionExit},
	{'Q', ActionExit},
}

func clientAction(r rune) (Action, bool) {
	for _, k := range clientKeys {
		if k.r == r {
			return k.a, true
		}
	}
	return "", false
}
