package event

// LockEvent is sent each time the active piece locks into the board.
type LockEvent struct {
	Shape   string
	Cleared int
}

type ScoreEvent struct {
	Lines  int
	Points int
	Score  int
}

type GameOverEvent struct {
	Score int
	Lines int
}
