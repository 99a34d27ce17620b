package pkg

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const maxNickLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips unsupported characters from nick. An empty result is
// replaced with a generated name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > maxNickLength {
		nick = nick[:maxNickLength]
	} else if nick == "" {
		nick = petname.Generate(2, "-")
	}

	return nick
}

// Player tracks the results of the games played in one client session
type Player struct {
	Name  string
	Games int
	Best  int
	Lines int
}

func NewPlayer(nick string) *Player {
	return &Player{Name: Nickname(nick)}
}

// Finish records a finished game and reports whether it is a new best
func (p *Player) Finish(score, lines int) bool {
	p.Games++
	p.Lines += lines
	if score > p.Best {
		p.Best = score
		return true
	}
	return false
}
