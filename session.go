package docquiz

import "fmt"

// Session holds the running score of one interactive game.
// It lives only as long as the game and is never persisted.
type Session struct {
	ID     string
	Points int
	Rounds int
}

// Score formats the session result as points/rounds.
func (s *Session) Score() string {
	return fmt.Sprintf("%d/%d", s.Points, s.Rounds)
}
