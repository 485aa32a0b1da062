package match

import "time"

// Game is a partial match record extracted from the source page. Every
// field except Stage and Start is best-effort: an empty team code means the
// side could not be determined, a nil Score means the match has not been
// marked finished. Extraction gaps are not errors.
type Game struct {
	Stage    Stage
	Start    time.Time
	HomeTeam string
	AwayTeam string
	Score    *Score
	EndType  EndType
	Group    string
	Venue    string
}

// Resolved reports whether both sides of the extracted pairing are known
func (g *Game) Resolved() bool {
	return g.HomeTeam != "" && g.AwayTeam != ""
}

// Involves reports whether either extracted side matches the given code
func (g *Game) Involves(code string) bool {
	return code != "" && (g.HomeTeam == code || g.AwayTeam == code)
}
