package match

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// Prague is the tournament timezone. All scheduled times and all scraped
// times are interpreted in it.
var Prague = mustLoadLocation("Europe/Prague")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("loading timezone %s: %v", name, err))
	}
	return loc
}

// Category identifies which tournament a match belongs to
type Category string

const (
	CategoryWomen Category = "women"
	CategoryMen   Category = "men"
)

// Stage represents a tournament phase
type Stage int

const (
	GroupStage Stage = iota
	QuarterFinal
	SemiFinal
	BronzeMedal
	Final
)

// Slug returns the short stage identifier used in match IDs
func (s Stage) Slug() string {
	switch s {
	case QuarterFinal:
		return "qf"
	case SemiFinal:
		return "sf"
	case BronzeMedal:
		return "bronze"
	case Final:
		return "final"
	default:
		return "group"
	}
}

// Label returns the Czech phase label shown in calendar entries
func (s Stage) Label() string {
	switch s {
	case QuarterFinal:
		return "Čtvrtfinále"
	case SemiFinal:
		return "Semifinále"
	case BronzeMedal:
		return "O bronz"
	case Final:
		return "Finále"
	default:
		return "Skupina"
	}
}

// IsPlayoff reports whether the stage is part of the knockout bracket
func (s Stage) IsPlayoff() bool {
	return s != GroupStage
}

// Status represents the three-valued match state. It only ever moves
// forward: Scheduled -> Final.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusFinal     Status = "final"
)

// EndType describes how a finished match concluded. The values double as
// the suffix shown after the score in calendar titles.
type EndType string

const (
	EndRegulation EndType = "FT"
	EndOvertime   EndType = "OT"
	EndShootout   EndType = "SO"
)

// Audience determines which output calendar(s) include a match
type Audience string

const (
	AudienceWomen Audience = "women"
	AudienceMen   Audience = "men"
	AudienceCzech Audience = "czech"
)

// Score is a final result. Home/Away follow the skeleton's team order.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Match is the single entity of the pipeline. Matches are rebuilt on every
// run from the fixture skeleton plus freshly scraped data; nothing persists
// between runs except the emitted calendar files.
type Match struct {
	ID        string     `json:"id"`
	Category  Category   `json:"category"`
	Stage     Stage      `json:"stage"`
	Slot      int        `json:"slot"`
	Start     time.Time  `json:"start"`
	HomeTeam  string     `json:"home_team,omitempty"`
	AwayTeam  string     `json:"away_team,omitempty"`
	Status    Status     `json:"status"`
	Score     *Score     `json:"score,omitempty"`
	EndType   EndType    `json:"end_type,omitempty"`
	Audiences []Audience `json:"audiences"`
	Group     string     `json:"group,omitempty"`
	Venue     string     `json:"venue,omitempty"`
}

// New creates a skeleton match with a deterministic ID derived from
// category, stage and slot. The ID never changes across runs, so calendar
// clients see updates instead of duplicates.
func New(category Category, stage Stage, slot int, start time.Time, audiences ...Audience) Match {
	return Match{
		ID:        fmt.Sprintf("%s-%s%d", category, stage.Slug(), slot),
		Category:  category,
		Stage:     stage,
		Slot:      slot,
		Start:     start,
		Status:    StatusScheduled,
		Audiences: audiences,
	}
}

// UID returns the stable calendar identifier for the match. It depends only
// on the match ID, so a playoff slot keeps its UID when the pairing resolves.
func (m *Match) UID() string {
	h := sha1.New()
	h.Write([]byte(string(m.Category) + "|" + m.ID))
	return fmt.Sprintf("%x@zoh-hokej-ics", h.Sum(nil))
}

// Resolved reports whether both sides of the pairing are known
func (m *Match) Resolved() bool {
	return m.HomeTeam != "" && m.AwayTeam != ""
}

// HasAudience reports whether the match belongs in the given calendar
func (m *Match) HasAudience(a Audience) bool {
	for _, tag := range m.Audiences {
		if tag == a {
			return true
		}
	}
	return false
}

var genderEmoji = map[Category]string{
	CategoryWomen: "👩",
	CategoryMen:   "👨",
}

var medalEmoji = map[Stage]string{
	BronzeMedal: "🥉",
	Final:       "🥇",
}

// Summary renders the calendar event title. An unresolved playoff pairing
// renders as phase label plus slot ("Čtvrtfinále 1") rather than invented
// team names; a finished match carries the score and end-type suffix.
func (m *Match) Summary() string {
	prefix := genderEmoji[m.Category]
	if medal, ok := medalEmoji[m.Stage]; ok {
		prefix += " " + medal
	}
	if prefix != "" {
		prefix += " "
	}

	if m.Stage.IsPlayoff() && !m.Resolved() {
		return fmt.Sprintf("%s%s %d", prefix, m.Stage.Label(), m.Slot)
	}

	summary := fmt.Sprintf("%s%s – %s", prefix, DisplayWithFlag(m.HomeTeam), DisplayWithFlag(m.AwayTeam))
	if m.Status == StatusFinal && m.Score != nil && m.EndType != "" {
		summary += fmt.Sprintf(" %d:%d (%s)", m.Score.Home, m.Score.Away, m.EndType)
	}
	return summary
}

// Description renders the calendar event body: group or phase label, plus
// the venue when known.
func (m *Match) Description() string {
	desc := m.Stage.Label()
	if m.Group != "" {
		desc = m.Group
	}
	if m.Venue != "" {
		desc += "\n" + m.Venue
	}
	return desc
}
