// Package fixture holds the static configuration of the generator: the two
// scraped tournament pages and the hand-authored skeleton of guaranteed
// matches. The skeleton is immutable input, authored once per tournament; it
// is never re-derived from the page.
package fixture

import (
	"time"

	"github.com/pokys/zoh-hokej-ics/internal/match"
)

// Tournament describes one scraped source page and the calendar built from it
type Tournament struct {
	Category     match.Category
	Label        string
	Audience     match.Audience
	SourceURL    string
	CalendarName string
	OutFile      string
}

// Combined calendar: every match from both tournaments, Czech audience
const (
	CombinedCalendarName = "ZOH 2026 – hokej (Česko)"
	CombinedOutFile      = "zoh-2026-hokej-cesko.ics"
)

// Tournaments returns the fixed list of scraped tournaments
func Tournaments() []Tournament {
	return []Tournament{
		{
			Category:     match.CategoryWomen,
			Label:        "ženy",
			Audience:     match.AudienceWomen,
			SourceURL:    "https://en.wikipedia.org/wiki/Ice_hockey_at_the_2026_Winter_Olympics_%E2%80%93_Women%27s_tournament",
			CalendarName: "ZOH 2026 – hokej (ženy)",
			OutFile:      "zoh-2026-hokej-zeny-cze.ics",
		},
		{
			Category:     match.CategoryMen,
			Label:        "muži",
			Audience:     match.AudienceMen,
			SourceURL:    "https://en.wikipedia.org/wiki/Ice_hockey_at_the_2026_Winter_Olympics_%E2%80%93_Men%27s_tournament",
			CalendarName: "ZOH 2026 – hokej (muži)",
			OutFile:      "zoh-2026-hokej-muzi-cze.ics",
		},
	}
}

// Skeleton returns the guaranteed matches for a tournament: the Czech
// group-stage games (known since the draw) and every playoff slot, which
// exists regardless of who ends up in it. Matches are ordered by start time.
func Skeleton(c match.Category) []match.Match {
	switch c {
	case match.CategoryWomen:
		return womenSkeleton()
	case match.CategoryMen:
		return menSkeleton()
	default:
		return nil
	}
}

func womenSkeleton() []match.Match {
	return []match.Match{
		group(match.CategoryWomen, 1, at(6, 16, 40), match.TeamCzech, "FIN", "Skupina A"),
		group(match.CategoryWomen, 2, at(8, 12, 10), match.TeamCzech, "SUI", "Skupina A"),
		group(match.CategoryWomen, 3, at(9, 21, 10), "USA", match.TeamCzech, "Skupina A"),
		group(match.CategoryWomen, 4, at(11, 16, 40), "CAN", match.TeamCzech, "Skupina A"),
		slot(match.CategoryWomen, match.QuarterFinal, 1, at(12, 12, 10)),
		slot(match.CategoryWomen, match.QuarterFinal, 2, at(12, 16, 40)),
		slot(match.CategoryWomen, match.QuarterFinal, 3, at(13, 12, 10)),
		slot(match.CategoryWomen, match.QuarterFinal, 4, at(13, 16, 40)),
		slot(match.CategoryWomen, match.SemiFinal, 1, at(16, 14, 30)),
		slot(match.CategoryWomen, match.SemiFinal, 2, at(16, 19, 0)),
		slot(match.CategoryWomen, match.BronzeMedal, 1, at(19, 15, 0)),
		slot(match.CategoryWomen, match.Final, 1, at(19, 20, 0)),
	}
}

func menSkeleton() []match.Match {
	return []match.Match{
		group(match.CategoryMen, 1, at(12, 12, 10), "FIN", match.TeamCzech, "Skupina B"),
		group(match.CategoryMen, 2, at(13, 21, 10), match.TeamCzech, "SWE", "Skupina B"),
		group(match.CategoryMen, 3, at(15, 16, 40), match.TeamCzech, "SVK", "Skupina B"),
		slot(match.CategoryMen, match.QuarterFinal, 1, at(18, 12, 10)),
		slot(match.CategoryMen, match.QuarterFinal, 2, at(18, 15, 10)),
		slot(match.CategoryMen, match.QuarterFinal, 3, at(18, 18, 10)),
		slot(match.CategoryMen, match.QuarterFinal, 4, at(18, 21, 10)),
		slot(match.CategoryMen, match.SemiFinal, 1, at(20, 15, 10)),
		slot(match.CategoryMen, match.SemiFinal, 2, at(20, 20, 10)),
		slot(match.CategoryMen, match.BronzeMedal, 1, at(21, 15, 10)),
		slot(match.CategoryMen, match.Final, 1, at(22, 14, 10)),
	}
}

// at builds a February 2026 timestamp in the tournament timezone
func at(day, hour, min int) time.Time {
	return time.Date(2026, time.February, day, hour, min, 0, 0, match.Prague)
}

func group(c match.Category, slot int, start time.Time, home, away, groupLabel string) match.Match {
	m := match.New(c, match.GroupStage, slot, start, audiences(c)...)
	m.HomeTeam = home
	m.AwayTeam = away
	m.Group = groupLabel
	return m
}

func slot(c match.Category, stage match.Stage, n int, start time.Time) match.Match {
	return match.New(c, stage, n, start, audiences(c)...)
}

func audiences(c match.Category) []match.Audience {
	if c == match.CategoryWomen {
		return []match.Audience{match.AudienceWomen, match.AudienceCzech}
	}
	return []match.Audience{match.AudienceMen, match.AudienceCzech}
}
