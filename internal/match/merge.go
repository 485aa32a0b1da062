package match

import (
	"sort"
	"time"
)

// Merge overlays extracted games onto the fixture skeleton and returns the
// merged list in skeleton order. The merge is total and deterministic: the
// same skeleton and the same games always produce the same output, and
// skeleton matches with no extracted counterpart keep their unresolved form.
//
// Games are keyed to skeleton slots by (stage, start time). Playoff rows
// whose scraped time does not line up exactly fall back to chronological
// ordinal within the stage. Group-stage rows must additionally involve one
// of the skeleton's teams, since the page lists group games the skeleton
// deliberately omits.
func Merge(skeleton []Match, games []Game) []Match {
	merged := make([]Match, len(skeleton))
	copy(merged, skeleton)

	usedGame := make([]bool, len(games))
	applied := make([]bool, len(merged))

	for i := range merged {
		for j := range games {
			if usedGame[j] {
				continue
			}
			g := &games[j]
			if g.Stage != merged[i].Stage || !g.Start.Equal(merged[i].Start) {
				continue
			}
			if merged[i].Stage == GroupStage &&
				!g.Involves(merged[i].HomeTeam) && !g.Involves(merged[i].AwayTeam) {
				continue
			}
			overlay(&merged[i], g)
			usedGame[j] = true
			applied[i] = true
			break
		}
	}

	// The page sometimes shifts playoff times before the bracket is seeded;
	// align leftover playoff rows to leftover slots by start order.
	for _, stage := range []Stage{QuarterFinal, SemiFinal, BronzeMedal, Final} {
		var slots []int
		for i := range merged {
			if merged[i].Stage == stage && !applied[i] {
				slots = append(slots, i)
			}
		}
		var rows []int
		for j := range games {
			if games[j].Stage == stage && !usedGame[j] {
				rows = append(rows, j)
			}
		}
		if len(slots) == 0 || len(rows) == 0 {
			continue
		}
		sort.Slice(slots, func(a, b int) bool {
			return byStart(merged[slots[a]].Start, merged[slots[b]].Start, slots[a] < slots[b])
		})
		sort.Slice(rows, func(a, b int) bool {
			return byStart(games[rows[a]].Start, games[rows[b]].Start, rows[a] < rows[b])
		})
		for k := 0; k < len(slots) && k < len(rows); k++ {
			overlay(&merged[slots[k]], &games[rows[k]])
			usedGame[rows[k]] = true
			applied[slots[k]] = true
		}
	}

	return merged
}

func byStart(a, b time.Time, tie bool) bool {
	if a.Equal(b) {
		return tie
	}
	return a.Before(b)
}

// overlay copies dynamic fields from an extracted game onto a skeleton
// match. Teams are copied only when both sides are concrete, so a pairing
// never resolves halfway; score and end-type travel together and flip the
// status to Final. Resolution is monotonic: an already-resolved or
// already-final match is never reverted by a sparser extraction.
func overlay(m *Match, g *Game) {
	if m.Stage.IsPlayoff() && !m.Resolved() && g.Resolved() {
		m.HomeTeam = g.HomeTeam
		m.AwayTeam = g.AwayTeam
	}
	if m.Status != StatusFinal && g.Score != nil {
		score := *g.Score
		// The skeleton's home/away order is authoritative; reorient the
		// score when the page lists the sides swapped.
		if m.Resolved() && g.HomeTeam == m.AwayTeam && g.AwayTeam == m.HomeTeam {
			score.Home, score.Away = score.Away, score.Home
		}
		m.Score = &score
		m.EndType = g.EndType
		if m.EndType == "" {
			m.EndType = EndRegulation
		}
		m.Status = StatusFinal
	}
	if m.Group == "" && g.Group != "" {
		m.Group = g.Group
	}
	if m.Venue == "" && g.Venue != "" {
		m.Venue = g.Venue
	}
}
