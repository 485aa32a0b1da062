package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/pokys/zoh-hokej-ics/internal/match"
)

func sampleMatches() []match.Match {
	start := time.Date(2026, time.February, 12, 12, 10, 0, 0, match.Prague)

	group := match.New(match.CategoryMen, match.GroupStage, 1, start, match.AudienceMen, match.AudienceCzech)
	group.HomeTeam = "FIN"
	group.AwayTeam = "CZE"
	group.Group = "Skupina B"
	group.Venue = "Fiera Milano"

	womens := match.New(match.CategoryWomen, match.GroupStage, 1,
		start.Add(4*time.Hour), match.AudienceWomen, match.AudienceCzech)
	womens.HomeTeam = "CZE"
	womens.AwayTeam = "FIN"

	final := match.New(match.CategoryMen, match.Final, 1,
		time.Date(2026, time.February, 22, 14, 10, 0, 0, match.Prague),
		match.AudienceMen, match.AudienceCzech)

	return []match.Match{group, womens, final}
}

func TestGenerate_RequiredFields(t *testing.T) {
	ics := Generate(sampleMatches(), match.AudienceMen, "ZOH 2026 – hokej (muži)")

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-TIMEZONE:Europe/Prague",
		"BEGIN:VEVENT",
		"UID:",
		"DTSTAMP:",
		"DTSTART:20260212T111000Z", // 12:10 Prague is 11:10 UTC in February
		"DTEND:20260212T141000Z",
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"TRANSP:OPAQUE",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
	if !strings.Contains(ics, "LOCATION:Fiera Milano") {
		t.Error("ICS missing venue location")
	}
}

func TestGenerate_AudienceFiltering(t *testing.T) {
	matches := sampleMatches()

	women := Generate(matches, match.AudienceWomen, "women")
	if strings.Count(women, "BEGIN:VEVENT") != 1 {
		t.Errorf("women's calendar should contain exactly 1 event:\n%s", women)
	}
	if strings.Contains(women, matches[0].UID()) {
		t.Error("men's group game leaked into the women's calendar")
	}

	men := Generate(matches, match.AudienceMen, "men")
	if strings.Count(men, "BEGIN:VEVENT") != 2 {
		t.Error("men's calendar should contain exactly 2 events")
	}

	combined := Generate(matches, match.AudienceCzech, "combined")
	if strings.Count(combined, "BEGIN:VEVENT") != 3 {
		t.Error("combined calendar should contain every match")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	matches := sampleMatches()

	first := Generate(matches, match.AudienceCzech, "combined")
	second := Generate(matches, match.AudienceCzech, "combined")
	if first != second {
		t.Error("repeated generation must be byte-identical")
	}

	// input order must not matter
	reversed := []match.Match{matches[2], matches[1], matches[0]}
	third := Generate(reversed, match.AudienceCzech, "combined")
	if first != third {
		t.Error("event order must not depend on input slice order")
	}
}

func TestGenerate_PlaceholderAndResolvedShareUID(t *testing.T) {
	matches := sampleMatches()
	placeholder := Generate(matches, match.AudienceMen, "men")
	if !strings.Contains(placeholder, "Finále 1") {
		t.Errorf("unresolved final should render the placeholder:\n%s", placeholder)
	}

	resolved := make([]match.Match, len(matches))
	copy(resolved, matches)
	resolved[2].HomeTeam = "CZE"
	resolved[2].AwayTeam = "USA"
	resolved[2].Score = &match.Score{Home: 3, Away: 2}
	resolved[2].EndType = match.EndOvertime
	resolved[2].Status = match.StatusFinal

	after := Generate(resolved, match.AudienceMen, "men")
	uid := "UID:" + matches[2].UID()
	if !strings.Contains(placeholder, uid) || !strings.Contains(after, uid) {
		t.Error("final match UID must survive resolution")
	}
	if !strings.Contains(after, "3:2 (OT)") {
		t.Errorf("resolved final should carry the score suffix:\n%s", after)
	}
}

func TestGenerate_EventsSortedByStart(t *testing.T) {
	matches := sampleMatches()
	ics := Generate(matches, match.AudienceCzech, "combined")

	groupIdx := strings.Index(ics, matches[0].UID())
	womensIdx := strings.Index(ics, matches[1].UID())
	finalIdx := strings.Index(ics, matches[2].UID())
	if groupIdx == -1 || womensIdx == -1 || finalIdx == -1 {
		t.Fatal("missing events in combined calendar")
	}
	if !(groupIdx < womensIdx && womensIdx < finalIdx) {
		t.Error("events should be ordered by start time")
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"a,b", "a\\,b"},
		{"a;b", "a\\;b"},
		{"a\\b", "a\\\\b"},
		{"a\nb", "a\\nb"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := escapeICS(tt.in); got != tt.expected {
			t.Errorf("escapeICS(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestWriteLineFolding(t *testing.T) {
	var b strings.Builder
	long := "SUMMARY:" + strings.Repeat("x", 200)
	writeLine(&b, long)
	out := b.String()

	for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		if len(line) > 75 {
			t.Errorf("folded line exceeds 75 octets: %d", len(line))
		}
	}

	unfolded := strings.ReplaceAll(out, "\r\n ", "")
	if unfolded != long+"\r\n" {
		t.Error("unfolding should reproduce the original line")
	}
}

func TestWriteLineFoldingMultibyte(t *testing.T) {
	var b strings.Builder
	long := "SUMMARY:" + strings.Repeat("Č", 100)
	writeLine(&b, long)
	out := b.String()

	unfolded := strings.ReplaceAll(out, "\r\n ", "")
	if unfolded != long+"\r\n" {
		t.Error("unfolding should reproduce the original line")
	}
	if !strings.Contains(unfolded, strings.Repeat("Č", 100)) {
		t.Error("folding must not split UTF-8 sequences")
	}
}
