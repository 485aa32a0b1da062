// Package calendar renders merged matches as iCalendar documents. Emission
// is pure formatting: given the same matches it produces the same bytes, so
// repeated runs against unchanged source content leave the output files
// untouched.
package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/pokys/zoh-hokej-ics/internal/match"
)

const (
	// ProdID identifies the generator in emitted calendars
	ProdID = "-//zoh-hokej-2026-ics//CZ"

	// EventDuration is the fixed block reserved per match
	EventDuration = 3 * time.Hour
)

// Generate renders one calendar document containing exactly the matches
// carrying the given audience tag, sorted by start time. Matches with
// identical starts order by ID so the output is stable.
func Generate(matches []match.Match, audience match.Audience, name string) string {
	included := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.HasAudience(audience) {
			included = append(included, m)
		}
	}
	sort.Slice(included, func(i, j int) bool {
		if !included[i].Start.Equal(included[j].Start) {
			return included[i].Start.Before(included[j].Start)
		}
		return included[i].ID < included[j].ID
	})

	var ics strings.Builder
	writeLine(&ics, "BEGIN:VCALENDAR")
	writeLine(&ics, "VERSION:2.0")
	writeLine(&ics, "PRODID:"+ProdID)
	writeLine(&ics, "CALSCALE:GREGORIAN")
	writeLine(&ics, "METHOD:PUBLISH")
	writeLine(&ics, "X-WR-CALNAME:"+escapeICS(name))
	writeLine(&ics, "X-WR-TIMEZONE:Europe/Prague")

	for i := range included {
		writeEvent(&ics, &included[i])
	}

	writeLine(&ics, "END:VCALENDAR")
	return ics.String()
}

func writeEvent(ics *strings.Builder, m *match.Match) {
	writeLine(ics, "BEGIN:VEVENT")
	writeLine(ics, "UID:"+m.UID())

	// DTSTAMP derives from the match start rather than the wall clock so
	// repeated generation is byte-identical.
	writeLine(ics, "DTSTAMP:"+formatICSTime(m.Start))
	writeLine(ics, "DTSTART:"+formatICSTime(m.Start))
	writeLine(ics, "DTEND:"+formatICSTime(m.Start.Add(EventDuration)))

	writeLine(ics, "SUMMARY:"+escapeICS(m.Summary()))
	if desc := m.Description(); desc != "" {
		writeLine(ics, "DESCRIPTION:"+escapeICS(desc))
	}
	if m.Venue != "" {
		writeLine(ics, "LOCATION:"+escapeICS(m.Venue))
	}

	writeLine(ics, "STATUS:CONFIRMED")
	writeLine(ics, "SEQUENCE:0")
	writeLine(ics, "TRANSP:OPAQUE")
	writeLine(ics, "END:VEVENT")
}

// writeLine emits a content line folded at 75 octets per RFC 5545,
// continuation lines prefixed with a single space
func writeLine(ics *strings.Builder, line string) {
	const limit = 75
	octets := []byte(line)
	first := true
	for len(octets) > 0 {
		max := limit
		if !first {
			max = limit - 1
		}
		if len(octets) <= max {
			break
		}
		// never split inside a UTF-8 sequence
		cut := max
		for cut > 0 && octets[cut]&0xC0 == 0x80 {
			cut--
		}
		if !first {
			ics.WriteByte(' ')
		}
		ics.Write(octets[:cut])
		ics.WriteString("\r\n")
		octets = octets[cut:]
		first = false
	}
	if !first {
		ics.WriteByte(' ')
	}
	ics.Write(octets)
	ics.WriteString("\r\n")
}

// formatICSTime formats a time as a UTC iCalendar datetime
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
