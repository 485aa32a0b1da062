package scraper

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pokys/zoh-hokej-ics/internal/match"
)

var (
	datePattern  = regexp.MustCompile(`\b(\d{1,2}\s+[A-Za-z]+\s+20\d{2})\b`)
	timePattern  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	timeLine     = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	scorePattern = regexp.MustCompile(`(\d+)\s*[–-]\s*(\d+)`)
	groupPattern = regexp.MustCompile(`Group[\s_]+([A-Z])\b`)
	shootoutMark = regexp.MustCompile(`\b(GWS|SO)\b`)
	overtimeMark = regexp.MustCompile(`\bOT\b`)
)

// venues the 2026 tournament plays in, longest name first so substring
// checks prefer the specific one
var knownVenues = []string{"PalaItalia Santa Giulia", "PalaItalia", "Fiera Milano"}

// parseSchedule extracts partial match records from the page. Strategies
// run in priority order: Wikipedia's vevent summary rows carry the richest
// data (teams, scores, venue), generic wikitables cover the pre-results
// page layout, and a plain-text scan is the last resort against markup
// drift. A page none of them recognize is a fatal ParseError; anything
// missing below the table level degrades to unresolved fields instead.
func parseSchedule(r io.Reader, sourceURL string) ([]match.Game, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{URL: sourceURL, Reason: "reading document", Err: err}
	}

	games := parseVevents(doc)
	if len(games) == 0 {
		games = parseWikitables(doc)
	}
	if len(games) == 0 {
		games = parseText(doc)
	}
	if len(games) == 0 {
		return nil, &ParseError{URL: sourceURL, Reason: "no recognizable schedule"}
	}
	return games, nil
}

// parseVevents reads Wikipedia's match summary rows: date/time in the first
// cell, the two teams in cells 1 and 3, the score between them, venue last.
func parseVevents(doc *goquery.Document) []match.Game {
	var games []match.Game

	doc.Find("table.vevent tr.summary").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		left := collapseSpaces(cells.Eq(0).Text())
		start, ok := parseStart(left, left)
		if !ok {
			return
		}

		game := match.Game{
			Start:    start,
			HomeTeam: match.NormalizeCode(cells.Eq(1).Text()),
			AwayTeam: match.NormalizeCode(cells.Eq(3).Text()),
		}

		center := collapseSpaces(cells.Eq(2).Text())
		if sm := scorePattern.FindStringSubmatch(center); sm != nil {
			game.Score = &match.Score{Home: atoi(sm[1]), Away: atoi(sm[2])}
			game.EndType = endTypeFrom(center)
		}

		if cells.Length() > 4 {
			game.Venue = collapseSpaces(cells.Eq(4).Text())
		}

		game.Stage, game.Group = veventContext(row, cells.Eq(0))
		games = append(games, game)
	})

	return games
}

// veventContext infers the phase of a summary row from the nearest section
// heading, then lets the row's own anchor (e.g. "#Quarterfinals") override
// it, since anchors survive heading renames better.
func veventContext(row, leftCell *goquery.Selection) (match.Stage, string) {
	stage := match.GroupStage
	group := ""

	heading := row.Closest("table").PrevAllFiltered("h2, h3, h4, div.mw-heading").First()
	if heading.Length() > 0 {
		text := heading.Text()
		if id, ok := heading.Attr("id"); ok {
			text += " " + id
		}
		if s, ok := stageFrom(text); ok {
			stage = s
		}
		if g := groupLabelFrom(text); g != "" {
			group = g
		}
	}

	if anchor := leftCell.Find(`a[href^="#"]`).First(); anchor.Length() > 0 {
		href, _ := anchor.Attr("href")
		if s, ok := stageFrom(href); ok {
			stage = s
			group = ""
		}
		if g := groupLabelFrom(href); g != "" {
			stage = match.GroupStage
			group = g
		}
	}

	return stage, group
}

// parseWikitables handles the schedule-table layout the page carries before
// results exist: one wikitable per section with date/time/team columns. No
// scores are extracted here; the layout predates them.
func parseWikitables(doc *goquery.Document) []match.Game {
	var games []match.Game

	doc.Find("table.wikitable").Each(func(_ int, table *goquery.Selection) {
		caption := collapseSpaces(table.Find("caption").First().Text())

		dateIdx, timeIdx, venueIdx, homeIdx, awayIdx := -1, -1, -1, -1, -1
		table.Find("th").Each(func(idx int, th *goquery.Selection) {
			h := strings.ToLower(collapseSpaces(th.Text()))
			switch {
			case dateIdx == -1 && strings.Contains(h, "date"):
				dateIdx = idx
			case timeIdx == -1 && strings.Contains(h, "time"):
				timeIdx = idx
			case venueIdx == -1 && strings.Contains(h, "venue"):
				venueIdx = idx
			case strings.Contains(h, "home") || strings.Contains(h, "team 1"):
				homeIdx = idx
			case strings.Contains(h, "away") || strings.Contains(h, "team 2"):
				awayIdx = idx
			}
		})

		var currentDate time.Time
		haveDate := false

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			var texts []string
			row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				texts = append(texts, collapseSpaces(cell.Text()))
			})
			if len(texts) == 0 {
				return
			}
			rowText := strings.Join(texts, " ")
			if strings.Contains(strings.ToLower(rowText), "schedule") {
				return
			}

			if raw := cellAt(texts, dateIdx); raw != "" && !isDateHeader(raw) {
				if d, ok := parseDate(raw); ok {
					currentDate = d
					haveDate = true
				}
			}

			timeText := cellAt(texts, timeIdx)
			if timeText == "" {
				timeText = rowText
			}
			tm := timePattern.FindStringSubmatch(timeText)
			if tm == nil || !haveDate {
				return
			}

			game := match.Game{
				Start: combine(currentDate, atoi(tm[1]), atoi(tm[2])),
				Venue: cellAt(texts, venueIdx),
			}

			phaseText := caption + " " + rowText
			if s, ok := stageFrom(phaseText); ok {
				game.Stage = s
			}
			game.Group = groupLabelFrom(phaseText)

			game.HomeTeam = match.NormalizeCode(cellAt(texts, homeIdx))
			game.AwayTeam = match.NormalizeCode(cellAt(texts, awayIdx))
			if game.HomeTeam == "" || game.AwayTeam == "" {
				var found []string
				for _, text := range texts {
					if code := match.NormalizeCode(text); code != "" && !contains(found, code) {
						found = append(found, code)
					}
				}
				if len(found) >= 2 {
					game.HomeTeam, game.AwayTeam = found[0], found[1]
				}
			}

			games = append(games, game)
		})
	})

	return games
}

// parseText is the drift fallback: strip markup, walk the rendered lines
// and track heading/date/time context until a line mentions two teams.
func parseText(doc *goquery.Document) []match.Game {
	doc.Find("script, style").Remove()

	var lines []string
	for _, raw := range strings.Split(doc.Text(), "\n") {
		if line := collapseSpaces(raw); line != "" {
			lines = append(lines, line)
		}
	}

	var games []match.Game
	stage := match.GroupStage
	group := ""
	var currentDate time.Time
	haveDate := false
	hour, minute := 0, 0
	haveTime := false

	for i, line := range lines {
		if g := groupLabelFrom(line); g != "" {
			stage = match.GroupStage
			group = g
			continue
		}
		if s, ok := stageHeadingFrom(line); ok {
			stage = s
			group = ""
			continue
		}
		if d, ok := parseDate(line); ok {
			currentDate = d
			haveDate = true
			continue
		}
		if timeLine.MatchString(line) {
			tm := timePattern.FindStringSubmatch(line)
			hour, minute = atoi(tm[1]), atoi(tm[2])
			haveTime = true
			continue
		}
		if !haveDate || !haveTime {
			continue
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "attendance") || strings.Contains(lower, "goalies") ||
			strings.Contains(lower, "referees") || strings.Contains(lower, "linesmen") {
			continue
		}

		codes := match.FindTeamCodes(line)
		unseeded := strings.Contains(lower, "tbd v tbd")
		if len(codes) < 2 && !unseeded {
			continue
		}

		game := match.Game{
			Stage: stage,
			Start: combine(currentDate, hour, minute),
			Group: group,
		}
		if !unseeded {
			game.HomeTeam, game.AwayTeam = codes[0], codes[1]
		}
		if sm := scorePattern.FindStringSubmatch(line); sm != nil {
			game.Score = &match.Score{Home: atoi(sm[1]), Away: atoi(sm[2])}
			game.EndType = endTypeFrom(line)
		}

		game.Venue = venueIn(line)
		if game.Venue == "" && i+1 < len(lines) {
			game.Venue = venueIn(lines[i+1])
		}

		games = append(games, game)
	}

	return games
}

// stageFrom maps free text to a stage. "quarter" must win over "final"
// because the former contains the latter.
func stageFrom(text string) (match.Stage, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "quarter"):
		return match.QuarterFinal, true
	case strings.Contains(lower, "semi"):
		return match.SemiFinal, true
	case strings.Contains(lower, "bronze"):
		return match.BronzeMedal, true
	case strings.Contains(lower, "gold"), strings.Contains(lower, "final"):
		return match.Final, true
	case strings.Contains(lower, "group"), strings.Contains(lower, "preliminary"):
		return match.GroupStage, true
	}
	return match.GroupStage, false
}

var (
	quarterHeading = regexp.MustCompile(`(?i)^quarter-?finals?\b`)
	semiHeading    = regexp.MustCompile(`(?i)^semi-?finals?\b`)
	bronzeHeading  = regexp.MustCompile(`(?i)^bronze medal game\b|^bronze\b`)
	goldHeading    = regexp.MustCompile(`(?i)^gold medal game\b|^final\b`)
)

// stageHeadingFrom recognizes only whole heading lines, so ordinary result
// lines like "Finland 3–2 Sweden" don't shift the phase context
func stageHeadingFrom(line string) (match.Stage, bool) {
	switch {
	case quarterHeading.MatchString(line):
		return match.QuarterFinal, true
	case semiHeading.MatchString(line):
		return match.SemiFinal, true
	case bronzeHeading.MatchString(line):
		return match.BronzeMedal, true
	case goldHeading.MatchString(line):
		return match.Final, true
	}
	return match.GroupStage, false
}

func groupLabelFrom(text string) string {
	if m := groupPattern.FindStringSubmatch(text); m != nil {
		return "Skupina " + m[1]
	}
	return ""
}

func endTypeFrom(text string) match.EndType {
	if shootoutMark.MatchString(text) {
		return match.EndShootout
	}
	if overtimeMark.MatchString(text) {
		return match.EndOvertime
	}
	return match.EndRegulation
}

func parseDate(text string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2 January 2006", m[1], match.Prague)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// parseStart reads a date from dateText and a clock time from timeText
func parseStart(dateText, timeText string) (time.Time, bool) {
	d, ok := parseDate(dateText)
	if !ok {
		return time.Time{}, false
	}
	tm := timePattern.FindStringSubmatch(timeText)
	if tm == nil {
		return time.Time{}, false
	}
	return combine(d, atoi(tm[1]), atoi(tm[2])), true
}

func combine(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, match.Prague)
}

func venueIn(line string) string {
	lower := strings.ToLower(line)
	for _, v := range knownVenues {
		if strings.Contains(lower, strings.ToLower(v)) {
			return v
		}
	}
	return ""
}

func cellAt(texts []string, idx int) string {
	if idx < 0 || idx >= len(texts) {
		return ""
	}
	return texts[idx]
}

func isDateHeader(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return lower == "date" || lower == "datum"
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
