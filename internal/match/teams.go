package match

import (
	"regexp"
	"sort"
	"strings"
)

// TeamCzech is the IIHF code of the Czech national team
const TeamCzech = "CZE"

// czechNames maps IIHF codes to the Czech display names used in summaries
var czechNames = map[string]string{
	"CZE": "Česko",
	"FIN": "Finsko",
	"SWE": "Švédsko",
	"USA": "USA",
	"CAN": "Kanada",
	"SUI": "Švýcarsko",
	"GER": "Německo",
	"SVK": "Slovensko",
	"LAT": "Lotyšsko",
	"DEN": "Dánsko",
	"NOR": "Norsko",
	"AUT": "Rakousko",
	"FRA": "Francie",
	"ITA": "Itálie",
	"JPN": "Japonsko",
	"CHN": "Čína",
	"KOR": "Jižní Korea",
}

var flags = map[string]string{
	"CZE": "🇨🇿",
	"FIN": "🇫🇮",
	"SWE": "🇸🇪",
	"USA": "🇺🇸",
	"CAN": "🇨🇦",
	"SUI": "🇨🇭",
	"GER": "🇩🇪",
	"SVK": "🇸🇰",
	"LAT": "🇱🇻",
	"DEN": "🇩🇰",
	"NOR": "🇳🇴",
	"AUT": "🇦🇹",
	"FRA": "🇫🇷",
	"ITA": "🇮🇹",
	"JPN": "🇯🇵",
	"CHN": "🇨🇳",
	"KOR": "🇰🇷",
}

// aliases maps the country names Wikipedia uses to IIHF codes
var aliases = map[string]string{
	"czech republic":           "CZE",
	"czechia":                  "CZE",
	"finland":                  "FIN",
	"sweden":                   "SWE",
	"united states":            "USA",
	"united states of america": "USA",
	"canada":                   "CAN",
	"switzerland":              "SUI",
	"germany":                  "GER",
	"slovakia":                 "SVK",
	"latvia":                   "LAT",
	"denmark":                  "DEN",
	"norway":                   "NOR",
	"austria":                  "AUT",
	"france":                   "FRA",
	"italy":                    "ITA",
	"japan":                    "JPN",
	"china":                    "CHN",
	"south korea":              "KOR",
}

// aliasesByLength holds alias names longest-first so that substring scans
// match "united states of america" before "united states".
var aliasesByLength = func() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

var (
	codePattern    = regexp.MustCompile(`\b([A-Z]{3})\b`)
	footnoteMarker = regexp.MustCompile(`\[.*?\]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// NormalizeCode resolves a scraped cell into an IIHF team code. Footnote
// markers and whitespace runs are stripped first; country names resolve via
// the alias table, and a bare three-letter code passes through when it names
// a known team. Returns "" when the text names no team (the caller treats
// that as an unresolved side, never an error).
func NormalizeCode(raw string) string {
	cleaned := whitespaceRun.ReplaceAllString(footnoteMarker.ReplaceAllString(raw, ""), " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}
	if code, ok := aliases[strings.ToLower(cleaned)]; ok {
		return code
	}
	if m := codePattern.FindString(cleaned); m != "" {
		if _, ok := czechNames[m]; ok {
			return m
		}
	}
	return ""
}

// FindTeamCodes scans free text for team mentions (country names or codes)
// and returns the codes in order of appearance, deduplicated.
func FindTeamCodes(line string) []string {
	type hit struct {
		pos  int
		code string
	}
	lower := strings.ToLower(line)
	var hits []hit
	for _, name := range aliasesByLength {
		if idx := strings.Index(lower, name); idx != -1 {
			hits = append(hits, hit{idx, aliases[name]})
		}
	}
	for _, loc := range codePattern.FindAllStringIndex(line, -1) {
		code := line[loc[0]:loc[1]]
		if _, ok := czechNames[code]; ok {
			hits = append(hits, hit{loc[0], code})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[string]bool)
	codes := make([]string, 0, len(hits))
	for _, h := range hits {
		if !seen[h.code] {
			seen[h.code] = true
			codes = append(codes, h.code)
		}
	}
	return codes
}

// DisplayName returns the Czech name for a team code, or the code itself
// for teams outside the table.
func DisplayName(code string) string {
	if name, ok := czechNames[code]; ok {
		return name
	}
	return code
}

// DisplayWithFlag returns the flag-prefixed Czech name used in summaries.
// An empty code renders the TBD placeholder.
func DisplayWithFlag(code string) string {
	if code == "" {
		return "TBD 🏒"
	}
	if flag, ok := flags[code]; ok {
		return flag + " " + DisplayName(code)
	}
	return DisplayName(code)
}
