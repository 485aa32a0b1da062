package fixture

import (
	"testing"

	"github.com/pokys/zoh-hokej-ics/internal/match"
)

func TestTournaments(t *testing.T) {
	tournaments := Tournaments()
	if len(tournaments) != 2 {
		t.Fatalf("expected 2 tournaments, got %d", len(tournaments))
	}

	outFiles := make(map[string]bool)
	for _, tour := range tournaments {
		if tour.SourceURL == "" || tour.OutFile == "" || tour.CalendarName == "" {
			t.Errorf("tournament %s has empty configuration: %+v", tour.Category, tour)
		}
		if outFiles[tour.OutFile] {
			t.Errorf("duplicate output file %s", tour.OutFile)
		}
		outFiles[tour.OutFile] = true
		if tour.OutFile == CombinedOutFile {
			t.Errorf("tournament output file collides with the combined calendar")
		}
	}
}

func TestSkeletonIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range []match.Category{match.CategoryWomen, match.CategoryMen} {
		for _, m := range Skeleton(c) {
			if seen[m.ID] {
				t.Errorf("duplicate match ID %s", m.ID)
			}
			seen[m.ID] = true
		}
	}
	if len(seen) == 0 {
		t.Fatal("skeleton should not be empty")
	}
}

func TestSkeletonOrderedByStart(t *testing.T) {
	for _, c := range []match.Category{match.CategoryWomen, match.CategoryMen} {
		skeleton := Skeleton(c)
		for i := 1; i < len(skeleton); i++ {
			if skeleton[i].Start.Before(skeleton[i-1].Start) {
				t.Errorf("%s skeleton out of order at %s", c, skeleton[i].ID)
			}
		}
	}
}

func TestSkeletonGroupMatchesInvolveCzechTeam(t *testing.T) {
	for _, c := range []match.Category{match.CategoryWomen, match.CategoryMen} {
		for _, m := range Skeleton(c) {
			if m.Stage != match.GroupStage {
				if m.Resolved() {
					t.Errorf("playoff slot %s must not be pre-seeded", m.ID)
				}
				continue
			}
			if m.HomeTeam != match.TeamCzech && m.AwayTeam != match.TeamCzech {
				t.Errorf("group match %s does not involve %s", m.ID, match.TeamCzech)
			}
			if m.Group == "" {
				t.Errorf("group match %s missing its group label", m.ID)
			}
		}
	}
}

func TestSkeletonAudiences(t *testing.T) {
	for _, m := range Skeleton(match.CategoryWomen) {
		if !m.HasAudience(match.AudienceWomen) || !m.HasAudience(match.AudienceCzech) {
			t.Errorf("women's match %s missing audience tags: %v", m.ID, m.Audiences)
		}
		if m.HasAudience(match.AudienceMen) {
			t.Errorf("women's match %s tagged for the men's calendar", m.ID)
		}
	}
	for _, m := range Skeleton(match.CategoryMen) {
		if !m.HasAudience(match.AudienceMen) || !m.HasAudience(match.AudienceCzech) {
			t.Errorf("men's match %s missing audience tags: %v", m.ID, m.Audiences)
		}
		if m.HasAudience(match.AudienceWomen) {
			t.Errorf("men's match %s tagged for the women's calendar", m.ID)
		}
	}
}

func TestSkeletonPlayoffSlots(t *testing.T) {
	for _, c := range []match.Category{match.CategoryWomen, match.CategoryMen} {
		counts := make(map[match.Stage]int)
		for _, m := range Skeleton(c) {
			counts[m.Stage]++
		}
		if counts[match.QuarterFinal] != 4 {
			t.Errorf("%s: expected 4 quarterfinal slots, got %d", c, counts[match.QuarterFinal])
		}
		if counts[match.SemiFinal] != 2 {
			t.Errorf("%s: expected 2 semifinal slots, got %d", c, counts[match.SemiFinal])
		}
		if counts[match.BronzeMedal] != 1 || counts[match.Final] != 1 {
			t.Errorf("%s: expected one bronze and one final slot", c)
		}
	}
}
