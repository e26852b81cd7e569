package scoring

import (
	"testing"

	"github.com/abhisek/cyberpath/internal/answers"
	"github.com/abhisek/cyberpath/internal/catalog"
)

func emptySet() *answers.Set {
	return answers.New(catalog.Questions())
}

// rawFor reruns the raw scoring table and returns one role's score.
func rawFor(t *testing.T, set *answers.Set, roleID string) int {
	t.Helper()
	scores := rawScores(set, catalog.Roles())
	raw, ok := scores[roleID]
	if !ok {
		t.Fatalf("role %q not scored", roleID)
	}
	return raw
}

func TestRank_EmptyAnswers_AllBaseline(t *testing.T) {
	scores := rawScores(emptySet(), catalog.Roles())
	for id, raw := range scores {
		if raw != Baseline {
			t.Errorf("role %q raw = %d, want baseline %d", id, raw, Baseline)
		}
	}

	recs := Rank(emptySet())
	if len(recs) != TopN {
		t.Fatalf("len(recs) = %d, want %d", len(recs), TopN)
	}
	// All tied at baseline: stable sort keeps catalog order.
	roles := catalog.Roles()
	for i, rec := range recs {
		if rec.Role.ID != roles[i].ID {
			t.Errorf("recs[%d] = %q, want catalog order %q", i, rec.Role.ID, roles[i].ID)
		}
	}
}

func TestRank_OrientationBonus(t *testing.T) {
	set := emptySet()
	set.Select("q1", "offense")

	for _, role := range catalog.Roles() {
		raw := rawFor(t, set, role.ID)
		want := Baseline
		if role.Category == catalog.Offense {
			want = Baseline + 30
		}
		if raw != want {
			t.Errorf("role %q (%s) raw = %d, want %d", role.ID, role.Category, raw, want)
		}
	}
}

func TestRank_LeadershipOrientation_NoAdjustment(t *testing.T) {
	set := emptySet()
	set.Select("q1", "leadership")

	for id, raw := range rawScores(set, catalog.Roles()) {
		if raw != Baseline {
			t.Errorf("role %q raw = %d, want baseline (leadership matches no category)", id, raw)
		}
	}
}

func TestRank_InclinationBoth_FlatBonus(t *testing.T) {
	set := emptySet()
	set.Select("q3", "both")

	for id, raw := range rawScores(set, catalog.Roles()) {
		if raw != Baseline+10 {
			t.Errorf("role %q raw = %d, want %d", id, raw, Baseline+10)
		}
	}
}

func TestRank_BeginnerPenalty(t *testing.T) {
	set := emptySet()
	set.Select("q5", "beginner")

	penalised := map[string]bool{
		"exploit_developer":  true,
		"security_architect": true,
		"red_team_operator":  true,
	}
	for id, raw := range rawScores(set, catalog.Roles()) {
		want := Baseline
		if penalised[id] {
			want = Baseline - 20
		}
		if raw != want {
			t.Errorf("role %q raw = %d, want %d", id, raw, want)
		}
	}
}

func TestRank_UnlistedInterest_NoContribution(t *testing.T) {
	set := emptySet()
	set.Toggle("q6", "osint")
	set.Toggle("q6", "mobile")

	for id, raw := range rawScores(set, catalog.Roles()) {
		if raw != Baseline {
			t.Errorf("role %q raw = %d, want baseline for unlisted interests", id, raw)
		}
	}
}

func TestRank_SOCAnalystScenario(t *testing.T) {
	// defense +30, analysis +25, networks interest +30 over baseline 50.
	set := emptySet()
	set.Select("q1", "defense")
	set.Select("q3", "analysis")
	set.Toggle("q6", "networks")

	raw := rawFor(t, set, "soc_analyst")
	if raw != 135 {
		t.Errorf("soc_analyst raw = %d, want 135", raw)
	}

	recs := Rank(set)
	if recs[0].Role.ID != "soc_analyst" {
		t.Fatalf("top recommendation = %q, want soc_analyst", recs[0].Role.ID)
	}
	if recs[0].MatchPercent != 90 {
		t.Errorf("soc_analyst match = %d, want 90", recs[0].MatchPercent)
	}
}

func TestDisplayScore_ClampsAt99(t *testing.T) {
	if got := displayScore(200); got != 99 {
		t.Errorf("displayScore(200) = %d, want 99", got)
	}
	if got := displayScore(-10); got != 0 {
		t.Errorf("displayScore(-10) = %d, want 0", got)
	}
	if got := displayScore(135); got != 90 {
		t.Errorf("displayScore(135) = %d, want 90", got)
	}
}

func TestRank_MatchPercentBounds(t *testing.T) {
	// Max out every bonus and verify the display clamp holds.
	set := emptySet()
	set.Select("q1", "offense")
	set.Select("q3", "coding")
	for _, interest := range []string{"web_apps", "networks", "cloud", "mobile", "osint", "malware"} {
		set.Toggle("q6", interest)
	}

	for _, rec := range Rank(set) {
		if rec.MatchPercent < 0 || rec.MatchPercent > 99 {
			t.Errorf("role %q match %d out of [0,99]", rec.Role.ID, rec.MatchPercent)
		}
	}
}

func TestRank_ReturnsTopThreeByRawScore(t *testing.T) {
	set := emptySet()
	set.Select("q1", "engineering")
	set.Toggle("q6", "cloud")

	recs := Rank(set)
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	// cloud_security_engineer 50+30+40=120 leads, devsecops 50+30+20=100 next.
	if recs[0].Role.ID != "cloud_security_engineer" {
		t.Errorf("recs[0] = %q, want cloud_security_engineer", recs[0].Role.ID)
	}
	if recs[1].Role.ID != "devsecops_engineer" {
		t.Errorf("recs[1] = %q, want devsecops_engineer", recs[1].Role.ID)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Raw > recs[i-1].Raw {
			t.Errorf("recommendations not sorted: %d before %d", recs[i-1].Raw, recs[i].Raw)
		}
	}
}
