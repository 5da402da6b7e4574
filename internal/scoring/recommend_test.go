package scoring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atsmatch/atsmatch/internal/entity"
)

func TestRecommendationsCascadeOrderAndCap(t *testing.T) {
	// Every rule of the cascade fires: 6 targeted items plus 3 boilerplate
	// items, capped at 8.
	res := &entity.AnalysisResult{
		ATSScore:                 35,
		SkillMatchPercentage:     40,
		ExperienceRelevanceScore: 50,
		FormattingScore:          60,
		EducationAlignmentScore:  50,
		MissingSkills:            []string{"go", "sql"},
		FormattingIssues:         []string{"Resume is too short - add more detail"},
		KeywordAnalysis: map[string]int{
			"zulu": 0, "echo": 0, "alpha": 0, "mike": 0, "golf": 0, "bravo": 0,
		},
	}

	recs := buildRecommendations(res)

	if len(recs) != maxRecommendations {
		t.Fatalf("expected %d recommendations, got %d: %v", maxRecommendations, len(recs), recs)
	}

	wantPrefixes := []string{
		"Add these missing key skills to your resume: go, sql",
		"Highlight more relevant work experience",
		"Fix formatting issues: Resume is too short",
		"Consider incorporating these job-relevant keywords: alpha, bravo, echo",
		"Clearly highlight your educational background",
		"Your ATS score is low.",
		"Use a simple, clean format",
		"Include a professional summary",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(recs[i], prefix) {
			t.Fatalf("recommendation %d: expected prefix %q, got %q", i, prefix, recs[i])
		}
	}
}

func TestRecommendationsNameAtMostFiveSkills(t *testing.T) {
	res := &entity.AnalysisResult{
		ATSScore:                 85,
		SkillMatchPercentage:     30,
		ExperienceRelevanceScore: 100,
		FormattingScore:          100,
		EducationAlignmentScore:  100,
		MissingSkills:            []string{"a", "b", "c", "d", "e", "f", "g"},
		KeywordAnalysis:          map[string]int{"python": 1},
	}

	recs := buildRecommendations(res)

	if len(recs) != 1 {
		t.Fatalf("expected a single recommendation, got %v", recs)
	}
	want := "Add these missing key skills to your resume: a, b, c, d, e"
	if recs[0] != want {
		t.Fatalf("expected %q, got %q", want, recs[0])
	}
}

func TestRecommendationsMidScoreBand(t *testing.T) {
	res := &entity.AnalysisResult{
		ATSScore:                 70,
		SkillMatchPercentage:     90,
		ExperienceRelevanceScore: 90,
		FormattingScore:          90,
		EducationAlignmentScore:  90,
		KeywordAnalysis:          map[string]int{"python": 1},
	}

	recs := buildRecommendations(res)

	if len(recs) != 1 || !strings.HasPrefix(recs[0], "Good progress!") {
		t.Fatalf("expected only the mid-band nudge, got %v", recs)
	}
}

func TestRecommendationsHighScoreProducesNone(t *testing.T) {
	res := &entity.AnalysisResult{
		ATSScore:                 88,
		SkillMatchPercentage:     95,
		ExperienceRelevanceScore: 100,
		FormattingScore:          95,
		EducationAlignmentScore:  100,
		KeywordAnalysis:          map[string]int{"python": 1, "sql": 2},
	}

	if recs := buildRecommendations(res); len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %v", recs)
	}
}

func TestZeroCountKeywordsAreSorted(t *testing.T) {
	analysis := map[string]int{"zeta": 0, "alpha": 0, "mid": 3, "beta": 0}

	for i := 0; i < 20; i++ {
		got := zeroCountKeywords(analysis)
		want := []string{"alpha", "beta", "zeta"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestImprovementPriorities(t *testing.T) {
	res := &entity.AnalysisResult{
		SkillMatchPercentage:     40,
		ExperienceRelevanceScore: 65,
		FormattingScore:          75,
		EducationAlignmentScore:  30,
	}

	got := ImprovementPriorities(res)

	wantAreas := []string{"Education", "Skills", "Experience", "Formatting"}
	if len(got) != len(wantAreas) {
		t.Fatalf("expected %d priorities, got %v", len(wantAreas), got)
	}
	for i, area := range wantAreas {
		if got[i].Area != area {
			t.Fatalf("priority %d: expected %q, got %q", i, area, got[i].Area)
		}
	}
	if got[0].Impact != 70 {
		t.Fatalf("expected top impact 70, got %d", got[0].Impact)
	}
}

func TestImprovementPrioritiesTieKeepsCheckOrder(t *testing.T) {
	res := &entity.AnalysisResult{
		SkillMatchPercentage:     40,
		ExperienceRelevanceScore: 100,
		FormattingScore:          100,
		EducationAlignmentScore:  40,
	}

	got := ImprovementPriorities(res)

	if len(got) != 2 || got[0].Area != "Skills" || got[1].Area != "Education" {
		t.Fatalf("expected Skills before Education on equal impact, got %v", got)
	}
}
