package scoring

import (
	"testing"

	"github.com/atsmatch/atsmatch/internal/entity"
)

func TestAggregateScore(t *testing.T) {
	// skill 66.67*0.30 + exp 48*0.25 + fmt 75*0.20 + edu 71*0.15 + kw 50*0.10
	// = 20.0 + 12.0 + 15.0 + 10.65 + 5.0 = 62.65, truncated to 62.
	res := &entity.AnalysisResult{
		SkillMatchPercentage:     100 * 2.0 / 3.0,
		ExperienceRelevanceScore: 48,
		FormattingScore:          75,
		EducationAlignmentScore:  71,
		KeywordAnalysis:          map[string]int{"python": 2, "sql": 1, "cloud": 0, "docker": 0},
	}

	if got := aggregateScore(DefaultRules().Weights, res); got != 62 {
		t.Fatalf("expected 62, got %d", got)
	}
}

func TestAggregateScoreBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		res  *entity.AnalysisResult
		want int
	}{
		{
			name: "all zero",
			res:  &entity.AnalysisResult{KeywordAnalysis: map[string]int{}},
			want: 0,
		},
		{
			name: "all perfect",
			res: &entity.AnalysisResult{
				SkillMatchPercentage:     100,
				ExperienceRelevanceScore: 100,
				FormattingScore:          100,
				EducationAlignmentScore:  100,
				KeywordAnalysis:          map[string]int{"python": 1},
			},
			want: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := aggregateScore(DefaultRules().Weights, tc.res); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestKeywordDensityScore(t *testing.T) {
	cases := []struct {
		name     string
		analysis map[string]int
		want     float64
	}{
		{name: "nothing tracked", analysis: map[string]int{}, want: 0},
		{name: "half present", analysis: map[string]int{"one": 3, "two": 0}, want: 50},
		{name: "all present", analysis: map[string]int{"one": 1, "two": 2}, want: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keywordDensityScore(tc.analysis); got != tc.want {
				t.Fatalf("expected %.0f, got %.2f", tc.want, got)
			}
		})
	}
}
