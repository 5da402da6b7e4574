package scoring

import "github.com/atsmatch/atsmatch/internal/entity"

// aggregateScore combines the five component scores into the overall ATS
// score. Every component is already on a 0-100 scale, so the weighted sum is
// bounded as long as the weights sum to 1.0 (validated at construction). The
// sum is truncated to an integer with no further rounding.
func aggregateScore(w Weights, res *entity.AnalysisResult) int {
	total := res.SkillMatchPercentage*w.SkillMatch +
		float64(res.ExperienceRelevanceScore)*w.Experience +
		float64(res.FormattingScore)*w.Formatting +
		float64(res.EducationAlignmentScore)*w.Education +
		keywordDensityScore(res.KeywordAnalysis)*w.KeywordDensity

	return int(total)
}

// keywordDensityScore is the share of tracked keywords that occur in the
// resume at least once, or 0 when nothing was tracked.
func keywordDensityScore(analysis map[string]int) float64 {
	if len(analysis) == 0 {
		return 0
	}
	present := 0
	for _, count := range analysis {
		if count > 0 {
			present++
		}
	}
	return float64(present) / float64(len(analysis)) * 100
}
