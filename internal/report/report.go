// Package report renders an AnalysisResult for human consumption. It treats
// the result as read-only and every field as optional.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// Score bands used when presenting the overall score.
const (
	bandExcellent = 90
	bandVeryGood  = 80
	bandGood      = 70
	bandFair      = 60
)

// ScoreCategory labels an overall ATS score for display.
func ScoreCategory(score int) string {
	switch {
	case score >= bandExcellent:
		return "Excellent"
	case score >= bandVeryGood:
		return "Very Good"
	case score >= bandGood:
		return "Good"
	case score >= bandFair:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// Summary renders a compact multi-line text summary of the analysis.
func Summary(res *entity.AnalysisResult) string {
	if res == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ATS Score: %d/100 (%s)\n", res.ATSScore, ScoreCategory(res.ATSScore))
	fmt.Fprintf(&b, "Skill Match: %.1f%%\n", res.SkillMatchPercentage)
	fmt.Fprintf(&b, "Experience Relevance: %d/100\n", res.ExperienceRelevanceScore)
	fmt.Fprintf(&b, "Education Alignment: %d/100\n", res.EducationAlignmentScore)
	fmt.Fprintf(&b, "Formatting: %d/100\n", res.FormattingScore)

	if res.DetectedIndustry != "" {
		fmt.Fprintf(&b, "Detected Industry: %s\n", res.DetectedIndustry)
	}
	if len(res.MatchedSkills) > 0 {
		fmt.Fprintf(&b, "Matched Skills: %s\n", strings.Join(res.MatchedSkills, ", "))
	}
	if len(res.MissingSkills) > 0 {
		fmt.Fprintf(&b, "Missing Skills: %s\n", strings.Join(res.MissingSkills, ", "))
	}
	if len(res.FormattingIssues) > 0 {
		b.WriteString("Formatting Issues:\n")
		for _, issue := range res.FormattingIssues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
	}

	return b.String()
}

// Recommendations renders the ordered action items as a numbered list.
func Recommendations(res *entity.AnalysisResult) string {
	if res == nil || len(res.Recommendations) == 0 {
		return "No recommendations - the resume looks well aligned with this job."
	}

	var b strings.Builder
	for i, rec := range res.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	return b.String()
}

// KeywordAnalysis renders the tracked keyword counts, keywords found in the
// resume first, then the absent ones, each group in lexical order.
func KeywordAnalysis(res *entity.AnalysisResult) string {
	if res == nil || len(res.KeywordAnalysis) == 0 {
		return "No keywords were tracked for this job description."
	}

	found := []string{}
	absent := []string{}
	for kw, count := range res.KeywordAnalysis {
		if count > 0 {
			found = append(found, fmt.Sprintf("%s (%d)", kw, count))
		} else {
			absent = append(absent, kw)
		}
	}
	sort.Strings(found)
	sort.Strings(absent)

	var b strings.Builder
	if len(found) > 0 {
		fmt.Fprintf(&b, "Present in resume: %s\n", strings.Join(found, ", "))
	}
	if len(absent) > 0 {
		fmt.Fprintf(&b, "Missing from resume: %s\n", strings.Join(absent, ", "))
	}
	return b.String()
}

// IndustryKeywords renders the industry-specific keyword breakdown.
func IndustryKeywords(res *entity.AnalysisResult) string {
	if res == nil || res.IndustryKeywords == nil {
		return "No industry-specific keywords available."
	}

	ik := res.IndustryKeywords
	var b strings.Builder
	fmt.Fprintf(&b, "Industry: %s\n", ik.Industry)
	if len(ik.Present) > 0 {
		fmt.Fprintf(&b, "Already covered: %s\n", strings.Join(ik.Present, ", "))
	}
	if len(ik.Missing) > 0 {
		fmt.Fprintf(&b, "Worth adding: %s\n", strings.Join(ik.Missing, ", "))
	}
	if len(ik.Present) == 0 && len(ik.Missing) == 0 {
		b.WriteString("No industry keyword data for this job.\n")
	}
	return b.String()
}
