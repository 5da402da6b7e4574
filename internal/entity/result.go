package entity

import (
	"encoding/json"
	"os"
)

// AnalysisResult is the full output of one analysis invocation. It is built
// once per call and never mutated afterwards; re-analysis replaces it.
type AnalysisResult struct {
	ATSScore                 int               `json:"ats_score"`
	SkillMatchPercentage     float64           `json:"skill_match_percentage"`
	ExperienceRelevanceScore int               `json:"experience_relevance_score"`
	EducationAlignmentScore  int               `json:"education_alignment_score"`
	FormattingScore          int               `json:"formatting_score"`
	MatchedSkills            []string          `json:"matched_skills"`
	MissingSkills            []string          `json:"missing_skills"`
	ExtraSkills              []string          `json:"extra_skills"`
	FormattingIssues         []string          `json:"formatting_issues"`
	KeywordAnalysis          map[string]int    `json:"keyword_analysis"`
	Recommendations          []string          `json:"recommendations"`
	DetectedIndustry         string            `json:"detected_industry"`
	IndustryKeywords         *IndustryKeywords `json:"industry_specific_keywords,omitempty"`
}

// IndustryKeywords is the industry-specific keyword breakdown for the
// detected industry.
type IndustryKeywords struct {
	Missing  []string `json:"missing"`
	Present  []string `json:"present"`
	Industry string   `json:"industry"`
}

// DumpToTmpFile writes the result as indented JSON to a temporary file and
// returns its name.
func (r *AnalysisResult) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "analysis_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
