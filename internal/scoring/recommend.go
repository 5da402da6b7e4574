package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// Advice thresholds. A component under its threshold triggers the matching
// recommendation.
const (
	skillAdviceThreshold      = 70
	experienceAdviceThreshold = 70
	formattingAdviceThreshold = 80
	educationAdviceThreshold  = 70
	lowScoreBand              = 60
	midScoreBand              = 80
	boilerplateBand           = 40

	maxNamedSkills   = 5
	maxNamedKeywords = 3
	minZeroKeywords  = 5
)

// adviceCategory identifies one rule of the recommendation cascade. The
// cascade is evaluated in declaration order, which fixes the priority of the
// produced items.
type adviceCategory int

const (
	adviceSkills adviceCategory = iota
	adviceExperience
	adviceFormatting
	adviceKeywords
	adviceEducation
	adviceOverall
	adviceBoilerplate
)

var adviceOrder = []adviceCategory{
	adviceSkills,
	adviceExperience,
	adviceFormatting,
	adviceKeywords,
	adviceEducation,
	adviceOverall,
	adviceBoilerplate,
}

// buildRecommendations turns low component scores into ordered, human
// readable action items, capped at maxRecommendations. The cascade is a pure
// function of the result: no randomness, no learning.
func buildRecommendations(res *entity.AnalysisResult) []string {
	recs := []string{}

	for _, category := range adviceOrder {
		switch category {
		case adviceSkills:
			if res.SkillMatchPercentage < skillAdviceThreshold && len(res.MissingSkills) > 0 {
				named := res.MissingSkills
				if len(named) > maxNamedSkills {
					named = named[:maxNamedSkills]
				}
				recs = append(recs, fmt.Sprintf(
					"Add these missing key skills to your resume: %s", strings.Join(named, ", ")))
			}
		case adviceExperience:
			if res.ExperienceRelevanceScore < experienceAdviceThreshold {
				recs = append(recs,
					"Highlight more relevant work experience or quantify your achievements with specific metrics")
			}
		case adviceFormatting:
			if res.FormattingScore < formattingAdviceThreshold && len(res.FormattingIssues) > 0 {
				recs = append(recs, fmt.Sprintf("Fix formatting issues: %s", res.FormattingIssues[0]))
			}
		case adviceKeywords:
			if missing := zeroCountKeywords(res.KeywordAnalysis); len(missing) > minZeroKeywords {
				recs = append(recs, fmt.Sprintf(
					"Consider incorporating these job-relevant keywords: %s",
					strings.Join(missing[:maxNamedKeywords], ", ")))
			}
		case adviceEducation:
			if res.EducationAlignmentScore < educationAdviceThreshold {
				recs = append(recs,
					"Clearly highlight your educational background and any relevant certifications")
			}
		case adviceOverall:
			switch {
			case res.ATSScore < lowScoreBand:
				recs = append(recs,
					"Your ATS score is low. Focus on adding relevant keywords and improving format structure")
			case res.ATSScore < midScoreBand:
				recs = append(recs,
					"Good progress! Fine-tune your resume by addressing the specific gaps identified above")
			}
		case adviceBoilerplate:
			if res.ATSScore < boilerplateBand {
				recs = append(recs,
					"Use a simple, clean format with clear section headers",
					"Include a professional summary highlighting your key qualifications",
					"Quantify your achievements with specific numbers and results")
			}
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// zeroCountKeywords lists tracked keywords absent from the resume, in lexical
// order for reproducibility.
func zeroCountKeywords(analysis map[string]int) []string {
	missing := []string{}
	for kw, count := range analysis {
		if count == 0 {
			missing = append(missing, kw)
		}
	}
	sort.Strings(missing)
	return missing
}

// Priority is one improvement focus area, ranked by potential impact.
type Priority struct {
	Area   string
	Impact int
	Advice string
}

// ImprovementPriorities lists the component areas under their advice
// thresholds, ordered by impact (the score headroom) descending. Ties keep
// the component check order.
func ImprovementPriorities(res *entity.AnalysisResult) []Priority {
	priorities := []Priority{}

	if res.SkillMatchPercentage < skillAdviceThreshold {
		priorities = append(priorities, Priority{
			Area:   "Skills",
			Impact: 100 - int(res.SkillMatchPercentage),
			Advice: "Add missing key skills from job description",
		})
	}
	if res.ExperienceRelevanceScore < experienceAdviceThreshold {
		priorities = append(priorities, Priority{
			Area:   "Experience",
			Impact: 100 - res.ExperienceRelevanceScore,
			Advice: "Better highlight relevant work experience",
		})
	}
	if res.FormattingScore < formattingAdviceThreshold {
		priorities = append(priorities, Priority{
			Area:   "Formatting",
			Impact: 100 - res.FormattingScore,
			Advice: "Improve ATS-friendly formatting",
		})
	}
	if res.EducationAlignmentScore < educationAdviceThreshold {
		priorities = append(priorities, Priority{
			Area:   "Education",
			Impact: 100 - res.EducationAlignmentScore,
			Advice: "Clarify educational background",
		})
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].Impact > priorities[j].Impact
	})

	return priorities
}
