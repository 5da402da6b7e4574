package scoring

import (
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// generalIndustry is returned when no industry in the table scores above zero.
const generalIndustry = "general"

// Only the first keywords of each industry weigh into detection; the rest are
// still reported in the breakdown.
const detectionKeywords = 5

// detectIndustry classifies the job description by scoring each industry:
// +10 for each role name found, +1 for each of the first detection keywords
// found. Ties resolve to the industry that appears first in the table.
func detectIndustry(industries []Industry, job *entity.JobDescription) string {
	combined := strings.ToLower(job.Title) + " " + strings.ToLower(job.RawText)

	best := generalIndustry
	bestScore := 0
	for _, ind := range industries {
		score := 0
		for _, role := range ind.Roles {
			if strings.Contains(combined, role) {
				score += 10
			}
		}
		keywords := ind.Keywords
		if len(keywords) > detectionKeywords {
			keywords = keywords[:detectionKeywords]
		}
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = ind.Name
		}
	}

	return best
}

// industryKeywordBreakdown splits the detected industry's keyword list into
// those present in the resume text and those missing from it (capped at 8).
func industryKeywordBreakdown(industries []Industry, resume *entity.Resume, name string) *entity.IndustryKeywords {
	if name == generalIndustry {
		return &entity.IndustryKeywords{
			Missing:  []string{},
			Present:  []string{},
			Industry: generalIndustry,
		}
	}

	var industry *Industry
	for i := range industries {
		if industries[i].Name == name {
			industry = &industries[i]
			break
		}
	}
	if industry == nil {
		return &entity.IndustryKeywords{
			Missing:  []string{},
			Present:  []string{},
			Industry: generalIndustry,
		}
	}

	resumeText := strings.ToLower(resume.RawText)
	missing := []string{}
	present := []string{}
	for _, kw := range industry.Keywords {
		if strings.Contains(resumeText, strings.ToLower(kw)) {
			present = append(present, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	if len(missing) > 8 {
		missing = missing[:8]
	}

	return &entity.IndustryKeywords{
		Missing:  missing,
		Present:  present,
		Industry: industryLabel(name),
	}
}

// industryLabel turns a table name like "software_engineering" into a
// human-readable "Software Engineering".
func industryLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
