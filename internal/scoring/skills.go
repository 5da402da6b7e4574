package scoring

import (
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// skillMatcher compares resume skills against the union of the job's required
// and preferred skills.
type skillMatcher struct{}

func newSkillMatcher() Scorer { return &skillMatcher{} }

func (s *skillMatcher) Name() string { return "skill_match" }

func (s *skillMatcher) Score(in Input, out *entity.AnalysisResult) (Step, error) {
	resumeSkills := normalizeSkills(in.Resume.Skills)
	required := normalizeSkills(in.Job.RequiredSkills)
	preferred := normalizeSkills(in.Job.PreferredSkills)

	// Target universe: every skill the job asks for.
	target := make(map[string]bool, len(required)+len(preferred))
	for skill := range required {
		target[skill] = true
	}
	for skill := range preferred {
		target[skill] = true
	}

	// Exact matches first.
	matched := make(map[string]bool)
	for skill := range target {
		if resumeSkills[skill] {
			matched[skill] = true
		}
	}

	// Partial matches over the leftovers. Both sides are scanned in lexical
	// order so that first-match-wins is reproducible.
	partialUsed := make(map[string]bool)
	remainingTarget := sortedKeys(difference(target, matched))
	remainingResume := sortedKeys(difference(resumeSkills, matched))
	for _, jdSkill := range remainingTarget {
		for _, resumeSkill := range remainingResume {
			if isPartialMatch(jdSkill, resumeSkill) {
				matched[jdSkill] = true
				partialUsed[resumeSkill] = true
				break
			}
		}
	}

	missing := difference(target, matched)
	extra := difference(difference(resumeSkills, matched), partialUsed)

	var pct float64
	switch {
	case len(target) > 0:
		pct = float64(len(matched)) / float64(len(target)) * 100
	case len(resumeSkills) > 0:
		// The job names no skills; any skill data counts as a trivial pass.
		pct = 100
	}

	out.SkillMatchPercentage = pct
	out.MatchedSkills = sortedKeys(matched)
	out.MissingSkills = sortedKeys(missing)
	out.ExtraSkills = sortedKeys(extra)

	return Step{Score: pct}, nil
}

// isPartialMatch reports whether two skills are related without being literal
// duplicates: one contains the other, or they share at least two
// whitespace-delimited tokens.
func isPartialMatch(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return sharedTokens(a, b) >= 2
}

func sharedTokens(a, b string) int {
	tokens := make(map[string]bool)
	for _, t := range strings.Fields(a) {
		tokens[t] = true
	}
	shared := 0
	seen := make(map[string]bool)
	for _, t := range strings.Fields(b) {
		if tokens[t] && !seen[t] {
			shared++
			seen[t] = true
		}
	}
	return shared
}

func difference(set, exclude map[string]bool) map[string]bool {
	result := make(map[string]bool, len(set))
	for key := range set {
		if !exclude[key] {
			result[key] = true
		}
	}
	return result
}
