package scoring

import (
	"regexp"
	"strconv"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// requiredYearsRe extracts the first integer from a free-text experience
// requirement such as "5 years" or "3+ yrs".
var requiredYearsRe = regexp.MustCompile(`\d+`)

// experienceScorer compares stated years of experience against the job's
// requirement.
type experienceScorer struct{}

func newExperienceScorer() Scorer { return &experienceScorer{} }

func (s *experienceScorer) Name() string { return "experience_relevance" }

func (s *experienceScorer) Score(in Input, out *entity.AnalysisResult) (Step, error) {
	required := 0
	if m := requiredYearsRe.FindString(in.Job.ExperienceRequired); m != "" {
		required, _ = strconv.Atoi(m)
	}

	years := in.Resume.ExperienceYears

	var score int
	switch {
	case required == 0:
		// No stated requirement.
		score = 100
	case years >= required:
		// Bonus for exceeding the requirement, capped at 100.
		score = 100 + 5*(years-required)
		if score > 100 {
			score = 100
		}
	default:
		// Proportional penalty, ceiling of 80 when the requirement is not met.
		score = int(80 * float64(years) / float64(required))
		if score < 0 {
			score = 0
		}
	}

	out.ExperienceRelevanceScore = score
	return Step{Score: float64(score)}, nil
}
