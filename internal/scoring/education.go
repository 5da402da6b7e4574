package scoring

import (
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// educationScorer compares the highest degree on the resume against the
// required degree level from the ordered degree table.
type educationScorer struct {
	levels []DegreeLevel
}

func newEducationScorer(rules *Rules) Scorer {
	return &educationScorer{levels: rules.DegreeLevels}
}

func (s *educationScorer) Name() string { return "education_alignment" }

func (s *educationScorer) Score(in Input, out *entity.AnalysisResult) (Step, error) {
	requiredText := strings.ToLower(in.Job.EducationRequired)

	if len(in.Resume.Education) == 0 || strings.Contains(requiredText, "not specified") {
		out.EducationAlignmentScore = neutralEducationScore
		return Step{Score: neutralEducationScore}, nil
	}

	// Highest degree level found anywhere in the resume's degree strings.
	maxResume := 0
	for _, edu := range in.Resume.Education {
		degree := strings.ToLower(edu.Degree)
		for _, lvl := range s.levels {
			if strings.Contains(degree, lvl.Name) && lvl.Score > maxResume {
				maxResume = lvl.Score
			}
		}
	}

	// First table entry found in the requirement text wins.
	required := defaultRequiredDegreeScore
	for _, lvl := range s.levels {
		if strings.Contains(requiredText, lvl.Name) {
			required = lvl.Score
			break
		}
	}

	var score int
	switch {
	case maxResume >= required:
		score = 100
	case maxResume > 0:
		score = int(80 * float64(maxResume) / float64(required))
	default:
		// Education entries exist but no recognizable degree.
		score = undetectedDegreeScore
	}

	out.EducationAlignmentScore = score
	return Step{Score: float64(score)}, nil
}
