package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
	"go.uber.org/zap"
)

// Input bundles the resume / job description pair under analysis. Both values
// must be treated as immutable while the engine reads them.
type Input struct {
	Resume *entity.Resume
	Job    *entity.JobDescription
}

// Scorer is a single scoring step applied to the input pair. Each step fills
// its own fields of the result and never reads another step's output.
type Scorer interface {
	Name() string
	Score(in Input, out *entity.AnalysisResult) (Step, error)
}

// Step describes the outcome of executing a scoring step.
type Step struct {
	Score float64
}

// Engine runs the component scorers over one pair and assembles the final
// result. It is stateless apart from the injected read-only rule tables, so
// any number of Analyze calls may run concurrently.
type Engine struct {
	rules  *Rules
	logger *zap.Logger
	steps  []Scorer
}

// New builds an engine around the provided rule tables. Passing nil rules
// selects the defaults. Rule table violations are reported as a computation
// fault.
func New(rules *Rules, logger *zap.Logger) (*Engine, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		rules:  rules,
		logger: logger,
		steps: []Scorer{
			newSkillMatcher(),
			newExperienceScorer(),
			newEducationScorer(rules),
			newFormattingAnalyzer(rules),
			newKeywordDensityAnalyzer(rules),
		},
	}, nil
}

// Analyze scores the resume against the job description and returns a fresh
// result. Identical inputs always produce identical output.
func (e *Engine) Analyze(resume *entity.Resume, job *entity.JobDescription) (*entity.AnalysisResult, error) {
	if resume.IsEmpty() || job.IsEmpty() {
		return nil, ErrMissingInput
	}
	if resume.ExperienceYears < 0 {
		return nil, fmt.Errorf("%w: negative experience years %d", ErrComputationFault, resume.ExperienceYears)
	}

	in := Input{Resume: resume, Job: job}
	out := &entity.AnalysisResult{
		MatchedSkills:    []string{},
		MissingSkills:    []string{},
		ExtraSkills:      []string{},
		FormattingIssues: []string{},
		KeywordAnalysis:  map[string]int{},
		Recommendations:  []string{},
	}

	for _, step := range e.steps {
		info, err := step.Score(in, out)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		e.logger.Debug("scoring step",
			zap.String("name", step.Name()),
			zap.Float64("score", info.Score),
		)
	}

	out.ATSScore = aggregateScore(e.rules.Weights, out)

	industry := detectIndustry(e.rules.Industries, in.Job)
	out.DetectedIndustry = industry
	out.IndustryKeywords = industryKeywordBreakdown(e.rules.Industries, in.Resume, industry)

	out.Recommendations = buildRecommendations(out)

	e.logger.Info("analysis complete",
		zap.Int("ats_score", out.ATSScore),
		zap.Float64("skill_match", out.SkillMatchPercentage),
		zap.String("industry", out.DetectedIndustry),
		zap.Int("recommendations", len(out.Recommendations)),
	)

	return out, nil
}

// normalizeSkills lowercases and trims a skill list into a set, dropping
// empty entries.
func normalizeSkills(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// sortedKeys returns the set's members in lexical order. Sorting replaces the
// incidental map iteration order so that first-match-wins scans are
// reproducible.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
