package scoring

import (
	"fmt"
	"math"
)

// Weights combines the five component scores into the overall ATS score.
// The values are fixed by calibration against real ATS behaviour and must
// sum to exactly 1.0.
type Weights struct {
	SkillMatch     float64 `json:"skill_match" mapstructure:"skill_match"`
	Experience     float64 `json:"experience" mapstructure:"experience"`
	Formatting     float64 `json:"formatting" mapstructure:"formatting"`
	Education      float64 `json:"education" mapstructure:"education"`
	KeywordDensity float64 `json:"keyword_density" mapstructure:"keyword_density"`
}

// DegreeLevel maps a degree name fragment to its rank on a 0-100 scale.
// Matching is a case-insensitive substring search, so order matters: the
// first entry found in a requirement text wins.
type DegreeLevel struct {
	Name  string `json:"name" mapstructure:"name"`
	Score int    `json:"score" mapstructure:"score"`
}

// Industry holds the role names and keywords used to classify a job
// description into one industry.
type Industry struct {
	Name     string   `json:"name" mapstructure:"name"`
	Roles    []string `json:"roles" mapstructure:"roles"`
	Keywords []string `json:"keywords" mapstructure:"keywords"`
}

// Rules bundles every lookup table the engine depends on. A Rules value is
// built once and never mutated; the engine holds no other state. Alternate
// rule sets can be injected in tests or loaded from the config file.
type Rules struct {
	Weights          Weights       `json:"weights" mapstructure:"weights"`
	SectionHeaders   []string      `json:"section_headers" mapstructure:"section_headers"`
	ProblematicChars []string      `json:"problematic_chars" mapstructure:"problematic_chars"`
	DegreeLevels     []DegreeLevel `json:"degree_levels" mapstructure:"degree_levels"`
	KeywordStopWords []string      `json:"keyword_stop_words" mapstructure:"keyword_stop_words"`
	Industries       []Industry    `json:"industries" mapstructure:"industries"`
}

// Fixed scoring constants. Their calibration is inherited from observed ATS
// behaviour; do not tune them without re-validating the score bands.
const (
	defaultRequiredDegreeScore = 70
	neutralEducationScore      = 75
	undetectedDegreeScore      = 30

	minSectionHeaders = 3
	shortResumeChars  = 500
	longResumeChars   = 3000
	maxBlankLineRatio = 0.5

	topKeywordPool  = 20
	trackedKeywords = 15

	maxRecommendations = 8
)

// DefaultRules returns the built-in rule tables. Table order is significant
// for degree levels and industries (first match wins) and is preserved
// verbatim.
func DefaultRules() *Rules {
	return &Rules{
		Weights: Weights{
			SkillMatch:     0.30,
			Experience:     0.25,
			Formatting:     0.20,
			Education:      0.15,
			KeywordDensity: 0.10,
		},
		SectionHeaders:   []string{"summary", "experience", "education", "skills", "projects"},
		ProblematicChars: []string{"|", "─", "═", "┌", "┐", "└", "┘"},
		DegreeLevels: []DegreeLevel{
			{Name: "phd", Score: 100},
			{Name: "doctorate", Score: 100},
			{Name: "ph.d", Score: 100},
			{Name: "master", Score: 90},
			{Name: "mba", Score: 90},
			{Name: "ms", Score: 90},
			{Name: "ma", Score: 90},
			{Name: "m.s", Score: 90},
			{Name: "m.a", Score: 90},
			{Name: "bachelor", Score: 80},
			{Name: "bs", Score: 80},
			{Name: "ba", Score: 80},
			{Name: "b.s", Score: 80},
			{Name: "b.a", Score: 80},
			{Name: "associate", Score: 60},
			{Name: "diploma", Score: 50},
			{Name: "certificate", Score: 40},
		},
		KeywordStopWords: []string{
			"the", "and", "for", "are", "but", "not", "you", "all", "can",
			"had", "her", "was", "one", "our", "out", "day", "his", "how",
			"man", "new", "now", "old", "see", "two", "way", "who", "boy",
			"did", "its", "let", "put", "say", "she", "too", "use",
		},
		Industries: []Industry{
			{
				Name:  "software_engineering",
				Roles: []string{"software engineer", "developer", "programmer", "backend", "frontend", "full stack"},
				Keywords: []string{
					"agile", "scrum", "ci/cd", "microservices", "api", "rest", "version control",
					"git", "testing", "debugging", "code review", "architecture", "scalability",
				},
			},
			{
				Name:  "data_science",
				Roles: []string{"data scientist", "data analyst", "ml engineer", "ai engineer", "analytics"},
				Keywords: []string{
					"machine learning", "statistical analysis", "data visualization", "predictive modeling",
					"python", "r", "tensorflow", "pytorch", "sql", "big data", "etl", "data pipeline",
				},
			},
			{
				Name:  "marketing",
				Roles: []string{"marketing", "digital marketing", "content", "social media", "brand", "growth"},
				Keywords: []string{
					"seo", "sem", "google analytics", "social media", "content marketing", "email campaigns",
					"roi", "conversion rate", "brand awareness", "digital marketing", "marketing automation",
				},
			},
			{
				Name:  "product_management",
				Roles: []string{"product manager", "product owner", "product lead", "pm"},
				Keywords: []string{
					"product roadmap", "user stories", "stakeholder management", "kpis", "product strategy",
					"user research", "a/b testing", "product launch", "cross-functional", "prioritization",
				},
			},
			{
				Name:  "sales",
				Roles: []string{"sales", "account executive", "business development", "sales rep", "account manager"},
				Keywords: []string{
					"crm", "sales pipeline", "quota attainment", "lead generation", "client relationship",
					"negotiation", "closing", "account management", "revenue growth", "prospecting",
				},
			},
			{
				Name:  "design",
				Roles: []string{"designer", "ui designer", "ux designer", "product designer", "graphic designer"},
				Keywords: []string{
					"ui/ux", "figma", "sketch", "adobe creative suite", "wireframing", "prototyping",
					"user research", "design system", "responsive design", "accessibility", "visual design",
				},
			},
			{
				Name:  "finance",
				Roles: []string{"finance", "financial analyst", "accountant", "controller", "cfo"},
				Keywords: []string{
					"financial modeling", "financial analysis", "budgeting", "forecasting", "excel",
					"variance analysis", "financial reporting", "gaap", "accounting", "p&l",
				},
			},
			{
				Name:  "hr",
				Roles: []string{"hr", "human resources", "recruiter", "talent", "people"},
				Keywords: []string{
					"recruitment", "talent acquisition", "onboarding", "employee relations", "hris",
					"performance management", "compensation", "benefits", "talent development", "hr policies",
				},
			},
		},
	}
}

// Validate checks the structural invariants of the rule tables. A violation
// is a computation fault: scoring with broken tables would silently produce
// out-of-range results.
func (r *Rules) Validate() error {
	sum := r.Weights.SkillMatch + r.Weights.Experience + r.Weights.Formatting +
		r.Weights.Education + r.Weights.KeywordDensity
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: aggregation weights sum to %v, want 1.0", ErrComputationFault, sum)
	}
	if len(r.DegreeLevels) == 0 {
		return fmt.Errorf("%w: degree level table is empty", ErrComputationFault)
	}
	for _, lvl := range r.DegreeLevels {
		if lvl.Name == "" || lvl.Score < 0 || lvl.Score > 100 {
			return fmt.Errorf("%w: invalid degree level %q (%d)", ErrComputationFault, lvl.Name, lvl.Score)
		}
	}
	if len(r.Industries) == 0 {
		return fmt.Errorf("%w: industry table is empty", ErrComputationFault)
	}
	for _, ind := range r.Industries {
		if ind.Name == "" {
			return fmt.Errorf("%w: industry with empty name", ErrComputationFault)
		}
	}
	return nil
}

// stopWordSet converts the stop word list into a lookup set.
func (r *Rules) stopWordSet() map[string]bool {
	set := make(map[string]bool, len(r.KeywordStopWords))
	for _, w := range r.KeywordStopWords {
		set[w] = true
	}
	return set
}
