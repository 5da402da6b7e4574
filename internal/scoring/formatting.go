package scoring

import (
	"regexp"
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// bulletRes are the markers accepted as structured list formatting.
var bulletRes = []*regexp.Regexp{
	regexp.MustCompile(`•`),
	regexp.MustCompile(`-\s`),
	regexp.MustCompile(`\*\s`),
	regexp.MustCompile(`\d+\.`),
}

// formattingAnalyzer scores ATS readability of the raw resume text by
// applying fixed, independently triggered deductions from 100. Issue strings
// are recorded in deduction-check order.
type formattingAnalyzer struct {
	headers          []string
	problematicChars []string
}

func newFormattingAnalyzer(rules *Rules) Scorer {
	return &formattingAnalyzer{
		headers:          rules.SectionHeaders,
		problematicChars: rules.ProblematicChars,
	}
}

func (s *formattingAnalyzer) Name() string { return "formatting" }

func (s *formattingAnalyzer) Score(in Input, out *entity.AnalysisResult) (Step, error) {
	raw := in.Resume.RawText
	lower := strings.ToLower(raw)
	score := 100
	issues := []string{}

	headersFound := 0
	for _, header := range s.headers {
		if strings.Contains(lower, header) {
			headersFound++
		}
	}
	if headersFound < minSectionHeaders {
		score -= 15
		issues = append(issues, "Missing standard section headers (Summary, Experience, Education, Skills)")
	}

	hasBullets := false
	for _, re := range bulletRes {
		if re.MatchString(raw) {
			hasBullets = true
			break
		}
	}
	if !hasBullets {
		score -= 10
		issues = append(issues, "No bullet points found - use bullets for better readability")
	}

	switch {
	case len(raw) < shortResumeChars:
		score -= 10
		issues = append(issues, "Resume appears too short - consider adding more detail")
	case len(raw) > longResumeChars:
		score -= 5
		issues = append(issues, "Resume might be too long - consider condensing content")
	}

	if in.Resume.Email == "" {
		score -= 10
		issues = append(issues, "Email address not found - ensure contact information is clear")
	}
	if in.Resume.Phone == "" {
		score -= 5
		issues = append(issues, "Phone number not found - add contact information")
	}

	for _, char := range s.problematicChars {
		if strings.Contains(raw, char) {
			score -= 15
			issues = append(issues, "Special characters detected that may confuse ATS systems")
			break
		}
	}

	lines := strings.Split(raw, "\n")
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
		}
	}
	if len(lines) > 0 && float64(blank)/float64(len(lines)) > maxBlankLineRatio {
		score -= 8
		issues = append(issues, "Too many empty lines - optimize spacing for ATS readability")
	}

	if score < 0 {
		score = 0
	}

	out.FormattingScore = score
	out.FormattingIssues = issues
	return Step{Score: float64(score)}, nil
}
