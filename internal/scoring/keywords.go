package scoring

import (
	"regexp"
	"sort"
	"strings"

	"github.com/atsmatch/atsmatch/internal/entity"
)

// keywordRe matches alphabetic words of three or more letters.
var keywordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// keywordDensityAnalyzer extracts the most frequent job-description terms and
// counts their literal occurrences in the resume text.
type keywordDensityAnalyzer struct {
	stopWords map[string]bool
}

func newKeywordDensityAnalyzer(rules *Rules) Scorer {
	return &keywordDensityAnalyzer{stopWords: rules.stopWordSet()}
}

func (s *keywordDensityAnalyzer) Name() string { return "keyword_density" }

func (s *keywordDensityAnalyzer) Score(in Input, out *entity.AnalysisResult) (Step, error) {
	tracked := s.trackedKeywords(in.Job.RawText)

	resumeText := strings.ToLower(in.Resume.RawText)
	analysis := make(map[string]int, len(tracked))
	present := 0
	for _, kw := range tracked {
		count := strings.Count(resumeText, kw)
		analysis[kw] = count
		if count > 0 {
			present++
		}
	}

	out.KeywordAnalysis = analysis

	var score float64
	if len(tracked) > 0 {
		score = float64(present) / float64(len(tracked)) * 100
	}
	return Step{Score: score}, nil
}

// trackedKeywords ranks job-description words by frequency, filters the stop
// word list and short words out of the top pool, and keeps the leading
// tracked set. Frequency ties break on first occurrence in the text so the
// ranking is reproducible.
func (s *keywordDensityAnalyzer) trackedKeywords(jobText string) []string {
	words := keywordRe.FindAllString(strings.ToLower(jobText), -1)

	type wordFreq struct {
		word  string
		count int
		first int
	}
	index := make(map[string]*wordFreq, len(words))
	order := make([]*wordFreq, 0, len(words))
	for i, word := range words {
		if wf, ok := index[word]; ok {
			wf.count++
			continue
		}
		wf := &wordFreq{word: word, count: 1, first: i}
		index[word] = wf
		order = append(order, wf)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > topKeywordPool {
		order = order[:topKeywordPool]
	}

	tracked := make([]string, 0, trackedKeywords)
	for _, wf := range order {
		if s.stopWords[wf.word] || len(wf.word) <= 3 {
			continue
		}
		tracked = append(tracked, wf.word)
		if len(tracked) == trackedKeywords {
			break
		}
	}
	return tracked
}
