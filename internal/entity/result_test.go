package entity

import (
	"encoding/json"
	"os"
	"testing"
)

func TestDumpToTmpFile(t *testing.T) {
	res := &AnalysisResult{
		ATSScore:        77,
		MatchedSkills:   []string{"python"},
		KeywordAnalysis: map[string]int{"python": 2},
	}

	name, err := res.DumpToTmpFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(name)

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var restored AnalysisResult
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("dumped file is not valid json: %v", err)
	}
	if restored.ATSScore != 77 || restored.KeywordAnalysis["python"] != 2 {
		t.Fatalf("unexpected restored result: %+v", restored)
	}
}
