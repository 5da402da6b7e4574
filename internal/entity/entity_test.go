package entity

import (
	"reflect"
	"testing"
)

func TestDecodeResume(t *testing.T) {
	payload := map[string]any{
		"raw_text":         "John Doe\nSoftware Engineer",
		"name":             "John Doe",
		"email":            "john@example.com",
		"skills":           []any{"python", "go"},
		"experience_years": "5",
		"education": []any{
			map[string]any{"degree": "Bachelor of Science"},
		},
	}

	resume, err := DecodeResume(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resume.Name != "John Doe" || resume.Email != "john@example.com" {
		t.Fatalf("unexpected contact fields: %+v", resume)
	}
	if !reflect.DeepEqual(resume.Skills, []string{"python", "go"}) {
		t.Fatalf("unexpected skills: %v", resume.Skills)
	}
	// Weakly typed input: years arrive as a string.
	if resume.ExperienceYears != 5 {
		t.Fatalf("expected 5 years, got %d", resume.ExperienceYears)
	}
	if len(resume.Education) != 1 || resume.Education[0].Degree != "Bachelor of Science" {
		t.Fatalf("unexpected education: %+v", resume.Education)
	}
}

func TestDecodeJobDescription(t *testing.T) {
	payload := map[string]any{
		"title":               "Backend Engineer",
		"required_skills":     []any{"go", "sql"},
		"experience_required": "3+ years",
	}

	job, err := DecodeJobDescription(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Title != "Backend Engineer" || job.ExperienceRequired != "3+ years" {
		t.Fatalf("unexpected fields: %+v", job)
	}
	if !reflect.DeepEqual(job.RequiredSkills, []string{"go", "sql"}) {
		t.Fatalf("unexpected required skills: %v", job.RequiredSkills)
	}
}

func TestParseResume(t *testing.T) {
	data := []byte(`{"raw_text": "text", "skills": ["python"], "experience_years": 2}`)

	resume, err := ParseResume(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resume.RawText != "text" || resume.ExperienceYears != 2 {
		t.Fatalf("unexpected resume: %+v", resume)
	}

	if _, err := ParseResume([]byte("{broken")); err == nil {
		t.Fatal("expected an error for malformed json")
	}
}

func TestResumeIsEmpty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		resume *Resume
		want   bool
	}{
		{name: "nil", resume: nil, want: true},
		{name: "zero value", resume: &Resume{}, want: true},
		{name: "whitespace text only", resume: &Resume{RawText: "  \n "}, want: true},
		{name: "raw text", resume: &Resume{RawText: "resume"}, want: false},
		{name: "skills only", resume: &Resume{Skills: []string{"go"}}, want: false},
		{name: "years only", resume: &Resume{ExperienceYears: 3}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.resume.IsEmpty(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestJobDescriptionIsEmpty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		job  *JobDescription
		want bool
	}{
		{name: "nil", job: nil, want: true},
		{name: "zero value", job: &JobDescription{}, want: true},
		{name: "title only", job: &JobDescription{Title: "Engineer"}, want: false},
		{name: "required skills only", job: &JobDescription{RequiredSkills: []string{"go"}}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.job.IsEmpty(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
