package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	if err := os.WriteFile(path, []byte(`{"raw_text": "hello"}`), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := Load(Source{Name: "resume", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"raw_text": "hello"}` {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestLoadFileTakesPrecedenceOverValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	if err := os.WriteFile(path, []byte("from file"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := Load(Source{Name: "job description", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "from file" {
		t.Fatalf("expected the file to win, got %q", data)
	}
}

func TestLoadInlineValue(t *testing.T) {
	data, err := Load(Source{Name: "resume", Value: "  inline document \n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "inline document" {
		t.Fatalf("expected trimmed inline value, got %q", data)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		src     Source
		wantErr string
	}{
		{
			name:    "nothing configured",
			src:     Source{Name: "resume"},
			wantErr: "resume is not configured",
		},
		{
			name:    "unnamed source",
			src:     Source{},
			wantErr: "document is not configured",
		},
		{
			name:    "missing file",
			src:     Source{Name: "job description", File: "/nonexistent/job.json"},
			wantErr: "reading job description from file",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.src)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := Load(Source{Name: "resume", File: path})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected an empty-file error, got %v", err)
	}
}
