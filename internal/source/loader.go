package source

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where an input document comes from.
type Source struct {
	// Name is used in error messages to give more context about the document.
	Name string
	// Value is an inline JSON document provided via configuration.
	Value string
	// File points to a file containing the document. When set it takes
	// precedence over Value.
	File string
}

// Load returns the resolved document bytes from the provided source. When
// File is set it takes precedence over Value. An error is returned when
// neither File nor Value contain a usable document.
func Load(src Source) ([]byte, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "document"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
		src.File = file
	}

	doc := strings.TrimSpace(src.Value)
	if doc == "" {
		if src.File != "" {
			return nil, fmt.Errorf("%s file %q is empty", name, src.File)
		}
		return nil, fmt.Errorf("%s is not configured", name)
	}

	return []byte(doc), nil
}
