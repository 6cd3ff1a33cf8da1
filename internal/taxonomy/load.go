package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a taxonomy override from a JSON file mapping category names to
// keyword lists, e.g. {"Builder": ["strategy", "vision"]}. Categories absent
// from the file keep empty keyword lists; unknown category names are an
// error.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	keywords := make(map[Category][]string, len(raw))
	for name, kws := range raw {
		keywords[Category(name)] = kws
	}

	t, err := New(keywords)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy in %s: %w", path, err)
	}
	return t, nil
}
