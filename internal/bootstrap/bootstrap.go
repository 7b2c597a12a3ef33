// Package bootstrap loads the startup task list from a JSON seed file.
package bootstrap

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/airtribe-projects/task-manager-api-akki772/internal/domain"
)

//go:embed schema.json
var schemaJSON string

var seedSchema = jsonschema.MustCompileString("tasks-seed.json", schemaJSON)

type seedFile struct {
	Tasks []domain.Task `json:"tasks"`
}

// Load reads and validates the seed document at path. The seed is
// all-or-nothing: any failure (missing file, bad JSON, schema violation,
// duplicate ids) returns an error and the caller starts empty. A partial
// list is never returned.
func Load(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := seedSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	seen := make(map[int64]bool, len(seed.Tasks))
	for i := range seed.Tasks {
		t := &seed.Tasks[i]
		if seen[t.ID] {
			return nil, fmt.Errorf("seed file %s: duplicate task id %d", path, t.ID)
		}
		seen[t.ID] = true
		t.Title = strings.TrimSpace(t.Title)
		t.Description = strings.TrimSpace(t.Description)
	}
	return seed.Tasks, nil
}
