package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level YAML structure for workplan import. Sources
// nest their goals, objectives and activities; T/TA sessions reference
// activities by ref.
type ImportSchema struct {
	Sources  []SourceImport  `yaml:"sources"`
	Sessions []SessionImport `yaml:"sessions,omitempty"`
}

// SourceImport defines one workplan source. A source normally nests goals;
// a source without goals may nest objectives directly (the skip-level path).
type SourceImport struct {
	Ref        string            `yaml:"ref"`
	Name       string            `yaml:"name"`
	Goals      []GoalImport      `yaml:"goals,omitempty"`
	Objectives []ObjectiveImport `yaml:"objectives,omitempty"`
}

// GoalImport defines a goal nested under a source.
type GoalImport struct {
	Ref        string            `yaml:"ref"`
	Name       string            `yaml:"name"`
	Objectives []ObjectiveImport `yaml:"objectives,omitempty"`
}

// ObjectiveImport defines an objective nested under a goal or, on the
// skip-level path, directly under a source.
type ObjectiveImport struct {
	Ref        string           `yaml:"ref"`
	Name       string           `yaml:"name"`
	Activities []ActivityImport `yaml:"activities,omitempty"`
}

// ActivityImport defines an activity. Dates use the 2006-01-02 layout;
// status and comments feed Board Plan reports.
type ActivityImport struct {
	Ref       string `yaml:"ref"`
	Name      string `yaml:"name"`
	StartDate string `yaml:"start_date,omitempty"`
	EndDate   string `yaml:"end_date,omitempty"`
	Status    string `yaml:"status,omitempty"`
	Comments  string `yaml:"comments,omitempty"`
}

// SessionImport defines a T/TA session linked to an activity by ref.
type SessionImport struct {
	ActivityRef string `yaml:"activity_ref"`
	Date        string `yaml:"date,omitempty"`
	Summary     string `yaml:"summary"`
}

// LoadSchema reads and parses an import file.
func LoadSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
