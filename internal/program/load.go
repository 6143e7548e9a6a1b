package program

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/claude/nextset/internal/workout"
)

// catalogFile is the on-disk shape of the exercise catalog.
type catalogFile struct {
	Exercises []workout.Exercise `yaml:"exercises"`
}

// LoadCatalog reads the exercise catalog from a YAML file. Entries are
// validated here so the rest of the system can treat the catalog as
// trusted: every later lookup is permissive.
func LoadCatalog(path string) (*workout.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	seen := make(map[string]bool, len(file.Exercises))
	for i, ex := range file.Exercises {
		if ex.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: name is required", i)
		}
		key := strings.ToLower(ex.Name)
		if seen[key] {
			return nil, fmt.Errorf("catalog entry %q: duplicate name", ex.Name)
		}
		seen[key] = true

		switch ex.RepType {
		case "", workout.RepTypeReps, workout.RepTypeTime:
		default:
			return nil, fmt.Errorf("catalog entry %q: unknown rep_type %q", ex.Name, ex.RepType)
		}
		for j, step := range ex.Warmup {
			if step.Reps < 1 {
				return nil, fmt.Errorf("catalog entry %q: warmup step %d: reps must be at least 1", ex.Name, j)
			}
			if step.Unit != "" && step.Unit != workout.WeightUnitPercent {
				return nil, fmt.Errorf("catalog entry %q: warmup step %d: unknown unit %q", ex.Name, j, step.Unit)
			}
		}
	}

	return workout.NewCatalog(file.Exercises), nil
}

// LoadPrograms reads every program YAML file in a directory, sorted by
// filename so program precedence is stable across runs. A missing
// directory yields no programs rather than an error; the suggestion
// engine degrades to its no-program signal.
func LoadPrograms(dir string) ([]workout.Program, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading programs dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	programs := make([]workout.Program, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading program %s: %w", name, err)
		}

		var p workout.Program
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing program %s: %w", name, err)
		}
		if err := validateProgram(&p); err != nil {
			return nil, fmt.Errorf("program %s: %w", name, err)
		}
		if prev, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("program %s: id %q already used by %s", name, p.ID, prev)
		}
		seen[p.ID] = name
		programs = append(programs, p)
	}
	return programs, nil
}

func validateProgram(p *workout.Program) error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	for si, session := range p.Sessions {
		if session.Name == "" {
			return fmt.Errorf("session %d: name is required", si)
		}
		for bi, block := range session.Blocks {
			if block.Name == "" {
				return fmt.Errorf("session %q: block %d: name is required", session.Name, bi)
			}
			for ei, pe := range block.Exercises {
				if pe.ExerciseName == "" {
					return fmt.Errorf("session %q: block %q: exercise %d: exercise is required", session.Name, block.Name, ei)
				}
				if pe.Sets < 1 {
					return fmt.Errorf("session %q: block %q: exercise %q: sets must be at least 1", session.Name, block.Name, pe.ExerciseName)
				}
			}
		}
	}
	return nil
}
