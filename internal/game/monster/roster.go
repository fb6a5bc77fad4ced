package monster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultNames is the built-in roster, in draw order.
var defaultNames = []string{"Goblin", "Orc", "Skeleton", "Kobold", "Rat", "Cultist"}

// Roster is the ordered list of monster names a spawn draws from.
type Roster struct {
	Names []string
}

// DefaultRoster returns the built-in six-name roster.
func DefaultRoster() *Roster {
	return &Roster{Names: append([]string(nil), defaultNames...)}
}

// Validate checks that the roster is non-empty and its names are non-empty
// and unique.
func (r *Roster) Validate() error {
	if len(r.Names) == 0 {
		return fmt.Errorf("monster roster: must contain at least one monster")
	}
	seen := make(map[string]bool, len(r.Names))
	for i, name := range r.Names {
		if name == "" {
			return fmt.Errorf("monster roster: monsters[%d] name must not be empty", i)
		}
		if seen[name] {
			return fmt.Errorf("monster roster: duplicate name %q", name)
		}
		seen[name] = true
	}
	return nil
}

type yamlRosterFile struct {
	Monsters []yamlMonster `yaml:"monsters"`
}

type yamlMonster struct {
	Name string `yaml:"name"`
}

// LoadRosterFromBytes parses and validates a roster from YAML.
//
// Postcondition: Returns a validated *Roster, or an error.
func LoadRosterFromBytes(data []byte) (*Roster, error) {
	var file yamlRosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}
	r := &Roster{Names: make([]string, 0, len(file.Monsters))}
	for _, m := range file.Monsters {
		r.Names = append(r.Names, m.Name)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadRoster reads a roster YAML file. An empty path yields DefaultRoster.
func LoadRoster(path string) (*Roster, error) {
	if path == "" {
		return DefaultRoster(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file %s: %w", path, err)
	}
	r, err := LoadRosterFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return r, nil
}
