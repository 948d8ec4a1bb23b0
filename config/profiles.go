package config

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Profiles is the tuning a server run uses: the archetype table, arena-wide
// values and the target's tuning.
type Profiles struct {
	Agent  AgentConfig
	World  WorldConfig
	Target TargetConfig
}

// profileDocument keeps sections as nodes so each one can be decoded on top
// of its defaults instead of replacing them.
type profileDocument struct {
	World       yaml.Node            `yaml:"world"`
	Target      yaml.Node            `yaml:"target"`
	DefaultType string               `yaml:"default_type"`
	Agents      map[string]yaml.Node `yaml:"agents"`
}

// DefaultProfiles returns a copy of the built-in tuning.
func DefaultProfiles() Profiles {
	return Profiles{
		Agent: AgentConfig{
			Types:       maps.Clone(Agent.Types),
			DefaultType: Agent.DefaultType,
		},
		World:  World,
		Target: Target,
	}
}

// LoadProfiles overlays the YAML file at path onto DefaultProfiles. Fields a
// profile omits keep their default; a profile with a new name starts from the
// default type. A missing file yields the defaults.
//
//	agents:
//	  Grunt:
//	    attack_damage: 12
//	  Sentry:
//	    move_speed: 1.5
//	    detection_range: 14
func LoadProfiles(path string) (Profiles, error) {
	p := DefaultProfiles()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("reading profiles %s: %w", path, err)
	}

	var doc profileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return p, fmt.Errorf("parsing profiles %s: %w", path, err)
	}

	if !doc.World.IsZero() {
		if err := doc.World.Decode(&p.World); err != nil {
			return p, fmt.Errorf("parsing profiles %s: world: %w", path, err)
		}
	}
	if !doc.Target.IsZero() {
		if err := doc.Target.Decode(&p.Target); err != nil {
			return p, fmt.Errorf("parsing profiles %s: target: %w", path, err)
		}
	}

	// Overrides of built-in types go first so new names inherit the final
	// default. A default_type naming a new profile is built before the rest.
	var added []string
	for _, name := range slices.Sorted(maps.Keys(doc.Agents)) {
		if _, ok := p.Agent.Types[name]; !ok {
			added = append(added, name)
			continue
		}
		if err := p.decodeAgent(name, doc.Agents[name]); err != nil {
			return p, fmt.Errorf("parsing profiles %s: %w", path, err)
		}
	}
	if slices.Contains(added, doc.DefaultType) {
		if err := p.decodeAgent(doc.DefaultType, doc.Agents[doc.DefaultType]); err != nil {
			return p, fmt.Errorf("parsing profiles %s: %w", path, err)
		}
	}

	if doc.DefaultType != "" {
		if _, err := p.Agent.Type(doc.DefaultType); err != nil {
			return p, fmt.Errorf("profiles %s: default_type: %w", path, err)
		}
		p.Agent.DefaultType = doc.DefaultType
	}

	for _, name := range added {
		if name == doc.DefaultType {
			continue
		}
		if err := p.decodeAgent(name, doc.Agents[name]); err != nil {
			return p, fmt.Errorf("parsing profiles %s: %w", path, err)
		}
	}

	if err := p.World.Validate(); err != nil {
		return p, fmt.Errorf("profiles %s: %w", path, err)
	}
	for _, t := range p.Agent.Types {
		if err := t.Validate(); err != nil {
			return p, fmt.Errorf("profiles %s: %w", path, err)
		}
	}

	return p, nil
}

// decodeAgent overlays node onto the named type, or onto the current default
// when the name is new.
func (p *Profiles) decodeAgent(name string, node yaml.Node) error {
	base, ok := p.Agent.Types[name]
	if !ok {
		base = p.Agent.Types[p.Agent.DefaultType]
	}
	base.Name = name
	if err := node.Decode(&base); err != nil {
		return fmt.Errorf("agent %q: %w", name, err)
	}
	p.Agent.Types[name] = base
	return nil
}
