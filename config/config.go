package config

import (
	"errors"
	"fmt"
)

// AgentTypeConfig contains tuning for one hostile agent archetype.
// Distances are in world units (one level tile), durations in seconds.
type AgentTypeConfig struct {
	Name      string `yaml:"name"`
	MaxHealth int    `yaml:"max_health"`

	// Perception and movement
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`
	FleeDistance   float64 `yaml:"flee_distance"`
	WanderRadius   float64 `yaml:"wander_radius"`
	MoveSpeed      float64 `yaml:"move_speed"`
	RotationSpeed  float64 `yaml:"rotation_speed"` // Turn rate used as slerp factor per second

	// Attack
	AttackDamage          int     `yaml:"attack_damage"`
	AttackCooldown        float64 `yaml:"attack_cooldown"`
	AttackActivationDelay float64 `yaml:"attack_activation_delay"` // Wind-up before the damage window opens
	HitboxActiveDuration  float64 `yaml:"hitbox_active_duration"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	HitboxWidth     float64 `yaml:"hitbox_width"`
	HitboxHeight    float64 `yaml:"hitbox_height"`
}

// Validate reports the first tuning value that would break the agent's invariants.
func (c AgentTypeConfig) Validate() error {
	switch {
	case c.MaxHealth <= 0:
		return fmt.Errorf("agent type %q: max_health must be positive, got %d", c.Name, c.MaxHealth)
	case c.DetectionRange < 0, c.AttackRange < 0, c.FleeDistance < 0, c.WanderRadius < 0:
		return fmt.Errorf("agent type %q: ranges must not be negative", c.Name)
	case c.AttackCooldown < 0, c.AttackActivationDelay < 0, c.HitboxActiveDuration < 0:
		return fmt.Errorf("agent type %q: durations must not be negative", c.Name)
	case c.AttackDamage < 0:
		return fmt.Errorf("agent type %q: attack_damage must not be negative", c.Name)
	case c.MoveSpeed <= 0:
		return fmt.Errorf("agent type %q: move_speed must be positive", c.Name)
	}
	return nil
}

// AgentConfig contains the agent archetype table
type AgentConfig struct {
	Types       map[string]AgentTypeConfig
	DefaultType string // Used when a spawn names an unknown type
}

// ErrUnknownProfile is returned when an agent type is not in the table.
var ErrUnknownProfile = errors.New("unknown agent profile")

// Type returns the named archetype.
func (a AgentConfig) Type(name string) (AgentTypeConfig, error) {
	t, ok := a.Types[name]
	if !ok {
		return AgentTypeConfig{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return t, nil
}

// TypeOrDefault falls back to DefaultType the way spawns without a known type do.
func (a AgentConfig) TypeOrDefault(name string) AgentTypeConfig {
	if t, ok := a.Types[name]; ok {
		return t
	}
	return a.Types[a.DefaultType]
}

// WorldConfig contains values shared by every agent in the arena
type WorldConfig struct {
	SeparationRadius float64 `yaml:"separation_radius"` // Neighbour radius for repulsion
	SeparationPush   float64 `yaml:"separation_push"`   // Velocity added per neighbour
	MovementNoise    float64 `yaml:"movement_noise"`    // Speeds at or below this do not turn the agent
	WaypointArrival  float64 `yaml:"waypoint_arrival"`  // Distance at which a waypoint counts as reached
	DeathGrace       float64 `yaml:"death_grace"`       // Seconds between death and removal
	NavCellSize      float64 `yaml:"nav_cell_size"`
	ImpulseDecay     float64 `yaml:"impulse_decay"` // Units/s^2 removed from repulsion impulses
}

// Validate reports the first world value that would break navigation or
// removal timing.
func (w WorldConfig) Validate() error {
	switch {
	case w.NavCellSize <= 0:
		return fmt.Errorf("world: nav_cell_size must be positive, got %g", w.NavCellSize)
	case w.WaypointArrival <= 0:
		return fmt.Errorf("world: waypoint_arrival must be positive, got %g", w.WaypointArrival)
	case w.DeathGrace < 0, w.SeparationRadius < 0, w.SeparationPush < 0, w.ImpulseDecay < 0, w.MovementNoise < 0:
		return fmt.Errorf("world: death_grace, separation and impulse values must not be negative")
	}
	return nil
}

// TargetConfig contains tuning for the avatar the agents hunt
type TargetConfig struct {
	Health          int     `yaml:"health"`
	MoveSpeed       float64 `yaml:"move_speed"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	AttackDamage    int     `yaml:"attack_damage"`
	AttackReach     float64 `yaml:"attack_reach"`
	AttackCooldown  float64 `yaml:"attack_cooldown"`
}

// NetConfig contains dedicated server defaults
type NetConfig struct {
	Port     uint
	TickRate int
}

// Global configuration instances
var Agent AgentConfig
var World WorldConfig
var Target TargetConfig
var Net NetConfig

func init() {
	World = WorldConfig{
		SeparationRadius: 2.0,
		SeparationPush:   0.5,
		MovementNoise:    0.1,
		WaypointArrival:  1.0,
		DeathGrace:       3.0,
		NavCellSize:      1.0,
		ImpulseDecay:     4.0,
	}

	Target = TargetConfig{
		Health:          100,
		MoveSpeed:       5.0,
		CollisionWidth:  0.8,
		CollisionHeight: 0.8,
		AttackDamage:    25,
		AttackReach:     1.5,
		AttackCooldown:  0.5,
	}

	Net = NetConfig{
		Port:     7373,
		TickRate: 20,
	}

	// Agent Config
	gruntType := AgentTypeConfig{
		Name:                  "Grunt",
		MaxHealth:             100,
		DetectionRange:        10.0,
		AttackRange:           2.0,
		FleeDistance:          5.0,
		WanderRadius:          7.0,
		MoveSpeed:             3.5,
		RotationSpeed:         10.0,
		AttackDamage:          10,
		AttackCooldown:        2.0,
		AttackActivationDelay: 0.3,
		HitboxActiveDuration:  0.5,
		CollisionWidth:        0.8,
		CollisionHeight:       0.8,
		HitboxWidth:           1.6,
		HitboxHeight:          1.0,
	}

	skirmisherType := AgentTypeConfig{
		Name:                  "Skirmisher",
		MaxHealth:             60,
		DetectionRange:        12.0,
		AttackRange:           1.5,
		FleeDistance:          7.0,
		WanderRadius:          9.0,
		MoveSpeed:             5.0,
		RotationSpeed:         14.0,
		AttackDamage:          6,
		AttackCooldown:        1.2,
		AttackActivationDelay: 0.2,
		HitboxActiveDuration:  0.3,
		CollisionWidth:        0.6,
		CollisionHeight:       0.6,
		HitboxWidth:           1.0,
		HitboxHeight:          0.8,
	}

	bruteType := AgentTypeConfig{
		Name:                  "Brute",
		MaxHealth:             200,
		DetectionRange:        8.0,
		AttackRange:           2.5,
		FleeDistance:          4.0,
		WanderRadius:          5.0,
		MoveSpeed:             2.2,
		RotationSpeed:         6.0,
		AttackDamage:          25,
		AttackCooldown:        3.0,
		AttackActivationDelay: 0.6,
		HitboxActiveDuration:  0.6,
		CollisionWidth:        1.0,
		CollisionHeight:       1.0,
		HitboxWidth:           2.0,
		HitboxHeight:          1.4,
	}

	Agent = AgentConfig{
		Types: map[string]AgentTypeConfig{
			"Grunt":      gruntType,
			"Skirmisher": skirmisherType,
			"Brute":      bruteType,
		},
		DefaultType: "Grunt",
	}
}
