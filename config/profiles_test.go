package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadProfiles_MissingFileReturnsDefaults(t *testing.T) {
	p, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	grunt, err := p.Agent.Type("Grunt")
	require.NoError(t, err)
	assert.Equal(t, 100, grunt.MaxHealth)
	assert.Equal(t, 10.0, grunt.DetectionRange)
	assert.Equal(t, 2.0, grunt.AttackRange)
	assert.Equal(t, 0.3, grunt.AttackActivationDelay)
	assert.Equal(t, 0.5, grunt.HitboxActiveDuration)
	assert.Equal(t, 3.0, p.World.DeathGrace)
}

func TestLoadProfiles_OverlaysOnDefaults(t *testing.T) {
	path := writeProfiles(t, `
world:
  separation_radius: 3
agents:
  Grunt:
    attack_damage: 12
  Sentry:
    move_speed: 1.5
    detection_range: 14
`)

	p, err := LoadProfiles(path)
	require.NoError(t, err)

	grunt := p.Agent.TypeOrDefault("Grunt")
	assert.Equal(t, 12, grunt.AttackDamage)
	assert.Equal(t, 100, grunt.MaxHealth, "omitted fields keep their default")

	sentry, err := p.Agent.Type("Sentry")
	require.NoError(t, err)
	assert.Equal(t, "Sentry", sentry.Name)
	assert.Equal(t, 1.5, sentry.MoveSpeed)
	assert.Equal(t, 14.0, sentry.DetectionRange)
	assert.Equal(t, 2.0, sentry.AttackRange, "new profiles start from the default type")

	assert.Equal(t, 3.0, p.World.SeparationRadius)
	assert.Equal(t, 0.5, p.World.SeparationPush)

	assert.Equal(t, 10, Agent.Types["Grunt"].AttackDamage, "package defaults are not mutated")
}

func TestLoadProfiles_RejectsInvalidTuning(t *testing.T) {
	path := writeProfiles(t, `
agents:
  Grunt:
    max_health: 0
`)

	_, err := LoadProfiles(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_health")
}

func TestLoadProfiles_RejectsInvalidWorld(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero cell size", "world:\n  nav_cell_size: 0\n", "nav_cell_size"},
		{"negative arrival", "world:\n  waypoint_arrival: -1\n", "waypoint_arrival"},
		{"negative grace", "world:\n  death_grace: -2\n", "death_grace"},
		{"negative decay", "world:\n  impulse_decay: -1\n", "impulse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProfiles(writeProfiles(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadProfiles_NewTypesInheritOverriddenDefault(t *testing.T) {
	path := writeProfiles(t, `
agents:
  Grunt:
    attack_damage: 99
  Sentry:
    move_speed: 1.5
  Archer:
    attack_range: 6
`)

	for range 50 {
		p, err := LoadProfiles(path)
		require.NoError(t, err)
		assert.Equal(t, 99, p.Agent.Types["Sentry"].AttackDamage)
		assert.Equal(t, 99, p.Agent.Types["Archer"].AttackDamage)
		assert.Equal(t, 1.5, p.Agent.Types["Sentry"].MoveSpeed)
	}
}

func TestLoadProfiles_DefaultTypeAppliesBeforeNewTypes(t *testing.T) {
	path := writeProfiles(t, `
default_type: Brute
agents:
  Sentry:
    move_speed: 1.5
`)

	p, err := LoadProfiles(path)
	require.NoError(t, err)
	assert.Equal(t, "Brute", p.Agent.DefaultType)
	assert.Equal(t, Agent.Types["Brute"].MaxHealth, p.Agent.Types["Sentry"].MaxHealth)
	assert.Equal(t, 1.5, p.Agent.Types["Sentry"].MoveSpeed)
}

func TestLoadProfiles_DefaultTypeMayBeNew(t *testing.T) {
	path := writeProfiles(t, `
default_type: Sentry
agents:
  Sentry:
    max_health: 40
  Archer:
    attack_range: 6
`)

	p, err := LoadProfiles(path)
	require.NoError(t, err)
	assert.Equal(t, "Sentry", p.Agent.DefaultType)
	assert.Equal(t, 40, p.Agent.Types["Archer"].MaxHealth)
	assert.Equal(t, 6.0, p.Agent.Types["Archer"].AttackRange)
}

func TestLoadProfiles_UnknownDefaultType(t *testing.T) {
	path := writeProfiles(t, "default_type: Dragon\n")

	_, err := LoadProfiles(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProfile))
}

func TestLoadProfiles_MalformedYAML(t *testing.T) {
	path := writeProfiles(t, "agents: [unclosed\n")

	_, err := LoadProfiles(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing profiles")
}

func TestAgentConfig_TypeOrDefault(t *testing.T) {
	got := Agent.TypeOrDefault("DoesNotExist")
	assert.Equal(t, "Grunt", got.Name)
}

func TestAgentTypeConfig_Validate(t *testing.T) {
	for name, tc := range Agent.Types {
		assert.NoError(t, tc.Validate(), name)
	}

	bad := Agent.Types["Grunt"]
	bad.AttackCooldown = -1
	assert.Error(t, bad.Validate())
}

func TestWorldConfig_Validate(t *testing.T) {
	assert.NoError(t, World.Validate())

	bad := World
	bad.NavCellSize = 0
	assert.Error(t, bad.Validate())
}
