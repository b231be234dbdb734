package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nazarene/campaign"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/vmath"
	"github.com/lixenwraith/nazarene/world"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultArena(t *testing.T) {
	cfg := Default()

	require.Len(t, cfg.Enemies, 9)
	assert.Equal(t, "galilee_shield_01", cfg.Enemies[0].SpawnID)
	assert.Equal(t, enemy.MeleeShield, cfg.Enemies[0].Archetype)
	assert.Equal(t, vmath.Vec3F{X: 850, Y: 420}, cfg.Enemies[0].Position)
	assert.Equal(t, enemy.Boss, cfg.Enemies[8].Archetype)

	require.Len(t, cfg.PrayerSites, 1)
	assert.Equal(t, "galilee_site_01", cfg.PrayerSites[0].ID)

	require.Len(t, cfg.Reinforcements, 1)
	assert.Equal(t, 2, cfg.Reinforcements[0].Phase)
	assert.Len(t, cfg.Reinforcements[0].Enemies, 2)

	assert.Equal(t, campaign.DefaultRegions(), cfg.Regions)
	assert.Equal(t, "nazarene.db", cfg.Runtime.DBPath)
	assert.Equal(t, uint64(1), cfg.Runtime.Seed)
	assert.Equal(t, vmath.Vec3F{Y: -1}, cfg.Player.Facing)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Enemies, 9)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
[runtime]
debug = true

[archetypes.spear]
max_health = 120.0
windup = "600ms"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Runtime.Debug)
	assert.Equal(t, "nazarene.db", cfg.Runtime.DBPath)
	assert.Len(t, cfg.Enemies, 9)

	profiles, err := cfg.Profiles()
	require.NoError(t, err)
	spear := profiles[enemy.Spear]
	assert.Equal(t, 120.0, spear.MaxHealth)
	assert.Equal(t, 600*time.Millisecond, spear.Windup)
	assert.Equal(t, enemy.ProfileFor(enemy.Spear).AttackRange, spear.AttackRange)
	_, ok := profiles[enemy.Demon]
	assert.False(t, ok)
}

func TestRosterReplacementDropsBuiltinWaves(t *testing.T) {
	path := writeConfig(t, `
[[enemies]]
spawn_id = "solo"
archetype = "demon"
position = { x = 100.0, y = 0.0, z = 0.0 }
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Enemies, 1)
	assert.Equal(t, enemy.Demon, cfg.Enemies[0].Archetype)
	assert.Empty(t, cfg.Reinforcements)
	assert.Len(t, cfg.PrayerSites, 1)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NAZARENE_DB", "/tmp/override.db")
	t.Setenv("NAZARENE_SEED", "42")
	t.Setenv("NAZARENE_MUTE", "true")
	t.Setenv("NAZARENE_LOG", "/tmp/nazarene.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Runtime.DBPath)
	assert.Equal(t, uint64(42), cfg.Runtime.Seed)
	assert.True(t, cfg.Runtime.Mute)
	assert.Equal(t, "/tmp/nazarene.log", cfg.Runtime.LogFile)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("NAZARENE_SEED", "not-a-number")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[runtime]
speed = 3
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown archetype", "[archetypes.dragon]\nmax_health = 10.0\n", ErrUnknownArchetype},
		{"ratio above one", "[archetypes.spear]\nstrike_ratio = 1.5\n", ErrInvalid},
		{"negative duration", "[archetypes.spear]\nwindup = \"-1s\"\n", ErrInvalid},
		{"zero health", "[archetypes.demon]\nmax_health = 0.0\n", ErrInvalid},
		{"parry window reversed", "[archetypes.boss]\nparry_start = 0.7\nparry_end = 0.5\n", ErrInvalid},
		{"wave for unknown boss", "[[reinforcements]]\nboss = \"nobody\"\nphase = 2\n", ErrInvalid},
		{"wave phase", "[[reinforcements]]\nboss = \"galilee_named_boss_01\"\nphase = 1\n", ErrInvalid},
		{"duplicate spawn", "[[enemies]]\nspawn_id = \"a\"\n[[enemies]]\nspawn_id = \"a\"\n", ErrInvalid},
		{"site without id", "[[prayer_sites]]\nname = \"nameless\"\n", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPopulateBuildsArena(t *testing.T) {
	cfg := Default()
	a := world.New(world.Config{})
	cfg.Populate(a)

	assert.Len(t, a.Enemies(), 9)
	assert.Len(t, a.PrayerSites(), 1)
	boss, ok := a.FindBySpawnID("galilee_named_boss_01")
	require.True(t, ok)
	assert.Equal(t, "Legion Sovereign of Gerasa", boss.Name())
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1.5s")))
	assert.Equal(t, Duration(1500*time.Millisecond), d)
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(b))
	assert.Error(t, d.UnmarshalText([]byte("soon")))
}
