// Package config loads arena tuning from TOML with environment overrides
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/nazarene/asset"
	"github.com/lixenwraith/nazarene/campaign"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/player"
	"github.com/lixenwraith/nazarene/vmath"
	"github.com/lixenwraith/nazarene/world"
)

var (
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrInvalid          = errors.New("invalid config")
)

// Runtime holds process settings; every field can be overridden from the environment
type Runtime struct {
	DBPath  string `toml:"db" env:"NAZARENE_DB"`
	LogFile string `toml:"log" env:"NAZARENE_LOG"`
	Debug   bool   `toml:"debug" env:"NAZARENE_DEBUG"`
	Seed    uint64 `toml:"seed" env:"NAZARENE_SEED"`
	Mute    bool   `toml:"mute" env:"NAZARENE_MUTE"`
}

// PlayerSpawn places the player at arena start
type PlayerSpawn struct {
	Position vmath.Vec3F `toml:"position"`
	Facing   vmath.Vec3F `toml:"facing"`
}

// Wave is a boss reinforcement group
type Wave struct {
	Boss    string            `toml:"boss"`
	Phase   int               `toml:"phase"`
	Enemies []world.SpawnSpec `toml:"enemies"`
}

// Config is the full arena description
type Config struct {
	Runtime        Runtime                      `toml:"runtime"`
	Player         PlayerSpawn                  `toml:"player"`
	Archetypes     map[string]ArchetypeOverride `toml:"archetypes"`
	PrayerSites    []player.PrayerSite          `toml:"prayer_sites"`
	Enemies        []world.SpawnSpec            `toml:"enemies"`
	Reinforcements []Wave                       `toml:"reinforcements"`
	Regions        []campaign.Region            `toml:"regions"`
}

// Default decodes the built-in arena
// It panics only if the embedded asset is malformed
func Default() *Config {
	cfg, err := decode([]byte(asset.DefaultArenaConfig))
	if err != nil {
		panic(fmt.Sprintf("config: built-in arena: %v", err))
	}
	if len(cfg.Regions) == 0 {
		cfg.Regions = campaign.DefaultRegions()
	}
	return cfg
}

// Load reads the built-in arena, overlays the file at path when given, then applies environment overrides
// Non-empty sections of the file replace the built-in ones wholesale
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		file, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.overlay(file, data)
	}

	if err := env.Parse(&cfg.Runtime); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// overlay merges a decoded file; scalar sections apply only when the file declares them
func (c *Config) overlay(file *Config, raw []byte) {
	var present map[string]any
	_ = toml.Unmarshal(raw, &present)

	if rt, ok := present["runtime"].(map[string]any); ok {
		if _, ok := rt["db"]; ok {
			c.Runtime.DBPath = file.Runtime.DBPath
		}
		if _, ok := rt["log"]; ok {
			c.Runtime.LogFile = file.Runtime.LogFile
		}
		if _, ok := rt["debug"]; ok {
			c.Runtime.Debug = file.Runtime.Debug
		}
		if _, ok := rt["seed"]; ok {
			c.Runtime.Seed = file.Runtime.Seed
		}
		if _, ok := rt["mute"]; ok {
			c.Runtime.Mute = file.Runtime.Mute
		}
	}
	if _, ok := present["player"]; ok {
		c.Player = file.Player
	}
	if len(file.Archetypes) > 0 {
		c.Archetypes = file.Archetypes
	}
	if len(file.PrayerSites) > 0 {
		c.PrayerSites = file.PrayerSites
	}
	if len(file.Enemies) > 0 {
		c.Enemies = file.Enemies
		// A new roster invalidates the built-in waves unless the file brings its own
		c.Reinforcements = file.Reinforcements
	} else if len(file.Reinforcements) > 0 {
		c.Reinforcements = file.Reinforcements
	}
	if len(file.Regions) > 0 {
		c.Regions = file.Regions
	}
}

// Profiles folds archetype overrides into the built-in tuning
func (c *Config) Profiles() (map[enemy.Archetype]enemy.Profile, error) {
	out := make(map[enemy.Archetype]enemy.Profile, len(c.Archetypes))
	for name, o := range c.Archetypes {
		a, err := enemy.ParseArchetype(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
		}
		p := enemy.ProfileFor(a)
		o.apply(&p)
		out[a] = p
	}
	return out, nil
}

// Validate rejects negative quantities, ratios outside [0, 1], duplicate ids and waves for unknown bosses
func (c *Config) Validate() error {
	var errs []error
	for name, o := range c.Archetypes {
		if _, err := enemy.ParseArchetype(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownArchetype, name))
			continue
		}
		if err := o.validate(); err != nil {
			errs = append(errs, fmt.Errorf("archetypes.%s: %w", name, err))
		}
	}

	sites := make(map[string]bool, len(c.PrayerSites))
	for i, s := range c.PrayerSites {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%w: prayer_sites[%d] has no id", ErrInvalid, i))
		} else if sites[s.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate prayer site %q", ErrInvalid, s.ID))
		}
		if s.Radius < 0 {
			errs = append(errs, fmt.Errorf("%w: prayer site %q radius is negative", ErrInvalid, s.ID))
		}
		sites[s.ID] = true
	}

	spawns := make(map[string]bool, len(c.Enemies))
	for _, e := range c.Enemies {
		if e.SpawnID == "" {
			continue
		}
		if spawns[e.SpawnID] {
			errs = append(errs, fmt.Errorf("%w: duplicate spawn id %q", ErrInvalid, e.SpawnID))
		}
		spawns[e.SpawnID] = true
	}
	for i, w := range c.Reinforcements {
		if !spawns[w.Boss] {
			errs = append(errs, fmt.Errorf("%w: reinforcements[%d] names unknown boss %q", ErrInvalid, i, w.Boss))
		}
		if w.Phase < 2 || w.Phase > 3 {
			errs = append(errs, fmt.Errorf("%w: reinforcements[%d] phase %d outside 2..3", ErrInvalid, i, w.Phase))
		}
	}
	return errors.Join(errs...)
}

// Duration decodes Go duration strings such as "450ms"
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Populate adds the configured prayer sites, roster and reinforcement waves to an arena
func (c *Config) Populate(a *world.Arena) {
	for _, s := range c.PrayerSites {
		a.AddPrayerSite(s)
	}
	for _, e := range c.Enemies {
		a.SpawnEnemy(e)
	}
	for _, w := range c.Reinforcements {
		a.SetReinforcements(w.Boss, w.Phase, w.Enemies)
	}
}
