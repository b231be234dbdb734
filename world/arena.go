// Package world owns the combatants and runs the simulation tick
// The arena is the spatial query the controllers depend on, and it routes drained events to progression,
// presentation and metrics
package world

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/campaign"
	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/player"
	"github.com/lixenwraith/nazarene/status"
	"github.com/lixenwraith/nazarene/vmath"
)

// SpawnSpec describes one enemy placement
type SpawnSpec struct {
	SpawnID   string          `toml:"spawn_id"`
	Name      string          `toml:"name"`
	Archetype enemy.Archetype `toml:"archetype"`
	Position  vmath.Vec3F     `toml:"position"`
	Facing    vmath.Vec3F     `toml:"facing"`
	Profile   *enemy.Profile  `toml:"-"`
}

// Config wires the arena's collaborators; nil fields get inert defaults
type Config struct {
	PlayerPosition vmath.Vec3F
	PlayerFacing   vmath.Vec3F

	Campaign  *campaign.Campaign
	Store     SnapshotStore
	Presenter combat.Presenter
	Metrics   *status.CombatMetrics

	// Profiles overrides the built-in archetype tuning
	Profiles map[enemy.Archetype]enemy.Profile

	// Roller is shared by every enemy when set; otherwise each enemy seeds its own from Seed and its handle
	Roller combat.Roller
	Seed   uint64

	Logger *zap.Logger
}

// Arena holds the player, the enemies in spawn order and the prayer sites
type Arena struct {
	player   *player.Player
	enemies  []*enemy.Enemy
	byHandle map[core.Handle]*enemy.Enemy
	next     core.Handle
	sites    []player.PrayerSite

	waves     map[waveKey][]SpawnSpec
	transient map[core.Handle]bool // Reinforcements, pruned on rest and load

	queue  *event.Queue
	router *Router
	frame  int64
	hint   string

	campaign  *campaign.Campaign
	store     SnapshotStore
	presenter combat.Presenter
	metrics   *status.CombatMetrics
	profiles  map[enemy.Archetype]enemy.Profile
	roller    combat.Roller
	seed      uint64
	log       *zap.Logger
}

// New builds an arena with a player at the configured spawn
func New(cfg Config) *Arena {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := cfg.Campaign
	if c == nil {
		c = campaign.New(nil, log)
	}
	presenter := cfg.Presenter
	if presenter == nil {
		presenter = nopPresenter{}
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = status.NewCombatMetrics(status.NewRegistry())
	}

	a := &Arena{
		byHandle:  make(map[core.Handle]*enemy.Enemy),
		next:      core.InvalidHandle + 1,
		waves:     make(map[waveKey][]SpawnSpec),
		transient: make(map[core.Handle]bool),
		queue:     event.NewQueue(),
		campaign:  c,
		store:     cfg.Store,
		presenter: presenter,
		metrics:   metrics,
		profiles:  cfg.Profiles,
		roller:    cfg.Roller,
		seed:      cfg.Seed,
		log:       log,
	}
	a.player = player.New(player.Config{
		Position:    cfg.PlayerPosition,
		Facing:      cfg.PlayerFacing,
		Roster:      a,
		Progression: c,
		Events:      a.queue,
		Logger:      log.Named("player"),
	})
	a.syncProgression(true)

	a.router = NewRouter(a.queue)
	a.router.Register(&progressionHandler{})
	a.router.Register(&reinforcementHandler{})
	a.router.Register(&presentationHandler{})
	a.router.Register(&metricsHandler{})
	a.router.Register(&logHandler{})
	return a
}

type nopPresenter struct{}

func (nopPresenter) TriggerEffect(core.EffectType, vmath.Vec3F) {}
func (nopPresenter) PlaySound(core.SoundType, vmath.Vec3F) {}

func (a *Arena) Player() *player.Player { return a.player }
func (a *Arena) Campaign() *campaign.Campaign { return a.campaign }
func (a *Arena) Metrics() *status.CombatMetrics { return a.metrics }
func (a *Arena) Frame() int64 { return a.frame }

// Hint is the latest player-facing message
func (a *Arena) Hint() string { return a.hint }

func (a *Arena) setHint(msg string) {
	a.hint = msg
	a.metrics.Hint.Store(msg)
}

// Enemies enumerates every spawned enemy in spawn order, redeemed included
func (a *Arena) Enemies() []*enemy.Enemy {
	return a.enemies
}

// Resolve maps a handle to a live enemy; unknown and redeemed handles fail
func (a *Arena) Resolve(h core.Handle) (*enemy.Enemy, bool) {
	e, ok := a.byHandle[h]
	if !ok || e.IsRedeemed() {
		return nil, false
	}
	return e, true
}

// FindBySpawnID looks up an enemy by its persistent id
func (a *Arena) FindBySpawnID(id string) (*enemy.Enemy, bool) {
	for _, e := range a.enemies {
		if e.SpawnID() == id {
			return e, true
		}
	}
	return nil, false
}

func (a *Arena) PrayerSites() []player.PrayerSite {
	return a.sites
}

// AddPrayerSite registers a rest point; a site with an existing id replaces it
func (a *Arena) AddPrayerSite(site player.PrayerSite) {
	for i := range a.sites {
		if a.sites[i].ID == site.ID {
			a.sites[i] = site
			return
		}
	}
	a.sites = append(a.sites, site)
}

// SpawnEnemy places an enemy and returns it; an empty spawn id gets a generated one
func (a *Arena) SpawnEnemy(spec SpawnSpec) *enemy.Enemy {
	h := a.next
	a.next++

	if spec.SpawnID == "" {
		spec.SpawnID = uuid.NewString()
	}
	profile := spec.Profile
	if profile == nil {
		if p, ok := a.profiles[spec.Archetype]; ok {
			profile = &p
		}
	}
	roller := a.roller
	if roller == nil {
		roller = vmath.NewFastRand(a.seed + uint64(h))
	}

	e := enemy.New(enemy.Config{
		Handle:    h,
		SpawnID:   spec.SpawnID,
		Name:      spec.Name,
		Archetype: spec.Archetype,
		Profile:   profile,
		Position:  spec.Position,
		Facing:    spec.Facing,
		Roller:    roller,
		Events:    a.queue,
		Logger:    a.log.Named("enemy"),
	})
	a.enemies = append(a.enemies, e)
	a.byHandle[h] = e
	a.log.Debug("enemy spawned",
		zap.Uint32("handle", uint32(h)),
		zap.String("spawn", spec.SpawnID),
		zap.Stringer("archetype", spec.Archetype))
	return e
}

// Remove drops an enemy from the arena; the player's lock on it clears on the next tick
func (a *Arena) Remove(h core.Handle) bool {
	if _, ok := a.byHandle[h]; !ok {
		return false
	}
	delete(a.byHandle, h)
	delete(a.transient, h)
	a.enemies = slices.DeleteFunc(a.enemies, func(e *enemy.Enemy) bool { return e.Handle() == h })
	return true
}

// Tick advances the player, then every enemy against the player, then drains events
func (a *Arena) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	a.frame++
	a.queue.SetFrame(a.frame)

	a.player.Tick(dt)
	for _, e := range a.enemies {
		e.Tick(dt, a.player)
	}
	a.Drain()
}

// Drain routes pending events; input-driven actions call it so outcomes land before the next tick
func (a *Arena) Drain() {
	a.router.DispatchAll(a)
}

// Rest rests at the active prayer site
func (a *Arena) Rest() bool {
	if !a.player.Rest() {
		a.setHint(hintRestRequired)
		return false
	}
	a.Drain()
	return true
}

// UnlockSkill spends a skill point and refreshes player stats
func (a *Arena) UnlockSkill(id string) error {
	if err := a.campaign.UnlockSkill(id); err != nil {
		return err
	}
	a.syncProgression(false)
	return nil
}

// syncProgression pushes campaign capacities and skills into the player
func (a *Arena) syncProgression(restore bool) {
	a.player.ApplySkillModifiers(a.campaign.UnlockedSkills())
	h, s := a.campaign.BaseVitals()
	a.player.SetCampaignBaseVitals(h, s, restore)
}

// pruneTransient removes reinforcements spawned during a boss fight
func (a *Arena) pruneTransient() {
	for h := range a.transient {
		a.Remove(h)
	}
}
