// Package player implements the player combat controller
// Attacks, defense windows, the stamina and faith economy, miracles, lock-on and rest all live here
package player

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/component"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// Roster is the spatial query collaborator
// Enemies enumerates every spawned enemy including redeemed ones; Resolve fails for redeemed handles
type Roster interface {
	Enemies() []*enemy.Enemy
	Resolve(h core.Handle) (*enemy.Enemy, bool)
	PrayerSites() []PrayerSite
}

// Progression is the campaign collaborator consulted by the controller
type Progression interface {
	IsMiracleUnlocked(id string) bool
	NotifyDefeated()
}

// Config describes the player at spawn
type Config struct {
	Position    vmath.Vec3F
	Facing      vmath.Vec3F
	Roster      Roster
	Progression Progression
	Events      event.Publisher
	Logger      *zap.Logger
}

// Player is the player-side combatant
type Player struct {
	vitals component.Vitals
	kin    core.Kinetic
	stats  Stats

	baseMaxHealth  float64
	baseMaxStamina float64

	attackCooldown   component.Timer
	dodgeTimer       component.Timer
	invulnerable     component.Timer
	parryStartup     component.Timer
	parryWindow      component.Timer
	perfectBlock     component.Timer
	hurtTimer        component.Timer
	blessing         component.Timer
	healCooldown     component.Timer
	blessingCooldown component.Timer
	radianceCooldown component.Timer

	pending    PendingAttack
	blocking   bool
	dodgeDir   vmath.Vec3F
	moveIntent vmath.Vec3F
	speedScale float64

	lock           core.Handle
	lastRestSiteID string

	roster      Roster
	progression Progression
	events      event.Publisher
	log         *zap.Logger
}

// New builds a player with full vitals and starting faith
func New(cfg Config) *Player {
	facing := vmath.Normalize2D(cfg.Facing)
	if vmath.V3FIsZero(facing) {
		facing = vmath.Vec3F{X: 1}
	}
	p := &Player{
		vitals:         component.NewVitals(parameter.PlayerMaxHealth, parameter.PlayerMaxStamina, parameter.PlayerStartingFaith),
		kin:            core.Kinetic{Position: cfg.Position, Facing: facing},
		stats:          BaseStats(),
		baseMaxHealth:  parameter.PlayerMaxHealth,
		baseMaxStamina: parameter.PlayerMaxStamina,
		speedScale:     1,
		roster:         cfg.Roster,
		progression:    cfg.Progression,
		events:         cfg.Events,
		log:            cfg.Logger,
	}
	if p.roster == nil {
		p.roster = emptyRoster{}
	}
	if p.progression == nil {
		p.progression = baseProgression{}
	}
	if p.events == nil {
		p.events = event.Discard{}
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// SetRoster attaches the spatial query once the arena exists
func (p *Player) SetRoster(r Roster) {
	if r == nil {
		r = emptyRoster{}
	}
	p.roster = r
}

// SetProgression attaches the campaign collaborator
func (p *Player) SetProgression(pr Progression) {
	if pr == nil {
		pr = baseProgression{}
	}
	p.progression = pr
}

type emptyRoster struct{}

func (emptyRoster) Enemies() []*enemy.Enemy { return nil }
func (emptyRoster) Resolve(core.Handle) (*enemy.Enemy, bool) { return nil, false }
func (emptyRoster) PrayerSites() []PrayerSite { return nil }

// baseProgression unlocks only the starting miracle
type baseProgression struct{}

func (baseProgression) IsMiracleUnlocked(id string) bool { return id == parameter.MiracleHeal }
func (baseProgression) NotifyDefeated() {}

func (p *Player) Position() vmath.Vec3F { return p.kin.Position }
func (p *Player) Facing() vmath.Vec3F { return p.kin.Facing }
func (p *Player) Velocity() vmath.Vec3F { return p.kin.Velocity }
func (p *Player) Health() float64 { return p.vitals.Health.Current }
func (p *Player) MaxHealth() float64 { return p.vitals.Health.Max }
func (p *Player) Stamina() float64 { return p.vitals.Stamina.Current }
func (p *Player) MaxStamina() float64 { return p.vitals.Stamina.Max }
func (p *Player) Faith() float64 { return p.vitals.Faith }
func (p *Player) Stats() Stats { return p.stats }
func (p *Player) IsBlocking() bool { return p.blocking }
func (p *Player) IsDodging() bool { return p.dodgeTimer.Active() }
func (p *Player) IsAttacking() bool { return p.pending.Pending() }
func (p *Player) IsInvulnerable() bool { return p.invulnerable.Active() }
func (p *Player) IsBlessed() bool { return p.blessing.Active() }
func (p *Player) ParryWindowOpen() bool { return p.parryWindow.Active() }
func (p *Player) Pending() PendingAttack { return p.pending }
func (p *Player) SpeedScale() float64 { return p.speedScale }
func (p *Player) LastRestSiteID() string { return p.lastRestSiteID }
func (p *Player) HurtRemaining() time.Duration { return p.hurtTimer.Remaining }

// MiracleCooldowns returns remaining heal, blessing and radiance cooldowns
func (p *Player) MiracleCooldowns() (heal, blessing, radiance time.Duration) {
	return p.healCooldown.Remaining, p.blessingCooldown.Remaining, p.radianceCooldown.Remaining
}

// SetPosition teleports the player, stopping movement
func (p *Player) SetPosition(pos vmath.Vec3F) {
	p.kin.Position = pos
	p.kin.Stop()
}

// SetFacing points the player along dir; zero directions are ignored
func (p *Player) SetFacing(dir vmath.Vec3F) {
	if f := vmath.Normalize2D(dir); !vmath.V3FIsZero(f) {
		p.kin.Facing = f
	}
}

// SetMoveIntent sets the planar movement input, clamped to unit length
func (p *Player) SetMoveIntent(dir vmath.Vec3F) {
	dir = vmath.Flatten(dir)
	if vmath.V3FMag(dir) > 1 {
		dir = vmath.V3FNormalize(dir)
	}
	p.moveIntent = dir
}

// AddFaith applies a signed delta floored at zero
func (p *Player) AddFaith(amount float64) {
	p.vitals.AddFaith(amount)
}

// busy is true while an action cooldown, dodge or hurt reaction is running
func (p *Player) busy() bool {
	return p.attackCooldown.Active() || p.dodgeTimer.Active() || p.hurtTimer.Active()
}

func (p *Player) ahead(distance float64) vmath.Vec3F {
	return vmath.V3FAdd(p.kin.Position, vmath.V3FScale(p.kin.Facing, distance))
}

func (p *Player) cue(sound core.SoundType, effect core.EffectType, at vmath.Vec3F) {
	event.EmitCue(p.events, sound, effect, at)
}

// clearTransient zeroes every timer and drops combat state that must not survive a hard reset
func (p *Player) clearTransient() {
	for _, t := range []*component.Timer{
		&p.attackCooldown, &p.dodgeTimer, &p.invulnerable,
		&p.parryStartup, &p.parryWindow, &p.perfectBlock, &p.hurtTimer,
		&p.blessing, &p.healCooldown, &p.blessingCooldown, &p.radianceCooldown,
	} {
		t.Clear()
	}
	p.pending.clear()
	p.blocking = false
	p.dodgeDir = vmath.Vec3F{}
	p.speedScale = 1
	p.kin.Stop()
}
