// Package enemy implements the per-enemy combat state machine
package enemy

import (
	"context"
	"errors"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/component"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/vmath"
)

// Config describes one enemy at spawn
// Zero-value fields fall back to defaults; Profile overrides the archetype table when set
type Config struct {
	Handle    core.Handle
	SpawnID   string
	Name      string
	Archetype Archetype
	Profile   *Profile
	Position  vmath.Vec3F
	Facing    vmath.Vec3F
	Roller    combat.Roller
	Events    event.Publisher
	Logger    *zap.Logger
}

// Enemy is one combatant driven by its state machine
// All mutators are no-ops once Redeemed; only ResetToSpawn and ApplySnapshot revive
type Enemy struct {
	handle    core.Handle
	spawnID   string
	name      string
	archetype Archetype
	profile   Profile

	vitals component.Vitals // Stamina holds poise
	kin    core.Kinetic

	spawnPosition vmath.Vec3F
	spawnFacing   vmath.Vec3F

	state   State
	machine *fsm.FSM

	stateTimer     component.Timer
	windupDuration time.Duration
	windupElapsed  time.Duration
	attackResolved bool
	shotCooldown   component.Timer
	dashCooldown   component.Timer
	strafeSign     float64

	phase      int
	phase2Wave bool
	phase3Wave bool

	collidable bool
	hidden     bool

	rng    combat.Roller
	events event.Publisher
	log    *zap.Logger
}

// New builds an enemy in Idle at its spawn transform
func New(cfg Config) *Enemy {
	profile := ProfileFor(cfg.Archetype)
	if cfg.Archetype >= archetypeCount {
		profile = DefaultProfile()
	}
	if cfg.Profile != nil {
		profile = *cfg.Profile
	}
	name := cfg.Name
	if name == "" {
		name = profile.Name
	}
	facing := vmath.Normalize2D(cfg.Facing)
	if vmath.V3FIsZero(facing) {
		facing = vmath.Vec3F{X: 1}
	}
	rng := cfg.Roller
	if rng == nil {
		rng = vmath.NewFastRand(uint64(cfg.Handle) + 1)
	}
	events := cfg.Events
	if events == nil {
		events = event.Discard{}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := &Enemy{
		handle:        cfg.Handle,
		spawnID:       cfg.SpawnID,
		name:          name,
		archetype:     cfg.Archetype,
		profile:       profile,
		vitals:        component.NewVitals(profile.MaxHealth, profile.MaxPoise, 0),
		kin:           core.Kinetic{Position: cfg.Position, Facing: facing},
		spawnPosition: cfg.Position,
		spawnFacing:   facing,
		phase:         1,
		collidable:    true,
		strafeSign:    1,
		rng:           rng,
		events:        events,
		log: log.With(
			zap.Uint32("handle", uint32(cfg.Handle)),
			zap.String("archetype", cfg.Archetype.String()),
		),
	}
	e.machine = fsm.NewFSM(Idle.String(), transitionGraph(), fsm.Callbacks{
		"enter_state": func(_ context.Context, ev *fsm.Event) {
			event.Emit(e.events, event.EventEnemyStateChanged, &event.EnemyStatePayload{
				Handle: e.handle, From: ev.Src, To: ev.Dst,
			})
		},
	})
	return e
}

// transition moves to next through the declared graph
// Re-entering the current state is allowed and only refreshes state data
func (e *Enemy) transition(next State) bool {
	err := e.machine.Event(context.Background(), enterEvent(next))
	if err != nil {
		var noop fsm.NoTransitionError
		if !errors.As(err, &noop) {
			e.log.Warn("illegal enemy transition",
				zap.String("from", e.state.String()),
				zap.String("to", next.String()),
				zap.Error(err))
			return false
		}
	}
	e.state = next
	return true
}

// forceState is the hard-reset path that bypasses the graph
func (e *Enemy) forceState(s State) {
	e.machine.SetState(s.String())
	e.state = s
}

func (e *Enemy) Handle() core.Handle { return e.handle }
func (e *Enemy) SpawnID() string { return e.spawnID }
func (e *Enemy) Name() string { return e.name }
func (e *Enemy) Archetype() Archetype { return e.archetype }
func (e *Enemy) Profile() Profile { return e.profile }
func (e *Enemy) State() State { return e.state }
func (e *Enemy) Phase() int { return e.phase }
func (e *Enemy) Health() float64 { return e.vitals.Health.Current }
func (e *Enemy) MaxHealth() float64 { return e.vitals.Health.Max }
func (e *Enemy) Poise() float64 { return e.vitals.Stamina.Current }
func (e *Enemy) MaxPoise() float64 { return e.vitals.Stamina.Max }
func (e *Enemy) Position() vmath.Vec3F { return e.kin.Position }
func (e *Enemy) Facing() vmath.Vec3F { return e.kin.Facing }
func (e *Enemy) Velocity() vmath.Vec3F { return vmath.V3FAdd(e.kin.Velocity, e.kin.Knockback) }
func (e *Enemy) IsRedeemed() bool { return e.state == Redeemed }
func (e *Enemy) IsParried() bool { return e.state == Parried }
func (e *Enemy) Hidden() bool { return e.hidden }
func (e *Enemy) Collidable() bool { return e.collidable }
func (e *Enemy) StateRemaining() time.Duration {
	return e.stateTimer.Remaining
}

// SetPosition teleports the enemy without touching its spawn transform
func (e *Enemy) SetPosition(p vmath.Vec3F) {
	e.kin.Position = p
}

// SetFacing points the enemy along dir; zero directions are ignored
func (e *Enemy) SetFacing(dir vmath.Vec3F) {
	if f := vmath.Normalize2D(dir); !vmath.V3FIsZero(f) {
		e.kin.Facing = f
	}
}

// WindupProgress is elapsed/duration of the current windup, 0 outside attack states
func (e *Enemy) WindupProgress() float64 {
	if e.state != Windup && e.state != Casting {
		return 0
	}
	return combat.WindupRatio(e.windupElapsed, e.windupDuration)
}

func (e *Enemy) isBoss() bool {
	return e.archetype == Boss
}

// scalingPhase is the phase fed to scaling formulas; only bosses scale
func (e *Enemy) scalingPhase() int {
	if e.isBoss() {
		return e.phase
	}
	return 1
}

func (e *Enemy) EffectiveWindup() time.Duration {
	return combat.EffectiveWindup(e.profile.Windup, e.scalingPhase())
}

func (e *Enemy) EffectiveRecovery() time.Duration {
	return combat.EffectiveRecovery(e.profile.Recovery, e.scalingPhase())
}

func (e *Enemy) EffectiveDamage() float64 {
	return combat.EffectiveDamage(e.profile.AttackDamage, e.scalingPhase(), e.archetype == Demon)
}

func (e *Enemy) EffectivePosture() float64 {
	return combat.EffectivePosture(e.profile.PostureDamage, e.scalingPhase())
}

func (e *Enemy) EffectiveMoveSpeed() float64 {
	return combat.EffectiveMoveSpeed(e.profile.MoveSpeed, e.scalingPhase())
}

// EffectiveParryWindow returns the parryable windup ratio band
func (e *Enemy) EffectiveParryWindow() (start, end float64) {
	return combat.ParryWindow(e.profile.ParryStart, e.profile.ParryEnd, e.scalingPhase())
}

func (e *Enemy) reachClass() combat.ReachClass {
	switch e.archetype {
	case Spear:
		return combat.ReachSpear
	case Boss:
		return combat.ReachBoss
	default:
		return combat.ReachStandard
	}
}

func (e *Enemy) cue(sound core.SoundType, effect core.EffectType, at vmath.Vec3F) {
	event.EmitCue(e.events, sound, effect, at)
}

func (e *Enemy) enemyPayload() *event.EnemyPayload {
	return &event.EnemyPayload{Handle: e.handle}
}
