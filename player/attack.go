package player

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/component"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// AttackKind tags the pending attack variant
type AttackKind uint8

const (
	AttackNone AttackKind = iota
	AttackLight
	AttackHeavy
)

func (k AttackKind) String() string {
	switch k {
	case AttackLight:
		return "light"
	case AttackHeavy:
		return "heavy"
	default:
		return "none"
	}
}

// PendingAttack is an armed player attack
// Resolved guards the target query so it fires once per activation
type PendingAttack struct {
	Kind     AttackKind
	Windup   component.Timer
	Active   component.Timer
	Resolved bool
}

// Pending reports whether an attack is armed
func (a PendingAttack) Pending() bool {
	return a.Kind != AttackNone
}

func (a *PendingAttack) arm(kind AttackKind, windup, active time.Duration) {
	a.Kind = kind
	a.Windup.Set(windup)
	a.Active.Set(active)
	a.Resolved = false
}

func (a *PendingAttack) clear() {
	*a = PendingAttack{}
}

// advance runs windup then the active window, calling resolve exactly once at the windup boundary
// A dt spanning both phases still resolves before the attack is cleared
func (a *PendingAttack) advance(dt time.Duration, resolve func(AttackKind)) {
	if a.Kind == AttackNone {
		return
	}
	if a.Windup.Active() {
		a.Windup.Tick(dt)
		if a.Windup.Active() {
			return
		}
	}
	if !a.Resolved {
		a.Resolved = true
		resolve(a.Kind)
	}
	// resolve may have triggered a hard reset
	if a.Kind == AttackNone {
		return
	}
	a.Active.Tick(dt)
	if !a.Active.Active() {
		a.clear()
	}
}

// TryLightAttack arms a light attack; rejected while busy, already attacking or short of stamina
func (p *Player) TryLightAttack() bool {
	return p.tryAttack(AttackLight)
}

// TryHeavyAttack arms a heavy attack; rejected while busy, already attacking or short of stamina
func (p *Player) TryHeavyAttack() bool {
	return p.tryAttack(AttackHeavy)
}

func (p *Player) tryAttack(kind AttackKind) bool {
	if p.busy() || p.pending.Pending() {
		return false
	}

	cost, windup, active, cooldown, offset := parameter.LightAttackStamina, parameter.LightAttackWindup,
		parameter.LightAttackActive, parameter.LightAttackCooldown, parameter.LightAttackCueOffset
	if kind == AttackHeavy {
		cost, windup, active, cooldown, offset = parameter.HeavyAttackStamina, parameter.HeavyAttackWindup,
			parameter.HeavyAttackActive, parameter.HeavyAttackCooldown, parameter.HeavyAttackCueOffset
	}
	if !p.vitals.Stamina.Spend(cost) {
		return false
	}

	p.pending.arm(kind, windup, active)
	p.attackCooldown.Set(cooldown)
	event.EmitSound(p.events, core.SoundSwing, p.ahead(offset))
	return true
}

// resolveAttack delivers the armed attack to the best target
// A Parried target takes a riposte scaled from heavy damage; anything else takes a normal hit and grants faith
func (p *Player) resolveAttack(kind AttackKind) {
	maxDist, arc := p.stats.LightRange, parameter.LightAttackArcDegrees
	if kind == AttackHeavy {
		maxDist, arc = p.stats.HeavyRange, parameter.HeavyAttackArcDegrees
	}

	payload := &event.AttackResolvedPayload{Heavy: kind == AttackHeavy}
	target := p.FindAttackTarget(maxDist, arc)
	if target != nil {
		payload.Target = target.Handle()
		if target.IsParried() {
			scale := parameter.RiposteLightScale
			if kind == AttackHeavy {
				scale = parameter.RiposteHeavyScale
			}
			payload.Riposte = true
			payload.Damage = p.stats.HeavyDamage * scale
			target.ReceiveRiposte(payload.Damage, p)
		} else {
			damage, posture, faith := p.stats.LightDamage, p.stats.LightPosture, parameter.LightAttackFaith
			if kind == AttackHeavy {
				damage, posture, faith = p.stats.HeavyDamage, p.stats.HeavyPosture, parameter.HeavyAttackFaith
			}
			payload.Damage = damage
			target.ReceiveHit(damage, posture, p)
			p.AddFaith(faith)
		}
		p.log.Debug("attack resolved",
			zap.Stringer("kind", kind),
			zap.Uint32("target", uint32(payload.Target)),
			zap.Bool("riposte", payload.Riposte))
	}
	event.Emit(p.events, event.EventPlayerAttackResolved, payload)
}

// FindAttackTarget prefers the lock target within maxDistance plus slack,
// else the nearest non-redeemed enemy within maxDistance inside the frontal arc
func (p *Player) FindAttackTarget(maxDistance, arcDegrees float64) *enemy.Enemy {
	origin := p.kin.Position
	if e, ok := p.lockTarget(); ok && vmath.Dist2D(origin, e.Position()) <= maxDistance+parameter.LockTargetRangeSlack {
		return e
	}

	enemies := p.roster.Enemies()
	i := combat.NearestIndex(origin, enemies, (*enemy.Enemy).Position, func(e *enemy.Enemy, dist float64) bool {
		if e.IsRedeemed() {
			return false
		}
		if dist <= parameter.MinTargetDistance || dist > maxDistance {
			return false
		}
		return combat.InFrontalArc(origin, p.kin.Facing, e.Position(), arcDegrees)
	})
	if i < 0 {
		return nil
	}
	return enemies[i]
}
