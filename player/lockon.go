package player

import (
	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// ToggleLockOn clears a held lock, else locks the nearest non-redeemed enemy within lock range
// Returns the new lock handle, InvalidHandle when none
func (p *Player) ToggleLockOn() core.Handle {
	if p.lock.Valid() {
		p.ClearLock()
		return core.InvalidHandle
	}
	enemies := p.roster.Enemies()
	i := combat.NearestIndex(p.kin.Position, enemies, (*enemy.Enemy).Position, func(e *enemy.Enemy, dist float64) bool {
		return !e.IsRedeemed() && dist < parameter.LockOnRange
	})
	if i >= 0 {
		p.lock = enemies[i].Handle()
	}
	return p.lock
}

// LockTarget returns the held lock handle
func (p *Player) LockTarget() core.Handle {
	return p.lock
}

func (p *Player) ClearLock() {
	p.lock = core.InvalidHandle
}

// lockTarget resolves the held handle through the roster
func (p *Player) lockTarget() (*enemy.Enemy, bool) {
	if !p.lock.Valid() {
		return nil, false
	}
	e, ok := p.roster.Resolve(p.lock)
	if !ok || e.IsRedeemed() {
		return nil, false
	}
	return e, true
}

// validateLock drops a lock whose target is gone, redeemed or beyond the break distance
func (p *Player) validateLock() {
	if !p.lock.Valid() {
		return
	}
	e, ok := p.lockTarget()
	if !ok || vmath.Dist2D(p.kin.Position, e.Position()) > parameter.LockOnRange*parameter.LockOnBreakFactor {
		p.ClearLock()
	}
}
