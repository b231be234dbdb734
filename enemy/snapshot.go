package enemy

import (
	"github.com/lixenwraith/nazarene/vmath"
)

// Snapshot is the persisted state of one enemy
type Snapshot struct {
	SpawnID   string      `json:"spawn_id"`
	Name      string      `json:"name"`
	Archetype Archetype   `json:"archetype"`
	Position  vmath.Vec3F `json:"position"`
	Health    float64     `json:"health"`
	Poise     float64     `json:"poise"`
	Redeemed  bool        `json:"redeemed"`
	BossPhase int         `json:"boss_phase"`
}

// BuildSnapshot captures persisted state; transient timers are not saved
func (e *Enemy) BuildSnapshot() Snapshot {
	return Snapshot{
		SpawnID:   e.spawnID,
		Name:      e.name,
		Archetype: e.archetype,
		Position:  e.kin.Position,
		Health:    e.vitals.Health.Current,
		Poise:     e.vitals.Stamina.Current,
		Redeemed:  e.state == Redeemed,
		BossPhase: e.phase,
	}
}

// ApplySnapshot restores persisted state
// A redeemed snapshot redeems without reward; otherwise the enemy is revived into Idle with timers zeroed
func (e *Enemy) ApplySnapshot(s Snapshot) {
	if s.Redeemed {
		e.BecomeRedeemed(nil, false)
		return
	}

	e.collidable = true
	e.hidden = false
	e.clearTransient()
	e.kin.Position = s.Position
	e.vitals.Health.Set(s.Health)
	e.vitals.Stamina.Set(s.Poise)
	e.phase = clampedPhase(s.BossPhase)
	e.forceState(Idle)
}
