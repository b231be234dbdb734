package status

import "sync/atomic"

// CombatMetrics caches the counters the world updates while draining events
type CombatMetrics struct {
	PlayerHits    *atomic.Int64
	Ripostes      *atomic.Int64
	ShieldBlocks  *atomic.Int64
	Parries       *atomic.Int64
	PerfectBlocks *atomic.Int64
	Staggers      *atomic.Int64
	Redemptions   *atomic.Int64
	Defeats       *atomic.Int64
	Miracles      *atomic.Int64
	EnemyStrikes  *atomic.Int64
	DamageDealt   *AtomicFloat
	DamageTaken   *AtomicFloat
	BossPhase     *atomic.Int64
	Hint          *AtomicString
}

// NewCombatMetrics registers combat counters in r
func NewCombatMetrics(r *Registry) *CombatMetrics {
	return &CombatMetrics{
		PlayerHits:    r.Ints.Get("combat.player_hits"),
		Ripostes:      r.Ints.Get("combat.ripostes"),
		ShieldBlocks:  r.Ints.Get("combat.shield_blocks"),
		Parries:       r.Ints.Get("combat.parries"),
		PerfectBlocks: r.Ints.Get("combat.perfect_blocks"),
		Staggers:      r.Ints.Get("combat.staggers"),
		Redemptions:   r.Ints.Get("combat.redemptions"),
		Defeats:       r.Ints.Get("combat.defeats"),
		Miracles:      r.Ints.Get("combat.miracles"),
		EnemyStrikes:  r.Ints.Get("combat.enemy_strikes"),
		DamageDealt:   r.Floats.Get("combat.damage_dealt"),
		DamageTaken:   r.Floats.Get("combat.damage_taken"),
		BossPhase:     r.Ints.Get("combat.boss_phase"),
		Hint:          r.Strings.Get("hud.hint"),
	}
}
