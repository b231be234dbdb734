package parameter

import "time"

// Enemy Timing Floors
const (
	// EnemyMinWindup is the shortest windup any phase scaling may produce
	EnemyMinWindup = 160 * time.Millisecond

	// EnemyMinRecovery is the shortest recovery any phase scaling may produce
	EnemyMinRecovery = 240 * time.Millisecond

	// EnemyMinCastWindup is the shortest cast telegraph
	EnemyMinCastWindup = 220 * time.Millisecond

	// EnemyCastWindupExtra is added to the melee windup for casts
	EnemyCastWindupExtra = 80 * time.Millisecond
)

// Enemy Reactions
const (
	// EnemyShieldBlockDuration is how long a shield block holds the Blocking state
	EnemyShieldBlockDuration = 260 * time.Millisecond

	// EnemyParriedStaggerFactor scales stagger duration when a parry vulnerability expires
	EnemyParriedStaggerFactor = 0.5

	// BossParryVulnerabilityScale shortens boss parry vulnerability
	BossParryVulnerabilityScale = 0.72

	// BossStaggerScale shortens boss poise-break stagger
	BossStaggerScale = 0.68

	// EnemyParriedPoiseRatio is poise after being parried, as a fraction of max
	EnemyParriedPoiseRatio = 0.5

	// ParryFaithReward is granted to the source of a successful parry
	ParryFaithReward = 3.0

	// KnockbackDecayPerSecond is the exponential decay rate of knockback velocity
	KnockbackDecayPerSecond = 6.0
)

// Enemy Movement
const (
	// EnemyLeashFactor multiplies detection range before Chase gives up
	EnemyLeashFactor = 1.35

	// RetreatExitSlack is distance past minimum range before Retreat resumes Chase
	RetreatExitSlack = 70.0

	// RangedApproachFactor of attack range beyond which Ranged closes in
	RangedApproachFactor = 0.92

	// RangedStrafeMin is the shortest strafe
	RangedStrafeMin = 650 * time.Millisecond

	// RangedStrafeMax is the longest strafe
	RangedStrafeMax = 1200 * time.Millisecond

	// StrafeSpeedFactor scales move speed while strafing
	StrafeSpeedFactor = 0.9

	// StrafeForwardBias is the share of toward-target motion mixed into a strafe
	StrafeForwardBias = 0.18
)

// Ranged Casting
const (
	// CastReachFactor of attack range within which a cast lands
	CastReachFactor = 1.65

	CastDamageFactor  = 0.88
	CastPostureFactor = 0.74

	// CastCooldown is the base shot cooldown, divided by the phase speed scale
	CastCooldown = 1650 * time.Millisecond
)

// Demon Dash
const (
	DemonEngageFactor = 1.25
	DemonDashChance   = 0.32
	DemonDashCooldown = 2 * time.Second
	DemonChaseSpeed   = 1.08

	// DemonDashSpeedScale multiplies move speed into the dash impulse
	DemonDashSpeedScale = 1.9
)

// Boss Behaviour
const (
	// BossCastChance is the roll threshold for choosing a cast when far
	BossCastChance = 0.45

	// BossCastDistanceSlack is distance past attack range before a boss considers casting
	BossCastDistanceSlack = 250.0

	// BossMeleeSlack is distance past attack range at which a boss still swings
	BossMeleeSlack = 40.0

	// BossDashRangeFactor of attack range beyond which a phase 3 boss may dash
	BossDashRangeFactor = 1.5

	// BossDashFrequency is the per-second probability of a phase 3 dash
	BossDashFrequency = 0.55

	BossDashCooldown = 2800 * time.Millisecond

	// BossDashSpeedScale multiplies move speed into the dash impulse
	BossDashSpeedScale = 2.2
)
