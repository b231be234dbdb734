package parameter

import "time"

// Player Vitals
const (
	PlayerMaxHealth     = 120.0
	PlayerMaxStamina    = 100.0
	PlayerStaminaRegen  = 22.0
	PlayerStartingFaith = 35.0
	PlayerWalkSpeed     = 580.0
	PlayerDodgeSpeed    = 1120.0

	// PlayerBlessedRegenScale multiplies stamina regen while blessed
	PlayerBlessedRegenScale = 1.35

	// PlayerDefeatHealthThreshold is the health at or below which the player is defeated
	PlayerDefeatHealthThreshold = 0.01
)

// Player Attacks
const (
	LightAttackDamage   = 26.0
	LightAttackPosture  = 28.0
	LightAttackStamina  = 18.0
	LightAttackRange    = 290.0
	LightAttackWindup   = 150 * time.Millisecond
	LightAttackActive   = 200 * time.Millisecond
	LightAttackCooldown = 500 * time.Millisecond
	LightAttackFaith    = 1.0

	HeavyAttackDamage   = 42.0
	HeavyAttackPosture  = 54.0
	HeavyAttackStamina  = 32.0
	HeavyAttackRange    = 340.0
	HeavyAttackWindup   = 300 * time.Millisecond
	HeavyAttackActive   = 230 * time.Millisecond
	HeavyAttackCooldown = 840 * time.Millisecond
	HeavyAttackFaith    = 1.5

	// RiposteLightScale multiplies heavy damage for a light riposte
	RiposteLightScale = 1.08

	// RiposteHeavyScale multiplies heavy damage for a heavy riposte
	RiposteHeavyScale = 1.5
)

// Player Defense
const (
	DodgeStamina      = 26.0
	DodgeCooldown     = 280 * time.Millisecond
	DodgeDuration     = 280 * time.Millisecond
	DodgeInvulnerable = 220 * time.Millisecond

	ParryStamina  = 20.0
	ParryCooldown = 420 * time.Millisecond
	ParryStartup  = 80 * time.Millisecond
	ParryWindow   = 230 * time.Millisecond

	// PlayerParryFaith is granted when a parry converts an enemy attack
	PlayerParryFaith = 2.0

	PerfectBlockWindow = 180 * time.Millisecond

	// BlockStaminaFactor converts posture damage into stamina loss while blocking
	BlockStaminaFactor = 1.2

	// PerfectBlockStaminaFactor further scales stamina loss on a perfect block
	PerfectBlockStaminaFactor = 0.45
	PerfectBlockFaith         = 1.0

	// BlockChipFactor is the share of raw damage taken when a guard breaks
	BlockChipFactor = 0.35

	HurtDuration = 220 * time.Millisecond
)

// Movement Constraints (speed multipliers; lowest active wins)
const (
	MoveScaleBlocking = 0.45
	MoveScaleWindup   = 0.28
	MoveScaleActive   = 0.62
	MoveScaleHurt     = 0.35
)

// Targeting
const (
	LockOnRange = 2000.0

	// LockOnBreakFactor of lock range past which a lock auto-clears
	LockOnBreakFactor = 1.2
)

// Rest & Defeat
const (
	// RestFaithRefillRatio of starting faith restored at a prayer site
	RestFaithRefillRatio = 0.5

	// RestFaithCapRatio of starting faith that resting cannot exceed
	RestFaithCapRatio = 2.0

	FallbackRespawnX = 0.0
	FallbackRespawnY = 0.0
	FallbackRespawnZ = 180.0
)

// Prayer Sites
const (
	// PrayerSiteRadius is the default reach within which a site counts as active
	PrayerSiteRadius = 260.0
)

// Presentation offsets ahead of the player
const (
	LightAttackCueOffset = 110.0
	HeavyAttackCueOffset = 125.0
)
