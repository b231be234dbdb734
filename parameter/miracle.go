package parameter

import "time"

// Heal
const (
	HealAmount   = 45.0
	HealFaith    = 18.0
	HealCooldown = 6500 * time.Millisecond
)

// Blessing
const (
	BlessingFaith    = 22.0
	BlessingDuration = 5 * time.Second
	BlessingCooldown = 14 * time.Second

	// BlessingDamageScale multiplies incoming damage while blessed
	BlessingDamageScale = 0.65

	// BlessingPostureScale multiplies incoming posture damage while blessed
	BlessingPostureScale = 0.7
)

// Radiance
const (
	RadianceFaith     = 30.0
	RadianceCooldown  = 12 * time.Second
	RadianceDamage    = 32.0
	RadiancePosture   = 38.0
	RadianceRadius    = 600.0
	RadianceKnockback = 450.0
)

// Post-cast attack lockout
const (
	MiracleAttackLockout  = 350 * time.Millisecond
	RadianceAttackLockout = 450 * time.Millisecond
)

// Miracle identifiers, as stored in campaign unlocks
const (
	MiracleHeal     = "heal"
	MiracleBlessing = "blessing"
	MiracleRadiance = "radiance"
)
