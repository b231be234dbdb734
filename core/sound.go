package core

// SoundType represents combat sound cues
type SoundType int

const (
	SoundSwing     SoundType = iota // Attack released
	SoundHit                        // Flesh hit on enemy or player
	SoundClang                      // Shield or guard block
	SoundParry                      // Successful parry
	SoundRedeemed                   // Enemy redeemed
	SoundMiracle                    // Miracle cast
	SoundDefeat                     // Player defeated
	SoundTypeCount
)

// EffectType represents visual cues the presentation layer may render
type EffectType int

const (
	EffectNone EffectType = iota
	EffectHitSpark
	EffectShieldSpark
	EffectParryFlash
	EffectRedemptionLight
	EffectHealGlow
	EffectBlessingAura
	EffectRadianceBurst
	EffectArenaHazard
	EffectTypeCount
)

var effectNames = [EffectTypeCount]string{
	EffectNone:            "none",
	EffectHitSpark:        "hit",
	EffectShieldSpark:     "shield",
	EffectParryFlash:      "parry",
	EffectRedemptionLight: "redeemed",
	EffectHealGlow:        "heal",
	EffectBlessingAura:    "blessing",
	EffectRadianceBurst:   "radiance",
	EffectArenaHazard:     "hazard",
}

func (e EffectType) String() string {
	if e < 0 || e >= EffectTypeCount {
		return "unknown"
	}
	return effectNames[e]
}
