package event

import (
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/vmath"
)

// SoundRequestPayload contains a positioned sound cue
type SoundRequestPayload struct {
	Sound core.SoundType
	At    vmath.Vec3F
}

// EffectRequestPayload contains a positioned visual cue
type EffectRequestPayload struct {
	Effect core.EffectType
	At     vmath.Vec3F
}

// EnemyPayload identifies the enemy an event concerns
type EnemyPayload struct {
	Handle core.Handle
}

// EnemyStatePayload contains a state transition by state name
type EnemyStatePayload struct {
	Handle core.Handle
	From   string
	To     string
}

// EnemyStrikePayload contains a resolved enemy attack
type EnemyStrikePayload struct {
	Handle    core.Handle
	Damage    float64
	Posture   float64
	Ranged    bool
	Connected bool // Target was within reach
}

// EnemyRedeemedPayload contains the redemption reward for the campaign
type EnemyRedeemedPayload struct {
	Handle      core.Handle
	SpawnID     string
	FaithReward float64
}

// BossPhasePayload contains a boss phase change
type BossPhasePayload struct {
	Handle core.Handle
	From   int
	To     int
}

// HazardPayload marks an arena hazard location
type HazardPayload struct {
	Handle core.Handle
	At     vmath.Vec3F
}

// AttackResolvedPayload contains a player attack outcome
// Target is InvalidHandle when the swing found nothing
type AttackResolvedPayload struct {
	Heavy   bool
	Target  core.Handle
	Riposte bool
	Damage  float64
}

// PlayerHurtPayload contains health damage dealt to the player
type PlayerHurtPayload struct {
	Damage float64
	Health float64
}

// PlayerDefeatedPayload contains the respawn destination
// SiteID is empty when the fallback point was used
type PlayerDefeatedPayload struct {
	SiteID string
}

// MiracleCastPayload contains a cast miracle and how many enemies it struck
type MiracleCastPayload struct {
	Miracle string
	Hits    int
}

// RestPayload contains the prayer site rested at
type RestPayload struct {
	SiteID string
}
