package event

// EventType represents the type of combat event
type EventType int

const (
	EventNone EventType = iota

	// === Presentation Event ===

	// EventSoundRequest requests audio playback at a location
	// Trigger: Any combatant on audible action
	// Consumer: Presenter | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventEffectRequest requests a visual cue at a location
	// Trigger: Any combatant on visible action
	// Consumer: Presenter | Payload: *EffectRequestPayload
	EventEffectRequest

	// === Enemy Event ===

	// EventEnemyStateChanged reports a legal state machine transition
	// Trigger: Enemy state change
	// Consumer: Debug log | Payload: *EnemyStatePayload
	EventEnemyStateChanged EventType = iota + 100

	// EventEnemyStrike reports a resolved melee or cast attack
	// Trigger: Enemy windup reaching strike ratio
	// Consumer: Metrics, log | Payload: *EnemyStrikePayload
	EventEnemyStrike

	// EventEnemyParried reports an enemy attack converted by a parry
	// Trigger: Enemy.OnParried
	// Consumer: Metrics | Payload: *EnemyPayload
	EventEnemyParried

	// EventShieldBlock reports a shield absorbing a player hit
	// Trigger: Enemy.ReceiveHit with successful block roll
	// Consumer: Metrics, presenter | Payload: *EnemyPayload
	EventShieldBlock

	// EventEnemyStaggered reports a poise break or riposte stagger
	// Trigger: Enemy poise depletion, riposte survival
	// Consumer: Metrics | Payload: *EnemyPayload
	EventEnemyStaggered

	// EventEnemyRedeemed reports an enemy entering its terminal state with reward
	// Trigger: Enemy health depletion
	// Consumer: Campaign | Payload: *EnemyRedeemedPayload
	EventEnemyRedeemed

	// EventBossPhaseChanged reports a boss phase tier change
	// Trigger: Boss tick after health loss
	// Consumer: Log, HUD | Payload: *BossPhasePayload
	EventBossPhaseChanged

	// EventBossReinforcements requests adds when a boss enters phase 2 or 3
	// Trigger: Boss phase change, once per phase
	// Consumer: World (arena content) | Payload: *BossPhasePayload
	EventBossReinforcements

	// EventArenaHazard marks a phase 3 boss dash hazard
	// Trigger: Boss dash
	// Consumer: Presenter | Payload: *HazardPayload
	EventArenaHazard

	// === Player Event ===

	// EventPlayerAttackResolved reports a light or heavy attack resolution
	// Trigger: Pending attack reaching windup boundary
	// Consumer: Metrics | Payload: *AttackResolvedPayload
	EventPlayerAttackResolved EventType = iota + 200

	// EventPlayerParry reports an enemy attack parried by the player
	// Trigger: Player.ReceiveEnemyAttack inside parry window
	// Consumer: Metrics, presenter | Payload: *EnemyPayload
	EventPlayerParry

	// EventPerfectBlock reports a block inside the perfect window
	// Trigger: Player.ReceiveEnemyAttack while blocking
	// Consumer: Metrics | Payload: nil
	EventPerfectBlock

	// EventPlayerHurt reports health damage to the player
	// Trigger: Player health loss
	// Consumer: HUD | Payload: *PlayerHurtPayload
	EventPlayerHurt

	// EventPlayerDefeated reports player defeat and respawn
	// Trigger: Player health at or below threshold
	// Consumer: Campaign, HUD | Payload: *PlayerDefeatedPayload
	EventPlayerDefeated

	// EventMiracleCast reports a miracle successfully cast
	// Trigger: Player.TryHeal/TryBlessing/TryRadiance
	// Consumer: Metrics, presenter | Payload: *MiracleCastPayload
	EventMiracleCast

	// EventPlayerRested reports rest at a prayer site
	// Trigger: Player.RestAtPrayerSite, defeat respawn
	// Consumer: HUD | Payload: *RestPayload
	EventPlayerRested
)

var eventNames = map[EventType]string{
	EventNone:                 "None",
	EventSoundRequest:         "SoundRequest",
	EventEffectRequest:        "EffectRequest",
	EventEnemyStateChanged:    "EnemyStateChanged",
	EventEnemyStrike:          "EnemyStrike",
	EventEnemyParried:         "EnemyParried",
	EventShieldBlock:          "ShieldBlock",
	EventEnemyStaggered:       "EnemyStaggered",
	EventEnemyRedeemed:        "EnemyRedeemed",
	EventBossPhaseChanged:     "BossPhaseChanged",
	EventBossReinforcements:   "BossReinforcements",
	EventArenaHazard:          "ArenaHazard",
	EventPlayerAttackResolved: "PlayerAttackResolved",
	EventPlayerParry:          "PlayerParry",
	EventPerfectBlock:         "PerfectBlock",
	EventPlayerHurt:           "PlayerHurt",
	EventPlayerDefeated:       "PlayerDefeated",
	EventMiracleCast:          "MiracleCast",
	EventPlayerRested:         "PlayerRested",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a typed event with an optional payload pointer
// Frame is the simulation tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
