package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/event"
)

const (
	hintRestRequired   = "Rest at a prayer site to save."
	hintSaved          = "Saved to slot %d."
	hintSaveFailed     = "Save failed for slot %d."
	hintLoaded         = "Loaded slot %d."
	hintLoadFailed     = "Load failed for slot %d."
	hintNoSave         = "No save data in slot %d."
	hintRedeemed       = "%s redeemed (+%d XP)"
	hintLevelUp        = "Level %d reached. Skill point earned."
	hintRegionReward   = "Blessings strengthened. The way forward is open."
	hintRegionComplete = "The way forward is open."
	hintRested         = "Rested at %s."
	hintConsecrated    = "%s consecrated."
)

// progressionHandler feeds redemptions and rests into the campaign
type progressionHandler struct{}

func (h *progressionHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventEnemyRedeemed, event.EventPlayerRested}
}

func (h *progressionHandler) HandleEvent(a *Arena, ev event.GameEvent) {
	switch ev.Type {
	case event.EventEnemyRedeemed:
		p, ok := ev.Payload.(*event.EnemyRedeemedPayload)
		if !ok {
			return
		}
		out := a.campaign.NotifyRedeemed(p.SpawnID, p.FaithReward)

		name := p.SpawnID
		if e, ok := a.byHandle[p.Handle]; ok {
			name = e.Name()
		}
		a.setHint(fmt.Sprintf(hintRedeemed, name, out.XP))
		if out.LevelsGained > 0 {
			a.setHint(fmt.Sprintf(hintLevelUp, a.campaign.Level()))
		}
		if out.BossRegion != "" {
			if out.RewardApplied {
				a.syncProgression(true)
				a.setHint(hintRegionReward)
			} else {
				a.setHint(hintRegionComplete)
			}
		}

	case event.EventPlayerRested:
		p, ok := ev.Payload.(*event.RestPayload)
		if !ok {
			return
		}
		name := p.SiteID
		for _, s := range a.sites {
			if s.ID == p.SiteID && s.Name != "" {
				name = s.Name
			}
		}
		if a.campaign.NotifyPrayerSiteRest(p.SiteID) {
			a.setHint(fmt.Sprintf(hintConsecrated, name))
		} else {
			a.setHint(fmt.Sprintf(hintRested, name))
		}
	}
}

// waveKey identifies a reinforcement wave by boss spawn id and phase
type waveKey struct {
	boss  string
	phase int
}

// SetReinforcements registers the adds spawned when the boss with bossSpawnID enters phase
func (a *Arena) SetReinforcements(bossSpawnID string, phase int, specs []SpawnSpec) {
	a.waves[waveKey{boss: bossSpawnID, phase: phase}] = specs
}

// reinforcementHandler spawns boss waves and prunes them when the fight resets
type reinforcementHandler struct{}

func (h *reinforcementHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventBossReinforcements, event.EventPlayerRested, event.EventPlayerDefeated}
}

func (h *reinforcementHandler) HandleEvent(a *Arena, ev event.GameEvent) {
	if ev.Type != event.EventBossReinforcements {
		a.pruneTransient()
		return
	}
	p, ok := ev.Payload.(*event.BossPhasePayload)
	if !ok {
		return
	}
	boss, ok := a.byHandle[p.Handle]
	if !ok {
		return
	}
	for _, spec := range a.waves[waveKey{boss: boss.SpawnID(), phase: p.To}] {
		if _, exists := a.FindBySpawnID(spec.SpawnID); exists && spec.SpawnID != "" {
			continue
		}
		e := a.SpawnEnemy(spec)
		a.transient[e.Handle()] = true
	}
	a.log.Info("boss reinforcements",
		zap.String("boss", boss.SpawnID()),
		zap.Int("phase", p.To))
}

// presentationHandler forwards cue requests to the presenter
type presentationHandler struct{}

func (h *presentationHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest, event.EventEffectRequest}
}

func (h *presentationHandler) HandleEvent(a *Arena, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.SoundRequestPayload:
		a.presenter.PlaySound(p.Sound, p.At)
	case *event.EffectRequestPayload:
		a.presenter.TriggerEffect(p.Effect, p.At)
	}
}

// metricsHandler updates the combat counters read by the HUD
type metricsHandler struct{}

func (h *metricsHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerAttackResolved,
		event.EventShieldBlock,
		event.EventEnemyParried,
		event.EventPerfectBlock,
		event.EventEnemyStaggered,
		event.EventEnemyRedeemed,
		event.EventPlayerDefeated,
		event.EventMiracleCast,
		event.EventEnemyStrike,
		event.EventPlayerHurt,
		event.EventBossPhaseChanged,
	}
}

func (h *metricsHandler) HandleEvent(a *Arena, ev event.GameEvent) {
	m := a.metrics
	switch ev.Type {
	case event.EventPlayerAttackResolved:
		p, ok := ev.Payload.(*event.AttackResolvedPayload)
		if !ok || !p.Target.Valid() {
			return
		}
		if p.Riposte {
			m.Ripostes.Add(1)
		} else {
			m.PlayerHits.Add(1)
		}
		m.DamageDealt.Add(p.Damage)
	case event.EventShieldBlock:
		m.ShieldBlocks.Add(1)
	case event.EventEnemyParried:
		m.Parries.Add(1)
	case event.EventPerfectBlock:
		m.PerfectBlocks.Add(1)
	case event.EventEnemyStaggered:
		m.Staggers.Add(1)
	case event.EventEnemyRedeemed:
		m.Redemptions.Add(1)
	case event.EventPlayerDefeated:
		m.Defeats.Add(1)
	case event.EventMiracleCast:
		m.Miracles.Add(1)
	case event.EventEnemyStrike:
		if p, ok := ev.Payload.(*event.EnemyStrikePayload); ok && p.Connected {
			m.EnemyStrikes.Add(1)
		}
	case event.EventPlayerHurt:
		if p, ok := ev.Payload.(*event.PlayerHurtPayload); ok {
			m.DamageTaken.Add(p.Damage)
		}
	case event.EventBossPhaseChanged:
		if p, ok := ev.Payload.(*event.BossPhasePayload); ok {
			m.BossPhase.Store(int64(p.To))
		}
	}
}

// logHandler writes every gameplay event; cue requests and state changes go to debug
type logHandler struct{}

func (h *logHandler) EventTypes() []event.EventType {
	return nil
}

func (h *logHandler) HandleEvent(a *Arena, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSoundRequest, event.EventEffectRequest, event.EventEnemyStateChanged:
		if ce := a.log.Check(zap.DebugLevel, "event"); ce != nil {
			ce.Write(zap.Stringer("type", ev.Type), zap.Int64("frame", ev.Frame), zap.Any("payload", ev.Payload))
		}
	default:
		a.log.Info("event", zap.Stringer("type", ev.Type), zap.Int64("frame", ev.Frame), zap.Any("payload", ev.Payload))
	}
}
