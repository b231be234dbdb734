package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

type testRoster struct {
	enemies []*enemy.Enemy
	sites   []PrayerSite
}

func (r *testRoster) Enemies() []*enemy.Enemy { return r.enemies }
func (r *testRoster) PrayerSites() []PrayerSite { return r.sites }
func (r *testRoster) Resolve(h core.Handle) (*enemy.Enemy, bool) {
	for _, e := range r.enemies {
		if e.Handle() == h && !e.IsRedeemed() {
			return e, true
		}
	}
	return nil, false
}

func (r *testRoster) spawn(a enemy.Archetype, pos vmath.Vec3F) *enemy.Enemy {
	e := enemy.New(enemy.Config{
		Handle:    core.Handle(len(r.enemies) + 1),
		Archetype: a,
		Position:  pos,
		Roller:    combat.FixedRoller(0.99),
	})
	r.enemies = append(r.enemies, e)
	return e
}

type testProgression struct {
	unlocked map[string]bool
	defeats  int
}

func (t *testProgression) IsMiracleUnlocked(id string) bool {
	return id == parameter.MiracleHeal || t.unlocked[id]
}
func (t *testProgression) NotifyDefeated() { t.defeats++ }

type stubAttacker struct {
	parryable bool
	parried   int
}

func (s *stubAttacker) CanBeParried() bool { return s.parryable }
func (s *stubAttacker) OnParried(combat.Source) { s.parried++ }

type fixture struct {
	p        *Player
	roster   *testRoster
	progress *testProgression
	rec      *event.Recorder
}

func newFixture() *fixture {
	f := &fixture{
		roster:   &testRoster{},
		progress: &testProgression{unlocked: map[string]bool{}},
		rec:      &event.Recorder{},
	}
	f.p = New(Config{
		Facing:      vmath.Vec3F{X: 1},
		Roster:      f.roster,
		Progression: f.progress,
		Events:      f.rec,
	})
	return f
}

func TestLightAttackResolvesExactlyOnce(t *testing.T) {
	for _, step := range []time.Duration{time.Millisecond, 16 * time.Millisecond, time.Second} {
		t.Run(step.String(), func(t *testing.T) {
			f := newFixture()
			target := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 200})

			require.True(t, f.p.TryLightAttack())
			assert.Equal(t, 82.0, f.p.Stamina())
			for i := 0; i < 1000 && f.p.IsAttacking(); i++ {
				f.p.Tick(step)
			}

			assert.False(t, f.p.IsAttacking())
			assert.Equal(t, 1, f.rec.Count(event.EventPlayerAttackResolved))
			assert.Equal(t, 60.0, target.Health())
			assert.Equal(t, 44.0, target.Poise())
			assert.Equal(t, 36.0, f.p.Faith())
		})
	}
}

func TestAttackWithoutTargetStillResolves(t *testing.T) {
	f := newFixture()
	require.True(t, f.p.TryHeavyAttack())
	f.p.Tick(time.Second)

	ev, ok := f.rec.Last(event.EventPlayerAttackResolved)
	require.True(t, ok)
	payload := ev.Payload.(*event.AttackResolvedPayload)
	assert.True(t, payload.Heavy)
	assert.Equal(t, core.InvalidHandle, payload.Target)
	assert.Equal(t, parameter.PlayerStartingFaith, f.p.Faith())
}

func TestHeavyRiposteAgainstParriedEnemy(t *testing.T) {
	f := newFixture()
	e := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 200})
	e.Tick(16*time.Millisecond, f.p)
	e.Tick(16*time.Millisecond, f.p)
	require.Equal(t, enemy.Windup, e.State())
	e.OnParried(f.p)
	require.True(t, e.IsParried())

	require.True(t, f.p.TryHeavyAttack())
	f.p.Tick(time.Second)

	assert.Equal(t, 86.0-63.0, e.Health())
	assert.Equal(t, enemy.Staggered, e.State())
	ev, ok := f.rec.Last(event.EventPlayerAttackResolved)
	require.True(t, ok)
	payload := ev.Payload.(*event.AttackResolvedPayload)
	assert.True(t, payload.Riposte)
	assert.Equal(t, 63.0, payload.Damage)
	// Parry reward only; ripostes grant no attack faith
	assert.Equal(t, parameter.PlayerStartingFaith+parameter.ParryFaithReward, f.p.Faith())
}

func TestActionsRejectedWhileBusy(t *testing.T) {
	f := newFixture()
	require.True(t, f.p.TryLightAttack())
	assert.False(t, f.p.TryHeavyAttack())
	assert.False(t, f.p.TryLightAttack())
	assert.False(t, f.p.TryDodge(vmath.Vec3F{}))
	assert.False(t, f.p.TryParry())

	f.p.Tick(600 * time.Millisecond)
	f.p.vitals.Stamina.Set(10)
	assert.False(t, f.p.TryLightAttack())
	assert.Equal(t, 10.0, f.p.Stamina())
	assert.False(t, f.p.TryParry())
}

func TestFindAttackTargetPrefersLockThenArc(t *testing.T) {
	f := newFixture()
	f.roster.spawn(enemy.Spear, vmath.Vec3F{Y: 200})
	f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 250})
	ahead := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 150})
	behind := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: -100})

	assert.Same(t, ahead, f.p.FindAttackTarget(parameter.LightAttackRange, parameter.LightAttackArcDegrees))

	require.Equal(t, behind.Handle(), f.p.ToggleLockOn())
	assert.Same(t, behind, f.p.FindAttackTarget(parameter.LightAttackRange, parameter.LightAttackArcDegrees))

	assert.Equal(t, core.InvalidHandle, f.p.ToggleLockOn())
	assert.Same(t, ahead, f.p.FindAttackTarget(parameter.LightAttackRange, parameter.LightAttackArcDegrees))
}

func TestFindAttackTargetIgnoresRedeemedAndOverlapping(t *testing.T) {
	f := newFixture()
	gone := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 100})
	gone.BecomeRedeemed(nil, false)
	f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 0.05})

	assert.Nil(t, f.p.FindAttackTarget(parameter.LightAttackRange, parameter.LightAttackArcDegrees))
}

func TestLockClearsOnRedemptionAndDistance(t *testing.T) {
	f := newFixture()
	e := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 500})

	require.True(t, f.p.ToggleLockOn().Valid())
	e.BecomeRedeemed(nil, false)
	f.p.Tick(16 * time.Millisecond)
	assert.False(t, f.p.LockTarget().Valid())

	e.ResetToSpawn()
	require.True(t, f.p.ToggleLockOn().Valid())
	f.p.SetPosition(vmath.Vec3F{X: 500 + parameter.LockOnRange*parameter.LockOnBreakFactor + 10})
	f.p.Tick(16 * time.Millisecond)
	assert.False(t, f.p.LockTarget().Valid())
}

func TestLockOnIgnoresOutOfRange(t *testing.T) {
	f := newFixture()
	f.roster.spawn(enemy.Spear, vmath.Vec3F{X: parameter.LockOnRange + 1})
	assert.Equal(t, core.InvalidHandle, f.p.ToggleLockOn())
}

func TestParryWindowConvertsEnemyAttack(t *testing.T) {
	f := newFixture()
	e := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 200})
	e.Tick(16*time.Millisecond, f.p)
	e.Tick(16*time.Millisecond, f.p)
	e.Tick(200*time.Millisecond, f.p)
	require.True(t, e.CanBeParried())

	require.True(t, f.p.TryParry())
	assert.Equal(t, 80.0, f.p.Stamina())
	assert.False(t, f.p.ParryWindowOpen())
	f.p.Tick(parameter.ParryStartup)
	require.True(t, f.p.ParryWindowOpen())

	f.p.ReceiveEnemyAttack(e, 20, 24)

	assert.Equal(t, enemy.Parried, e.State())
	assert.Equal(t, parameter.PlayerMaxHealth, f.p.Health())
	assert.Equal(t, parameter.PlayerStartingFaith+parameter.PlayerParryFaith+parameter.ParryFaithReward, f.p.Faith())
	assert.False(t, f.p.ParryWindowOpen())
	assert.Equal(t, 1, f.rec.Count(event.EventPlayerParry))
}

func TestParryWindowTiming(t *testing.T) {
	f := newFixture()
	require.True(t, f.p.TryParry())
	f.p.Tick(40 * time.Millisecond)
	assert.False(t, f.p.ParryWindowOpen())
	f.p.Tick(40 * time.Millisecond)
	assert.True(t, f.p.ParryWindowOpen())
	f.p.Tick(parameter.ParryWindow - time.Millisecond)
	assert.True(t, f.p.ParryWindowOpen())
	f.p.Tick(time.Millisecond)
	assert.False(t, f.p.ParryWindowOpen())
}

func TestParryWindowIgnoresUnparryableAttack(t *testing.T) {
	f := newFixture()
	require.True(t, f.p.TryParry())
	f.p.Tick(parameter.ParryStartup)

	att := &stubAttacker{}
	f.p.ReceiveEnemyAttack(att, 20, 10)
	assert.Zero(t, att.parried)
	assert.Equal(t, 100.0, f.p.Health())
	assert.True(t, f.p.ParryWindowOpen())
}

func TestDodgeInvulnerabilityVoidsDamage(t *testing.T) {
	f := newFixture()
	require.True(t, f.p.TryDodge(vmath.Vec3F{Y: 1}))
	assert.Equal(t, 74.0, f.p.Stamina())

	f.p.ReceiveEnemyAttack(&stubAttacker{}, 50, 50)
	assert.Equal(t, parameter.PlayerMaxHealth, f.p.Health())
	assert.Zero(t, f.rec.Count(event.EventPlayerHurt))

	f.p.Tick(100 * time.Millisecond)
	assert.InDelta(t, 112.0, f.p.Position().Y, 1e-6)
	assert.InDelta(t, 0.0, f.p.Position().X, 1e-9)

	f.p.Tick(150 * time.Millisecond)
	assert.False(t, f.p.IsInvulnerable())
	f.p.ReceiveEnemyAttack(&stubAttacker{}, 10, 0)
	assert.Equal(t, 110.0, f.p.Health())
}

func TestDodgeCancelsPendingAttack(t *testing.T) {
	f := newFixture()
	require.True(t, f.p.TryLightAttack())
	f.p.attackCooldown.Clear()

	require.True(t, f.p.TryDodge(vmath.Vec3F{}))
	assert.False(t, f.p.IsAttacking())
	f.p.Tick(time.Second)
	assert.Zero(t, f.rec.Count(event.EventPlayerAttackResolved))
}

func TestBlessingScalesIncomingDamage(t *testing.T) {
	f := newFixture()
	assert.False(t, f.p.TryBlessing())

	f.progress.unlocked[parameter.MiracleBlessing] = true
	require.True(t, f.p.TryBlessing())
	assert.Equal(t, 13.0, f.p.Faith())
	assert.True(t, f.p.IsBlessed())

	f.p.ReceiveEnemyAttack(&stubAttacker{}, 20, 0)
	assert.InDelta(t, 120-20*parameter.BlessingDamageScale, f.p.Health(), 1e-9)
	assert.False(t, f.p.TryBlessing())
}

func TestBlockConvertsPostureToStamina(t *testing.T) {
	f := newFixture()
	f.p.StartBlock()
	f.p.Tick(200 * time.Millisecond)
	require.True(t, f.p.IsBlocking())
	assert.Equal(t, 100.0, f.p.Stamina())

	f.p.ReceiveEnemyAttack(&stubAttacker{}, 30, 25)
	assert.InDelta(t, 70.0, f.p.Stamina(), 1e-9)
	assert.Equal(t, parameter.PlayerMaxHealth, f.p.Health())
	assert.Zero(t, f.rec.Count(event.EventPerfectBlock))
}

func TestPerfectBlock(t *testing.T) {
	f := newFixture()
	f.p.StartBlock()

	f.p.ReceiveEnemyAttack(&stubAttacker{}, 30, 25)
	assert.InDelta(t, 100-25*1.2*0.45, f.p.Stamina(), 1e-9)
	assert.Equal(t, parameter.PlayerMaxHealth, f.p.Health())
	assert.Equal(t, 36.0, f.p.Faith())
	assert.Equal(t, 1, f.rec.Count(event.EventPerfectBlock))
}

func TestGuardBreakChipDamage(t *testing.T) {
	f := newFixture()
	f.p.StartBlock()
	f.p.Tick(200 * time.Millisecond)
	f.p.vitals.Stamina.Set(10)

	f.p.ReceiveEnemyAttack(&stubAttacker{}, 40, 25)
	assert.Equal(t, 0.0, f.p.Stamina())
	assert.InDelta(t, 120-40*parameter.BlockChipFactor, f.p.Health(), 1e-9)

	// No stamina left: the guard no longer absorbs
	f.p.ReceiveEnemyAttack(&stubAttacker{}, 10, 25)
	assert.InDelta(t, 120-14-10, f.p.Health(), 1e-9)
}

func TestBlockInterruptedByAttack(t *testing.T) {
	f := newFixture()
	f.p.StartBlock()
	require.True(t, f.p.TryLightAttack())
	f.p.Tick(10 * time.Millisecond)
	assert.False(t, f.p.IsBlocking())
}

func TestDefeatRespawnsAtNearestSite(t *testing.T) {
	f := newFixture()
	f.roster.sites = []PrayerSite{
		{ID: "far", Position: vmath.Vec3F{X: 1000}},
		{ID: "near", Position: vmath.Vec3F{X: 300}, Respawn: vmath.Vec3F{X: 320, Y: 10}},
	}
	e := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 500, Y: 500})
	e.ReceiveHit(30, 0, nil)
	f.p.ToggleLockOn()
	require.True(t, f.p.LockTarget().Valid())

	f.p.ReceiveEnemyAttack(&stubAttacker{}, 500, 0)

	assert.Equal(t, 1, f.progress.defeats)
	assert.Equal(t, vmath.Vec3F{X: 320, Y: 10}, f.p.Position())
	assert.Equal(t, f.p.MaxHealth(), f.p.Health())
	assert.Equal(t, f.p.MaxStamina(), f.p.Stamina())
	assert.Equal(t, 52.5, f.p.Faith())
	assert.Equal(t, "near", f.p.LastRestSiteID())
	assert.Equal(t, e.MaxHealth(), e.Health())
	assert.False(t, f.p.LockTarget().Valid())
	assert.Zero(t, f.p.HurtRemaining())

	ev, ok := f.rec.Last(event.EventPlayerDefeated)
	require.True(t, ok)
	assert.Equal(t, "near", ev.Payload.(*event.PlayerDefeatedPayload).SiteID)
}

func TestDefeatWithoutSiteUsesFallback(t *testing.T) {
	f := newFixture()
	f.p.SetPosition(vmath.Vec3F{X: 900, Y: -40})
	f.p.ReceiveEnemyAttack(&stubAttacker{}, 1000, 0)

	assert.Equal(t, vmath.Vec3F{Z: 180}, f.p.Position())
	assert.Equal(t, f.p.MaxHealth(), f.p.Health())
	assert.Equal(t, 1, f.progress.defeats)
}

func TestRestFaithCapped(t *testing.T) {
	f := newFixture()
	site := PrayerSite{ID: "altar"}

	f.p.vitals.SetFaith(60)
	f.p.RestAtPrayerSite(site)
	assert.Equal(t, 70.0, f.p.Faith())

	f.p.vitals.SetFaith(100)
	f.p.RestAtPrayerSite(site)
	assert.Equal(t, 70.0, f.p.Faith())
}

func TestRestRequiresActiveSite(t *testing.T) {
	f := newFixture()
	assert.False(t, f.p.Rest())

	f.roster.sites = []PrayerSite{{ID: "altar", Position: vmath.Vec3F{X: 100}}}
	_, ok := f.p.ActiveSite()
	require.True(t, ok)
	assert.True(t, f.p.Rest())
	assert.Equal(t, "altar", f.p.LastRestSiteID())
	assert.Equal(t, 1, f.rec.Count(event.EventPlayerRested))
}

func TestStaminaRegeneration(t *testing.T) {
	f := newFixture()
	f.p.vitals.Stamina.Set(20)
	f.p.Tick(time.Second)
	assert.InDelta(t, 42.0, f.p.Stamina(), 1e-9)

	f.p.blessing.Set(5 * time.Second)
	f.p.Tick(time.Second)
	assert.InDelta(t, 42+22*1.35, f.p.Stamina(), 1e-9)

	f.p.StartBlock()
	before := f.p.Stamina()
	f.p.Tick(time.Second)
	assert.Equal(t, before, f.p.Stamina())
}

func TestRegenSuppressedDuringCooldown(t *testing.T) {
	f := newFixture()
	require.True(t, f.p.TryLightAttack())
	f.p.Tick(400 * time.Millisecond)
	assert.Equal(t, 82.0, f.p.Stamina())
}

func TestSpeedScaleTakesLowestConstraint(t *testing.T) {
	f := newFixture()
	f.p.StartBlock()
	f.p.Tick(10 * time.Millisecond)
	assert.Equal(t, parameter.MoveScaleBlocking, f.p.SpeedScale())

	f.p.hurtTimer.Set(time.Second)
	f.p.Tick(10 * time.Millisecond)
	assert.Equal(t, parameter.MoveScaleHurt, f.p.SpeedScale())

	g := newFixture()
	require.True(t, g.p.TryLightAttack())
	g.p.Tick(10 * time.Millisecond)
	assert.Equal(t, parameter.MoveScaleWindup, g.p.SpeedScale())
	g.p.Tick(150 * time.Millisecond)
	g.p.Tick(10 * time.Millisecond)
	assert.Equal(t, parameter.MoveScaleActive, g.p.SpeedScale())

	g.p.Tick(time.Second)
	g.p.Tick(time.Second)
	assert.Equal(t, 1.0, g.p.SpeedScale())
}

func TestWalkFollowsIntent(t *testing.T) {
	f := newFixture()
	f.p.SetMoveIntent(vmath.Vec3F{X: 3, Y: 4})
	f.p.Tick(100 * time.Millisecond)
	assert.InDelta(t, 0.6*58, f.p.Position().X, 1e-6)
	assert.InDelta(t, 0.8*58, f.p.Position().Y, 1e-6)
	assert.InDelta(t, 0.8, f.p.Facing().Y, 1e-9)
}

func TestHealGates(t *testing.T) {
	f := newFixture()
	assert.False(t, f.p.TryHeal(), "full health")

	f.p.ReceiveEnemyAttack(&stubAttacker{}, 50, 0)
	f.p.hurtTimer.Clear()
	require.True(t, f.p.TryHeal())
	assert.Equal(t, 115.0, f.p.Health())
	assert.Equal(t, 17.0, f.p.Faith())
	assert.GreaterOrEqual(t, f.p.attackCooldown.Remaining, parameter.MiracleAttackLockout)
	assert.False(t, f.p.TryHeal(), "cooldown")

	heal, _, _ := f.p.MiracleCooldowns()
	assert.Equal(t, parameter.HealCooldown, heal)
}

func TestRadianceStrikesAreaTargets(t *testing.T) {
	f := newFixture()
	near := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 300})
	far := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 700})
	gone := f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 100})
	gone.BecomeRedeemed(nil, false)

	assert.False(t, f.p.TryRadiance(), "locked")
	f.progress.unlocked[parameter.MiracleRadiance] = true
	f.p.vitals.SetFaith(20)
	assert.False(t, f.p.TryRadiance(), "faith")

	f.p.vitals.SetFaith(40)
	require.True(t, f.p.TryRadiance())
	assert.Equal(t, 10.0, f.p.Faith())
	assert.Equal(t, 54.0, near.Health())
	assert.Greater(t, near.Velocity().X, 0.0)
	assert.Equal(t, far.MaxHealth(), far.Health())
	assert.GreaterOrEqual(t, f.p.attackCooldown.Remaining, parameter.RadianceAttackLockout)

	ev, ok := f.rec.Last(event.EventMiracleCast)
	require.True(t, ok)
	assert.Equal(t, 1, ev.Payload.(*event.MiracleCastPayload).Hits)
}

func TestCastMiracleUnknown(t *testing.T) {
	f := newFixture()
	assert.False(t, f.p.CastMiracle("smite"))
}

func TestSkillModifiers(t *testing.T) {
	f := newFixture()
	f.p.ApplySkillModifiers([]string{parameter.SkillSmite, parameter.SkillShepherdGuard, parameter.SkillSteadfast, "unknown"})

	s := f.p.Stats()
	assert.InDelta(t, 26*1.1, s.LightDamage, 1e-9)
	assert.InDelta(t, 42*1.1, s.HeavyDamage, 1e-9)
	assert.InDelta(t, 22*1.15, s.StaminaRegen, 1e-9)
	assert.Equal(t, 134.0, f.p.MaxHealth())
	assert.Equal(t, 118.0, f.p.MaxStamina())
	assert.Equal(t, 120.0, f.p.Health())

	f.p.SetCampaignBaseVitals(130, 110, true)
	assert.Equal(t, 144.0, f.p.MaxHealth())
	assert.Equal(t, 144.0, f.p.Health())
	assert.Equal(t, 128.0, f.p.Stamina())

	f.p.ApplySkillModifiers(nil)
	assert.Equal(t, 130.0, f.p.MaxHealth())
	assert.Equal(t, 130.0, f.p.Health())
	assert.Equal(t, BaseStats(), f.p.Stats())
}

func TestSnapshotRoundTripResetsTransients(t *testing.T) {
	f := newFixture()
	f.roster.spawn(enemy.Spear, vmath.Vec3F{X: 400})
	f.p.SetPosition(vmath.Vec3F{X: 12.5, Y: -3, Z: 1})
	f.p.ReceiveEnemyAttack(&stubAttacker{}, 33, 0)
	f.p.vitals.SetFaith(41.25)
	f.p.lastRestSiteID = "altar"

	snap := f.p.BuildSnapshot()

	f.p.hurtTimer.Clear()
	f.p.ToggleLockOn()
	require.True(t, f.p.TryParry())
	f.p.Tick(parameter.ParryStartup)
	f.p.StartBlock()
	f.p.blessing.Set(time.Second)
	f.p.healCooldown.Set(time.Second)
	f.p.radianceCooldown.Set(time.Second)
	f.p.blessingCooldown.Set(time.Second)
	f.p.invulnerable.Set(time.Second)
	f.p.dodgeTimer.Set(time.Second)
	f.p.pending.arm(AttackHeavy, time.Second, time.Second)
	f.p.SetPosition(vmath.Vec3F{X: 999})
	f.p.vitals.Health.Set(1)
	f.p.vitals.SetFaith(0)

	f.p.ApplySnapshot(snap)

	assert.Equal(t, snap, f.p.BuildSnapshot())
	assert.Equal(t, "altar", f.p.LastRestSiteID())
	assert.False(t, f.p.IsAttacking())
	assert.False(t, f.p.IsBlocking())
	assert.False(t, f.p.LockTarget().Valid())
	for name, timer := range map[string]time.Duration{
		"attackCooldown":   f.p.attackCooldown.Remaining,
		"dodge":            f.p.dodgeTimer.Remaining,
		"invulnerable":     f.p.invulnerable.Remaining,
		"parryStartup":     f.p.parryStartup.Remaining,
		"parryWindow":      f.p.parryWindow.Remaining,
		"perfectBlock":     f.p.perfectBlock.Remaining,
		"hurt":             f.p.hurtTimer.Remaining,
		"blessing":         f.p.blessing.Remaining,
		"healCooldown":     f.p.healCooldown.Remaining,
		"blessingCooldown": f.p.blessingCooldown.Remaining,
		"radianceCooldown": f.p.radianceCooldown.Remaining,
	} {
		assert.Zero(t, timer, name)
	}
}

func TestApplySnapshotClamps(t *testing.T) {
	f := newFixture()
	f.p.ApplySnapshot(Snapshot{Health: 9999, Stamina: -5, Faith: -1})
	assert.Equal(t, f.p.MaxHealth(), f.p.Health())
	assert.Equal(t, 0.0, f.p.Stamina())
	assert.Equal(t, 0.0, f.p.Faith())
}
