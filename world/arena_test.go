package world

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nazarene/campaign"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/player"
	"github.com/lixenwraith/nazarene/vmath"
)

type memoryStore struct {
	slots map[int][]byte
	err   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{slots: make(map[int][]byte)}
}

func (s *memoryStore) SaveSnapshot(_ context.Context, slot int, payload []byte) error {
	if s.err != nil {
		return s.err
	}
	s.slots[slot] = payload
	return nil
}

func (s *memoryStore) LoadSnapshot(_ context.Context, slot int) ([]byte, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	data, ok := s.slots[slot]
	return data, ok, nil
}

type recordingPresenter struct {
	sounds  []core.SoundType
	effects []core.EffectType
}

func (p *recordingPresenter) PlaySound(s core.SoundType, _ vmath.Vec3F) {
	p.sounds = append(p.sounds, s)
}

func (p *recordingPresenter) TriggerEffect(e core.EffectType, _ vmath.Vec3F) {
	p.effects = append(p.effects, e)
}

var testSite = player.PrayerSite{ID: "site_01", Name: "Prayer Site: Shore"}

func newTestArena(t *testing.T, store SnapshotStore) *Arena {
	t.Helper()
	a := New(Config{Store: store, Seed: 7})
	a.AddPrayerSite(testSite)
	return a
}

func TestSpawnAssignsHandlesAndSpawnIDs(t *testing.T) {
	a := newTestArena(t, nil)

	first := a.SpawnEnemy(SpawnSpec{SpawnID: "spear_01", Archetype: enemy.Spear})
	second := a.SpawnEnemy(SpawnSpec{Archetype: enemy.Demon})

	assert.Equal(t, core.Handle(1), first.Handle())
	assert.Equal(t, core.Handle(2), second.Handle())
	assert.Equal(t, "spear_01", first.SpawnID())
	_, err := uuid.Parse(second.SpawnID())
	assert.NoError(t, err)
	assert.Equal(t, []*enemy.Enemy{first, second}, a.Enemies())
}

func TestSpawnUsesProfileOverride(t *testing.T) {
	override := enemy.ProfileFor(enemy.Spear)
	override.MaxHealth = 200
	a := New(Config{Profiles: map[enemy.Archetype]enemy.Profile{enemy.Spear: override}})

	e := a.SpawnEnemy(SpawnSpec{Archetype: enemy.Spear})
	assert.Equal(t, 200.0, e.MaxHealth())
}

func TestResolveFailsForRedeemedAndRemoved(t *testing.T) {
	a := newTestArena(t, nil)
	e := a.SpawnEnemy(SpawnSpec{Archetype: enemy.Spear, Position: vmath.Vec3F{X: 1000}})

	got, ok := a.Resolve(e.Handle())
	require.True(t, ok)
	assert.Same(t, e, got)

	e.BecomeRedeemed(nil, false)
	_, ok = a.Resolve(e.Handle())
	assert.False(t, ok)
	assert.Len(t, a.Enemies(), 1)

	assert.True(t, a.Remove(e.Handle()))
	assert.False(t, a.Remove(e.Handle()))
	assert.Empty(t, a.Enemies())
	_, ok = a.Resolve(core.InvalidHandle)
	assert.False(t, ok)
}

func TestAddPrayerSiteReplacesByID(t *testing.T) {
	a := newTestArena(t, nil)
	a.AddPrayerSite(player.PrayerSite{ID: testSite.ID, Name: "Renamed"})
	a.AddPrayerSite(player.PrayerSite{ID: "site_02"})

	sites := a.PrayerSites()
	require.Len(t, sites, 2)
	assert.Equal(t, "Renamed", sites[0].Name)
}

func TestTickIgnoresNonPositiveStep(t *testing.T) {
	a := newTestArena(t, nil)
	a.Tick(0)
	assert.Zero(t, a.Frame())
	a.Tick(time.Millisecond)
	assert.Equal(t, int64(1), a.Frame())
}

func TestAttackUpdatesMetrics(t *testing.T) {
	a := newTestArena(t, nil)
	e := a.SpawnEnemy(SpawnSpec{Archetype: enemy.Spear, Position: vmath.Vec3F{X: 150}})

	require.True(t, a.Player().TryLightAttack())
	for i := 0; i < 5; i++ {
		a.Tick(50 * time.Millisecond)
	}

	m := a.Metrics()
	assert.Equal(t, int64(1), m.PlayerHits.Load())
	assert.Equal(t, parameter.LightAttackDamage, m.DamageDealt.Get())
	assert.Equal(t, e.MaxHealth()-parameter.LightAttackDamage, e.Health())
}

func TestPresenterReceivesCues(t *testing.T) {
	pres := &recordingPresenter{}
	a := New(Config{Presenter: pres})

	require.True(t, a.Player().TryLightAttack())
	a.Drain()

	assert.Contains(t, pres.sounds, core.SoundSwing)
}

func TestRedemptionFeedsCampaign(t *testing.T) {
	a := newTestArena(t, nil)
	e := a.SpawnEnemy(SpawnSpec{SpawnID: "spear_01", Archetype: enemy.Spear, Position: vmath.Vec3F{X: 1000}})

	e.BecomeRedeemed(a.Player(), true)
	a.Drain()

	assert.Equal(t, 48, a.Campaign().TotalXP())
	assert.Equal(t, int64(1), a.Metrics().Redemptions.Load())
	assert.Equal(t, "Roman Spearman redeemed (+48 XP)", a.Hint())
}

func TestBossRewardRaisesAndRestoresVitals(t *testing.T) {
	a := newTestArena(t, nil)
	boss := a.SpawnEnemy(SpawnSpec{SpawnID: "galilee_named_boss_01", Archetype: enemy.Boss, Position: vmath.Vec3F{Y: -2200}})

	p := a.Player()
	p.ReceiveEnemyAttack(nil, 50, 0)
	require.Equal(t, 70.0, p.Health())

	boss.BecomeRedeemed(p, true)
	a.Drain()

	assert.Equal(t, 130.0, p.MaxHealth())
	assert.Equal(t, 130.0, p.Health())
	assert.Equal(t, 106.0, p.MaxStamina())
	assert.True(t, a.Campaign().IsMiracleUnlocked(parameter.MiracleBlessing))
	assert.Equal(t, "Blessings strengthened. The way forward is open.", a.Hint())
}

func TestBossReinforcementsSpawnOnceAndPruneOnRest(t *testing.T) {
	a := newTestArena(t, nil)
	boss := a.SpawnEnemy(SpawnSpec{SpawnID: "boss", Archetype: enemy.Boss, Position: vmath.Vec3F{Y: -2200}})
	a.SetReinforcements("boss", 2, []SpawnSpec{
		{SpawnID: "add_01", Archetype: enemy.Demon, Position: vmath.Vec3F{X: 600, Y: -2000}},
		{SpawnID: "add_02", Archetype: enemy.Demon, Position: vmath.Vec3F{X: -600, Y: -2000}},
	})

	wave := event.GameEvent{Type: event.EventBossReinforcements, Payload: &event.BossPhasePayload{Handle: boss.Handle(), From: 1, To: 2}}
	a.queue.Push(wave)
	a.Drain()
	require.Len(t, a.Enemies(), 3)
	_, ok := a.FindBySpawnID("add_01")
	assert.True(t, ok)

	a.queue.Push(wave)
	a.Drain()
	assert.Len(t, a.Enemies(), 3)

	payload := a.BuildPayload()
	assert.Len(t, payload.Enemies, 1)

	require.True(t, a.Rest())
	assert.Len(t, a.Enemies(), 1)
}

func TestRestConsecratesSiteOnce(t *testing.T) {
	a := newTestArena(t, nil)

	require.True(t, a.Rest())
	assert.True(t, a.Campaign().IsSiteConsecrated(testSite.ID))
	assert.Equal(t, "Prayer Site: Shore consecrated.", a.Hint())

	require.True(t, a.Rest())
	assert.Equal(t, "Rested at Prayer Site: Shore.", a.Hint())

	a.Player().SetPosition(vmath.Vec3F{X: 5000})
	assert.False(t, a.Rest())
	assert.Equal(t, "Rest at a prayer site to save.", a.Hint())
}

func TestUnlockSkillRefreshesStats(t *testing.T) {
	a := newTestArena(t, nil)
	a.Campaign().Restore(campaign.State{SkillPoints: 1, TotalXP: 100})

	require.NoError(t, a.UnlockSkill(parameter.SkillShepherdGuard))
	assert.Equal(t, 134.0, a.Player().MaxHealth())
	assert.Zero(t, a.Campaign().SkillPoints())

	assert.ErrorIs(t, a.UnlockSkill("nope"), campaign.ErrUnknownSkill)
}

func TestDefeatCountsRetry(t *testing.T) {
	a := newTestArena(t, nil)
	a.Player().ReceiveEnemyAttack(nil, 500, 0)
	a.Drain()

	assert.Equal(t, 1, a.Campaign().RetryCount(0))
	assert.Equal(t, int64(1), a.Metrics().Defeats.Load())
	assert.Equal(t, testSite.ID, a.Player().LastRestSiteID())
}

func TestSaveRequiresPrayerSite(t *testing.T) {
	store := newMemoryStore()
	a := newTestArena(t, store)
	a.Player().SetPosition(vmath.Vec3F{X: 5000})

	ok, hint := a.SaveToSlot(context.Background(), 1)
	assert.False(t, ok)
	assert.Equal(t, "Rest at a prayer site to save.", hint)

	ok, hint = a.LoadFromSlot(context.Background(), 1)
	assert.False(t, ok)
	assert.Equal(t, "Rest at a prayer site to save.", hint)
	assert.Empty(t, store.slots)
}

func TestSaveRejectsInvalidSlotAndStoreErrors(t *testing.T) {
	store := newMemoryStore()
	a := newTestArena(t, store)

	ok, hint := a.SaveToSlot(context.Background(), 0)
	assert.False(t, ok)
	assert.Equal(t, "Save failed for slot 0.", hint)

	store.err = errors.New("disk full")
	ok, hint = a.SaveToSlot(context.Background(), 2)
	assert.False(t, ok)
	assert.Equal(t, "Save failed for slot 2.", hint)

	ok, hint = a.LoadFromSlot(context.Background(), 2)
	assert.False(t, ok)
	assert.Equal(t, "Load failed for slot 2.", hint)
}

func TestLoadMissingSlot(t *testing.T) {
	a := newTestArena(t, newMemoryStore())
	ok, hint := a.LoadFromSlot(context.Background(), 2)
	assert.False(t, ok)
	assert.Equal(t, "No save data in slot 2.", hint)
}

func TestLoadRejectsCorruptPayload(t *testing.T) {
	store := newMemoryStore()
	store.slots[1] = []byte("{not json")
	a := newTestArena(t, store)

	ok, hint := a.LoadFromSlot(context.Background(), 1)
	assert.False(t, ok)
	assert.Equal(t, "Load failed for slot 1.", hint)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newMemoryStore()
	a := newTestArena(t, store)
	p := a.Player()

	spearA := a.SpawnEnemy(SpawnSpec{SpawnID: "spear_a", Archetype: enemy.Spear, Position: vmath.Vec3F{X: 1000}})
	spearB := a.SpawnEnemy(SpawnSpec{SpawnID: "spear_b", Archetype: enemy.Spear, Position: vmath.Vec3F{X: -1000}})
	spearA.ReceiveHit(20, 0, p)
	require.Equal(t, 66.0, spearA.Health())

	ok, hint := a.SaveToSlot(context.Background(), 1)
	require.True(t, ok)
	assert.Equal(t, "Saved to slot 1.", hint)
	require.Contains(t, store.slots, 1)

	spearA.ReceiveHit(30, 0, p)
	spearB.BecomeRedeemed(nil, false)
	p.AddFaith(10)
	a.Campaign().UnlockMiracle(parameter.MiracleRadiance)
	late := a.SpawnEnemy(SpawnSpec{SpawnID: "late", Archetype: enemy.Demon, Position: vmath.Vec3F{Y: 1500}})
	late.ReceiveHit(10, 0, p)
	late.SetPosition(vmath.Vec3F{Y: 1200})

	ok, hint = a.LoadFromSlot(context.Background(), 1)
	require.True(t, ok)
	assert.Equal(t, "Loaded slot 1.", hint)

	assert.Equal(t, 66.0, spearA.Health())
	assert.Equal(t, enemy.Idle, spearA.State())
	assert.False(t, spearB.IsRedeemed())
	assert.Equal(t, spearB.MaxHealth(), spearB.Health())
	assert.Equal(t, parameter.PlayerStartingFaith, p.Faith())
	assert.False(t, a.Campaign().IsMiracleUnlocked(parameter.MiracleRadiance))
	assert.Equal(t, late.MaxHealth(), late.Health())
	assert.Equal(t, vmath.Vec3F{Y: 1500}, late.Position())
}

func TestLoadKeepsRedeemedEnemiesWithoutReward(t *testing.T) {
	store := newMemoryStore()
	a := newTestArena(t, store)
	e := a.SpawnEnemy(SpawnSpec{SpawnID: "spear_a", Archetype: enemy.Spear, Position: vmath.Vec3F{X: 1000}})
	e.BecomeRedeemed(a.Player(), true)
	a.Drain()
	xp := a.Campaign().TotalXP()

	ok, _ := a.SaveToSlot(context.Background(), 3)
	require.True(t, ok)
	e.ResetToSpawn()

	ok, _ = a.LoadFromSlot(context.Background(), 3)
	require.True(t, ok)
	assert.True(t, e.IsRedeemed())
	assert.Equal(t, xp, a.Campaign().TotalXP())
	assert.Equal(t, int64(1), a.Metrics().Redemptions.Load())
}
