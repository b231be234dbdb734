package world

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/campaign"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/player"
)

// SnapshotStore persists encoded payloads by slot
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, slot int, payload []byte) error
	LoadSnapshot(ctx context.Context, slot int) ([]byte, bool, error)
}

// Payload is everything a save slot restores
type Payload struct {
	Player   player.Snapshot  `json:"player"`
	Enemies  []enemy.Snapshot `json:"enemies"`
	Campaign campaign.State   `json:"campaign"`
}

// BuildPayload captures the player, every permanent enemy and the campaign
// Reinforcements are omitted; they respawn from their boss's phase
func (a *Arena) BuildPayload() Payload {
	p := Payload{
		Player:   a.player.BuildSnapshot(),
		Enemies:  make([]enemy.Snapshot, 0, len(a.enemies)),
		Campaign: a.campaign.State(),
	}
	for _, e := range a.enemies {
		if a.transient[e.Handle()] {
			continue
		}
		p.Enemies = append(p.Enemies, e.BuildSnapshot())
	}
	return p
}

// ApplyPayload restores a saved payload
// Campaign capacities and skills apply before the player snapshot so values clamp into the saved capacities;
// enemies are matched by spawn id and any enemy missing from the payload is reset to spawn
func (a *Arena) ApplyPayload(p Payload) {
	a.pruneTransient()

	a.campaign.Restore(p.Campaign)
	a.syncProgression(false)
	a.player.ApplySnapshot(p.Player)

	saved := make(map[string]enemy.Snapshot, len(p.Enemies))
	for _, s := range p.Enemies {
		saved[s.SpawnID] = s
	}
	for _, e := range a.enemies {
		if s, ok := saved[e.SpawnID()]; ok {
			e.ApplySnapshot(s)
		} else {
			e.ResetToSpawn()
		}
	}
	a.Drain()
}

// SaveToSlot persists the arena; only allowed while standing at a prayer site
func (a *Arena) SaveToSlot(ctx context.Context, slot int) (bool, string) {
	if _, ok := a.player.ActiveSite(); !ok {
		return a.result(false, hintRestRequired)
	}
	if slot < 1 || a.store == nil {
		return a.result(false, fmt.Sprintf(hintSaveFailed, slot))
	}

	data, err := json.Marshal(a.BuildPayload())
	if err == nil {
		err = a.store.SaveSnapshot(ctx, slot, data)
	}
	if err != nil {
		a.log.Error("save failed", zap.Int("slot", slot), zap.Error(err))
		return a.result(false, fmt.Sprintf(hintSaveFailed, slot))
	}
	a.log.Info("saved", zap.Int("slot", slot), zap.Int("bytes", len(data)))
	return a.result(true, fmt.Sprintf(hintSaved, slot))
}

// LoadFromSlot restores a saved arena; only allowed while standing at a prayer site
func (a *Arena) LoadFromSlot(ctx context.Context, slot int) (bool, string) {
	if _, ok := a.player.ActiveSite(); !ok {
		return a.result(false, hintRestRequired)
	}
	if slot < 1 || a.store == nil {
		return a.result(false, fmt.Sprintf(hintNoSave, slot))
	}

	data, found, err := a.store.LoadSnapshot(ctx, slot)
	if err != nil {
		a.log.Error("load failed", zap.Int("slot", slot), zap.Error(err))
		return a.result(false, fmt.Sprintf(hintLoadFailed, slot))
	}
	if !found {
		return a.result(false, fmt.Sprintf(hintNoSave, slot))
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		a.log.Error("decode failed", zap.Int("slot", slot), zap.Error(err))
		return a.result(false, fmt.Sprintf(hintLoadFailed, slot))
	}
	a.ApplyPayload(p)
	a.log.Info("loaded", zap.Int("slot", slot))
	return a.result(true, fmt.Sprintf(hintLoaded, slot))
}

func (a *Arena) result(ok bool, hint string) (bool, string) {
	a.setHint(hint)
	return ok, hint
}
