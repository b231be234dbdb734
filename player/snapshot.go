package player

import (
	"github.com/lixenwraith/nazarene/vmath"
)

// Snapshot is the persisted state of the player
type Snapshot struct {
	Position       vmath.Vec3F `json:"position"`
	Health         float64     `json:"health"`
	Stamina        float64     `json:"stamina"`
	Faith          float64     `json:"faith"`
	LastRestSiteID string      `json:"last_rest_site_id"`
}

func (p *Player) BuildSnapshot() Snapshot {
	return Snapshot{
		Position:       p.kin.Position,
		Health:         p.vitals.Health.Current,
		Stamina:        p.vitals.Stamina.Current,
		Faith:          p.vitals.Faith,
		LastRestSiteID: p.lastRestSiteID,
	}
}

// ApplySnapshot restores persisted values clamped to current capacities
// Every transient timer is zeroed and the pending attack, guard and lock are dropped
func (p *Player) ApplySnapshot(s Snapshot) {
	p.clearTransient()
	p.ClearLock()
	p.kin.Position = s.Position
	p.vitals.Health.Set(s.Health)
	p.vitals.Stamina.Set(s.Stamina)
	p.vitals.SetFaith(s.Faith)
	p.lastRestSiteID = s.LastRestSiteID
}
