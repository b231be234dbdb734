package player

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// PrayerSite is a rest and respawn point
type PrayerSite struct {
	ID       string      `toml:"id" json:"id"`
	Name     string      `toml:"name" json:"name"`
	Position vmath.Vec3F `toml:"position" json:"position"`
	Respawn  vmath.Vec3F `toml:"respawn" json:"respawn"` // Zero means Position
	Radius   float64     `toml:"radius" json:"radius"`   // Zero means PrayerSiteRadius
}

// RespawnPoint is where a resting player is placed
func (s PrayerSite) RespawnPoint() vmath.Vec3F {
	if vmath.V3FIsZero(s.Respawn) {
		return s.Position
	}
	return s.Respawn
}

// Contains reports whether pos is within the site's activation radius
func (s PrayerSite) Contains(pos vmath.Vec3F) bool {
	r := s.Radius
	if r <= 0 {
		r = parameter.PrayerSiteRadius
	}
	return vmath.Dist2D(s.Position, pos) <= r
}

// ActiveSite returns the first prayer site the player stands in
func (p *Player) ActiveSite() (PrayerSite, bool) {
	for _, s := range p.roster.PrayerSites() {
		if s.Contains(p.kin.Position) {
			return s, true
		}
	}
	return PrayerSite{}, false
}

// Rest rests at the active prayer site; rejected when none is in reach
func (p *Player) Rest() bool {
	site, ok := p.ActiveSite()
	if !ok {
		return false
	}
	p.RestAtPrayerSite(site)
	return true
}

// RestAtPrayerSite teleports to the site, restores vitals, refills faith up to the cap,
// zeroes every timer, resets all enemies to spawn and clears the lock
func (p *Player) RestAtPrayerSite(site PrayerSite) {
	p.clearTransient()
	p.kin.Position = site.RespawnPoint()
	p.vitals.Restore()

	refill := parameter.PlayerStartingFaith * parameter.RestFaithRefillRatio
	p.vitals.SetFaith(min(p.vitals.Faith+refill, parameter.PlayerStartingFaith*parameter.RestFaithCapRatio))
	p.lastRestSiteID = site.ID

	for _, e := range p.roster.Enemies() {
		e.ResetToSpawn()
	}
	p.ClearLock()

	p.cue(core.SoundMiracle, core.EffectHealGlow, p.kin.Position)
	p.log.Debug("rested", zap.String("site", site.ID))
	event.Emit(p.events, event.EventPlayerRested, &event.RestPayload{SiteID: site.ID})
}

// nearestSite picks the closest prayer site by squared 3D distance; the first wins a tie
func (p *Player) nearestSite() (PrayerSite, bool) {
	var best PrayerSite
	found := false
	bestDist := 0.0
	for _, s := range p.roster.PrayerSites() {
		d := vmath.V3FDistSq(p.kin.Position, s.Position)
		if !found || d < bestDist {
			best, bestDist, found = s, d, true
		}
	}
	return best, found
}
