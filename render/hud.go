// Package render draws the terminal HUD and a top-down view of the arena
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/enemy"
	"github.com/lixenwraith/nazarene/vmath"
	"github.com/lixenwraith/nazarene/world"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Map scale in world units per cell; terminal cells are about twice as tall as wide
const (
	UnitsPerColumn = 40.0
	UnitsPerRow    = 80.0
)

const (
	barWidth   = 20
	headerRows = 2
	footerRows = 3
	helpLine   = "j/k attack  space dodge  l parry  b block  1-3 miracles  tab lock  r rest  p/o save/load  q quit"
)

var archetypeGlyphs = map[enemy.Archetype]rune{
	enemy.MeleeShield: 'S',
	enemy.Spear:       'P',
	enemy.Ranged:      'R',
	enemy.Demon:       'D',
	enemy.Boss:        'B',
}

// Overlay is the transient effect flash drawn over the map
type Overlay struct {
	Effect core.EffectType
	At     vmath.Vec3F
}

// HUD renders one arena frame
type HUD struct {
	canvas Canvas
	base   tcell.Style
}

func NewHUD(c Canvas) *HUD {
	return &HUD{
		canvas: c,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// Draw paints the full frame; overlay may be nil
func (h *HUD) Draw(a *world.Arena, overlay *Overlay) {
	w, ht := h.canvas.Size()
	h.clear(w, ht)
	if ht < headerRows {
		return
	}
	h.drawVitals(a, w)
	h.drawStatus(a, w)
	h.drawMap(a, overlay, w, ht)
	h.drawFooter(a, w, ht)
}

func (h *HUD) clear(w, ht int) {
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			h.canvas.SetContent(x, y, ' ', nil, h.base)
		}
	}
}

func (h *HUD) drawVitals(a *world.Arena, w int) {
	p := a.Player()
	c := a.Campaign()
	x := h.text(0, 0, w, "HP ", h.base.Foreground(RgbDim))
	x = h.bar(x, 0, w, p.Health(), p.MaxHealth(), RgbHealth)
	x = h.text(x, 0, w, fmt.Sprintf(" %3.0f/%-3.0f  ST ", p.Health(), p.MaxHealth()), h.base)
	x = h.bar(x, 0, w, p.Stamina(), p.MaxStamina(), RgbStamina)
	x = h.text(x, 0, w, fmt.Sprintf(" %3.0f/%-3.0f  ", p.Stamina(), p.MaxStamina()), h.base)
	x = h.text(x, 0, w, fmt.Sprintf("Faith %.0f", p.Faith()), h.base.Foreground(RgbFaith))
	h.text(x, 0, w, fmt.Sprintf("  Lv %d  XP %d  SP %d", c.Level(), c.TotalXP(), c.SkillPoints()), h.base)
}

func (h *HUD) drawStatus(a *world.Arena, w int) {
	p := a.Player()
	var tags []string
	if p.IsBlocking() {
		tags = append(tags, "GUARD")
	}
	if p.ParryWindowOpen() {
		tags = append(tags, "PARRY")
	}
	if p.IsDodging() {
		tags = append(tags, "DODGE")
	}
	if p.IsBlessed() {
		tags = append(tags, "BLESSED")
	}
	if t, ok := a.Resolve(p.LockTarget()); ok {
		tags = append(tags, fmt.Sprintf("LOCK %s %s", t.Name(), t.State()))
	}
	heal, blessing, radiance := p.MiracleCooldowns()
	cd := fmt.Sprintf("cd heal %.1fs bless %.1fs rad %.1fs", heal.Seconds(), blessing.Seconds(), radiance.Seconds())
	if region, ok := a.Campaign().CurrentRegion(); ok {
		cd = region.Name + "  " + cd
	}
	x := h.text(0, 1, w, cd+"  ", h.base.Foreground(RgbDim))
	h.text(x, 1, w, strings.Join(tags, " "), h.base.Foreground(RgbHint))
}

func (h *HUD) drawMap(a *world.Arena, overlay *Overlay, w, ht int) {
	top, bottom := headerRows, ht-footerRows
	if bottom <= top || w <= 0 {
		return
	}
	center := a.Player().Position()
	cx, cy := w/2, top+(bottom-top)/2
	project := func(pos vmath.Vec3F) (int, int, bool) {
		x := cx + int(math.Round((pos.X-center.X)/UnitsPerColumn))
		y := cy + int(math.Round((pos.Y-center.Y)/UnitsPerRow))
		return x, y, x >= 0 && x < w && y >= top && y < bottom
	}

	for _, s := range a.PrayerSites() {
		if x, y, ok := project(s.Position); ok {
			h.canvas.SetContent(x, y, '+', nil, h.base.Foreground(RgbSite))
		}
	}
	for _, e := range a.Enemies() {
		if e.Hidden() {
			continue
		}
		if x, y, ok := project(e.Position()); ok {
			h.canvas.SetContent(x, y, enemyGlyph(e), nil, h.base.Foreground(enemyColor(e)))
		}
	}
	if overlay != nil && overlay.Effect != core.EffectNone {
		if x, y, ok := project(overlay.At); ok {
			h.canvas.SetContent(x, y, '*', nil, h.base.Foreground(RgbFaith))
		}
	}
	h.canvas.SetContent(cx, cy, '@', nil, h.base.Foreground(RgbPlayer).Bold(true))
}

func (h *HUD) drawFooter(a *world.Arena, w, ht int) {
	if ht < headerRows+footerRows {
		return
	}
	m := a.Metrics()
	stats := fmt.Sprintf("hits %d  ripostes %d  parries %d  blocks %d  staggers %d  redeemed %d  defeats %d  dealt %.0f  taken %.0f",
		m.PlayerHits.Load(), m.Ripostes.Load(), m.Parries.Load(), m.ShieldBlocks.Load(), m.Staggers.Load(),
		m.Redemptions.Load(), m.Defeats.Load(), m.DamageDealt.Get(), m.DamageTaken.Get())
	if phase := m.BossPhase.Load(); phase > 1 {
		stats += fmt.Sprintf("  boss phase %d", phase)
	}
	h.text(0, ht-3, w, stats, h.base.Foreground(RgbDim))
	h.text(0, ht-2, w, a.Hint(), h.base.Foreground(RgbHint))
	h.text(0, ht-1, w, helpLine, h.base.Foreground(RgbDim))
}

// text writes s from x and returns the column after it, clipped at w
func (h *HUD) text(x, y, w int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= w {
			return x
		}
		h.canvas.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// bar draws a fixed-width meter for cur/limit
func (h *HUD) bar(x, y, w int, cur, limit float64, fill tcell.Color) int {
	filled := 0
	if limit > 0 {
		filled = int(math.Round(barWidth * math.Min(math.Max(cur/limit, 0), 1)))
	}
	for i := 0; i < barWidth && x < w; i++ {
		color := RgbBarEmpty
		if i < filled {
			color = fill
		}
		h.canvas.SetContent(x, y, '█', nil, h.base.Foreground(color))
		x++
	}
	return x
}

func enemyGlyph(e *enemy.Enemy) rune {
	if e.IsRedeemed() {
		return '†'
	}
	if g, ok := archetypeGlyphs[e.Archetype()]; ok {
		return g
	}
	return '?'
}

func enemyColor(e *enemy.Enemy) tcell.Color {
	switch e.State() {
	case enemy.Redeemed:
		return RgbDim
	case enemy.Windup, enemy.Casting:
		return RgbWindup
	case enemy.Staggered, enemy.Parried:
		return RgbStaggered
	}
	if e.Archetype() == enemy.Boss {
		return RgbBoss
	}
	return RgbEnemy
}
