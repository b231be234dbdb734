package render

import "github.com/gdamore/tcell/v2"

// HUD palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Default text
	RgbDim        = tcell.NewRGBColor(110, 110, 120) // Labels and redeemed foes
	RgbHealth     = tcell.NewRGBColor(220, 60, 60)
	RgbStamina    = tcell.NewRGBColor(90, 200, 90)
	RgbFaith      = tcell.NewRGBColor(255, 215, 0)
	RgbPoise      = tcell.NewRGBColor(100, 150, 255)
	RgbBarEmpty   = tcell.NewRGBColor(45, 45, 55)
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255)
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)
	RgbWindup     = tcell.NewRGBColor(255, 160, 0) // Enemy committed to a strike
	RgbStaggered  = tcell.NewRGBColor(140, 190, 255)
	RgbBoss       = tcell.NewRGBColor(200, 80, 255)
	RgbSite       = tcell.NewRGBColor(255, 240, 160)
	RgbHint       = tcell.NewRGBColor(0, 255, 255)
)
