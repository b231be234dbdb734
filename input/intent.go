// Package input maps terminal key events to combat intents
package input

import "github.com/lixenwraith/nazarene/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// Combat
	IntentLightAttack // j
	IntentHeavyAttack // k
	IntentDodge       // Space
	IntentParry       // l
	IntentBlock       // b toggles guard
	IntentLockOn      // Tab

	// Miracles
	IntentHeal     // 1
	IntentBlessing // 2
	IntentRadiance // 3

	// Prayer site
	IntentRest // r
	IntentSave // p, F5
	IntentLoad // o, F9

	// Movement
	IntentMove // wasd, arrows; zero Dir stops
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentResize:      "resize",
	IntentLightAttack: "light_attack",
	IntentHeavyAttack: "heavy_attack",
	IntentDodge:       "dodge",
	IntentParry:       "parry",
	IntentBlock:       "block",
	IntentLockOn:      "lock_on",
	IntentHeal:        "heal",
	IntentBlessing:    "blessing",
	IntentRadiance:    "radiance",
	IntentRest:        "rest",
	IntentSave:        "save",
	IntentLoad:        "load",
	IntentMove:        "move",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is a resolved player action
type Intent struct {
	Type IntentType
	Dir  vmath.Vec3F // IntentMove, IntentDodge
	Slot int         // IntentSave, IntentLoad
}

// Screen directions; north is -Y
var (
	dirUp    = vmath.Vec3F{Y: -1}
	dirDown  = vmath.Vec3F{Y: 1}
	dirLeft  = vmath.Vec3F{X: -1}
	dirRight = vmath.Vec3F{X: 1}
)
