package input

import "github.com/gdamore/tcell/v2"

// DefaultSlot is the save slot used by the save and load keys
const DefaultSlot = 1

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC: {Type: IntentQuit},
			tcell.KeyTab:   {Type: IntentLockOn},
			tcell.KeyUp:    {Type: IntentMove, Dir: dirUp},
			tcell.KeyDown:  {Type: IntentMove, Dir: dirDown},
			tcell.KeyLeft:  {Type: IntentMove, Dir: dirLeft},
			tcell.KeyRight: {Type: IntentMove, Dir: dirRight},
			tcell.KeyF5:    {Type: IntentSave, Slot: DefaultSlot},
			tcell.KeyF9:    {Type: IntentLoad, Slot: DefaultSlot},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'j': {Type: IntentLightAttack},
			'k': {Type: IntentHeavyAttack},
			' ': {Type: IntentDodge},
			'l': {Type: IntentParry},
			'b': {Type: IntentBlock},
			'1': {Type: IntentHeal},
			'2': {Type: IntentBlessing},
			'3': {Type: IntentRadiance},
			'r': {Type: IntentRest},
			'p': {Type: IntentSave, Slot: DefaultSlot},
			'o': {Type: IntentLoad, Slot: DefaultSlot},
			'w': {Type: IntentMove, Dir: dirUp},
			's': {Type: IntentMove, Dir: dirDown},
			'a': {Type: IntentMove, Dir: dirLeft},
			'd': {Type: IntentMove, Dir: dirRight},
		},
	}
}
