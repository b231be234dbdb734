package input

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/player"
	"github.com/lixenwraith/nazarene/vmath"
	"github.com/lixenwraith/nazarene/world"
)

// MoveHold keeps a movement key active between terminal key repeats
const MoveHold = 180 * time.Millisecond

// slotTimeout bounds a save or load round trip
const slotTimeout = 2 * time.Second

// Handler turns tcell events into intents
// Terminals report presses only, so movement lapses when a direction stops repeating
type Handler struct {
	table     *KeyTable
	moving    bool
	moveUntil time.Time
	now       func() time.Time
}

func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table, now: time.Now}
}

// HandleEvent resolves ev; ok is false for unbound keys and ignored events
func (h *Handler) HandleEvent(ev tcell.Event) (Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.Resolve(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}, true
	}
	return Intent{}, false
}

// Resolve looks up a key; runes match case-insensitively and Ctrl chords only match special keys
func (h *Handler) Resolve(key tcell.Key, ch rune, mod tcell.ModMask) (Intent, bool) {
	var (
		intent Intent
		ok     bool
	)
	if key == tcell.KeyRune {
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return Intent{}, false
		}
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		intent, ok = h.table.Runes[ch]
	} else {
		intent, ok = h.table.SpecialKeys[key]
	}
	if !ok {
		return Intent{}, false
	}
	if intent.Type == IntentMove {
		h.moving = true
		h.moveUntil = h.now().Add(MoveHold)
	}
	return intent, true
}

// Idle returns a stop intent once held movement has lapsed
func (h *Handler) Idle() (Intent, bool) {
	if !h.moving || h.now().Before(h.moveUntil) {
		return Intent{}, false
	}
	h.moving = false
	return Intent{Type: IntentMove}, true
}

// Dispatch applies intent to the player and arena and returns false when the session should end
// The hint of the last arena operation is logged at debug level
func Dispatch(intent Intent, p *player.Player, a *world.Arena, log *zap.Logger) bool {
	if log == nil {
		log = zap.NewNop()
	}
	accepted := true
	switch intent.Type {
	case IntentQuit:
		return false
	case IntentLightAttack:
		accepted = p.TryLightAttack()
	case IntentHeavyAttack:
		accepted = p.TryHeavyAttack()
	case IntentDodge:
		accepted = p.TryDodge(dodgeDir(intent, p))
	case IntentParry:
		accepted = p.TryParry()
	case IntentBlock:
		p.ToggleBlock()
	case IntentLockOn:
		p.ToggleLockOn()
	case IntentHeal:
		accepted = p.TryHeal()
	case IntentBlessing:
		accepted = p.TryBlessing()
	case IntentRadiance:
		accepted = p.TryRadiance()
	case IntentRest:
		accepted = a.Rest()
	case IntentSave, IntentLoad:
		ctx, cancel := context.WithTimeout(context.Background(), slotTimeout)
		defer cancel()
		var hint string
		if intent.Type == IntentSave {
			accepted, hint = a.SaveToSlot(ctx, intent.Slot)
		} else {
			accepted, hint = a.LoadFromSlot(ctx, intent.Slot)
		}
		log.Debug("slot", zap.Stringer("intent", intent.Type), zap.Int("slot", intent.Slot), zap.String("hint", hint))
	case IntentMove:
		p.SetMoveIntent(intent.Dir)
		if !vmath.V3FIsZero(intent.Dir) {
			p.SetFacing(intent.Dir)
		}
	}
	if !accepted {
		log.Debug("intent rejected", zap.Stringer("intent", intent.Type))
	}
	return true
}

// dodgeDir rolls along current movement, falling back to facing inside TryDodge
func dodgeDir(intent Intent, p *player.Player) vmath.Vec3F {
	if !vmath.V3FIsZero(intent.Dir) {
		return intent.Dir
	}
	return p.Velocity()
}
