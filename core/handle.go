package core

// Handle is a stable index of a combatant in the arena
// Zero is never issued and means "no combatant"
type Handle uint32

// InvalidHandle is the unset handle
const InvalidHandle Handle = 0

// Valid reports whether h was ever issued
func (h Handle) Valid() bool {
	return h != InvalidHandle
}
