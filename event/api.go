package event

import (
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/vmath"
)

// Emit pushes an event with payload; nil publishers are ignored
func Emit(p Publisher, t EventType, payload any) {
	if p == nil {
		return
	}
	p.Push(GameEvent{Type: t, Payload: payload})
}

// EmitSound requests a positioned sound cue
func EmitSound(p Publisher, sound core.SoundType, at vmath.Vec3F) {
	Emit(p, EventSoundRequest, &SoundRequestPayload{Sound: sound, At: at})
}

// EmitEffect requests a positioned visual cue
func EmitEffect(p Publisher, effect core.EffectType, at vmath.Vec3F) {
	Emit(p, EventEffectRequest, &EffectRequestPayload{Effect: effect, At: at})
}

// EmitCue requests both sound and effect at one location
func EmitCue(p Publisher, sound core.SoundType, effect core.EffectType, at vmath.Vec3F) {
	EmitSound(p, sound, at)
	EmitEffect(p, effect, at)
}

// Recorder is a Publisher that keeps every event, for tests and replays
type Recorder struct {
	Events []GameEvent
}

func (r *Recorder) Push(ev GameEvent) {
	r.Events = append(r.Events, ev)
}

// Count returns how many recorded events have type t
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Last returns the most recent event of type t
func (r *Recorder) Last(t EventType) (GameEvent, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == t {
			return r.Events[i], true
		}
	}
	return GameEvent{}, false
}
