package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nazarene/parameter"
)

func TestQueueFIFOAndFrameStamp(t *testing.T) {
	q := NewQueue()
	q.SetFrame(7)
	q.Push(GameEvent{Type: EventEnemyParried})
	q.Push(GameEvent{Type: EventShieldBlock, Frame: 3})

	got := q.Consume()
	require.Len(t, got, 2)
	assert.Equal(t, EventEnemyParried, got[0].Type)
	assert.Equal(t, int64(7), got[0].Frame)
	assert.Equal(t, int64(3), got[1].Frame)
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventPlayerHurt, Payload: i})
	}
	assert.Equal(t, parameter.EventQueueSize, q.Len())

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, 10, got[0].Payload)
	assert.Equal(t, total-1, got[len(got)-1].Payload)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventSoundRequest})
			}
		}()
	}
	wg.Wait()

	n := q.Drain(func(GameEvent) {})
	assert.Equal(t, 400, n)
}

func TestDrainIncludesEventsPushedDuringDrain(t *testing.T) {
	q := NewQueue()
	q.Push(GameEvent{Type: EventEnemyRedeemed})

	var seen []EventType
	n := q.Drain(func(ev GameEvent) {
		seen = append(seen, ev.Type)
		if ev.Type == EventEnemyRedeemed {
			Emit(q, EventPlayerRested, &RestPayload{SiteID: "chapel"})
		}
	})

	assert.Equal(t, 2, n)
	assert.Equal(t, []EventType{EventEnemyRedeemed, EventPlayerRested}, seen)
}

func TestRecorderAndNilPublisher(t *testing.T) {
	Emit(nil, EventPerfectBlock, nil)

	r := &Recorder{}
	Emit(r, EventPerfectBlock, nil)
	Emit(r, EventPlayerHurt, &PlayerHurtPayload{Damage: 4})
	Emit(r, EventPlayerHurt, &PlayerHurtPayload{Damage: 9})

	assert.Equal(t, 2, r.Count(EventPlayerHurt))
	last, ok := r.Last(EventPlayerHurt)
	require.True(t, ok)
	assert.Equal(t, 9.0, last.Payload.(*PlayerHurtPayload).Damage)
	assert.Equal(t, "PlayerHurt", EventPlayerHurt.String())
}
