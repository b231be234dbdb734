package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/vmath"
)

var _ combat.Presenter = (*Presenter)(nil)

// TestMutedPresenterDegrades verifies cues are dropped without touching the audio device
func TestMutedPresenterDegrades(t *testing.T) {
	p := NewPresenter(Options{Mute: true})
	require.NoError(t, p.Initialize())
	assert.False(t, p.Enabled())

	assert.NotPanics(t, func() {
		for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
			p.PlaySound(s, vmath.Vec3F{})
		}
		p.PlaySound(core.SoundTypeCount, vmath.Vec3F{})
		p.Close()
	})
}

func TestUninitializedPresenterIsSafe(t *testing.T) {
	p := NewPresenter(Options{})
	assert.NotPanics(t, func() {
		p.PlaySound(core.SoundHit, vmath.Vec3F{})
		p.Close()
	})
	assert.False(t, p.Enabled())
}

func TestFlashExpires(t *testing.T) {
	p := NewPresenter(Options{Mute: true})
	now := time.Unix(100, 0)
	p.now = func() time.Time { return now }

	_, ok := p.CurrentFlash()
	assert.False(t, ok)

	p.TriggerEffect(core.EffectParryFlash, vmath.Vec3F{X: 5})
	f, ok := p.CurrentFlash()
	require.True(t, ok)
	assert.Equal(t, core.EffectParryFlash, f.Effect)
	assert.Equal(t, 5.0, f.At.X)

	p.TriggerEffect(core.EffectNone, vmath.Vec3F{})
	f, _ = p.CurrentFlash()
	assert.Equal(t, core.EffectParryFlash, f.Effect)

	now = now.Add(FlashDuration)
	_, ok = p.CurrentFlash()
	assert.False(t, ok)
}

func TestEverySoundGenerates(t *testing.T) {
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		buf := generateSound(s)
		require.NotEmpty(t, buf, "sound %d", s)
		peak := 0.0
		for _, v := range buf {
			peak = math.Max(peak, math.Abs(v))
		}
		assert.LessOrEqual(t, peak, 1.0+1e-9, "sound %d", s)
		assert.Greater(t, peak, 0.0, "sound %d", s)
	}
	assert.Nil(t, generateSound(core.SoundTypeCount))
}

func TestNoiseIsDeterministic(t *testing.T) {
	assert.Equal(t, generateSound(core.SoundSwing), generateSound(core.SoundSwing))
}

func TestCacheReturnsSameBuffer(t *testing.T) {
	c := newSoundCache()
	a := c.get(core.SoundClang)
	b := c.get(core.SoundClang)
	require.NotEmpty(t, a)
	assert.Same(t, &a[0], &b[0])
	assert.Nil(t, c.get(core.SoundType(-1)))
}

func TestBufferStreamerPlaysOnce(t *testing.T) {
	s := &bufferStreamer{buf: floatBuffer{0.1, 0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.2, 0.2}, out[1])

	n, ok = s.Stream(out)
	assert.Equal(t, 1, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.3, 0.3}, out[0])

	n, ok = s.Stream(out)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestEnvelopeShapesEdges(t *testing.T) {
	buf := make(floatBuffer, samplesFor(100*time.Millisecond))
	for i := range buf {
		buf[i] = 1
	}
	applyEnvelope(buf, 10*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, 0.0, buf[0])
	assert.Equal(t, 1.0, buf[len(buf)/2])
	assert.Less(t, buf[len(buf)-1], 0.01)
}
