// Package audio voices combat cues through beep and keeps the latest visual cue for the HUD
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// FlashDuration is how long a triggered effect stays visible
const FlashDuration = 250 * time.Millisecond

// Options configures the presenter
type Options struct {
	Mute bool
	// Volume is a base-2 exponent applied to every cue; 0 is unity
	Volume float64
	Logger *zap.Logger
}

// Flash is the most recent visual cue
type Flash struct {
	Effect core.EffectType
	At     vmath.Vec3F
}

// Presenter implements combat.Presenter
// Every call is safe before Initialize and after Close; sounds are dropped while audio is unavailable
type Presenter struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       *soundCache
	opts        Options
	initialized bool
	lastPlayed  [core.SoundTypeCount]time.Time
	flash       Flash
	flashAt     time.Time
	now         func() time.Time
	log         *zap.Logger
}

func NewPresenter(opts Options) *Presenter {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Presenter{
		mixer: &beep.Mixer{},
		cache: newSoundCache(),
		opts:  opts,
		now:   time.Now,
		log:   log,
	}
}

// Initialize opens the speaker; a muted presenter never touches the device
func (p *Presenter) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.opts.Mute {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.cache.preload()
	p.initialized = true
	p.log.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Enabled reports whether cues reach the speaker
func (p *Presenter) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close stops all sounds
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Presenter) PlaySound(sound core.SoundType, _ vmath.Vec3F) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if sound < 0 || sound >= core.SoundTypeCount {
		return
	}
	now := p.now()
	if now.Sub(p.lastPlayed[sound]) < parameter.MinSoundGap {
		return
	}
	p.lastPlayed[sound] = now

	buf := p.cache.get(sound)
	if len(buf) == 0 {
		return
	}
	var s beep.Streamer = &bufferStreamer{buf: buf}
	if p.opts.Volume != 0 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: p.opts.Volume}
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Presenter) TriggerEffect(effect core.EffectType, at vmath.Vec3F) {
	if effect == core.EffectNone {
		return
	}
	p.mu.Lock()
	p.flash = Flash{Effect: effect, At: at}
	p.flashAt = p.now()
	p.mu.Unlock()

	if ce := p.log.Check(zap.DebugLevel, "effect"); ce != nil {
		ce.Write(zap.Stringer("effect", effect), zap.Float64("x", at.X), zap.Float64("y", at.Y))
	}
}

// CurrentFlash returns the latest effect while it is still visible
func (p *Presenter) CurrentFlash() (Flash, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.flash.Effect == core.EffectNone || p.now().Sub(p.flashAt) >= FlashDuration {
		return Flash{}, false
	}
	return p.flash, true
}

// bufferStreamer plays a mono buffer on both channels once
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := s.buf[s.pos]
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
