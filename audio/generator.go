package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noiseSeed keeps generated noise identical between runs
const noiseSeed = 0x5eed

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int, rng *vmath.FastRand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Range(-1, 1)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweep generates a sine whose frequency glides linearly from start to end
func sweep(start, end float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := range buf {
		f := start + (end-start)*float64(i)/float64(samples)
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += f / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := samplesFor(attack)
	releaseSamples := samplesFor(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// normalize scales buf so its peak equals gain
func normalize(buf floatBuffer, gain float64) floatBuffer {
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak == 0 {
		return buf
	}
	scale := gain / peak
	for i := range buf {
		buf[i] *= scale
	}
	return buf
}

func samplesFor(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// --- Sound Generators ---

func generateSwingSound(rng *vmath.FastRand) floatBuffer {
	buf := oscillator(waveNoise, 0, samplesFor(parameter.SwingSoundDuration), rng)
	applyEnvelope(buf, parameter.SwingSoundAttack, parameter.SwingSoundRelease)
	return normalize(buf, 0.35)
}

func generateThudSound(rng *vmath.FastRand) floatBuffer {
	n := samplesFor(parameter.HitSoundDuration)
	body := sweep(140, 55, n)
	applyEnvelope(body, parameter.HitSoundAttack, parameter.HitSoundRelease)
	grit := oscillator(waveNoise, 0, n/3, rng)
	applyEnvelope(grit, parameter.HitSoundAttack, parameter.HitSoundRelease/3)
	return normalize(mixFloatBuffers(body, grit, 0.4), 0.8)
}

func generateClangSound() floatBuffer {
	n := samplesFor(parameter.ClangSoundDuration)
	// Inharmonic partials read as struck metal
	buf := oscillator(waveSquare, 620, n, nil)
	buf = mixFloatBuffers(buf, oscillator(waveSine, 1587, n, nil), 0.6)
	buf = mixFloatBuffers(buf, oscillator(waveSine, 2731, n, nil), 0.3)
	applyEnvelope(buf, parameter.ClangSoundAttack, parameter.ClangSoundRelease)
	return normalize(buf, 0.6)
}

func generateChimeSound() floatBuffer {
	n := samplesFor(parameter.ParrySoundDuration)
	fund := oscillator(waveSine, 1318.51, n, nil)
	applyEnvelope(fund, parameter.ParrySoundAttack, parameter.ParrySoundDuration-parameter.ParrySoundAttack)
	over := oscillator(waveSine, 2637.02, n, nil)
	applyEnvelope(over, parameter.ParrySoundAttack, parameter.ParrySoundOvertoneRelease)
	return normalize(mixFloatBuffers(fund, over, 0.3/0.7), 0.7)
}

func generateChoirSound() floatBuffer {
	n := samplesFor(parameter.ChoirSoundDuration)
	// C major triad with a slow swell
	var buf floatBuffer
	for _, f := range []float64{261.63, 329.63, 392.00, 523.25} {
		buf = mixFloatBuffers(buf, oscillator(waveSine, f, n, nil), 0.25)
	}
	applyEnvelope(buf, parameter.ChoirSoundAttack, parameter.ChoirSoundRelease)
	return normalize(buf, 0.6)
}

func generateMiracleSound() floatBuffer {
	var buf floatBuffer
	for _, f := range []float64{523.25, 659.25, 783.99, 1046.50} {
		note := oscillator(waveSine, f, samplesFor(parameter.MiracleNoteDuration), nil)
		applyEnvelope(note, parameter.MiracleNoteAttack, parameter.MiracleNoteRelease)
		buf = concatFloatBuffers(buf, note)
	}
	return normalize(buf, 0.6)
}

func generateDefeatSound() floatBuffer {
	buf := sweep(220, 70, samplesFor(parameter.DefeatSoundDuration))
	buf = mixFloatBuffers(buf, oscillator(waveSaw, 55, len(buf), nil), 0.3)
	applyEnvelope(buf, parameter.DefeatSoundAttack, parameter.DefeatSoundRelease)
	return normalize(buf, 0.7)
}

// generateSound dispatches to specific generator
func generateSound(st core.SoundType) floatBuffer {
	rng := vmath.NewFastRand(noiseSeed + uint64(st))
	switch st {
	case core.SoundSwing:
		return generateSwingSound(rng)
	case core.SoundHit:
		return generateThudSound(rng)
	case core.SoundClang:
		return generateClangSound()
	case core.SoundParry:
		return generateChimeSound()
	case core.SoundRedeemed:
		return generateChoirSound()
	case core.SoundMiracle:
		return generateMiracleSound()
	case core.SoundDefeat:
		return generateDefeatSound()
	default:
		return nil
	}
}
