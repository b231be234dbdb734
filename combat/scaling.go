package combat

import (
	"math"
	"time"

	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// PhaseFromHealthRatio maps a boss health ratio to its phase tier
func PhaseFromHealthRatio(ratio float64) int {
	switch {
	case ratio <= parameter.BossPhase3HealthRatio:
		return 3
	case ratio <= parameter.BossPhase2HealthRatio:
		return 2
	default:
		return 1
	}
}

// steps is the number of phases above the first; non-boss callers pass phase 1
func steps(phase int) float64 {
	if phase < 1 {
		return 0
	}
	return float64(phase - 1)
}

func scaleDuration(d time.Duration, f float64) time.Duration {
	return time.Duration(math.Round(float64(d) * f))
}

// EffectiveWindup shortens windup per phase, floored at EnemyMinWindup
func EffectiveWindup(base time.Duration, phase int) time.Duration {
	return max(scaleDuration(base, 1-parameter.BossWindupScalePerPhase*steps(phase)), parameter.EnemyMinWindup)
}

// EffectiveRecovery shortens recovery per phase, floored at EnemyMinRecovery
func EffectiveRecovery(base time.Duration, phase int) time.Duration {
	return max(scaleDuration(base, 1-parameter.BossRecoveryScalePerPhase*steps(phase)), parameter.EnemyMinRecovery)
}

// EffectiveDamage scales damage by boss phase; demons carry a flat bonus
func EffectiveDamage(base float64, phase int, demon bool) float64 {
	d := base * (1 + parameter.BossDamageScalePerPhase*steps(phase))
	if demon {
		d *= parameter.DemonDamageScale
	}
	return d
}

// EffectivePosture scales posture damage by boss phase
func EffectivePosture(base float64, phase int) float64 {
	return base * (1 + parameter.BossPostureScalePerPhase*steps(phase))
}

// PhaseSpeedScale is the boss move-speed multiplier, also dividing cast cooldown
func PhaseSpeedScale(phase int) float64 {
	return 1 + parameter.BossSpeedScalePerPhase*steps(phase)
}

// EffectiveMoveSpeed scales movement by boss phase
func EffectiveMoveSpeed(base float64, phase int) float64 {
	return base * PhaseSpeedScale(phase)
}

// ParryWindow narrows the parryable ratio band symmetrically per phase
// start is clamped to [ParryStartMin, ParryStartMax]; end to [start+ParryMinWidth, ParryEndMax]
func ParryWindow(baseStart, baseEnd float64, phase int) (start, end float64) {
	shrink := parameter.BossParryShrinkPerPhase * steps(phase)
	start = vmath.Clamp(baseStart+shrink, parameter.ParryStartMin, parameter.ParryStartMax)
	end = vmath.Clamp(baseEnd-shrink, start+parameter.ParryMinWidth, parameter.ParryEndMax)
	return start, end
}

// WindupRatio is elapsed/duration, 0 for a zero-length windup
func WindupRatio(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}
