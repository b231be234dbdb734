package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/nazarene/enemy"
)

// ArchetypeOverride replaces selected fields of a built-in profile; absent keys keep the built-in value
type ArchetypeOverride struct {
	Name               *string   `toml:"name"`
	FaithReward        *float64  `toml:"faith_reward"`
	MaxHealth          *float64  `toml:"max_health"`
	MaxPoise           *float64  `toml:"max_poise"`
	PoiseRegen         *float64  `toml:"poise_regen"`
	MoveSpeed          *float64  `toml:"move_speed"`
	AttackDamage       *float64  `toml:"attack_damage"`
	PostureDamage      *float64  `toml:"posture_damage"`
	DetectionRange     *float64  `toml:"detection_range"`
	AttackRange        *float64  `toml:"attack_range"`
	MinimumRange       *float64  `toml:"minimum_range"`
	Windup             *Duration `toml:"windup"`
	Recovery           *Duration `toml:"recovery"`
	Stagger            *Duration `toml:"stagger"`
	ParryVulnerability *Duration `toml:"parry_vulnerability"`
	StrikeRatio        *float64  `toml:"strike_ratio"`
	ParryStart         *float64  `toml:"parry_start"`
	ParryEnd           *float64  `toml:"parry_end"`
	ShieldBlockChance  *float64  `toml:"shield_block_chance"`
}

func (o ArchetypeOverride) apply(p *enemy.Profile) {
	setString(&p.Name, o.Name)
	setFloat(&p.FaithReward, o.FaithReward)
	setFloat(&p.MaxHealth, o.MaxHealth)
	setFloat(&p.MaxPoise, o.MaxPoise)
	setFloat(&p.PoiseRegen, o.PoiseRegen)
	setFloat(&p.MoveSpeed, o.MoveSpeed)
	setFloat(&p.AttackDamage, o.AttackDamage)
	setFloat(&p.PostureDamage, o.PostureDamage)
	setFloat(&p.DetectionRange, o.DetectionRange)
	setFloat(&p.AttackRange, o.AttackRange)
	setFloat(&p.MinimumRange, o.MinimumRange)
	setDuration(&p.Windup, o.Windup)
	setDuration(&p.Recovery, o.Recovery)
	setDuration(&p.Stagger, o.Stagger)
	setDuration(&p.ParryVulnerability, o.ParryVulnerability)
	setFloat(&p.StrikeRatio, o.StrikeRatio)
	setFloat(&p.ParryStart, o.ParryStart)
	setFloat(&p.ParryEnd, o.ParryEnd)
	setFloat(&p.ShieldBlockChance, o.ShieldBlockChance)
}

func (o ArchetypeOverride) validate() error {
	var errs []error
	nonNegative := map[string]*float64{
		"faith_reward":    o.FaithReward,
		"poise_regen":     o.PoiseRegen,
		"move_speed":      o.MoveSpeed,
		"attack_damage":   o.AttackDamage,
		"posture_damage":  o.PostureDamage,
		"detection_range": o.DetectionRange,
		"attack_range":    o.AttackRange,
		"minimum_range":   o.MinimumRange,
	}
	for key, v := range nonNegative {
		if v != nil && *v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s is negative", ErrInvalid, key))
		}
	}
	for key, v := range map[string]*float64{"max_health": o.MaxHealth, "max_poise": o.MaxPoise} {
		if v != nil && *v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive", ErrInvalid, key))
		}
	}
	for key, v := range map[string]*Duration{
		"windup": o.Windup, "recovery": o.Recovery, "stagger": o.Stagger, "parry_vulnerability": o.ParryVulnerability,
	} {
		if v != nil && *v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s is negative", ErrInvalid, key))
		}
	}
	for key, v := range map[string]*float64{
		"strike_ratio": o.StrikeRatio, "parry_start": o.ParryStart, "parry_end": o.ParryEnd, "shield_block_chance": o.ShieldBlockChance,
	} {
		if v != nil && (*v < 0 || *v > 1) {
			errs = append(errs, fmt.Errorf("%w: %s outside [0, 1]", ErrInvalid, key))
		}
	}
	if o.ParryStart != nil && o.ParryEnd != nil && *o.ParryStart > *o.ParryEnd {
		errs = append(errs, fmt.Errorf("%w: parry_start after parry_end", ErrInvalid))
	}
	return errors.Join(errs...)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *Duration) {
	if v != nil {
		*dst = time.Duration(*v)
	}
}
