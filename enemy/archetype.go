package enemy

import (
	"fmt"
	"strings"
	"time"
)

// Archetype selects an enemy's tuning profile at spawn
type Archetype uint8

const (
	MeleeShield Archetype = iota
	Spear
	Ranged
	Demon
	Boss
	archetypeCount
)

var archetypeNames = [archetypeCount]string{
	MeleeShield: "melee_shield",
	Spear:       "spear",
	Ranged:      "ranged",
	Demon:       "demon",
	Boss:        "boss",
}

func (a Archetype) String() string {
	if a >= archetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// ParseArchetype accepts the snake_case names used in config files
func ParseArchetype(s string) (Archetype, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range archetypeNames {
		if name == key {
			return Archetype(i), nil
		}
	}
	return MeleeShield, fmt.Errorf("unknown archetype %q", s)
}

// Capability is a bitset of combat capabilities carried by a profile
type Capability uint8

const (
	CapCanParry Capability = 1 << iota // Attacks can be parried
	CapRangedAttack                    // Can cast at range
)

// Has reports whether all bits of c are set
func (c Capability) Has(flag Capability) bool {
	return c&flag == flag
}

// Profile is the immutable tuning of one enemy
type Profile struct {
	Name               string
	FaithReward        float64
	MaxHealth          float64
	MaxPoise           float64
	PoiseRegen         float64 // Per second
	MoveSpeed          float64
	AttackDamage       float64
	PostureDamage      float64
	DetectionRange     float64
	AttackRange        float64
	MinimumRange       float64
	Windup             time.Duration
	Recovery           time.Duration
	StrikeRatio        float64 // Fraction of windup at which the hit resolves
	ParryStart         float64 // Windup ratio
	ParryEnd           float64 // Windup ratio
	Stagger            time.Duration
	ParryVulnerability time.Duration
	ProjectileSpeed    float64
	ShieldBlockChance  float64
	Capabilities       Capability
}

// DefaultProfile is the fallback used for unknown or unassigned archetypes
func DefaultProfile() Profile {
	return Profile{
		Name:               "Roman Patrol",
		FaithReward:        12,
		MaxHealth:          90,
		MaxPoise:           80,
		PoiseRegen:         10,
		MoveSpeed:          380,
		AttackDamage:       15,
		PostureDamage:      20,
		DetectionRange:     1300,
		AttackRange:        220,
		MinimumRange:       520,
		Windup:             400 * time.Millisecond,
		Recovery:           1100 * time.Millisecond,
		StrikeRatio:        0.72,
		ParryStart:         0.35,
		ParryEnd:           0.73,
		Stagger:            1150 * time.Millisecond,
		ParryVulnerability: 1750 * time.Millisecond,
		ProjectileSpeed:    1800,
		ShieldBlockChance:  0.45,
		Capabilities:       CapCanParry,
	}
}

// ProfileFor returns the built-in tuning for an archetype
func ProfileFor(a Archetype) Profile {
	p := DefaultProfile()
	switch a {
	case MeleeShield:
		p.Name = "Roman Shieldbearer"
		p.MaxHealth, p.MaxPoise, p.MoveSpeed = 110, 105, 310
		p.AttackDamage, p.PostureDamage, p.AttackRange = 16, 25, 200
		p.Windup, p.Recovery = 460*time.Millisecond, 1150*time.Millisecond
		p.ShieldBlockChance = 0.62
	case Spear:
		p.Name = "Roman Spearman"
		p.MaxHealth, p.MaxPoise, p.MoveSpeed = 86, 72, 400
		p.AttackDamage, p.PostureDamage, p.AttackRange = 20, 24, 340
		p.Windup, p.Recovery = 520*time.Millisecond, 1050*time.Millisecond
		p.ShieldBlockChance = 0
	case Ranged:
		p.Name = "Roman Slinger"
		p.MaxHealth, p.MaxPoise, p.MoveSpeed = 70, 55, 360
		p.AttackDamage, p.PostureDamage, p.AttackRange = 15, 18, 1300
		p.MinimumRange = 480
		p.Windup, p.Recovery = 620*time.Millisecond, 750*time.Millisecond
		p.ShieldBlockChance = 0
		p.ProjectileSpeed = 2000
		p.Capabilities = CapRangedAttack
	case Demon:
		p.Name = "Unclean Spirit"
		p.MaxHealth, p.MaxPoise, p.MoveSpeed = 94, 65, 480
		p.AttackDamage, p.PostureDamage, p.AttackRange = 22, 24, 240
		p.Windup, p.Recovery = 340*time.Millisecond, 820*time.Millisecond
		p.ShieldBlockChance = 0
	case Boss:
		p.Name = "Legion Sovereign"
		p.MaxHealth, p.MaxPoise, p.MoveSpeed = 420, 210, 390
		p.AttackDamage, p.PostureDamage, p.AttackRange = 29, 36, 360
		p.DetectionRange, p.MinimumRange = 2800, 700
		p.Windup, p.Recovery = 580*time.Millisecond, 950*time.Millisecond
		p.ParryStart, p.ParryEnd = 0.42, 0.66
		p.ParryVulnerability, p.Stagger = 1150*time.Millisecond, 920*time.Millisecond
		p.ProjectileSpeed = 2200
		p.ShieldBlockChance = 0
		p.Capabilities = CapCanParry | CapRangedAttack
	}
	return p
}

// MarshalText encodes the archetype by name in snapshots and config
func (a Archetype) MarshalText() ([]byte, error) {
	if a >= archetypeCount {
		return nil, fmt.Errorf("unknown archetype %d", a)
	}
	return []byte(a.String()), nil
}

func (a *Archetype) UnmarshalText(b []byte) error {
	parsed, err := ParseArchetype(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
