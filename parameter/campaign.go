package parameter

// Experience Curve
const (
	// XPBase is experience needed for level 2
	XPBase = 45

	// XPQuadratic scales the squared level term
	XPQuadratic = 28

	// SkillPointsPerLevel is granted on each level-up
	SkillPointsPerLevel = 1
)

// Skill identifiers
const (
	SkillSmite         = "combat_smite"
	SkillCrusader      = "combat_crusader"
	SkillPilgrimStride = "movement_pilgrim_stride"
	SkillSwiftVow      = "movement_swift_vow"
	SkillAbundance     = "miracles_abundance"
	SkillRadianceLance = "miracles_radiance_lance"
	SkillShepherdGuard = "defense_shepherd_guard"
	SkillSteadfast     = "defense_steadfast"
)

// Skill modifiers
const (
	SmiteDamageScale     = 1.1
	CrusaderPostureScale = 1.12
	CrusaderRangeBonus   = 40.0
	PilgrimStrideScale   = 1.12
	SwiftVowDodgeScale   = 0.82
	AbundanceHealScale   = 1.18
	RadianceLanceScale   = 1.2
	RadianceLanceRadius  = 120.0
	ShepherdGuardHealth  = 14.0
	SteadfastStamina     = 18.0
	SteadfastRegenScale  = 1.15
)

// Campaign rewards
const (
	// XPPerFaith converts a redemption faith reward into experience
	XPPerFaith = 4.0

	// SkillCost is the point cost of every skill node
	SkillCost = 1
)

// Campaign flag formats
const (
	BossFlagFormat        = "boss_%s"
	ConsecratedFlagFormat = "site_%s_consecrated"
)
