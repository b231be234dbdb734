package campaign

import (
	"errors"

	"github.com/lixenwraith/nazarene/parameter"
)

var (
	ErrUnknownSkill    = errors.New("unknown skill")
	ErrAlreadyUnlocked = errors.New("skill already unlocked")
	ErrNoSkillPoints   = errors.New("not enough skill points")
	ErrInsufficientXP  = errors.New("not enough experience")
	ErrSkillLocked     = errors.New("skill prerequisites not met")
)

// Branch groups skills on the tree
type Branch uint8

const (
	BranchCombat Branch = iota
	BranchMovement
	BranchMiracles
	BranchDefense
)

func (b Branch) String() string {
	switch b {
	case BranchCombat:
		return "combat"
	case BranchMovement:
		return "movement"
	case BranchMiracles:
		return "miracles"
	case BranchDefense:
		return "defense"
	default:
		return "unknown"
	}
}

// Skill is one node of the skill tree
type Skill struct {
	ID            string
	Name          string
	Branch        Branch
	XPRequirement int
	Cost          int
	Prerequisites []string
}

var skillTree = []Skill{
	{ID: parameter.SkillSmite, Name: "Smite Training", Branch: BranchCombat, XPRequirement: 60, Cost: parameter.SkillCost},
	{ID: parameter.SkillCrusader, Name: "Crusader Momentum", Branch: BranchCombat, XPRequirement: 140, Cost: parameter.SkillCost,
		Prerequisites: []string{parameter.SkillSmite}},
	{ID: parameter.SkillPilgrimStride, Name: "Pilgrim Stride", Branch: BranchMovement, XPRequirement: 70, Cost: parameter.SkillCost},
	{ID: parameter.SkillSwiftVow, Name: "Swift Vow", Branch: BranchMovement, XPRequirement: 165, Cost: parameter.SkillCost,
		Prerequisites: []string{parameter.SkillPilgrimStride}},
	{ID: parameter.SkillAbundance, Name: "Abundance of Grace", Branch: BranchMiracles, XPRequirement: 90, Cost: parameter.SkillCost},
	{ID: parameter.SkillRadianceLance, Name: "Radiance Lance", Branch: BranchMiracles, XPRequirement: 190, Cost: parameter.SkillCost,
		Prerequisites: []string{parameter.SkillAbundance}},
	{ID: parameter.SkillShepherdGuard, Name: "Shepherd Guard", Branch: BranchDefense, XPRequirement: 80, Cost: parameter.SkillCost},
	{ID: parameter.SkillSteadfast, Name: "Steadfast Heart", Branch: BranchDefense, XPRequirement: 170, Cost: parameter.SkillCost,
		Prerequisites: []string{parameter.SkillShepherdGuard}},
}

// Skills returns the tree in display order
func Skills() []Skill {
	out := make([]Skill, len(skillTree))
	copy(out, skillTree)
	return out
}

// FindSkill looks up a node by id
func FindSkill(id string) (Skill, bool) {
	for _, s := range skillTree {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}
