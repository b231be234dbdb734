// Package campaign tracks progression between fights
// Miracle unlocks, experience, the skill tree, region rewards and retry counts are bookkeeping only; combat never reads them directly
package campaign

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/parameter"
)

// State is the persisted progression record
type State struct {
	RegionIndex       int             `json:"region_index"`
	UnlockedMiracles  []string        `json:"unlocked_miracles"`
	UnlockedSkills    []string        `json:"unlocked_skills"`
	SkillPoints       int             `json:"skill_points"`
	TotalXP           int             `json:"total_xp"`
	PlayerLevel       int             `json:"player_level"`
	MaxHealthBonus    float64         `json:"max_health_bonus"`
	MaxStaminaBonus   float64         `json:"max_stamina_bonus"`
	Flags             map[string]bool `json:"flags"`
	RegionRetryCounts []int           `json:"region_retry_counts"`
}

// NewState is a fresh campaign at level 1 with only the starting miracle
func NewState() State {
	return State{
		UnlockedMiracles: []string{parameter.MiracleHeal},
		PlayerLevel:      1,
		Flags:            make(map[string]bool),
	}
}

func (s State) clone() State {
	s.UnlockedMiracles = slices.Clone(s.UnlockedMiracles)
	s.UnlockedSkills = slices.Clone(s.UnlockedSkills)
	s.RegionRetryCounts = slices.Clone(s.RegionRetryCounts)
	s.Flags = maps.Clone(s.Flags)
	if s.Flags == nil {
		s.Flags = make(map[string]bool)
	}
	return s
}

// Outcome reports what a redemption changed
type Outcome struct {
	XP            int
	LevelsGained  int
	BossRegion    string // Region id when a region boss was redeemed
	RewardApplied bool   // Region reward granted for the first time
}

// Campaign is the progression collaborator
type Campaign struct {
	state   State
	regions []Region
	log     *zap.Logger
}

// New starts a fresh campaign over regions; nil regions selects the default route
func New(regions []Region, log *zap.Logger) *Campaign {
	if regions == nil {
		regions = DefaultRegions()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Campaign{
		state:   NewState(),
		regions: slices.Clone(regions),
		log:     log,
	}
}

// XPForLevel is the total experience threshold of level
func XPForLevel(level int) int {
	l := max(level, 1) - 1
	return parameter.XPBase + l*l*parameter.XPQuadratic
}

// State returns a copy of the progression record
func (c *Campaign) State() State {
	return c.state.clone()
}

// Restore replaces the progression record, normalizing level and the starting miracle
func (c *Campaign) Restore(s State) {
	c.state = s.clone()
	c.state.PlayerLevel = max(c.state.PlayerLevel, 1)
	c.state.SkillPoints = max(c.state.SkillPoints, 0)
	c.state.TotalXP = max(c.state.TotalXP, 0)
	c.state.RegionIndex = min(max(c.state.RegionIndex, 0), max(len(c.regions)-1, 0))
	if !slices.Contains(c.state.UnlockedMiracles, parameter.MiracleHeal) {
		c.state.UnlockedMiracles = append(c.state.UnlockedMiracles, parameter.MiracleHeal)
	}
}

func (c *Campaign) Regions() []Region { return slices.Clone(c.regions) }
func (c *Campaign) RegionIndex() int { return c.state.RegionIndex }
func (c *Campaign) Level() int { return c.state.PlayerLevel }
func (c *Campaign) TotalXP() int { return c.state.TotalXP }
func (c *Campaign) SkillPoints() int { return c.state.SkillPoints }

// CurrentRegion returns the active region, false when the route is empty
func (c *Campaign) CurrentRegion() (Region, bool) {
	if c.state.RegionIndex < 0 || c.state.RegionIndex >= len(c.regions) {
		return Region{}, false
	}
	return c.regions[c.state.RegionIndex], true
}

// AdvanceRegion moves to the next region once the current boss is redeemed
func (c *Campaign) AdvanceRegion() bool {
	r, ok := c.CurrentRegion()
	if !ok || c.state.RegionIndex+1 >= len(c.regions) || !c.IsFlagSet(bossFlag(r.ID)) {
		return false
	}
	c.state.RegionIndex++
	c.log.Info("region advanced", zap.String("region", c.regions[c.state.RegionIndex].ID))
	return true
}

// BaseVitals is the player capacity before skill bonuses
func (c *Campaign) BaseVitals() (health, stamina float64) {
	return parameter.PlayerMaxHealth + c.state.MaxHealthBonus, parameter.PlayerMaxStamina + c.state.MaxStaminaBonus
}

func (c *Campaign) IsFlagSet(flag string) bool {
	return c.state.Flags[flag]
}

// MarkFlag sets flag, reporting whether it was newly set
func (c *Campaign) MarkFlag(flag string) bool {
	if c.state.Flags[flag] {
		return false
	}
	if c.state.Flags == nil {
		c.state.Flags = make(map[string]bool)
	}
	c.state.Flags[flag] = true
	return true
}

// IsMiracleUnlocked reports an unlock; heal is always available
func (c *Campaign) IsMiracleUnlocked(id string) bool {
	return id == parameter.MiracleHeal || slices.Contains(c.state.UnlockedMiracles, id)
}

// UnlockMiracle grants a miracle, reporting whether it was new
func (c *Campaign) UnlockMiracle(id string) bool {
	if id == "" || c.IsMiracleUnlocked(id) {
		return false
	}
	c.state.UnlockedMiracles = append(c.state.UnlockedMiracles, id)
	c.log.Info("miracle unlocked", zap.String("miracle", id))
	return true
}

// NotifyDefeated counts a retry against the current region
func (c *Campaign) NotifyDefeated() {
	i := max(c.state.RegionIndex, 0)
	if len(c.state.RegionRetryCounts) <= i {
		c.state.RegionRetryCounts = append(c.state.RegionRetryCounts, make([]int, i+1-len(c.state.RegionRetryCounts))...)
	}
	c.state.RegionRetryCounts[i]++
	c.log.Debug("defeat recorded", zap.Int("region", i), zap.Int("retries", c.state.RegionRetryCounts[i]))
}

// RetryCount returns defeats recorded in region
func (c *Campaign) RetryCount(region int) int {
	if region < 0 || region >= len(c.state.RegionRetryCounts) {
		return 0
	}
	return c.state.RegionRetryCounts[region]
}

// NotifyPrayerSiteRest consecrates a site, reporting whether this was the first rest there
func (c *Campaign) NotifyPrayerSiteRest(siteID string) bool {
	if siteID == "" {
		return false
	}
	return c.MarkFlag(fmt.Sprintf(parameter.ConsecratedFlagFormat, siteID))
}

// IsSiteConsecrated reports whether the player has rested at siteID
func (c *Campaign) IsSiteConsecrated(siteID string) bool {
	return c.IsFlagSet(fmt.Sprintf(parameter.ConsecratedFlagFormat, siteID))
}

// NotifyRedeemed converts a redemption into experience and applies a boss region reward once
func (c *Campaign) NotifyRedeemed(spawnID string, faithReward float64) Outcome {
	var out Outcome
	out.XP = max(0, int(math.Round(faithReward*parameter.XPPerFaith)))
	if out.XP > 0 {
		out.LevelsGained = c.addXP(out.XP)
	}

	if r, ok := c.bossRegion(spawnID); ok {
		out.BossRegion = r.ID
		out.RewardApplied = c.applyRegionReward(r)
	}

	c.log.Info("enemy redeemed",
		zap.String("spawn", spawnID),
		zap.Int("xp", out.XP),
		zap.Int("level", c.state.PlayerLevel),
		zap.String("boss_region", out.BossRegion))
	return out
}

func (c *Campaign) addXP(xp int) int {
	c.state.TotalXP += xp
	gained := 0
	for c.state.TotalXP >= XPForLevel(c.state.PlayerLevel+1) {
		c.state.PlayerLevel++
		c.state.SkillPoints += parameter.SkillPointsPerLevel
		gained++
	}
	return gained
}

func (c *Campaign) bossRegion(spawnID string) (Region, bool) {
	if spawnID == "" {
		return Region{}, false
	}
	for _, r := range c.regions {
		if r.BossSpawnID == spawnID {
			return r, true
		}
	}
	return Region{}, false
}

func (c *Campaign) applyRegionReward(r Region) bool {
	if !c.MarkFlag(bossFlag(r.ID)) {
		return false
	}
	granted := false
	if r.RewardMiracle != "" {
		granted = c.UnlockMiracle(r.RewardMiracle) || granted
	}
	if r.HealthBonus > 0 {
		c.state.MaxHealthBonus += r.HealthBonus
		granted = true
	}
	if r.StaminaBonus > 0 {
		c.state.MaxStaminaBonus += r.StaminaBonus
		granted = true
	}
	return granted
}

func bossFlag(regionID string) string {
	return fmt.Sprintf(parameter.BossFlagFormat, regionID)
}

// UnlockedSkills returns the unlocked skill ids in unlock order
func (c *Campaign) UnlockedSkills() []string {
	return slices.Clone(c.state.UnlockedSkills)
}

func (c *Campaign) IsSkillUnlocked(id string) bool {
	return slices.Contains(c.state.UnlockedSkills, id)
}

// CanUnlockSkill checks existence, ownership, points, experience and prerequisites in that order
func (c *Campaign) CanUnlockSkill(id string) error {
	s, ok := FindSkill(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSkill, id)
	}
	if c.IsSkillUnlocked(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyUnlocked, id)
	}
	if c.state.SkillPoints < s.Cost {
		return fmt.Errorf("%w: %s needs %d", ErrNoSkillPoints, id, s.Cost)
	}
	if c.state.TotalXP < s.XPRequirement {
		return fmt.Errorf("%w: %s needs %d xp", ErrInsufficientXP, id, s.XPRequirement)
	}
	for _, pre := range s.Prerequisites {
		if !c.IsSkillUnlocked(pre) {
			return fmt.Errorf("%w: %s requires %s", ErrSkillLocked, id, pre)
		}
	}
	return nil
}

// UnlockSkill spends points on a skill node
func (c *Campaign) UnlockSkill(id string) error {
	if err := c.CanUnlockSkill(id); err != nil {
		return err
	}
	s, _ := FindSkill(id)
	c.state.SkillPoints -= s.Cost
	c.state.UnlockedSkills = append(c.state.UnlockedSkills, id)
	c.log.Info("skill unlocked", zap.String("skill", id), zap.Int("points", c.state.SkillPoints))
	return nil
}
