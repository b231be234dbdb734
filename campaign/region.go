package campaign

import "github.com/lixenwraith/nazarene/parameter"

// Region is the progression bookkeeping for one campaign area
// Reward fields apply once, when the region's boss is redeemed
type Region struct {
	ID            string  `toml:"id" json:"id"`
	Name          string  `toml:"name" json:"name"`
	PrayerSiteID  string  `toml:"prayer_site" json:"prayer_site"`
	BossSpawnID   string  `toml:"boss_spawn" json:"boss_spawn"`
	RewardMiracle string  `toml:"reward_miracle" json:"reward_miracle,omitempty"`
	HealthBonus   float64 `toml:"health_bonus" json:"health_bonus,omitempty"`
	StaminaBonus  float64 `toml:"stamina_bonus" json:"stamina_bonus,omitempty"`
}

// DefaultRegions is the built-in campaign route
func DefaultRegions() []Region {
	return []Region{
		{
			ID: "galilee", Name: "Galilee Shores",
			PrayerSiteID: "galilee_site_01", BossSpawnID: "galilee_named_boss_01",
			RewardMiracle: parameter.MiracleBlessing, HealthBonus: 10, StaminaBonus: 6,
		},
		{
			ID: "decapolis", Name: "Decapolis Ruins",
			PrayerSiteID: "decapolis_site_01", BossSpawnID: "decapolis_named_boss_01",
			RewardMiracle: parameter.MiracleRadiance, HealthBonus: 10, StaminaBonus: 6,
		},
		{
			ID: "wilderness", Name: "Wilderness of Temptation",
			PrayerSiteID: "wilderness_site_01", BossSpawnID: "wilderness_named_boss_01",
			HealthBonus: 12, StaminaBonus: 8,
		},
		{
			ID: "jerusalem", Name: "Jerusalem Approach",
			PrayerSiteID: "jerusalem_site_01", BossSpawnID: "jerusalem_named_boss_01",
		},
		{
			ID: "gethsemane", Name: "Garden of Gethsemane",
			PrayerSiteID: "gethsemane_site_01", BossSpawnID: "gethsemane_named_boss_01",
			HealthBonus: 14, StaminaBonus: 10,
		},
		{
			ID: "via_dolorosa", Name: "Via Dolorosa",
			PrayerSiteID: "via_dolorosa_site_01", BossSpawnID: "via_dolorosa_named_boss_01",
			HealthBonus: 16, StaminaBonus: 12,
		},
		{
			ID: "empty_tomb", Name: "The Empty Tomb",
			PrayerSiteID: "empty_tomb_site_01", BossSpawnID: "empty_tomb_named_boss_01",
		},
	}
}
