package asset

// DefaultArenaConfig is the built-in Galilee arena in config file form
const DefaultArenaConfig = `

# === Runtime ===
[runtime]
db = "nazarene.db"
seed = 1

# === Player ===
[player]
position = { x = 0.0, y = 0.0, z = 0.0 }
facing = { x = 0.0, y = -1.0, z = 0.0 }

# === Prayer sites ===
[[prayer_sites]]
id = "galilee_site_01"
name = "Prayer Site: Galilee Shores"
position = { x = 0.0, y = 0.0, z = 0.0 }

# === Enemy roster ===
[[enemies]]
spawn_id = "galilee_shield_01"
name = "Roman Shieldbearer I"
archetype = "melee_shield"
position = { x = 850.0, y = 420.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_shield_02"
name = "Roman Shieldbearer II"
archetype = "melee_shield"
position = { x = -900.0, y = 450.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_spear_01"
name = "Roman Spearman I"
archetype = "spear"
position = { x = 1200.0, y = -250.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_spear_02"
name = "Roman Spearman II"
archetype = "spear"
position = { x = -1200.0, y = -300.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_ranged_01"
name = "Roman Slinger I"
archetype = "ranged"
position = { x = 1300.0, y = 950.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_ranged_02"
name = "Roman Slinger II"
archetype = "ranged"
position = { x = -1300.0, y = 980.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_demon_01"
name = "Unclean Spirit I"
archetype = "demon"
position = { x = 460.0, y = -1100.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_demon_02"
name = "Unclean Spirit II"
archetype = "demon"
position = { x = -460.0, y = -1180.0, z = 0.0 }

[[enemies]]
spawn_id = "galilee_named_boss_01"
name = "Legion Sovereign of Gerasa"
archetype = "boss"
position = { x = 0.0, y = -2200.0, z = 0.0 }

# === Boss reinforcements ===
[[reinforcements]]
boss = "galilee_named_boss_01"
phase = 2

[[reinforcements.enemies]]
spawn_id = "galilee_wave_demon_01"
name = "Spirit of Legion"
archetype = "demon"
position = { x = 600.0, y = -2000.0, z = 0.0 }

[[reinforcements.enemies]]
spawn_id = "galilee_wave_demon_02"
name = "Spirit of Legion"
archetype = "demon"
position = { x = -600.0, y = -2000.0, z = 0.0 }
`
