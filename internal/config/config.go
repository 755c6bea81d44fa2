// Package config provides YAML-based game configuration loading and
// difficulty presets for the miner platform.
package config

// MinerConfig contains all configuration for the Tile Miner game.
type MinerConfig struct {
	World  MinerWorld  `yaml:"world"`
	Caves  MinerCaves  `yaml:"caves"`
	Ores   MinerOres   `yaml:"ores"`
	Player MinerPlayer `yaml:"player"`
}

// MinerWorld defines world dimensions in tiles.
type MinerWorld struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MinerCaves defines the random-walk cave carving pass.
type MinerCaves struct {
	MinSystems  int     `yaml:"min_systems"`  // Minimum number of cave systems
	MaxSystems  int     `yaml:"max_systems"`  // Maximum number of cave systems
	MinWalk     int     `yaml:"min_walk"`     // Minimum walk steps per system
	MaxWalk     int     `yaml:"max_walk"`     // Maximum walk steps per system
	CarveChance float64 `yaml:"carve_chance"` // Chance to carve each cell inside the walk radius
}

// MinerOres defines world-generation tuning for ore placement.
// Per-kind values (value, rarity, minimum depth) are part of the ore
// catalog and are not configurable.
type MinerOres struct {
	Richness   float64 `yaml:"richness"`    // Global multiplier on catalog rarity
	DepthScale float64 `yaml:"depth_scale"` // Rarity bonus per row below the kind's minimum depth
	VeinChance float64 `yaml:"vein_chance"` // Chance to grow a vein from a placed ore
	VeinSpread float64 `yaml:"vein_spread"` // Chance per neighbor to join the vein
}

// MinerPlayer defines player movement and base mining stats.
type MinerPlayer struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // World units per second
	MiningSpeed   float64 `yaml:"mining_speed"`   // Base seconds per mining attempt
	MiningRange   float64 `yaml:"mining_range"`   // Reach in world units
	OreMultiplier float64 `yaml:"ore_multiplier"` // Starting yield multiplier
}
