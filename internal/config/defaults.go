package config

import (
	_ "embed"
)

//go:embed defaults/miner.yaml
var defaultMinerYAML []byte

// DefaultMinerConfig returns the default Tile Miner configuration.
func DefaultMinerConfig() MinerConfig {
	return MinerConfig{
		World: MinerWorld{
			Width:  100,
			Height: 50,
		},
		Caves: MinerCaves{
			MinSystems:  8,
			MaxSystems:  12,
			MinWalk:     20,
			MaxWalk:     49,
			CarveChance: 0.8,
		},
		Ores: MinerOres{
			Richness:   1.0,
			DepthScale: 0.05,
			VeinChance: 0.3,
			VeinSpread: 0.4,
		},
		Player: MinerPlayer{
			MoveSpeed:     150,
			MiningSpeed:   1.0,
			MiningRange:   100,
			OreMultiplier: 1.0,
		},
	}
}
