package config

import (
	"gridterrain/internal/noise"
	"gridterrain/internal/terrain"
)

// NoiseParams converts the noise section for noise.New.
func (c NoiseConfig) NoiseParams() noise.Params {
	return noise.Params{
		Octaves:     c.Octaves,
		Period:      c.Period,
		Persistence: c.Persistence,
		Lacunarity:  c.Lacunarity,
		Value:       c.Value,
	}
}

// ResolveSeed returns the configured seed, or a random one when it is 0.
func (c TerrainConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return terrain.RandomSeed()
}

// TerrainOptions converts the terrain section using an already resolved seed.
func (c TerrainConfig) TerrainOptions(seed int64) terrain.Options {
	return terrain.Options{
		Seed: seed,
		Streamer: terrain.Streamer{
			Radius: c.ChunkRadius,
			Margin: c.RegenMargin,
		},
		CellSize:           c.CellSize,
		PruneCustomBlocks:  c.PruneCustomBlocks,
		DedupeCustomBlocks: c.DedupeCustomBlocks,
	}
}
