package player

import (
	"gridterrain/internal/physics"
	"gridterrain/internal/profiling"
)

const (
	// BuildItem is the item the build tool places.
	BuildItem = 4
	// MineableItems is the exclusive upper bound of ids the mine tool collects.
	MineableItems = 4
)

// Click casts a ray from the head and applies the active tool to the first
// occupied cell. Build places BuildItem one cell above the hit; mine adds a
// random item to the bag. It reports whether the ray hit anything.
func (p *Player) Click() bool {
	defer profiling.Track("player.Click")()
	res := physics.Raycast(p.HeadPosition(), p.LookDirection(),
		physics.MinReachDistance, physics.MaxReachDistance, p.grid, p.cellSize)
	if !res.Hit {
		return false
	}

	switch p.Tool {
	case ToolBuild:
		if p.builder != nil {
			p.builder.PlaceBlock(res.HitPosition.Add(0, 1, 0), BuildItem)
		}
	case ToolMine:
		id := p.rng.IntN(MineableItems)
		it, err := p.Bag.Collect(id)
		if err != nil {
			p.log.Debug("mine skipped", "item", id, "error", err)
			return true
		}
		p.log.Debug("mined", "item", it.ID, "amount", it.Amount, "bag", p.Bag.Len())
	}
	return true
}
