package registry

import (
	"fmt"
	"sort"
)

// ItemDefinition describes one mesh library item.
type ItemDefinition struct {
	ID   int
	Name string
	// Wall items are placed by tile classification.
	Wall bool
	// Orientations lists the grid orientations the generator writes.
	Orientations []int
}

var (
	Items     = make(map[int]*ItemDefinition)
	ItemNames = make(map[string]int)
)

// RegisterItem adds def, replacing any item with the same id.
func RegisterItem(def *ItemDefinition) {
	if old, ok := Items[def.ID]; ok {
		delete(ItemNames, old.Name)
	}
	Items[def.ID] = def
	ItemNames[def.Name] = def.ID
}

func init() {
	InitRegistry()
}

// InitRegistry resets the registry to the built-in mesh library.
func InitRegistry() {
	clear(Items)
	clear(ItemNames)

	RegisterItem(&ItemDefinition{ID: 0, Name: "floor", Orientations: []int{0}})
	RegisterItem(&ItemDefinition{ID: 1, Name: "wall_three_side", Wall: true, Orientations: []int{0, 1, 5, 13}})
	RegisterItem(&ItemDefinition{ID: 2, Name: "wall_two_side", Wall: true, Orientations: []int{0, 1, 4, 5}})
	RegisterItem(&ItemDefinition{ID: 3, Name: "wall_end", Wall: true, Orientations: []int{0, 4, 16, 19}})
	RegisterItem(&ItemDefinition{ID: 4, Name: "pillar", Wall: true, Orientations: []int{0}})
}

// ItemName returns the registered name for id, or a generic one.
func ItemName(id int) string {
	if def, ok := Items[id]; ok {
		return def.Name
	}
	return fmt.Sprintf("item_%d", id)
}

// Lookup returns the id registered under name.
func Lookup(name string) (int, bool) {
	id, ok := ItemNames[name]
	return id, ok
}

// IDs returns every registered id in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(Items))
	for id := range Items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
