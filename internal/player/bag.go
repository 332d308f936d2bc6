package player

import (
	"errors"
	"fmt"
	"slices"

	"gridterrain/internal/registry"
)

// BagCapacity is the number of distinct items a bag holds.
const BagCapacity = 10

var ErrBagFull = errors.New("player: bag full")

type Item struct {
	ID     int
	Name   string
	Amount int
}

// Bag holds collected items in first-collected order.
type Bag struct {
	Items    []Item
	Capacity int
}

func NewBag() *Bag {
	return &Bag{Capacity: BagCapacity}
}

// Collect adds one of id. It returns the updated entry, or ErrBagFull when
// id is new and the bag already holds Capacity distinct items.
func (b *Bag) Collect(id int) (Item, error) {
	if i := slices.IndexFunc(b.Items, func(it Item) bool { return it.ID == id }); i >= 0 {
		b.Items[i].Amount++
		return b.Items[i], nil
	}
	if len(b.Items) >= b.Capacity {
		return Item{}, fmt.Errorf("collect %d: %w", id, ErrBagFull)
	}
	it := Item{ID: id, Name: registry.ItemName(id), Amount: 1}
	b.Items = append(b.Items, it)
	return it, nil
}

// Amount returns how many of id the bag holds.
func (b *Bag) Amount(id int) int {
	for _, it := range b.Items {
		if it.ID == id {
			return it.Amount
		}
	}
	return 0
}

// Len is the number of distinct items.
func (b *Bag) Len() int {
	return len(b.Items)
}

// Total is the sum of all amounts.
func (b *Bag) Total() int {
	n := 0
	for _, it := range b.Items {
		n += it.Amount
	}
	return n
}
