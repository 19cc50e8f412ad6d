package itembank

import (
	"fmt"
	"sort"
)

// Bank is an immutable-per-calibration-cycle collection of items.
// Lookups are by id; iteration order is deterministic (sorted by id) so
// downstream selection is reproducible.
type Bank struct {
	items []Item
	byID  map[string]Item
}

// NewBank builds a bank from items. Duplicate ids are rejected; items with
// invalid content are rejected outright, while items with invalid
// parameters are kept (they are skipped by selection until repaired).
func NewBank(items []Item) (*Bank, error) {
	b := &Bank{byID: make(map[string]Item, len(items))}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := b.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %s", it.ID)
		}
		b.byID[it.ID] = it
		b.items = append(b.items, it)
	}
	sort.Slice(b.items, func(i, j int) bool { return b.items[i].ID < b.items[j].ID })
	return b, nil
}

// Get returns the item with the given id.
func (b *Bank) Get(id string) (Item, bool) {
	it, ok := b.byID[id]
	return it, ok
}

// Len returns the number of items in the bank.
func (b *Bank) Len() int {
	return len(b.items)
}

// Items returns all items in id order. The returned slice is shared;
// callers must not mutate it.
func (b *Bank) Items() []Item {
	return b.items
}

// DomainCounts returns how many eligible items each domain holds.
func (b *Bank) DomainCounts() map[Domain]int {
	counts := make(map[Domain]int)
	for _, it := range b.items {
		if it.Eligible() {
			counts[it.Domain]++
		}
	}
	return counts
}
