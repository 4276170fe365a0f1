package catalog

import (
	"sort"
	"strings"
)

// Catalog is an immutable, ordered collection of tradable items.
type Catalog struct {
	items  []Item
	byName map[string]*Item
}

// New builds a catalog from the given items. Later duplicates of a name are
// ignored; the first occurrence wins.
func New(items []Item) *Catalog {
	c := &Catalog{
		items:  make([]Item, 0, len(items)),
		byName: make(map[string]*Item, len(items)),
	}
	for _, item := range items {
		if _, exists := c.byName[item.Name]; exists {
			continue
		}
		c.items = append(c.items, item)
		c.byName[item.Name] = &c.items[len(c.items)-1]
	}
	return c
}

// Default returns the catalog built from the embedded item table.
func Default() *Catalog {
	return New(defaultItems)
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the full item list in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an item by its unique name.
func (c *Catalog) Lookup(name string) (Item, bool) {
	item, ok := c.byName[name]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// ByCategory returns all items in the given category, in catalog order.
func (c *Catalog) ByCategory(cat Category) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Category == cat {
			out = append(out, item)
		}
	}
	return out
}

// Search returns all items whose name contains the query, case-insensitively.
// An empty query matches everything.
func (c *Catalog) Search(query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Items()
	}
	var out []Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
		}
	}
	return out
}

// MassDuped reports whether the item's status carries the mass-duped marker.
func MassDuped(item Item) bool {
	return strings.Contains(item.Status, StatusMassDuped)
}

// SortKey selects the column items are ordered by.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByValue  SortKey = "value"
	SortByTier   SortKey = "tier"
	SortByDemand SortKey = "demand"
	SortByStatus SortKey = "status"
)

// SortItems orders items by the given key. The sort is stable so repeated
// re-sorting keeps equal rows in their previous relative order.
func SortItems(items []Item, key SortKey, ascending bool) {
	less := func(a, b Item) bool {
		switch key {
		case SortByValue:
			return a.Value < b.Value
		case SortByTier:
			return a.Tier.Rank() < b.Tier.Rank()
		case SortByDemand:
			return a.Demand < b.Demand
		case SortByStatus:
			return a.Status < b.Status
		default:
			return a.Name < b.Name
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return less(items[i], items[j])
		}
		return less(items[j], items[i])
	})
}

// FavoritesFirst stably moves favorited items ahead of the rest.
func FavoritesFirst(items []Item, isFavorite func(name string) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return isFavorite(items[i].Name) && !isFavorite(items[j].Name)
	})
}
