// Package library loads pre-authored diagram fragments and transplants
// them into a layout while preserving their internal structure.
package library

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/hpungsan/seer/internal/errors"
	"github.com/hpungsan/seer/internal/scene"
)

// Item is one named fragment: an ordered list of raw element records
// copied verbatim from the catalog file. Items are read-only; every use
// goes through Instantiate, which deep-copies.
type Item struct {
	Name     string
	ID       string
	Elements []scene.Element
}

// Catalog is a loaded fragment catalog with name-based lookup.
type Catalog struct {
	items  []Item
	byName map[string]Item
}

// Items returns the catalog's fragments in file order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of usable fragments.
func (c *Catalog) Len() int { return len(c.items) }

// Find resolves a query to a fragment: exact name match first
// (case-insensitive), then first substring match in catalog order.
// Returns nil when nothing matches.
func (c *Catalog) Find(query string) *Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if it, ok := c.byName[q]; ok {
		return &it
	}
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			found := it
			return &found
		}
	}
	return nil
}

// New builds a Catalog from items, indexing them by lowercased name.
// First item wins on name collisions.
func New(items []Item) *Catalog {
	byName := make(map[string]Item, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		if key == "" {
			continue
		}
		if _, exists := byName[key]; !exists {
			byName[key] = it
		}
	}
	return &Catalog{items: items, byName: byName}
}

// rawCatalog matches the .excalidrawlib envelope. Some files use
// "library" instead of "libraryItems".
type rawCatalog struct {
	LibraryItems []rawItem `json:"libraryItems"`
	Library      []rawItem `json:"library"`
}

type rawItem struct {
	Name     string           `json:"name"`
	ID       string           `json:"id"`
	Elements []map[string]any `json:"elements"`
}

// Load reads a fragment catalog document. Fragments with no usable
// elements are discarded. A missing or corrupt file returns
// CATALOG_UNREADABLE; callers degrade to primitive-only layout.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogUnreadable(path, err)
	}
	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewCatalogUnreadable(path, err)
	}

	rawItems := raw.LibraryItems
	if len(rawItems) == 0 {
		rawItems = raw.Library
	}

	items := make([]Item, 0, len(rawItems))
	for _, it := range rawItems {
		if len(it.Elements) == 0 {
			continue
		}
		els := make([]scene.Element, 0, len(it.Elements))
		for _, e := range it.Elements {
			if e != nil {
				els = append(els, scene.Element(e))
			}
		}
		if len(els) == 0 {
			continue
		}
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = strings.TrimSpace(it.ID)
		}
		id := strings.TrimSpace(it.ID)
		if name == "" && id == "" {
			continue
		}
		if name == "" {
			name = id
		}
		items = append(items, Item{Name: name, ID: id, Elements: els})
	}
	return New(items), nil
}
