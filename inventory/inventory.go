// Package inventory counts collected items by name.
package inventory

import (
	"sort"
	"strings"

	"github.com/milk9111/wildlife/logger"
	"github.com/sirupsen/logrus"
)

// Item is one inventory line.
type Item struct {
	Name  string
	Count int
}

// Inventory is a counted item registry. It is not safe for concurrent use.
type Inventory struct {
	counts map[string]int
}

func New() *Inventory {
	return &Inventory{counts: make(map[string]int)}
}

// AddItem adds count of name. Blank names and non-positive counts are
// ignored.
func (inv *Inventory) AddItem(name string, count int) {
	name = strings.TrimSpace(name)
	if name == "" || count <= 0 {
		return
	}
	inv.counts[name] += count
	logger.Log.WithFields(logrus.Fields{
		"item":  name,
		"count": inv.counts[name],
	}).Info("added to inventory")
}

// RegisterCollected is the collection hook animals call when they die.
func (inv *Inventory) RegisterCollected(name string, count int) {
	inv.AddItem(name, count)
}

func (inv *Inventory) Count(name string) int {
	return inv.counts[name]
}

// Total is the number of items across all names.
func (inv *Inventory) Total() int {
	n := 0
	for _, c := range inv.counts {
		n += c
	}
	return n
}

// Items lists the inventory sorted by name.
func (inv *Inventory) Items() []Item {
	items := make([]Item, 0, len(inv.counts))
	for name, c := range inv.counts {
		items = append(items, Item{Name: name, Count: c})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
