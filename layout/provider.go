package layout

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Provider resolves a layout from its id, as stored in a course record.
type Provider interface {
	FindLayout(id uuid.UUID) (Layout, bool)
}

// Catalog knows the predefined layouts, every layout Settings can
// generate, and any layout registered with it. Generated layouts are
// rebuilt on demand and kept in a small cache.
type Catalog struct {
	mu         sync.RWMutex
	registered map[uuid.UUID]Layout

	// generated maps the id of every generated layout to its settings.
	generated map[uuid.UUID]Settings

	cache *expirable.LRU[uuid.UUID, Layout]
}

func NewCatalog() *Catalog {
	c := &Catalog{
		registered: make(map[uuid.UUID]Layout),
		generated:  make(map[uuid.UUID]Settings),
		cache:      expirable.NewLRU[uuid.UUID, Layout](32, nil, time.Hour),
	}
	for _, l := range Canonical {
		c.registered[l.ID] = l
	}
	for _, s := range AllSettings() {
		if s.Shape == DigitalNShape {
			continue
		}
		c.generated[uuid.NewSHA1(settingsNamespace, []byte(s.Key()))] = s
	}
	return c
}

// Register adds l to the catalog, replacing any layout with the same id.
func (c *Catalog) Register(l Layout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registered[l.ID] = l
}

func (c *Catalog) FindLayout(id uuid.UUID) (Layout, bool) {
	c.mu.RLock()
	l, ok := c.registered[id]
	c.mu.RUnlock()
	if ok {
		return l, true
	}

	if l, ok := c.cache.Get(id); ok {
		return l, true
	}
	s, ok := c.generated[id]
	if !ok {
		return Layout{}, false
	}
	l = s.Layout()
	c.cache.Add(id, l)
	return l, true
}

// Layouts lists the registered layouts, predefined ones first.
func (c *Catalog) Layouts() []Layout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	layouts := append([]Layout(nil), Canonical...)
	for id, l := range c.registered {
		if !isCanonical(id) {
			layouts = append(layouts, l)
		}
	}
	return layouts
}

func isCanonical(id uuid.UUID) bool {
	for _, l := range Canonical {
		if l.ID == id {
			return true
		}
	}
	return false
}
