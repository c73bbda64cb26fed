package inventory

import (
	"MovingList/internal/models"
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

const itemLoadOrder = "created_at asc, id asc"

// Collection is the local, rebuildable copy of the remote boxes and items.
type Collection struct {
	mu      sync.RWMutex
	boxes   []models.Box
	loading bool
	loadErr error
	log     logrus.FieldLogger
}

func NewCollection(log logrus.FieldLogger) *Collection {
	return &Collection{boxes: []models.Box{}, log: log}
}

// Load replaces the local state with a fresh join of both collections. When
// either fetch fails the previous state is kept.
func (c *Collection) Load(ctx context.Context, remote RemoteStore) error {
	c.setLoading(true)
	defer c.setLoading(false)

	boxes, err := remote.ListBoxes(ctx)
	if err != nil {
		return c.loadFailed("boxes", err)
	}
	items, err := remote.ListItems(ctx, ItemQuery{OrderBy: itemLoadOrder})
	if err != nil {
		return c.loadFailed("items", err)
	}

	joined := Join(boxes, items)
	c.mu.Lock()
	c.boxes = joined
	c.loadErr = nil
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"boxes": len(boxes),
		"items": len(items),
	}).Debug("collection loaded")
	return nil
}

func (c *Collection) loadFailed(collection string, err error) error {
	wrapped := fmt.Errorf("%w: load %s: %w", ErrRemote, collection, err)
	c.log.WithFields(logrus.Fields{
		"op":    "load",
		"error": err.Error(),
	}).Errorf("failed to fetch %s", collection)

	c.mu.Lock()
	c.loadErr = wrapped
	c.mu.Unlock()
	return wrapped
}

func (c *Collection) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
}

func (c *Collection) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// LoadErr reports the last failed load until a load succeeds.
func (c *Collection) LoadErr() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Boxes returns a copy of the local state; callers may keep or modify it.
func (c *Collection) Boxes() []models.Box {
	c.mu.RLock()
	defer c.mu.RUnlock()
	boxes := make([]models.Box, len(c.boxes))
	for i, box := range c.boxes {
		box.Items = append([]models.Item{}, box.Items...)
		boxes[i] = box
	}
	return boxes
}

// View is the filtered presentation of the current state.
func (c *Collection) View(query string) []models.Box {
	return Filter(c.Boxes(), query)
}

// Box returns a copy of a single box.
func (c *Collection) Box(id uint) (models.Box, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return models.Box{}, false
	}
	box := c.boxes[i]
	box.Items = append([]models.Item{}, box.Items...)
	return box, true
}

// Reset forgets everything, used when the session ends.
func (c *Collection) Reset() {
	c.mu.Lock()
	c.boxes = []models.Box{}
	c.loadErr = nil
	c.mu.Unlock()
}

func (c *Collection) indexOf(boxID uint) int {
	for i := range c.boxes {
		if c.boxes[i].ID == boxID {
			return i
		}
	}
	return -1
}

func (c *Collection) prependBox(box models.Box) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if box.Items == nil {
		box.Items = []models.Item{}
	}
	c.boxes = append([]models.Box{box}, c.boxes...)
}

func (c *Collection) renameBox(id uint, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		c.boxes[i].Name = name
	}
}

func (c *Collection) removeBox(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		c.boxes = append(c.boxes[:i:i], c.boxes[i+1:]...)
	}
}

func (c *Collection) appendItem(item models.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(item.BoxID); i >= 0 {
		c.boxes[i].Items = append(c.boxes[i].Items, item)
	}
}

func (c *Collection) renameItem(boxID, itemID uint, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(boxID)
	if i < 0 {
		return
	}
	for j := range c.boxes[i].Items {
		if c.boxes[i].Items[j].ID == itemID {
			c.boxes[i].Items[j].Name = name
			return
		}
	}
}

func (c *Collection) removeItem(boxID, itemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(boxID)
	if i < 0 {
		return
	}
	items := c.boxes[i].Items
	for j := range items {
		if items[j].ID == itemID {
			c.boxes[i].Items = append(items[:j:j], items[j+1:]...)
			return
		}
	}
}

// itemAt resolves a position inside a box to the item's id.
func (c *Collection) itemAt(boxID uint, index int) (uint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(boxID)
	if i < 0 || index < 0 || index >= len(c.boxes[i].Items) {
		return 0, false
	}
	return c.boxes[i].Items[index].ID, true
}
