package inventory

import (
	"MovingList/internal/models"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Dispatcher turns each user intent into exactly one remote write and, once
// the write succeeds, the matching change to the Collection.
type Dispatcher struct {
	mu     sync.Mutex
	remote RemoteStore
	store  *Collection
	log    logrus.FieldLogger
}

func NewDispatcher(remote RemoteStore, store *Collection, log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{remote: remote, store: store, log: log}
}

// Reload refetches the collection. It waits for any write in flight so a
// fetch never lands on top of a write it did not see.
func (d *Dispatcher) Reload(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Load(ctx, d.remote)
}

func (d *Dispatcher) CreateBox(ctx context.Context, name string) (*models.Box, error) {
	name, err := requireName(name, "box")
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	box, err := d.remote.InsertBox(ctx, name)
	if err != nil {
		return nil, d.failed("create_box", logrus.Fields{"name": name}, err)
	}
	box.Items = []models.Item{}
	d.store.prependBox(*box)
	return box, nil
}

// RenameBox writes even when the name is unchanged.
func (d *Dispatcher) RenameBox(ctx context.Context, id uint, name string) error {
	name, err := requireName(name, "box")
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.remote.UpdateBox(ctx, id, name); err != nil {
		return d.failed("rename_box", logrus.Fields{"box_id": id}, err)
	}
	d.store.renameBox(id, name)
	return nil
}

// DeleteBox relies on the remote store to delete the box's items.
func (d *Dispatcher) DeleteBox(ctx context.Context, id uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.remote.DeleteBox(ctx, id); err != nil {
		return d.failed("delete_box", logrus.Fields{"box_id": id}, err)
	}
	d.store.removeBox(id)
	return nil
}

func (d *Dispatcher) AddItem(ctx context.Context, boxID uint, name string) (*models.Item, error) {
	name, err := requireName(name, "item")
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	item, err := d.remote.InsertItem(ctx, boxID, name)
	if err != nil {
		return nil, d.failed("add_item", logrus.Fields{"box_id": boxID}, err)
	}
	d.store.appendItem(*item)
	return item, nil
}

func (d *Dispatcher) RenameItem(ctx context.Context, boxID, itemID uint, name string) error {
	name, err := requireName(name, "item")
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renameItem(ctx, boxID, itemID, name)
}

func (d *Dispatcher) DeleteItem(ctx context.Context, boxID, itemID uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleteItem(ctx, boxID, itemID)
}

// RenameItemAt addresses the item by its position in the local box. The
// position is only used to find the item's id.
func (d *Dispatcher) RenameItemAt(ctx context.Context, boxID uint, index int, name string) error {
	name, err := requireName(name, "item")
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	itemID, err := d.resolve("rename_item", boxID, index)
	if err != nil {
		return err
	}
	return d.renameItem(ctx, boxID, itemID, name)
}

// DeleteItemAt removes the item at index; later items move down by one.
func (d *Dispatcher) DeleteItemAt(ctx context.Context, boxID uint, index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	itemID, err := d.resolve("delete_item", boxID, index)
	if err != nil {
		return err
	}
	return d.deleteItem(ctx, boxID, itemID)
}

func (d *Dispatcher) renameItem(ctx context.Context, boxID, itemID uint, name string) error {
	if err := d.remote.UpdateItem(ctx, itemID, name); err != nil {
		return d.failed("rename_item", logrus.Fields{"box_id": boxID, "item_id": itemID}, err)
	}
	d.store.renameItem(boxID, itemID, name)
	return nil
}

func (d *Dispatcher) deleteItem(ctx context.Context, boxID, itemID uint) error {
	if err := d.remote.DeleteItem(ctx, itemID); err != nil {
		return d.failed("delete_item", logrus.Fields{"box_id": boxID, "item_id": itemID}, err)
	}
	d.store.removeItem(boxID, itemID)
	return nil
}

func (d *Dispatcher) resolve(op string, boxID uint, index int) (uint, error) {
	itemID, ok := d.store.itemAt(boxID, index)
	if !ok {
		err := fmt.Errorf("%w: box %d has no item at position %d", ErrNotFound, boxID, index)
		d.log.WithFields(logrus.Fields{
			"op":     op,
			"box_id": boxID,
			"index":  index,
		}).Warn(err.Error())
		return 0, err
	}
	return itemID, nil
}

func (d *Dispatcher) failed(op string, fields logrus.Fields, err error) error {
	d.log.WithFields(fields).WithFields(logrus.Fields{
		"op":    op,
		"error": err.Error(),
	}).Error("remote write failed")
	return fmt.Errorf("%w: %s: %w", ErrRemote, op, err)
}

func requireName(name, entity string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", ErrValidation, entity)
	}
	return name, nil
}
