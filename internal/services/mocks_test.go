package services

import (
	"MovingList/internal/models"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) Create(ctx context.Context, box *models.Box) error {
	args := m.Called(ctx, box)
	if args.Error(0) == nil {
		box.ID = 1
	}
	return args.Error(0)
}

func (m *MockBoxRepository) FindByID(ctx context.Context, id uint) (*models.Box, error) {
	args := m.Called(ctx, id)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxRepository) FindAll(ctx context.Context, order string) ([]models.Box, error) {
	args := m.Called(ctx, order)
	boxes, _ := args.Get(0).([]models.Box)
	return boxes, args.Error(1)
}

func (m *MockBoxRepository) Update(ctx context.Context, box *models.Box) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockBoxRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoxRepository) UpdateName(ctx context.Context, id uint, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockBoxRepository) DeleteWithItems(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoxRepository) FindDeleted(ctx context.Context, before time.Time) ([]models.Box, error) {
	args := m.Called(ctx, before)
	boxes, _ := args.Get(0).([]models.Box)
	return boxes, args.Error(1)
}

func (m *MockBoxRepository) HardDelete(ctx context.Context, ids []uint) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil {
		item.ID = 1
	}
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	args := m.Called(ctx, id)
	item, ok := args.Get(0).(*models.Item)
	if !ok {
		return nil, args.Error(1)
	}
	return item, args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, order string) ([]models.Item, error) {
	args := m.Called(ctx, order)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) FindByBoxID(ctx context.Context, boxID uint) ([]models.Item, error) {
	args := m.Called(ctx, boxID)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) UpdateName(ctx context.Context, id uint, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockItemRepository) FindDeleted(ctx context.Context, before time.Time) ([]models.Item, error) {
	args := m.Called(ctx, before)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) HardDelete(ctx context.Context, ids []uint) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockItemRepository) ItemsSearch(
	ctx context.Context,
	whereClause string,
	args []interface{},
	order string,
) ([]models.Item, error) {
	called := m.Called(ctx, whereClause, args, order)
	items, _ := called.Get(0).([]models.Item)
	return items, called.Error(1)
}
