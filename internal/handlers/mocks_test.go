package handlers

import (
	"MovingList/internal/models"
	"MovingList/internal/services"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) CreateBox(ctx context.Context, name string) (*models.Box, error) {
	args := m.Called(name)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) GetBoxByID(ctx context.Context, id uint) (*models.Box, error) {
	args := m.Called(id)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) RenameBox(ctx context.Context, id uint, name string) (*models.Box, error) {
	args := m.Called(id, name)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) DeleteBox(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBoxService) GetBoxes(ctx context.Context, order string) ([]models.Box, error) {
	args := m.Called(order)
	boxes, _ := args.Get(0).([]models.Box)
	return boxes, args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, boxID uint, name string) (*models.Item, error) {
	args := m.Called(boxID, name)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) GetItemByID(ctx context.Context, id uint) (*models.Item, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) RenameItem(ctx context.Context, id uint, name string) (*models.Item, error) {
	args := m.Called(id, name)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockItemService) GetItemsByBoxID(ctx context.Context, boxID uint) ([]models.Item, error) {
	args := m.Called(boxID)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemService) ItemsSearch(ctx context.Context, filter, order string) ([]models.Item, error) {
	args := m.Called(filter, order)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RequestLogin(ctx context.Context, email, redirectTo string) error {
	args := m.Called(email, redirectTo)
	return args.Error(0)
}

func (m *MockAuthService) Verify(ctx context.Context, loginToken string) (*services.Session, error) {
	args := m.Called(loginToken)
	sess, _ := args.Get(0).(*services.Session)
	return sess, args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (*services.Session, error) {
	args := m.Called(accessToken)
	sess, _ := args.Get(0).(*services.Session)
	return sess, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken string) error {
	args := m.Called(accessToken)
	return args.Error(0)
}
