package inventory

import (
	"MovingList/internal/models"
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockRemoteStore struct {
	mock.Mock
}

func (m *MockRemoteStore) ListBoxes(ctx context.Context) ([]models.Box, error) {
	args := m.Called()
	boxes, _ := args.Get(0).([]models.Box)
	return boxes, args.Error(1)
}

func (m *MockRemoteStore) ListItems(ctx context.Context, query ItemQuery) ([]models.Item, error) {
	args := m.Called(query)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockRemoteStore) InsertBox(ctx context.Context, name string) (*models.Box, error) {
	args := m.Called(name)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockRemoteStore) UpdateBox(ctx context.Context, id uint, name string) error {
	return m.Called(id, name).Error(0)
}

func (m *MockRemoteStore) DeleteBox(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockRemoteStore) InsertItem(ctx context.Context, boxID uint, name string) (*models.Item, error) {
	args := m.Called(boxID, name)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockRemoteStore) UpdateItem(ctx context.Context, id uint, name string) error {
	return m.Called(id, name).Error(0)
}

func (m *MockRemoteStore) DeleteItem(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

type MockIdentityProvider struct {
	mock.Mock
	mu        sync.Mutex
	listeners map[int]func(SessionEvent)
	next      int
}

func (m *MockIdentityProvider) Session(ctx context.Context) (*Session, error) {
	args := m.Called()
	sess, _ := args.Get(0).(*Session)
	return sess, args.Error(1)
}

func (m *MockIdentityProvider) OnSessionChange(fn func(SessionEvent)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listeners == nil {
		m.listeners = map[int]func(SessionEvent){}
	}
	id := m.next
	m.next++
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *MockIdentityProvider) SignInWithOTP(ctx context.Context, email, redirectTo string) error {
	return m.Called(email, redirectTo).Error(0)
}

func (m *MockIdentityProvider) SignOut(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *MockIdentityProvider) emit(event SessionEvent) {
	m.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(event)
	}
}

func (m *MockIdentityProvider) listenerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func box(id uint, name string, items ...models.Item) models.Box {
	if items == nil {
		items = []models.Item{}
	}
	return models.Box{
		BaseModel: models.BaseModel{ID: id, CreatedAt: epoch.Add(time.Duration(id) * time.Minute)},
		Name:      name,
		Items:     items,
	}
}

func item(id, boxID uint, name string) models.Item {
	return models.Item{
		BaseModel: models.BaseModel{ID: id, CreatedAt: epoch.Add(time.Duration(id) * time.Second)},
		BoxID:     boxID,
		Name:      name,
	}
}

func itemNames(b models.Box) []string {
	names := make([]string, 0, len(b.Items))
	for _, it := range b.Items {
		names = append(names, it.Name)
	}
	return names
}

// seededCollection returns a collection already holding boxes.
func seededCollection(boxes ...models.Box) *Collection {
	c := NewCollection(testLogger())
	c.boxes = boxes
	return c
}
