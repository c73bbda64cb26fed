package services

import (
	"MovingList/internal/metrics"
	"MovingList/internal/models"
	"MovingList/internal/repository"
	"context"
	"fmt"
	"strings"
)

const defaultItemOrder = "created_at asc, id asc"

type ItemService interface {
	CreateItem(ctx context.Context, boxID uint, name string) (*models.Item, error)
	GetItemByID(ctx context.Context, id uint) (*models.Item, error)
	RenameItem(ctx context.Context, id uint, name string) (*models.Item, error)
	DeleteItem(ctx context.Context, id uint) error
	GetItemsByBoxID(ctx context.Context, boxID uint) ([]models.Item, error)
	ItemsSearch(ctx context.Context, filter, order string) ([]models.Item, error)
}

type itemServiceImpl struct {
	itemRepo repository.ItemRepository
	boxRepo  repository.BoxRepository
}

func NewItemService(itemRepository repository.ItemRepository, boxRepository repository.BoxRepository) ItemService {
	return &itemServiceImpl{itemRepo: itemRepository, boxRepo: boxRepository}
}

func (s *itemServiceImpl) CreateItem(ctx context.Context, boxID uint, name string) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.boxRepo.FindByID(ctx, boxID); err != nil {
		return nil, notFound(err, ErrBoxNotFound)
	}
	item := &models.Item{Name: name, BoxID: boxID}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	metrics.StoreWrites.WithLabelValues("item", "insert").Inc()
	return item, nil
}

func (s *itemServiceImpl) GetItemByID(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrItemNotFound)
	}
	return item, nil
}

func (s *itemServiceImpl) RenameItem(ctx context.Context, id uint, name string) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := s.itemRepo.UpdateName(ctx, id, name); err != nil {
		return nil, notFound(err, ErrItemNotFound)
	}
	metrics.StoreWrites.WithLabelValues("item", "update").Inc()
	return s.GetItemByID(ctx, id)
}

func (s *itemServiceImpl) DeleteItem(ctx context.Context, id uint) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return notFound(err, ErrItemNotFound)
	}
	metrics.StoreWrites.WithLabelValues("item", "delete").Inc()
	return nil
}

func (s *itemServiceImpl) GetItemsByBoxID(ctx context.Context, boxID uint) ([]models.Item, error) {
	return s.itemRepo.FindByBoxID(ctx, boxID)
}

func (s *itemServiceImpl) ItemsSearch(ctx context.Context, filter, order string) ([]models.Item, error) {
	whereClause, args, err := ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	if order == "" {
		order = defaultItemOrder
	}
	orderClause, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}
	return s.itemRepo.ItemsSearch(ctx, whereClause, args, orderClause)
}
