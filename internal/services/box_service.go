package services

import (
	"MovingList/internal/metrics"
	"MovingList/internal/models"
	"MovingList/internal/repository"
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"strings"
)

const defaultBoxOrder = "created_at desc, id desc"

type BoxService interface {
	CreateBox(ctx context.Context, name string) (*models.Box, error)
	GetBoxByID(ctx context.Context, id uint) (*models.Box, error)
	RenameBox(ctx context.Context, id uint, name string) (*models.Box, error)
	DeleteBox(ctx context.Context, id uint) error
	GetBoxes(ctx context.Context, order string) ([]models.Box, error)
}

func NewBoxService(boxRepo repository.BoxRepository) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo}
}

type boxServiceImpl struct {
	boxRepo repository.BoxRepository
}

func (s *boxServiceImpl) CreateBox(ctx context.Context, name string) (*models.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	box := &models.Box{Name: name, Items: []models.Item{}}
	if err := s.boxRepo.Create(ctx, box); err != nil {
		return nil, fmt.Errorf("create box: %w", err)
	}
	metrics.StoreWrites.WithLabelValues("box", "insert").Inc()
	return box, nil
}

func (s *boxServiceImpl) GetBoxByID(ctx context.Context, id uint) (*models.Box, error) {
	box, err := s.boxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrBoxNotFound)
	}
	return box, nil
}

func (s *boxServiceImpl) RenameBox(ctx context.Context, id uint, name string) (*models.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := s.boxRepo.UpdateName(ctx, id, name); err != nil {
		return nil, notFound(err, ErrBoxNotFound)
	}
	metrics.StoreWrites.WithLabelValues("box", "update").Inc()
	return s.GetBoxByID(ctx, id)
}

func (s *boxServiceImpl) DeleteBox(ctx context.Context, id uint) error {
	if err := s.boxRepo.DeleteWithItems(ctx, id); err != nil {
		return notFound(err, ErrBoxNotFound)
	}
	metrics.StoreWrites.WithLabelValues("box", "delete").Inc()
	return nil
}

func (s *boxServiceImpl) GetBoxes(ctx context.Context, order string) ([]models.Box, error) {
	if order == "" {
		order = defaultBoxOrder
	}
	orderClause, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}
	boxes, err := s.boxRepo.FindAll(ctx, orderClause)
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// notFound maps gorm's missing-row error onto the given sentinel.
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
