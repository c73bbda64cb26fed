package repository

import (
	"MovingList/internal/models"
	"context"
	"gorm.io/gorm"
	"time"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByBoxID(ctx context.Context, boxID uint) ([]models.Item, error)
	UpdateName(ctx context.Context, id uint, name string) error
	FindDeleted(ctx context.Context, before time.Time) ([]models.Item, error)
	HardDelete(ctx context.Context, ids []uint) error
	ItemsSearch(
		ctx context.Context,
		whereClause string,
		args []interface{},
		order string,
	) ([]models.Item, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) FindByBoxID(ctx context.Context, boxID uint) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := r.db.WithContext(ctx).
		Where("box_id = ?", boxID).
		Order("created_at asc, id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) UpdateName(ctx context.Context, id uint, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepositoryImpl[T]) FindDeleted(ctx context.Context, before time.Time) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) HardDelete(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&models.Item{}).Error
}

func (r *ItemRepositoryImpl[T]) ItemsSearch(
	ctx context.Context,
	whereClause string,
	args []interface{},
	order string,
) ([]models.Item, error) {
	items := make([]models.Item, 0)
	query := r.db.WithContext(ctx)
	if whereClause != "" {
		query = query.Where(whereClause, args...)
	}
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
