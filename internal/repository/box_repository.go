package repository

import (
	"MovingList/internal/models"
	"context"
	"gorm.io/gorm"
	"time"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	UpdateName(ctx context.Context, id uint, name string) error
	DeleteWithItems(ctx context.Context, id uint) error
	FindDeleted(ctx context.Context, before time.Time) ([]models.Box, error)
	HardDelete(ctx context.Context, ids []uint) error
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) UpdateName(ctx context.Context, id uint, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Box{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithItems removes the box and every item it owns in one transaction,
// so no live item ever references a deleted box.
func (r *BoxRepositoryImpl[T]) DeleteWithItems(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var box models.Box
		if err := tx.First(&box, id).Error; err != nil {
			return err
		}
		if err := tx.Where("box_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&box).Error
	})
}

func (r *BoxRepositoryImpl[T]) FindDeleted(ctx context.Context, before time.Time) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// HardDelete purges boxes and any item rows still pointing at them.
func (r *BoxRepositoryImpl[T]) HardDelete(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("box_id IN ?", ids).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id IN ?", ids).Delete(&models.Box{}).Error
	})
}
