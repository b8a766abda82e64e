package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

type TimeGormRepository struct {
	db *gorm.DB
}

func NewTimeGormRepository(db *gorm.DB) *TimeGormRepository {
	return &TimeGormRepository{db: db}
}

func (r *TimeGormRepository) ListByProfessional(ctx context.Context, professionalID string) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *TimeGormRepository) FindByID(ctx context.Context, professionalID, timeID string) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", timeID, professionalID).
		First(&slot).Error; err != nil {
		return nil, asStoreErr(err)
	}
	return &slot, nil
}

func (r *TimeGormRepository) Create(ctx context.Context, slot *models.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *TimeGormRepository) Update(ctx context.Context, slot *models.TimeSlot) error {
	return r.db.WithContext(ctx).
		Model(slot).
		Select("*").
		Omit("id", "professional_id", "created_at").
		Updates(slot).Error
}

func (r *TimeGormRepository) Delete(ctx context.Context, professionalID, timeID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", timeID, professionalID).
		Delete(&models.TimeSlot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ store.TimeStore = (*TimeGormRepository)(nil)
