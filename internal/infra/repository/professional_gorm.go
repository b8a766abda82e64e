package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) Get(ctx context.Context, id string) (*models.Professional, error) {
	var professional models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&professional).Error; err != nil {
		return nil, asStoreErr(err)
	}
	return &professional, nil
}

func (r *ProfessionalGormRepository) ListByUser(ctx context.Context, userID string) ([]models.Professional, error) {
	var professionals []models.Professional
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&professionals).Error; err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *ProfessionalGormRepository) FindByID(ctx context.Context, userID, professionalID string) (*models.Professional, error) {
	var professional models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", professionalID, userID).
		First(&professional).Error; err != nil {
		return nil, asStoreErr(err)
	}
	return &professional, nil
}

func (r *ProfessionalGormRepository) Create(ctx context.Context, professional *models.Professional) error {
	return r.db.WithContext(ctx).Create(professional).Error
}

func (r *ProfessionalGormRepository) Update(ctx context.Context, professional *models.Professional) error {
	return r.db.WithContext(ctx).
		Model(professional).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(professional).Error
}

func (r *ProfessionalGormRepository) Delete(ctx context.Context, userID, professionalID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", professionalID, userID).
		Delete(&models.Professional{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ store.ProfessionalStore = (*ProfessionalGormRepository)(nil)
