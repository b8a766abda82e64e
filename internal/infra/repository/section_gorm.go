package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

type SectionGormRepository struct {
	db *gorm.DB
}

func NewSectionGormRepository(db *gorm.DB) *SectionGormRepository {
	return &SectionGormRepository{db: db}
}

func (r *SectionGormRepository) ListByUser(ctx context.Context, userID string) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("description ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *SectionGormRepository) FindByID(ctx context.Context, userID, sectionID string) (*models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", sectionID, userID).
		First(&section).Error; err != nil {
		return nil, asStoreErr(err)
	}
	return &section, nil
}

func (r *SectionGormRepository) Create(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *SectionGormRepository) Update(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).
		Model(section).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(section).Error
}

func (r *SectionGormRepository) Delete(ctx context.Context, userID, sectionID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", sectionID, userID).
		Delete(&models.Section{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ store.SectionStore = (*SectionGormRepository)(nil)
