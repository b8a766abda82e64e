package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) ListByUser(ctx context.Context, userID string) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("status ASC").
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByID(ctx context.Context, userID, clientID string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error; err != nil {
		return nil, asStoreErr(err)
	}
	return &client, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// Update grava todas as colunas, inclusive as opcionais nulas. O recurso de
// clientes tem semântica de substituição completa, não de patch.
func (r *ClientGormRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).
		Model(client).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(client).Error
}

func (r *ClientGormRepository) Delete(ctx context.Context, userID, clientID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		Delete(&models.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ store.ClientStore = (*ClientGormRepository)(nil)
