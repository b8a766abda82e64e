package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// ListByUser ordena por data decrescente e, dentro do mesmo dia, pelo início
// do horário do agendamento.
func (r *AppointmentGormRepository) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Section").
		Preload("Time").
		Select("appointments.*").
		Joins("LEFT JOIN times ON times.id = appointments.time_id").
		Where("appointments.user_id = ?", userID).
		Order("appointments.date DESC").
		Order("times.start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) FindByID(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Section").
		Preload("Time").
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, asStoreErr(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// Update grava todas as colunas do agendamento, inclusive paid_at nulo.
func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Select("*").
		Omit("id", "user_id", "created_at").
		Omit(clauseAssociations...).
		Updates(ap).Error
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, userID, appointmentID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Associações não são colunas da tabela e ficam fora dos updates.
var clauseAssociations = []string{"Client", "Professional", "Section", "Time"}

// Compile-time check
var _ store.AppointmentStore = (*AppointmentGormRepository)(nil)
