package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// ReadOnly roda fn dentro de uma transação repeatable-read somente-leitura,
// de modo que as várias consultas de um relatório leiam o mesmo snapshot e o
// dashboard não misture estados parciais de escritas concorrentes.
func (r *ReportGormRepository) ReadOnly(ctx context.Context, fn func(store.ReportStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReportGormRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func (r *ReportGormRepository) SumPaidBetween(ctx context.Context, userID string, start, end time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(price), 0)").
		Where("user_id = ? AND paid_at >= ? AND paid_at <= ?", userID, start, end).
		Scan(&sum).Error
	return sum, err
}

func (r *ReportGormRepository) SumUnpaid(ctx context.Context, userID string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(price), 0)").
		Where("user_id = ? AND paid_at IS NULL", userID).
		Scan(&sum).Error
	return sum, err
}

// PaidAveragesByClient devolve a média de preço pago de cada cliente do
// usuário, uma linha por cliente. A média entre clientes é tirada em memória
// pelo relatório financeiro; a ordem das médias importa para o ticket médio.
func (r *ReportGormRepository) PaidAveragesByClient(ctx context.Context, userID string) ([]float64, error) {
	var avgs []float64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("AVG(price)").
		Where("user_id = ? AND paid_at IS NOT NULL", userID).
		Group("client_id").
		Scan(&avgs).Error
	if err != nil {
		return nil, err
	}
	return avgs, nil
}

func (r *ReportGormRepository) CountClientsByStatus(ctx context.Context, userID, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *ReportGormRepository) CountClientsCreatedBetween(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Count(&count).Error
	return count, err
}

func (r *ReportGormRepository) SectionsByUser(ctx context.Context, userID string) ([]models.Section, error) {
	var sections []models.Section
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("description ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *ReportGormRepository) ProfessionalsByUser(ctx context.Context, userID string) ([]models.Professional, error) {
	var professionals []models.Professional
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *ReportGormRepository) StatsBySection(ctx context.Context, userID, sectionID string) (store.AppointmentStats, error) {
	return r.stats(ctx, "section_id = ?", userID, sectionID)
}

func (r *ReportGormRepository) StatsByProfessional(ctx context.Context, userID, professionalID string) (store.AppointmentStats, error) {
	return r.stats(ctx, "professional_id = ?", userID, professionalID)
}

func (r *ReportGormRepository) stats(ctx context.Context, cond, userID, id string) (store.AppointmentStats, error) {
	var stats store.AppointmentStats
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(
			"COUNT(*) AS appointments, " +
				"COALESCE(SUM(price) FILTER (WHERE paid_at IS NOT NULL), 0) AS revenue, " +
				"COUNT(DISTINCT client_id) AS clients",
		).
		Where("user_id = ?", userID).
		Where(cond, id).
		Scan(&stats).Error
	return stats, err
}

// Compile-time check
var _ store.ReportStore = (*ReportGormRepository)(nil)
