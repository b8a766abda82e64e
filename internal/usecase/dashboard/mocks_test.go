package dashboard

import (
	"context"
	"time"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

// mockReportStore implementa ReportStore com campos de função. ReadOnly apenas
// executa fn contra o próprio mock, salvo quando readOnly é definido para
// entregar outro store; o snapshot transacional fica por conta da
// implementação relacional.
type mockReportStore struct {
	readOnly                   func(ctx context.Context, fn func(store.ReportStore) error) error
	sumPaidBetween             func(ctx context.Context, userID string, start, end time.Time) (float64, error)
	sumUnpaid                  func(ctx context.Context, userID string) (float64, error)
	paidAveragesByClient       func(ctx context.Context, userID string) ([]float64, error)
	countClientsByStatus       func(ctx context.Context, userID, status string) (int64, error)
	countClientsCreatedBetween func(ctx context.Context, userID string, start, end time.Time) (int64, error)
	sectionsByUser             func(ctx context.Context, userID string) ([]models.Section, error)
	professionalsByUser        func(ctx context.Context, userID string) ([]models.Professional, error)
	statsBySection             func(ctx context.Context, userID, sectionID string) (store.AppointmentStats, error)
	statsByProfessional        func(ctx context.Context, userID, professionalID string) (store.AppointmentStats, error)
}

func (m *mockReportStore) ReadOnly(ctx context.Context, fn func(store.ReportStore) error) error {
	if m.readOnly != nil {
		return m.readOnly(ctx, fn)
	}
	return fn(m)
}

func (m *mockReportStore) SumPaidBetween(ctx context.Context, userID string, start, end time.Time) (float64, error) {
	return m.sumPaidBetween(ctx, userID, start, end)
}

func (m *mockReportStore) SumUnpaid(ctx context.Context, userID string) (float64, error) {
	return m.sumUnpaid(ctx, userID)
}

func (m *mockReportStore) PaidAveragesByClient(ctx context.Context, userID string) ([]float64, error) {
	return m.paidAveragesByClient(ctx, userID)
}

func (m *mockReportStore) CountClientsByStatus(ctx context.Context, userID, status string) (int64, error) {
	return m.countClientsByStatus(ctx, userID, status)
}

func (m *mockReportStore) CountClientsCreatedBetween(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	return m.countClientsCreatedBetween(ctx, userID, start, end)
}

func (m *mockReportStore) SectionsByUser(ctx context.Context, userID string) ([]models.Section, error) {
	return m.sectionsByUser(ctx, userID)
}

func (m *mockReportStore) ProfessionalsByUser(ctx context.Context, userID string) ([]models.Professional, error) {
	return m.professionalsByUser(ctx, userID)
}

func (m *mockReportStore) StatsBySection(ctx context.Context, userID, sectionID string) (store.AppointmentStats, error) {
	return m.statsBySection(ctx, userID, sectionID)
}

func (m *mockReportStore) StatsByProfessional(ctx context.Context, userID, professionalID string) (store.AppointmentStats, error) {
	return m.statsByProfessional(ctx, userID, professionalID)
}

var _ store.ReportStore = (*mockReportStore)(nil)
