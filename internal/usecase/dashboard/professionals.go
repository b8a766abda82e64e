package dashboard

import (
	"context"

	"github.com/agendafacil/agenda-api/internal/dto"
	"github.com/agendafacil/agenda-api/internal/store"
)

type ProfessionalsReport struct {
	reports store.ReportStore
}

func NewProfessionalsReport(reports store.ReportStore) *ProfessionalsReport {
	return &ProfessionalsReport{reports: reports}
}

func (uc *ProfessionalsReport) Execute(
	ctx context.Context,
	userID string,
) (*dto.ProfessionalsReportDTO, error) {

	var out dto.ProfessionalsReportDTO

	err := uc.reports.ReadOnly(ctx, func(s store.ReportStore) error {
		professionals, err := s.ProfessionalsByUser(ctx, userID)
		if err != nil {
			return err
		}

		metrics := make([]dto.EntityMetricsDTO, 0, len(professionals))
		for _, professional := range professionals {
			stats, err := s.StatsByProfessional(ctx, userID, professional.ID)
			if err != nil {
				return err
			}

			metrics = append(metrics, dto.EntityMetricsDTO{
				ID:               professional.ID,
				Name:             professional.Name,
				AppointmentCount: stats.Appointments,
				Revenue:          stats.Revenue,
				ClientCount:      stats.Clients,
			})
		}

		out = dto.ProfessionalsReportDTO{
			ProfessionalMetrics: metrics,
			TopPerformer:        pickTop(metrics, byRevenue),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}
