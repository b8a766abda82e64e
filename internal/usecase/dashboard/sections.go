package dashboard

import (
	"context"

	"github.com/agendafacil/agenda-api/internal/dto"
	"github.com/agendafacil/agenda-api/internal/store"
)

type SectionsReport struct {
	reports store.ReportStore
}

func NewSectionsReport(reports store.ReportStore) *SectionsReport {
	return &SectionsReport{reports: reports}
}

func (uc *SectionsReport) Execute(
	ctx context.Context,
	userID string,
) (*dto.SectionsReportDTO, error) {

	var out dto.SectionsReportDTO

	err := uc.reports.ReadOnly(ctx, func(s store.ReportStore) error {
		// A lista de seções vem do mesmo snapshot das agregações; uma seção
		// criada no meio do relatório não aparece pela metade.
		sections, err := s.SectionsByUser(ctx, userID)
		if err != nil {
			return err
		}

		metrics := make([]dto.EntityMetricsDTO, 0, len(sections))
		for _, section := range sections {
			stats, err := s.StatsBySection(ctx, userID, section.ID)
			if err != nil {
				return err
			}

			metrics = append(metrics, dto.EntityMetricsDTO{
				ID:               section.ID,
				Name:             section.Description,
				AppointmentCount: stats.Appointments,
				Revenue:          stats.Revenue,
				ClientCount:      stats.Clients,
			})
		}

		out = dto.SectionsReportDTO{
			SectionMetrics:  metrics,
			MostUsedSection: pickTop(metrics, byAppointmentCount),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}
