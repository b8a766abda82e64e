package dashboard

import (
	"context"
	"time"

	"github.com/agendafacil/agenda-api/internal/calendar"
	"github.com/agendafacil/agenda-api/internal/dto"
	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

type ClientsReport struct {
	reports store.ReportStore
	now     func() time.Time
}

func NewClientsReport(
	reports store.ReportStore,
	now func() time.Time,
) *ClientsReport {
	return &ClientsReport{
		reports: reports,
		now:     now,
	}
}

func (uc *ClientsReport) Execute(
	ctx context.Context,
	userID string,
) (*dto.ClientsReportDTO, error) {

	var out dto.ClientsReportDTO

	err := uc.reports.ReadOnly(ctx, func(s store.ReportStore) error {
		now := uc.now()

		active, err := s.CountClientsByStatus(ctx, userID, models.ClientStatusActive)
		if err != nil {
			return err
		}

		inactive, err := s.CountClientsByStatus(ctx, userID, models.ClientStatusInactive)
		if err != nil {
			return err
		}

		newClients, err := s.CountClientsCreatedBetween(
			ctx,
			userID,
			calendar.StartOfMonth(now),
			calendar.EndOfMonth(now),
		)
		if err != nil {
			return err
		}

		growth := make([]dto.MonthNewClientsDTO, 0, 6)
		for i := 5; i >= 0; i-- {
			monthStart := calendar.MonthsAgo(now, i)

			count, err := s.CountClientsCreatedBetween(
				ctx,
				userID,
				monthStart,
				calendar.EndOfMonth(monthStart),
			)
			if err != nil {
				return err
			}

			growth = append(growth, dto.MonthNewClientsDTO{
				Month:      calendar.MonthLabel(monthStart),
				NewClients: count,
			})
		}

		out = dto.ClientsReportDTO{
			ActiveClients:   active,
			InactiveClients: inactive,
			NewClients:      newClients,
			ClientGrowth:    growth,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}
