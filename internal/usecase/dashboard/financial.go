package dashboard

import (
	"context"
	"time"

	"github.com/agendafacil/agenda-api/internal/calendar"
	"github.com/agendafacil/agenda-api/internal/dto"
	"github.com/agendafacil/agenda-api/internal/store"
)

type FinancialReport struct {
	reports store.ReportStore
	now     func() time.Time
}

func NewFinancialReport(
	reports store.ReportStore,
	now func() time.Time,
) *FinancialReport {
	return &FinancialReport{
		reports: reports,
		now:     now,
	}
}

func (uc *FinancialReport) Execute(
	ctx context.Context,
	userID string,
) (*dto.FinancialReportDTO, error) {

	var out dto.FinancialReportDTO

	err := uc.reports.ReadOnly(ctx, func(s store.ReportStore) error {
		now := uc.now()

		current, err := s.SumPaidBetween(
			ctx,
			userID,
			calendar.StartOfMonth(now),
			calendar.EndOfMonth(now),
		)
		if err != nil {
			return err
		}

		planned, err := s.SumUnpaid(ctx, userID)
		if err != nil {
			return err
		}

		// Ticket médio: média das médias por cliente, não a média global.
		// Um cliente com muitos atendimentos baratos não pode afundar o
		// ticket dos demais.
		avgs, err := s.PaidAveragesByClient(ctx, userID)
		if err != nil {
			return err
		}

		var ticket float64
		if len(avgs) > 0 {
			var sum float64
			for _, a := range avgs {
				sum += a
			}
			ticket = sum / float64(len(avgs))
		}

		series := make([]dto.MonthRevenueDTO, 0, 12)
		for i := 11; i >= 0; i-- {
			monthStart := calendar.MonthsAgo(now, i)

			revenue, err := s.SumPaidBetween(
				ctx,
				userID,
				monthStart,
				calendar.EndOfMonth(monthStart),
			)
			if err != nil {
				return err
			}

			series = append(series, dto.MonthRevenueDTO{
				Month:   calendar.MonthLabel(monthStart),
				Revenue: revenue,
			})
		}

		out = dto.FinancialReportDTO{
			CurrentMonthRevenue: current,
			PlannedRevenue:      planned,
			AverageTicket:       ticket,
			Last12MonthsRevenue: series,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}
