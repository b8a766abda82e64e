package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// O ticket médio é a média das médias por cliente. Com o cliente A pagando
// 100 e 200 (média 150) e o cliente B pagando 300, o resultado é
// (150+300)/2 = 225, não a média global de 200.
func TestFinancialReportAverageTicket(t *testing.T) {
	reports := &mockReportStore{
		sumPaidBetween: func(ctx context.Context, userID string, start, end time.Time) (float64, error) {
			return 0, nil
		},
		sumUnpaid: func(ctx context.Context, userID string) (float64, error) {
			return 0, nil
		},
		paidAveragesByClient: func(ctx context.Context, userID string) ([]float64, error) {
			return []float64{150, 300}, nil
		},
	}

	uc := NewFinancialReport(reports, time.Now)

	out, err := uc.Execute(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 225.0, out.AverageTicket)
}

func TestFinancialReportAverageTicketWithoutPayments(t *testing.T) {
	reports := &mockReportStore{
		sumPaidBetween: func(ctx context.Context, userID string, start, end time.Time) (float64, error) {
			return 0, nil
		},
		sumUnpaid: func(ctx context.Context, userID string) (float64, error) {
			return 0, nil
		},
		paidAveragesByClient: func(ctx context.Context, userID string) ([]float64, error) {
			return nil, nil
		},
	}

	uc := NewFinancialReport(reports, time.Now)

	out, err := uc.Execute(context.Background(), "u1")

	require.NoError(t, err)
	assert.Zero(t, out.AverageTicket)
}

func TestFinancialReportSeries(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

	// Receita por mês de início do intervalo consultado.
	revenueByMonth := map[string]float64{
		"2026-06": 500,
		"2026-05": 250,
		"2025-07": 80,
	}

	reports := &mockReportStore{
		sumPaidBetween: func(ctx context.Context, userID string, start, end time.Time) (float64, error) {
			return revenueByMonth[start.Format("2006-01")], nil
		},
		sumUnpaid: func(ctx context.Context, userID string) (float64, error) {
			return 1200, nil
		},
		paidAveragesByClient: func(ctx context.Context, userID string) ([]float64, error) {
			return []float64{500}, nil
		},
	}

	uc := NewFinancialReport(reports, func() time.Time { return now })

	out, err := uc.Execute(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 500.0, out.CurrentMonthRevenue)
	assert.Equal(t, 1200.0, out.PlannedRevenue)

	// Série de 12 pontos, do mais antigo para o mais recente, fechando no
	// mês corrente.
	require.Len(t, out.Last12MonthsRevenue, 12)
	assert.Equal(t, "Jul", out.Last12MonthsRevenue[0].Month)
	assert.Equal(t, 80.0, out.Last12MonthsRevenue[0].Revenue)
	assert.Equal(t, "May", out.Last12MonthsRevenue[10].Month)
	assert.Equal(t, 250.0, out.Last12MonthsRevenue[10].Revenue)
	assert.Equal(t, "Jun", out.Last12MonthsRevenue[11].Month)
	assert.Equal(t, 500.0, out.Last12MonthsRevenue[11].Revenue)
}

func TestFinancialReportPropagatesError(t *testing.T) {
	reports := &mockReportStore{
		sumPaidBetween: func(ctx context.Context, userID string, start, end time.Time) (float64, error) {
			return 0, assert.AnError
		},
	}

	uc := NewFinancialReport(reports, time.Now)

	_, err := uc.Execute(context.Background(), "u1")

	assert.ErrorIs(t, err, assert.AnError)
}
