package dto

// DTOs dos relatórios do dashboard. As chaves seguem o contrato camelCase
// consumido pelo frontend.

type MonthRevenueDTO struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type FinancialReportDTO struct {
	CurrentMonthRevenue float64           `json:"currentMonthRevenue"`
	PlannedRevenue      float64           `json:"plannedRevenue"`
	AverageTicket       float64           `json:"averageTicket"`
	Last12MonthsRevenue []MonthRevenueDTO `json:"last12MonthsRevenue"`
}

type MonthNewClientsDTO struct {
	Month      string `json:"month"`
	NewClients int64  `json:"newClients"`
}

type ClientsReportDTO struct {
	ActiveClients   int64                `json:"activeClients"`
	InactiveClients int64                `json:"inactiveClients"`
	NewClients      int64                `json:"newClients"`
	ClientGrowth    []MonthNewClientsDTO `json:"clientGrowth"`
}

type EntityMetricsDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AppointmentCount int64   `json:"appointmentCount"`
	Revenue          float64 `json:"revenue"`
	ClientCount      int64   `json:"clientCount"`
}

type SectionsReportDTO struct {
	SectionMetrics  []EntityMetricsDTO `json:"sectionMetrics"`
	MostUsedSection *EntityMetricsDTO  `json:"mostUsedSection"`
}

type ProfessionalsReportDTO struct {
	ProfessionalMetrics []EntityMetricsDTO `json:"professionalMetrics"`
	TopPerformer        *EntityMetricsDTO  `json:"topPerformer"`
}
