package dashboard

import "github.com/agendafacil/agenda-api/internal/dto"

func byAppointmentCount(m dto.EntityMetricsDTO) float64 {
	return float64(m.AppointmentCount)
}

func byRevenue(m dto.EntityMetricsDTO) float64 {
	return m.Revenue
}

// pickTop devolve a métrica de maior chave, ou nil quando não há nenhuma.
// Em empate vale a primeira na ordem da listagem.
func pickTop(metrics []dto.EntityMetricsDTO, key func(dto.EntityMetricsDTO) float64) *dto.EntityMetricsDTO {
	if len(metrics) == 0 {
		return nil
	}

	top := metrics[0]
	for _, m := range metrics[1:] {
		if key(m) > key(top) {
			top = m
		}
	}
	return &top
}
