package calendar

import "time"

// Utilitários de calendário dos relatórios. Todas as contas de mês são feitas
// sobre o primeiro dia do mês para não sofrer a normalização de fim de mês do
// AddDate (31 de março - 1 mês virando 3 de março).

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// MonthsAgo devolve o primeiro dia do mês n meses antes de t.
func MonthsAgo(t time.Time, n int) time.Time {
	return StartOfMonth(t).AddDate(0, -n, 0)
}

// MonthLabel devolve a abreviação de três letras do mês ("Jan", "Feb", ...).
func MonthLabel(t time.Time) string {
	return t.Format("Jan")
}

// PaymentDate devolve a meia-noite local da data de now. Para o fuso padrão
// do negócio (GMT-3) isso equivale a 03:00 UTC do dia corrente, independente
// da hora em que a chamada é feita.
func PaymentDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
