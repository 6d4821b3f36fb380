package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("janela de meses inválida")

// ReportingWindow representa os últimos N meses, ancorados em "agora"
type ReportingWindow struct {
	Months int
}

func NewReportingWindow(months int) (ReportingWindow, error) {
	if months < 1 {
		return ReportingWindow{}, fmt.Errorf("%w: %d", ErrInvalidWindow, months)
	}

	return ReportingWindow{Months: months}, nil
}

// Start retorna o primeiro dia do mês que está Months-1 meses antes do mês atual
func (w ReportingWindow) Start(now time.Time) time.Time {
	// time.Date normaliza meses negativos, inclusive virando o ano
	return time.Date(now.Year(), now.Month()-time.Month(w.Months-1), 1, 0, 0, 0, 0, now.Location())
}

// Contains indica se o dia está dentro de [Start, now]
func (w ReportingWindow) Contains(day, now time.Time) bool {
	return !day.Before(w.Start(now)) && !day.After(now)
}

// MonthKey identifica um mês do calendário
type MonthKey struct {
	Year  int
	Month time.Month
}

func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// MonthKeys lista os meses da janela, do mais antigo para o mais recente, terminando no mês atual.
// Janela sem meses devolve lista vazia.
func (w ReportingWindow) MonthKeys(now time.Time) []MonthKey {
	months := max(w.Months, 0)
	keys := make([]MonthKey, 0, months)
	for i := months - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		keys = append(keys, MonthKeyOf(first))
	}

	return keys
}
