package domain

// PeriodOption representa uma opção do seletor de período do dashboard
type PeriodOption struct {
	Label  string `json:"label"`
	Months int    `json:"months"`
}

// AvailablePeriods representa as opções de período oferecidas ao dashboard
type AvailablePeriods struct {
	Periods []PeriodOption `json:"periods"`
	Default int            `json:"default"` // Quantidade de meses selecionada inicialmente
}
