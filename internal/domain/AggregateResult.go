package domain

// RatingShare é a participação percentual de uma quantidade de estrelas no total
type RatingShare struct {
	Stars      int `json:"stars"`
	Percentage int `json:"percentage"`
}

// MonthlyBucket é um ponto da série mensal do gráfico
type MonthlyBucket struct {
	Month string `json:"month"` // Rótulo curto do mês (ex: "Ene")
	Value int    `json:"value"`
	Year  int    `json:"year"`
}

// Diagnostics só é preenchido quando a soma da série diverge do total de avaliações
type Diagnostics struct {
	ChartTotal   int `json:"chartTotal"`
	TotalReviews int `json:"totalReviews"`
}

// AggregateResult representa as estatísticas de avaliações de uma janela
type AggregateResult struct {
	TotalReviews  int             `json:"totalReviews"`
	AverageRating float64         `json:"averageRating"`
	Ratings       []RatingShare   `json:"ratings"`
	Data          []MonthlyBucket `json:"data"`
	Diagnostics   *Diagnostics    `json:"diagnostics,omitempty"`
}

// ReviewSummary é a resposta do dashboard: o agregado mais a origem dos dados
type ReviewSummary struct {
	*AggregateResult
	Months   int    `json:"months"`
	Source   Source `json:"source"`
	Fallback bool   `json:"fallback"` // Dados sintéticos substituíram uma origem com falha
}
