package reviewing

import (
	"time"

	"github.com/maxreviewer/reviews-api/internal/domain"
)

var monthLabels = map[string][12]string{
	"es": {"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// MonthLabel retorna o rótulo curto do mês no idioma informado (padrão: es)
func MonthLabel(month time.Month, locale string) string {
	labels, ok := monthLabels[locale]
	if !ok {
		labels = monthLabels["es"]
	}

	return labels[month-1]
}

// Aggregator calcula as estatísticas do dashboard. Não guarda estado entre chamadas.
type Aggregator struct {
	Locale string
}

func NewAggregator(locale string) Aggregator {
	return Aggregator{Locale: locale}
}

// Aggregate filtra os registros pela janela e calcula total, média, histograma e série mensal.
// O resultado só depende dos argumentos.
func (a Aggregator) Aggregate(records []domain.RatingRecord, window domain.ReportingWindow, now time.Time) *domain.AggregateResult {
	var (
		sum     int
		counts  [domain.MaxRating + 1]int
		byMonth = make(map[domain.MonthKey]int)
		total   int
		start   = window.Start(now)
	)

	for _, record := range records {
		if record.Day.Before(start) || record.Day.After(now) {
			continue
		}

		total++
		sum += record.Rating
		if record.Rating >= domain.MinRating && record.Rating <= domain.MaxRating {
			counts[record.Rating]++
		}
		byMonth[domain.MonthKeyOf(record.Day)]++
	}

	result := &domain.AggregateResult{
		TotalReviews:  total,
		AverageRating: averageRating(sum, total),
		Ratings:       ratingShares(counts, total),
		Data:          a.monthlySeries(byMonth, window, now),
	}

	chartTotal := 0
	for _, bucket := range result.Data {
		chartTotal += bucket.Value
	}

	if chartTotal != total {
		result.Diagnostics = &domain.Diagnostics{
			ChartTotal:   chartTotal,
			TotalReviews: total,
		}
	}

	return result
}

func averageRating(sum, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(sum) / float64(total)
}

// roundedPercentage calcula round(100*count/total) em inteiros; metades sobem
func roundedPercentage(count, total int) int {
	return (200*count + total) / (2 * total)
}

// ratingShares sempre devolve as cinco quantidades de estrelas, da maior para a menor
func ratingShares(counts [domain.MaxRating + 1]int, total int) []domain.RatingShare {
	shares := make([]domain.RatingShare, 0, domain.MaxRating)
	for stars := domain.MaxRating; stars >= domain.MinRating; stars-- {
		percentage := 0
		if total > 0 {
			percentage = roundedPercentage(counts[stars], total)
		}

		shares = append(shares, domain.RatingShare{
			Stars:      stars,
			Percentage: percentage,
		})
	}

	return shares
}

func (a Aggregator) monthlySeries(byMonth map[domain.MonthKey]int, window domain.ReportingWindow, now time.Time) []domain.MonthlyBucket {
	keys := window.MonthKeys(now)

	series := make([]domain.MonthlyBucket, 0, len(keys))
	for _, key := range keys {
		series = append(series, domain.MonthlyBucket{
			Month: MonthLabel(key.Month, a.Locale),
			Value: byMonth[key],
			Year:  key.Year,
		})
	}

	return series
}
