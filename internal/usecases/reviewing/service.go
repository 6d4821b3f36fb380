package reviewing

import (
	"context"
	"time"

	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/pkg/log"
	"github.com/maxreviewer/reviews-api/pkg/metrics"
)

// Opções do seletor de período do dashboard
var periodOptions = []domain.PeriodOption{
	{Label: "Últimos 3 meses", Months: 3},
	{Label: "Últimos 6 meses", Months: 6},
	{Label: "Último año", Months: 12},
}

var _ Reviewer = (*Service)(nil)

// Service busca a coleção na origem principal e, se ela falhar, usa a origem substituta
type Service struct {
	primary       RecordSource
	fallback      RecordSource
	aggregator    Aggregator
	location      *time.Location
	defaultMonths int
	now           func() time.Time
}

type ServiceOption func(*Service)

func WithNow(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func WithDefaultMonths(months int) ServiceOption {
	return func(s *Service) {
		if months > 0 {
			s.defaultMonths = months
		}
	}
}

// NewService cria o serviço de resumo de avaliações. fallback pode ser nil.
func NewService(
	primary RecordSource,
	fallback RecordSource,
	aggregator Aggregator,
	loc *time.Location,
	opts ...ServiceOption,
) *Service {
	if loc == nil {
		loc = time.UTC
	}

	s := &Service{
		primary:       primary,
		fallback:      fallback,
		aggregator:    aggregator,
		location:      loc,
		defaultMonths: 3,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetSummary calcula o resumo para os últimos months meses. months == 0 usa o padrão.
func (s *Service) GetSummary(ctx context.Context, months int) (*domain.ReviewSummary, error) {
	if months == 0 {
		months = s.defaultMonths
	}

	window, err := domain.NewReportingWindow(months)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"months": months,
		"source": s.primary.Name(),
	})

	startTime := time.Now()

	now := s.now().In(s.location)

	records, source, fallback, err := s.fetch(ctx, logger, window.Start(now), now)
	if err != nil {
		return nil, err
	}

	result := s.aggregator.Aggregate(records, window, now)

	if result.Diagnostics != nil {
		// Divergência indica erro de agrupamento; os números são devolvidos como estão
		logger.WithFields(log.Fields{
			"review_chart_total": result.Diagnostics.ChartTotal,
			"review_total":       result.Diagnostics.TotalReviews,
		}).Error("reviews: soma da série mensal diverge do total de avaliações")
		metrics.IncBucketMismatch()
	}

	metrics.ObserveSummary(string(source), time.Since(startTime))

	logger.WithFields(log.Fields{
		"review_total":   result.TotalReviews,
		"review_average": result.AverageRating,
		"review_origin":  source,
	}).Debug("reviews: resumo calculado")

	return &domain.ReviewSummary{
		AggregateResult: result,
		Months:          months,
		Source:          source,
		Fallback:        fallback,
	}, nil
}

func (s *Service) fetch(ctx context.Context, logger log.Logger, start, now time.Time) ([]domain.RatingRecord, domain.Source, bool, error) {
	records, err := fetchFrom(ctx, s.primary, start, now)
	if err == nil {
		return records, s.primary.Name(), false, nil
	}

	if s.fallback == nil {
		logger.WithError(err).Error("reviews: erro ao buscar avaliações e não há origem substituta")
		return nil, "", false, err
	}

	logger.WithError(err).Warn("reviews: erro ao buscar avaliações, usando dados sintéticos")
	metrics.IncSourceFallback(string(s.primary.Name()))

	records, fallbackErr := fetchFrom(ctx, s.fallback, start, now)
	if fallbackErr != nil {
		logger.WithError(fallbackErr).Error("reviews: origem substituta também falhou")
		return nil, "", false, err
	}

	return records, s.fallback.Name(), true, nil
}

// fetchFrom usa a consulta por janela quando a origem oferece; o motor filtra de novo de qualquer forma.
// Origens que dependem do relógio recebem o mesmo now usado no filtro.
func fetchFrom(ctx context.Context, source RecordSource, start, now time.Time) ([]domain.RatingRecord, error) {
	switch src := source.(type) {
	case WindowedRecordSource:
		return src.FetchRecordsSince(ctx, start)
	case ClockedRecordSource:
		return src.FetchRecordsAt(ctx, now)
	default:
		return source.FetchRecords(ctx)
	}
}

func (s *Service) GetAvailablePeriods() *domain.AvailablePeriods {
	periods := make([]domain.PeriodOption, len(periodOptions))
	copy(periods, periodOptions)

	return &domain.AvailablePeriods{
		Periods: periods,
		Default: s.defaultMonths,
	}
}
