package reviews

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/maxreviewer/reviews-api/infrastructure/integrator/reviews/reviewsclient"
	"github.com/maxreviewer/reviews-api/internal/config"
	"github.com/maxreviewer/reviews-api/internal/domain"
)

// ReviewsIntegrator expõe o serviço remoto de avaliações como origem de registros
type ReviewsIntegrator struct {
	cfg    *config.Config
	Client reviewsclient.Client
}

func New(cfg *config.Config, client reviewsclient.Client) *ReviewsIntegrator {
	return &ReviewsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ReviewsIntegrator) Name() domain.Source {
	return domain.SourceRemote
}

// FetchRecords busca e valida a coleção. Um único registro inválido invalida a resposta inteira.
func (s *ReviewsIntegrator) FetchRecords(ctx context.Context) ([]domain.RatingRecord, error) {
	resp, err := s.Client.GetReviews(ctx)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("reviews: erro ao buscar avaliações no serviço remoto")
		return nil, errors.Wrap(err, "erro ao buscar avaliações no serviço remoto")
	}

	records, err := resp.Records(s.location())
	if err != nil {
		logrus.WithField("error", err.Error()).Error("reviews: resposta do serviço remoto inválida")
		return nil, err
	}

	logrus.WithField("review_count", len(records)).Debug("reviews: avaliações obtidas do serviço remoto")

	return records, nil
}

func (s *ReviewsIntegrator) location() *time.Location {
	if s.cfg == nil || s.cfg.Reviews.Location == nil {
		return time.UTC
	}
	return s.cfg.Reviews.Location
}
