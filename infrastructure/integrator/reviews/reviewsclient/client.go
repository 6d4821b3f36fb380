package reviewsclient

import (
	"context"
	"net/http"
	"time"

	"github.com/maxreviewer/reviews-api/internal/config"
)

const defaultTimeout = 10 * time.Second

type Client interface {
	GetReviews(ctx context.Context) (*GetReviewsResponse, error)
}

type ReviewsClient struct {
	httpClient *http.Client
	config     config.ReviewsAPI
}

// NewClient cria o cliente do serviço de avaliações (GET /api/reviews)
func NewClient(cfg config.ReviewsAPI) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ReviewsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
