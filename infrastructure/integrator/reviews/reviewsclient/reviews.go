package reviewsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/maxreviewer/reviews-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnexpectedStatus é devolvido quando o serviço responde com status diferente de 200
var ErrUnexpectedStatus = errors.New("status inesperado do serviço de avaliações")

const maxErrorBody = 512

type GetReviewsResponse = domain.ReviewsPayload

// GetReviews busca a coleção completa de avaliações
func (c *ReviewsClient) GetReviews(ctx context.Context) (*GetReviewsResponse, error) {
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/reviews")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	if c.config.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s %s", ErrUnexpectedStatus, resp.Status, string(body))
	}

	var response GetReviewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &response, nil
}
