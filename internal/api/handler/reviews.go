package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/internal/usecases/reviewing"
	"github.com/maxreviewer/reviews-api/pkg/apiErrors"
	"github.com/maxreviewer/reviews-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetReviewsSummary retorna o resumo do dashboard para os últimos ?months=N meses
func GetReviewsSummary(service reviewing.Reviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		months, err := parseMonths(r.URL.Query().Get("months"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "months deve ser um número inteiro maior que zero", map[string]any{
				"months": r.URL.Query().Get("months"),
			})
			return
		}

		logger.WithField("months", months).Info("reviews-summary: calculando resumo de avaliações")

		summary, err := service.GetSummary(r.Context(), months)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidWindow) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{"months": months})
				return
			}

			logger.WithError(err).Error("reviews-summary: erro ao buscar avaliações")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível obter as avaliações", nil)
			return
		}

		logger.WithFields(log.Fields{
			"months":        summary.Months,
			"source":        summary.Source,
			"review_total":  summary.TotalReviews,
			"review_backup": summary.Fallback,
		}).Info("reviews-summary: resumo gerado com sucesso")

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// GetReviewsPeriods retorna as opções do seletor de período
func GetReviewsPeriods(service reviewing.Reviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetAvailablePeriods())
	})
}

// parseMonths aceita vazio (padrão do serviço) ou um inteiro positivo
func parseMonths(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if months < 1 {
		return 0, domain.ErrInvalidWindow
	}

	return months, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}
