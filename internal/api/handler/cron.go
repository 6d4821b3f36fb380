package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/maxreviewer/reviews-api/pkg/apiErrors"
	"github.com/maxreviewer/reviews-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReviewsSync = "reviews-sync"
)

// SyncJob é o contrato mínimo de um agendador que pode ser disparado manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReviewsSyncService SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReviewsSync:
			if services.ReviewsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sincronização de avaliações não disponível (banco desabilitado)", nil)
				return
			}

			if !services.ReviewsSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Sincronização de avaliações já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: reviews-sync", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReviewsSyncService != nil {
			status[CronJobTypeReviewsSync] = services.ReviewsSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
