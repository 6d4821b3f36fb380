package handler

import (
	"net/http"

	"github.com/maxreviewer/reviews-api/internal/api/handler/router"
	"github.com/maxreviewer/reviews-api/internal/usecases/reviewing"
	"github.com/maxreviewer/reviews-api/pkg/metrics"
	"github.com/maxreviewer/reviews-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Reviews(service reviewing.Reviewer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reviews/summary",
			Method:      http.MethodGet,
			Handler:     GetReviewsSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reviews/periods",
			Method:      http.MethodGet,
			Handler:     GetReviewsPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
