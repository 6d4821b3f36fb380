package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/maxreviewer/reviews-api/infrastructure/database/postgres"
	"github.com/maxreviewer/reviews-api/infrastructure/integrator/reviews"
	"github.com/maxreviewer/reviews-api/infrastructure/integrator/reviews/reviewsclient"
	"github.com/maxreviewer/reviews-api/infrastructure/repository"
	"github.com/maxreviewer/reviews-api/internal/api"
	"github.com/maxreviewer/reviews-api/internal/config"
	"github.com/maxreviewer/reviews-api/internal/scheduler"
	"github.com/maxreviewer/reviews-api/internal/usecases/authenticating"
	"github.com/maxreviewer/reviews-api/internal/usecases/reviewing"
	"github.com/maxreviewer/reviews-api/pkg/log"
	"github.com/maxreviewer/reviews-api/pkg/metrics"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc := cfg.Reviews.Location

	reviewsClient := reviewsclient.NewClient(cfg.ReviewsAPI)
	reviewsIntegrator := reviews.New(cfg, reviewsClient)

	var (
		primary            reviewing.RecordSource = reviewsIntegrator
		reviewsSyncService *scheduler.ReviewsSyncService
	)

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := repository.EnsureSchema(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o esquema do banco")
		}

		ratingRecordRepo := repository.NewRatingRecordRepository(pgConn, loc)
		if cfg.Reviews.Source == string(ratingRecordRepo.Name()) {
			primary = ratingRecordRepo
		}

		reviewsSyncService = scheduler.NewReviewsSyncService(reviewsIntegrator, ratingRecordRepo, cfg)
		if err := reviewsSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de avaliações")
		} else {
			logrus.Info("Agendador de sincronização de avaliações iniciado com sucesso")
		}
	}

	reviewService := reviewing.NewService(
		primary,
		reviewing.NewGenerator(loc),
		reviewing.NewAggregator(cfg.Reviews.MonthLabelLocale),
		loc,
		reviewing.WithDefaultMonths(cfg.Reviews.DefaultMonths),
	)

	logrus.WithFields(logrus.Fields{
		"source":   primary.Name(),
		"timezone": loc.String(),
		"auth":     cfg.Auth.Enabled,
	}).Info("Serviço de avaliações configurado")

	authenticator := authenticating.NewService(cfg)

	server, err := api.New(cfg, reviewService, authenticator, reviewsSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
