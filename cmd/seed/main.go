// Comando seed popula a tabela rating_records com avaliações sintéticas
// para desenvolvimento local e, opcionalmente, emite um token de teste.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/maxreviewer/reviews-api/infrastructure/database/postgres"
	"github.com/maxreviewer/reviews-api/infrastructure/repository"
	"github.com/maxreviewer/reviews-api/internal/config"
	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/internal/usecases/authenticating"
	"github.com/maxreviewer/reviews-api/internal/usecases/reviewing"
	"github.com/maxreviewer/reviews-api/pkg/log"
	"github.com/maxreviewer/reviews-api/pkg/utils"
)

type options struct {
	date      string
	skipSeed  bool
	token     bool
	tokenRole string
	tokenTTL  time.Duration
	userID    string
}

type seedStats struct {
	SyncID        string  `json:"sync_id"`
	TotalRecords  int     `json:"total_records"`
	StoredRecords int     `json:"stored_records"`
	AverageRating float64 `json:"average_rating"`
	FirstDay      string  `json:"first_day"`
	LastDay       string  `json:"last_day"`
	Elapsed       string  `json:"elapsed"`
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}

	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flags.StringVar(&opts.date, "date", "", "data de referência no formato AAAA-MM-DD (padrão: hoje)")
	flags.BoolVar(&opts.skipSeed, "skip-seed", false, "não grava avaliações, apenas emite o token")
	flags.BoolVar(&opts.token, "token", false, "imprime um token JWT de desenvolvimento")
	flags.StringVar(&opts.tokenRole, "role", domain.RoleAdmin, "perfil do token (admin ou viewer)")
	flags.DurationVar(&opts.tokenTTL, "ttl", 24*time.Hour, "validade do token")
	flags.StringVar(&opts.userID, "user", "dev-user", "user_id do token")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if opts.tokenRole != domain.RoleAdmin && opts.tokenRole != domain.RoleViewer {
		return nil, errors.Errorf("perfil inválido: %s", opts.tokenRole)
	}

	return opts, nil
}

// referenceDate interpreta --date no fuso configurado; vazio usa o instante atual
func referenceDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Now().In(loc), nil
	}

	date, err := utils.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "data inválida: %s", value)
	}

	return *date, nil
}

func buildStats(syncID string, records []domain.RatingRecord, stored int, elapsed time.Duration) seedStats {
	stats := seedStats{
		SyncID:        syncID,
		TotalRecords:  len(records),
		StoredRecords: stored,
		Elapsed:       elapsed.String(),
	}

	if len(records) == 0 {
		return stats
	}

	sum := 0
	first, last := records[0].Day, records[0].Day
	for _, record := range records {
		sum += record.Rating
		if record.Day.Before(first) {
			first = record.Day
		}
		if record.Day.After(last) {
			last = record.Day
		}
	}

	stats.AverageRating = utils.RoundWithTwoDecimalPlace(float64(sum) / float64(len(records)))
	stats.FirstDay = first.Format(time.DateOnly)
	stats.LastDay = last.Format(time.DateOnly)

	return stats
}

func seed(ctx context.Context, cfg *config.Config, now time.Time) (*seedStats, error) {
	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		return nil, err
	}

	loc := cfg.Reviews.Location
	records := reviewing.NewGenerator(loc).Generate(now)
	logrus.Infof("Gerados %d registros sintéticos até %s", len(records), now.Format(time.DateOnly))

	syncID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da carga")
	}

	repo := repository.NewRatingRecordRepository(conn, loc)
	if err := repo.ReplaceAll(ctx, records, syncID); err != nil {
		return nil, err
	}

	stored, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := buildStats(syncID, records, stored, time.Since(startTime))
	return &stats, nil
}

func main() {
	log.Setup("info")

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	if !opts.skipSeed {
		now, err := referenceDate(opts.date, cfg.Reviews.Location)
		if err != nil {
			logrus.Fatal(err)
		}

		stats, err := seed(ctx, cfg, now)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao popular avaliações")
		}

		logrus.Info("Carga de avaliações concluída")
		fmt.Println(utils.PrettyJson(stats))
	}

	if opts.token {
		token, err := authenticating.NewService(cfg).GenerateToken(domain.Claims{
			UserID: opts.userID,
			Role:   opts.tokenRole,
		}, opts.tokenTTL)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar token")
		}

		fmt.Println(token)
	}
}
