package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/maxreviewer/reviews-api/internal/config"
	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/pkg/metrics"
	"github.com/maxreviewer/reviews-api/pkg/utils"
)

// ErrSyncRunning indica que já existe uma sincronização em andamento
var ErrSyncRunning = errors.New("sincronização de avaliações já em andamento")

// RecordFetcher é a origem remota da coleção
type RecordFetcher interface {
	Name() domain.Source
	FetchRecords(ctx context.Context) ([]domain.RatingRecord, error)
}

// RecordStore recebe o snapshot completo de cada sincronização
type RecordStore interface {
	ReplaceAll(ctx context.Context, records []domain.RatingRecord, syncID string) error
}

// ReviewsSyncConfig representa a configuração do agendador de avaliações
type ReviewsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// ReviewsSyncService copia periodicamente a coleção remota para o banco
type ReviewsSyncService struct {
	scheduler *gocron.Scheduler
	config    ReviewsSyncConfig
	source    RecordFetcher
	store     RecordStore
	newSyncID func() (string, error)

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncID          string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRecords     int
	lastSyncError       string
}

// NewReviewsSyncService cria uma nova instância do serviço de sincronização de avaliações
func NewReviewsSyncService(
	source RecordFetcher,
	store RecordStore,
	appConfig *config.Config,
) *ReviewsSyncService {
	syncConfig := ReviewsSyncConfig{
		CronSchedule: appConfig.ReviewsSync.CronSchedule,
		SyncEnabled:  appConfig.ReviewsSync.Enabled,
		Timeout:      2 * time.Minute,
	}

	loc := appConfig.Reviews.Location
	if loc == nil {
		loc = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de avaliações carregada")

	return &ReviewsSyncService{
		scheduler: gocron.NewScheduler(loc),
		config:    syncConfig,
		source:    source,
		store:     store,
		newSyncID: utils.GenerateID,
	}
}

// Start inicia o agendador
func (s *ReviewsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de avaliações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de avaliações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).SingletonMode().Do(func() {
		_ = s.Sync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de avaliações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de avaliações")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync busca a coleção remota e substitui o snapshot do banco numa única transação.
// Se já houver uma execução em andamento devolve ErrSyncRunning sem fazer nada.
func (s *ReviewsSyncService) Sync(ctx context.Context) error {
	if !s.acquire() {
		logrus.Info("Sincronização de avaliações já em andamento, ignorando")
		return ErrSyncRunning
	}
	defer s.release()

	syncID, err := s.newSyncID()
	if err != nil {
		s.finish("", 0, err)
		return errors.Wrap(err, "erro ao gerar id da sincronização")
	}

	logger := logrus.WithField("sync_id", syncID)
	logger.Info("Iniciando sincronização de avaliações")

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	records, err := s.source.FetchRecords(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar avaliações na origem remota")
		s.finish(syncID, 0, err)
		return err
	}

	if err := s.store.ReplaceAll(ctx, records, syncID); err != nil {
		logger.WithError(err).Error("Erro ao salvar avaliações no banco de dados")
		s.finish(syncID, 0, err)
		return err
	}

	s.finish(syncID, len(records), nil)

	logger.WithFields(logrus.Fields{
		"review_count": len(records),
		"duration":     time.Since(s.startedAt()).String(),
	}).Info("Sincronização de avaliações concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização; devolve false se já houver uma em andamento
func (s *ReviewsSyncService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Sincronização de avaliações já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de avaliações")
	go func() {
		_ = s.Sync(context.Background())
	}()

	return true
}

func (s *ReviewsSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *ReviewsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_id":           s.lastSyncID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_records":      s.lastSyncRecords,
		"last_sync_error":        s.lastSyncError,
	}
}

func (s *ReviewsSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ReviewsSyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

func (s *ReviewsSyncService) startedAt() time.Time {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt
}

func (s *ReviewsSyncService) finish(syncID string, records int, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncID = syncID
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastSyncError = err.Error()
		metrics.ObserveSync(metrics.ResultError, 0)
		return
	}

	s.lastSyncError = ""
	s.lastSyncRecords = records
	metrics.ObserveSync(metrics.ResultSuccess, records)
}
