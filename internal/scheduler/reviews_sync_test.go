package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxreviewer/reviews-api/infrastructure/repository/mocks"
	"github.com/maxreviewer/reviews-api/internal/config"
	"github.com/maxreviewer/reviews-api/internal/domain"
	reviewingmocks "github.com/maxreviewer/reviews-api/internal/usecases/reviewing/mocks"
	"github.com/maxreviewer/reviews-api/pkg/log"
	"github.com/maxreviewer/reviews-api/pkg/metrics"
)

func init() {
	log.SetupTestLogger()
	metrics.Init()
}

func newTestSyncService(source RecordFetcher, store RecordStore) *ReviewsSyncService {
	cfg := &config.Config{}
	cfg.ReviewsSync.CronSchedule = "*/30 * * * *"
	cfg.ReviewsSync.Enabled = true
	cfg.Reviews.Location = time.UTC

	service := NewReviewsSyncService(source, store, cfg)
	service.newSyncID = func() (string, error) { return "sync42", nil }
	return service
}

func sampleRecords() []domain.RatingRecord {
	day := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	return []domain.RatingRecord{
		{Key: "review_1", Rating: 5, Day: day},
		{Key: "review_2", Rating: 2, Day: day},
	}
}

func TestReviewsSyncService_Sync(t *testing.T) {
	errRemote := errors.New("HTTP 503")
	errDB := errors.New("conexão recusada")

	tests := []struct {
		name        string
		setup       func(source *reviewingmocks.MockRecordSource, store *mocks.MockRatingRecordRepository)
		wantErr     error
		wantRecords int
		wantError   string
	}{
		{
			name: "snapshot substituído com o id da sincronização",
			setup: func(source *reviewingmocks.MockRecordSource, store *mocks.MockRatingRecordRepository) {
				source.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil)
				store.EXPECT().ReplaceAll(gomock.Any(), sampleRecords(), "sync42").Return(nil)
			},
			wantRecords: 2,
		},
		{
			name: "falha na origem não toca no banco",
			setup: func(source *reviewingmocks.MockRecordSource, store *mocks.MockRatingRecordRepository) {
				source.EXPECT().FetchRecords(gomock.Any()).Return(nil, errRemote)
				store.EXPECT().ReplaceAll(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr:   errRemote,
			wantError: errRemote.Error(),
		},
		{
			name: "falha no banco é registrada no status",
			setup: func(source *reviewingmocks.MockRecordSource, store *mocks.MockRatingRecordRepository) {
				source.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil)
				store.EXPECT().ReplaceAll(gomock.Any(), gomock.Any(), "sync42").Return(errDB)
			},
			wantErr:   errDB,
			wantError: errDB.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := reviewingmocks.NewMockRecordSource(ctrl)
			store := mocks.NewMockRatingRecordRepository(ctrl)
			tt.setup(source, store)

			service := newTestSyncService(source, store)
			err := service.Sync(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, "sync42", status["last_sync_id"])
			assert.Equal(t, tt.wantRecords, status["last_sync_records"])
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestReviewsSyncService_SkipsConcurrentRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := reviewingmocks.NewMockRecordSource(ctrl)
	store := mocks.NewMockRatingRecordRepository(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	source.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil).Times(1)
	store.EXPECT().ReplaceAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []domain.RatingRecord, string) error {
			close(started)
			<-release
			return nil
		}).Times(1)

	service := newTestSyncService(source, store)

	done := make(chan error, 1)
	go func() { done <- service.Sync(context.Background()) }()

	<-started
	assert.True(t, service.IsRunning())
	assert.ErrorIs(t, service.Sync(context.Background()), ErrSyncRunning)
	assert.False(t, service.TriggerManualSync())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, service.IsRunning())
}

func TestReviewsSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := reviewingmocks.NewMockRecordSource(ctrl)
	store := mocks.NewMockRatingRecordRepository(ctrl)

	finished := make(chan struct{})
	source.EXPECT().FetchRecords(gomock.Any()).Return(sampleRecords(), nil)
	store.EXPECT().ReplaceAll(gomock.Any(), gomock.Any(), "sync42").
		DoAndReturn(func(context.Context, []domain.RatingRecord, string) error {
			defer close(finished)
			return nil
		})

	service := newTestSyncService(source, store)
	assert.True(t, service.TriggerManualSync())

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executou")
	}

	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestReviewsSyncService_StartDisabled(t *testing.T) {
	service := newTestSyncService(nil, nil)
	service.config.SyncEnabled = false

	require.NoError(t, service.Start(context.Background()))
}

func TestReviewsSyncService_StartInvalidCron(t *testing.T) {
	service := newTestSyncService(nil, nil)
	service.config.CronSchedule = "não é cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Error(t, service.Start(ctx))
}
