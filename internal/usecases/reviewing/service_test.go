package reviewing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/internal/usecases/reviewing/mocks"
	"github.com/maxreviewer/reviews-api/pkg/log"
	"github.com/maxreviewer/reviews-api/pkg/metrics"
)

func init() {
	log.SetupTestLogger()
	metrics.Init()
}

func fixedNow() time.Time {
	return referenceNow
}

func TestService_GetSummary(t *testing.T) {
	errUnavailable := errors.New("HTTP 503")
	todayRecords := records([]time.Time{day(2025, 3, 17), day(2025, 3, 17), day(2025, 3, 17)}, []int{5, 5, 3})
	syntheticRecords := records([]time.Time{day(2025, 3, 1)}, []int{1})

	tests := []struct {
		name         string
		months       int
		withBackup   bool
		setup        func(primary, backup *mocks.MockRecordSource)
		wantErr      error
		wantSource   domain.Source
		wantFallback bool
		wantTotal    int
		wantMonths   int
	}{
		{
			name:       "origem principal responde",
			months:     3,
			withBackup: true,
			setup: func(primary, backup *mocks.MockRecordSource) {
				primary.EXPECT().Name().Return(domain.SourceRemote).AnyTimes()
				primary.EXPECT().FetchRecords(gomock.Any()).Return(todayRecords, nil)
				backup.EXPECT().FetchRecords(gomock.Any()).Times(0)
			},
			wantSource: domain.SourceRemote,
			wantTotal:  3,
			wantMonths: 3,
		},
		{
			name:       "falha da origem principal usa dados sintéticos",
			months:     6,
			withBackup: true,
			setup: func(primary, backup *mocks.MockRecordSource) {
				primary.EXPECT().Name().Return(domain.SourceRemote).AnyTimes()
				primary.EXPECT().FetchRecords(gomock.Any()).Return(nil, errUnavailable)
				backup.EXPECT().Name().Return(domain.SourceSynthetic).AnyTimes()
				backup.EXPECT().FetchRecords(gomock.Any()).Return(syntheticRecords, nil)
			},
			wantSource:   domain.SourceSynthetic,
			wantFallback: true,
			wantTotal:    1,
			wantMonths:   6,
		},
		{
			name:       "zero meses usa o padrão",
			months:     0,
			withBackup: true,
			setup: func(primary, backup *mocks.MockRecordSource) {
				primary.EXPECT().Name().Return(domain.SourceDatabase).AnyTimes()
				primary.EXPECT().FetchRecords(gomock.Any()).Return(todayRecords, nil)
			},
			wantSource: domain.SourceDatabase,
			wantTotal:  3,
			wantMonths: 12,
		},
		{
			name:       "janela negativa é rejeitada antes da busca",
			months:     -1,
			withBackup: true,
			setup: func(primary, backup *mocks.MockRecordSource) {
				primary.EXPECT().FetchRecords(gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidWindow,
		},
		{
			name:       "sem origem substituta o erro é devolvido",
			months:     3,
			withBackup: false,
			setup: func(primary, backup *mocks.MockRecordSource) {
				primary.EXPECT().Name().Return(domain.SourceRemote).AnyTimes()
				primary.EXPECT().FetchRecords(gomock.Any()).Return(nil, errUnavailable)
			},
			wantErr: errUnavailable,
		},
		{
			name:       "falha das duas origens devolve o erro da principal",
			months:     3,
			withBackup: true,
			setup: func(primary, backup *mocks.MockRecordSource) {
				primary.EXPECT().Name().Return(domain.SourceRemote).AnyTimes()
				primary.EXPECT().FetchRecords(gomock.Any()).Return(nil, errUnavailable)
				backup.EXPECT().Name().Return(domain.SourceSynthetic).AnyTimes()
				backup.EXPECT().FetchRecords(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantErr: errUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			primary := mocks.NewMockRecordSource(ctrl)
			backup := mocks.NewMockRecordSource(ctrl)
			tt.setup(primary, backup)

			var fallback RecordSource
			if tt.withBackup {
				fallback = backup
			}

			service := NewService(primary, fallback, NewAggregator("es"), time.UTC,
				WithNow(fixedNow),
				WithDefaultMonths(12),
			)

			summary, err := service.GetSummary(context.Background(), tt.months)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, summary)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, summary.Source)
			assert.Equal(t, tt.wantFallback, summary.Fallback)
			assert.Equal(t, tt.wantTotal, summary.TotalReviews)
			assert.Equal(t, tt.wantMonths, summary.Months)
			assert.Len(t, summary.Data, tt.wantMonths)
		})
	}
}

func TestService_GetSummaryWithRealGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)

	primary := mocks.NewMockRecordSource(ctrl)
	primary.EXPECT().Name().Return(domain.SourceRemote).AnyTimes()
	primary.EXPECT().FetchRecords(gomock.Any()).Return(nil, errors.New("estrutura inválida"))

	generator := NewGenerator(time.UTC, WithClock(fixedNow))
	service := NewService(primary, generator, NewAggregator("es"), time.UTC, WithNow(fixedNow))

	summary, err := service.GetSummary(context.Background(), 12)
	require.NoError(t, err)

	assert.True(t, summary.Fallback)
	assert.Equal(t, domain.SourceSynthetic, summary.Source)
	assert.Nil(t, summary.Diagnostics)
	assert.Equal(t, summary.TotalReviews, seriesTotal(summary.Data))
	assert.Greater(t, summary.AverageRating, 3.0)
}

func TestService_FallbackGeneratorFollowsServiceClock(t *testing.T) {
	ctrl := gomock.NewController(t)

	primary := mocks.NewMockRecordSource(ctrl)
	primary.EXPECT().Name().Return(domain.SourceRemote).AnyTimes()
	primary.EXPECT().FetchRecords(gomock.Any()).Return(nil, errors.New("HTTP 503"))

	// Relógio do gerador bem longe do relógio do serviço
	generator := NewGenerator(time.UTC, WithClock(func() time.Time {
		return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	}))
	service := NewService(primary, generator, NewAggregator("es"), time.UTC, WithNow(fixedNow))

	summary, err := service.GetSummary(context.Background(), 12)
	require.NoError(t, err)

	assert.True(t, summary.Fallback)
	assert.Greater(t, summary.TotalReviews, 0)
	assert.Nil(t, summary.Diagnostics)
	assert.Equal(t, summary.TotalReviews, seriesTotal(summary.Data))
	assert.Greater(t, summary.Data[len(summary.Data)-1].Value, 0)
}

func TestService_GetAvailablePeriods(t *testing.T) {
	service := NewService(NewGenerator(time.UTC), nil, NewAggregator("es"), time.UTC, WithDefaultMonths(6))

	periods := service.GetAvailablePeriods()
	assert.Equal(t, 6, periods.Default)
	assert.Equal(t, []domain.PeriodOption{
		{Label: "Últimos 3 meses", Months: 3},
		{Label: "Últimos 6 meses", Months: 6},
		{Label: "Último año", Months: 12},
	}, periods.Periods)

	// A cópia devolvida não altera as opções do serviço
	periods.Periods[0].Months = 99
	assert.Equal(t, 3, service.GetAvailablePeriods().Periods[0].Months)
}

func TestService_GetSummaryUsesWindowedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)

	primary := mocks.NewMockWindowedRecordSource(ctrl)
	primary.EXPECT().Name().Return(domain.SourceDatabase).AnyTimes()
	primary.EXPECT().FetchRecords(gomock.Any()).Times(0)
	primary.EXPECT().
		FetchRecordsSince(gomock.Any(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		Return(records([]time.Time{day(2025, 2, 3)}, []int{4}), nil)

	service := NewService(primary, nil, NewAggregator("es"), time.UTC, WithNow(fixedNow))

	summary, err := service.GetSummary(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDatabase, summary.Source)
	assert.Equal(t, 1, summary.TotalReviews)
	assert.Equal(t, 4.0, summary.AverageRating)
}
