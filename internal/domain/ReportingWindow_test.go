package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportingWindow(t *testing.T) {
	_, err := NewReportingWindow(0)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewReportingWindow(-3)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	window, err := NewReportingWindow(12)
	require.NoError(t, err)
	assert.Equal(t, 12, window.Months)
}

func TestReportingWindow_Start(t *testing.T) {
	tests := []struct {
		name   string
		months int
		now    time.Time
		want   time.Time
	}{
		{
			name:   "mês atual apenas",
			months: 1,
			now:    time.Date(2025, 3, 17, 15, 4, 0, 0, time.UTC),
			want:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "três meses no mesmo ano",
			months: 3,
			now:    time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC),
			want:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "atravessa a virada do ano",
			months: 6,
			now:    time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC),
			want:   time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "último ano",
			months: 12,
			now:    time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ReportingWindow{Months: tt.months}
			assert.Equal(t, tt.want, window.Start(tt.now))
		})
	}
}

func TestReportingWindow_Contains(t *testing.T) {
	now := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)
	window := ReportingWindow{Months: 3}

	assert.True(t, window.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, window.Contains(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, window.Contains(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, window.Contains(time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), now))
}

func TestReportingWindow_MonthKeys(t *testing.T) {
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	window := ReportingWindow{Months: 4}

	assert.Equal(t, []MonthKey{
		{Year: 2024, Month: time.November},
		{Year: 2024, Month: time.December},
		{Year: 2025, Month: time.January},
		{Year: 2025, Month: time.February},
	}, window.MonthKeys(now))
}

func TestReportingWindow_MonthKeysWithoutMonths(t *testing.T) {
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	assert.NotPanics(t, func() {
		assert.Empty(t, ReportingWindow{Months: -3}.MonthKeys(now))
		assert.Empty(t, ReportingWindow{}.MonthKeys(now))
	})
}
