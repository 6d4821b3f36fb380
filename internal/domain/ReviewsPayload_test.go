package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStarCounts(t *testing.T) {
	starCounts := map[string]RawReview{
		"review_1_0": {Rating: "4", Day: "2025-01-30"},
		"review_0_0": {Rating: "5", Day: "2025-01-31"},
		"review_0_1": {Rating: " 3 ", Day: "2025-01-31"},
	}

	records, err := ParseStarCounts(starCounts, time.UTC)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Ordenado pela chave
	assert.Equal(t, "review_0_0", records[0].Key)
	assert.Equal(t, "review_0_1", records[1].Key)
	assert.Equal(t, "review_1_0", records[2].Key)

	assert.Equal(t, 5, records[0].Rating)
	assert.Equal(t, 3, records[1].Rating)
	assert.Equal(t, time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC), records[2].Day)
}

func TestParseRawReview_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  RawReview
	}{
		{name: "rating não numérico", raw: RawReview{Rating: "cinco", Day: "2025-01-01"}},
		{name: "rating zero", raw: RawReview{Rating: "0", Day: "2025-01-01"}},
		{name: "rating acima de cinco", raw: RawReview{Rating: "6", Day: "2025-01-01"}},
		{name: "data com horário", raw: RawReview{Rating: "3", Day: "2025-01-01T10:00:00Z"}},
		{name: "data inexistente", raw: RawReview{Rating: "3", Day: "2025-02-30"}},
		{name: "data vazia", raw: RawReview{Rating: "3", Day: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRawReview("k", tt.raw, time.UTC)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestReviewsPayload_Records(t *testing.T) {
	var empty *ReviewsPayload
	_, err := empty.Records(time.UTC)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = (&ReviewsPayload{Data: &ReviewsData{}}).Records(time.UTC)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	payload := &ReviewsPayload{Data: &ReviewsData{StarCounts: map[string]RawReview{
		"a": {Rating: "1", Day: "2024-02-29"},
		"b": {Rating: "9", Day: "2024-02-29"},
	}}}
	_, err = payload.Records(time.UTC)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	payload.Data.StarCounts["b"] = RawReview{Rating: "2", Day: "2024-03-01"}
	records, err := payload.Records(time.UTC)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRatingRecord_ToRawReview(t *testing.T) {
	record := RatingRecord{Key: "x", Rating: 4, Day: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, RawReview{Rating: "4", Day: "2025-07-04"}, record.ToRawReview())
}
