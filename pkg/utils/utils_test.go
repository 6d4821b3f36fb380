package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)

	date, err := ParseDate("2025-03-17", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, loc), *date)

	empty, err := ParseDate("", nil)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("17/03/2025", loc)
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 4.33, RoundWithTwoDecimalPlace(13.0/3.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2.5, RoundWithTwoDecimalPlace(2.5))
}

func TestPrettyJson(t *testing.T) {
	out := PrettyJson(map[string]int{"total": 3})
	assert.Equal(t, "{\n\t\"total\": 3\n}", out)

	assert.Equal(t, "[\n\t1,\n\t2\n]", PrettyJson([]byte("[1,2]")))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}
