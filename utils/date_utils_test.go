package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	_, ok, err := ParseQueryDate("", loc)
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err := ParseQueryDate("2025-11-19", loc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 19, 0, 0, 0, 0, loc), got)

	_, _, err = ParseQueryDate("19/11/2025", loc)
	assert.Error(t, err)
}
