package locale

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestParseDate(t *testing.T) {
	loc := saoPaulo(t)

	t.Run("store literal", func(t *testing.T) {
		got, ok := ParseDate("19-11-2025", loc)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.November, 19, 0, 0, 0, 0, loc), got)
	})

	t.Run("timestamp is moved into the location", func(t *testing.T) {
		got, ok := ParseDate("2025-11-19T02:00:00Z", loc)
		require.True(t, ok)
		assert.Equal(t, 18, got.Day())
		assert.Equal(t, loc, got.Location())
	})

	t.Run("calendar date", func(t *testing.T) {
		got, ok := ParseDate("2025-11-19", loc)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.November, 19, 0, 0, 0, 0, loc), got)
	})

	for _, bad := range []string{"", "ontem", "31-02-2025", "19/11/2025"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, ok := ParseDate(bad, loc)
			assert.False(t, ok)
		})
	}
}

func TestFormatDate(t *testing.T) {
	loc := saoPaulo(t)

	assert.Equal(t, "19/11/2025", FormatDate("19-11-2025", loc))
	assert.Equal(t, "19/11/2025", FormatDate("2025-11-19T15:04:05Z", loc))
	assert.Equal(t, "qualquer", FormatDate("qualquer", loc))
	assert.Equal(t, "19-11-2025", StoreDate(time.Date(2025, 11, 19, 23, 0, 0, 0, loc)))
}
