package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("HH:MM:SS", func(t *testing.T) {
		tod, err := Parse("07:30:15")
		require.NoError(t, err)
		assert.Equal(t, "07:30:15", tod.String())
	})

	t.Run("HH:MM dinormalisasi ke detik nol", func(t *testing.T) {
		tod, err := Parse("08:30")
		require.NoError(t, err)
		assert.Equal(t, "08:30:00", tod.String())
	})

	t.Run("format salah", func(t *testing.T) {
		_, err := Parse("25:00:00")
		assert.Error(t, err)
		_, err = Parse("pagi")
		assert.Error(t, err)
	})
}

func TestCompareAntarTod(t *testing.T) {
	// Before/After bawaan time.Time harus valid antar Tod dari sumber beda
	a := MustParse("08:30:00")
	b := From(time.Date(2025, 11, 10, 8, 30, 0, 0, time.FixedZone("WIB", 7*3600)))
	assert.True(t, a.Equal(b.Time), "From harus buang tanggal & zona")
	assert.True(t, MustParse("07:00").Before(a.Time))
	assert.True(t, MustParse("10:00").After(a.Time))
}

func TestScan(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("12:15:00"))
	assert.Equal(t, "12:15:00", tod.String())

	// driver bisa kirim time.Time dengan tanggal dummy
	require.NoError(t, tod.Scan(time.Date(1, 1, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "10:00:00", tod.String())
	assert.True(t, tod.Equal(MustParse("10:00:00").Time))

	require.NoError(t, tod.Scan([]byte("09:45")))
	assert.Equal(t, "09:45:00", tod.String())
}

func TestValue(t *testing.T) {
	v, err := MustParse("13:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "13:00:00", v)

	var zero Tod
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(MustParse("11:30"))
	require.NoError(t, err)
	assert.Equal(t, `"11:30:00"`, string(b))

	var tod Tod
	require.NoError(t, json.Unmarshal([]byte(`"14:05"`), &tod))
	assert.Equal(t, "14:05:00", tod.String())
}

func TestHHMM(t *testing.T) {
	assert.Equal(t, "07:00", MustParse("07:00:59").HHMM())
}
