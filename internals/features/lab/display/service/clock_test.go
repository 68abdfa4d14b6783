package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

func TestNewTimeContext(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)

	t.Run("hari locale id + jam detik penuh", func(t *testing.T) {
		// 10 Nov 2025 = Senin
		tc := NewTimeContext(fixedClock{time.Date(2025, 11, 10, 8, 30, 15, 999, wib)})
		assert.Equal(t, "Senin", tc.Hari)
		assert.Equal(t, "08:30:15", tc.Jam.String())
	})

	t.Run("Jumat", func(t *testing.T) {
		tc := NewTimeContext(fixedClock{time.Date(2025, 11, 14, 11, 30, 0, 0, wib)})
		assert.Equal(t, "Jumat", tc.Hari)
	})

	t.Run("Minggu ikut dinamai walau tak ada jadwal", func(t *testing.T) {
		tc := NewTimeContext(fixedClock{time.Date(2025, 11, 16, 7, 0, 0, 0, wib)})
		assert.Equal(t, "Minggu", tc.Hari)
	})
}
