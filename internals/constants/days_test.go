package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Senin", WeekdayName(time.Monday))
	assert.Equal(t, "Jumat", WeekdayName(time.Friday))
	assert.Equal(t, "Minggu", WeekdayName(time.Sunday))
}

func TestIsHariSekolah(t *testing.T) {
	for _, h := range HariSekolah {
		assert.True(t, IsHariSekolah(h), h)
	}
	assert.False(t, IsHariSekolah("Minggu"), "tidak ada jadwal hari Minggu")
	assert.False(t, IsHariSekolah("Monday"), "nama hari harus locale id")
	assert.False(t, IsHariSekolah(""))
}

func TestIsHariValid(t *testing.T) {
	assert.True(t, IsHariValid("Minggu"), "break time boleh hari Minggu")
	assert.False(t, IsHariValid("senin"), "case sensitive")
}
