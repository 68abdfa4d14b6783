package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

func tod(s string) dbtime.Tod { return dbtime.MustParse(s) }

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aMulai, aSelesai, bMulai, bSelesai string
		want                           bool
	}{
		{"terpisah jauh", "07:00", "08:00", "09:00", "10:00", false},
		{"back-to-back bukan bentrok", "07:00", "08:30", "08:30", "10:00", false},
		{"back-to-back kebalik", "08:30", "10:00", "07:00", "08:30", false},
		{"overlap sebagian depan", "07:00", "08:00", "07:30", "09:00", true},
		{"overlap sebagian belakang", "07:30", "09:00", "07:00", "08:00", true},
		{"a di dalam b", "08:00", "08:30", "07:00", "10:00", true},
		{"b di dalam a", "07:00", "10:00", "08:00", "08:30", true},
		{"interval identik", "07:00", "08:00", "07:00", "08:00", true},
		{"beda satu detik", "07:00:00", "08:00:01", "08:00:00", "09:00:00", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tod(tc.aMulai), tod(tc.aSelesai), tod(tc.bMulai), tod(tc.bSelesai))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOverlapsSimetris(t *testing.T) {
	// predicate harus simetris terhadap urutan argumen
	a1, a2 := tod("07:00"), tod("09:00")
	b1, b2 := tod("08:00"), tod("10:00")
	assert.Equal(t, Overlaps(a1, a2, b1, b2), Overlaps(b1, b2, a1, a2))
}
