package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWaktuJadwal(t *testing.T) {
	t.Run("jam valid dikembalikan sebagai Tod", func(t *testing.T) {
		req := CreateJadwalRequest{JadwalJamMulai: "07:00", JadwalJamSelesai: "08:30"}
		mulai, selesai, errs := req.ValidateWaktu()
		require.Nil(t, errs)
		assert.Equal(t, "07:00:00", mulai.String())
		assert.Equal(t, "08:30:00", selesai.String())
	})

	t.Run("format rusak ditolak per field", func(t *testing.T) {
		req := CreateJadwalRequest{JadwalJamMulai: "tujuh pagi", JadwalJamSelesai: "08:30"}
		_, _, errs := req.ValidateWaktu()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "jadwal_jam_mulai")
		assert.NotContains(t, errs, "jadwal_jam_selesai")
	})

	t.Run("mulai == selesai ditolak", func(t *testing.T) {
		req := CreateJadwalRequest{JadwalJamMulai: "08:30", JadwalJamSelesai: "08:30"}
		_, _, errs := req.ValidateWaktu()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "jadwal_jam_selesai")
	})

	t.Run("mulai setelah selesai ditolak", func(t *testing.T) {
		req := UpdateJadwalRequest{JadwalJamMulai: "10:00", JadwalJamSelesai: "08:00"}
		_, _, errs := req.ValidateWaktu()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "jadwal_jam_selesai")
	})
}
