package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

// Overlaps: dua interval [aMulai, aSelesai) dan [bMulai, bSelesai)
// tumpang tindih iff aMulai < bSelesai && aSelesai > bMulai.
// Jadwal back-to-back (selesai == mulai berikutnya) BUKAN bentrok.
func Overlaps(aMulai, aSelesai, bMulai, bSelesai dbtime.Tod) bool {
	return aMulai.Before(bSelesai.Time) && aSelesai.After(bMulai.Time)
}

// CheckBentrok cek apakah [jamMulai, jamSelesai) menabrak jadwal lain di
// (ruangan, hari) yang sama. excludeID diisi saat update agar jadwal yang
// sedang diedit tidak menabrak dirinya sendiri.
//
// Panggil dengan tx dari transaksi yang sama dengan tulisnya — check lalu
// write harus satu transaksi supaya dua admin yang menyimpan bersamaan
// tidak sama-sama lolos.
func CheckBentrok(tx *gorm.DB, ruanganID uuid.UUID, hari string, jamMulai, jamSelesai dbtime.Tod, excludeID *uuid.UUID) (bool, error) {
	q := tx.Model(&m.JadwalModel{}).
		Where("jadwal_ruangan_id = ? AND jadwal_hari = ?", ruanganID, hari).
		Where("jadwal_jam_mulai < ? AND jadwal_jam_selesai > ?", jamSelesai, jamMulai)
	if excludeID != nil {
		q = q.Where("jadwal_id <> ?", *excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
