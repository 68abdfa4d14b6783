package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	btModel "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/model"
	jadwalModel "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	videoModel "github.com/sltnnt08/ilab-v2/internals/features/lab/video/model"
)

// Implementasi GORM dari reader-reader engine. Ordering dikunci di sini
// supaya engine tinggal jalan sekali dari atas.

type jadwalRepo struct{ db *gorm.DB }

func (r *jadwalRepo) ListByRuanganHari(ctx context.Context, ruanganID uuid.UUID, hari string) ([]jadwalModel.JadwalModel, error) {
	var rows []jadwalModel.JadwalModel
	err := r.db.WithContext(ctx).
		Preload("Guru").Preload("Mapel").Preload("Kelas").
		Where("jadwal_ruangan_id = ? AND jadwal_hari = ?", ruanganID, hari).
		Order("jadwal_jam_mulai ASC, jadwal_created_at ASC").
		Find(&rows).Error
	return rows, err
}

type breakTimeRepo struct{ db *gorm.DB }

func (r *breakTimeRepo) ListActive(ctx context.Context) ([]btModel.BreakTimeModel, error) {
	var rows []btModel.BreakTimeModel
	err := r.db.WithContext(ctx).
		Where("break_time_is_active = ?", true).
		Order("break_time_urutan ASC, break_time_jam_mulai ASC, break_time_created_at ASC").
		Find(&rows).Error
	return rows, err
}

type videoRepo struct{ db *gorm.DB }

func (r *videoRepo) ListActive(ctx context.Context) ([]videoModel.VideoModel, error) {
	var rows []videoModel.VideoModel
	err := r.db.WithContext(ctx).
		Where("video_is_active = ?", true).
		Order("video_urutan ASC, video_created_at DESC").
		Find(&rows).Error
	return rows, err
}
