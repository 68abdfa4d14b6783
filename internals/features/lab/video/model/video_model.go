package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel: konten yang diputar kiosk selama jam istirahat.
// file_key/thumbnail_key = object key MinIO, URL dibangun saat render.
type VideoModel struct {
	VideoID uuid.UUID `gorm:"column:video_id;type:uuid;default:gen_random_uuid();primaryKey" json:"video_id"`

	VideoJudul     string  `gorm:"column:video_judul;type:varchar(160);not null" json:"video_judul"`
	VideoDeskripsi *string `gorm:"column:video_deskripsi;type:text" json:"video_deskripsi,omitempty"`

	VideoFileKey      string  `gorm:"column:video_file_key;type:text;not null" json:"video_file_key"`
	VideoThumbnailKey *string `gorm:"column:video_thumbnail_key;type:text" json:"video_thumbnail_key,omitempty"`

	VideoDurasi   *int `gorm:"column:video_durasi" json:"video_durasi,omitempty"` // detik, opsional
	VideoIsActive bool `gorm:"column:video_is_active;not null;default:true" json:"video_is_active"`
	VideoUrutan   int  `gorm:"column:video_urutan;not null;default:1" json:"video_urutan"`

	VideoCreatedAt time.Time `gorm:"column:video_created_at;type:timestamptz;not null;autoCreateTime" json:"video_created_at"`
	VideoUpdatedAt time.Time `gorm:"column:video_updated_at;type:timestamptz;not null;autoUpdateTime" json:"video_updated_at"`
}

func (VideoModel) TableName() string { return "videos" }
