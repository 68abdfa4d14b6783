package model

import (
	"time"

	"github.com/google/uuid"

	guruModel "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
)

type RuanganModel struct {
	RuanganID uuid.UUID `gorm:"column:ruangan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ruangan_id"`

	RuanganNama       string  `gorm:"column:ruangan_nama;type:varchar(120);not null" json:"ruangan_nama"`
	RuanganKeterangan *string `gorm:"column:ruangan_keterangan;type:text" json:"ruangan_keterangan,omitempty"`

	// PIC fallback saat tidak ada jadwal berjalan di ruangan ini
	RuanganDefaultPicID *uuid.UUID          `gorm:"column:ruangan_default_pic_id;type:uuid" json:"ruangan_default_pic_id,omitempty"`
	DefaultPic          *guruModel.GuruModel `gorm:"foreignKey:RuanganDefaultPicID;references:GuruID;constraint:OnDelete:SET NULL" json:"default_pic,omitempty"`

	RuanganCreatedAt time.Time `gorm:"column:ruangan_created_at;type:timestamptz;not null;autoCreateTime" json:"ruangan_created_at"`
	RuanganUpdatedAt time.Time `gorm:"column:ruangan_updated_at;type:timestamptz;not null;autoUpdateTime" json:"ruangan_updated_at"`
}

func (RuanganModel) TableName() string { return "ruangans" }
