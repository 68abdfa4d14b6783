package model

import (
	"time"

	"github.com/google/uuid"
)

type KelasModel struct {
	KelasID uuid.UUID `gorm:"column:kelas_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kelas_id"`

	KelasNama string `gorm:"column:kelas_nama;type:varchar(60);not null" json:"kelas_nama"`

	KelasCreatedAt time.Time `gorm:"column:kelas_created_at;type:timestamptz;not null;autoCreateTime" json:"kelas_created_at"`
	KelasUpdatedAt time.Time `gorm:"column:kelas_updated_at;type:timestamptz;not null;autoUpdateTime" json:"kelas_updated_at"`
}

func (KelasModel) TableName() string { return "kelas" }
