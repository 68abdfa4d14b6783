package model

import (
	"time"

	"github.com/google/uuid"
)

type MapelModel struct {
	MapelID uuid.UUID `gorm:"column:mapel_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mapel_id"`

	MapelNama string `gorm:"column:mapel_nama;type:varchar(120);not null" json:"mapel_nama"`

	MapelCreatedAt time.Time `gorm:"column:mapel_created_at;type:timestamptz;not null;autoCreateTime" json:"mapel_created_at"`
	MapelUpdatedAt time.Time `gorm:"column:mapel_updated_at;type:timestamptz;not null;autoUpdateTime" json:"mapel_updated_at"`
}

func (MapelModel) TableName() string { return "mapels" }
