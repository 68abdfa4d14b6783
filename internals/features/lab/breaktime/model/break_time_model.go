package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

// BreakTimeModel: jendela istirahat berulang. Overlap antar break time
// dibolehkan; urutan terendah menang saat dua-duanya aktif di jam yang sama.
type BreakTimeModel struct {
	BreakTimeID uuid.UUID `gorm:"column:break_time_id;type:uuid;default:gen_random_uuid();primaryKey" json:"break_time_id"`

	BreakTimeNama       string     `gorm:"column:break_time_nama;type:varchar(120);not null" json:"break_time_nama"`
	BreakTimeJamMulai   dbtime.Tod `gorm:"column:break_time_jam_mulai;type:time;not null" json:"break_time_jam_mulai"`
	BreakTimeJamSelesai dbtime.Tod `gorm:"column:break_time_jam_selesai;type:time;not null" json:"break_time_jam_selesai"`

	// NULL atau [] = berlaku setiap hari; selain itu daftar nama hari ("Jumat", ...)
	BreakTimeHari datatypes.JSONSlice[string] `gorm:"column:break_time_hari;type:jsonb" json:"break_time_hari,omitempty"`

	BreakTimeIsActive bool `gorm:"column:break_time_is_active;not null;default:true" json:"break_time_is_active"`
	BreakTimeUrutan   int  `gorm:"column:break_time_urutan;not null;default:0" json:"break_time_urutan"`

	BreakTimeCreatedAt time.Time `gorm:"column:break_time_created_at;type:timestamptz;not null;autoCreateTime" json:"break_time_created_at"`
	BreakTimeUpdatedAt time.Time `gorm:"column:break_time_updated_at;type:timestamptz;not null;autoUpdateTime" json:"break_time_updated_at"`
}

func (BreakTimeModel) TableName() string { return "break_times" }

// BerlakuHari: filter hari — nil/kosong berarti semua hari.
func (b BreakTimeModel) BerlakuHari(hari string) bool {
	if len(b.BreakTimeHari) == 0 {
		return true
	}
	for _, h := range b.BreakTimeHari {
		if h == hari {
			return true
		}
	}
	return false
}
