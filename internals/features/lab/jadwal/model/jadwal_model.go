package model

import (
	"time"

	"github.com/google/uuid"

	guruModel "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
	kelasModel "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/model"
	mapelModel "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/model"
	ruanganModel "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

// JadwalModel: satu slot mingguan berulang (guru+mapel+kelas di satu ruangan).
// Invariant: jam_mulai < jam_selesai; dalam (ruangan, hari) interval
// [jam_mulai, jam_selesai) tidak boleh saling tumpang tindih — dijaga
// service.CheckBentrok sebelum tulis.
type JadwalModel struct {
	JadwalID uuid.UUID `gorm:"column:jadwal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"jadwal_id"`

	JadwalGuruID    uuid.UUID `gorm:"column:jadwal_guru_id;type:uuid;not null" json:"jadwal_guru_id"`
	JadwalMapelID   uuid.UUID `gorm:"column:jadwal_mapel_id;type:uuid;not null" json:"jadwal_mapel_id"`
	JadwalKelasID   uuid.UUID `gorm:"column:jadwal_kelas_id;type:uuid;not null" json:"jadwal_kelas_id"`
	JadwalRuanganID uuid.UUID `gorm:"column:jadwal_ruangan_id;type:uuid;not null;index:idx_jadwal_ruangan_hari,priority:1" json:"jadwal_ruangan_id"`

	// enum 6 hari (Senin..Sabtu)
	JadwalHari       string     `gorm:"column:jadwal_hari;type:varchar(10);not null;index:idx_jadwal_ruangan_hari,priority:2" json:"jadwal_hari"`
	JadwalJamMulai   dbtime.Tod `gorm:"column:jadwal_jam_mulai;type:time;not null" json:"jadwal_jam_mulai"`
	JadwalJamSelesai dbtime.Tod `gorm:"column:jadwal_jam_selesai;type:time;not null" json:"jadwal_jam_selesai"`

	Guru    *guruModel.GuruModel       `gorm:"foreignKey:JadwalGuruID;references:GuruID;constraint:OnDelete:CASCADE" json:"guru,omitempty"`
	Mapel   *mapelModel.MapelModel     `gorm:"foreignKey:JadwalMapelID;references:MapelID;constraint:OnDelete:CASCADE" json:"mapel,omitempty"`
	Kelas   *kelasModel.KelasModel     `gorm:"foreignKey:JadwalKelasID;references:KelasID;constraint:OnDelete:CASCADE" json:"kelas,omitempty"`
	Ruangan *ruanganModel.RuanganModel `gorm:"foreignKey:JadwalRuanganID;references:RuanganID;constraint:OnDelete:CASCADE" json:"ruangan,omitempty"`

	JadwalCreatedAt time.Time `gorm:"column:jadwal_created_at;type:timestamptz;not null;autoCreateTime" json:"jadwal_created_at"`
	JadwalUpdatedAt time.Time `gorm:"column:jadwal_updated_at;type:timestamptz;not null;autoUpdateTime" json:"jadwal_updated_at"`
}

func (JadwalModel) TableName() string { return "jadwals" }
