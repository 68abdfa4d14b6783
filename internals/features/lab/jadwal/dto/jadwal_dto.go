package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

type CreateJadwalRequest struct {
	JadwalGuruID    uuid.UUID `json:"jadwal_guru_id" form:"jadwal_guru_id" validate:"required"`
	JadwalMapelID   uuid.UUID `json:"jadwal_mapel_id" form:"jadwal_mapel_id" validate:"required"`
	JadwalKelasID   uuid.UUID `json:"jadwal_kelas_id" form:"jadwal_kelas_id" validate:"required"`
	JadwalRuanganID uuid.UUID `json:"jadwal_ruangan_id" form:"jadwal_ruangan_id" validate:"required"`

	JadwalHari       string `json:"jadwal_hari" form:"jadwal_hari" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu"`
	JadwalJamMulai   string `json:"jadwal_jam_mulai" form:"jadwal_jam_mulai" validate:"required"`
	JadwalJamSelesai string `json:"jadwal_jam_selesai" form:"jadwal_jam_selesai" validate:"required"`
}

func (r *CreateJadwalRequest) Normalize() {
	r.JadwalHari = strings.TrimSpace(r.JadwalHari)
	r.JadwalJamMulai = strings.TrimSpace(r.JadwalJamMulai)
	r.JadwalJamSelesai = strings.TrimSpace(r.JadwalJamSelesai)
}

func (r *CreateJadwalRequest) ValidateWaktu() (mulai, selesai dbtime.Tod, fieldErrs map[string][]string) {
	return validateWaktu(r.JadwalJamMulai, r.JadwalJamSelesai)
}

func (r *CreateJadwalRequest) ToModel(mulai, selesai dbtime.Tod) *m.JadwalModel {
	return &m.JadwalModel{
		JadwalGuruID:     r.JadwalGuruID,
		JadwalMapelID:    r.JadwalMapelID,
		JadwalKelasID:    r.JadwalKelasID,
		JadwalRuanganID:  r.JadwalRuanganID,
		JadwalHari:       r.JadwalHari,
		JadwalJamMulai:   mulai,
		JadwalJamSelesai: selesai,
	}
}

type UpdateJadwalRequest struct {
	JadwalGuruID    uuid.UUID `json:"jadwal_guru_id" form:"jadwal_guru_id" validate:"required"`
	JadwalMapelID   uuid.UUID `json:"jadwal_mapel_id" form:"jadwal_mapel_id" validate:"required"`
	JadwalKelasID   uuid.UUID `json:"jadwal_kelas_id" form:"jadwal_kelas_id" validate:"required"`
	JadwalRuanganID uuid.UUID `json:"jadwal_ruangan_id" form:"jadwal_ruangan_id" validate:"required"`

	JadwalHari       string `json:"jadwal_hari" form:"jadwal_hari" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu"`
	JadwalJamMulai   string `json:"jadwal_jam_mulai" form:"jadwal_jam_mulai" validate:"required"`
	JadwalJamSelesai string `json:"jadwal_jam_selesai" form:"jadwal_jam_selesai" validate:"required"`
}

func (r *UpdateJadwalRequest) Normalize() {
	r.JadwalHari = strings.TrimSpace(r.JadwalHari)
	r.JadwalJamMulai = strings.TrimSpace(r.JadwalJamMulai)
	r.JadwalJamSelesai = strings.TrimSpace(r.JadwalJamSelesai)
}

func (r *UpdateJadwalRequest) ValidateWaktu() (mulai, selesai dbtime.Tod, fieldErrs map[string][]string) {
	return validateWaktu(r.JadwalJamMulai, r.JadwalJamSelesai)
}

func (r *UpdateJadwalRequest) Apply(mdl *m.JadwalModel, mulai, selesai dbtime.Tod) {
	mdl.JadwalGuruID = r.JadwalGuruID
	mdl.JadwalMapelID = r.JadwalMapelID
	mdl.JadwalKelasID = r.JadwalKelasID
	mdl.JadwalRuanganID = r.JadwalRuanganID
	mdl.JadwalHari = r.JadwalHari
	mdl.JadwalJamMulai = mulai
	mdl.JadwalJamSelesai = selesai
	// relasi preload lama bisa basi setelah FK berubah
	mdl.Guru, mdl.Mapel, mdl.Kelas, mdl.Ruangan = nil, nil, nil, nil
}

func validateWaktu(jamMulai, jamSelesai string) (mulai, selesai dbtime.Tod, fieldErrs map[string][]string) {
	fieldErrs = map[string][]string{}

	mulai, errMulai := dbtime.Parse(jamMulai)
	if errMulai != nil {
		fieldErrs["jadwal_jam_mulai"] = []string{"Format jam tidak valid (HH:MM)"}
	}
	selesai, errSelesai := dbtime.Parse(jamSelesai)
	if errSelesai != nil {
		fieldErrs["jadwal_jam_selesai"] = []string{"Format jam tidak valid (HH:MM)"}
	}
	if errMulai == nil && errSelesai == nil && !mulai.Before(selesai.Time) {
		fieldErrs["jadwal_jam_selesai"] = append(fieldErrs["jadwal_jam_selesai"],
			"Jam selesai harus setelah jam mulai")
	}
	if len(fieldErrs) == 0 {
		fieldErrs = nil
	}
	return mulai, selesai, fieldErrs
}
