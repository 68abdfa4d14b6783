package dto

import (
	"strings"

	"gorm.io/datatypes"

	"github.com/sltnnt08/ilab-v2/internals/constants"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/model"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

type CreateBreakTimeRequest struct {
	BreakTimeNama       string   `json:"break_time_nama" form:"break_time_nama" validate:"required,min=1,max=120"`
	BreakTimeJamMulai   string   `json:"break_time_jam_mulai" form:"break_time_jam_mulai" validate:"required"`
	BreakTimeJamSelesai string   `json:"break_time_jam_selesai" form:"break_time_jam_selesai" validate:"required"`
	BreakTimeHari       []string `json:"break_time_hari" form:"break_time_hari"`
	BreakTimeIsActive   *bool    `json:"break_time_is_active" form:"break_time_is_active"`
	BreakTimeUrutan     int      `json:"break_time_urutan" form:"break_time_urutan" validate:"min=0"`
}

func (r *CreateBreakTimeRequest) Normalize() {
	r.BreakTimeNama = strings.TrimSpace(r.BreakTimeNama)
	r.BreakTimeJamMulai = strings.TrimSpace(r.BreakTimeJamMulai)
	r.BreakTimeJamSelesai = strings.TrimSpace(r.BreakTimeJamSelesai)
	for i, h := range r.BreakTimeHari {
		r.BreakTimeHari[i] = strings.TrimSpace(h)
	}
}

// ValidateWaktu: format jam + urutan mulai<selesai + daftar hari.
// Return map field error yang siap dikirim sebagai 422.
func (r *CreateBreakTimeRequest) ValidateWaktu() (mulai, selesai dbtime.Tod, fieldErrs map[string][]string) {
	return validateWaktu(r.BreakTimeJamMulai, r.BreakTimeJamSelesai, r.BreakTimeHari)
}

func (r *CreateBreakTimeRequest) ToModel(mulai, selesai dbtime.Tod) *m.BreakTimeModel {
	isActive := true
	if r.BreakTimeIsActive != nil {
		isActive = *r.BreakTimeIsActive
	}
	return &m.BreakTimeModel{
		BreakTimeNama:       r.BreakTimeNama,
		BreakTimeJamMulai:   mulai,
		BreakTimeJamSelesai: selesai,
		BreakTimeHari:       datatypes.JSONSlice[string](r.BreakTimeHari),
		BreakTimeIsActive:   isActive,
		BreakTimeUrutan:     r.BreakTimeUrutan,
	}
}

type UpdateBreakTimeRequest struct {
	BreakTimeNama       string   `json:"break_time_nama" form:"break_time_nama" validate:"required,min=1,max=120"`
	BreakTimeJamMulai   string   `json:"break_time_jam_mulai" form:"break_time_jam_mulai" validate:"required"`
	BreakTimeJamSelesai string   `json:"break_time_jam_selesai" form:"break_time_jam_selesai" validate:"required"`
	BreakTimeHari       []string `json:"break_time_hari" form:"break_time_hari"`
	BreakTimeIsActive   *bool    `json:"break_time_is_active" form:"break_time_is_active"`
	BreakTimeUrutan     int      `json:"break_time_urutan" form:"break_time_urutan" validate:"min=0"`
}

func (r *UpdateBreakTimeRequest) Normalize() {
	r.BreakTimeNama = strings.TrimSpace(r.BreakTimeNama)
	r.BreakTimeJamMulai = strings.TrimSpace(r.BreakTimeJamMulai)
	r.BreakTimeJamSelesai = strings.TrimSpace(r.BreakTimeJamSelesai)
	for i, h := range r.BreakTimeHari {
		r.BreakTimeHari[i] = strings.TrimSpace(h)
	}
}

func (r *UpdateBreakTimeRequest) ValidateWaktu() (mulai, selesai dbtime.Tod, fieldErrs map[string][]string) {
	return validateWaktu(r.BreakTimeJamMulai, r.BreakTimeJamSelesai, r.BreakTimeHari)
}

func (r *UpdateBreakTimeRequest) Apply(mdl *m.BreakTimeModel, mulai, selesai dbtime.Tod) {
	mdl.BreakTimeNama = r.BreakTimeNama
	mdl.BreakTimeJamMulai = mulai
	mdl.BreakTimeJamSelesai = selesai
	mdl.BreakTimeHari = datatypes.JSONSlice[string](r.BreakTimeHari)
	if r.BreakTimeIsActive != nil {
		mdl.BreakTimeIsActive = *r.BreakTimeIsActive
	}
	mdl.BreakTimeUrutan = r.BreakTimeUrutan
}

func validateWaktu(jamMulai, jamSelesai string, hari []string) (mulai, selesai dbtime.Tod, fieldErrs map[string][]string) {
	fieldErrs = map[string][]string{}

	mulai, errMulai := dbtime.Parse(jamMulai)
	if errMulai != nil {
		fieldErrs["break_time_jam_mulai"] = []string{"Format jam tidak valid (HH:MM)"}
	}
	selesai, errSelesai := dbtime.Parse(jamSelesai)
	if errSelesai != nil {
		fieldErrs["break_time_jam_selesai"] = []string{"Format jam tidak valid (HH:MM)"}
	}
	if errMulai == nil && errSelesai == nil && !mulai.Before(selesai.Time) {
		fieldErrs["break_time_jam_selesai"] = append(fieldErrs["break_time_jam_selesai"],
			"Jam selesai harus setelah jam mulai")
	}
	for _, h := range hari {
		if !constants.IsHariValid(h) {
			fieldErrs["break_time_hari"] = append(fieldErrs["break_time_hari"],
				"Hari tidak dikenal: "+h)
		}
	}
	if len(fieldErrs) == 0 {
		fieldErrs = nil
	}
	return mulai, selesai, fieldErrs
}
