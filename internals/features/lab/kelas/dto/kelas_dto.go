package dto

import (
	"strings"

	m "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/model"
)

type CreateKelasRequest struct {
	KelasNama string `json:"kelas_nama" form:"kelas_nama" validate:"required,min=1,max=60"`
}

func (r *CreateKelasRequest) Normalize() {
	r.KelasNama = strings.TrimSpace(r.KelasNama)
}

func (r *CreateKelasRequest) ToModel() *m.KelasModel {
	return &m.KelasModel{KelasNama: r.KelasNama}
}

type UpdateKelasRequest struct {
	KelasNama string `json:"kelas_nama" form:"kelas_nama" validate:"required,min=1,max=60"`
}

func (r *UpdateKelasRequest) Normalize() {
	r.KelasNama = strings.TrimSpace(r.KelasNama)
}

func (r *UpdateKelasRequest) Apply(mdl *m.KelasModel) {
	mdl.KelasNama = r.KelasNama
}
