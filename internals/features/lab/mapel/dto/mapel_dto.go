package dto

import (
	"strings"

	m "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/model"
)

type CreateMapelRequest struct {
	MapelNama string `json:"mapel_nama" form:"mapel_nama" validate:"required,min=1,max=120"`
}

func (r *CreateMapelRequest) Normalize() {
	r.MapelNama = strings.TrimSpace(r.MapelNama)
}

func (r *CreateMapelRequest) ToModel() *m.MapelModel {
	return &m.MapelModel{MapelNama: r.MapelNama}
}

type UpdateMapelRequest struct {
	MapelNama string `json:"mapel_nama" form:"mapel_nama" validate:"required,min=1,max=120"`
}

func (r *UpdateMapelRequest) Normalize() {
	r.MapelNama = strings.TrimSpace(r.MapelNama)
}

func (r *UpdateMapelRequest) Apply(mdl *m.MapelModel) {
	mdl.MapelNama = r.MapelNama
}
