package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
)

type CreateRuanganRequest struct {
	RuanganNama       string  `json:"ruangan_nama" form:"ruangan_nama" validate:"required,min=1,max=120"`
	RuanganKeterangan *string `json:"ruangan_keterangan" form:"ruangan_keterangan"`

	// PIC fallback untuk layar kiosk; opsional
	RuanganDefaultPicID *uuid.UUID `json:"ruangan_default_pic_id" form:"ruangan_default_pic_id"`
}

func (r *CreateRuanganRequest) Normalize() {
	r.RuanganNama = strings.TrimSpace(r.RuanganNama)
	trimPtr(&r.RuanganKeterangan)
}

func (r *CreateRuanganRequest) ToModel() *m.RuanganModel {
	return &m.RuanganModel{
		RuanganNama:         r.RuanganNama,
		RuanganKeterangan:   r.RuanganKeterangan,
		RuanganDefaultPicID: r.RuanganDefaultPicID,
	}
}

type UpdateRuanganRequest struct {
	RuanganNama       string  `json:"ruangan_nama" form:"ruangan_nama" validate:"required,min=1,max=120"`
	RuanganKeterangan *string `json:"ruangan_keterangan" form:"ruangan_keterangan"`

	// kirim null untuk melepas PIC
	RuanganDefaultPicID *uuid.UUID `json:"ruangan_default_pic_id" form:"ruangan_default_pic_id"`
}

func (r *UpdateRuanganRequest) Normalize() {
	r.RuanganNama = strings.TrimSpace(r.RuanganNama)
	trimPtr(&r.RuanganKeterangan)
}

func (r *UpdateRuanganRequest) Apply(mdl *m.RuanganModel) {
	mdl.RuanganNama = r.RuanganNama
	mdl.RuanganKeterangan = r.RuanganKeterangan
	mdl.RuanganDefaultPicID = r.RuanganDefaultPicID
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
