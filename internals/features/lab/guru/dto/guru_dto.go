package dto

import (
	"strings"

	m "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
)

// Avatar dikirim salah satu dari dua cara:
//   - multipart file "avatar"  → disimpan ke MinIO (kind=upload)
//   - field guru_avatar_url    → dipakai apa adanya (kind=link)
// File menang kalau dua-duanya dikirim.

type CreateGuruRequest struct {
	GuruName  string  `json:"guru_name" form:"guru_name" validate:"required,min=1,max=120"`
	GuruEmail string  `json:"guru_email" form:"guru_email" validate:"required,email,max=160"`
	GuruNoHP  *string `json:"guru_no_hp" form:"guru_no_hp" validate:"omitempty,max=30"`

	GuruAvatarURL *string `json:"guru_avatar_url" form:"guru_avatar_url" validate:"omitempty,url"`
}

func (r *CreateGuruRequest) Normalize() {
	r.GuruName = strings.TrimSpace(r.GuruName)
	r.GuruEmail = strings.ToLower(strings.TrimSpace(r.GuruEmail))
	trimPtr(&r.GuruNoHP)
	trimPtr(&r.GuruAvatarURL)
}

func (r *CreateGuruRequest) ToModel() *m.GuruModel {
	return &m.GuruModel{
		GuruName:  r.GuruName,
		GuruEmail: r.GuruEmail,
		GuruNoHP:  r.GuruNoHP,
	}
}

type UpdateGuruRequest struct {
	GuruName  string  `json:"guru_name" form:"guru_name" validate:"required,min=1,max=120"`
	GuruEmail string  `json:"guru_email" form:"guru_email" validate:"required,email,max=160"`
	GuruNoHP  *string `json:"guru_no_hp" form:"guru_no_hp" validate:"omitempty,max=30"`

	GuruAvatarURL *string `json:"guru_avatar_url" form:"guru_avatar_url" validate:"omitempty,url"`
}

func (r *UpdateGuruRequest) Normalize() {
	r.GuruName = strings.TrimSpace(r.GuruName)
	r.GuruEmail = strings.ToLower(strings.TrimSpace(r.GuruEmail))
	trimPtr(&r.GuruNoHP)
	trimPtr(&r.GuruAvatarURL)
}

func (r *UpdateGuruRequest) Apply(mdl *m.GuruModel) {
	mdl.GuruName = r.GuruName
	mdl.GuruEmail = r.GuruEmail
	mdl.GuruNoHP = r.GuruNoHP
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
