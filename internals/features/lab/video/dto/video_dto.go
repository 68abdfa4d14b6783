package dto

import (
	"strings"

	m "github.com/sltnnt08/ilab-v2/internals/features/lab/video/model"
)

// File video & thumbnail dikirim sebagai multipart ("video", "thumbnail"),
// jadi tidak ada field key di request — controller yang isi dari hasil upload.
type CreateVideoRequest struct {
	VideoJudul     string  `json:"video_judul" form:"video_judul" validate:"required,min=1,max=160"`
	VideoDeskripsi *string `json:"video_deskripsi" form:"video_deskripsi" validate:"omitempty,max=2000"`
	VideoDurasi    *int    `json:"video_durasi" form:"video_durasi" validate:"omitempty,min=1"`
	VideoIsActive  *bool   `json:"video_is_active" form:"video_is_active"`
	VideoUrutan    int     `json:"video_urutan" form:"video_urutan" validate:"min=0"`
}

func (r *CreateVideoRequest) Normalize() {
	r.VideoJudul = strings.TrimSpace(r.VideoJudul)
	r.VideoDeskripsi = trimPtr(r.VideoDeskripsi)
	if r.VideoUrutan == 0 {
		r.VideoUrutan = 1
	}
}

func (r *CreateVideoRequest) ToModel(fileKey string, thumbnailKey *string) *m.VideoModel {
	isActive := true
	if r.VideoIsActive != nil {
		isActive = *r.VideoIsActive
	}
	return &m.VideoModel{
		VideoJudul:        r.VideoJudul,
		VideoDeskripsi:    r.VideoDeskripsi,
		VideoFileKey:      fileKey,
		VideoThumbnailKey: thumbnailKey,
		VideoDurasi:       r.VideoDurasi,
		VideoIsActive:     isActive,
		VideoUrutan:       r.VideoUrutan,
	}
}

// Update tidak mewajibkan file baru; file/thumbnail lama dipertahankan
// kecuali multipart baru dikirim.
type UpdateVideoRequest struct {
	VideoJudul     string  `json:"video_judul" form:"video_judul" validate:"required,min=1,max=160"`
	VideoDeskripsi *string `json:"video_deskripsi" form:"video_deskripsi" validate:"omitempty,max=2000"`
	VideoDurasi    *int    `json:"video_durasi" form:"video_durasi" validate:"omitempty,min=1"`
	VideoIsActive  *bool   `json:"video_is_active" form:"video_is_active"`
	VideoUrutan    int     `json:"video_urutan" form:"video_urutan" validate:"min=0"`
}

func (r *UpdateVideoRequest) Normalize() {
	r.VideoJudul = strings.TrimSpace(r.VideoJudul)
	r.VideoDeskripsi = trimPtr(r.VideoDeskripsi)
	if r.VideoUrutan == 0 {
		r.VideoUrutan = 1
	}
}

func (r *UpdateVideoRequest) Apply(mdl *m.VideoModel) {
	mdl.VideoJudul = r.VideoJudul
	mdl.VideoDeskripsi = r.VideoDeskripsi
	mdl.VideoDurasi = r.VideoDurasi
	if r.VideoIsActive != nil {
		mdl.VideoIsActive = *r.VideoIsActive
	}
	mdl.VideoUrutan = r.VideoUrutan
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
