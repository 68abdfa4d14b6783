package model

import (
	"time"

	"github.com/google/uuid"
)

// AvatarKind: avatar guru disimpan sebagai pasangan (kind, ref) —
// 'upload' = object key di MinIO, 'link' = URL eksternal utuh.
// Jangan deteksi prefix "http" saat render.
type AvatarKind string

const (
	AvatarUpload AvatarKind = "upload"
	AvatarLink   AvatarKind = "link"
)

type GuruModel struct {
	GuruID uuid.UUID `gorm:"column:guru_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guru_id"`

	GuruName  string  `gorm:"column:guru_name;type:varchar(120);not null" json:"guru_name"`
	GuruEmail string  `gorm:"column:guru_email;type:varchar(160);not null;uniqueIndex" json:"guru_email"`
	GuruNoHP  *string `gorm:"column:guru_no_hp;type:varchar(30)" json:"guru_no_hp,omitempty"`

	GuruAvatarKind *AvatarKind `gorm:"column:guru_avatar_kind;type:varchar(10)" json:"guru_avatar_kind,omitempty"`
	GuruAvatarRef  *string     `gorm:"column:guru_avatar_ref;type:text" json:"guru_avatar_ref,omitempty"`

	GuruCreatedAt time.Time `gorm:"column:guru_created_at;type:timestamptz;not null;autoCreateTime" json:"guru_created_at"`
	GuruUpdatedAt time.Time `gorm:"column:guru_updated_at;type:timestamptz;not null;autoUpdateTime" json:"guru_updated_at"`
}

func (GuruModel) TableName() string { return "gurus" }
