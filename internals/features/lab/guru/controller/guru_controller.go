// file: internals/features/lab/guru/controller/guru_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/dto"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
	storage "github.com/sltnnt08/ilab-v2/internals/helpers/storage"
)

type GuruController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *GuruController {
	return &GuruController{DB: db, Validate: v}
}

func (ctl *GuruController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.GuruModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("guru_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[Guru.List] count error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data guru")
	}

	var rows []m.GuruModel
	if err := q.Order("guru_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[Guru.List] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data guru")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

func (ctl *GuruController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctl *GuruController) Create(c *fiber.Ctx) error {
	var req d.CreateGuruRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctl.applyAvatar(c, mdl, req.GuruAvatarURL); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.Context()).Create(mdl).Error; err != nil {
		if strings.Contains(err.Error(), "23505") {
			return helper.JsonError(c, http.StatusConflict, "Email guru sudah terdaftar")
		}
		log.Printf("[Guru.Create] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan guru")
	}
	return helper.JsonCreated(c, "Guru berhasil ditambahkan", mdl)
}

func (ctl *GuruController) Update(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}

	var req d.UpdateGuruRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(row)
	if err := ctl.applyAvatar(c, row, req.GuruAvatarURL); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.Context()).Save(row).Error; err != nil {
		if strings.Contains(err.Error(), "23505") {
			return helper.JsonError(c, http.StatusConflict, "Email guru sudah terdaftar")
		}
		log.Printf("[Guru.Update] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memperbarui guru")
	}
	return helper.JsonUpdated(c, "Guru berhasil diperbarui", row)
}

func (ctl *GuruController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(row).Error; err != nil {
		log.Printf("[Guru.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus guru")
	}
	// avatar upload lama dibersihkan best-effort
	if row.GuruAvatarKind != nil && *row.GuruAvatarKind == m.AvatarUpload && row.GuruAvatarRef != nil {
		if err := storage.RemoveFile(c.UserContext(), *row.GuruAvatarRef); err != nil {
			log.Printf("[Guru.Delete] hapus avatar err: %v", err)
		}
	}
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"guru_id": row.GuruID})
}

// applyAvatar set pasangan (kind, ref): file multipart menang atas URL.
func (ctl *GuruController) applyAvatar(c *fiber.Ctx, mdl *m.GuruModel, avatarURL *string) error {
	if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
		key, upErr := storage.UploadFile(c.UserContext(), fh, "avatars")
		if upErr != nil {
			log.Printf("[Guru.applyAvatar] upload error: %v", upErr)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengunggah avatar")
		}
		// ganti upload lama → hapus object lama best-effort
		if mdl.GuruAvatarKind != nil && *mdl.GuruAvatarKind == m.AvatarUpload && mdl.GuruAvatarRef != nil {
			if rmErr := storage.RemoveFile(c.UserContext(), *mdl.GuruAvatarRef); rmErr != nil {
				log.Printf("[Guru.applyAvatar] hapus avatar lama err: %v", rmErr)
			}
		}
		kind := m.AvatarUpload
		mdl.GuruAvatarKind = &kind
		mdl.GuruAvatarRef = &key
		return nil
	}

	if avatarURL != nil {
		kind := m.AvatarLink
		mdl.GuruAvatarKind = &kind
		mdl.GuruAvatarRef = avatarURL
	}
	return nil
}

func (ctl *GuruController) findByID(c *fiber.Ctx) (*m.GuruModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.GuruModel
	err = ctl.DB.WithContext(c.Context()).First(&row, "guru_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		log.Printf("[Guru.findByID] error: %v", err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return &row, nil
}
