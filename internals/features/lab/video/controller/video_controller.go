// file: internals/features/lab/video/controller/video_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/sltnnt08/ilab-v2/internals/features/lab/video/dto"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/video/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
	"github.com/sltnnt08/ilab-v2/internals/helpers/storage"
)

type VideoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *VideoController {
	return &VideoController{DB: db, Validate: v}
}

func (ctl *VideoController) List(c *fiber.Ctx) error {
	var rows []m.VideoModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("video_urutan ASC, video_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[Video.List] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data video")
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *VideoController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctl *VideoController) Create(c *fiber.Ctx) error {
	var req d.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("video")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"video": {"File video wajib diunggah"},
		})
	}
	fileKey, err := storage.UploadFile(c.Context(), fh, "videos")
	if err != nil {
		log.Printf("[Video.Create] upload error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengunggah file video")
	}

	var thumbnailKey *string
	if th, err := c.FormFile("thumbnail"); err == nil && th != nil {
		key, err := storage.UploadFile(c.Context(), th, "thumbnails")
		if err != nil {
			log.Printf("[Video.Create] thumbnail upload error: %v", err)
			_ = storage.RemoveFile(c.Context(), fileKey)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengunggah thumbnail")
		}
		thumbnailKey = &key
	}

	mdl := req.ToModel(fileKey, thumbnailKey)
	if err := ctl.DB.WithContext(c.Context()).Create(mdl).Error; err != nil {
		log.Printf("[Video.Create] error: %v", err)
		_ = storage.RemoveFile(c.Context(), fileKey)
		if thumbnailKey != nil {
			_ = storage.RemoveFile(c.Context(), *thumbnailKey)
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan video")
	}
	return helper.JsonCreated(c, "Video berhasil ditambahkan", mdl)
}

func (ctl *VideoController) Update(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}

	var req d.UpdateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(row)

	// file baru (opsional) menggantikan object lama; yang lama dibersihkan
	// best-effort setelah row tersimpan
	var hapusNanti []string
	if fh, err := c.FormFile("video"); err == nil && fh != nil {
		key, err := storage.UploadFile(c.Context(), fh, "videos")
		if err != nil {
			log.Printf("[Video.Update] upload error: %v", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengunggah file video")
		}
		hapusNanti = append(hapusNanti, row.VideoFileKey)
		row.VideoFileKey = key
	}
	if th, err := c.FormFile("thumbnail"); err == nil && th != nil {
		key, err := storage.UploadFile(c.Context(), th, "thumbnails")
		if err != nil {
			log.Printf("[Video.Update] thumbnail upload error: %v", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengunggah thumbnail")
		}
		if row.VideoThumbnailKey != nil {
			hapusNanti = append(hapusNanti, *row.VideoThumbnailKey)
		}
		row.VideoThumbnailKey = &key
	}

	if err := ctl.DB.WithContext(c.Context()).Save(row).Error; err != nil {
		log.Printf("[Video.Update] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memperbarui video")
	}
	for _, key := range hapusNanti {
		if err := storage.RemoveFile(c.Context(), key); err != nil {
			log.Printf("[Video.Update] gagal hapus object lama %s: %v", key, err)
		}
	}
	return helper.JsonUpdated(c, "Video berhasil diperbarui", row)
}

func (ctl *VideoController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(row).Error; err != nil {
		log.Printf("[Video.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus video")
	}
	if err := storage.RemoveFile(c.Context(), row.VideoFileKey); err != nil {
		log.Printf("[Video.Delete] gagal hapus object %s: %v", row.VideoFileKey, err)
	}
	if row.VideoThumbnailKey != nil {
		if err := storage.RemoveFile(c.Context(), *row.VideoThumbnailKey); err != nil {
			log.Printf("[Video.Delete] gagal hapus thumbnail %s: %v", *row.VideoThumbnailKey, err)
		}
	}
	return helper.JsonDeleted(c, "Video berhasil dihapus", fiber.Map{"video_id": row.VideoID})
}

func (ctl *VideoController) findByID(c *fiber.Ctx) (*m.VideoModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.VideoModel
	err = ctl.DB.WithContext(c.Context()).First(&row, "video_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, http.StatusNotFound, "Video tidak ditemukan")
	}
	if err != nil {
		log.Printf("[Video.findByID] error: %v", err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data video")
	}
	return &row, nil
}
