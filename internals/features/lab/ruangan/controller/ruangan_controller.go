// file: internals/features/lab/ruangan/controller/ruangan_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	guruModel "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
	d "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/dto"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
)

type RuanganController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RuanganController {
	return &RuanganController{DB: db, Validate: v}
}

func (ctl *RuanganController) List(c *fiber.Ctx) error {
	var rows []m.RuanganModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("DefaultPic").
		Order("ruangan_nama ASC").Find(&rows).Error; err != nil {
		log.Printf("[Ruangan.List] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data ruangan")
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *RuanganController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctl *RuanganController) Create(c *fiber.Ctx) error {
	var req d.CreateRuanganRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.pastikanPicAda(c, req.RuanganDefaultPicID); err != nil {
		return err
	}

	mdl := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(mdl).Error; err != nil {
		log.Printf("[Ruangan.Create] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan ruangan")
	}
	return helper.JsonCreated(c, "Ruangan berhasil ditambahkan", mdl)
}

func (ctl *RuanganController) Update(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}

	var req d.UpdateRuanganRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.pastikanPicAda(c, req.RuanganDefaultPicID); err != nil {
		return err
	}

	req.Apply(row)
	row.DefaultPic = nil // jangan ikut ter-save dari preload
	if err := ctl.DB.WithContext(c.Context()).Save(row).Error; err != nil {
		log.Printf("[Ruangan.Update] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memperbarui ruangan")
	}
	return helper.JsonUpdated(c, "Ruangan berhasil diperbarui", row)
}

func (ctl *RuanganController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(row).Error; err != nil {
		if strings.Contains(err.Error(), "23503") {
			return helper.JsonError(c, http.StatusConflict, "Ruangan masih dipakai jadwal")
		}
		log.Printf("[Ruangan.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus ruangan")
	}
	return helper.JsonDeleted(c, "Ruangan berhasil dihapus", fiber.Map{"ruangan_id": row.RuanganID})
}

// pastikanPicAda: default PIC harus guru yang ada.
func (ctl *RuanganController) pastikanPicAda(c *fiber.Ctx, picID *uuid.UUID) error {
	if picID == nil {
		return nil
	}
	var n int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&guruModel.GuruModel{}).
		Where("guru_id = ?", *picID).
		Count(&n).Error; err != nil {
		log.Printf("[Ruangan.pastikanPicAda] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memeriksa PIC")
	}
	if n == 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"ruangan_default_pic_id": {"Guru tidak ditemukan"},
		})
	}
	return nil
}

func (ctl *RuanganController) findByID(c *fiber.Ctx) (*m.RuanganModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.RuanganModel
	err = ctl.DB.WithContext(c.Context()).
		Preload("DefaultPic").
		First(&row, "ruangan_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, http.StatusNotFound, "Ruangan tidak ditemukan")
	}
	if err != nil {
		log.Printf("[Ruangan.findByID] error: %v", err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data ruangan")
	}
	return &row, nil
}
