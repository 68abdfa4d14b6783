// file: internals/features/lab/kelas/controller/kelas_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/dto"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
)

type KelasController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *KelasController {
	return &KelasController{DB: db, Validate: v}
}

func (ctl *KelasController) List(c *fiber.Ctx) error {
	var rows []m.KelasModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("kelas_nama ASC").Find(&rows).Error; err != nil {
		log.Printf("[Kelas.List] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *KelasController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctl *KelasController) Create(c *fiber.Ctx) error {
	var req d.CreateKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(mdl).Error; err != nil {
		log.Printf("[Kelas.Create] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil ditambahkan", mdl)
}

func (ctl *KelasController) Update(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}

	var req d.UpdateKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(row)
	if err := ctl.DB.WithContext(c.Context()).Save(row).Error; err != nil {
		log.Printf("[Kelas.Update] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", row)
}

func (ctl *KelasController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(row).Error; err != nil {
		log.Printf("[Kelas.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"kelas_id": row.KelasID})
}

func (ctl *KelasController) findByID(c *fiber.Ctx) (*m.KelasModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.KelasModel
	err = ctl.DB.WithContext(c.Context()).First(&row, "kelas_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
	}
	if err != nil {
		log.Printf("[Kelas.findByID] error: %v", err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return &row, nil
}
