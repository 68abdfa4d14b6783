// file: internals/features/lab/mapel/controller/mapel_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/dto"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
)

type MapelController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *MapelController {
	return &MapelController{DB: db, Validate: v}
}

func (ctl *MapelController) List(c *fiber.Ctx) error {
	var rows []m.MapelModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("mapel_nama ASC").Find(&rows).Error; err != nil {
		log.Printf("[Mapel.List] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data mapel")
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *MapelController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctl *MapelController) Create(c *fiber.Ctx) error {
	var req d.CreateMapelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(mdl).Error; err != nil {
		log.Printf("[Mapel.Create] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan mapel")
	}
	return helper.JsonCreated(c, "Mata pelajaran berhasil ditambahkan", mdl)
}

func (ctl *MapelController) Update(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}

	var req d.UpdateMapelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(row)
	if err := ctl.DB.WithContext(c.Context()).Save(row).Error; err != nil {
		log.Printf("[Mapel.Update] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memperbarui mapel")
	}
	return helper.JsonUpdated(c, "Mata pelajaran berhasil diperbarui", row)
}

func (ctl *MapelController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(row).Error; err != nil {
		log.Printf("[Mapel.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus mapel")
	}
	return helper.JsonDeleted(c, "Mata pelajaran berhasil dihapus", fiber.Map{"mapel_id": row.MapelID})
}

func (ctl *MapelController) findByID(c *fiber.Ctx) (*m.MapelModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.MapelModel
	err = ctl.DB.WithContext(c.Context()).First(&row, "mapel_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, http.StatusNotFound, "Mata pelajaran tidak ditemukan")
	}
	if err != nil {
		log.Printf("[Mapel.findByID] error: %v", err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data mapel")
	}
	return &row, nil
}
