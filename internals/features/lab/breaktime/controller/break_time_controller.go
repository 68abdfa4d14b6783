// file: internals/features/lab/breaktime/controller/break_time_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/dto"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
)

// Break time sengaja TIDAK ikut cek bentrok jadwal: jendela istirahat
// boleh tumpang tindih dengan kelas maupun sesama break time.
type BreakTimeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BreakTimeController {
	return &BreakTimeController{DB: db, Validate: v}
}

func (ctl *BreakTimeController) List(c *fiber.Ctx) error {
	var rows []m.BreakTimeModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("break_time_urutan ASC, break_time_jam_mulai ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[BreakTime.List] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data break time")
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *BreakTimeController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctl *BreakTimeController) Create(c *fiber.Ctx) error {
	var req d.CreateBreakTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mulai, selesai, fieldErrs := req.ValidateWaktu()
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	mdl := req.ToModel(mulai, selesai)
	if err := ctl.DB.WithContext(c.Context()).Create(mdl).Error; err != nil {
		log.Printf("[BreakTime.Create] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan break time")
	}
	return helper.JsonCreated(c, "Break time berhasil ditambahkan", mdl)
}

func (ctl *BreakTimeController) Update(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}

	var req d.UpdateBreakTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mulai, selesai, fieldErrs := req.ValidateWaktu()
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	req.Apply(row, mulai, selesai)
	if err := ctl.DB.WithContext(c.Context()).Save(row).Error; err != nil {
		log.Printf("[BreakTime.Update] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memperbarui break time")
	}
	return helper.JsonUpdated(c, "Break time berhasil diperbarui", row)
}

func (ctl *BreakTimeController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findByID(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(row).Error; err != nil {
		log.Printf("[BreakTime.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus break time")
	}
	return helper.JsonDeleted(c, "Break time berhasil dihapus", fiber.Map{"break_time_id": row.BreakTimeID})
}

func (ctl *BreakTimeController) findByID(c *fiber.Ctx) (*m.BreakTimeModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.BreakTimeModel
	err = ctl.DB.WithContext(c.Context()).First(&row, "break_time_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, http.StatusNotFound, "Break time tidak ditemukan")
	}
	if err != nil {
		log.Printf("[BreakTime.findByID] error: %v", err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data break time")
	}
	return &row, nil
}
