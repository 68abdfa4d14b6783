// file: internals/features/lab/display/controller/display_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sltnnt08/ilab-v2/internals/features/lab/display/dto"
	svc "github.com/sltnnt08/ilab-v2/internals/features/lab/display/service"
	ruanganModel "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
)

type DisplayController struct {
	DB     *gorm.DB
	Engine *svc.Engine
	Clock  svc.Clock
}

func New(db *gorm.DB) *DisplayController {
	return &DisplayController{
		DB:     db,
		Engine: svc.NewEngine(db),
		Clock:  svc.NewRealClock(),
	}
}

/*
========================= GET /jadwal =========================
Endpoint kiosk. Query ?ruangan_id= opsional — default ruangan pertama.
Kiosk poll endpoint ini tiap 30 detik; semua state dihitung ulang di sini.
*/

func (ctl *DisplayController) GetJadwal(c *fiber.Ctx) error {
	// capture waktu SEKALI untuk seluruh perbandingan request ini
	tc := svc.NewTimeContext(ctl.Clock)

	// daftar ruangan untuk dropdown
	var ruangans []ruanganModel.RuanganModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("ruangan_nama ASC").Find(&ruangans).Error; err != nil {
		log.Printf("[Display.GetJadwal] list ruangan error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data ruangan")
	}

	// pilih ruangan: query param, atau default ruangan pertama
	var selected *ruanganModel.RuanganModel
	if q := strings.TrimSpace(c.Query("ruangan_id")); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "ruangan_id harus UUID valid")
		}
		var r ruanganModel.RuanganModel
		err = ctl.DB.WithContext(c.Context()).
			Preload("DefaultPic").
			First(&r, "ruangan_id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Ruangan tidak ditemukan")
		}
		if err != nil {
			log.Printf("[Display.GetJadwal] find ruangan error: %v", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data ruangan")
		}
		selected = &r
	} else if len(ruangans) > 0 {
		var r ruanganModel.RuanganModel
		if err := ctl.DB.WithContext(c.Context()).
			Preload("DefaultPic").
			First(&r, "ruangan_id = ?", ruangans[0].RuanganID).Error; err != nil {
			log.Printf("[Display.GetJadwal] find default ruangan error: %v", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data ruangan")
		}
		selected = &r
	}

	view, err := ctl.Engine.Resolve(c.UserContext(), selected, tc)
	if err != nil {
		// kiosk retry sendiri di poll berikutnya
		log.Printf("[Display.GetJadwal] resolve error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghitung jadwal")
	}

	options := make([]dto.RuanganOption, 0, len(ruangans))
	for _, r := range ruangans {
		options = append(options, dto.RuanganOption{
			ID:         r.RuanganID.String(),
			Nama:       r.RuanganNama,
			Keterangan: r.RuanganKeterangan,
		})
	}

	body := fiber.Map{
		"view":     view,
		"ruangans": options,
	}
	if selected != nil {
		body["selected_ruangan_id"] = selected.RuanganID.String()
	} else {
		body["selected_ruangan_id"] = nil
	}
	return helper.JsonOK(c, "ok", body)
}

/*
========================= GET /ruangan =========================
Data dropdown saja (dipakai halaman kiosk saat pertama load).
*/

func (ctl *DisplayController) ListRuangan(c *fiber.Ctx) error {
	var ruangans []ruanganModel.RuanganModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("ruangan_nama ASC").Find(&ruangans).Error; err != nil {
		log.Printf("[Display.ListRuangan] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data ruangan")
	}

	options := make([]dto.RuanganOption, 0, len(ruangans))
	for _, r := range ruangans {
		options = append(options, dto.RuanganOption{
			ID:         r.RuanganID.String(),
			Nama:       r.RuanganNama,
			Keterangan: r.RuanganKeterangan,
		})
	}
	return helper.JsonOK(c, "ok", options)
}
