// file: internals/features/lab/jadwal/controller/jadwal_controller.go
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
	d "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/dto"
	m "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	"github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/service"
	kelasModel "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/model"
	mapelModel "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/model"
	ruanganModel "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	helper "github.com/sltnnt08/ilab-v2/internals/helpers"
)

type JadwalController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *JadwalController {
	return &JadwalController{DB: db, Validate: v}
}

// urutan hari untuk ORDER BY; string hari tidak urut secara alfabet
const hariOrderExpr = `CASE jadwal_hari
	WHEN 'Senin' THEN 1 WHEN 'Selasa' THEN 2 WHEN 'Rabu' THEN 3
	WHEN 'Kamis' THEN 4 WHEN 'Jumat' THEN 5 WHEN 'Sabtu' THEN 6
	ELSE 7 END`

// List: paginated, filter opsional ?ruangan_id= dan ?hari=.
func (ctl *JadwalController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.JadwalModel{})
	if s := strings.TrimSpace(c.Query("ruangan_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "ruangan_id tidak valid")
		}
		q = q.Where("jadwal_ruangan_id = ?", id)
	}
	if h := strings.TrimSpace(c.Query("hari")); h != "" {
		q = q.Where("jadwal_hari = ?", h)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[Jadwal.List] count error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data jadwal")
	}

	var rows []m.JadwalModel
	if err := q.
		Preload("Guru").Preload("Mapel").Preload("Kelas").Preload("Ruangan").
		Order(hariOrderExpr).
		Order("jadwal_jam_mulai ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[Jadwal.List] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data jadwal")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

func (ctl *JadwalController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.findByID(c, true)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctl *JadwalController) Create(c *fiber.Ctx) error {
	var req d.CreateJadwalRequest
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
	if err := ctl.pastikanRefAda(c, req.JadwalGuruID, req.JadwalMapelID, req.JadwalKelasID, req.JadwalRuanganID); err != nil {
		return err
	}

	mdl := req.ToModel(mulai, selesai)
	if err := ctl.simpanDenganCekBentrok(c, mdl, nil); err != nil {
		return err
	}
	return helper.JsonCreated(c, "Jadwal berhasil ditambahkan", mdl)
}

func (ctl *JadwalController) Update(c *fiber.Ctx) error {
	row, err := ctl.findByID(c, false)
	if err != nil {
		return err
	}

	var req d.UpdateJadwalRequest
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
	if err := ctl.pastikanRefAda(c, req.JadwalGuruID, req.JadwalMapelID, req.JadwalKelasID, req.JadwalRuanganID); err != nil {
		return err
	}

	req.Apply(row, mulai, selesai)
	excl := row.JadwalID
	if err := ctl.simpanDenganCekBentrok(c, row, &excl); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", row)
}

func (ctl *JadwalController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findByID(c, false)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(row).Error; err != nil {
		log.Printf("[Jadwal.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"jadwal_id": row.JadwalID})
}

var errBentrok = errors.New("jadwal bentrok")

// simpanDenganCekBentrok: cek overlap lalu tulis dalam SATU transaksi —
// dua admin yang submit bersamaan tidak boleh sama-sama lolos cek.
func (ctl *JadwalController) simpanDenganCekBentrok(c *fiber.Ctx, mdl *m.JadwalModel, excludeID *uuid.UUID) error {
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		bentrok, err := service.CheckBentrok(tx, mdl.JadwalRuanganID, mdl.JadwalHari,
			mdl.JadwalJamMulai, mdl.JadwalJamSelesai, excludeID)
		if err != nil {
			return err
		}
		if bentrok {
			return errBentrok
		}
		if excludeID != nil {
			return tx.Save(mdl).Error
		}
		return tx.Create(mdl).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errBentrok):
		return helper.JsonConflictField(c, "jadwal_jam_mulai", "Jadwal bentrok dengan jadwal yang sudah ada")
	case strings.Contains(err.Error(), "23503"): // FK hilang di tengah jalan
		return helper.JsonError(c, http.StatusConflict, "Referensi jadwal sudah tidak ada")
	default:
		log.Printf("[Jadwal.simpan] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
}

// pastikanRefAda: validasi FK di muka supaya error-nya jelas per field,
// bukan 23503 generik. Race dengan delete tetap ditangkap constraint DB.
func (ctl *JadwalController) pastikanRefAda(c *fiber.Ctx, guruID, mapelID, kelasID, ruanganID uuid.UUID) error {
	db := ctl.DB.WithContext(c.Context())
	fieldErrs := map[string][]string{}

	cek := func(model any, col, field, label string, id uuid.UUID) error {
		var n int64
		if err := db.Model(model).Where(col+" = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			fieldErrs[field] = []string{label + " tidak ditemukan"}
		}
		return nil
	}

	if err := cek(&guruModel.GuruModel{}, "guru_id", "jadwal_guru_id", "Guru", guruID); err != nil {
		log.Printf("[Jadwal.pastikanRefAda] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memeriksa referensi jadwal")
	}
	if err := cek(&mapelModel.MapelModel{}, "mapel_id", "jadwal_mapel_id", "Mata pelajaran", mapelID); err != nil {
		log.Printf("[Jadwal.pastikanRefAda] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memeriksa referensi jadwal")
	}
	if err := cek(&kelasModel.KelasModel{}, "kelas_id", "jadwal_kelas_id", "Kelas", kelasID); err != nil {
		log.Printf("[Jadwal.pastikanRefAda] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memeriksa referensi jadwal")
	}
	if err := cek(&ruanganModel.RuanganModel{}, "ruangan_id", "jadwal_ruangan_id", "Ruangan", ruanganID); err != nil {
		log.Printf("[Jadwal.pastikanRefAda] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memeriksa referensi jadwal")
	}

	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}
	return nil
}

func (ctl *JadwalController) findByID(c *fiber.Ctx, preload bool) (*m.JadwalModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q := ctl.DB.WithContext(c.Context())
	if preload {
		q = q.Preload("Guru").Preload("Mapel").Preload("Kelas").Preload("Ruangan")
	}
	var row m.JadwalModel
	err = q.First(&row, "jadwal_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err != nil {
		log.Printf("[Jadwal.findByID] error: %v", err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data jadwal")
	}
	return &row, nil
}
