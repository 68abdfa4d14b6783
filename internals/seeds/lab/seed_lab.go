// Seed data demo lab: master guru/mapel/kelas/ruangan, jadwal seminggu,
// dan break time. Idempotent — baris yang sudah ada dilewati.
package lab

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sltnnt08/ilab-v2/internals/constants"
	breakTimeModel "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/model"
	guruModel "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
	jadwalModel "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	kelasModel "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/model"
	mapelModel "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/model"
	ruanganModel "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

func SeedLab(db *gorm.DB) {
	gurus := seedGurus(db)
	mapels := seedMapels(db)
	kelas := seedKelas(db)
	ruangans := seedRuangans(db, gurus)
	seedJadwals(db, gurus, mapels, kelas, ruangans)
	seedBreakTimes(db)
	log.Println("✅ Seed lab selesai.")
}

func seedGurus(db *gorm.DB) map[string]guruModel.GuruModel {
	rows := []guruModel.GuruModel{
		{GuruName: "Budi Santoso", GuruEmail: "budi.santoso@sekolah.sch.id"},
		{GuruName: "Siti Aminah", GuruEmail: "siti.aminah@sekolah.sch.id"},
		{GuruName: "Rina Wulandari", GuruEmail: "rina.wulandari@sekolah.sch.id"},
	}
	out := map[string]guruModel.GuruModel{}
	for _, r := range rows {
		var existing guruModel.GuruModel
		if err := db.Where("guru_email = ?", r.GuruEmail).First(&existing).Error; err == nil {
			out[r.GuruName] = existing
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("❌ Gagal seed guru %s: %v", r.GuruName, err)
			continue
		}
		out[r.GuruName] = r
	}
	return out
}

func seedMapels(db *gorm.DB) map[string]mapelModel.MapelModel {
	names := []string{"Matematika", "Bahasa Indonesia", "Informatika", "IPA"}
	out := map[string]mapelModel.MapelModel{}
	for _, n := range names {
		var row mapelModel.MapelModel
		if err := db.Where("mapel_nama = ?", n).First(&row).Error; err != nil {
			row = mapelModel.MapelModel{MapelNama: n}
			if err := db.Create(&row).Error; err != nil {
				log.Printf("❌ Gagal seed mapel %s: %v", n, err)
				continue
			}
		}
		out[n] = row
	}
	return out
}

func seedKelas(db *gorm.DB) map[string]kelasModel.KelasModel {
	names := []string{"X IPA 1", "X IPA 2", "XI IPA 1"}
	out := map[string]kelasModel.KelasModel{}
	for _, n := range names {
		var row kelasModel.KelasModel
		if err := db.Where("kelas_nama = ?", n).First(&row).Error; err != nil {
			row = kelasModel.KelasModel{KelasNama: n}
			if err := db.Create(&row).Error; err != nil {
				log.Printf("❌ Gagal seed kelas %s: %v", n, err)
				continue
			}
		}
		out[n] = row
	}
	return out
}

func seedRuangans(db *gorm.DB, gurus map[string]guruModel.GuruModel) map[string]ruanganModel.RuanganModel {
	ket := "Lab komputer utama"
	rows := []ruanganModel.RuanganModel{
		{RuanganNama: "Lab Komputer 1", RuanganKeterangan: &ket},
		{RuanganNama: "Lab Komputer 2"},
	}
	if pic, ok := gurus["Budi Santoso"]; ok {
		rows[0].RuanganDefaultPicID = &pic.GuruID
	}
	out := map[string]ruanganModel.RuanganModel{}
	for _, r := range rows {
		var existing ruanganModel.RuanganModel
		if err := db.Where("ruangan_nama = ?", r.RuanganNama).First(&existing).Error; err == nil {
			out[r.RuanganNama] = existing
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("❌ Gagal seed ruangan %s: %v", r.RuanganNama, err)
			continue
		}
		out[r.RuanganNama] = r
	}
	return out
}

func seedJadwals(db *gorm.DB,
	gurus map[string]guruModel.GuruModel,
	mapels map[string]mapelModel.MapelModel,
	kelas map[string]kelasModel.KelasModel,
	ruangans map[string]ruanganModel.RuanganModel,
) {
	type slot struct {
		guru, mapel, kelas, ruangan string
		hari, mulai, selesai        string
	}
	slots := []slot{
		{"Budi Santoso", "Matematika", "X IPA 1", "Lab Komputer 1", constants.HariSenin, "07:00", "08:30"},
		{"Siti Aminah", "Bahasa Indonesia", "X IPA 2", "Lab Komputer 1", constants.HariSenin, "08:30", "10:00"},
		{"Rina Wulandari", "Informatika", "XI IPA 1", "Lab Komputer 1", constants.HariSenin, "10:30", "12:00"},
		{"Rina Wulandari", "Informatika", "X IPA 1", "Lab Komputer 2", constants.HariSelasa, "07:00", "08:30"},
		{"Budi Santoso", "IPA", "XI IPA 1", "Lab Komputer 1", constants.HariJumat, "07:30", "09:00"},
	}
	for _, s := range slots {
		g, okG := gurus[s.guru]
		mp, okM := mapels[s.mapel]
		k, okK := kelas[s.kelas]
		r, okR := ruangans[s.ruangan]
		if !okG || !okM || !okK || !okR {
			continue
		}
		mulai := dbtime.MustParse(s.mulai)
		selesai := dbtime.MustParse(s.selesai)

		var n int64
		db.Model(&jadwalModel.JadwalModel{}).
			Where("jadwal_ruangan_id = ? AND jadwal_hari = ? AND jadwal_jam_mulai = ?", r.RuanganID, s.hari, mulai).
			Count(&n)
		if n > 0 {
			continue
		}
		row := jadwalModel.JadwalModel{
			JadwalGuruID:     g.GuruID,
			JadwalMapelID:    mp.MapelID,
			JadwalKelasID:    k.KelasID,
			JadwalRuanganID:  r.RuanganID,
			JadwalHari:       s.hari,
			JadwalJamMulai:   mulai,
			JadwalJamSelesai: selesai,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal seed jadwal %s %s: %v", s.hari, s.mulai, err)
		}
	}
}

func seedBreakTimes(db *gorm.DB) {
	rows := []breakTimeModel.BreakTimeModel{
		{
			BreakTimeNama:       "Istirahat Pagi",
			BreakTimeJamMulai:   dbtime.MustParse("10:00"),
			BreakTimeJamSelesai: dbtime.MustParse("10:30"),
			BreakTimeIsActive:   true,
			BreakTimeUrutan:     1,
		},
		{
			BreakTimeNama:       "Istirahat Jumat",
			BreakTimeJamMulai:   dbtime.MustParse("11:30"),
			BreakTimeJamSelesai: dbtime.MustParse("13:00"),
			BreakTimeHari:       datatypes.JSONSlice[string]{constants.HariJumat},
			BreakTimeIsActive:   true,
			BreakTimeUrutan:     2,
		},
	}
	for _, r := range rows {
		var existing breakTimeModel.BreakTimeModel
		if err := db.Where("break_time_nama = ?", r.BreakTimeNama).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("❌ Gagal seed break time %s: %v", r.BreakTimeNama, err)
		}
	}
}
