package database

import (
	"log"
	"os"

	breakTimeModel "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/model"
	guruModel "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
	jadwalModel "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	kelasModel "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/model"
	mapelModel "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/model"
	ruanganModel "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	videoModel "github.com/sltnnt08/ilab-v2/internals/features/lab/video/model"
)

// AutoMigrate: untuk dev/demo (AUTO_MIGRATE=true). Produksi pakai migrasi SQL.
// Urutan penting: tabel yang direferensikan FK duluan.
func AutoMigrate() {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		return
	}
	log.Println("🛠  AutoMigrate schema...")
	if err := DB.AutoMigrate(
		&guruModel.GuruModel{},
		&mapelModel.MapelModel{},
		&kelasModel.KelasModel{},
		&ruanganModel.RuanganModel{},
		&jadwalModel.JadwalModel{},
		&breakTimeModel.BreakTimeModel{},
		&videoModel.VideoModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Schema siap.")
}
