// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	breakTimeRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/route"
	displayRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/display/route"
	guruRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/route"
	jadwalRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/route"
	kelasRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/route"
	mapelRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/route"
	ruanganRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/route"
	videoRoute "github.com/sltnnt08/ilab-v2/internals/features/lab/video/route"
	"github.com/sltnnt08/ilab-v2/internals/middlewares"
)

// SetupRoutes daftarkan seluruh endpoint:
//   - /api/public → dibaca kiosk display, tanpa auth, rate limit global saja
//   - /api/a      → panel admin, rate limit tulis lebih ketat
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	public := api.Group("/public")
	displayRoute.DisplayRoutes(public, db)

	admin := api.Group("/a", middlewares.AdminWriteRateLimiter())
	guruRoute.GuruAdminRoutes(admin, db, v)
	mapelRoute.MapelAdminRoutes(admin, db, v)
	kelasRoute.KelasAdminRoutes(admin, db, v)
	ruanganRoute.RuanganAdminRoutes(admin, db, v)
	jadwalRoute.JadwalAdminRoutes(admin, db, v)
	breakTimeRoute.BreakTimeAdminRoutes(admin, db, v)
	videoRoute.VideoAdminRoutes(admin, db, v)
}
