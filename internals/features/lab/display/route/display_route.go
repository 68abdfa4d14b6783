package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	displayController "github.com/sltnnt08/ilab-v2/internals/features/lab/display/controller"
)

// Public routes: layar kiosk tanpa auth.
// Mount: DisplayRoutes(app.Group("/api/public"), db)
func DisplayRoutes(r fiber.Router, db *gorm.DB) {
	ctl := displayController.New(db)
	r.Get("/jadwal", ctl.GetJadwal)   // GET /api/public/jadwal?ruangan_id=
	r.Get("/ruangan", ctl.ListRuangan) // GET /api/public/ruangan
}
