package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jadwalController "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/controller"
)

// Admin routes: CRUD jadwal mingguan. Create & update melewati cek bentrok
// per (ruangan, hari) di dalam transaksi.
func JadwalAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := jadwalController.New(db, v)
	g := r.Group("/jadwal")
	g.Get("/", ctl.List)         // GET    /api/a/jadwal
	g.Get("/:id", ctl.GetByID)   // GET    /api/a/jadwal/:id
	g.Post("/", ctl.Create)      // POST   /api/a/jadwal
	g.Put("/:id", ctl.Update)    // PUT    /api/a/jadwal/:id
	g.Delete("/:id", ctl.Delete) // DELETE /api/a/jadwal/:id
}
