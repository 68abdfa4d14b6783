package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ruanganController "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/controller"
)

// Admin routes: full CRUD ruangan + penunjukan PIC default.
func RuanganAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := ruanganController.New(db, v)
	g := r.Group("/ruangan")
	g.Get("/", ctl.List)         // GET    /api/a/ruangan
	g.Get("/:id", ctl.GetByID)   // GET    /api/a/ruangan/:id
	g.Post("/", ctl.Create)      // POST   /api/a/ruangan
	g.Put("/:id", ctl.Update)    // PUT    /api/a/ruangan/:id
	g.Delete("/:id", ctl.Delete) // DELETE /api/a/ruangan/:id
}
