package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kelasController "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/controller"
)

// Admin routes: full CRUD master kelas.
func KelasAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := kelasController.New(db, v)
	g := r.Group("/kelas")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
