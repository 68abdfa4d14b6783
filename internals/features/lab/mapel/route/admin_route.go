package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mapelController "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/controller"
)

// Admin routes: full CRUD master mapel.
func MapelAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := mapelController.New(db, v)
	g := r.Group("/mapel")
	g.Get("/", ctl.List)         // GET    /api/a/mapel
	g.Get("/:id", ctl.GetByID)   // GET    /api/a/mapel/:id
	g.Post("/", ctl.Create)      // POST   /api/a/mapel
	g.Put("/:id", ctl.Update)    // PUT    /api/a/mapel/:id
	g.Delete("/:id", ctl.Delete) // DELETE /api/a/mapel/:id
}
