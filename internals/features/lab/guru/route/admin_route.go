package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	guruController "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/controller"
)

// Admin routes: full CRUD master guru (+ avatar upload/link).
func GuruAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := guruController.New(db, v)
	g := r.Group("/guru")
	g.Get("/", ctl.List) // ?q=&page=&per_page=
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
