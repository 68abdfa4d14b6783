package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	breakTimeController "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/controller"
)

// Admin routes: CRUD jendela istirahat.
func BreakTimeAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := breakTimeController.New(db, v)
	g := r.Group("/break-time")
	g.Get("/", ctl.List)         // GET    /api/a/break-time
	g.Get("/:id", ctl.GetByID)   // GET    /api/a/break-time/:id
	g.Post("/", ctl.Create)      // POST   /api/a/break-time
	g.Put("/:id", ctl.Update)    // PUT    /api/a/break-time/:id
	g.Delete("/:id", ctl.Delete) // DELETE /api/a/break-time/:id
}
