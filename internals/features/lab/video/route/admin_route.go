package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videoController "github.com/sltnnt08/ilab-v2/internals/features/lab/video/controller"
)

// Admin routes: CRUD video istirahat (upload multipart ke object storage).
func VideoAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := videoController.New(db, v)
	g := r.Group("/video")
	g.Get("/", ctl.List)         // GET    /api/a/video
	g.Get("/:id", ctl.GetByID)   // GET    /api/a/video/:id
	g.Post("/", ctl.Create)      // POST   /api/a/video
	g.Put("/:id", ctl.Update)    // PUT    /api/a/video/:id
	g.Delete("/:id", ctl.Delete) // DELETE /api/a/video/:id
}
