// internals/features/curriculum/planner/route/planner_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planeador_backend/internals/features/curriculum/planner/controller"
)

// PlannerRoutes mounts the planner, detail-row, and export endpoints on an
// already-authenticated router group.
func PlannerRoutes(r fiber.Router, db *gorm.DB) {
	plannerCtl := controller.NewPlannerController(db)
	detailCtl := controller.NewPlannerDetailController(db)
	exportCtl := controller.NewPlannerExportController(db)

	planner := r.Group("/planner")
	planner.Get("/", plannerCtl.List)
	planner.Post("/", plannerCtl.Create)
	planner.Get("/:id", plannerCtl.GetByID)
	planner.Put("/:id", plannerCtl.Update)
	planner.Delete("/:id", plannerCtl.Delete)
	planner.Get("/:id/details", detailCtl.ListByPlanner)
	planner.Get("/:id/export", exportCtl.Export)

	detail := r.Group("/detail")
	detail.Post("/", detailCtl.Create)
	detail.Get("/:id", detailCtl.GetByID)
	detail.Put("/:id", detailCtl.Update)
	detail.Delete("/:id", detailCtl.Delete)
}
