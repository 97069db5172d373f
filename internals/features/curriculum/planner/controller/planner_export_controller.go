// internals/features/curriculum/planner/controller/planner_export_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planeador_backend/internals/features/curriculum/planner/service"
	helper "planeador_backend/internals/helpers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PlannerExportController struct {
	DB       *gorm.DB
	exporter *service.Exporter
}

func NewPlannerExportController(db *gorm.DB) *PlannerExportController {
	return &PlannerExportController{
		DB:       db,
		exporter: service.NewExporter(db),
	}
}

/* ===============================
   EXPORT
   GET /api/planner/:id/export
   =============================== */
func (ctl *PlannerExportController) Export(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	buf, filename, err := ctl.exporter.BuildSpreadsheet(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlannerNotFound) {
			// absent planner answers 400 here, not 404
			return helper.JsonError(c, fiber.StatusBadRequest, "no planner found with the given id")
		}
		return jsonServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
