// internals/features/curriculum/planner/controller/planner_detail_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planeador_backend/internals/features/curriculum/planner/dto"
	"planeador_backend/internals/features/curriculum/planner/service"
	helper "planeador_backend/internals/helpers"
)

type PlannerDetailController struct {
	DB       *gorm.DB
	composer *service.Composer
	validate *validator.Validate
}

func NewPlannerDetailController(db *gorm.DB) *PlannerDetailController {
	return &PlannerDetailController{
		DB:       db,
		composer: service.NewComposer(db),
		validate: validator.New(),
	}
}

/* ===============================
   CREATE
   POST /api/detail
   =============================== */
func (ctl *PlannerDetailController) Create(c *fiber.Ctx) error {
	var req dto.DetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	detail, err := ctl.composer.CreateDetail(c.UserContext(), in)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "planner detail created successfully", fiber.Map{"id": detail.ID})
}

/* ===============================
   UPDATE (full replace)
   PUT /api/detail/:id
   =============================== */
func (ctl *PlannerDetailController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.DetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	detail, err := ctl.composer.UpdateDetail(c.UserContext(), id, in)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "planner detail updated successfully", fiber.Map{"id": detail.ID})
}

/* ===============================
   DELETE
   DELETE /api/detail/:id
   =============================== */
func (ctl *PlannerDetailController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.composer.DeleteDetail(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrDetailNotFound) {
			// delete answers 400 for an absent row, not 404
			return helper.JsonError(c, fiber.StatusBadRequest, "no planner detail found with the given id")
		}
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "planner detail removed successfully", fiber.Map{"id": id})
}

/* ===============================
   READ
   GET /api/detail/:id
   GET /api/planner/:id/details
   =============================== */
func (ctl *PlannerDetailController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	detail, links, err := ctl.composer.GetDetail(c.UserContext(), id)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.NewDetailResponse(detail, links))
}

func (ctl *PlannerDetailController) ListByPlanner(c *fiber.Ctx) error {
	plannerID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	details, links, err := ctl.composer.ListDetails(c.UserContext(), plannerID)
	if err != nil {
		return jsonServiceError(c, err)
	}

	out := make([]dto.DetailResponse, 0, len(details))
	for i := range details {
		out = append(out, dto.NewDetailResponse(&details[i], links[i]))
	}
	return helper.JsonOK(c, "ok", out)
}
