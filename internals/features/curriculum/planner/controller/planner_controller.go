// internals/features/curriculum/planner/controller/planner_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalog "planeador_backend/internals/features/curriculum/catalog/model"
	"planeador_backend/internals/features/curriculum/planner/dto"
	"planeador_backend/internals/features/curriculum/planner/model"
	"planeador_backend/internals/features/curriculum/planner/service"
	helper "planeador_backend/internals/helpers"
)

type PlannerController struct {
	DB       *gorm.DB
	composer *service.Composer
	validate *validator.Validate
}

func NewPlannerController(db *gorm.DB) *PlannerController {
	return &PlannerController{
		DB:       db,
		composer: service.NewComposer(db),
		validate: validator.New(),
	}
}

/* ===============================
   LIST
   GET /api/planner
   =============================== */
func (ctl *PlannerController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.PlannerModel{}).
		Count(&total).Error; err != nil {
		return jsonServiceError(c, err)
	}

	var planners []model.PlannerModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("User").
		Preload("Subject").
		Order("id").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&planners).Error; err != nil {
		return jsonServiceError(c, err)
	}

	out := make([]dto.PlannerResponse, 0, len(planners))
	for i := range planners {
		out = append(out, dto.NewPlannerResponse(&planners[i], false))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", out, &pagination)
}

/* ===============================
   GET BY ID
   GET /api/planner/:id
   =============================== */
func (ctl *PlannerController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var planner model.PlannerModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("User").
		Preload("Subject").
		Preload("Details").
		First(&planner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "no planner found with the given id")
		}
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.NewPlannerResponse(&planner, true))
}

/* ===============================
   CREATE
   POST /api/planner
   =============================== */
func (ctl *PlannerController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	if err := db.First(&catalog.UserModel{}, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "the given user id does not match any existing user")
		}
		return jsonServiceError(c, err)
	}
	var subject catalog.SubjectModel
	if err := db.First(&subject, req.SubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "the given subject id does not match any existing subject")
		}
		return jsonServiceError(c, err)
	}

	var count int64
	if err := db.Model(&model.PlannerModel{}).Count(&count).Error; err != nil {
		return jsonServiceError(c, err)
	}

	planner := model.PlannerModel{
		Name:         fmt.Sprintf("PD--%s--%d", subject.Name, count+1),
		TrainingArea: req.TrainingArea,
		UserID:       req.UserID,
		SubjectID:    req.SubjectID,
	}
	if err := db.Create(&planner).Error; err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "planner created successfully", fiber.Map{"id": planner.ID, "name": planner.Name})
}

/* ===============================
   UPDATE
   PUT /api/planner/:id
   =============================== */
func (ctl *PlannerController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdatePlannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var planner model.PlannerModel
	if err := db.First(&planner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "no planner found with the given id")
		}
		return jsonServiceError(c, err)
	}
	if err := db.First(&catalog.UserModel{}, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "the given user id does not match any existing user")
		}
		return jsonServiceError(c, err)
	}
	if err := db.First(&catalog.SubjectModel{}, req.SubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "the given subject id does not match any existing subject")
		}
		return jsonServiceError(c, err)
	}

	updates := map[string]any{
		"training_area": req.TrainingArea,
		"user_id":       req.UserID,
		"subject_id":    req.SubjectID,
	}
	if err := db.Model(&planner).Updates(updates).Error; err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "planner updated successfully", fiber.Map{"id": planner.ID})
}

/* ===============================
   DELETE (cascades to detail rows)
   DELETE /api/planner/:id
   =============================== */
func (ctl *PlannerController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.composer.DeletePlanner(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrPlannerNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "no planner found with the given id")
		}
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "planner removed successfully", fiber.Map{"id": id})
}
