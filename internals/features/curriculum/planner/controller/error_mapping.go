// internals/features/curriculum/planner/controller/error_mapping.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"planeador_backend/internals/features/curriculum/planner/service"
	helper "planeador_backend/internals/helpers"
)

// jsonServiceError translates composer/exporter errors into the response
// envelope. Anything transient becomes a 503 the caller may retry.
func jsonServiceError(c *fiber.Ctx, err error) error {
	var refErr *service.ReferentialViolationError

	switch {
	case errors.Is(err, service.ErrPlannerNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "no planner found with the given id")
	case errors.Is(err, service.ErrLearningOutcomeNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "no learning outcome found with the given id")
	case errors.Is(err, service.ErrDetailNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "no planner detail found with the given id")
	case errors.Is(err, service.ErrWeightBelowMinimum),
		errors.Is(err, service.ErrWeightSumExceeded),
		errors.Is(err, service.ErrWeightCountMismatch):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &refErr):
		return helper.JsonError(c, fiber.StatusBadRequest, refErr.Error())
	case service.IsTransient(err):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		log.Printf("[ERROR] planner service: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
