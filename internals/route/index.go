// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planeador_backend/internals/configs"
	authMiddleware "planeador_backend/internals/middlewares/auth"

	plannerRoute "planeador_backend/internals/features/curriculum/planner/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up API group (JWT + role check)...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles("docente", "director", "admin"),
	)

	log.Println("[INFO] Setting up PlannerRoutes...")
	plannerRoute.PlannerRoutes(api, db)
}
