package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/dental-records/internal/api/http/handlers"
	"github.com/spec-kit/dental-records/internal/auth"
	"github.com/spec-kit/dental-records/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Patients       *handlers.PatientsHandler
	AuthMiddleware *auth.SessionMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	authGroup.Delete("/delete", cfg.AuthMiddleware.Handle, cfg.Auth.Delete)

	patients := app.Group("/patients", cfg.AuthMiddleware.Handle)

	patients.Post("/biodata", cfg.Patients.CreateBiodata)
	patients.Get("/biodata/:patient_id", cfg.Patients.GetBiodata)
	patients.Put("/biodata/:patient_id", cfg.Patients.UpdateBiodata)

	patients.Post("/record-planner", cfg.Patients.CreatePlannerEntry)
	patients.Get("/record-planner/:patient_id", cfg.Patients.ListPlannerEntries)
	patients.Put("/record-planner/:planner_id", cfg.Patients.UpdatePlannerEntry)
	patients.Delete("/record-planner/:planner_id", cfg.Patients.DeletePlannerEntry)

	patients.Post("/intraoral-pictures", cfg.Patients.CreateIntraoralPicture)
	patients.Get("/intraoral-pictures/:patient_id", cfg.Patients.ListIntraoralPictures)
	patients.Delete("/intraoral-pictures/:picture_id", cfg.Patients.DeleteIntraoralPicture)

	patients.Post("/xrays", cfg.Patients.CreateXRay)
	patients.Get("/xrays/:patient_id", cfg.Patients.ListXRays)
	patients.Delete("/xrays/:xray_id", cfg.Patients.DeleteXRay)

	patients.Post("/visits", cfg.Patients.CreateVisit)
	patients.Get("/visits/detail/:visit_id", cfg.Patients.GetVisit)
	patients.Get("/visits/:patient_id", cfg.Patients.ListVisits)
	patients.Put("/visits/:visit_id", cfg.Patients.UpdateVisit)
	patients.Delete("/visits/:visit_id", cfg.Patients.DeleteVisit)

	patients.Post("/", cfg.Patients.CreatePatient)
	patients.Get("/user/:user_id", cfg.Patients.ListUserPatients)
	patients.Get("/:id", cfg.Patients.GetPatient)
	patients.Delete("/:id", cfg.Patients.DeletePatient)
}
