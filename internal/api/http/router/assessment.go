package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/psyassist_backend/internal/api/http/handler"
	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
)

func (r *Router) registerAssessmentRoutes(
	api fiber.Router,
	ah *handler.AssessmentHandler,
	rh *handler.ReportHandler,
	requirePerm permFunc,
) {
	api.Get("/dashboard", requirePerm(authorize.ResourceDashboard, authorize.ActionRead), ah.Dashboard)

	assessments := api.Group("/assessments")
	assessments.Post("/", requirePerm(authorize.ResourceAssessment, authorize.ActionCreate), ah.Save)

	a := assessments.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAssessment, authorize.ActionRead), ah.Get)
	a.Put("/", requirePerm(authorize.ResourceAssessment, authorize.ActionUpdate), ah.Overwrite)
	a.Post("/complete", requirePerm(authorize.ResourceAssessment, authorize.ActionExecute), ah.Complete)

	edit := requirePerm(authorize.ResourceAssessment, authorize.ActionUpdate)
	a.Post("/scores", edit, ah.AddScore)
	a.Patch("/scores/:sid/domain", edit, ah.TagScore)
	a.Post("/observations", edit, ah.AddObservation)
	a.Post("/recommendations", edit, ah.AddRecommendation)
	a.Post("/recommendations/:rid/toggle", edit, ah.ToggleRecommendation)
	a.Post("/xba-tests", edit, ah.AddXBATest)
	a.Put("/passages/:ability", edit, ah.SetPassage)

	a.Post("/reports", requirePerm(authorize.ResourceReport, authorize.ActionCreate), rh.Generate)
}
