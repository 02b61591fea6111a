package routers

import (
	"net/http"
	"symptomix-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSymptomRoutes(router chi.Router, assessLimiter func(http.Handler) http.Handler, assessmentController *controllers.AssessmentController) {
	router.With(assessLimiter).Post("/assess", assessmentController.Assess)
	router.Get("/assessment/{assessment_id}", assessmentController.GetAssessment)
	router.Get("/history/{user_id}", assessmentController.GetUserHistory)
}

// attachLegacyAssessmentRoutes keeps the paths older mobile builds call. The
// assess alias shares the limiter of /symptoms/assess.
func attachLegacyAssessmentRoutes(router chi.Router, assessLimiter func(http.Handler) http.Handler, assessmentController *controllers.AssessmentController) {
	router.With(assessLimiter).Post("/analyze", assessmentController.Assess)
	router.Get("/history/{user_id}", assessmentController.GetUserHistory)
	router.Get("/{assessment_id}", assessmentController.GetAssessment)
}
