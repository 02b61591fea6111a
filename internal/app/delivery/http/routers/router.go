package routers

import (
	"fmt"
	"symptomix-service/internal/app/config"
	"symptomix-service/internal/app/delivery/http/controllers"
	"symptomix-service/internal/app/delivery/http/middlewares"
	"symptomix-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	requestLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	assessmentController *controllers.AssessmentController,
	userController *controllers.UserController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderCSRFToken,
			constvars.HeaderXRequestID,
			constvars.HeaderXUserID,
		},
		ExposedHeaders: []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		MaxAge:         300,
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, requestLogger))
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	assessLimiter := middlewares.AssessRateLimit()

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/symptoms", func(r chi.Router) {
			attachSymptomRoutes(r, assessLimiter, assessmentController)
		})

		r.Route("/assessments", func(r chi.Router) {
			attachLegacyAssessmentRoutes(r, assessLimiter, assessmentController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, userController)
		})

		r.Get("/health", healthController.Health)
	})
}
