package controllers

import (
	"net/http"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/dto/responses"
	"symptomix-service/internal/pkg/utils"
	"time"
)

type HealthController struct {
	now func() time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{now: time.Now}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	response := responses.Health{
		Status:    constvars.ResponseHealthy,
		Timestamp: ctrl.now().UTC(),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, response)
}
