package requests

import "symptomix-service/internal/app/models"

type AssessSymptoms struct {
	UserID    string         `json:"userId"`
	Answers   models.Answers `json:"answers" validate:"answers"`
	Timestamp string         `json:"timestamp"`
}
