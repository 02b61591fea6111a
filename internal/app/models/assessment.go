package models

import "time"

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// AssessmentResult is the full outcome of one run of the scoring pipeline.
type AssessmentResult struct {
	ID                   string                 `json:"id"`
	UserID               string                 `json:"userId"`
	PrimaryDiagnosis     string                 `json:"primaryDiagnosis"`
	Description          string                 `json:"description"`
	Confidence           float64                `json:"confidence"`
	Urgency              string                 `json:"urgency"`
	UrgencyMessage       string                 `json:"urgencyMessage"`
	AlternativeDiagnoses []AlternativeDiagnosis `json:"alternativeDiagnoses"`
	Recommendations      []Recommendation       `json:"recommendations"`
	CreatedAt            time.Time              `json:"createdAt"`
	UserAnswers          Answers                `json:"userAnswers"`
}

type AlternativeDiagnosis struct {
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Assessment is the projection of an AssessmentResult kept in the
// "assessments" collection. Alternatives, recommendations and descriptions
// are not persisted.
type Assessment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Symptoms   []string  `json:"symptoms"`
	Diagnosis  string    `json:"diagnosis"`
	Confidence float64   `json:"confidence"`
	Urgency    string    `json:"urgency"`
	Date       time.Time `json:"date"`
	Answers    Answers   `json:"answers"`
}

func (a *Assessment) GetID() string {
	return a.ID
}

func (a *Assessment) SetID(id string) {
	a.ID = id
}

// ToResult re-wraps the stored projection. Fields that were never persisted
// stay empty.
func (a *Assessment) ToResult() *AssessmentResult {
	return &AssessmentResult{
		ID:                   a.ID,
		UserID:               a.UserID,
		PrimaryDiagnosis:     a.Diagnosis,
		Confidence:           a.Confidence,
		Urgency:              a.Urgency,
		AlternativeDiagnoses: []AlternativeDiagnosis{},
		Recommendations:      []Recommendation{},
		CreatedAt:            a.Date,
		UserAnswers:          a.Answers,
	}
}

// AssessmentCompletedEvent is published once an assessment has been stored.
type AssessmentCompletedEvent struct {
	EventType    string    `json:"eventType"`
	AssessmentID string    `json:"assessmentId"`
	UserID       string    `json:"userId"`
	Diagnosis    string    `json:"diagnosis"`
	Confidence   float64   `json:"confidence"`
	Urgency      string    `json:"urgency"`
	OccurredAt   time.Time `json:"occurredAt"`
}
