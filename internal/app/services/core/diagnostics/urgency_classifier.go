package diagnostics

import (
	"strconv"
	"strings"
	"symptomix-service/internal/app/models"
)

const (
	UrgencyMessageCriticalSymptom = "Seek immediate medical attention. Consider visiting an emergency room or calling emergency services."
	UrgencyMessageHighFever       = "High fever detected. Seek immediate medical care."
	UrgencyMessageMedium          = "Consider scheduling an appointment with your healthcare provider within 24-48 hours."
	UrgencyMessageLow             = "Monitor your symptoms and consider rest, hydration, and over-the-counter remedies as appropriate."

	HighFeverThreshold = 103.0
)

var (
	criticalSymptoms   = []string{"Chest pain", "Shortness of breath", "Severe abdominal pain"}
	concerningSymptoms = []string{"Fever", "Persistent headache", "Severe fatigue"}
)

type Urgency struct {
	Level   string
	Message string
}

// UrgencyClassifier triages independently of the diagnosis. Tiers are checked
// from high to low and the first match wins.
type UrgencyClassifier struct {
	fields AnswerFields
}

func NewUrgencyClassifier(fields AnswerFields) *UrgencyClassifier {
	return &UrgencyClassifier{fields: fields.withDefaults()}
}

func (c *UrgencyClassifier) Classify(symptoms []string, answers models.Answers) Urgency {
	if anySymptomEquals(symptoms, criticalSymptoms) {
		return Urgency{Level: models.UrgencyHigh, Message: UrgencyMessageCriticalSymptom}
	}

	if temperature, ok := c.temperature(answers); ok && temperature >= HighFeverThreshold {
		return Urgency{Level: models.UrgencyHigh, Message: UrgencyMessageHighFever}
	}

	if anySymptomEquals(symptoms, concerningSymptoms) {
		return Urgency{Level: models.UrgencyMedium, Message: UrgencyMessageMedium}
	}

	return Urgency{Level: models.UrgencyLow, Message: UrgencyMessageLow}
}

// unparseable temperatures count as absent
func (c *UrgencyClassifier) temperature(answers models.Answers) (float64, bool) {
	text, ok := answers.Text(c.fields.Temperature)
	if !ok {
		return 0, false
	}
	temperature, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return temperature, true
}
