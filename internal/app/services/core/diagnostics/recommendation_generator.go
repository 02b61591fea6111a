package diagnostics

import (
	"fmt"
	"strings"
	"symptomix-service/internal/app/models"
)

const (
	RecommendationTypeUrgent   = "urgent"
	RecommendationTypeMedical  = "medical"
	RecommendationTypeSelfCare = "self-care"
	RecommendationTypeGeneral  = "general"
)

var (
	urgencyRecommendations = map[string]models.Recommendation{
		models.UrgencyHigh: {
			Type:        RecommendationTypeUrgent,
			Title:       "Seek Immediate Care",
			Description: "Visit the nearest emergency room or call emergency services immediately.",
		},
		models.UrgencyMedium: {
			Type:        RecommendationTypeMedical,
			Title:       "Consult Healthcare Provider",
			Description: "Schedule an appointment with your doctor within 24-48 hours.",
		},
		models.UrgencyLow: {
			Type:        RecommendationTypeSelfCare,
			Title:       "Self-Care and Monitoring",
			Description: "Rest, stay hydrated, and monitor your symptoms.",
		},
	}

	feverRecommendation = models.Recommendation{
		Type:        RecommendationTypeSelfCare,
		Title:       "Fever Management",
		Description: "Take fever reducers as directed, stay hydrated, and rest.",
	}

	coughRecommendation = models.Recommendation{
		Type:        RecommendationTypeSelfCare,
		Title:       "Cough Relief",
		Description: "Use a humidifier, drink warm liquids, and consider over-the-counter cough suppressants.",
	}

	followUpRecommendation = models.Recommendation{
		Type:        RecommendationTypeGeneral,
		Title:       "Follow Up",
		Description: "If symptoms worsen or persist, consult with a healthcare professional.",
	}
)

type RecommendationGenerator struct{}

func NewRecommendationGenerator() *RecommendationGenerator {
	return &RecommendationGenerator{}
}

// Generate always starts with the urgency entry and ends with the follow up
// entry. An urgency level outside low, medium and high panics.
func (g *RecommendationGenerator) Generate(urgencyLevel string, symptoms []string) []models.Recommendation {
	urgent, ok := urgencyRecommendations[strings.ToLower(urgencyLevel)]
	if !ok {
		panic(fmt.Sprintf("unknown urgency level %q", urgencyLevel))
	}

	recommendations := []models.Recommendation{urgent}

	if anySymptomContains(symptoms, "Fever") {
		recommendations = append(recommendations, feverRecommendation)
	}
	if anySymptomContains(symptoms, "Cough") {
		recommendations = append(recommendations, coughRecommendation)
	}

	return append(recommendations, followUpRecommendation)
}
