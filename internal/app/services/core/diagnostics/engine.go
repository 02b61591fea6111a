package diagnostics

import "symptomix-service/internal/app/models"

// Evaluation is the outcome of scoring, triage and advice for one answer set.
type Evaluation struct {
	Symptoms        []string
	Diagnosis       Diagnosis
	Urgency         Urgency
	Recommendations []models.Recommendation
}

// Engine runs the diagnostic pipeline. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	fields      AnswerFields
	selector    *DiagnosisSelector
	classifier  *UrgencyClassifier
	recommender *RecommendationGenerator
}

func NewEngine(catalog *RuleCatalog, fields AnswerFields) *Engine {
	fields = fields.withDefaults()
	return &Engine{
		fields:      fields,
		selector:    NewDiagnosisSelector(catalog, NewScoreEngine(fields)),
		classifier:  NewUrgencyClassifier(fields),
		recommender: NewRecommendationGenerator(),
	}
}

func (e *Engine) Evaluate(answers models.Answers) Evaluation {
	symptoms := ExtractSymptoms(answers, e.fields)
	diagnosis := e.selector.Select(symptoms, answers)
	urgency := e.classifier.Classify(symptoms, answers)

	return Evaluation{
		Symptoms:        symptoms,
		Diagnosis:       diagnosis,
		Urgency:         urgency,
		Recommendations: e.recommender.Generate(urgency.Level, symptoms),
	}
}
