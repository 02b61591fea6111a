package diagnostics

import (
	"sort"
	"symptomix-service/internal/app/models"
)

const (
	DefaultCondition   = "General Symptoms"
	DefaultDescription = "Based on your symptoms, you may be experiencing a common condition. Please monitor your symptoms and consider consulting a healthcare professional."
	DefaultConfidence  = 0.6

	AlternativeThreshold = 0.3
	MaxAlternatives      = 3
)

type Diagnosis struct {
	Condition    string
	Description  string
	Confidence   float64
	Alternatives []models.AlternativeDiagnosis
}

type DiagnosisSelector struct {
	catalog *RuleCatalog
	engine  *ScoreEngine
}

func NewDiagnosisSelector(catalog *RuleCatalog, engine *ScoreEngine) *DiagnosisSelector {
	return &DiagnosisSelector{
		catalog: catalog,
		engine:  engine,
	}
}

// Select picks the first rule in catalog order that clears its own
// threshold, which is not necessarily the best scoring one.
func (s *DiagnosisSelector) Select(symptoms []string, answers models.Answers) Diagnosis {
	diagnosis := Diagnosis{
		Condition:   DefaultCondition,
		Description: DefaultDescription,
		Confidence:  DefaultConfidence,
	}

	for _, rule := range s.catalog.rules {
		score := s.engine.Score(symptoms, answers, rule)
		if score >= rule.MinConfidence {
			diagnosis.Condition = rule.Condition
			diagnosis.Description = rule.Description
			diagnosis.Confidence = score
			break
		}
	}

	diagnosis.Alternatives = s.alternatives(symptoms, answers, diagnosis.Condition)
	return diagnosis
}

// alternatives ranks by score; equal scores keep declaration order.
func (s *DiagnosisSelector) alternatives(symptoms []string, answers models.Answers, primary string) []models.AlternativeDiagnosis {
	alternatives := []models.AlternativeDiagnosis{}
	for _, rule := range s.catalog.declared {
		if rule.Condition == primary {
			continue
		}
		score := s.engine.Score(symptoms, answers, rule)
		if score >= AlternativeThreshold {
			alternatives = append(alternatives, models.AlternativeDiagnosis{
				Condition:   rule.Condition,
				Description: rule.Description,
				Confidence:  score,
			})
		}
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Confidence > alternatives[j].Confidence
	})

	if len(alternatives) > MaxAlternatives {
		alternatives = alternatives[:MaxAlternatives]
	}
	return alternatives
}
