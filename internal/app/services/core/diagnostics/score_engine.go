package diagnostics

import (
	"strings"
	"symptomix-service/internal/app/models"
)

// ScoreEngine computes how well a rule matches a reported answer set.
type ScoreEngine struct {
	fields AnswerFields
}

func NewScoreEngine(fields AnswerFields) *ScoreEngine {
	return &ScoreEngine{fields: fields.withDefaults()}
}

// Score returns the matched share of the rule's criteria in [0,1]. Every
// required symptom is one criterion, plus one each for a duration and a
// severity answer when the answer set carries them.
func (e *ScoreEngine) Score(symptoms []string, answers models.Answers, rule Rule) float64 {
	var score float64
	totalCriteria := len(rule.RequiredSymptoms)

	for _, required := range rule.RequiredSymptoms {
		if anySymptomContains(symptoms, required) {
			score += 1.0
		}
	}

	if answers.Has(e.fields.Duration) {
		totalCriteria++
		score += weightFor(answers, e.fields.Duration, rule.DurationWeights)
	}

	if answers.Has(e.fields.Severity) {
		totalCriteria++
		score += weightFor(answers, e.fields.Severity, rule.SeverityWeights)
	}

	if totalCriteria == 0 {
		return 0
	}
	return score / float64(totalCriteria)
}

// list answers never match a weight table key
func weightFor(answers models.Answers, field string, weights map[string]float64) float64 {
	text, ok := answers.Text(field)
	if !ok {
		return 0
	}
	return weights[text]
}

func anySymptomContains(symptoms []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, symptom := range symptoms {
		if strings.Contains(strings.ToLower(symptom), needle) {
			return true
		}
	}
	return false
}

func anySymptomEquals(symptoms []string, candidates []string) bool {
	for _, symptom := range symptoms {
		for _, candidate := range candidates {
			if strings.EqualFold(symptom, candidate) {
				return true
			}
		}
	}
	return false
}

// ExtractSymptoms reads the reported symptom list. Only list answers are
// accepted; blank entries are dropped.
func ExtractSymptoms(answers models.Answers, fields AnswerFields) []string {
	fields = fields.withDefaults()

	items, ok := answers.List(fields.Symptoms)
	if !ok {
		return []string{}
	}

	symptoms := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			symptoms = append(symptoms, item)
		}
	}
	return symptoms
}
