package diagnostics

import (
	"fmt"
	"sort"
)

const (
	severityMild       = "Mild - Does not interfere with daily activities"
	severityModerate   = "Moderate - Some interference with daily activities"
	severitySevere     = "Severe - Significantly impacts daily activities"
	severityVerySevere = "Very severe - Unable to perform normal activities"

	durationUnderADay = "Less than 24 hours"
	durationFewDays   = "1-3 days"
	durationWeek      = "4-7 days"
	durationOverAWeek = "More than a week"
)

// RuleCatalog holds rules ordered by priority descending. Rules sharing a
// priority keep their declaration order. declared keeps the order the rules
// were given in, which is the order alternatives are ranked from.
type RuleCatalog struct {
	rules    []Rule
	declared []Rule
}

// NewRuleCatalog panics on malformed rule data.
func NewRuleCatalog(rules ...Rule) *RuleCatalog {
	declared := make([]Rule, len(rules))
	for i, rule := range rules {
		if err := validateRule(rule); err != nil {
			panic(err)
		}
		declared[i] = copyRule(rule)
	}

	ordered := make([]Rule, len(declared))
	copy(ordered, declared)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	return &RuleCatalog{rules: ordered, declared: declared}
}

func DefaultRuleCatalog() *RuleCatalog {
	return NewRuleCatalog(
		Rule{
			Condition:        "Common Cold",
			Description:      "A viral infection affecting the nose and throat, typically lasting 7-10 days.",
			RequiredSymptoms: []string{"Cough", "Sore throat", "Fatigue"},
			MinConfidence:    0.6,
			Priority:         5,
			DurationWeights: map[string]float64{
				durationFewDays:   0.8,
				durationWeek:      1.0,
				durationOverAWeek: 0.6,
			},
			SeverityWeights: map[string]float64{
				severityMild:     1.0,
				severityModerate: 0.8,
			},
		},
		Rule{
			Condition:        "Influenza (Flu)",
			Description:      "A viral infection that attacks your respiratory system with sudden onset of symptoms.",
			RequiredSymptoms: []string{"Fever", "Fatigue", "Headache"},
			MinConfidence:    0.7,
			Priority:         7,
			DurationWeights: map[string]float64{
				durationUnderADay: 1.0,
				durationFewDays:   1.0,
				durationWeek:      0.8,
			},
			SeverityWeights: map[string]float64{
				severityModerate: 0.8,
				severitySevere:   1.0,
			},
		},
		Rule{
			Condition:        "Gastroenteritis",
			Description:      "Inflammation of the stomach and intestines, often called stomach flu.",
			RequiredSymptoms: []string{"Nausea", "Vomiting", "Diarrhea"},
			MinConfidence:    0.7,
			Priority:         6,
			DurationWeights: map[string]float64{
				durationUnderADay: 0.8,
				durationFewDays:   1.0,
				durationWeek:      0.6,
			},
		},
		Rule{
			Condition:        "Migraine",
			Description:      "A type of headache characterized by severe pain, often accompanied by nausea and sensitivity to light.",
			RequiredSymptoms: []string{"Headache"},
			MinConfidence:    0.6,
			Priority:         4,
			SeverityWeights: map[string]float64{
				severitySevere:     1.0,
				severityVerySevere: 1.0,
			},
		},
	)
}

// Rules returns the ordered rules. The slice is a copy; the weight tables
// are shared and must be treated as read-only.
func (c *RuleCatalog) Rules() []Rule {
	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

func (c *RuleCatalog) Len() int {
	return len(c.rules)
}

func validateRule(rule Rule) error {
	if rule.Condition == "" {
		return fmt.Errorf("diagnostic rule has an empty condition")
	}
	if rule.MinConfidence < 0 || rule.MinConfidence > 1 {
		return fmt.Errorf("diagnostic rule %q has min confidence %v outside [0,1]", rule.Condition, rule.MinConfidence)
	}
	for answer, weight := range rule.DurationWeights {
		if weight < 0 || weight > 1 {
			return fmt.Errorf("diagnostic rule %q has duration weight %v for %q outside [0,1]", rule.Condition, weight, answer)
		}
	}
	for answer, weight := range rule.SeverityWeights {
		if weight < 0 || weight > 1 {
			return fmt.Errorf("diagnostic rule %q has severity weight %v for %q outside [0,1]", rule.Condition, weight, answer)
		}
	}
	return nil
}

func copyRule(rule Rule) Rule {
	rule.RequiredSymptoms = append([]string(nil), rule.RequiredSymptoms...)
	rule.DurationWeights = copyWeights(rule.DurationWeights)
	rule.SeverityWeights = copyWeights(rule.SeverityWeights)
	return rule
}

func copyWeights(weights map[string]float64) map[string]float64 {
	copied := make(map[string]float64, len(weights))
	for answer, weight := range weights {
		copied[answer] = weight
	}
	return copied
}
