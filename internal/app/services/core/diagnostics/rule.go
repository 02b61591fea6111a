package diagnostics

// Rule is the static scoring definition of one condition.
type Rule struct {
	Condition        string
	Description      string
	RequiredSymptoms []string
	MinConfidence    float64
	Priority         int
	DurationWeights  map[string]float64
	SeverityWeights  map[string]float64
}

// AnswerFields names the question ids the engine reads from an answer set.
type AnswerFields struct {
	Symptoms    string
	Duration    string
	Severity    string
	Temperature string
}

func DefaultAnswerFields() AnswerFields {
	return AnswerFields{
		Symptoms:    "primary_symptoms",
		Duration:    "duration",
		Severity:    "severity",
		Temperature: "fever_temp",
	}
}

func (f AnswerFields) withDefaults() AnswerFields {
	defaults := DefaultAnswerFields()
	if f.Symptoms == "" {
		f.Symptoms = defaults.Symptoms
	}
	if f.Duration == "" {
		f.Duration = defaults.Duration
	}
	if f.Severity == "" {
		f.Severity = defaults.Severity
	}
	if f.Temperature == "" {
		f.Temperature = defaults.Temperature
	}
	return f
}
