package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// AnswerValue holds one wizard answer: a single text (numbers are kept as
// their decimal text) or an ordered list of texts.
type AnswerValue struct {
	text   string
	list   []string
	isList bool
}

// Answers maps question ids to the submitted answer.
type Answers map[string]AnswerValue

func NewTextAnswer(text string) AnswerValue {
	return AnswerValue{text: text}
}

func NewListAnswer(items ...string) AnswerValue {
	list := make([]string, len(items))
	copy(list, items)
	return AnswerValue{list: list, isList: true}
}

// Text returns the single-valued answer. List answers report false.
func (v AnswerValue) Text() (string, bool) {
	if v.isList {
		return "", false
	}
	return v.text, true
}

// List returns a copy of a list answer. Single-valued answers report false.
func (v AnswerValue) List() ([]string, bool) {
	if !v.isList {
		return nil, false
	}
	list := make([]string, len(v.list))
	copy(list, v.list)
	return list, true
}

func (v AnswerValue) IsList() bool {
	return v.isList
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty answer value")
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*v = AnswerValue{text: text}
	case '[':
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("answer list must only contain strings: %w", err)
		}
		*v = NewListAnswer(items...)
	case '{':
		return fmt.Errorf("answer value must be a string, a list of strings or a number")
	case 'n':
		if !bytes.Equal(trimmed, []byte("null")) {
			return fmt.Errorf("invalid answer value %s", trimmed)
		}
		*v = AnswerValue{}
	case 't', 'f':
		value, err := strconv.ParseBool(string(trimmed))
		if err != nil {
			return fmt.Errorf("invalid answer value %s", trimmed)
		}
		*v = AnswerValue{text: strconv.FormatBool(value)}
	default:
		if _, err := strconv.ParseFloat(string(trimmed), 64); err != nil {
			return fmt.Errorf("invalid numeric answer %s", trimmed)
		}
		*v = AnswerValue{text: string(trimmed)}
	}
	return nil
}

// Text returns the single-valued answer stored under key.
func (a Answers) Text(key string) (string, bool) {
	value, ok := a[key]
	if !ok {
		return "", false
	}
	return value.Text()
}

// List returns the list answer stored under key.
func (a Answers) List(key string) ([]string, bool) {
	value, ok := a[key]
	if !ok {
		return nil, false
	}
	return value.List()
}

func (a Answers) Has(key string) bool {
	_, ok := a[key]
	return ok
}
