package utils

import (
	"reflect"
	"strings"
	"symptomix-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("answers", validateAnswers)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// validateAnswers rejects blank question ids. A nil answer set passes here and
// is reported by the assessment usecase.
func validateAnswers(fl validator.FieldLevel) bool {
	answers, ok := fl.Field().Interface().(models.Answers)
	if !ok {
		return false
	}
	for questionID := range answers {
		if strings.TrimSpace(questionID) == "" {
			return false
		}
	}
	return true
}
