package exercise

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/dateformat"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

var digitsRe = regexp.MustCompile(`^\d+$`)

// fieldMessages сопоставляет поле запроса с текстом ошибки для клиента.
var fieldMessages = map[string]string{
	"Description": "Description is too long",
	"Duration":    "Duration should be number only",
	"Date":        "Date entry is invalid",
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("exercisedate", func(fl validator.FieldLevel) bool {
		return dateformat.Valid(fl.Field().String())
	})
	return v
}

func missingFields(req models.AddExerciseRequest) []string {
	var fields []string
	if req.Description == "" {
		fields = append(fields, "Description")
	}
	if req.Duration == "" {
		fields = append(fields, "Duration")
	}
	return fields
}

// validateAdd проверяет формат полей. Ошибки идут в порядке полей структуры.
func (s *Service) validateAdd(req models.AddExerciseRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			messages = append(messages, msg)
		}
	}
	return &ValidationError{Messages: messages}
}
