package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// nomes das tags json nas mensagens
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("bucket_mode", func(fl validator.FieldLevel) bool {
		return domain.BucketMode(fl.Field().String()).IsValid()
	})
}

// Validate valida a struct e retorna os erros por campo, ou nil
func Validate(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		errors[fieldKey(fieldErr)] = message(fieldErr)
	}

	return errors
}

// ValidateSlice valida cada item e prefixa os campos com a posição
func ValidateSlice[T any](items []T) map[string]string {
	var errors map[string]string
	for i := range items {
		for field, msg := range Validate(items[i]) {
			if errors == nil {
				errors = make(map[string]string)
			}
			errors["["+strconv.Itoa(i)+"]."+field] = msg
		}
	}
	return errors
}

func fieldKey(err validator.FieldError) string {
	namespace := err.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return err.Field()
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "valor abaixo do mínimo (" + err.Param() + ")"
	case "max":
		return "valor acima do máximo (" + err.Param() + ")"
	case "oneof":
		return "valor deve ser um de: " + err.Param()
	case "datetime":
		return "data deve estar no formato AAAA-MM-DD"
	case "bucket_mode":
		return "modo deve ser week ou month"
	default:
		return "valor inválido"
	}
}
