// Package validation проверяет входные структуры через go-playground/validator
// и возвращает все нарушения списком.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/BookEasy-Service/pkg/calendar"
)

// FieldError нарушение для одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors список нарушений
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Add добавляет нарушение
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// OrNil возвращает nil для пустого списка
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Validator обёртка над validator.Validate
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с тегом hhmm и именами полей из json-тегов
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Регистрация на свежем валидаторе не может вернуть ошибку
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := calendar.TimeToMinutes(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct проверяет структуру. Возвращает Errors или nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	return translate(validationErrs)
}

func translate(errs validator.ValidationErrors) Errors {
	result := make(Errors, 0, len(errs))

	for _, err := range errs {
		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email", err.Field())
		case "hhmm":
			message = fmt.Sprintf("%s must be in HH:mm format", err.Field())
		case "uuid":
			message = fmt.Sprintf("%s must be a valid UUID", err.Field())
		default:
			message = err.Error()
		}

		result = append(result, FieldError{Field: err.Field(), Message: message})
	}

	return result
}
