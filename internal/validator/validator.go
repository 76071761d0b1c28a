package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError — кастомный тип ошибки, содержит
// карту ошибок "поле" -> "сообщение".
type ValidationError struct {
	Errors map[string]string
}

// Error реализует стандартный интерфейс error.
func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// First возвращает произвольную первую пару поле/сообщение.
// Формы показывают одну ошибку за отправку.
func (e *ValidationError) First() (field, message string) {
	for f, m := range e.Errors {
		return f, m
	}
	return "", ""
}

// Validator — обертка над go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New создает новый экземпляр Validator.
func New() *Validator {
	v := validator.New()

	// Правила объявлены в binding-тегах DTO, их же проверяет gin.
	v.SetTagName("binding")

	// Используем JSON-теги в сообщениях об ошибках, чтобы клиент
	// получал имена полей так, как они определены в DTO.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	RegisterRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate выполняет валидацию переданной структуры.
// Если есть ошибки, возвращает *ValidationError.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Это какая-то другая ошибка (например, ошибка рефлексии)
		return err
	}

	return &ValidationError{Errors: v.Translate(validationErrors)}
}

// Translate превращает ошибки go-playground/validator в карту
// "поле" -> "сообщение". Используется и для ошибок, которые
// возвращает биндинг gin.
func (v *Validator) Translate(validationErrors validator.ValidationErrors) map[string]string {
	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
	}
	return customErrors
}

// getErrorMessage генерирует пользовательское сообщение (по-испански,
// как их показывают формы).
func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Email inválido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Debe tener al menos %s caracteres", fe.Param())
		}
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Seleccioná al menos %s", fe.Param())
		}
		return fmt.Sprintf("Debe ser como mínimo %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("No puede superar los %s caracteres", fe.Param())
		}
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Máximo %s", fe.Param())
		}
		return fmt.Sprintf("Debe ser como máximo %s", fe.Param())
	case "eqfield":
		return "Las contraseñas no coinciden"
	case "oneof", "availability", "price-range", "contact-method", "user-role":
		return "Valor no permitido"
	case "password-strength":
		return "La contraseña debe tener al menos 8 caracteres, una mayúscula y un número"
	default:
		return fmt.Sprintf("Valor inválido (regla '%s')", fe.Tag())
	}
}
