package validator

import (
	"log"

	"rapifix_backend/internal/auth"
	"rapifix_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// RegisterRules регистрирует кастомные функции валидации.
// Вызывается и для собственного экземпляра, и для движка gin binding,
// чтобы теги в DTO работали в обоих местах.
// Пустые значения пропускаются - за обязательность отвечает 'required'.
func RegisterRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("user-role", validateUserRole)
	mustRegister("availability", validateAvailability)
	mustRegister("price-range", validatePriceRange)
	mustRegister("contact-method", validateContactMethod)
	mustRegister("password-strength", validatePasswordStrength)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleSearcher, models.UserRoleProfessional, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Availability(value) {
	case models.AvailabilityAvailable, models.AvailabilityBusy, models.AvailabilityUnavailable:
		return true
	default:
		return false
	}
}

func validatePriceRange(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PriceRange(value) {
	case models.PriceRangeLow, models.PriceRangeMedium, models.PriceRangeHigh, models.PriceRangePremium:
		return true
	default:
		return false
	}
}

func validateContactMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ContactMethod(value) {
	case models.ContactMethodForm, models.ContactMethodWhatsApp, models.ContactMethodPhone:
		return true
	default:
		return false
	}
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return auth.ValidatePassword(value)
}
