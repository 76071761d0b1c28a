package models

type UserRole string
type Availability string
type PriceRange string
type Tier string
type ContactMethod string

const (
	UserRoleSearcher     UserRole = "searcher"
	UserRoleProfessional UserRole = "professional"
	UserRoleAdmin        UserRole = "admin"

	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"

	PriceRangeLow     PriceRange = "low"
	PriceRangeMedium  PriceRange = "medium"
	PriceRangeHigh    PriceRange = "high"
	PriceRangePremium PriceRange = "premium"

	TierFree Tier = "free"
	TierPaid Tier = "paid"

	ContactMethodForm     ContactMethod = "form"
	ContactMethodWhatsApp ContactMethod = "whatsapp"
	ContactMethodPhone    ContactMethod = "phone"
)

// PriceRangeSymbol - чистая тотальная функция над enum диапазона цен.
// Для пустого/неизвестного значения символа нет (пустая строка).
func PriceRangeSymbol(pr PriceRange) string {
	switch pr {
	case PriceRangeLow:
		return "$"
	case PriceRangeMedium:
		return "$$"
	case PriceRangeHigh:
		return "$$$"
	case PriceRangePremium:
		return "$$$$"
	default:
		return ""
	}
}
