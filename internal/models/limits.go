package models

// TierLimits - ограничения тарифа на поля и квоты профиля.
type TierLimits struct {
	MaxDescriptionLen int
	MaxWorkPhotos     int
	MaxNeighborhoods  int
}

var tierLimits = map[Tier]TierLimits{
	TierFree: {
		MaxDescriptionLen: 500,
		MaxWorkPhotos:     5,
		MaxNeighborhoods:  5,
	},
	TierPaid: {
		MaxDescriptionLen: 2000,
		MaxWorkPhotos:     20,
		MaxNeighborhoods:  5,
	},
}

// LimitsForTier возвращает лимиты тарифа; неизвестный тариф
// трактуется как free.
func LimitsForTier(t Tier) TierLimits {
	if l, ok := tierLimits[t]; ok {
		return l
	}
	return tierLimits[TierFree]
}
