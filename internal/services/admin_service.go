package services

import (
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/pkg/apperrors"
)

// AdminStats - сводные счетчики для главной страницы админки.
type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalSearchers    int64 `json:"total_searchers"`
	TotalProfiles     int64 `json:"total_profiles"`
	ActiveProfiles    int64 `json:"active_profiles"`
	TotalReviews      int64 `json:"total_reviews"`
}

type AdminService interface {
	GetStats() (*AdminStats, error)
	ListUsers(page, pageSize int) ([]dto.UserDTO, int64, error)
	ListProfiles(page, pageSize int) ([]dto.ProfileCardDTO, int64, error)
	SetProfileVerified(profileID string, verified bool) error
	SetProfileActive(profileID string, active bool) error
	SetProfileTier(profileID string, tier string) error
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	reviewRepo  repositories.ReviewRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	reviewRepo repositories.ReviewRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *AdminServiceImpl) GetStats() (*AdminStats, error) {
	stats := &AdminStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalSearchers, err = s.userRepo.CountByRole(models.UserRoleSearcher); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalProfiles, err = s.profileRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveProfiles, err = s.profileRepo.CountActive(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalReviews, err = s.reviewRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return stats, nil
}

func (s *AdminServiceImpl) ListUsers(page, pageSize int) ([]dto.UserDTO, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	users, err := s.userRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, dto.ToUserDTO(&users[i]))
	}
	return dtos, total, nil
}

func (s *AdminServiceImpl) ListProfiles(page, pageSize int) ([]dto.ProfileCardDTO, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	profiles, err := s.profileRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.profileRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	cards := make([]dto.ProfileCardDTO, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		cards = append(cards, dto.ProfileCardDTO{
			ID:              p.ID,
			Slug:            p.Slug,
			FullName:        p.FullName(),
			Category:        dto.ToCategoryDTO(&p.Category),
			Availability:    string(p.Availability),
			PriceSymbol:     models.PriceRangeSymbol(p.PriceRange),
			IsVerified:      p.IsVerified,
			ProfilePhotoURL: p.ProfilePhotoURL,
		})
	}
	return cards, total, nil
}

func (s *AdminServiceImpl) SetProfileVerified(profileID string, verified bool) error {
	if err := s.profileRepo.SetVerified(profileID, verified); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) SetProfileActive(profileID string, active bool) error {
	if err := s.profileRepo.SetActive(profileID, active); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) SetProfileTier(profileID string, tier string) error {
	t := models.Tier(tier)
	if t != models.TierFree && t != models.TierPaid {
		return apperrors.NewBadRequestError("Plan inválido")
	}

	if err := s.profileRepo.SetTier(profileID, t); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
