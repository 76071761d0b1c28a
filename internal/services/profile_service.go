package services

import (
	"fmt"
	"math"

	"rapifix_backend/internal/config"
	"rapifix_backend/internal/logger"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/seo"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/pkg/apperrors"
)

type ProfileService interface {
	GetPublicProfile(slug string) (*dto.PublicProfileResponse, error)
	GetOwnProfile(userID string) (*dto.ProfileResponse, error)
	GetDashboard(userID string) (*dto.DashboardResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Search(criteria repositories.ProfileSearchCriteria) (*dto.SearchResponse, error)
	Deactivate(userID string) error
	Reactivate(userID string) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	catalogRepo repositories.CatalogRepository
	reviewRepo  repositories.ReviewRepository
	contactRepo repositories.ContactRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	catalogRepo repositories.CatalogRepository,
	reviewRepo repositories.ReviewRepository,
	contactRepo repositories.ContactRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
		reviewRepo:  reviewRepo,
		contactRepo: contactRepo,
	}
}

// GetPublicProfile собирает публичную страницу профессионала:
// профиль, видимые отзывы, сводный рейтинг и SEO-разметку.
// Неактивные профили наружу не отдаются.
func (s *ProfileServiceImpl) GetPublicProfile(slug string) (*dto.PublicProfileResponse, error) {
	profile, err := s.profileRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !profile.IsActive {
		return nil, apperrors.ErrProfileNotFound
	}

	resp, err := s.buildProfileResponse(profile, true)
	if err != nil {
		return nil, err
	}

	neighborhoodNames := make([]string, 0, len(profile.Neighborhoods))
	for _, n := range profile.Neighborhoods {
		neighborhoodNames = append(neighborhoodNames, n.Name)
	}

	cfg := config.GetConfig()
	jsonLD := seo.BuildLocalBusiness(cfg.SiteURL, seo.ProfileInput{
		FullName:        profile.FullName(),
		Description:     profile.Description,
		Slug:            profile.Slug,
		Phone:           profile.Phone,
		ProfilePhotoURL: profile.ProfilePhotoURL,
		CategoryName:    profile.Category.Name,
		Neighborhoods:   neighborhoodNames,
		PriceRange:      profile.PriceRange,
		AvgRating:       resp.AvgRating,
		ReviewCount:     resp.ReviewCount,
	})

	return &dto.PublicProfileResponse{
		Profile: *resp,
		JSONLD:  jsonLD,
	}, nil
}

// GetOwnProfile возвращает профиль владельцу кабинета,
// включая неактивный.
func (s *ProfileServiceImpl) GetOwnProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.findOwnProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.buildProfileResponse(profile, false)
}

// GetDashboard - сводка кабинета: профиль плюс счетчики обращений
// и отзывов.
func (s *ProfileServiceImpl) GetDashboard(userID string) (*dto.DashboardResponse, error) {
	profile, err := s.findOwnProfile(userID)
	if err != nil {
		return nil, err
	}

	resp, err := s.buildProfileResponse(profile, false)
	if err != nil {
		return nil, err
	}

	contactCount, err := s.contactRepo.CountByProfile(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardResponse{
		Profile:      *resp,
		ContactCount: contactCount,
		ReviewCount:  int64(resp.ReviewCount),
		AvgRating:    resp.AvgRating,
	}, nil
}

// UpdateProfile - правка профиля из кабинета. Лимиты тарифа
// (длина описания, число районов) проверяются здесь, а не в DTO.
func (s *ProfileServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.findOwnProfile(userID)
	if err != nil {
		return nil, err
	}

	limits := models.LimitsForTier(profile.Tier)
	if len(req.Description) > limits.MaxDescriptionLen {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf(
			"La descripción no puede superar los %d caracteres en tu plan", limits.MaxDescriptionLen,
		))
	}
	if len(req.NeighborhoodIDs) > limits.MaxNeighborhoods {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf(
			"Podés elegir hasta %d barrios", limits.MaxNeighborhoods,
		))
	}

	category, err := s.catalogRepo.FindCategoryByID(req.CategoryID)
	if err != nil || !category.IsActive {
		return nil, apperrors.NewBadRequestError("Rubro inválido")
	}

	neighborhoods, err := s.catalogRepo.FindNeighborhoodsByIDs(req.NeighborhoodIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(neighborhoods) == 0 {
		return nil, apperrors.NewBadRequestError("Seleccioná al menos un barrio")
	}

	validIDs := make([]uint, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		validIDs = append(validIDs, n.ID)
	}

	whatsApp := req.WhatsApp
	if whatsApp == "" {
		whatsApp = req.Phone
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Phone = req.Phone
	profile.WhatsApp = whatsApp
	profile.Email = req.Email
	profile.CategoryID = req.CategoryID
	profile.Description = req.Description
	profile.YearsExperience = req.YearsExperience
	profile.Availability = models.Availability(req.Availability)
	profile.PriceRange = models.PriceRange(req.PriceRange)
	profile.PriceDescription = req.PriceDescription
	profile.SetCertifications(req.Certifications)

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.SanitizeDBError(err)
	}
	if err := s.profileRepo.ReplaceNeighborhoods(profile.ID, validIDs); err != nil {
		return nil, apperrors.SanitizeDBError(err)
	}

	s.recalculateCompleteness(profile.ID)

	updated, err := s.profileRepo.FindByID(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildProfileResponse(updated, false)
}

// Search - публичный поиск профессионалов
func (s *ProfileServiceImpl) Search(criteria repositories.ProfileSearchCriteria) (*dto.SearchResponse, error) {
	profiles, total, err := s.profileRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cards := make([]dto.ProfileCardDTO, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		avg, count := s.ratingSummary(p.ID)

		desc := p.Description
		if len(desc) > 160 {
			desc = desc[:157] + "..."
		}

		cards = append(cards, dto.ProfileCardDTO{
			ID:              p.ID,
			Slug:            p.Slug,
			FullName:        p.FullName(),
			Category:        dto.ToCategoryDTO(&p.Category),
			Neighborhoods:   dto.ToNeighborhoodDTOs(p.Neighborhoods),
			Description:     desc,
			Availability:    string(p.Availability),
			PriceSymbol:     models.PriceRangeSymbol(p.PriceRange),
			IsVerified:      p.IsVerified,
			ProfilePhotoURL: p.ProfilePhotoURL,
			AvgRating:       avg,
			ReviewCount:     count,
		})
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}

	return &dto.SearchResponse{
		Profiles: cards,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Deactivate скрывает профиль из поиска и с публичной страницы
func (s *ProfileServiceImpl) Deactivate(userID string) error {
	profile, err := s.findOwnProfile(userID)
	if err != nil {
		return err
	}
	return s.profileRepo.SetActive(profile.ID, false)
}

// Reactivate возвращает профиль в каталог
func (s *ProfileServiceImpl) Reactivate(userID string) error {
	profile, err := s.findOwnProfile(userID)
	if err != nil {
		return err
	}
	return s.profileRepo.SetActive(profile.ID, true)
}

func (s *ProfileServiceImpl) findOwnProfile(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) buildProfileResponse(profile *models.Profile, publicView bool) (*dto.ProfileResponse, error) {
	avg, count := s.ratingSummary(profile.ID)

	reviews, err := s.reviewRepo.FindVisibleByProfile(profile.ID, 20, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ProfileResponse{
		ID:               profile.ID,
		Slug:             profile.Slug,
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		FullName:         profile.FullName(),
		Phone:            profile.Phone,
		WhatsApp:         profile.WhatsApp,
		Email:            profile.Email,
		Category:         dto.ToCategoryDTO(&profile.Category),
		Neighborhoods:    dto.ToNeighborhoodDTOs(profile.Neighborhoods),
		Description:      profile.Description,
		YearsExperience:  profile.YearsExperience,
		Availability:     string(profile.Availability),
		PriceRange:       string(profile.PriceRange),
		PriceSymbol:      models.PriceRangeSymbol(profile.PriceRange),
		PriceDescription: profile.PriceDescription,
		Certifications:   profile.GetCertifications(),
		Tier:             string(profile.Tier),
		IsVerified:       profile.IsVerified,
		IsActive:         profile.IsActive,
		Completeness:     profile.Completeness,
		ProfilePhotoURL:  profile.ProfilePhotoURL,
		WorkPhotos:       dto.ToWorkPhotoDTOs(profile.WorkPhotos),
		AvgRating:        avg,
		ReviewCount:      count,
		Reviews:          dto.ToReviewDTOs(reviews),
		CreatedAt:        profile.CreatedAt,
	}

	if publicView {
		// Email наружу не отдается, контакт идет через форму.
		resp.Email = ""
	}

	return resp, nil
}

// ratingSummary возвращает средний рейтинг по видимым отзывам,
// округленный до одного знака, и их количество.
func (s *ProfileServiceImpl) ratingSummary(profileID string) (float64, int) {
	count, err := s.reviewRepo.CountVisibleByProfile(profileID)
	if err != nil || count == 0 {
		return 0, 0
	}

	sum, err := s.reviewRepo.SumVisibleRatings(profileID)
	if err != nil {
		return 0, int(count)
	}

	return RoundRating(float64(sum) / float64(count)), int(count)
}

// RoundRating округляет рейтинг до одного знака после запятой.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// recalculateCompleteness пересчитывает заполненность после правок.
// Ошибка здесь не фатальна для запроса.
func (s *ProfileServiceImpl) recalculateCompleteness(profileID string) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		logger.WithError(err).Warn("failed to reload profile for completeness")
		return
	}

	value := CalculateCompleteness(profile, len(profile.Neighborhoods), len(profile.WorkPhotos))
	if err := s.profileRepo.UpdateCompleteness(profileID, value); err != nil {
		logger.WithError(err).Warn("failed to update profile completeness")
	}
}

// CalculateCompleteness считает заполненность профиля в процентах.
// Веса фиксированы и в сумме дают 100.
func CalculateCompleteness(p *models.Profile, neighborhoodCount, workPhotoCount int) int {
	score := 0

	// Базовые контакты - обязательные поля мастера.
	if p.FirstName != "" && p.LastName != "" {
		score += 10
	}
	if p.Phone != "" {
		score += 10
	}
	if p.Email != "" {
		score += 5
	}
	if p.WhatsApp != "" {
		score += 5
	}
	if p.CategoryID != 0 {
		score += 10
	}
	if neighborhoodCount > 0 {
		score += 10
	}
	if len(p.Description) >= 50 {
		score += 15
	} else if p.Description != "" {
		score += 5
	}
	if p.YearsExperience != nil {
		score += 5
	}
	if p.Availability != "" {
		score += 5
	}
	if p.PriceRange != "" {
		score += 5
	}
	if p.ProfilePhotoURL != "" {
		score += 10
	}
	if workPhotoCount > 0 {
		score += 5
	}
	if len(p.GetCertifications()) > 0 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}
