package services

import (
	"sync"

	"rapifix_backend/internal/logger"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/wizard"
	"rapifix_backend/pkg/apperrors"
)

// RegistrationService ведет мастер регистрации профессионала.
// Промежуточное состояние живет в памяти процесса: брошенный мастер
// просто исчезает при рестарте, профиль создается только на Submit.
type RegistrationService interface {
	GetState(userID string) (*dto.WizardStateResponse, error)
	SubmitBasicInfo(userID string, req *dto.BasicInfoStepRequest) (*dto.WizardStateResponse, error)
	SubmitCategory(userID string, req *dto.CategoryStepRequest) (*dto.WizardStateResponse, error)
	SubmitNeighborhoods(userID string, req *dto.NeighborhoodsStepRequest) (*dto.WizardStateResponse, error)
	SubmitDescription(userID string, req *dto.DescriptionStepRequest) (*dto.RegistrationResultResponse, error)
	GoBack(userID string) (*dto.WizardStateResponse, error)
	Abandon(userID string)
}

type RegistrationServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	catalogRepo repositories.CatalogRepository

	mu      sync.Mutex
	wizards map[string]*wizard.State
}

func NewRegistrationService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	catalogRepo repositories.CatalogRepository,
) RegistrationService {
	return &RegistrationServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
		wizards:     make(map[string]*wizard.State),
	}
}

// GetState возвращает текущее состояние мастера пользователя,
// создавая новый при первом обращении.
func (s *RegistrationServiceImpl) GetState(userID string) (*dto.WizardStateResponse, error) {
	if err := s.ensureNoProfile(userID); err != nil {
		return nil, err
	}
	return toWizardStateResponse(s.stateFor(userID)), nil
}

func (s *RegistrationServiceImpl) SubmitBasicInfo(userID string, req *dto.BasicInfoStepRequest) (*dto.WizardStateResponse, error) {
	if err := s.ensureNoProfile(userID); err != nil {
		return nil, err
	}

	st := s.stateFor(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := st.SetBasicInfo(wizard.BasicInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		WhatsApp:  req.WhatsApp,
		Email:     req.Email,
	})
	if err != nil {
		return nil, err
	}
	return toWizardStateResponse(st), nil
}

func (s *RegistrationServiceImpl) SubmitCategory(userID string, req *dto.CategoryStepRequest) (*dto.WizardStateResponse, error) {
	if err := s.ensureNoProfile(userID); err != nil {
		return nil, err
	}

	// Категория должна существовать и быть активной.
	category, err := s.catalogRepo.FindCategoryByID(req.CategoryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NewBadRequestError("Rubro inválido")
		}
		return nil, apperrors.InternalError(err)
	}
	if !category.IsActive {
		return nil, apperrors.NewBadRequestError("Rubro inválido")
	}

	st := s.stateFor(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := st.SetCategory(req.CategoryID); err != nil {
		return nil, err
	}
	return toWizardStateResponse(st), nil
}

func (s *RegistrationServiceImpl) SubmitNeighborhoods(userID string, req *dto.NeighborhoodsStepRequest) (*dto.WizardStateResponse, error) {
	if err := s.ensureNoProfile(userID); err != nil {
		return nil, err
	}

	found, err := s.catalogRepo.FindNeighborhoodsByIDs(req.NeighborhoodIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	validIDs := make([]uint, 0, len(found))
	for _, n := range found {
		validIDs = append(validIDs, n.ID)
	}

	st := s.stateFor(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := st.SetNeighborhoods(validIDs); err != nil {
		return nil, err
	}
	return toWizardStateResponse(st), nil
}

// SubmitDescription завершает мастер: создается профиль со слагом
// и подсчитанной заполненностью, роль пользователя повышается
// до professional.
func (s *RegistrationServiceImpl) SubmitDescription(userID string, req *dto.DescriptionStepRequest) (*dto.RegistrationResultResponse, error) {
	if err := s.ensureNoProfile(userID); err != nil {
		return nil, err
	}

	st := s.stateFor(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := st.SetDescription(wizard.Description{
		Text:            req.Description,
		YearsExperience: req.YearsExperience,
		Availability:    models.Availability(req.Availability),
		PriceRange:      models.PriceRange(req.PriceRange),
	})
	if err != nil {
		return nil, err
	}

	result, err := s.createProfile(userID, st)
	if err != nil {
		// Профиль не создан - мастер возвращается на последний шаг,
		// чтобы пользователь мог повторить отправку.
		_ = st.Back()
		return nil, err
	}

	delete(s.wizards, userID)
	return result, nil
}

func (s *RegistrationServiceImpl) GoBack(userID string) (*dto.WizardStateResponse, error) {
	if err := s.ensureNoProfile(userID); err != nil {
		return nil, err
	}

	st := s.stateFor(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := st.Back(); err != nil {
		return nil, err
	}
	return toWizardStateResponse(st), nil
}

// Abandon выбрасывает незавершенный мастер пользователя.
func (s *RegistrationServiceImpl) Abandon(userID string) {
	s.mu.Lock()
	delete(s.wizards, userID)
	s.mu.Unlock()
}

func (s *RegistrationServiceImpl) stateFor(userID string) *wizard.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.wizards[userID]
	if !ok {
		st = wizard.NewState()
		s.wizards[userID] = st
	}
	return st
}

func (s *RegistrationServiceImpl) ensureNoProfile(userID string) error {
	_, err := s.profileRepo.FindByUserID(userID)
	if err == nil {
		return apperrors.ErrProfileAlreadyExists
	}
	if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RegistrationServiceImpl) createProfile(userID string, st *wizard.State) (*dto.RegistrationResultResponse, error) {
	category, err := s.catalogRepo.FindCategoryByID(st.CategoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Для слага берется первый выбранный район.
	neighborhoodSlug := ""
	if len(st.NeighborhoodIDs) > 0 {
		if n, err := s.catalogRepo.FindNeighborhoodByID(st.NeighborhoodIDs[0]); err == nil {
			neighborhoodSlug = n.Slug
		}
	}

	slug, err := s.profileRepo.GenerateUniqueSlug(
		st.BasicInfo.FirstName, st.BasicInfo.LastName, category.Slug, neighborhoodSlug,
	)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:          userID,
		Slug:            slug,
		FirstName:       st.BasicInfo.FirstName,
		LastName:        st.BasicInfo.LastName,
		Phone:           st.BasicInfo.Phone,
		WhatsApp:        st.BasicInfo.WhatsApp,
		Email:           st.BasicInfo.Email,
		CategoryID:      st.CategoryID,
		Description:     st.Description.Text,
		YearsExperience: st.Description.YearsExperience,
		Availability:    st.Description.Availability,
		PriceRange:      st.Description.PriceRange,
		Tier:            models.TierFree,
		IsActive:        true,
	}
	profile.Completeness = CalculateCompleteness(profile, len(st.NeighborhoodIDs), 0)

	if err := s.profileRepo.Create(profile, st.NeighborhoodIDs); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.SanitizeDBError(err)
	}

	if err := s.userRepo.UpdateRole(userID, models.UserRoleProfessional); err != nil {
		logger.WithError(err).Error("failed to promote user to professional", "user_id", userID)
	}

	return &dto.RegistrationResultResponse{
		ProfileID: profile.ID,
		Slug:      profile.Slug,
	}, nil
}

func toWizardStateResponse(st *wizard.State) *dto.WizardStateResponse {
	resp := &dto.WizardStateResponse{
		Step:            string(st.Current),
		FirstName:       st.BasicInfo.FirstName,
		LastName:        st.BasicInfo.LastName,
		Phone:           st.BasicInfo.Phone,
		WhatsApp:        st.BasicInfo.WhatsApp,
		Email:           st.BasicInfo.Email,
		CategoryID:      st.CategoryID,
		NeighborhoodIDs: st.NeighborhoodIDs,
		Description:     st.Description.Text,
		YearsExperience: st.Description.YearsExperience,
	}
	if st.Description.Availability != "" {
		resp.Availability = string(st.Description.Availability)
	}
	if st.Description.PriceRange != "" {
		resp.PriceRange = string(st.Description.PriceRange)
	}
	return resp
}
