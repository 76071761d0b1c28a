package services

import (
	"rapifix_backend/internal/config"
	"rapifix_backend/internal/email"
	"rapifix_backend/internal/logger"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/pkg/apperrors"
)

type ContactService interface {
	CreateContact(profileSlug, userID string, req *dto.CreateContactRequest) error
	TrackContact(profileSlug, userID string, req *dto.TrackContactRequest) error
	GetProfileContacts(ownerUserID string, page, pageSize int) (*dto.ContactListResponse, error)
}

type ContactServiceImpl struct {
	contactRepo   repositories.ContactRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewContactService(
	contactRepo repositories.ContactRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) ContactService {
	return &ContactServiceImpl{
		contactRepo:   contactRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

// CreateContact сохраняет обращение через форму и уведомляет
// профессионала по email. userID пустой для анонимных посетителей.
func (s *ContactServiceImpl) CreateContact(profileSlug, userID string, req *dto.CreateContactRequest) error {
	profile, err := s.activeProfileBySlug(profileSlug)
	if err != nil {
		return err
	}

	contact := &models.Contact{
		ProfileID:     profile.ID,
		SearcherName:  req.Name,
		SearcherEmail: req.Email,
		SearcherPhone: req.Phone,
		Message:       req.Message,
		Method:        models.ContactMethodForm,
	}
	if userID != "" {
		contact.UserID = &userID
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return apperrors.SanitizeDBError(err)
	}

	s.notifyProfessional(profile, contact)

	return nil
}

// TrackContact фиксирует клик по WhatsApp или телефону.
// Журнал ведется для счетчиков кабинета; письма не отправляются.
func (s *ContactServiceImpl) TrackContact(profileSlug, userID string, req *dto.TrackContactRequest) error {
	profile, err := s.activeProfileBySlug(profileSlug)
	if err != nil {
		return err
	}

	contact := &models.Contact{
		ProfileID: profile.ID,
		Method:    models.ContactMethod(req.Method),
	}
	if userID != "" {
		contact.UserID = &userID
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return apperrors.SanitizeDBError(err)
	}
	return nil
}

// GetProfileContacts - обращения в кабинете профессионала
func (s *ContactServiceImpl) GetProfileContacts(ownerUserID string, page, pageSize int) (*dto.ContactListResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ownerUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}

	contacts, err := s.contactRepo.FindByProfile(profile.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.contactRepo.CountByProfile(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dtos := make([]dto.ContactDTO, 0, len(contacts))
	for _, c := range contacts {
		dtos = append(dtos, dto.ContactDTO{
			ID:            c.ID,
			SearcherName:  c.SearcherName,
			SearcherEmail: c.SearcherEmail,
			SearcherPhone: c.SearcherPhone,
			Message:       c.Message,
			Method:        string(c.Method),
			CreatedAt:     c.CreatedAt,
		})
	}

	return &dto.ContactListResponse{
		Contacts: dtos,
		Total:    total,
	}, nil
}

func (s *ContactServiceImpl) activeProfileBySlug(slug string) (*models.Profile, error) {
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
	return profile, nil
}

func (s *ContactServiceImpl) notifyProfessional(profile *models.Profile, contact *models.Contact) {
	cfg := config.GetConfig()

	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplateContactNotification, email.TemplateData{
			"ProfessionalName": profile.FirstName,
			"SearcherName":     contact.SearcherName,
			"SearcherEmail":    contact.SearcherEmail,
			"SearcherPhone":    contact.SearcherPhone,
			"Message":          contact.Message,
			"DashboardURL":     cfg.SiteURL + "/mi-perfil/contactos",
		}, &email.Email{
			To:      []string{profile.Email},
			Subject: "Tenés un nuevo contacto en Rapifix",
		})
		if err != nil {
			logger.WithError(err).Error("failed to send contact notification email")
		}
	}()
}
