package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"rapifix_backend/internal/config"
	"rapifix_backend/internal/imageprocessor"
	"rapifix_backend/internal/logger"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/storage"
	"rapifix_backend/pkg/apperrors"
)

type UploadService interface {
	UploadProfilePhoto(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadPhotoResponse, error)
	UploadWorkPhoto(ctx context.Context, userID string, file *multipart.FileHeader, caption string) (*dto.UploadPhotoResponse, error)
	UpdateWorkPhotoCaption(userID, photoID, caption string) error
	ReorderWorkPhotos(userID string, photoIDs []string) error
	DeleteWorkPhoto(ctx context.Context, userID, photoID string) error
}

type UploadServiceImpl struct {
	profileRepo   repositories.ProfileRepository
	workPhotoRepo repositories.WorkPhotoRepository
	storage       storage.Storage
	processor     *imageprocessor.Processor
}

func NewUploadService(
	profileRepo repositories.ProfileRepository,
	workPhotoRepo repositories.WorkPhotoRepository,
	store storage.Storage,
) UploadService {
	return &UploadServiceImpl{
		profileRepo:   profileRepo,
		workPhotoRepo: workPhotoRepo,
		storage:       store,
		processor:     imageprocessor.NewProcessor(85),
	}
}

// UploadProfilePhoto заменяет аватар профиля. Старый файл
// перезаписывается по тому же ключу не всегда (расширение может
// отличаться), поэтому прежний удаляется явно.
func (s *UploadServiceImpl) UploadProfilePhoto(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadPhotoResponse, error) {
	profile, err := s.ownProfile(userID)
	if err != nil {
		return nil, err
	}

	contentType, err := s.validateFile(file, config.GetConfig().Upload.AvatarAllowedTypes)
	if err != nil {
		return nil, err
	}

	oldURL := profile.ProfilePhotoURL

	path := fmt.Sprintf("profiles/%s/avatar-%s%s", profile.ID, uuid.NewString()[:8], extensionFor(contentType))
	url, err := s.saveFile(ctx, path, file, contentType, imageprocessor.SizeAvatar)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateProfilePhoto(profile.ID, url); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Прежний файл больше ни на что не ссылается.
	if key := storageKeyFromURL(oldURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.WithError(err).Warn("failed to delete previous avatar", "profile_id", profile.ID)
		}
	}

	s.recalc(profile.ID)

	return &dto.UploadPhotoResponse{URL: url}, nil
}

// UploadWorkPhoto добавляет фото работы в конец галереи.
// Квота фото зависит от тарифа профиля.
func (s *UploadServiceImpl) UploadWorkPhoto(ctx context.Context, userID string, file *multipart.FileHeader, caption string) (*dto.UploadPhotoResponse, error) {
	profile, err := s.ownProfile(userID)
	if err != nil {
		return nil, err
	}

	limits := models.LimitsForTier(profile.Tier)
	count, err := s.workPhotoRepo.CountByProfile(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= int64(limits.MaxWorkPhotos) {
		return nil, apperrors.ErrPhotoQuotaExceeded
	}

	contentType, err := s.validateFile(file, config.GetConfig().Upload.AllowedTypes)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("profiles/%s/work/%s%s", profile.ID, uuid.NewString(), extensionFor(contentType))
	url, err := s.saveFile(ctx, path, file, contentType, imageprocessor.SizeWorkPhoto)
	if err != nil {
		return nil, err
	}

	photo := &models.WorkPhoto{
		ProfileID: profile.ID,
		URL:       url,
		Caption:   caption,
	}
	if err := s.workPhotoRepo.Create(photo); err != nil {
		return nil, apperrors.SanitizeDBError(err)
	}

	s.recalc(profile.ID)

	return &dto.UploadPhotoResponse{
		ID:        photo.ID,
		URL:       url,
		SortOrder: photo.SortOrder,
	}, nil
}

func (s *UploadServiceImpl) UpdateWorkPhotoCaption(userID, photoID, caption string) error {
	if _, err := s.ownedPhoto(userID, photoID); err != nil {
		return err
	}
	if err := s.workPhotoRepo.UpdateCaption(photoID, caption); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) ReorderWorkPhotos(userID string, photoIDs []string) error {
	profile, err := s.ownProfile(userID)
	if err != nil {
		return err
	}
	if err := s.workPhotoRepo.Reorder(profile.ID, photoIDs); err != nil {
		if apperrors.Is(err, repositories.ErrWorkPhotoNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) DeleteWorkPhoto(ctx context.Context, userID, photoID string) error {
	photo, err := s.ownedPhoto(userID, photoID)
	if err != nil {
		return err
	}

	if err := s.workPhotoRepo.Delete(photoID); err != nil {
		return apperrors.InternalError(err)
	}

	// Файл в хранилище чистится по возможности; запись уже удалена.
	if key := storageKeyFromURL(photo.URL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.WithError(err).Warn("failed to delete photo file", "photo_id", photoID)
		}
	}

	s.recalc(photo.ProfileID)

	return nil
}

func (s *UploadServiceImpl) ownProfile(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// ownedPhoto проверяет, что фото принадлежит профилю пользователя.
func (s *UploadServiceImpl) ownedPhoto(userID, photoID string) (*models.WorkPhoto, error) {
	profile, err := s.ownProfile(userID)
	if err != nil {
		return nil, err
	}

	photo, err := s.workPhotoRepo.FindByID(photoID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkPhotoNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if photo.ProfileID != profile.ID {
		return nil, apperrors.NewForbiddenError("No tenés permisos para realizar esta acción")
	}
	return photo, nil
}

// validateFile проверяет размер и реальный MIME-тип по содержимому,
// а не по заголовку клиента. Список допустимых типов у аватара и
// фото работ разный (gif только в галерее).
func (s *UploadServiceImpl) validateFile(file *multipart.FileHeader, allowedTypes []string) (string, error) {
	cfg := config.GetConfig()

	if file.Size > cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", apperrors.InternalError(err)
	}
	contentType := http.DetectContentType(head[:n])

	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return contentType, nil
		}
	}
	return "", apperrors.ErrInvalidFileType
}

// saveFile ужимает изображение до целевого размера и кладет его
// в хранилище. Форматы, которые процессор не кодирует, сохраняются
// без изменений.
func (s *UploadServiceImpl) saveFile(ctx context.Context, path string, file *multipart.FileHeader, contentType string, size imageprocessor.ImageSize) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer f.Close()

	processed, err := s.processor.ProcessImage(f, size, formatFor(contentType))
	if err != nil {
		return "", apperrors.ErrInvalidFileType
	}

	if err := s.storage.Save(ctx, path, processed, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *UploadServiceImpl) recalc(profileID string) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		return
	}
	value := CalculateCompleteness(profile, len(profile.Neighborhoods), len(profile.WorkPhotos))
	if err := s.profileRepo.UpdateCompleteness(profileID, value); err != nil {
		logger.WithError(err).Warn("failed to update profile completeness")
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}

func formatFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpeg"
	case "image/png":
		return "png"
	default:
		return ""
	}
}

// storageKeyFromURL восстанавливает ключ хранилища из публичного URL.
func storageKeyFromURL(url string) string {
	marker := "profiles/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	return filepath.ToSlash(url[idx:])
}
