package services

import (
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/pkg/apperrors"
)

type ReviewService interface {
	CreateReview(profileSlug string, req *dto.CreateReviewRequest) (*dto.ReviewDTO, error)
	GetProfileReviews(profileSlug string, page, pageSize int) ([]dto.ReviewDTO, *dto.RatingSummary, error)

	// Admin operations
	SetVisibility(reviewID string, visible bool) error
	DeleteReview(reviewID string) error
	ListAll(limit, offset int) ([]dto.ReviewDTO, int64, error)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.ProfileRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.ProfileRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
	}
}

// CreateReview добавляет отзыв на публичной странице профессионала.
// Отзыв сразу видим; модерация - снятие видимости из админки.
func (s *ReviewServiceImpl) CreateReview(profileSlug string, req *dto.CreateReviewRequest) (*dto.ReviewDTO, error) {
	profile, err := s.profileRepo.FindBySlug(profileSlug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !profile.IsActive {
		return nil, apperrors.ErrProfileNotFound
	}

	review := &models.Review{
		ProfileID:  profile.ID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsVisible:  true,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.SanitizeDBError(err)
	}

	return &dto.ReviewDTO{
		ID:         review.ID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}, nil
}

// GetProfileReviews возвращает страницу видимых отзывов со сводкой рейтинга
func (s *ReviewServiceImpl) GetProfileReviews(profileSlug string, page, pageSize int) ([]dto.ReviewDTO, *dto.RatingSummary, error) {
	profile, err := s.profileRepo.FindBySlug(profileSlug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrProfileNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}

	reviews, err := s.reviewRepo.FindVisibleByProfile(profile.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	summary := &dto.RatingSummary{}
	count, err := s.reviewRepo.CountVisibleByProfile(profile.ID)
	if err == nil && count > 0 {
		if sum, err := s.reviewRepo.SumVisibleRatings(profile.ID); err == nil {
			summary.AvgRating = RoundRating(float64(sum) / float64(count))
			summary.ReviewCount = int(count)
		}
	}

	return dto.ToReviewDTOs(reviews), summary, nil
}

// Admin operations

func (s *ReviewServiceImpl) SetVisibility(reviewID string, visible bool) error {
	if err := s.reviewRepo.SetVisibility(reviewID, visible); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReviewServiceImpl) DeleteReview(reviewID string) error {
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReviewServiceImpl) ListAll(limit, offset int) ([]dto.ReviewDTO, int64, error) {
	reviews, err := s.reviewRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	total, err := s.reviewRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	return dto.ToReviewDTOs(reviews), total, nil
}
