package services

import (
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/pkg/apperrors"
)

type CatalogService interface {
	GetCatalog() (*dto.CatalogResponse, error)
	GetNeighborhoodsByZone() ([]dto.ZoneDTO, error)
	UpsertCategory(id uint, req *dto.UpsertCategoryRequest) (*dto.CategoryDTO, error)
	UpsertNeighborhood(id uint, req *dto.UpsertNeighborhoodRequest) (*dto.NeighborhoodDTO, error)
}

type CatalogServiceImpl struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

// GetCatalog возвращает активные рубрики и районы для форм и фильтров
func (s *CatalogServiceImpl) GetCatalog() (*dto.CatalogResponse, error) {
	categories, err := s.catalogRepo.FindActiveCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	neighborhoods, err := s.catalogRepo.FindActiveNeighborhoods()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	catDTOs := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		catDTOs = append(catDTOs, dto.ToCategoryDTO(&categories[i]))
	}

	return &dto.CatalogResponse{
		Categories:    catDTOs,
		Neighborhoods: dto.ToNeighborhoodDTOs(neighborhoods),
	}, nil
}

// GetNeighborhoodsByZone группирует районы по зонам города.
// Порядок зон повторяет порядок выдачи репозитория (по алфавиту).
func (s *CatalogServiceImpl) GetNeighborhoodsByZone() ([]dto.ZoneDTO, error) {
	neighborhoods, err := s.catalogRepo.FindActiveNeighborhoods()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var zones []dto.ZoneDTO
	index := make(map[string]int)

	for _, n := range neighborhoods {
		i, ok := index[n.Zone]
		if !ok {
			i = len(zones)
			index[n.Zone] = i
			zones = append(zones, dto.ZoneDTO{Zone: n.Zone})
		}
		zones[i].Neighborhoods = append(zones[i].Neighborhoods, dto.NeighborhoodDTO{
			ID:   n.ID,
			Slug: n.Slug,
			Name: n.Name,
			Zone: n.Zone,
		})
	}

	return zones, nil
}

// UpsertCategory создает рубрику (id == 0) или правит существующую.
func (s *CatalogServiceImpl) UpsertCategory(id uint, req *dto.UpsertCategoryRequest) (*dto.CategoryDTO, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		ID:        id,
		Slug:      req.Slug,
		Name:      req.Name,
		Icon:      req.Icon,
		IsActive:  isActive,
		SortOrder: req.SortOrder,
	}

	var err error
	if id == 0 {
		err = s.catalogRepo.CreateCategory(category)
	} else {
		err = s.catalogRepo.UpdateCategory(category)
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.SanitizeDBError(err)
	}

	result := dto.ToCategoryDTO(category)
	return &result, nil
}

// UpsertNeighborhood создает район (id == 0) или правит существующий.
func (s *CatalogServiceImpl) UpsertNeighborhood(id uint, req *dto.UpsertNeighborhoodRequest) (*dto.NeighborhoodDTO, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	neighborhood := &models.Neighborhood{
		ID:       id,
		Slug:     req.Slug,
		Name:     req.Name,
		Zone:     req.Zone,
		IsActive: isActive,
	}

	var err error
	if id == 0 {
		err = s.catalogRepo.CreateNeighborhood(neighborhood)
	} else {
		err = s.catalogRepo.UpdateNeighborhood(neighborhood)
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.SanitizeDBError(err)
	}

	return &dto.NeighborhoodDTO{
		ID:   neighborhood.ID,
		Slug: neighborhood.Slug,
		Name: neighborhood.Name,
		Zone: neighborhood.Zone,
	}, nil
}
