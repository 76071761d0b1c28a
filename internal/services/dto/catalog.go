package dto

// CatalogResponse - справочники для форм и фильтров
type CatalogResponse struct {
	Categories    []CategoryDTO     `json:"categories"`
	Neighborhoods []NeighborhoodDTO `json:"neighborhoods"`
}

// ZoneDTO - районы, сгруппированные по зоне города
type ZoneDTO struct {
	Zone          string            `json:"zone"`
	Neighborhoods []NeighborhoodDTO `json:"neighborhoods"`
}

// UpsertCategoryRequest - создание/правка рубрики из админки
type UpsertCategoryRequest struct {
	Slug      string `json:"slug" binding:"required,min=2,max=50"`
	Name      string `json:"name" binding:"required,min=2,max=50"`
	Icon      string `json:"icon" binding:"omitempty,max=50"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order" binding:"omitempty,min=0"`
}

// UpsertNeighborhoodRequest - создание/правка района из админки
type UpsertNeighborhoodRequest struct {
	Slug     string `json:"slug" binding:"required,min=2,max=50"`
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Zone     string `json:"zone" binding:"required,min=2,max=50"`
	IsActive *bool  `json:"is_active"`
}
