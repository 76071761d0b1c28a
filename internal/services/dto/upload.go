package dto

// UploadPhotoResponse - результат загрузки фото
type UploadPhotoResponse struct {
	ID        string `json:"id,omitempty"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order,omitempty"`
}

// UpdateCaptionRequest - подпись к фото работы
type UpdateCaptionRequest struct {
	Caption string `json:"caption" binding:"max=200"`
}

// ReorderPhotosRequest - новый порядок фото в галерее
type ReorderPhotosRequest struct {
	PhotoIDs []string `json:"photo_ids" binding:"required,min=1,dive,uuid"`
}
