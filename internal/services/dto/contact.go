package dto

import "time"

// CreateContactRequest - обращение к профессионалу через форму.
// UserID не принимается с клиента: его подставляет сервер,
// если запрос аутентифицирован.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=50"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,min=8,max=20"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

// TrackContactRequest - фиксация клика по WhatsApp или телефону
type TrackContactRequest struct {
	Method string `json:"method" binding:"required,contact-method"`
}

// ContactDTO - обращение в кабинете профессионала
type ContactDTO struct {
	ID            string    `json:"id"`
	SearcherName  string    `json:"searcher_name"`
	SearcherEmail string    `json:"searcher_email,omitempty"`
	SearcherPhone string    `json:"searcher_phone,omitempty"`
	Message       string    `json:"message,omitempty"`
	Method        string    `json:"method"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContactListResponse - страница обращений
type ContactListResponse struct {
	Contacts []ContactDTO `json:"contacts"`
	Total    int64        `json:"total"`
}
