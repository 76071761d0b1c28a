package apperrors

import (
	"net/http"
	"strings"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
Все сообщения - фиксированный набор испанских текстов для пользователя;
детали исходных ошибок БД наружу не выходят.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "No encontrado", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Ya existe un registro con estos datos", http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Email o contraseña incorrectos",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Ya existe una cuenta con este email",
	http.StatusConflict,
)

// ErrEmailNotConfirmed - email не подтвержден.
var ErrEmailNotConfirmed = New(
	CodeForbidden,
	"auth",
	"Confirmá tu email antes de iniciar sesión",
	http.StatusForbidden,
)

// ErrWeakPassword - пароль не проходит политику сложности.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"La contraseña debe tener al menos 8 caracteres, una mayúscula y un número",
	http.StatusBadRequest,
)

// ErrRateLimited - слишком много попыток.
var ErrRateLimited = New(
	CodeRateLimited,
	"auth",
	"Demasiados intentos. Esperá unos minutos e intentá de nuevo.",
	http.StatusTooManyRequests,
)

// ErrInvalidToken - неверный или просроченный токен (refresh, confirm, reset).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"El enlace es inválido o expiró",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Operación no disponible para este tipo de cuenta",
	http.StatusBadRequest,
)

// --- Profile ---

// ErrProfileNotFound - профиль профессионала не найден.
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profesional no encontrado",
	http.StatusNotFound,
)

// ErrProfileAlreadyExists - у пользователя уже есть профиль.
var ErrProfileAlreadyExists = New(
	CodeAlreadyExists,
	"profile",
	"Ya tenés un perfil profesional creado",
	http.StatusConflict,
)

// ErrProfileInactive - профиль деактивирован и недоступен публично.
var ErrProfileInactive = New(
	CodeForbidden,
	"profile",
	"Este perfil no está disponible",
	http.StatusForbidden,
)

// --- Uploads ---

// ErrFileTooLarge - файл превышает максимальный размер.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"El archivo es demasiado grande. Máximo 5MB.",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME-тип файла не разрешен.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"Tipo de archivo no permitido. Usá JPG, PNG, WebP o GIF.",
	http.StatusUnsupportedMediaType,
)

// ErrPhotoQuotaExceeded - достигнут лимит фотографий тарифа.
var ErrPhotoQuotaExceeded = New(
	CodeLimitExceeded,
	"upload",
	"Alcanzaste el máximo de fotos de tu plan. Actualizá tu plan para subir más.",
	http.StatusForbidden,
)

// --- Маппинг ошибок БД ---

// SanitizeDBError переводит сырую ошибку БД в фиксированное
// пользовательское сообщение по подстроке, как того требует контракт:
// duplicate key / foreign key / row-level security -> конкретный текст,
// всё остальное -> generic "intentá de nuevo".
func SanitizeDBError(err error) *AppError {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key"):
		return Wrap(err, CodeAlreadyExists, "database", "Ya existe un registro con estos datos", http.StatusConflict)
	case strings.Contains(msg, "violates foreign key"):
		return Wrap(err, CodeConflict, "database", "Referencia inválida. Verificá los datos ingresados.", http.StatusBadRequest)
	case strings.Contains(msg, "row-level security"), strings.Contains(msg, "permission denied"):
		return Wrap(err, CodeForbidden, "database", "No tenés permisos para realizar esta acción", http.StatusForbidden)
	default:
		return Wrap(err, CodeDatabaseError, "database", "Ocurrió un error. Intentá de nuevo más tarde.", http.StatusInternalServerError)
	}
}
