package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"rapifix_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя, хешируя сырой пароль из
// PasswordHash. Подтверждение email включено по умолчанию.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	user.IsConfirmed = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	err := CreateUser(t, db, user)
	require.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, user
}

// CreateAndLoginSearcher создает искателя с уникальным email.
func CreateAndLoginSearcher(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("searcher_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, email, "Password1", models.UserRoleSearcher)
}

// CreateAndLoginProfessional создает профессионала с готовым профилем.
func CreateAndLoginProfessional(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User, *models.Profile) {
	email := fmt.Sprintf("pro_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, db, email, "Password1", models.UserRoleProfessional)

	var category models.Category
	require.NoError(t, db.Where("slug = ?", "plomeria").First(&category).Error)
	var neighborhood models.Neighborhood
	require.NoError(t, db.Where("slug = ?", "centro").First(&neighborhood).Error)

	profile := &models.Profile{
		UserID:       user.ID,
		Slug:         fmt.Sprintf("juan-perez-plomeria-centro-%d", time.Now().UnixNano()),
		FirstName:    "Juan",
		LastName:     "Pérez",
		Phone:        "3511234567",
		WhatsApp:     "3511234567",
		Email:        email,
		CategoryID:   category.ID,
		Description:  "Plomero matriculado con experiencia en urgencias.",
		Availability: models.AvailabilityAvailable,
		PriceRange:   models.PriceRangeMedium,
		Tier:         models.TierFree,
		IsActive:     true,
	}
	require.NoError(t, db.Create(profile).Error, "Не удалось создать профиль профессионала")
	require.NoError(t, db.Create(&models.ProfileNeighborhood{
		ProfileID:      profile.ID,
		NeighborhoodID: neighborhood.ID,
	}).Error)

	return token, user, profile
}
