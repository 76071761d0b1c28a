package integration_test

import (
	"net/http"
	"testing"

	"rapifix_backend/internal/models"
	"rapifix_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthFlow - регистрация, запрет входа до подтверждения email,
// подтверждение по ссылке и успешный вход.
func TestAuthFlow(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":      "nuevo@test.com",
		"password":   "Password1",
		"first_name": "María",
		"last_name":  "González",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, "Ответ: "+regBodyStr)
	assert.Contains(t, regBodyStr, "confirmar")

	// Вход до подтверждения запрещен
	loginBody := map[string]interface{}{
		"email":    "nuevo@test.com",
		"password": "Password1",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Confirmá tu email")

	// Подтверждаем токеном из БД (письмо в тестах не отправляется)
	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", "nuevo@test.com").First(&user).Error)
	require.NotEmpty(t, user.ConfirmToken)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	confirmURL := ts.Server.URL + "/api/auth/confirm?token_hash=" + user.ConfirmToken + "&type=signup"
	confRes, err := client.Get(confirmURL)
	require.NoError(t, err)
	confRes.Body.Close()
	assert.Equal(t, http.StatusFound, confRes.StatusCode)

	logRes2, logBodyStr2 := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes2.StatusCode, "Ответ: "+logBodyStr2)
	assert.Contains(t, logBodyStr2, "access_token")
}

// TestRegister_WeakPassword - политика пароля применяется на регистрации.
func TestRegister_WeakPassword(t *testing.T) {
	ts := GetTestServer(t)

	body := map[string]interface{}{
		"email":      "debil@test.com",
		"password":   "corta",
		"first_name": "Ana",
		"last_name":  "López",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "contraseña")
}

// TestRegister_DuplicateEmail - повторная регистрация на тот же email.
func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "duplicado@test.com",
		PasswordHash: "Password1",
		FirstName:    "Uno",
		LastName:     "Dos",
		Role:         models.UserRoleSearcher,
	})
	require.NoError(t, err)

	body := map[string]interface{}{
		"email":      "duplicado@test.com",
		"password":   "Password1",
		"first_name": "Otro",
		"last_name":  "Usuario",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Ya existe una cuenta")
}

// TestLogin_UnsafeRedirect - опасный redirect из формы входа
// заменяется на домашнюю страницу роли.
func TestLogin_UnsafeRedirect(t *testing.T) {
	ts := GetTestServer(t)

	_, user, _ := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "Password1",
		"redirect": "https://evil.example.com/phish",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"redirect":"/mi-perfil"`)
}

// TestRefreshToken_Rotation - refresh-токен одноразовый.
func TestRefreshToken_Rotation(t *testing.T) {
	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginSearcher(t, ts, ts.DB)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "Password1",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	refreshToken := extractJSONField(t, bodyStr, "refresh_token")

	refreshBody := map[string]interface{}{"refresh_token": refreshToken}
	res1, _ := ts.SendRequest(t, "POST", "/api/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusOK, res1.StatusCode)

	// Повторное использование того же токена отклоняется
	res2, _ := ts.SendRequest(t, "POST", "/api/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
}
