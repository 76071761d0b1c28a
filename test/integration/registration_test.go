package integration_test

import (
	"net/http"
	"testing"

	"rapifix_backend/internal/models"
	"rapifix_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistrationWizard_FullFlow - прохождение мастера от первого
// шага до создания профиля.
func TestRegistrationWizard_FullFlow(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginSearcher(t, ts, ts.DB)

	var category models.Category
	require.NoError(t, ts.DB.Where("slug = ?", "electricidad").First(&category).Error)
	var neighborhood models.Neighborhood
	require.NoError(t, ts.DB.Where("slug = ?", "alberdi").First(&neighborhood).Error)

	// Шаг 1: контактные данные (whatsapp не указан - возьмется телефон)
	res, body := ts.SendRequest(t, "POST", "/api/registro-profesional/datos-basicos", token, map[string]interface{}{
		"first_name": "Carlos",
		"last_name":  "Gómez",
		"phone":      "3517654321",
		"email":      user.Email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, `"step":"category"`)
	assert.Contains(t, body, `"whatsapp":"3517654321"`)

	// Шаг 2: рубрика
	res, body = ts.SendRequest(t, "POST", "/api/registro-profesional/rubro", token, map[string]interface{}{
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, `"step":"neighborhoods"`)

	// Шаг 3: барриос
	res, body = ts.SendRequest(t, "POST", "/api/registro-profesional/barrios", token, map[string]interface{}{
		"neighborhood_ids": []uint{neighborhood.ID},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, `"step":"description"`)

	// Шаг 4: описание - создается профиль
	res, body = ts.SendRequest(t, "POST", "/api/registro-profesional/descripcion", token, map[string]interface{}{
		"description":  "Electricista matriculado, urgencias las 24 horas.",
		"availability": "available",
		"price_range":  "medium",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "carlos-gomez-electricidad-alberdi")

	// Роль пользователя обновлена
	var updated models.User
	require.NoError(t, ts.DB.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, models.UserRoleProfessional, updated.Role)
}

// TestRegistrationWizard_StepOrder - шаги нельзя пропускать.
func TestRegistrationWizard_StepOrder(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginSearcher(t, ts, ts.DB)

	res, body := ts.SendRequest(t, "POST", "/api/registro-profesional/rubro", token, map[string]interface{}{
		"category_id": 1,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "paso actual")
}

// TestRegistrationWizard_BackPreservesData - возврат назад не теряет
// введенное, повторная отправка шага перезаписывает значения.
func TestRegistrationWizard_BackPreservesData(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginSearcher(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, "POST", "/api/registro-profesional/datos-basicos", token, map[string]interface{}{
		"first_name": "Pedro",
		"last_name":  "Suárez",
		"phone":      "3511111111",
		"email":      user.Email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/api/registro-profesional/atras", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"step":"basic_info"`)
	assert.Contains(t, body, "Pedro")

	// Данные шага можно поменять при повторной отправке
	res, body = ts.SendRequest(t, "POST", "/api/registro-profesional/datos-basicos", token, map[string]interface{}{
		"first_name": "Pablo",
		"last_name":  "Suárez",
		"phone":      "3511111111",
		"email":      user.Email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Pablo")
}

// TestRegistrationWizard_ExistingProfile - второй профиль не создать.
func TestRegistrationWizard_ExistingProfile(t *testing.T) {
	ts := GetTestServer(t)

	token, _, _ := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res, body := ts.SendRequest(t, "GET", "/api/registro-profesional", token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "Ya tenés un perfil")
}
