package integration_test

import (
	"net/http"
	"testing"

	"rapifix_backend/internal/models"
	"rapifix_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicProfile - публичная страница отдает профиль и JSON-LD.
func TestPublicProfile(t *testing.T) {
	ts := GetTestServer(t)

	_, _, profile := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res, body := ts.SendRequest(t, "GET", "/api/profesionales/"+profile.Slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	assert.Contains(t, body, "Juan Pérez")
	assert.Contains(t, body, `"@type":"LocalBusiness"`)
	assert.Contains(t, body, `"addressLocality":"Córdoba"`)
	assert.Contains(t, body, `"category":"Plomería"`)
	assert.Contains(t, body, `"areaServed":[{"@type":"Place","name":"Centro"}]`)
	// Без отзывов aggregateRating не публикуется
	assert.NotContains(t, body, "aggregateRating")
}

// TestPublicProfile_Inactive - деактивированный профиль отвечает 404.
func TestPublicProfile_Inactive(t *testing.T) {
	ts := GetTestServer(t)

	token, _, profile := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, "POST", "/api/mi-perfil/desactivar", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/profesionales/"+profile.Slug, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestReviewsAndRating - средний рейтинг считается по видимым
// отзывам с округлением до одного знака.
func TestReviewsAndRating(t *testing.T) {
	ts := GetTestServer(t)

	_, _, profile := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	for _, rating := range []int{5, 4, 4} {
		res, body := ts.SendRequest(t, "POST", "/api/profesionales/"+profile.Slug+"/resenas", "", map[string]interface{}{
			"author_name": "Cliente Contento",
			"rating":      rating,
			"comment":     "Excelente trabajo, muy recomendable.",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	}

	// 13/3 = 4.333... -> 4.3
	res, body := ts.SendRequest(t, "GET", "/api/profesionales/"+profile.Slug+"/resenas", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"avg_rating":4.3`)
	assert.Contains(t, body, `"review_count":3`)

	// Профиль с отзывами публикует aggregateRating в JSON-LD
	res, body = ts.SendRequest(t, "GET", "/api/profesionales/"+profile.Slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "aggregateRating")
	assert.Contains(t, body, `"ratingValue":4.3`)
}

// TestSearch - поиск фильтрует по рубрике и активности.
func TestSearch(t *testing.T) {
	ts := GetTestServer(t)

	_, _, profile := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res, body := ts.SendRequest(t, "GET", "/api/buscar?categoria=plomeria", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, profile.Slug)

	res, body = ts.SendRequest(t, "GET", "/api/buscar?categoria=jardineria", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, profile.Slug)
}

// TestContactFlow - форма контакта создает запись, клики по
// WhatsApp учитываются, владелец видит список в кабинете.
func TestContactFlow(t *testing.T) {
	ts := GetTestServer(t)

	proToken, _, profile := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res, body := ts.SendRequest(t, "POST", "/api/profesionales/"+profile.Slug+"/contacto", "", map[string]interface{}{
		"name":    "Laura Díaz",
		"email":   "laura@test.com",
		"message": "Hola, necesito arreglar una pérdida en la cocina.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	res, _ = ts.SendRequest(t, "POST", "/api/profesionales/"+profile.Slug+"/contacto/click", "", map[string]interface{}{
		"method": "whatsapp",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, "GET", "/api/mi-perfil/contactos", proToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "Laura Díaz")
	assert.Contains(t, body, `"total":2`)
}

// TestUpdateProfile_TierLimits - лимит описания бесплатного тарифа.
func TestUpdateProfile_TierLimits(t *testing.T) {
	ts := GetTestServer(t)

	token, _, profile := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}

	var neighborhood models.Neighborhood
	require.NoError(t, ts.DB.Where("slug = ?", "centro").First(&neighborhood).Error)

	res, body := ts.SendRequest(t, "PUT", "/api/mi-perfil", token, map[string]interface{}{
		"first_name":       profile.FirstName,
		"last_name":        profile.LastName,
		"phone":            profile.Phone,
		"email":            profile.Email,
		"description":      string(long),
		"category_id":      profile.CategoryID,
		"neighborhood_ids": []uint{neighborhood.ID},
		"availability":     "available",
		"price_range":      "medium",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "500")
}
