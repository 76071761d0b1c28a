package integration_test

import (
	"net/http"
	"testing"

	"rapifix_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func getPage(t *testing.T, ts *helpers.TestServer, path, token string) *http.Response {
	req, err := http.NewRequest("GET", ts.Server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	res.Body.Close()
	return res
}

// TestGuard_GuestOnProtectedPage - гость уходит на логин
// с сохранением исходного пути.
func TestGuard_GuestOnProtectedPage(t *testing.T) {
	ts := GetTestServer(t)

	res := getPage(t, ts, "/mi-perfil", "")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login?redirect=/mi-perfil", res.Header.Get("Location"))
}

// TestGuard_SearcherOnDashboard - искателю кабинет недоступен.
func TestGuard_SearcherOnDashboard(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginSearcher(t, ts, ts.DB)

	res := getPage(t, ts, "/mi-perfil", token)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
}

// TestGuard_ProfessionalOnDashboard - профессионал проходит.
func TestGuard_ProfessionalOnDashboard(t *testing.T) {
	ts := GetTestServer(t)

	token, _, _ := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res := getPage(t, ts, "/mi-perfil", token)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestGuard_AuthedOnLoginPage - залогиненный не видит /login,
// его отправляют на домашнюю страницу роли.
func TestGuard_AuthedOnLoginPage(t *testing.T) {
	ts := GetTestServer(t)

	searcherToken, _ := helpers.CreateAndLoginSearcher(t, ts, ts.DB)
	res := getPage(t, ts, "/login", searcherToken)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))

	proToken, _, _ := helpers.CreateAndLoginProfessional(t, ts, ts.DB)
	res = getPage(t, ts, "/login", proToken)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/mi-perfil", res.Header.Get("Location"))
}

// TestGuard_AdminArea - админка только для админов.
func TestGuard_AdminArea(t *testing.T) {
	ts := GetTestServer(t)

	proToken, _, _ := helpers.CreateAndLoginProfessional(t, ts, ts.DB)
	res := getPage(t, ts, "/admin", proToken)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
}
