package integration_test

import (
	"encoding/json"
	"os"
	"sync"
	"testing"

	"rapifix_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	if globalTestServer == nil {
		t.Skip("TEST_DATABASE_URL is not set, skipping integration tests")
	}
	return globalTestServer
}

// extractJSONField достает строковое поле верхнего уровня из ответа.
func extractJSONField(t *testing.T, body, field string) string {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("Не удалось распарсить JSON: %v", err)
	}
	value, _ := parsed[field].(string)
	return value
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
