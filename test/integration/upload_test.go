package integration_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"rapifix_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes генерирует валидный PNG, который процессор сможет декодировать.
func pngBytes(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// gifBytes - минимальный GIF: заголовка достаточно для определения MIME-типа.
func gifBytes() []byte {
	return []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff\x3b")
}

// TestUploadAvatar_ReplacesOldFile - при замене аватара прежний файл
// удаляется из хранилища, а не копится под новым ключом.
func TestUploadAvatar_ReplacesOldFile(t *testing.T) {
	ts := GetTestServer(t)

	token, _, _ := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res, body := ts.SendFile(t, "POST", "/api/mi-perfil/foto", token, "avatar.png", pngBytes(t))
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	firstURL := extractJSONField(t, body, "url")
	require.NotEmpty(t, firstURL)

	res, _ = ts.SendRequest(t, "GET", firstURL, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendFile(t, "POST", "/api/mi-perfil/foto", token, "avatar2.png", pngBytes(t))
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	secondURL := extractJSONField(t, body, "url")
	require.NotEqual(t, firstURL, secondURL)

	// Старый файл больше не отдается, новый на месте.
	res, _ = ts.SendRequest(t, "GET", firstURL, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", secondURL, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestUpload_GifOnlyForWorkPhotos - gif допустим в галерее работ,
// но не в качестве аватара.
func TestUpload_GifOnlyForWorkPhotos(t *testing.T) {
	ts := GetTestServer(t)

	token, _, _ := helpers.CreateAndLoginProfessional(t, ts, ts.DB)

	res, _ := ts.SendFile(t, "POST", "/api/mi-perfil/foto", token, "avatar.gif", gifBytes())
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)

	res, body := ts.SendFile(t, "POST", "/api/mi-perfil/fotos", token, "trabajo.gif", gifBytes())
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
}
