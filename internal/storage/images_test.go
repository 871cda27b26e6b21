package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyport/internal/apperrors"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Boeing 747", "boeing-747"},
		{"Airbus A320neo", "airbus-a320neo"},
		{"  weird -- name!! ", "weird-name"},
		{"UPPER", "upper"},
		{"!!!", "airplane"},
		{"", "airplane"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func multipartFile(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func TestSaveAirplaneImage(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir)

	path, err := store.SaveAirplaneImage("Boeing 747", multipartFile(t, "photo.JPG"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, filepath.Join("airplanes", "boeing-747-")))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, path))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveAirplaneImageUniqueNames(t *testing.T) {
	store := NewImageStore(t.TempDir())

	first, err := store.SaveAirplaneImage("Boeing 747", multipartFile(t, "a.png"))
	require.NoError(t, err)
	second, err := store.SaveAirplaneImage("Boeing 747", multipartFile(t, "b.png"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveAirplaneImageRejectsUnknownFormat(t *testing.T) {
	store := NewImageStore(t.TempDir())

	_, err := store.SaveAirplaneImage("Boeing 747", multipartFile(t, "payload.exe"))

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
