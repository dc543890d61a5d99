package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"roomchha/backend/internal/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"my photo (1).png", "my_photo_1_.png"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\evil.exe`, "evil.exe"},
		{"комната.jpg", "jpg"},
		{"a,b.png", "a_b.png"},
		{"...", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, upload.SanitizeFilename(tt.in), "input %q", tt.in)
	}
}

// buildMultipart returns parsed file headers for the given field/filename
// pairs, going through a real multipart round-trip.
func buildMultipart(t *testing.T, filenames []string) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/owner/rooms", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["images"]
}

func TestSaveAll_StoresFilesInOrder(t *testing.T) {
	saver, err := upload.NewSaver(t.TempDir())
	require.NoError(t, err)

	files := buildMultipart(t, []string{"front.png", "back door.jpg"})

	names, err := saver.SaveAll(upload.RoomArea, files)

	require.NoError(t, err)
	assert.Equal(t, []string{"front.png", "back_door.jpg"}, names)
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(saver.Root, upload.RoomArea, name))
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestSaveAll_SkipsEmptyEntries(t *testing.T) {
	saver, err := upload.NewSaver(t.TempDir())
	require.NoError(t, err)

	files := []*multipart.FileHeader{
		nil,
		{Filename: ""},
	}

	names, err := saver.SaveAll(upload.RoomArea, files)

	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestSaveAll_SkipsNamesThatSanitizeToNothing(t *testing.T) {
	saver, err := upload.NewSaver(t.TempDir())
	require.NoError(t, err)

	files := buildMultipart(t, []string{"...", "ok.png"})

	names, err := saver.SaveAll(upload.RoomArea, files)

	require.NoError(t, err)
	assert.Equal(t, []string{"ok.png"}, names)
}

func TestNewSaver_CreatesAreas(t *testing.T) {
	root := t.TempDir()
	_, err := upload.NewSaver(root)
	require.NoError(t, err)

	for _, area := range []string{upload.RoomArea, upload.ProfileArea} {
		info, err := os.Stat(filepath.Join(root, area))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
