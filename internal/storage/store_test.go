package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/storage"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("profileImageFile", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["profileImageFile"][0]
}

func TestStager_SaveFileAndDiscard(t *testing.T) {
	// Given
	stager := storage.NewStager(filepath.Join(t.TempDir(), "staging"))
	header := newFileHeader(t, "Meeple.PNG", []byte("png-bytes"))

	// When
	info, err := stager.SaveFile(header)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Meeple.PNG", info.OriginalFilename)
	assert.Equal(t, ".png", filepath.Ext(info.SavedFilename))
	assert.NotEqual(t, info.OriginalFilename, info.SavedFilename)

	content, err := os.ReadFile(info.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)

	// When: discarded twice
	require.NoError(t, stager.Discard(info))
	require.NoError(t, stager.Discard(info))

	// Then
	_, err = os.Stat(info.LocalPath)
	assert.True(t, os.IsNotExist(err))
}

func TestStager_SavedNamesAreUnique(t *testing.T) {
	stager := storage.NewStager(t.TempDir())

	first, err := stager.SaveFile(newFileHeader(t, "same.jpg", []byte("a")))
	require.NoError(t, err)
	second, err := stager.SaveFile(newFileHeader(t, "same.jpg", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first.SavedFilename, second.SavedFilename)
}

func TestStore_PublishToDirectory(t *testing.T) {
	// Given
	publicDir := filepath.Join(t.TempDir(), "public")
	store := storage.NewStore(
		storage.NewStager(filepath.Join(t.TempDir(), "staging")),
		storage.NewDirPublisher(publicDir, "/images/"),
	)
	info, err := store.SaveFile(newFileHeader(t, "dice.jpg", []byte("jpg-bytes")))
	require.NoError(t, err)

	// When
	url, err := store.Publish(context.Background(), info)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "/images/"+info.SavedFilename, url)
	assert.Equal(t, url, store.URL(info.SavedFilename))

	content, err := os.ReadFile(filepath.Join(publicDir, info.SavedFilename))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpg-bytes"), content)
}

func TestNew_WithoutMinioUsesDirectory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		StagingDir: t.TempDir(),
		PublicDir:  t.TempDir(),
		URLPrefix:  "/images",
	}}

	store, err := storage.New(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, "/images/a.png", store.URL("a.png"))
}
