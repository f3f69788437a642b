package images

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykutolcay94-gif/buildestate/config"
)

func TestMain(m *testing.M) {
	config.InitLogger()
	os.Exit(m.Run())
}

type failingUploader struct{}

func (failingUploader) Upload(context.Context, []UploadedFile) ([]string, error) {
	return nil, errors.New("asset host unreachable")
}

func tempUpload(t *testing.T, name string) UploadedFile {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "spool-*")
	require.NoError(t, err)
	_, err = f.WriteString("not really a jpeg")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return UploadedFile{Path: f.Name(), Name: name}
}

func TestIngestZeroFilesYieldsPlaceholders(t *testing.T) {
	chain := NewChain(failingUploader{})

	urls, err := chain.Ingest(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderURLs, urls)
}

func TestIngestLocalDisk(t *testing.T) {
	dir := t.TempDir()
	chain := NewChain(&LocalDiskUploader{Dir: dir, BaseURL: "http://localhost:4000"})

	upload := tempUpload(t, "salon.jpg")
	urls, err := chain.Ingest(context.Background(), []UploadedFile{upload})
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.True(t, strings.HasPrefix(urls[0], "http://localhost:4000/uploads/"))
	assert.True(t, strings.HasSuffix(urls[0], "_salon.jpg"))

	// the file landed in the serving directory and the temp copy is gone
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	_, err = os.Stat(upload.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestIngestFallsThroughFailingTier(t *testing.T) {
	dir := t.TempDir()
	chain := NewChain(failingUploader{}, &LocalDiskUploader{Dir: dir, BaseURL: "http://localhost:4000"})

	upload := tempUpload(t, "cephe.png")
	urls, err := chain.Ingest(context.Background(), []UploadedFile{upload})
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Contains(t, urls[0], "/uploads/")
}

func TestIngestAllTiersFail(t *testing.T) {
	chain := NewChain(failingUploader{})

	upload := tempUpload(t, "bahce.jpg")
	_, err := chain.Ingest(context.Background(), []UploadedFile{upload})
	require.Error(t, err)

	// temp files are removed on the failure path too
	_, statErr := os.Stat(upload.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalUploaderKeepsBaseName(t *testing.T) {
	dir := t.TempDir()
	u := &LocalDiskUploader{Dir: dir, BaseURL: "http://localhost:4000"}

	upload := tempUpload(t, filepath.Join("..", "evil.jpg"))
	urls, err := u.Upload(context.Background(), []UploadedFile{upload})
	require.NoError(t, err)
	assert.NotContains(t, urls[0], "..")
}
