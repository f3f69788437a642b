// Package images turns uploaded listing photos into servable URLs through
// an ordered fallback chain: remote asset host, local disk, placeholders.
package images

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/aykutolcay94-gif/buildestate/config"
)

// Placeholder images used when a listing is created without any photos, so
// no listing is ever imageless.
var PlaceholderURLs = []string{
	"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800",
	"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800",
}

// UploadedFile is a photo already spooled to a temp file on disk.
type UploadedFile struct {
	Path string // temp file location
	Name string // original file name
}

type Uploader interface {
	Upload(ctx context.Context, files []UploadedFile) ([]string, error)
}

// Chain tries each tier in order and short-circuits on the first success.
// Temp files are removed on every path, success or failure.
type Chain struct {
	tiers []Uploader
}

func NewChain(tiers ...Uploader) *Chain {
	return &Chain{tiers: tiers}
}

// Ingest converts the uploaded files into public URLs. Zero files yields
// the placeholder pair; otherwise an error means every tier failed.
func (c *Chain) Ingest(ctx context.Context, files []UploadedFile) ([]string, error) {
	if len(files) == 0 {
		return append([]string(nil), PlaceholderURLs...), nil
	}
	defer cleanup(files)

	var lastErr error
	for _, tier := range c.tiers {
		urls, err := tier.Upload(ctx, files)
		if err == nil {
			return urls, nil
		}
		lastErr = err
		config.Log.Warn("görsel yükleme katmanı başarısız, sonraki katman deneniyor", zap.Error(err))
	}
	return nil, fmt.Errorf("görseller yüklenemedi: %w", lastErr)
}

// cleanup removes whatever temp files are still around. Deletion errors
// are logged, never raised.
func cleanup(files []UploadedFile) {
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
			config.Log.Warn("geçici dosya silinemedi", zap.String("path", f.Path), zap.Error(err))
		}
	}
}

// LocalDiskUploader moves files into a statically served directory and
// builds locally rooted URLs, the tier used when the asset host is absent
// or failing.
type LocalDiskUploader struct {
	Dir     string
	BaseURL string
}

func NewLocalDiskUploader() *LocalDiskUploader {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}
	return &LocalDiskUploader{Dir: dir, BaseURL: baseURL}
}

func (u *LocalDiskUploader) Upload(_ context.Context, files []UploadedFile) ([]string, error) {
	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(f.Name))
		dest := filepath.Join(u.Dir, name)
		if err := moveFile(f.Path, dest); err != nil {
			return nil, err
		}
		urls = append(urls, fmt.Sprintf("%s/uploads/%s", u.BaseURL, name))
	}
	return urls, nil
}

// moveFile renames when possible and falls back to copy when the temp dir
// sits on a different filesystem.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	return os.Remove(src)
}

var _ Uploader = (*LocalDiskUploader)(nil)
