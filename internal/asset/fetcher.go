package asset

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const _maxAssetSize = 512 * 1024 * 1024 // 512 MB

// Fetcher downloads remote assets into a local cache directory
type Fetcher struct {
	logger  *zap.Logger
	client  *http.Client
	dir     string
	maxSize int64
}

// NewFetcher creates a fetcher that stores downloads under dir
func NewFetcher(logger *zap.Logger, dir string) *Fetcher {
	return &Fetcher{
		logger: logger,
		client: &http.Client{
			Timeout: 5 * time.Minute,
		},
		dir:     dir,
		maxSize: _maxAssetSize,
	}
}

// isRemote reports whether source names an HTTP(S) resource
func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch downloads rawURL and returns the path of the local copy
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "mediastage/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if _, ok := kindFromMIME(contentType); !ok {
		return "", fmt.Errorf("url is not a media file: %s", contentType)
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	dest := filepath.Join(f.dir, uuid.NewString()+remoteExt(req.URL, contentType))
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}

	n, err := io.Copy(out, io.LimitReader(resp.Body, f.maxSize+1))
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && n > f.maxSize {
		err = fmt.Errorf("asset exceeds %d bytes", f.maxSize)
	}
	if err != nil {
		if rmErr := os.Remove(dest); rmErr != nil {
			f.logger.Warn("Failed to remove partial download", zap.String("path", dest), zap.Error(rmErr))
		}
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	f.logger.Debug("Asset fetched successfully",
		zap.Int64("bytes", n),
		zap.String("url", rawURL),
		zap.String("path", dest))
	return dest, nil
}

// remoteExt keeps the URL extension so the extension fallback in detectKind still works
func remoteExt(u *url.URL, contentType string) string {
	if ext := path.Ext(u.Path); ext != "" {
		return strings.ToLower(ext)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
