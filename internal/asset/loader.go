package asset

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/genricoloni/mediastage/internal/domain"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

const _sniffLength = 512

// commandRunner executes a probe binary and returns its stdout
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Loader classifies user-selected files and resolves their metadata
type Loader struct {
	logger  *zap.Logger
	ffprobe string
	run     commandRunner
	fetcher *Fetcher
}

// NewLoader creates an asset loader that probes clips with the configured ffprobe binary
func NewLoader(logger *zap.Logger, cfg domain.Config) *Loader {
	return &Loader{
		logger:  logger,
		ffprobe: cfg.GetFFprobePath(),
		run:     runCommand,
		fetcher: NewFetcher(logger, filepath.Join(os.TempDir(), "mediastage")),
	}
}

// Load inspects path. Image headers are decoded to validate them; the pixels
// are decoded once, by the element that owns them. Clips are probed for their
// duration, which must be known before an item can be built.
// HTTP(S) sources are downloaded first.
func (l *Loader) Load(ctx context.Context, path string) (domain.Asset, error) {
	if isRemote(path) {
		if l.fetcher == nil {
			return domain.Asset{}, fmt.Errorf("remote assets are not supported: %s", path)
		}
		local, err := l.fetcher.Fetch(ctx, path)
		if err != nil {
			return domain.Asset{}, err
		}
		path = local
	}

	kind, err := detectKind(path)
	if err != nil {
		return domain.Asset{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	switch kind {
	case domain.KindImage:
		cfg, err := decodeImageConfig(abs)
		if err != nil {
			return domain.Asset{}, fmt.Errorf("failed to decode image: %w", err)
		}
		l.logger.Info("Image asset loaded",
			zap.String("path", abs),
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height))
		return domain.Asset{
			Kind:          domain.KindImage,
			Source:        abs,
			NaturalWidth:  cfg.Width,
			NaturalHeight: cfg.Height,
		}, nil

	default:
		duration, err := l.probeDuration(ctx, abs)
		if err != nil {
			return domain.Asset{}, err
		}
		l.logger.Info("Video asset loaded",
			zap.String("path", abs),
			zap.Float64("duration", duration))
		return domain.Asset{
			Kind:            domain.KindVideo,
			Source:          abs,
			NaturalDuration: duration,
		}, nil
	}
}

// probeDuration asks ffprobe for the container duration in seconds
func (l *Loader) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := l.run(ctx, l.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	raw := strings.TrimSpace(string(out))
	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("invalid duration %q: must be positive", raw)
	}
	return duration, nil
}

// decodeImageConfig reads the image header: format and dimensions
func decodeImageConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Config{}, fmt.Errorf("empty image %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// detectKind sniffs the file header and falls back to the extension
func detectKind(path string) (domain.MediaKind, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open asset: %w", err)
	}
	defer f.Close()

	head := make([]byte, _sniffLength)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read asset: %w", err)
	}

	if kind, ok := kindFromMIME(http.DetectContentType(head[:n])); ok {
		return kind, nil
	}
	if kind, ok := kindFromMIME(mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))); ok {
		return kind, nil
	}
	return "", fmt.Errorf("unsupported asset type: %s", filepath.Base(path))
}

func kindFromMIME(contentType string) (domain.MediaKind, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return domain.KindImage, true
	case strings.HasPrefix(contentType, "video/"):
		return domain.KindVideo, true
	}
	return "", false
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("%w (stderr: %s)", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}
