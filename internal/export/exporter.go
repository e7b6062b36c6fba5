// Package export writes finished drawings to storage. It only ever sees an
// image snapshot, never the live canvas, so it can run off the UI goroutine.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNoDir is returned when the exporter has no directory to write to.
var ErrNoDir = errors.New("export: no output directory")

type Kind uint8

const (
	// Save keeps the drawing as drawing_N.png.
	Save Kind = iota
	// Share writes a uniquely named copy to hand to another app.
	Share
	// SavePDF keeps the drawing as drawing_N.pdf.
	SavePDF
)

func (k Kind) String() string {
	switch k {
	case Save:
		return "save"
	case Share:
		return "share"
	case SavePDF:
		return "pdf"
	}
	return "unknown"
}

const (
	savePrefix  = "drawing_"
	sharePrefix = "shared_"
)

// Config configures an Exporter.
type Config struct {
	// Dir receives the files; it is created on first use.
	Dir string

	// Logger for export outcomes. Defaults to slog.Default().
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

type Exporter struct {
	dir string
	log *slog.Logger
}

func New(cfg Config) *Exporter {
	cfg.defaults()
	return &Exporter{dir: cfg.Dir, log: cfg.Logger}
}

// Result is the outcome of one export.
type Result struct {
	Kind Kind
	Path string
	Err  error
}

// Export writes img as kind and returns the file path.
func (e *Exporter) Export(ctx context.Context, kind Kind, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var (
		path string
		err  error
	)
	switch kind {
	case Save:
		path, err = e.write(e.nextSaveName(".png"), img, WritePNG)
	case Share:
		path, err = e.write(sharePrefix+uuid.NewString()+".png", img, WritePNG)
	case SavePDF:
		path, err = e.write(e.nextSaveName(".pdf"), img, WritePDF)
	default:
		err = fmt.Errorf("export: unknown kind %d", kind)
	}
	if err != nil {
		e.log.Warn("export failed", "kind", kind, "error", err)
		return "", err
	}
	e.log.Info("exported", "kind", kind, "path", path)
	return path, nil
}

// Start runs Export on its own goroutine. The channel receives exactly one
// Result and is then closed. There is no retry; a failed export is reported
// once.
func (e *Exporter) Start(ctx context.Context, kind Kind, img image.Image) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		path, err := e.Export(ctx, kind, img)
		out <- Result{Kind: kind, Path: path, Err: err}
	}()
	return out
}

// WritePNG encodes img losslessly.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}

func (e *Exporter) write(name string, img image.Image, enc func(io.Writer, image.Image) error) (string, error) {
	if err := e.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := enc(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func (e *Exporter) ensureDir() error {
	if e.dir == "" {
		return ErrNoDir
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	return nil
}

// nextSaveName numbers saves after the pictures already in the directory,
// skipping numbers that are taken.
func (e *Exporter) nextSaveName(ext string) string {
	n := e.countExisting(ext) + 1
	for {
		name := fmt.Sprintf("%s%d%s", savePrefix, n, ext)
		if _, err := os.Stat(filepath.Join(e.dir, name)); errors.Is(err, os.ErrNotExist) {
			return name
		}
		n++
	}
}

// countExisting counts files of the same family: images for PNG, documents
// for PDF.
func (e *Exporter) countExisting(ext string) int {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		name := strings.ToLower(de.Name())
		switch ext {
		case ".png":
			if strings.HasSuffix(name, ".png") || strings.HasSuffix(name, ".jpg") {
				count++
			}
		default:
			if strings.HasSuffix(name, ext) {
				count++
			}
		}
	}
	return count
}
