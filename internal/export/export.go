// Package export turns generated content into downloadable artifacts: a
// plain-text file, a printable HTML page, or the clipboard.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joestump/scribo/internal/catalog"
)

// TextContentType is the mime type of text exports.
const TextContentType = "text/plain; charset=utf-8"

// Artifact is a piece of generated content ready for export.
type Artifact struct {
	Kind        catalog.Kind
	Content     string
	GeneratedAt time.Time
}

// TextFilename is the download name for a text export, e.g.
// scribo-ai-script-1718000000000.txt.
func TextFilename(kind catalog.Kind, t time.Time) string {
	return fmt.Sprintf("scribo-ai-%s-%d.txt", kind, t.UnixMilli())
}

// PrintFilename is the file name used when a printable page is saved.
func PrintFilename(kind catalog.Kind, t time.Time) string {
	return fmt.Sprintf("scribo-ai-%s-%d.html", kind, t.UnixMilli())
}

// WriteText writes content unchanged.
func WriteText(w io.Writer, content string) error {
	_, err := io.WriteString(w, content)
	return err
}

// Exporter stores artifacts somewhere the user can reach them and reports
// where.
type Exporter interface {
	ExportText(ctx context.Context, a Artifact) (string, error)
	ExportPrintable(ctx context.Context, a Artifact) (string, error)
}

// DirExporter writes artifacts as files into a directory.
type DirExporter struct {
	Dir      string
	Markdown bool
}

func (d DirExporter) ExportText(_ context.Context, a Artifact) (string, error) {
	return d.write(TextFilename(a.Kind, a.GeneratedAt), func(w io.Writer) error {
		return WriteText(w, a.Content)
	})
}

func (d DirExporter) ExportPrintable(_ context.Context, a Artifact) (string, error) {
	return d.write(PrintFilename(a.Kind, a.GeneratedAt), func(w io.Writer) error {
		return WritePrintable(w, Document{Artifact: a, Markdown: d.Markdown})
	})
}

func (d DirExporter) write(name string, fill func(io.Writer) error) (string, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}
