// Package export persists the composed menu and rasterizes it to PDF.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
)

// Export stages.
const (
	StageHTML = "html"
	StagePDF  = "pdf"
)

// DefaultHTMLName is the file name of the HTML artifact.
const DefaultHTMLName = "menu_output.html"

// ErrNoBrowser indicates no browser binary could be found.
var ErrNoBrowser = errors.New("no Chrome/Chromium binary found in PATH")

// ExportError indicates the document could not be persisted (StageHTML) or
// rasterized (StagePDF). A StagePDF failure leaves a valid HTML artifact.
type ExportError struct {
	Stage string
	Path  string
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s to %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Rasterizer prints an HTML file to a PDF file.
type Rasterizer interface {
	Rasterize(ctx context.Context, htmlPath, pdfPath string) error
}

// Result lists the artifacts written by Export.
type Result struct {
	HTMLPath string
	// PDFPath is empty when no rasterizer is configured.
	PDFPath string
}

// Exporter writes the HTML artifact and hands it to a Rasterizer.
type Exporter struct {
	// Dir is the output directory, created if missing.
	Dir string
	// HTMLName is the HTML artifact file name.
	HTMLName string
	// Rasterizer produces the PDF. Nil skips rasterization.
	Rasterizer Rasterizer
	Logger     logging.Logger
	// Now stamps the PDF file name. Defaults to time.Now.
	Now func() time.Time
}

// Export writes doc to Dir and, when a rasterizer is set, prints it to
// menu-YYYYMMDD-HHMM.pdf next to it.
func (e *Exporter) Export(ctx context.Context, doc *models.Document) (Result, error) {
	log := logging.OrNop(e.Logger)

	htmlPath, err := e.WriteHTML(doc)
	if err != nil {
		return Result{}, err
	}
	log.Log(logging.LevelInfo, "HTML written", "path", htmlPath)

	res := Result{HTMLPath: htmlPath}
	if e.Rasterizer == nil {
		return res, nil
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	pdfPath := PDFPath(e.Dir, now())
	if err := e.Rasterizer.Rasterize(ctx, htmlPath, pdfPath); err != nil {
		return res, &ExportError{Stage: StagePDF, Path: pdfPath, Err: err}
	}
	log.Log(logging.LevelInfo, "PDF generated", "path", pdfPath)

	res.PDFPath = pdfPath
	return res, nil
}

// WriteHTML writes the document to Dir/HTMLName and returns the path.
func (e *Exporter) WriteHTML(doc *models.Document) (string, error) {
	name := e.HTMLName
	if name == "" {
		name = DefaultHTMLName
	}
	path := filepath.Join(e.Dir, name)

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", &ExportError{Stage: StageHTML, Path: e.Dir, Err: err}
	}
	if err := os.WriteFile(path, []byte(doc.HTML), 0644); err != nil {
		return "", &ExportError{Stage: StageHTML, Path: path, Err: err}
	}
	return path, nil
}

// PDFPath returns the timestamped PDF path inside dir.
func PDFPath(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("menu-%s.pdf", t.Format("20060102-1504")))
}
