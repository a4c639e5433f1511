package export

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
)

// RodRasterizer prints to PDF through the DevTools protocol, driving a
// headless browser launched with PrintFlags.
type RodRasterizer struct {
	// Bin is the browser binary.
	Bin string
}

func (r *RodRasterizer) launcher() *launcher.Launcher {
	l := launcher.New().Bin(r.Bin).Headless(true).Leakless(false)
	for _, f := range PrintFlags {
		if f.Value == "" {
			l = l.Set(flags.Flag(f.Name))
		} else {
			l = l.Set(flags.Flag(f.Name), f.Value)
		}
	}
	return l
}

// Rasterize implements Rasterizer.
func (r *RodRasterizer) Rasterize(ctx context.Context, htmlPath, pdfPath string) error {
	absHTML, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}

	l := r.launcher().Context(ctx)
	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to browser: %w", err)
	}
	defer browser.Close()

	fileURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(absHTML)}).String()
	page, err := browser.Page(proto.TargetCreateTarget{URL: fileURL})
	if err != nil {
		return fmt.Errorf("open %s: %w", fileURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("load %s: %w", fileURL, err)
	}

	scale := 1.0
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		Scale:             &scale,
	})
	if err != nil {
		return fmt.Errorf("print to pdf: %w", err)
	}

	out, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, stream); err != nil {
		out.Close()
		return fmt.Errorf("write pdf: %w", err)
	}
	return out.Close()
}
