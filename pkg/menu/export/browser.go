package export

import (
	"context"
	"os/exec"
	"time"

	"github.com/go-rod/rod/lib/launcher"
)

// Browser engines.
const (
	// EngineRod drives the browser over the DevTools protocol.
	EngineRod = "rod"
	// EngineExec runs the browser with --print-to-pdf.
	EngineExec = "exec"
)

// BrowserCandidates are looked up in PATH, in order.
var BrowserCandidates = []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}

// PrintFlags are passed to the browser, without the leading dashes.
// Values are empty for switches.
var PrintFlags = []struct {
	Name  string
	Value string
}{
	{"no-sandbox", ""},
	{"disable-gpu", ""},
	{"disable-dev-shm-usage", ""},
	{"enable-local-file-access", ""},
	{"force-device-scale-factor", "1"},
	{"disable-translate", ""},
}

// FindBrowser returns bin when set, else the first candidate found in PATH,
// else the browser rod knows about on this system.
func FindBrowser(bin string) (string, error) {
	if bin != "" {
		return exec.LookPath(bin)
	}
	for _, candidate := range BrowserCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	if path, ok := launcher.LookPath(); ok {
		return path, nil
	}
	return "", ErrNoBrowser
}

// BrowserRasterizer locates the browser when a print is requested and
// delegates to the configured engine.
type BrowserRasterizer struct {
	// Engine is EngineRod or EngineExec.
	Engine string
	// Browser is the binary to use. Empty searches BrowserCandidates.
	Browser string
	// Timeout bounds a single print. Zero means no limit besides ctx.
	Timeout time.Duration
}

// Rasterize implements Rasterizer.
func (r *BrowserRasterizer) Rasterize(ctx context.Context, htmlPath, pdfPath string) error {
	bin, err := FindBrowser(r.Browser)
	if err != nil {
		return err
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var engine Rasterizer = &ExecRasterizer{Bin: bin}
	if r.Engine == EngineRod {
		engine = &RodRasterizer{Bin: bin}
	}
	return engine.Rasterize(ctx, htmlPath, pdfPath)
}
