package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ExecRasterizer prints to PDF by running the browser binary with
// --print-to-pdf.
type ExecRasterizer struct {
	// Bin is the browser binary.
	Bin string
}

// Args returns the command line for printing htmlPath to pdfPath.
func (r *ExecRasterizer) Args(htmlPath, pdfPath string) []string {
	args := []string{"--headless"}
	for _, f := range PrintFlags {
		if f.Value == "" {
			args = append(args, "--"+f.Name)
		} else {
			args = append(args, fmt.Sprintf("--%s=%s", f.Name, f.Value))
		}
	}
	return append(args,
		"--print-backgrounds",
		"--print-to-pdf="+pdfPath,
		htmlPath,
	)
}

// Rasterize implements Rasterizer.
func (r *ExecRasterizer) Rasterize(ctx context.Context, htmlPath, pdfPath string) error {
	absHTML, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}
	absPDF, err := filepath.Abs(pdfPath)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, r.Bin, r.Args(absHTML, absPDF)...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(r.Bin), err)
	}
	if _, err := os.Stat(absPDF); err != nil {
		return fmt.Errorf("browser exited without writing the PDF: %w", err)
	}
	return nil
}
