// Package main provides the CLI entry point for menumaker.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ealfonsov89/menu-maker/pkg/menu"
	"github.com/ealfonsov89/menu-maker/pkg/menu/config"
	"github.com/ealfonsov89/menu-maker/pkg/menu/export"
	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"github.com/ealfonsov89/menu-maker/pkg/menu/logging/zaplog"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath   string
	templateGlob string
	outputDir    string
	pdfEngine    string
	browserBin   string
	logFile      string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "menumaker [input.xlsx]",
		Short: "Build a printable menu from an Excel workbook",
		Long: `menumaker reads price tables and offer cards from the sheets of a
workbook, renders them into one HTML menu and prints it to PDF.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: menumaker.yaml next to the executable)")
	pf.StringVar(&templateGlob, "templates", "", "Glob matching the template files")
	pf.StringVarP(&outputDir, "output-dir", "o", "", "Directory for the HTML and PDF artifacts")
	pf.StringVar(&pdfEngine, "pdf-engine", "", "PDF engine: rod, exec, none")
	pf.StringVar(&browserBin, "browser", "", "Chrome/Chromium binary")
	pf.StringVar(&logFile, "log-file", "", "Log file path")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug records")

	rootCmd.AddCommand(newWatchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(menu.ExitCode(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	inputPath, err := resolveInput(args, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		a.log.Log(logging.LevelError, "invalid input", "error", err)
		return err
	}

	if err := a.build(cmd.Context(), inputPath); err != nil {
		a.log.Log(logging.LevelError, "build failed", "path", inputPath, "error", err)
		return err
	}
	return nil
}

// app holds what a run needs after configuration is loaded.
type app struct {
	cfg      *config.Config
	log      logging.Logger
	closeLog func() error
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}

	logger, closeLog, err := zaplog.NewSink(zaplog.SinkConfig{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
	})
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("run", uuid.NewString()))

	return &app{cfg: cfg, log: zaplog.New(logger), closeLog: closeLog}, nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cfg *config.Config) error {
	if templateGlob != "" {
		cfg.Templates.Glob = templateGlob
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if pdfEngine != "" {
		cfg.PDF.Engine = pdfEngine
	}
	if browserBin != "" {
		cfg.PDF.Browser = browserBin
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg.Validate()
}

func (a *app) close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

// build runs the pipeline once and writes the artifacts.
func (a *app) build(ctx context.Context, inputPath string) error {
	doc, err := menu.Build(inputPath, menu.Options{
		TemplateGlob:  a.cfg.Templates.Glob,
		TemplateNames: a.cfg.Templates.Names,
		Currency:      a.cfg.Currency,
		Logger:        a.log,
	})
	if err != nil {
		return err
	}

	exporter := &export.Exporter{
		Dir:        a.cfg.Output.Dir,
		HTMLName:   a.cfg.Output.HTML,
		Rasterizer: a.rasterizer(),
		Logger:     a.log,
	}
	res, err := exporter.Export(ctx, doc)
	if err != nil {
		return err
	}

	a.log.Log(logging.LevelInfo, "menu built",
		"fragments", len(doc.Fragments), "html", res.HTMLPath, "pdf", res.PDFPath)
	return nil
}

func (a *app) rasterizer() export.Rasterizer {
	if a.cfg.PDF.Engine == config.EngineNone {
		return nil
	}
	return &export.BrowserRasterizer{
		Engine:  a.cfg.PDF.Engine,
		Browser: a.cfg.PDF.Browser,
		Timeout: a.cfg.PDF.Timeout,
	}
}

// resolveInput returns the workbook path from args, prompting on in when
// none was given.
func resolveInput(args []string, in io.Reader, out io.Writer) (string, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		fmt.Fprint(out, "Path to the .xlsx workbook: ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input path: %w", err)
		}
		raw = line
	}

	path := normalizePath(raw)
	if path == "" {
		return "", fmt.Errorf("%w: no input path given", menu.ErrFileNotFound)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", menu.ErrFileNotFound, path)
	}
	return path, nil
}

// normalizePath trims whitespace and converts backslashes to slashes so
// paths pasted from Windows shells resolve.
func normalizePath(raw string) string {
	path := strings.ReplaceAll(strings.TrimSpace(raw), `\`, "/")
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
