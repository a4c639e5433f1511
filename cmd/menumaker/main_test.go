package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ealfonsov89/menu-maker/pkg/menu"
	"github.com/ealfonsov89/menu-maker/pkg/menu/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"menu.xlsx", "menu.xlsx"},
		{"  menus/carta.xlsx \n", "menus/carta.xlsx"},
		{`menus\carta.xlsx`, "menus/carta.xlsx"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.raw), "raw %q", tt.raw)
	}
}

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carta.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	t.Run("argument", func(t *testing.T) {
		got, err := resolveInput([]string{path}, strings.NewReader(""), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("prompt", func(t *testing.T) {
		var out bytes.Buffer
		got, err := resolveInput(nil, strings.NewReader(path+"\n"), &out)
		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.Contains(t, out.String(), "workbook")
	})

	t.Run("prompt without newline", func(t *testing.T) {
		got, err := resolveInput(nil, strings.NewReader(path), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := resolveInput([]string{filepath.Join(dir, "nope.xlsx")}, strings.NewReader(""), &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, menu.ErrFileNotFound))
		assert.Equal(t, 2, menu.ExitCode(err))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := resolveInput(nil, strings.NewReader("\n"), &bytes.Buffer{})
		assert.ErrorIs(t, err, menu.ErrFileNotFound)
	})
}

func TestApplyFlags(t *testing.T) {
	t.Cleanup(func() {
		templateGlob, outputDir, pdfEngine, browserBin, logFile, verbose = "", "", "", "", "", false
	})

	cfg := config.DefaultConfig()
	templateGlob = "tpl/*.html"
	outputDir = "out"
	pdfEngine = config.EngineNone
	verbose = true
	require.NoError(t, applyFlags(cfg))

	assert.Equal(t, "tpl/*.html", cfg.Templates.Glob)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, config.EngineNone, cfg.PDF.Engine)
	assert.Equal(t, "debug", cfg.Log.Level)

	pdfEngine = "wkhtmltopdf"
	assert.Error(t, applyFlags(config.DefaultConfig()))
}

func TestAppRasterizer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PDF.Engine = config.EngineNone
	assert.Nil(t, (&app{cfg: cfg}).rasterizer())

	cfg.PDF.Engine = config.EngineRod
	assert.NotNil(t, (&app{cfg: cfg}).rasterizer())
}
