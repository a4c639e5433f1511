package menu

import (
	"errors"
	"fmt"

	"github.com/ealfonsov89/menu-maker/pkg/menu/export"
	"github.com/ealfonsov89/menu-maker/pkg/menu/parser"
	"github.com/ealfonsov89/menu-maker/pkg/menu/render"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// SourceAccessError indicates the workbook or one of its sheets cannot be read.
type SourceAccessError struct {
	Path      string
	SheetName string // empty when the workbook itself failed to open
	Err       error
}

func (e *SourceAccessError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("cannot open workbook %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read sheet %q of %s: %v", e.SheetName, e.Path, e.Err)
}

func (e *SourceAccessError) Unwrap() error {
	return e.Err
}

// Errors raised by the pipeline stages.
type (
	SchemaError      = parser.SchemaError
	RowDecodeError   = parser.RowDecodeError
	ValueFormatError = parser.ValueFormatError
	TemplateError    = render.TemplateError
	ExportError      = export.ExportError
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindNone Kind = iota
	KindUnknown
	KindSourceAccess
	KindSchema
	KindRowDecode
	KindTemplate
	KindExportHTML
	KindExportPDF
)

// KindOf returns the kind of the first pipeline error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var (
		sourceErr *SourceAccessError
		schemaErr *SchemaError
		rowErr    *RowDecodeError
		tmplErr   *TemplateError
		exportErr *ExportError
	)
	switch {
	case errors.As(err, &sourceErr), errors.Is(err, ErrFileNotFound):
		return KindSourceAccess
	case errors.As(err, &schemaErr):
		return KindSchema
	case errors.As(err, &rowErr):
		return KindRowDecode
	case errors.As(err, &tmplErr):
		return KindTemplate
	case errors.As(err, &exportErr):
		if exportErr.Stage == export.StagePDF {
			return KindExportPDF
		}
		return KindExportHTML
	}
	return KindUnknown
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch KindOf(err) {
	case KindNone:
		return 0
	case KindSourceAccess:
		return 2
	case KindSchema:
		return 3
	case KindRowDecode:
		return 4
	case KindTemplate:
		return 5
	case KindExportHTML:
		return 6
	case KindExportPDF:
		return 7
	}
	return 1
}
