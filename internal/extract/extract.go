// Package extract pulls raw tables out of uploaded schedule documents.
// Supported formats are PDF (content-stream text heuristics) and DOCX
// (word/document.xml table walk). Both parsers are pure Go.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/schedule"
)

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
)

// Detect returns the document format based on file extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", filepath.Ext(path))
	}
}

// Extension returns the canonical file extension for a format.
func Extension(format Format) string {
	return "." + string(format)
}

// Tables extracts every table found in the document at path. An empty result
// with a nil error means the document was readable but held no tables; the
// schedule parser reports that case to the caller as a warning.
func Tables(path string) ([]schedule.RawTable, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatDocx:
		return docxTables(path)
	case FormatPDF:
		return pdfTables(path)
	default:
		return nil, fmt.Errorf("no parser for format: %s", format)
	}
}
