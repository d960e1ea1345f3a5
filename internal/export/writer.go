package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/ploneconf-schedule/internal/schedule"
)

// Writer writes schedule rows as CSV records below a header line
type Writer struct {
	csv           *csv.Writer
	headerWritten bool
}

// NewWriter creates a Writer. Records end in CRLF, as the importer's
// Python csv reader expects by default.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &Writer{csv: cw}
}

// Write writes row, preceded by the header on first use
func (w *Writer) Write(row schedule.Row) error {
	if !w.headerWritten {
		if err := w.csv.Write(schedule.Columns); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		w.headerWritten = true
	}

	if err := w.csv.Write(row.Record()); err != nil {
		return fmt.Errorf("writing %s row %q: %w", row.Type, row.Title, err)
	}
	return nil
}

// Flush writes buffered records to the underlying writer
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// Create opens path for writing, truncating an existing file. A leading ~/
// is expanded to the home directory and missing parent directories are created.
func Create(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}
