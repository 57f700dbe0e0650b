package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// encMode uses Core Deterministic Encoding so the same report always
// produces the same bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("report: CBOR encoder initialization failed: " + err.Error())
	}
}

// Export writes report into dir in the given format and returns the paths
// it created. CSV produces one file per sheet; JSON and CBOR a single file.
func Export(dir, format string, report *Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	switch format {
	case FormatCSV:
		return exportCSV(dir, report.Sheets)
	case FormatJSON, FormatCBOR:
		path := filepath.Join(dir, "report."+format)
		if err := writeFile(path, func(w io.Writer) error { return Encode(w, format, report) }); err != nil {
			return nil, err
		}
		return []string{path}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Encode serializes the whole report as JSON or CBOR.
func Encode(w io.Writer, format string, report *Report) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case FormatCBOR:
		return encMode.NewEncoder(w).Encode(report)
	default:
		return fmt.Errorf("unsupported encoding %q", format)
	}
}

// WriteCSV writes one sheet. Short rows are written as they are.
func WriteCSV(w io.Writer, sheet Sheet) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(sheet.Rows); err != nil {
		return fmt.Errorf("writing sheet %s: %w", sheet.Name, err)
	}
	return nil
}

func exportCSV(dir string, sheets []Sheet) ([]string, error) {
	paths := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		path := filepath.Join(dir, sheet.Name+".csv")
		if err := writeFile(path, func(w io.Writer) error { return WriteCSV(w, sheet) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
