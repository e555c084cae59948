// Package output writes ranked names as a single-column CSV file.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkoosis/babynames/pkg/names"
)

// Header is the only column of the output file.
const Header = "name"

// FileName is the default output name, e.g. "top_1000_girl_names.csv".
func FileName(n int, c names.Category) string {
	return fmt.Sprintf("top_%d_%s_names.csv", n, c.Label())
}

// WriteCSV writes the header row followed by one row per name.
func WriteCSV(w io.Writer, rows []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{Header}); err != nil {
		return err
	}
	for _, name := range rows {
		if err := cw.Write([]string{name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes rows to path. The file appears only once it is complete;
// on failure nothing is left at path or beside it.
func WriteFile(path string, rows []string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
