package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// contextCheckInterval is how often (in rows) the reader polls for
// cancellation.
const contextCheckInterval = 100

// Source produces the ordered sequence of flat records. Each call restarts
// from the first row.
type Source interface {
	Each(ctx context.Context, fn func(RawRecord) error) error
}

// FileSource reads the platform export: ISO-8859-1 text, one header row,
// delimiter-separated values.
type FileSource struct {
	path      string
	delimiter rune
}

func NewFileSource(path string, delimiter rune) *FileSource {
	if delimiter == 0 {
		delimiter = ';'
	}
	return &FileSource{path: path, delimiter: delimiter}
}

// Each streams every data row to fn in file order. The file is reopened on
// every call, so the sequence is restartable.
func (s *FileSource) Each(ctx context.Context, fn func(RawRecord) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	r.Comma = s.delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("source file %s has no header row", s.path)
		}
		return fmt.Errorf("reading header row: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[cleanHeader(h)] = i
	}

	for row := 0; ; row++ {
		if row%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("read cancelled at row %d: %w", row, err)
			}
		}

		values, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading row %d: %w", row, err)
		}

		if err := fn(newRawRecord(columns, values)); err != nil {
			return err
		}
	}
}

func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	return strings.TrimSpace(h)
}
