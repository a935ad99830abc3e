// Package export handles the tabular input and output of the exporter: the
// identifier list read at startup and the repository metadata written at the
// end of a run.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultIdentifierColumn is the input column holding usernames.
const DefaultIdentifierColumn = "username"

// ReadIdentifiers reads the identifier column from a CSV file, preserving row
// order. A missing file or missing column is an error; the caller treats both
// as fatal startup failures. Empty cells are skipped.
func ReadIdentifiers(path, column string) ([]string, error) {
	if column == "" {
		column = DefaultIdentifierColumn
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	return readIdentifiers(file, column)
}

func readIdentifiers(r io.Reader, column string) ([]string, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columnIdx := -1
	for i, name := range header {
		if strings.TrimSpace(name) == column {
			columnIdx = i
			break
		}
	}
	if columnIdx == -1 {
		return nil, fmt.Errorf("input file has no %q column", column)
	}

	var identifiers []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if columnIdx >= len(row) {
			continue
		}
		if id := strings.TrimSpace(row[columnIdx]); id != "" {
			identifiers = append(identifiers, id)
		}
	}

	return identifiers, nil
}
