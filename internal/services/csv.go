package services

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// skipBOM drops a UTF-8 byte order mark if the stream starts with one.
// Windows spreadsheet exports routinely carry it and it would otherwise
// glue itself onto the first header.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(3)
	if err == nil && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	return br
}

// ReadCSV parses a comma-delimited UTF-8 file into header-keyed rows.
// Ragged rows are tolerated (short rows leave trailing fields absent);
// a file without a single data row is not an error here, the importer
// rejects empty imports itself.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
