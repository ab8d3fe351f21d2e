// Package ingest reads the tabular skills dataset into domain records.
// The core never parses files itself; everything downstream consumes the
// ordered record slice produced here.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/honeycarbs/skillnet/internal/domain"
)

// Column headers expected in the upstream dataset.
const (
	colElementID   = "Element ID"
	colElementName = "Element Name"
	colRegion      = "Region"
)

// LoadCSV reads the skills dataset at path
func LoadCSV(path string) ([]domain.SkillRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return records, nil
}

// ReadRecords parses CSV rows into skill records, preserving row order.
// The Region column is optional; rows missing either required field are
// skipped rather than failing the whole load.
func ReadRecords(r io.Reader) ([]domain.SkillRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{colElementID, colElementName} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing required column: %s", required)
		}
	}

	idCol := idx[colElementID]
	nameCol := idx[colElementName]
	regionCol, hasRegion := idx[colRegion]

	var records []domain.SkillRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := domain.SkillRecord{}
		if idCol < len(row) {
			rec.ElementID = strings.TrimSpace(row[idCol])
		}
		if nameCol < len(row) {
			rec.ElementName = strings.TrimSpace(row[nameCol])
		}
		if hasRegion && regionCol < len(row) {
			rec.Region = strings.TrimSpace(row[regionCol])
		}

		if rec.ElementID == "" || rec.ElementName == "" {
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}
