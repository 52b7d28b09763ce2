package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// TitleColumn is the required header naming the item title column.
	TitleColumn = "title"
	// TagsColumn is the required header naming the item tags column.
	TagsColumn = "tags"
)

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("catalog: missing required column")

// LoadCSVFile opens path and loads it with LoadCSV.
func LoadCSVFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	cat, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	return cat, nil
}

// LoadCSV reads a header row followed by one row per item. Only the title and
// tags columns are used; header names are matched case-insensitively. Rows
// with a missing or empty tags cell become empty-tag items.
func LoadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s (empty input)", ErrMissingColumn, TitleColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}
	titleCol, tagsCol := -1, -1
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch {
		case name == TitleColumn && titleCol < 0:
			titleCol = i
		case name == TagsColumn && tagsCol < 0:
			tagsCol = i
		}
	}
	if titleCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, TitleColumn)
	}
	if tagsCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, TagsColumn)
	}

	var items []Item
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: read row %d: %w", len(items)+1, err)
		}
		items = append(items, Item{
			Title: cell(record, titleCol),
			Tags:  cell(record, tagsCol),
		})
	}
	return New(items), nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
