// Package parsers turns raw justice.cz payloads (open data CSV exports and
// filed PDF documents) into normalized records.
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/gtdn/registry-api/internal/models"
)

// csvColumns maps Czech export headers to normalized record fields. Exports
// older than ~2015 use Windows-1250; everything newer is UTF-8.
var csvColumns = map[string]string{
	"ico":              "ico",
	"nazev":            "name",
	"pravni_forma":     "legal_form",
	"sidlo":            "address",
	"rejstrikovy_soud": "registry_court",
	"spisova_znacka":   "file_number",
	"datum_zapisu":     "registration_date",
}

// CompanyCSVParser parses company exports from the justice.cz open data portal
type CompanyCSVParser struct{}

// NewCompanyCSVParser creates a new CSV parser
func NewCompanyCSVParser() *CompanyCSVParser {
	return &CompanyCSVParser{}
}

// CompanyCSVIterator yields one record per data row. It is forward-only and
// single-pass; restarting requires calling Stream again with the same bytes.
type CompanyCSVIterator struct {
	reader *csv.Reader
	// header column index per Czech column name; -1 when the column is absent
	columns map[string]int
}

// Stream opens an iterator over the raw export bytes. The header row is
// consumed immediately so column mapping errors surface before the first Next.
func (p *CompanyCSVParser) Stream(raw []byte) (*CompanyCSVIterator, error) {
	text, err := decodeCzech(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make(map[string]int, len(csvColumns))
	for czech := range csvColumns {
		columns[czech] = -1
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, known := csvColumns[name]; known {
			columns[name] = i
		}
	}

	return &CompanyCSVIterator{reader: reader, columns: columns}, nil
}

// ParseAll drains the stream into a fully materialized list
func (p *CompanyCSVParser) ParseAll(raw []byte) ([]models.CompanyCSVRecord, error) {
	iter, err := p.Stream(raw)
	if err != nil {
		return nil, err
	}

	records := make([]models.CompanyCSVRecord, 0)
	for {
		record, err := iter.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
}

// Next returns the next record, or io.EOF when the rows are exhausted.
// Missing columns yield empty strings and every value is trimmed.
func (it *CompanyCSVIterator) Next() (*models.CompanyCSVRecord, error) {
	row, err := it.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv row: %w", err)
	}

	record := &models.CompanyCSVRecord{
		Ico:              it.cell(row, "ico"),
		Name:             it.cell(row, "nazev"),
		LegalForm:        it.cell(row, "pravni_forma"),
		Address:          it.cell(row, "sidlo"),
		RegistryCourt:    it.cell(row, "rejstrikovy_soud"),
		FileNumber:       it.cell(row, "spisova_znacka"),
		RegistrationDate: it.cell(row, "datum_zapisu"),
	}
	return record, nil
}

func (it *CompanyCSVIterator) cell(row []string, column string) string {
	idx := it.columns[column]
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// decodeCzech decodes as UTF-8 and falls back to Windows-1250 exactly once
func decodeCzech(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1250.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding csv bytes: %w", err)
	}
	return string(decoded), nil
}
