package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fsj-lavagens/internal/domain"
)

// Required and optional header names of the vehicle import file.
const (
	HeaderPlate     = "PLATE"
	HeaderClass     = "VEHICLE CLASS"
	HeaderMakeModel = "MAKE/MODEL"
)

// VehicleRegistrar is the subset of the vehicle service the importer needs.
// Every row goes through the same validation as a manual registration.
type VehicleRegistrar interface {
	Register(ctx context.Context, plate, class, makeModel string) (*domain.Vehicle, error)
}

// RowError records one failed row; Row is the 1-based data row index.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result reports how a run went. Rows are independent: failures never abort
// the remaining rows.
type Result struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors,omitempty"`
}

// CSVImporter reads a vehicle CSV export and registers each row.
type CSVImporter struct {
	reader    *csv.Reader
	registrar VehicleRegistrar
}

func NewCSVImporter(r io.Reader, registrar VehicleRegistrar) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:    csvr,
		registrar: registrar,
	}
}

// Run validates the header and processes every data row. A header missing a
// required column fails the whole run before any row is touched.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	for _, required := range []string{HeaderPlate, HeaderClass} {
		if _, ok := index[required]; !ok {
			return Result{}, fmt.Errorf("column %q: %w", required, domain.ErrMissingColumns)
		}
	}

	var (
		result Result
		rowNum int
	)
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("read row: %w", err)
		}
		rowNum++

		plate := pick(record, index, HeaderPlate)
		class := strings.ToUpper(pick(record, index, HeaderClass))
		makeModel := pick(record, index, HeaderMakeModel)

		if _, err := i.registrar.Register(ctx, plate, class, makeModel); err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	return result, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
