// Package sample parses uploaded tabular files into a bounded preview: a
// placeholder schema built from the header row and a re-serialized text
// sample of at most a few data rows.
package sample

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"datawarden/internal/domain"
)

// Extract parses file data in the given format, keeping the header row and
// at most maxRows data rows. Field types are never inferred; every field
// gets the literal placeholder type.
func Extract(fileName string, format domain.SampleFormat, data []byte, maxRows int) (*domain.Extraction, error) {
	var (
		rows [][]string
		err  error
	)
	if format == domain.SampleFormatXLSX {
		rows, err = readXLSX(data, maxRows)
	} else {
		rows, err = readDelimited(data, format.Delimiter(), maxRows)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyFile
	}

	header := rows[0]
	fields := make([]domain.Field, 0, len(header))
	for _, name := range header {
		fields = append(fields, domain.Field{Name: name, Type: domain.FieldTypeUnknown})
	}

	schemaText, err := json.MarshalIndent(domain.Schema{Name: fileName, Fields: fields}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing schema: %w", err)
	}

	sampleText, err := serialize(rows, format.Delimiter())
	if err != nil {
		return nil, fmt.Errorf("serializing sample: %w", err)
	}

	return &domain.Extraction{
		SchemaText: string(schemaText),
		SampleText: sampleText,
		Fields:     fields,
	}, nil
}

// readDelimited reads the header plus up to maxRows data rows from CSV/TSV
// data. Fully empty rows are skipped so the first real row acts as header.
func readDelimited(data []byte, delimiter rune, maxRows int) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	r.FieldsPerRecord = -1

	var rows [][]string
	for len(rows) < maxRows+1 {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrSampleParse, err)
		}
		if isEmptyRow(record) {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// readXLSX reads the first sheet of an XLSX workbook.
func readXLSX(data []byte, maxRows int) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSampleParse, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrSampleParse)
	}
	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSampleParse, err)
	}

	var rows [][]string
	for _, record := range all {
		if isEmptyRow(record) {
			continue
		}
		rows = append(rows, record)
		if len(rows) == maxRows+1 {
			break
		}
	}
	return rows, nil
}

// serialize writes rows back out in the same tabular text form the input used.
func serialize(rows [][]string, delimiter rune) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	w.Flush()
	return buf.String(), w.Error()
}

func isEmptyRow(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
