package loja

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxImportRows bounds one spreadsheet upload.
const MaxImportRows = 500

var ErrEmptySheet = errors.New("worksheet is empty")

var headerAliases = map[string]string{
	"nome":      "name",
	"name":      "name",
	"loja":      "name",
	"morada":    "address",
	"endereço":  "address",
	"address":   "address",
	"telefone":  "phone",
	"telemóvel": "phone",
	"phone":     "phone",
	"email":     "email",
	"e-mail":    "email",
}

// ImportRow is a valid spreadsheet line. Row is 1-based as shown by
// spreadsheet programs.
type ImportRow struct {
	Row   int
	Store StoreRequest
}

// RowError reports a spreadsheet line that could not become a store.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"error"`
}

// ReadStores reads the first worksheet of an xlsx file. The first row is the
// header; columns are matched by name in Portuguese or English. Invalid rows
// are reported and skipped, blank rows are ignored.
func ReadStores(r io.Reader) ([]ImportRow, []RowError, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("no worksheet found")
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}
	if len(rows)-1 > MaxImportRows {
		return nil, nil, fmt.Errorf("too many rows: %d (max %d)", len(rows)-1, MaxImportRows)
	}

	cols := map[string]int{"name": -1, "address": -1, "phone": -1, "email": -1}
	for i, h := range rows[0] {
		if key, ok := headerAliases[normalizeHeader(h)]; ok && cols[key] < 0 {
			cols[key] = i
		}
	}
	if cols["name"] < 0 {
		return nil, nil, fmt.Errorf("missing name column")
	}

	var (
		out  []ImportRow
		bad  []RowError
		seen = map[string]bool{}
	)
	for i, row := range rows[1:] {
		line := i + 2
		req := StoreRequest{
			Name:    cellValue(row, cols["name"]),
			Address: cellValue(row, cols["address"]),
			Phone:   cellValue(row, cols["phone"]),
			Email:   cellValue(row, cols["email"]),
		}
		if req == (StoreRequest{}) {
			continue
		}
		norm, err := req.Normalize()
		if err != nil {
			bad = append(bad, RowError{Row: line, Message: err.Error()})
			continue
		}
		key := strings.ToLower(norm.Name)
		if seen[key] {
			bad = append(bad, RowError{Row: line, Message: "loja repetida: " + norm.Name})
			continue
		}
		seen[key] = true
		out = append(out, ImportRow{Row: line, Store: norm})
	}
	return out, bad, nil
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
