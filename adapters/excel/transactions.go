// Package excel imports bank transaction exports from spreadsheet files.
package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"lifelens/domain/core"
	"lifelens/domain/signal"
	"lifelens/internal/errors"
)

// Expected header columns, matched case-insensitively by name so column
// order in the export does not matter.
const (
	colDate     = "date"
	colAmount   = "amount"
	colGroup    = "group"
	colCategory = "category"
	colMerchant = "merchant"
)

// TransactionReader reads transactions from Excel (.xlsx, Sheet1) or CSV
// exports
type TransactionReader struct{}

// NewTransactionReader creates a spreadsheet transaction reader
func NewTransactionReader() *TransactionReader {
	return &TransactionReader{}
}

// ReadFile loads all transactions from the given spreadsheet
func (r *TransactionReader) ReadFile(path string) ([]signal.Transaction, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("transaction export %s", path))
	}

	var rows [][]string
	var err error
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		rows, err = readCSVRows(path)
	} else {
		rows, err = readExcelRows(path)
	}
	if err != nil {
		return nil, err
	}

	return parseRows(rows)
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV rows")
	}
	return rows, nil
}

func parseRows(rows [][]string) ([]signal.Transaction, error) {
	if len(rows) < 1 {
		return []signal.Transaction{}, nil
	}

	cols := indexColumns(rows[0])
	for _, required := range []string{colDate, colAmount} {
		if _, ok := cols[required]; !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("transaction export missing %q column", required))
		}
	}

	txs := make([]signal.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		tx, err := parseRow(row, cols)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
		if tx == nil {
			continue
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// parseRow converts one data row, skipping fully blank rows. Amounts are
// parsed through decimal so "1,234.56" style exports do not lose cents to
// float parsing quirks.
func parseRow(row []string, cols map[string]int) (*signal.Transaction, error) {
	dateStr := cellAt(row, cols, colDate)
	amountStr := cellAt(row, cols, colAmount)
	if dateStr == "" && amountStr == "" {
		return nil, nil
	}

	date, err := core.ParseDateKey(dateStr)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(amountStr)
	if err != nil {
		return nil, err
	}

	return &signal.Transaction{
		Date:     date,
		Amount:   amount,
		Group:    cellAt(row, cols, colGroup),
		Category: cellAt(row, cols, colCategory),
		Merchant: cellAt(row, cols, colMerchant),
	}, nil
}

func parseAmount(s string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", "$", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("bad amount %q", s))
	}
	f, _ := d.Float64()
	return f, nil
}

func cellAt(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
