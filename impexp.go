package chaucha

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/chaucha/date"
)

// this file contains the bank statement import and the CSV exports.
//
// The import format is a CSV file with a header row. Columns are matched by
// name, in any order, in English or Spanish:
//
//	date (fecha), description (descripcion), amount (monto), category (categoria), fixed (fijo)
//
// The "fixed" column is optional. The separator is ',' or ';'.

// DefaultCategory is given to imported transactions without a category.
const DefaultCategory = "Otros"

var columnAliases = map[string]string{
	"date":        "date",
	"fecha":       "date",
	"description": "description",
	"descripcion": "description",
	"descripción": "description",
	"detalle":     "description",
	"amount":      "amount",
	"monto":       "amount",
	"category":    "category",
	"categoria":   "category",
	"categoría":   "category",
	"fixed":       "fixed",
	"fijo":        "fixed",
}

var requiredColumns = []string{"date", "description", "amount"}

// ImportCSV reads transactions from a bank statement in CSV.
//
// Dates are normalized to YYYY-MM-DD and every transaction gets a fresh id.
// Any invalid row fails the whole import.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read statement: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte("\ufeff")) // spreadsheet exports often start with a BOM

	cr := csv.NewReader(bytes.NewReader(content))
	cr.Comma = detectSeparator(content)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("statement is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read statement header: %w", err)
	}
	columns := make(map[string]int)
	for i, name := range header {
		if col, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			columns[col] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("statement header %q has no %q column", strings.Join(header, string(cr.Comma)), col)
		}
	}

	var txs []Transaction
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read statement: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		tx, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// parseRecord converts a CSV record into a transaction.
func parseRecord(record []string, columns map[string]int) (Transaction, error) {
	field := func(col string) string {
		i, ok := columns[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	day, err := date.Normalize(field("date"))
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(field("amount"))
	if err != nil {
		return Transaction{}, err
	}
	fixed, err := parseFlag(field("fixed"))
	if err != nil {
		return Transaction{}, err
	}
	category := field("category")
	if category == "" {
		category = DefaultCategory
	}
	return Transaction{
		ID:          NewID(),
		Date:        day,
		Description: field("description"),
		Amount:      amount,
		Category:    category,
		IsFixed:     fixed,
	}, nil
}

// ParseAmount parses a whole amount as written by users or banks: "-12.500",
// "$ 45000" or "12500". Dots and spaces are thousand separators.
func ParseAmount(s string) (Amount, error) {
	clean := strings.NewReplacer("$", "", ".", "", " ", "", "\u00a0", "").Replace(s)
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: want a whole number", s)
	}
	return Amount(v), nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "no", "n":
		return false, nil
	case "si", "sí", "yes", "x":
		return true, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid fixed flag %q", s)
	}
	return b, nil
}

// detectSeparator returns ';' when the header line uses it more than ','.
func detectSeparator(content []byte) rune {
	first, _, _ := bytes.Cut(content, []byte("\n"))
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ExportTransactionsCSV writes txs in the import format.
func ExportTransactionsCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "description", "amount", "category", "fixed"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, tx := range txs {
		row := []string{
			tx.Date,
			tx.Description,
			strconv.FormatInt(int64(tx.Amount), 10),
			tx.Category,
			strconv.FormatBool(tx.IsFixed),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write transaction %q: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportVariableCSV writes the variable expense breakdown.
func ExportVariableCSV(w io.Writer, list []VariableExpense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "amount", "percentage"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, v := range list {
		row := []string{
			v.Category,
			strconv.FormatInt(int64(v.Amount), 10),
			strconv.FormatFloat(float64(v.Percentage), 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write category %q: %w", v.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
