package table

import (
	"math"
	"strconv"

	"github.com/tealeg/xlsx/v2"
)

// XLSXOptions configures the XLSX parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// DefaultSheetName is the sheet written by WriteXLSX.
const DefaultSheetName = "Sheet1"

// ReadXLSX reads a workbook from disk. The first row of the sheet is the
// header.
func ReadXLSX(path string, opts XLSXOptions) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, adapterf(err, "xlsx: open file")
	}
	return sheetTable(f, opts)
}

// ReadXLSXBytes reads a workbook held in memory.
func ReadXLSXBytes(b []byte, opts XLSXOptions) (*Table, error) {
	f, err := xlsx.OpenBinary(b)
	if err != nil {
		return nil, adapterf(err, "xlsx: open binary")
	}
	return sheetTable(f, opts)
}

func sheetTable(f *xlsx.File, opts XLSXOptions) (*Table, error) {
	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := rowToStrings(row)
		if t.Header == nil {
			t.Header = cells
			continue
		}
		t.Rows = append(t.Rows, padRow(cells, len(t.Header)))
	}

	if t.Header == nil {
		return nil, adapterf(nil, "xlsx: sheet %q is empty", sheet.Name)
	}
	return t, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, adapterf(nil, "xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex < 0 || opts.SheetIndex >= len(f.Sheets) {
		return nil, adapterf(nil, "xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cellText(cell)
	}
	return cells
}

// cellText returns the stored value of numeric cells so that display formats
// such as "0%" or "0.0" do not alter the number. Other cells use their
// formatted text.
func cellText(cell *xlsx.Cell) string {
	if cell.Type() == xlsx.CellTypeNumeric && cell.Value != "" {
		if v, err := strconv.ParseFloat(cell.Value, 64); err == nil {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return cell.String()
}

// padRow fills trailing empty cells that the workbook did not store.
func padRow(cells []string, width int) []string {
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}

// WriteXLSX writes t to a new single-sheet workbook at path. Cells holding a
// number in its canonical form are stored as numbers; everything else,
// including values like "007", stays text.
func WriteXLSX(path string, t *Table) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(DefaultSheetName)
	if err != nil {
		return adapterf(err, "xlsx: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range t.Header {
		header.AddCell().SetString(h)
	}
	for _, values := range t.Rows {
		row := sheet.AddRow()
		for _, v := range values {
			cell := row.AddCell()
			if n, ok := canonicalNumber(v); ok {
				cell.SetFloat(n)
			} else {
				cell.SetString(v)
			}
		}
	}

	if err := f.Save(path); err != nil {
		return adapterf(err, "xlsx: save %s", path)
	}
	return nil
}

func canonicalNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, strconv.FormatFloat(n, 'f', -1, 64) == s
}
