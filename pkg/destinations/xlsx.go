package destinations

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// SheetName is the worksheet that holds the roster.
const SheetName = "Roster"

const defaultColumnWidth = 22

// xlsxWriter builds the workbook in memory and writes it on Close.
type xlsxWriter struct {
	w    io.Writer
	f    *excelize.File
	next int // 1-based row for the next WriteRow
}

func newXLSXWriter(w io.Writer) (*xlsxWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	return &xlsxWriter{w: w, f: f, next: 1}, nil
}

func (x *xlsxWriter) WriteHeader(columns []string) error {
	style, err := x.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	if err := x.writeRow(columns); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}
	if err := x.f.SetCellStyle(SheetName, "A1", last+"1", style); err != nil {
		return err
	}
	if err := x.f.SetColWidth(SheetName, "A", last, defaultColumnWidth); err != nil {
		return err
	}
	return x.f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (x *xlsxWriter) WriteRow(values []string) error {
	return x.writeRow(values)
}

// writeRow stores every value as a string cell so IDs and job codes keep
// their text form.
func (x *xlsxWriter) writeRow(values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, x.next)
		if err != nil {
			return err
		}
		if err := x.f.SetCellStr(SheetName, cell, norm.NFC.String(v)); err != nil {
			return fmt.Errorf("row %d, col %d: %w", x.next, col+1, err)
		}
	}
	x.next++
	return nil
}

func (x *xlsxWriter) Close() error {
	defer func() { _ = x.f.Close() }()
	if err := x.f.Write(x.w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
