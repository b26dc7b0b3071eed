package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CellStyle selects one of the writer's predefined styles.
type CellStyle int

const (
	StyleDefault CellStyle = iota
	// StyleHeader is used for column header rows.
	StyleHeader
	// StyleGroup is used for merged section headers (employee type groups).
	StyleGroup
	// StyleHighlight marks cells that need reviewer attention, e.g.
	// auto-closed checkouts in the daily grid.
	StyleHighlight
)

type Cell struct {
	Value interface{}
	Style CellStyle
}

type Row []Cell

// Merge describes a merged cell range, 1-based inclusive coordinates.
type Merge struct {
	FromCol, FromRow int
	ToCol, ToRow     int
}

// Sheet is a renderer-agnostic sheet definition: rows of styled cells plus
// column widths and merged ranges. Every sheet is written read-only.
type Sheet struct {
	Name         string
	ColumnWidths []float64
	Rows         []Row
	Merges       []Merge
}

// Str and Val are small helpers for building rows.
func Str(s string) Cell                      { return Cell{Value: s} }
func Val(v interface{}) Cell                 { return Cell{Value: v} }
func Styled(v interface{}, s CellStyle) Cell { return Cell{Value: v, Style: s} }

// Write renders the sheet definitions into a single workbook and returns the
// serialized xlsx bytes. Each sheet is protected: cell editing and structural
// changes are disabled.
func Write(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := buildStyles(f)
	if err != nil {
		return nil, fmt.Errorf("build styles: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet so the workbook has no empty tab
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
			}
		}

		if err := writeSheet(f, sheet, styles); err != nil {
			return nil, fmt.Errorf("write sheet %q: %w", sheet.Name, err)
		}
	}

	if err := f.ProtectWorkbook(&excelize.WorkbookProtectionOptions{
		LockStructure: true,
	}); err != nil {
		return nil, fmt.Errorf("protect workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func buildStyles(f *excelize.File) (map[CellStyle]int, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	group, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E2F3"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
		Font: &excelize.Font{Color: "#9C0006"},
	})
	if err != nil {
		return nil, err
	}

	return map[CellStyle]int{
		StyleHeader:    header,
		StyleGroup:     group,
		StyleHighlight: highlight,
	}, nil
}

func writeSheet(f *excelize.File, sheet Sheet, styles map[CellStyle]int) error {
	for col, width := range sheet.ColumnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return err
		}
	}

	for r, row := range sheet.Rows {
		for c, cell := range row {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, axis, cell.Value); err != nil {
				return err
			}
			if styleID, ok := styles[cell.Style]; ok && cell.Style != StyleDefault {
				if err := f.SetCellStyle(sheet.Name, axis, axis, styleID); err != nil {
					return err
				}
			}
		}
	}

	for _, m := range sheet.Merges {
		from, err := excelize.CoordinatesToCellName(m.FromCol, m.FromRow)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(m.ToCol, m.ToRow)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet.Name, from, to); err != nil {
			return err
		}
	}

	// All edit permissions default to false: cells and structure are locked
	return f.ProtectSheet(sheet.Name, &excelize.SheetProtectionOptions{
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	})
}
