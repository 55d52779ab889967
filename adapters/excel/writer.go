package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"goxtab/domain/crosstab"
)

// sheetNameLimit is the workbook sheet-name cap imposed by the xlsx format.
const sheetNameLimit = 31

// Writer exports crosstab and banner results to an xlsx workbook. This is the
// presentation boundary: the "All" row/column is materialized here, via the
// domain Render step, and nowhere earlier.
type Writer struct{}

// NewWriter creates a workbook writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteCrosstab writes a single result to path, one sheet.
func (w *Writer) WriteCrosstab(path string, result *crosstab.CrosstabResult) error {
	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool)
	if err := w.writeResultSheet(f, uniqueSheetName(used, string(result.Key())), result); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// WriteBanner writes every successful pair of a banner to its own sheet, plus
// a Combined sheet when the wide table was built.
func (w *Writer) WriteBanner(path string, banner *crosstab.BannerTable) error {
	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool)
	for _, key := range banner.Keys {
		result, ok := banner.Results[key]
		if !ok {
			continue
		}
		if err := w.writeResultSheet(f, uniqueSheetName(used, string(key)), result); err != nil {
			return err
		}
	}
	if banner.Combined != nil {
		if err := w.writeGrid(f, "Combined", 1, "", banner.Combined); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func (w *Writer) writeResultSheet(f *excelize.File, sheet string, result *crosstab.CrosstabResult) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	row := 1
	var err error
	if row, err = w.writeGridAt(f, sheet, row, "Counts", result.Table.Render()); err != nil {
		return err
	}
	views := []struct {
		title string
		view  *crosstab.PercentageView
	}{
		{"Row %", result.RowPercentages},
		{"Column %", result.ColumnPercentages},
		{"Total %", result.TotalPercentages},
	}
	for _, v := range views {
		if v.view == nil {
			continue
		}
		if row, err = w.writeGridAt(f, sheet, row, v.title, v.view.Render(result.Table)); err != nil {
			return err
		}
	}
	if result.Statistics != nil {
		if err := w.writeSummary(f, sheet, row, result.Statistics.Summary()); err != nil {
			return err
		}
	}
	return nil
}

// writeGrid creates the sheet and writes one grid starting at startRow.
func (w *Writer) writeGrid(f *excelize.File, sheet string, startRow int, title string, g *crosstab.Grid) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	_, err := w.writeGridAt(f, sheet, startRow, title, g)
	return err
}

// writeGridAt writes a labeled grid block and returns the next free row,
// leaving one blank row after the block.
func (w *Writer) writeGridAt(f *excelize.File, sheet string, startRow int, title string, g *crosstab.Grid) (int, error) {
	row := startRow
	if title != "" {
		if err := setCell(f, sheet, 1, row, title); err != nil {
			return 0, err
		}
		row++
	}
	for j, col := range g.Columns {
		if err := setCell(f, sheet, j+2, row, col); err != nil {
			return 0, err
		}
	}
	row++
	for i, label := range g.Index {
		if err := setCell(f, sheet, 1, row, label); err != nil {
			return 0, err
		}
		for j, v := range g.Data[i] {
			if v == v { // skip NaN cells, leaving them blank
				if err := setCell(f, sheet, j+2, row, v); err != nil {
					return 0, err
				}
			}
		}
		row++
	}
	return row + 1, nil
}

func (w *Writer) writeSummary(f *excelize.File, sheet string, startRow int, s crosstab.Summary) error {
	rows := [][2]interface{}{
		{"test_type", s.TestType},
		{"statistic", s.Statistic},
		{"p_value", s.PValue},
	}
	if s.DegreesOfFreedom != nil {
		rows = append(rows, [2]interface{}{"degrees_of_freedom", fmt.Sprint(s.DegreesOfFreedom)})
	}
	if s.EffectSize != nil {
		rows = append(rows, [2]interface{}{"effect_size", *s.EffectSize})
	}
	for i, kv := range rows {
		if err := setCell(f, sheet, 1, startRow+i, kv[0]); err != nil {
			return err
		}
		if err := setCell(f, sheet, 2, startRow+i, kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}

// sanitizeSheetName strips the characters xlsx forbids and enforces the
// 31-character cap.
func sanitizeSheetName(name string) string {
	r := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")")
	s := r.Replace(name)
	if len(s) > sheetNameLimit {
		s = s[:sheetNameLimit]
	}
	return s
}

// uniqueSheetName sanitizes a name and disambiguates truncation collisions.
func uniqueSheetName(used map[string]bool, name string) string {
	s := sanitizeSheetName(name)
	base := s
	for n := 2; used[s]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trim := base
		if len(trim)+len(suffix) > sheetNameLimit {
			trim = trim[:sheetNameLimit-len(suffix)]
		}
		s = trim + suffix
	}
	used[s] = true
	return s
}
