// Package export renders timetables as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/timetable"
	"github.com/xuri/excelize/v2"
)

const (
	GridSheet  = "Timetable"
	ClassSheet = "Classes"
)

var classHeader = []string{"Unit Code", "Class Type", "Day", "Start", "End", "Venue"}

// Filename is the download name of the workbook of one offering.
func Filename(data model.TimetableData) string {
	return fmt.Sprintf("timetable-%s-s%s.xlsx", data.OfferingYear, data.OfferingSemester)
}

// XLSX writes a workbook with the weekly grid on the first sheet and the
// class list, in received order, on the second.
func XLSX(data model.TimetableData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GridSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(ClassSheet); err != nil {
		return nil, err
	}

	if err := writeGrid(f, timetable.BuildGrid(data.ClassList, timetable.ModeCompact)); err != nil {
		return nil, fmt.Errorf("write grid: %w", err)
	}
	if err := writeClasses(f, data.ClassList); err != nil {
		return nil, fmt.Errorf("write classes: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeGrid(f *excelize.File, g timetable.Grid) error {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(GridSheet, "A1", "Time"); err != nil {
		return err
	}
	for d, day := range g.Days {
		cell, _ := excelize.CoordinatesToCellName(d+2, 1)
		if err := f.SetCellValue(GridSheet, cell, day.Name); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(g.Days)+1, 1)
	if err := f.SetCellStyle(GridSheet, "A1", last, header); err != nil {
		return err
	}

	styles := map[string]int{}
	for r, row := range g.Rows {
		y := r + 2
		slot, _ := excelize.CoordinatesToCellName(1, y)
		if err := f.SetCellValue(GridSheet, slot, row.Slot); err != nil {
			return err
		}
		for d, c := range row.Cells {
			if len(c.Classes) == 0 {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(d+2, y)
			if err := f.SetCellValue(GridSheet, cell, cellText(c.Classes)); err != nil {
				return err
			}
			style, err := fillStyle(f, styles, c.Classes[0].Color)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(GridSheet, cell, cell, style); err != nil {
				return err
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(g.Days) + 1)
	return f.SetColWidth(GridSheet, "B", lastCol, 24)
}

// cellText stacks the classes starting in a cell, one block per class.
func cellText(ps []timetable.Placement) string {
	blocks := make([]string, len(ps))
	for i, p := range ps {
		blocks[i] = fmt.Sprintf("%s %s\n%s\n%s", p.Class.UnitCode, p.Class.ClassType, p.Label, p.Class.VenueLocation)
	}
	return strings.Join(blocks, "\n\n")
}

func fillStyle(f *excelize.File, cache map[string]int, c timetable.Color) (int, error) {
	if id, ok := cache[c.Name]; ok {
		return id, nil
	}
	id, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c.Background}},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return 0, err
	}
	cache[c.Name] = id
	return id, nil
}

func writeClasses(f *excelize.File, classes []model.TimetableClass) error {
	if err := f.SetSheetRow(ClassSheet, "A1", &classHeader); err != nil {
		return err
	}
	for i, r := range timetable.Rows(classes) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{r.UnitCode, r.ClassType, r.Day, r.Start, r.End, r.Venue}
		if err := f.SetSheetRow(ClassSheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
