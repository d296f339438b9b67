// Package timetable lays backend class lists out on the weekly grid used by
// the console, the XLSX export and the CLI.
package timetable

import (
	"strconv"
	"strings"

	"github.com/stemsi/asts-console/internal/model"
)

// Column is one day column of the grid. Number follows the backend day
// numbering (0 = Sunday).
type Column struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Days are the visible columns, Monday to Friday.
var Days = []Column{
	{Number: 1, Name: "Monday"},
	{Number: 2, Name: "Tuesday"},
	{Number: 3, Name: "Wednesday"},
	{Number: 4, Name: "Thursday"},
	{Number: 5, Name: "Friday"},
}

// TimeSlots are the visible hourly rows.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00",
}

// Mode selects how tall placed classes are drawn.
type Mode string

const (
	ModeCompact  Mode = "compact"
	ModeDetailed Mode = "detailed"
)

// ParseMode returns ModeDetailed for "detailed" and ModeCompact otherwise.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, string(ModeDetailed)) {
		return ModeDetailed
	}
	return ModeCompact
}

// Height is the rendered height in pixels of a class lasting duration hours.
func (m Mode) Height(duration int) int {
	unit, floor := 30, 40
	if m == ModeDetailed {
		unit, floor = 60, 80
	}
	return max(duration*unit, floor)
}

// Hour parses the hour of an "HH:MM" time. Minutes are ignored.
func Hour(hhmm string) (int, bool) {
	h, _, _ := strings.Cut(strings.TrimSpace(hhmm), ":")
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Duration is the class length in whole hours, endHour - startHour.
// Unparseable times yield 0.
func Duration(start, end string) int {
	s, ok1 := Hour(start)
	e, ok2 := Hour(end)
	if !ok1 || !ok2 {
		return 0
	}
	return e - s
}

// Occupies reports whether c covers the hour slot on day, using the
// half-open interval [startHour, endHour).
func Occupies(c model.TimetableClass, day int, slot string) bool {
	slotHour, ok := Hour(slot)
	if !ok {
		return false
	}
	start, ok1 := Hour(c.ClassTimeStart)
	end, ok2 := Hour(c.ClassTimeEnd)
	if !ok1 || !ok2 {
		return false
	}
	return c.ClassDay == day && slotHour >= start && slotHour < end
}

// ClassesAt returns every class occupying (day, slot), in input order.
func ClassesAt(classes []model.TimetableClass, day int, slot string) []model.TimetableClass {
	var out []model.TimetableClass
	for _, c := range classes {
		if Occupies(c, day, slot) {
			out = append(out, c)
		}
	}
	return out
}

// Placement is a class drawn in the cell where it starts.
type Placement struct {
	// Index is the position of the class in the fetched list; it is the
	// only handle the detail view has on a class.
	Index    int                  `json:"index"`
	Class    model.TimetableClass `json:"class"`
	Duration int                  `json:"duration"`
	Height   int                  `json:"height"`
	Color    Color                `json:"color"`
	Label    string               `json:"label"`
}

// Cell is one (day, hour) position of the grid.
type Cell struct {
	Day  int    `json:"day"`
	Slot string `json:"slot"`
	// Occupied is true when any class covers this hour, including classes
	// that started in an earlier row.
	Occupied bool `json:"occupied"`
	// Classes lists the classes starting here, stacked in input order.
	Classes []Placement `json:"classes"`
}

// Row is one hour of the grid across all visible days.
type Row struct {
	Slot  string `json:"slot"`
	Cells []Cell `json:"cells"`
}

// Grid is the weekly layout of a class list.
type Grid struct {
	Mode Mode     `json:"mode"`
	Days []Column `json:"days"`
	Rows []Row    `json:"rows"`
	// Unplaced holds classes whose day or start hour is outside the grid.
	Unplaced []Placement `json:"unplaced"`
}

// BuildGrid places every class exactly once, in the cell of its day and
// start hour. Overlapping classes are stacked in the same cell; no overlap
// layout is attempted.
func BuildGrid(classes []model.TimetableClass, mode Mode) Grid {
	g := Grid{Mode: mode, Days: Days, Rows: make([]Row, len(TimeSlots))}
	placed := make([]bool, len(classes))

	for r, slot := range TimeSlots {
		slotHour, _ := Hour(slot)
		row := Row{Slot: slot, Cells: make([]Cell, len(Days))}
		for d, day := range Days {
			cell := Cell{Day: day.Number, Slot: slot}
			for i, c := range classes {
				if !Occupies(c, day.Number, slot) {
					continue
				}
				cell.Occupied = true
				if start, _ := Hour(c.ClassTimeStart); start == slotHour {
					cell.Classes = append(cell.Classes, place(i, c, mode))
					placed[i] = true
				}
			}
			row.Cells[d] = cell
		}
		g.Rows[r] = row
	}

	for i, c := range classes {
		if !placed[i] {
			g.Unplaced = append(g.Unplaced, place(i, c, mode))
		}
	}
	return g
}

// PlacedCount is the number of classes drawn in the grid cells.
func (g Grid) PlacedCount() int {
	n := 0
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			n += len(cell.Classes)
		}
	}
	return n
}

func place(i int, c model.TimetableClass, mode Mode) Placement {
	d := Duration(c.ClassTimeStart, c.ClassTimeEnd)
	return Placement{
		Index:    i,
		Class:    c,
		Duration: d,
		Height:   mode.Height(d),
		Color:    ClassColor(c.ClassType),
		Label:    c.ClassTimeStart + " - " + c.ClassTimeEnd,
	}
}
