package timetable

import (
	"fmt"

	"github.com/stemsi/asts-console/internal/model"
)

// ClassDetail is what the detail dialog shows for one class.
type ClassDetail struct {
	Title    string `json:"title"`
	UnitCode string `json:"unitCode"`
	Type     string `json:"classType"`
	Day      string `json:"day"`
	Time     string `json:"time"`
	Venue    string `json:"venue"`
	Duration string `json:"duration"`
}

// Detail builds the dialog content of c.
func Detail(c model.TimetableClass) ClassDetail {
	return ClassDetail{
		Title:    c.UnitCode + " - " + c.ClassType,
		UnitCode: c.UnitCode,
		Type:     c.ClassType,
		Day:      DayName(c.ClassDay),
		Time:     c.ClassTimeStart + " - " + c.ClassTimeEnd,
		Venue:    c.VenueLocation,
		Duration: fmt.Sprintf("%d hour(s)", Duration(c.ClassTimeStart, c.ClassTimeEnd)),
	}
}

// ListRow is one line of the tabular timetable views.
type ListRow struct {
	UnitCode  string `json:"unitCode"`
	ClassType string `json:"classType"`
	Day       string `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Venue     string `json:"venue"`
}

// Rows converts a class list to table rows, keeping the received order.
func Rows(classes []model.TimetableClass) []ListRow {
	rows := make([]ListRow, len(classes))
	for i, c := range classes {
		rows[i] = ListRow{
			UnitCode:  c.UnitCode,
			ClassType: c.ClassType,
			Day:       DayName(c.ClassDay),
			Start:     c.ClassTimeStart,
			End:       c.ClassTimeEnd,
			Venue:     c.VenueLocation,
		}
	}
	return rows
}
