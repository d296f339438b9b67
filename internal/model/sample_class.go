package model

// ClassEvent is a class of the sample weekly timetable served by
// /api/timetable. Day 0 is Monday in this data set.
type ClassEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Type      string `json:"type"`
	Code      string `json:"code"`
	Room      string `json:"room"`
	Day       int    `json:"day"`
	StartTime int    `json:"startTime"`
	EndTime   int    `json:"endTime"`
	Color     string `json:"color"`
}
