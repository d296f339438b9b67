package timetable

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayName maps a backend day number to its name, 0 = Sunday. Numbers
// outside 0..6 yield "".
func DayName(n int) string {
	if n < 0 || n >= len(dayNames) {
		return ""
	}
	return dayNames[n]
}

// Color is the legend entry of a class type.
type Color struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Border     string `json:"border"`
}

var (
	gray = Color{Name: "gray", Background: "#F3F4F6", Border: "#D1D5DB"}

	// Legend is shown under the grid filters, in this order.
	Legend = []struct {
		Type  string
		Color Color
	}{
		{"Lecture", Color{"blue", "#DBEAFE", "#93C5FD"}},
		{"Tutorial", Color{"green", "#DCFCE7", "#86EFAC"}},
		{"Workshop", Color{"purple", "#F3E8FF", "#D8B4FE"}},
		{"Lab", Color{"yellow", "#FEF9C3", "#FDE047"}},
		{"Seminar", Color{"pink", "#FCE7F3", "#F9A8D4"}},
		{"Practical", Color{"orange", "#FFEDD5", "#FDBA74"}},
		{"Consultation", Color{"teal", "#CCFBF1", "#5EEAD4"}},
		{"Exam", Color{"red", "#FEE2E2", "#FCA5A5"}},
	}
)

// ClassColor returns the legend color of a class type, gray when unknown.
// Matching is exact, as the backend sends the canonical type names.
func ClassColor(classType string) Color {
	for _, l := range Legend {
		if l.Type == classType {
			return l.Color
		}
	}
	return gray
}
