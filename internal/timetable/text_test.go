package timetable

import (
	"strings"
	"testing"

	"github.com/stemsi/asts-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	g := BuildGrid([]model.TimetableClass{
		class(1, "09:00", "11:00", "FIT3155"),
		class(6, "09:00", "10:00", "FIT9999"),
	}, ModeCompact)

	var b strings.Builder
	require.NoError(t, WriteText(&b, g, 100))
	out := b.String()
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines[0], "Monday")
	assert.Contains(t, lines[0], "Friday")

	var nine, ten string
	for _, l := range lines {
		if strings.HasPrefix(l, "09:00") {
			nine = l
		}
		if strings.HasPrefix(l, "10:00") {
			ten = l
		}
	}
	assert.Contains(t, nine, "FIT3155 Lecture")
	assert.Contains(t, ten, "  :")
	assert.Contains(t, out, "Outside the weekly grid:")
	assert.Contains(t, out, "FIT9999 Lecture, Saturday 09:00 - 10:00")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abc", pad("abcdef", 3))
}
