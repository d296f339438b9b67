package model

import "strings"

// Trimmer strips surrounding whitespace from every text field of a payload.
type Trimmer interface {
	Trim()
}

// Form is implemented by every reference-data payload sent to the backend.
// Trim applies to every submission. Normalize trims and also bounds numeric
// fields entered through the HTML console; JSON API calls are validated
// without clamping.
type Form interface {
	Trimmer
	Normalize()
}

// Checker is implemented by forms with rules spanning several fields.
// It returns nil or a field -> message map.
type Checker interface {
	Check() map[string]string
}

// clamp bounds v to [lo, hi]. Zero is left alone so that a missing value is
// still reported by the required rule.
func clamp(v, lo, hi int) int {
	switch {
	case v == 0:
		return 0
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func trimEach(lists ...[]string) {
	for _, l := range lists {
		for i := range l {
			l[i] = strings.TrimSpace(l[i])
		}
	}
}
