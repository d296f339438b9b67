package model

import (
	"fmt"
	"strings"
)

// normalizeOfferingRows drops rows whose unit code is blank and, when a
// single year or semester was entered for several units, repeats it for
// every row.
func normalizeOfferingRows(codes, years, semesters []string) ([]string, []string, []string) {
	if len(years) == 1 && len(codes) > 1 {
		years = repeat(years[0], len(codes))
	}
	if len(semesters) == 1 && len(codes) > 1 {
		semesters = repeat(semesters[0], len(codes))
	}

	var outCodes, outYears, outSems []string
	for i, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		outCodes = append(outCodes, code)
		outYears = append(outYears, strings.TrimSpace(at(years, i)))
		outSems = append(outSems, strings.TrimSpace(at(semesters, i)))
	}
	return outCodes, outYears, outSems
}

func checkOfferingRows(codes, years, semesters []string) map[string]string {
	if len(codes) == len(years) && len(codes) == len(semesters) {
		return nil
	}
	return map[string]string{
		"unitCodeList": fmt.Sprintf("unitCodeList, unitOfferingYear and unitOfferingSemester must have the same length (got %d, %d, %d)",
			len(codes), len(years), len(semesters)),
	}
}

func repeat(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
