package timetable

import "github.com/stemsi/asts-console/internal/model"

// BuildQueryPayload is the getTimetable request body. Optional filters are
// only present when set.
func BuildQueryPayload(q model.TimetableQuery) map[string]string {
	payload := map[string]string{
		"offeringYear":     q.OfferingYear,
		"offeringSemester": q.OfferingSemester,
	}
	if q.Day != "" {
		payload["day"] = q.Day
	}
	if q.UnitCode != "" {
		payload["unitCode"] = q.UnitCode
	}
	return payload
}
