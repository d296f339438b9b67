package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// TimetableQueryKey returns the cache key for a general timetable query.
// Empty filters are stored as "*". The unit code is used as sent to the
// backend, so callers normalize the query first.
func (r *CacheKeyStruct) TimetableQueryKey(year, semester, day, unitCode string) string {
	return fmt.Sprintf("asts:timetable:%s:%s:day:%s:unit:%s",
		year, semester, orAny(day), orAny(unitCode))
}

// TimetableOfferingPattern matches every cached query of one offering.
func (r *CacheKeyStruct) TimetableOfferingPattern(year, semester string) string {
	return fmt.Sprintf("asts:timetable:%s:%s:*", year, semester)
}

// TimetableEventsChannel is the Redis PubSub channel for timetable events.
func (r *CacheKeyStruct) TimetableEventsChannel() string {
	return "asts:timetable:events"
}

func orAny(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

var CacheKey = NewCacheKeyStruct()
