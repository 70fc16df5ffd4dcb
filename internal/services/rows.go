package services

import (
	"fmt"
	"time"
)

const (
	sqlTimeFormat = "2006-01-02 15:04:05"
	isoTimeFormat = "2006-01-02T15:04:05"
)

// optString renders a scanned column value as a nullable string. Timestamps
// use the database's display format; other scalars are stringified the same
// way for every driver.
func optString(v interface{}) *string {
	return optStringFormat(v, sqlTimeFormat)
}

// optISOString renders timestamps in ISO-8601, matching the forging-line
// check contract.
func optISOString(v interface{}) *string {
	return optStringFormat(v, isoTimeFormat)
}

func optStringFormat(v interface{}, timeFormat string) *string {
	if v == nil {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case time.Time:
		s = t.Format(timeFormat)
	case int64:
		s = fmt.Sprintf("%d", t)
	case float64:
		s = fmt.Sprintf("%v", t)
	case bool:
		s = fmt.Sprintf("%v", t)
	default:
		s = fmt.Sprintf("%v", t)
	}
	return &s
}

// asString renders a value as a plain string, empty when NULL.
func asString(v interface{}) string {
	if s := optString(v); s != nil {
		return *s
	}
	return ""
}
