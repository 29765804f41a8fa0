package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one row returned by a store for a matched token. The schema is
// unknown ahead of time, so all access goes through ordered key-list lookups
// rather than direct field access.
type Record map[string]any

// FirstPresent returns the value of the first key in keys that exists in the
// record with a usable value, along with the key that matched. Nil and
// empty-string values count as absent.
func (r Record) FirstPresent(keys []string) (any, string, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, k, true
	}
	return nil, "", false
}

// Truthy evaluates an open-ended value as a boolean flag: booleans as-is,
// numbers nonzero, strings one of {1,true,yes,y} case-insensitive. Anything
// else is false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case []byte:
		return truthyString(string(x))
	case string:
		return truthyString(x)
	default:
		return false
	}
}

func truthyString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// timeLayouts are tried in order when a store hands back a textual timestamp.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime interprets an open-ended value as a point in time. Textual values
// are tried against common timestamp layouts; numeric values are treated as
// Unix epoch seconds (milliseconds when implausibly large).
func ParseTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		return parseTimeString(x)
	case []byte:
		return parseTimeString(string(x))
	case int:
		return epochTime(int64(x)), true
	case int64:
		return epochTime(x), true
	case float64:
		return epochTime(int64(x)), true
	default:
		return time.Time{}, false
	}
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return epochTime(n), true
	}
	return time.Time{}, false
}

func epochTime(n int64) time.Time {
	// Values past the year 33658 in seconds are assumed to be milliseconds.
	if n > 1e12 {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

// StringValue renders an open-ended value as a presentable identifier.
func StringValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}
