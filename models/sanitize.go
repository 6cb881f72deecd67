package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// maxEpochMillis bounds numeric dates to the range a JavaScript Date can hold.
const maxEpochMillis = 8.64e15

// SanitizeCartItem turns an arbitrary request body into a CartItem. It never
// fails: anything it cannot read falls back to the zero value, and an
// unreadable date becomes nil.
func SanitizeCartItem(body map[string]interface{}) CartItem {
	item := CartItem{}

	if name, ok := body["productName"].(string); ok {
		item.ProductName = trim(name)
	}

	if q, ok := toNumber(body["quantity"]); ok {
		item.Quantity = q
	}

	if p, ok := toNumber(body["price"]); ok {
		item.Price = p
	}

	if d, ok := toDate(body["date"]); ok {
		item.Date = &d
	}

	return item
}

func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// toNumber reports false when v has no finite numeric reading. A missing or
// null value reads as 0.
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		return parseNumber(string(n))
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		return parseNumber(n)
	case []interface{}:
		switch len(n) {
		case 0:
			return 0, true
		case 1:
			if _, isBool := n[0].(bool); isBool {
				return 0, false
			}
			return toNumber(n[0])
		}
	}
	return 0, false
}

func parseNumber(s string) (float64, bool) {
	s = trim(s)
	if s == "" {
		return 0, true
	}

	if len(s) > 2 && s[0] == '0' && !strings.Contains(s, "_") {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}

	// ParseFloat also accepts "inf", "nan" and hex floats, none of which count.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if strings.ContainsAny(s, "xXpP") {
		return 0, false
	}
	return finite(f)
}

// finite also folds -0 into 0.
func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f == 0 {
		return 0, true
	}
	return f, true
}

var (
	utcLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
		"2006-01-02",
		"2006-01",
		"2006",
		time.RFC1123,
		time.RFC1123Z,
		time.RFC850,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006/01/02",
		"01/02/2006",
		"Jan 2, 2006",
		"January 2, 2006",
		"2 Jan 2006",
		time.ANSIC,
	}
)

// toDate reports false for falsy input (missing, null, "", 0, false) and for
// anything that does not parse as a timestamp.
func toDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case string:
		return parseDate(d)
	case float64:
		return fromEpochMillis(d)
	case json.Number:
		f, err := d.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromEpochMillis(f)
	case int64:
		return fromEpochMillis(float64(d))
	case int:
		return fromEpochMillis(float64(d))
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d.UTC().Truncate(time.Millisecond), true
	}
	return time.Time{}, false
}

func parseDate(s string) (time.Time, bool) {
	s = trim(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.UTC().Truncate(time.Millisecond), true
		}
	}
	return time.Time{}, false
}

func fromEpochMillis(ms float64) (time.Time, bool) {
	if ms == 0 || math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}
