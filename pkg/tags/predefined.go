package tags

import (
	"strconv"
	"time"
)

// TimeLayout is the wire pattern for timestamp tags. It is deliberately
// distinct from the textual date forms cloud APIs emit for their own
// read-only metadata fields.
const TimeLayout = "2006-01-02T15:04:05"

// Bool returns the manual codec for booleans. The wire form is the literal
// token "true" or "false"; no other spelling is accepted.
func Bool() Codec[bool] {
	return Manual(
		func(v bool) RawTagValue {
			if v {
				return "true"
			}
			return "false"
		},
		func(raw RawTagValue) (bool, error) {
			switch raw {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return false, &BoolValueError{Value: raw}
		},
	)
}

// String returns the manual codec for strings. The wire format has no native
// quoting, so strings pass through untouched in both directions rather than
// going through the structured codec, which would quote them.
func String() Codec[string] {
	return Manual(
		func(v string) RawTagValue { return RawTagValue(v) },
		func(raw RawTagValue) (string, error) { return string(raw), nil },
	)
}

// Int64 returns the manual codec for 64-bit integers in decimal form.
func Int64() Codec[int64] {
	return Manual(
		func(v int64) RawTagValue { return RawTagValue(strconv.FormatInt(v, 10)) },
		func(raw RawTagValue) (int64, error) {
			v, err := strconv.ParseInt(string(raw), 10, 64)
			if err != nil {
				return 0, &ValueError{Value: raw, Message: err.Error()}
			}
			return v, nil
		},
	)
}

// Time returns the manual codec for timestamps using TimeLayout. The layout
// carries no zone, so decoded values are in UTC and sub-second precision is
// dropped on encode.
func Time() Codec[time.Time] {
	return Manual(
		func(v time.Time) RawTagValue { return RawTagValue(v.Format(TimeLayout)) },
		func(raw RawTagValue) (time.Time, error) {
			v, err := time.Parse(TimeLayout, string(raw))
			if err != nil {
				return time.Time{}, &ValueError{Value: raw, Message: err.Error()}
			}
			return v, nil
		},
	)
}
