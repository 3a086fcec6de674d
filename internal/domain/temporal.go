package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Fallback tokens returned by the display formatters when a timestamp is
// missing or cannot be parsed. The UI renders these verbatim instead of
// failing the whole list.
const (
	FallbackAbsent      = "N/A"
	FallbackInvalidDate = "Invalid date"
	FallbackInvalidTime = "Invalid time"
)

// Display layout conventions for flight cards and booking history.
const (
	displayDateLayout  = "Jan 2, 2006"
	displayClockLayout = "3:04 PM"
)

// temporalKind identifies which shape of the TemporalValue union is active.
type temporalKind uint8

const (
	temporalAbsent temporalKind = iota
	temporalEpochSeconds
	temporalInstant
	temporalString
)

// TemporalValue is a closed sum over the timestamp shapes the document
// store can hand us: an epoch-seconds record ({"seconds": N}), a native
// instant, or a raw string (usually ISO-8601, but untrusted).
//
// Exactly one shape is active per value. Shape detection happens once, at
// decode time, in a fixed priority order: epoch-seconds record, then
// native instant, then string. Anything else is kept as a displayable
// string so a malformed document degrades to a fallback token instead of
// an error.
type TemporalValue struct {
	kind    temporalKind
	seconds int64
	raw     string
	instant time.Time
}

// AbsentTime returns the absent (missing) temporal value.
func AbsentTime() TemporalValue {
	return TemporalValue{kind: temporalAbsent}
}

// EpochSeconds returns a TemporalValue carrying epoch seconds.
func EpochSeconds(sec int64) TemporalValue {
	return TemporalValue{kind: temporalEpochSeconds, seconds: sec}
}

// Instant returns a TemporalValue carrying a native time.Time.
func Instant(t time.Time) TemporalValue {
	return TemporalValue{kind: temporalInstant, instant: t}
}

// RawTimestamp returns a TemporalValue carrying an unparsed string.
func RawTimestamp(s string) TemporalValue {
	if s == "" {
		return AbsentTime()
	}
	return TemporalValue{kind: temporalString, raw: s}
}

// IsAbsent reports whether no timestamp was supplied.
func (v TemporalValue) IsAbsent() bool {
	return v.kind == temporalAbsent
}

// epochSecondsDoc mirrors the {"seconds": N} record shape used by the
// document store for timestamps.
type epochSecondsDoc struct {
	Seconds *int64 `json:"seconds"`
}

// UnmarshalJSON classifies the incoming shape without being told which one
// it is. Detection order: epoch-seconds record, string, bare number
// (treated as epoch seconds). Unrecognized shapes are kept as their
// compact JSON text so formatting degrades instead of erroring.
func (v *TemporalValue) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	if len(s) == 0 || bytes.Equal(s, []byte("null")) {
		*v = AbsentTime()
		return nil
	}

	if s[0] == '{' {
		var doc epochSecondsDoc
		if err := json.Unmarshal(s, &doc); err == nil && doc.Seconds != nil {
			*v = EpochSeconds(*doc.Seconds)
			return nil
		}
		*v = RawTimestamp(string(s))
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(s, &str); err != nil {
			*v = RawTimestamp(string(s))
			return nil
		}
		*v = RawTimestamp(str)
		return nil
	}

	if n, err := strconv.ParseInt(string(s), 10, 64); err == nil {
		*v = EpochSeconds(n)
		return nil
	}

	*v = RawTimestamp(string(s))
	return nil
}

// MarshalJSON re-emits the original shape so documents survive storage
// round-trips unchanged.
func (v TemporalValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case temporalEpochSeconds:
		return json.Marshal(epochSecondsDoc{Seconds: &v.seconds})
	case temporalInstant:
		return json.Marshal(v.instant.Format(time.RFC3339))
	case temporalString:
		return json.Marshal(v.raw)
	default:
		return []byte("null"), nil
	}
}

// timestampLayouts are the string layouts accepted, in order of preference.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
}

// Normalize converts the value to a canonical instant. The second return
// is false when the value is absent or unparseable. Epoch seconds are
// interpreted in the host's local timezone, matching how the instants are
// later rendered; no UTC normalization is applied.
func (v TemporalValue) Normalize() (time.Time, bool) {
	switch v.kind {
	case temporalEpochSeconds:
		return time.Unix(v.seconds, 0), true
	case temporalInstant:
		return v.instant, true
	case temporalString:
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, v.raw); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// FormatDate renders the date part ("Jan 2, 2006" convention). Missing
// values render as "N/A", unparseable ones as "Invalid date". Never fails.
func (v TemporalValue) FormatDate() string {
	if v.IsAbsent() {
		return FallbackAbsent
	}
	t, ok := v.Normalize()
	if !ok {
		return FallbackInvalidDate
	}
	return t.Format(displayDateLayout)
}

// FormatClock renders the clock-time part (12-hour with meridiem,
// zero-padded minutes). Missing values render as "N/A", unparseable ones
// as "Invalid time". Never fails.
func (v TemporalValue) FormatClock() string {
	if v.IsAbsent() {
		return FallbackAbsent
	}
	t, ok := v.Normalize()
	if !ok {
		return FallbackInvalidTime
	}
	return t.Format(displayClockLayout)
}

// EpochMillis returns the value as epoch milliseconds for use as a sort
// key. The epoch-seconds shape is preferred (seconds x 1000) over falling
// back to generic parsing of the other shapes.
func (v TemporalValue) EpochMillis() (int64, bool) {
	if v.kind == temporalEpochSeconds {
		return v.seconds * 1000, true
	}
	t, ok := v.Normalize()
	if !ok {
		return 0, false
	}
	return t.UnixMilli(), true
}
