package domain

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// DurationPlaceholder is displayed when a duration cannot be coerced to a
// minute count.
const DurationPlaceholder = "---"

// durationPattern decomposes a pre-formatted duration string such as
// "2h 30m" or "2h". The minutes group is optional.
var durationPattern = regexp.MustCompile(`(\d+)h\s*(\d*)`)

// DurationValue holds a flight duration as it arrives from the document
// store: either a pre-formatted "<H>h <M>m" string or a raw minute count
// (number or numeric string). The canonical comparison unit is integer
// minutes; display keeps pre-formatted strings as-is.
type DurationValue struct {
	text    string
	minutes int
	isText  bool
	valid   bool
}

// DurationMinutes returns a DurationValue from a raw minute count.
func DurationMinutes(minutes int) DurationValue {
	return DurationValue{minutes: minutes, valid: true}
}

// DurationText returns a DurationValue from a pre-formatted or numeric
// string, applying the same coercion as document decoding.
func DurationText(s string) DurationValue {
	var v DurationValue
	v.setFromString(s)
	return v
}

func (v *DurationValue) setFromString(s string) {
	if strings.Contains(s, "h") {
		*v = DurationValue{text: s, isText: true, valid: true}
		return
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*v = DurationValue{minutes: int(n), valid: true}
		return
	}
	*v = DurationValue{text: s}
}

// UnmarshalJSON accepts a number or a string. Uncoercible input yields an
// invalid value rather than an error; it sorts as zero minutes and
// displays as the placeholder.
func (v *DurationValue) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	if len(s) == 0 || bytes.Equal(s, []byte("null")) {
		*v = DurationValue{}
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(s, &str); err != nil {
			*v = DurationValue{}
			return nil
		}
		v.setFromString(str)
		return nil
	}

	if n, err := strconv.ParseFloat(string(s), 64); err == nil {
		*v = DurationValue{minutes: int(n), valid: true}
		return nil
	}

	*v = DurationValue{}
	return nil
}

// MarshalJSON re-emits the original shape.
func (v DurationValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.isText || (!v.valid && v.text != ""):
		return json.Marshal(v.text)
	case v.valid:
		return json.Marshal(v.minutes)
	default:
		return []byte("null"), nil
	}
}

// Minutes returns the canonical integer minute count used for sorting.
// Pre-formatted strings are decomposed via the "<H>h <M>m" pattern (0 on
// no match, 0 minutes when the minutes part is absent). Uncoercible
// values degrade to 0.
func (v DurationValue) Minutes() int {
	if v.isText {
		m := durationPattern.FindStringSubmatch(v.text)
		if m == nil {
			return 0
		}
		hours, _ := strconv.Atoi(m[1])
		mins := 0
		if m[2] != "" {
			mins, _ = strconv.Atoi(m[2])
		}
		return hours*60 + mins
	}
	if !v.valid {
		return 0
	}
	return v.minutes
}

// Display returns the human-readable duration. Pre-formatted strings pass
// through unchanged; minute counts are formatted as "<H>h <M>m" with no
// zero-padding; uncoercible values render as the placeholder.
func (v DurationValue) Display() string {
	if v.isText {
		return v.text
	}
	if !v.valid {
		return DurationPlaceholder
	}
	return strconv.Itoa(v.minutes/60) + "h " + strconv.Itoa(v.minutes%60) + "m"
}
