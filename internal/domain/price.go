package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// PriceValue holds a fare as it arrives from the document store: a JSON
// number or a numeric string. Both the filter and the sorter derive their
// price key through Amount so the two can never disagree on what counts
// as a valid price.
type PriceValue struct {
	amount float64
	text   string
	isText bool
	valid  bool
}

// PriceAmount returns a PriceValue from a numeric amount.
func PriceAmount(amount float64) PriceValue {
	return PriceValue{amount: amount, valid: isFiniteAmount(amount)}
}

// PriceText returns a PriceValue from a string, applying the same
// coercion as document decoding.
func PriceText(s string) PriceValue {
	var v PriceValue
	v.setFromString(s)
	return v
}

func isFiniteAmount(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (v *PriceValue) setFromString(s string) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFiniteAmount(n) {
		*v = PriceValue{text: s, isText: true}
		return
	}
	*v = PriceValue{amount: n, text: s, isText: true, valid: true}
}

// UnmarshalJSON accepts a number or a numeric string. Uncoercible input
// yields an invalid value, never an error.
func (v *PriceValue) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	if len(s) == 0 || bytes.Equal(s, []byte("null")) {
		*v = PriceValue{}
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(s, &str); err != nil {
			*v = PriceValue{}
			return nil
		}
		v.setFromString(str)
		return nil
	}

	n, err := strconv.ParseFloat(string(s), 64)
	if err != nil || !isFiniteAmount(n) {
		*v = PriceValue{text: string(s), isText: true}
		return nil
	}
	*v = PriceValue{amount: n, valid: true}
	return nil
}

// MarshalJSON re-emits the original shape.
func (v PriceValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.isText:
		return json.Marshal(v.text)
	case v.valid:
		return json.Marshal(v.amount)
	default:
		return []byte("null"), nil
	}
}

// Amount returns the coerced numeric price. The second return is false
// when the price cannot be coerced to a finite number; callers decide
// policy (the filter excludes such records, the sorter treats comparisons
// touching them as ties).
func (v PriceValue) Amount() (float64, bool) {
	if !v.valid {
		return 0, false
	}
	return v.amount, true
}
