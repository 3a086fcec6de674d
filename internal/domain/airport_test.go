package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAirportForDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "known code lowercase", input: "del", want: "Delhi (DEL)"},
		{name: "known code uppercase", input: "BOM", want: "Mumbai (BOM)"},
		{name: "unknown code echoes itself", input: "ZZZ", want: "ZZZ (ZZZ)"},
		{name: "already formatted is untouched", input: "Delhi (DEL)", want: "Delhi (DEL)"},
		{name: "empty", input: "", want: "Unknown (???)"},
		{name: "international code", input: "dxb", want: "Dubai (DXB)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAirportForDisplay(tt.input))
		})
	}
}

// Formatting must be idempotent: feeding a formatted label back in returns
// it unchanged.
func TestFormatAirportForDisplay_Idempotent(t *testing.T) {
	for _, code := range AirportCodes() {
		once := FormatAirportForDisplay(code)
		assert.Equal(t, once, FormatAirportForDisplay(once), "code %s", code)
	}
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "formatted label", input: "Delhi (DEL)", want: "DEL"},
		{name: "bare code", input: "BLR", want: "BLR"},
		{name: "bare code lowercase", input: "blr", want: "BLR"},
		{name: "known city name", input: "Mumbai", want: "BOM"},
		{name: "city name case insensitive", input: "mumbai", want: "BOM"},
		{name: "unknown text uppercased", input: "gotham", want: "GOTHAM"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.input))
		})
	}
}

// Round trip: for every known code, extracting from the formatted label
// returns the original code.
func TestExtractCode_RoundTrip(t *testing.T) {
	for _, code := range AirportCodes() {
		assert.Equal(t, code, ExtractCode(FormatAirportForDisplay(code)), "code %s", code)
	}
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("DEL"))
	assert.True(t, IsValidCode("ZZZ"))
	assert.False(t, IsValidCode("del"))
	assert.False(t, IsValidCode("DELL"))
	assert.False(t, IsValidCode(""))
}
