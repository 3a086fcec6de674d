package domain

import (
	"regexp"
	"strings"
)

// UnknownAirportDisplay is returned when no code was supplied at all.
const UnknownAirportDisplay = "Unknown (???)"

// airportCities maps IATA airport codes to the city names shown on flight
// cards. Codes absent from the table display as "CODE (CODE)".
var airportCities = map[string]string{
	"DEL": "Delhi",
	"BOM": "Mumbai",
	"BLR": "Bengaluru",
	"MAA": "Chennai",
	"CCU": "Kolkata",
	"HYD": "Hyderabad",
	"GOI": "Goa",
	"COK": "Kochi",
	"AMD": "Ahmedabad",
	"PNQ": "Pune",
	"JAI": "Jaipur",
	"LKO": "Lucknow",
	"IXC": "Chandigarh",
	"GAU": "Guwahati",
	"PAT": "Patna",
	"BBI": "Bhubaneswar",
	"TRV": "Thiruvananthapuram",
	"VNS": "Varanasi",
	"SXR": "Srinagar",
	"IXB": "Bagdogra",
	"IXR": "Ranchi",
	"NAG": "Nagpur",
	"IDR": "Indore",
	"RPR": "Raipur",
	"VTZ": "Visakhapatnam",
	"DXB": "Dubai",
	"SIN": "Singapore",
	"BKK": "Bangkok",
	"LHR": "London",
	"JFK": "New York",
}

var (
	// iataCodePattern matches a valid 3-letter IATA airport code.
	iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

	// parenCodePattern extracts a 3-letter code from a "City (CODE)" display form.
	parenCodePattern = regexp.MustCompile(`\(([A-Za-z]{3})\)`)
)

// IsValidCode reports whether code is a well-formed IATA airport code.
func IsValidCode(code string) bool {
	return iataCodePattern.MatchString(code)
}

// FormatAirportForDisplay converts an IATA code to the "City (CODE)"
// display form. Already-formatted input passes through unchanged so the
// function is idempotent, and unknown codes fall back to "CODE (CODE)".
func FormatAirportForDisplay(code string) string {
	if code == "" {
		return UnknownAirportDisplay
	}
	if strings.Contains(code, "(") && strings.Contains(code, ")") {
		return code
	}

	upper := strings.ToUpper(strings.TrimSpace(code))
	city, ok := airportCities[upper]
	if !ok {
		city = upper
	}
	return city + " (" + upper + ")"
}

// ExtractCode recovers the IATA code from a display form. It prefers a
// 3-letter parenthesized code, then a bare 3-letter input, then a
// case-insensitive reverse lookup by city name. Unrecognized input is
// returned uppercased; callers reject non-IATA shapes via IsValidCode.
func ExtractCode(display string) string {
	if m := parenCodePattern.FindStringSubmatch(display); m != nil {
		return strings.ToUpper(m[1])
	}

	trimmed := strings.TrimSpace(display)
	if iataCodePattern.MatchString(strings.ToUpper(trimmed)) {
		return strings.ToUpper(trimmed)
	}

	for code, city := range airportCities {
		if strings.EqualFold(city, trimmed) {
			return code
		}
	}

	return strings.ToUpper(display)
}

// AirportCodes returns every code present in the display table.
func AirportCodes() []string {
	codes := make([]string, 0, len(airportCities))
	for code := range airportCities {
		codes = append(codes, code)
	}
	return codes
}
