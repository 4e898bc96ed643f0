package normalize

import "strings"

// stateCodes maps lowercase US state names to their USPS codes.
var stateCodes = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY", "district of columbia": "DC",
}

var validCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(stateCodes))
	for _, code := range stateCodes {
		codes[code] = struct{}{}
	}
	return codes
}()

// StateCode normalizes a state value to its two-letter USPS code. Full names
// are mapped ("California" → "CA"), codes are uppercased ("tx" → "TX").
// Unrecognized values are returned uppercased and trimmed as-is, with ok
// false, so callers can decide whether to reject or store them.
func StateCode(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if code, found := stateCodes[strings.ToLower(trimmed)]; found {
		return code, true
	}
	upper := strings.ToUpper(trimmed)
	if _, found := validCodes[upper]; found {
		return upper, true
	}
	return upper, false
}

// IsStateCode reports whether value is a recognized two-letter USPS code.
func IsStateCode(value string) bool {
	_, found := validCodes[strings.ToUpper(strings.TrimSpace(value))]
	return found
}
