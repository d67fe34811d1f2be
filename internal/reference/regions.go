// Package reference holds the static region lookup tables: country names, the continent
// partition and the default list of trending regions.
//
// The source data repeats some codes with different values. Every table is built with the
// same policy: the first entry wins and later conflicting entries are recorded so the
// caller can report them.
package reference

// Continent buckets.
const (
	Africa       = "Africa"
	NorthAmerica = "North America"
	SouthAmerica = "South America"
	Asia         = "Asia"
	MiddleEast   = "Middle East"
	Europe       = "Europe"
	Oceania      = "Oceania"
	Other        = "Other"
)

// worldRegions is the default collection order.
var worldRegions = []string{
	// Africa
	"DZ", "AO", "BJ", "BW", "BF", "BI", "CM", "CV", "CF", "TD", "KM", "CG", "CD",
	"CI", "DJ", "EG", "GQ", "ER", "ET", "GA", "GM", "GH", "GN", "GW", "KE", "LS",
	"LR", "LY", "MG", "MW", "ML", "MR", "MU", "YT", "MA", "MZ", "NA", "NE", "NG",
	"RW", "RE", "SH", "ST", "SN", "SC", "SL", "SO", "ZA", "GS", "SS", "SD", "TN",
	"TG", "TZ", "EH", "ZM", "ZW",

	// North / Central America and Caribbean
	"US", "CA", "MX", "BM", "BB", "BS", "AI", "AG", "BL", "KN", "LC", "MF", "PM",
	"VC", "KY", "TC", "VG", "VI", "PR",

	// South America
	"AR", "BO", "BR", "CL", "CO", "EC", "GF", "GY", "PY", "PE", "SR", "UY", "VE",
	"FK",

	// Asia
	"AF", "AM", "AZ", "BD", "BT", "BN", "KH", "CN", "HK", "IN", "ID", "IR", "IQ",
	"JP", "KZ", "KP", "KR", "KG", "LA", "LB", "MO", "MY", "MV", "MN", "MM",
	"NP", "PK", "PH", "SG", "LK", "TH", "TL", "VN", "BN", "BD",

	// Middle East
	"SA", "AE", "QA", "KW", "BH", "OM", "YE", "JO", "SY", "PS", "TR", "IQ",
	"IR",

	// Europe
	"AL", "AD", "AT", "BY", "BE", "BA", "BG", "HR", "CY", "CZ", "DK", "EE", "FO",
	"FI", "FR", "GF", "PF", "TF", "DE", "GI", "GR", "GL", "HU", "IS", "IE", "IM",
	"IT", "JE", "LV", "LI", "LT", "LU", "MK", "MT", "MD", "MC", "ME", "NL", "NO",
	"PL", "PT", "RO", "RU", "SM", "RS", "SK", "SI", "ES", "SE", "CH", "UA", "GB",
	"XK",

	// Oceania
	"AU", "NZ", "FJ", "WS", "PF", "NC", "PG", "SB", "VU", "TO", "TV", "NR", "FM",
	"MH", "MP", "WF", "TK",

	// Territories and special codes
	"AQ", "IO", "UM", "CX", "CC", "KY", "CK", "GG", "GW", "GU", "HT", "HN", "IC",
	"LI", "LU",
}

// WorldRegions returns a copy of the default region list. It contains repeated codes;
// config validation removes them.
func WorldRegions() []string {
	out := make([]string, len(worldRegions))
	copy(out, worldRegions)
	return out
}

// Continents lists the continent enumeration in lookup order, Other last.
func Continents() []string {
	out := make([]string, 0, len(continentPartition)+1)
	for _, b := range continentPartition {
		out = append(out, b.name)
	}
	return append(out, Other)
}
