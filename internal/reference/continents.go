package reference

type bucket struct {
	name  string
	codes []string
}

// continentPartition is checked in order; a code listed under two buckets belongs to the
// first one (GL is listed under North America and Europe).
var continentPartition = []bucket{
	{Africa, []string{
		"DZ", "AO", "BJ", "BW", "BF", "BI", "CM", "CV", "CF", "TD", "KM", "CG", "CD",
		"CI", "DJ", "EG", "GQ", "ER", "ET", "GA", "GM", "GH", "GN", "GW", "KE", "LS",
		"LR", "LY", "MG", "MW", "ML", "MR", "MU", "YT", "MA", "MZ", "NA", "NE", "NG",
		"RW", "RE", "SH", "ST", "SN", "SC", "SL", "SO", "ZA", "GS", "SS", "SD", "TN",
		"TG", "TZ", "EH", "ZM", "ZW",
	}},
	{NorthAmerica, []string{
		"US", "CA", "MX", "GL", "BM", "BB", "BS", "AI", "AG", "BL", "KN", "LC", "MF", "PM",
		"VC", "KY", "TC", "VG", "VI", "PR", "HT", "DO", "CU", "JM", "TT", "BS",
	}},
	{SouthAmerica, []string{
		"AR", "BO", "BR", "CL", "CO", "EC", "GF", "GY", "PY", "PE", "SR", "UY", "VE",
		"FK",
	}},
	{Asia, []string{
		"AF", "AM", "AZ", "BD", "BT", "BN", "KH", "CN", "HK", "IN", "ID", "IR", "IQ",
		"JP", "KZ", "KP", "KR", "KG", "LA", "LB", "MO", "MY", "MV", "MN", "MM",
		"NP", "PK", "PH", "SG", "LK", "TH", "TL", "VN", "MV", "MY",
	}},
	{MiddleEast, []string{
		"TR", "SA", "AE", "QA", "KW", "BH", "OM", "YE",
	}},
	{Europe, []string{
		"AL", "AD", "AT", "BY", "BE", "BA", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR", "DE",
		"GI", "GR", "HU", "IS", "IE", "IT", "LV", "LI", "LT", "LU", "MT", "MD", "MC", "ME", "NL", "NO",
		"PL", "PT", "RO", "RU", "SM", "RS", "SK", "SI", "ES", "SE", "CH", "UA", "GB", "XK",
		"GG", "JE", "IM", "FO", "GI", "GL",
	}},
	{Oceania, []string{
		"AU", "NZ", "FJ", "PG", "SB", "VU", "NC", "PF", "WS", "TO", "TV", "KI", "MH", "FM",
		"MP", "PW", "NR", "NU", "CK", "NF", "TK", "WF", "GU",
	}},
}

var continents, continentConflicts = buildTable(flattenPartition(continentPartition))

func flattenPartition(p []bucket) []entry {
	var out []entry
	for _, b := range p {
		for _, c := range b.codes {
			out = append(out, entry{code: c, value: b.name})
		}
	}
	return out
}

// Continent returns the continent bucket of a region code, or Other.
func Continent(code string) string {
	if name, ok := continents[code]; ok {
		return name
	}
	return Other
}

// ContinentTable returns a copy of the resolved code -> continent table. Codes missing from
// it belong to Other.
func ContinentTable() map[string]string {
	out := make(map[string]string, len(continents))
	for k, v := range continents {
		out[k] = v
	}
	return out
}

// ContinentConflicts lists the codes assigned to more than one continent bucket.
func ContinentConflicts() []Conflict {
	return append([]Conflict(nil), continentConflicts...)
}
