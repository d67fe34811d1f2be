package reference

type entry struct {
	code  string
	value string
}

// countryEntries is the raw country-name table, in source order. Some codes appear more than
// once; the first entry is kept.
var countryEntries = []entry{
	// Africa
	{"DZ", "Algeria"},
	{"AO", "Angola"},
	{"BJ", "Benin"},
	{"BW", "Botswana"},
	{"BF", "Burkina Faso"},
	{"BI", "Burundi"},
	{"CM", "Cameroon"},
	{"CV", "Cape Verde"},
	{"CF", "Central African Republic"},
	{"TD", "Chad"},
	{"KM", "Comoros"},
	{"CG", "Congo"},
	{"CD", "Democratic Republic of the Congo"},
	{"CI", "Ivory Coast"},
	{"DJ", "Djibouti"},
	{"EG", "Egypt"},
	{"GQ", "Equatorial Guinea"},
	{"ER", "Eritrea"},
	{"ET", "Ethiopia"},
	{"GA", "Gabon"},
	{"GM", "Gambia"},
	{"GH", "Ghana"},
	{"GN", "Guinea"},
	{"GW", "Guinea-Bissau"},
	{"KE", "Kenya"},
	{"LS", "Lesotho"},
	{"LR", "Liberia"},
	{"LY", "Libya"},
	{"MG", "Madagascar"},
	{"MW", "Malawi"},
	{"ML", "Mali"},
	{"MR", "Mauritania"},
	{"MU", "Mauritius"},
	{"YT", "Mayotte"},
	{"MA", "Morocco"},
	{"MZ", "Mozambique"},
	{"NA", "Namibia"},
	{"NE", "Niger"},
	{"NG", "Nigeria"},
	{"RW", "Rwanda"},
	{"RE", "Réunion"},
	{"SH", "Saint Helena"},
	{"ST", "Sao Tome and Principe"},
	{"SN", "Senegal"},
	{"SC", "Seychelles"},
	{"SL", "Sierra Leone"},
	{"SO", "Somalia"},
	{"ZA", "South Africa"},
	{"SS", "South Sudan"},
	{"SD", "Sudan"},
	{"SZ", "Eswatini"},
	{"TZ", "Tanzania"},
	{"TG", "Togo"},
	{"TN", "Tunisia"},
	{"UG", "Uganda"},
	{"EH", "Western Sahara"},
	{"ZM", "Zambia"},
	{"ZW", "Zimbabwe"},

	// North / Central America and Caribbean
	{"US", "United States"},
	{"CA", "Canada"},
	{"MX", "Mexico"},
	{"GL", "Greenland"},
	{"BM", "Bermuda"},
	{"BB", "Barbados"},
	{"BS", "Bahamas"},
	{"AI", "Anguilla"},
	{"AG", "Antigua and Barbuda"},
	{"BL", "Saint Barthélemy"},
	{"KN", "Saint Kitts and Nevis"},
	{"LC", "Saint Lucia"},
	{"MF", "Saint Martin (French part)"},
	{"PM", "Saint Pierre and Miquelon"},
	{"VC", "Saint Vincent and the Grenadines"},
	{"KY", "Cayman Islands"},
	{"TC", "Turks and Caicos Islands"},
	{"VG", "British Virgin Islands"},
	{"VI", "United States Virgin Islands"},
	{"PR", "Puerto Rico"},
	{"HT", "Haiti"},
	{"DO", "Dominican Republic"},
	{"CU", "Cuba"},
	{"JM", "Jamaica"},
	{"TT", "Trinidad and Tobago"},
	{"BS", "Bahamas"},

	// South America
	{"AR", "Argentina"},
	{"BO", "Bolivia"},
	{"BR", "Brazil"},
	{"CL", "Chile"},
	{"CO", "Colombia"},
	{"EC", "Ecuador"},
	{"GF", "French Guiana"},
	{"GY", "Guyana"},
	{"PY", "Paraguay"},
	{"PE", "Peru"},
	{"SR", "Suriname"},
	{"UY", "Uruguay"},
	{"VE", "Venezuela"},
	{"FK", "Falkland Islands"},

	// Asia
	{"AF", "Afghanistan"},
	{"AM", "Armenia"},
	{"AZ", "Azerbaijan"},
	{"BD", "Bangladesh"},
	{"BT", "Bhutan"},
	{"BN", "Brunei"},
	{"KH", "Cambodia"},
	{"CN", "China"},
	{"HK", "Hong Kong"},
	{"IN", "India"},
	{"ID", "Indonesia"},
	{"IR", "Iran"},
	{"IQ", "Iraq"},
	{"JP", "Japan"},
	{"KZ", "Kazakhstan"},
	{"KP", "North Korea"},
	{"KR", "South Korea"},
	{"KG", "Kyrgyzstan"},
	{"LA", "Laos"},
	{"LV", "Latvia"},
	{"LB", "Lebanon"},
	{"MO", "Macau"},
	{"MN", "Mongolia"},
	{"MM", "Myanmar"},
	{"NP", "Nepal"},
	{"PK", "Pakistan"},
	{"PH", "Philippines"},
	{"SG", "Singapore"},
	{"LK", "Sri Lanka"},
	{"TH", "Thailand"},
	{"TL", "Timor-Leste"},
	{"VN", "Vietnam"},
	{"MV", "Maldives"},
	{"MY", "Malaysia"},
	{"NP", "Nepal"},

	// Middle East
	{"TR", "Turkey"},
	{"SA", "Saudi Arabia"},
	{"AE", "United Arab Emirates"},
	{"QA", "Qatar"},
	{"KW", "Kuwait"},
	{"BH", "Bahrain"},
	{"OM", "Oman"},
	{"YE", "Yemen"},
	{"JO", "Jordan"},
	{"SY", "Syria"},
	{"PS", "Palestine"},
	{"IQ", "Iraq"},
	{"IR", "Iran"},

	// Europe
	{"AL", "Albania"},
	{"AD", "Andorra"},
	{"AT", "Austria"},
	{"BY", "Belarus"},
	{"BE", "Belgium"},
	{"BA", "Bosnia and Herzegovina"},
	{"BG", "Bulgaria"},
	{"HR", "Croatia"},
	{"CY", "Cyprus"},
	{"CZ", "Czech Republic"},
	{"DK", "Denmark"},
	{"EE", "Estonia"},
	{"FI", "Finland"},
	{"FR", "France"},
	{"DE", "Germany"},
	{"GI", "Gibraltar"},
	{"GR", "Greece"},
	{"HU", "Hungary"},
	{"IS", "Iceland"},
	{"IE", "Ireland"},
	{"IT", "Italy"},
	{"LV", "Latvia"},
	{"LI", "Liechtenstein"},
	{"LT", "Lithuania"},
	{"LU", "Luxembourg"},
	{"MT", "Malta"},
	{"MD", "Moldova"},
	{"MC", "Monaco"},
	{"ME", "Montenegro"},
	{"NL", "Netherlands"},
	{"NO", "Norway"},
	{"PL", "Poland"},
	{"PT", "Portugal"},
	{"RO", "Romania"},
	{"RU", "Russia"},
	{"SM", "San Marino"},
	{"RS", "Serbia"},
	{"SK", "Slovakia"},
	{"SI", "Slovenia"},
	{"ES", "Spain"},
	{"SE", "Sweden"},
	{"CH", "Switzerland"},
	{"UA", "Ukraine"},
	{"GB", "United Kingdom"},
	{"XK", "Kosovo"},
	{"GG", "Guernsey"},
	{"JE", "Jersey"},
	{"IM", "Isle of Man"},
	{"FO", "Faroe Islands"},
	{"GI", "Gibraltar"},
	{"GL", "Greenland"},

	// Oceania
	{"AU", "Australia"},
	{"NZ", "New Zealand"},
	{"FJ", "Fiji"},
	{"PG", "Papua New Guinea"},
	{"SB", "Solomon Islands"},
	{"VU", "Vanuatu"},
	{"NC", "New Caledonia"},
	{"PF", "French Polynesia"},
	{"WS", "Samoa"},
	{"TO", "Tonga"},
	{"TV", "Tuvalu"},
	{"KI", "Kiribati"},
	{"MH", "Marshall Islands"},
	{"FM", "Micronesia"},
	{"MP", "Northern Mariana Islands"},
	{"PW", "Palau"},
	{"NR", "Nauru"},
	{"NU", "Niue"},
	{"CK", "Cook Islands"},
	{"NF", "Norfolk Island"},
	{"TK", "Tokelau"},
	{"WF", "Wallis and Futuna"},
	{"GU", "Guam"},

	// Territories
	{"AQ", "Antarctica"},
	{"IO", "British Indian Ocean Territory"},
	{"UM", "United States Minor Outlying Islands"},
	{"CX", "Christmas Island"},
	{"CC", "Cocos (Keeling) Islands"},
	{"BQ", "Bonaire, Sint Eustatius and Saba"},
	{"CW", "Curaçao"},
	{"SX", "Sint Maarten (Dutch part)"},
	{"BL", "Saint Barthélemy"},
	{"MF", "Saint Martin (French part)"},
	{"PM", "Saint Pierre and Miquelon"},
	{"PN", "Pitcairn"},
	{"GS", "South Georgia and the South Sandwich Islands"},
	{"HM", "Heard Island and McDonald Islands"},
	{"TF", "French Southern Territories"},
	{"VG", "British Virgin Islands"},
	{"VI", "U.S. Virgin Islands"},
	{"EH", "Western Sahara"},

	// Repeated entries
	{"KP", "North Korea"},
	{"SY", "Syria"},
	{"TZ", "Tanzania"},
	{"RE", "Reunion"},
	{"WS", "Samoa"},
	{"PS", "Palestine"},
	{"CF", "Central African Republic"},
	{"CG", "Congo (Brazzaville)"},
	{"CD", "Congo (Kinshasa)"},
}

var countries, countryConflicts = buildTable(countryEntries)

// CountryName returns the display name for a region code.
func CountryName(code string) (string, bool) {
	name, ok := countries[code]
	return name, ok
}

// Countries returns a copy of the resolved code -> country name table.
func Countries() map[string]string {
	out := make(map[string]string, len(countries))
	for k, v := range countries {
		out[k] = v
	}
	return out
}

// CountryConflicts lists the country-name entries discarded because an earlier entry
// already named the same code differently.
func CountryConflicts() []Conflict {
	return append([]Conflict(nil), countryConflicts...)
}
