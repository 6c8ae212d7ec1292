package country

// codeByName is the curated name to alpha-2 code table covering every country
// the upstream dataset publishes a channel list for.
var codeByName = map[string]Code{
	// Africa
	"Algeria": "dz", "Angola": "ao", "Benin": "bj", "Botswana": "bw", "Burkina Faso": "bf",
	"Burundi": "bi", "Cameroon": "cm", "Cape Verde": "cv", "Central African Republic": "cf",
	"Chad": "td", "Comoros": "km", "Congo": "cg", "Democratic Republic of the Congo": "cd",
	"Djibouti": "dj", "Egypt": "eg", "Equatorial Guinea": "gq", "Eritrea": "er",
	"Ethiopia": "et", "Gabon": "ga", "Gambia": "gm", "Ghana": "gh", "Guinea": "gn",
	"Guinea-Bissau": "gw", "Ivory Coast": "ci", "Kenya": "ke", "Lesotho": "ls",
	"Liberia": "lr", "Libya": "ly", "Madagascar": "mg", "Malawi": "mw", "Mali": "ml",
	"Mauritania": "mr", "Mauritius": "mu", "Morocco": "ma", "Mozambique": "mz",
	"Namibia": "na", "Niger": "ne", "Nigeria": "ng", "Rwanda": "rw",
	"Sao Tome and Principe": "st", "Senegal": "sn", "Seychelles": "sc", "Sierra Leone": "sl",
	"Somalia": "so", "South Africa": "za", "South Sudan": "ss", "Sudan": "sd",
	"Swaziland": "sz", "Tanzania": "tz", "Togo": "tg", "Tunisia": "tn", "Uganda": "ug",
	"Zambia": "zm", "Zimbabwe": "zw",

	// Asia
	"Afghanistan": "af", "Armenia": "am", "Azerbaijan": "az", "Bahrain": "bh",
	"Bangladesh": "bd", "Bhutan": "bt", "Brunei": "bn", "Cambodia": "kh", "China": "cn",
	"Georgia": "ge", "Hong Kong": "hk", "India": "in", "Indonesia": "id", "Iran": "ir",
	"Iraq": "iq", "Israel": "il", "Japan": "jp", "Jordan": "jo", "Kazakhstan": "kz",
	"Kuwait": "kw", "Kyrgyzstan": "kg", "Laos": "la", "Lebanon": "lb", "Macau": "mo",
	"Malaysia": "my", "Maldives": "mv", "Mongolia": "mn", "Myanmar": "mm", "Nepal": "np",
	"North Korea": "kp", "Oman": "om", "Pakistan": "pk", "Palestine": "ps",
	"Philippines": "ph", "Qatar": "qa", "Saudi Arabia": "sa", "Singapore": "sg",
	"South Korea": "kr", "Sri Lanka": "lk", "Syria": "sy", "Taiwan": "tw",
	"Tajikistan": "tj", "Thailand": "th", "Timor-Leste": "tl", "Turkey": "tr",
	"Turkmenistan": "tm", "United Arab Emirates": "ae", "Uzbekistan": "uz",
	"Vietnam": "vn", "Yemen": "ye",

	// Europe
	"Albania": "al", "Andorra": "ad", "Austria": "at", "Belarus": "by", "Belgium": "be",
	"Bosnia and Herzegovina": "ba", "Bulgaria": "bg", "Croatia": "hr", "Cyprus": "cy",
	"Czech Republic": "cz", "Denmark": "dk", "Estonia": "ee", "Finland": "fi",
	"France": "fr", "Germany": "de", "Greece": "gr", "Hungary": "hu", "Iceland": "is",
	"Ireland": "ie", "Italy": "it", "Kosovo": "xk", "Latvia": "lv", "Liechtenstein": "li",
	"Lithuania": "lt", "Luxembourg": "lu", "Macedonia": "mk", "Malta": "mt",
	"Moldova": "md", "Monaco": "mc", "Montenegro": "me", "Netherlands": "nl",
	"Norway": "no", "Poland": "pl", "Portugal": "pt", "Romania": "ro", "Russia": "ru",
	"San Marino": "sm", "Serbia": "rs", "Slovakia": "sk", "Slovenia": "si",
	"Spain": "es", "Sweden": "se", "Switzerland": "ch", "Ukraine": "ua",
	"United Kingdom": "gb", "Vatican City": "va",

	// North America
	"Antigua and Barbuda": "ag", "Bahamas": "bs", "Barbados": "bb", "Belize": "bz",
	"Canada": "ca", "Costa Rica": "cr", "Cuba": "cu", "Dominica": "dm",
	"Dominican Republic": "do", "El Salvador": "sv", "Grenada": "gd", "Guatemala": "gt",
	"Haiti": "ht", "Honduras": "hn", "Jamaica": "jm", "Mexico": "mx", "Nicaragua": "ni",
	"Panama": "pa", "Saint Kitts and Nevis": "kn", "Saint Lucia": "lc",
	"Saint Vincent and the Grenadines": "vc", "Trinidad and Tobago": "tt",
	"United States": "us",

	// South America
	"Argentina": "ar", "Bolivia": "bo", "Brazil": "br", "Chile": "cl", "Colombia": "co",
	"Ecuador": "ec", "Guyana": "gy", "Paraguay": "py", "Peru": "pe", "Suriname": "sr",
	"Uruguay": "uy", "Venezuela": "ve",

	// Oceania
	"Australia": "au", "Fiji": "fj", "Kiribati": "ki", "Marshall Islands": "mh",
	"Micronesia": "fm", "Nauru": "nr", "New Zealand": "nz", "Palau": "pw",
	"Papua New Guinea": "pg", "Samoa": "ws", "Solomon Islands": "sb", "Tonga": "to",
	"Tuvalu": "tv", "Vanuatu": "vu",
}
