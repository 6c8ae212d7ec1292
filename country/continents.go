package country

// Continent groups the recognized country names for browsing.
type Continent struct {
	Name      string
	Countries []string
}

// Continents is the ordered browse hierarchy. A few transcontinental
// countries (Armenia, Azerbaijan, Georgia) appear under both Asia and Europe.
var Continents = []Continent{
	{
		Name: "Africa",
		Countries: []string{
			"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi",
			"Cameroon", "Cape Verde", "Central African Republic", "Chad", "Comoros",
			"Congo", "Democratic Republic of the Congo", "Djibouti", "Egypt",
			"Equatorial Guinea", "Eritrea", "Ethiopia", "Gabon", "Gambia", "Ghana",
			"Guinea", "Guinea-Bissau", "Ivory Coast", "Kenya", "Lesotho", "Liberia",
			"Libya", "Madagascar", "Malawi", "Mali", "Mauritania", "Mauritius",
			"Morocco", "Mozambique", "Namibia", "Niger", "Nigeria", "Rwanda",
			"Sao Tome and Principe", "Senegal", "Seychelles", "Sierra Leone",
			"Somalia", "South Africa", "South Sudan", "Sudan", "Swaziland", "Tanzania",
			"Togo", "Tunisia", "Uganda", "Zambia", "Zimbabwe",
		},
	},
	{
		Name: "Asia",
		Countries: []string{
			"Afghanistan", "Armenia", "Azerbaijan", "Bahrain", "Bangladesh", "Bhutan",
			"Brunei", "Cambodia", "China", "Georgia", "Hong Kong", "India", "Indonesia",
			"Iran", "Iraq", "Israel", "Japan", "Jordan", "Kazakhstan", "Kuwait",
			"Kyrgyzstan", "Laos", "Lebanon", "Macau", "Malaysia", "Maldives", "Mongolia",
			"Myanmar", "Nepal", "North Korea", "Oman", "Pakistan", "Palestine",
			"Philippines", "Qatar", "Saudi Arabia", "Singapore", "South Korea",
			"Sri Lanka", "Syria", "Taiwan", "Tajikistan", "Thailand", "Timor-Leste",
			"Turkey", "Turkmenistan", "United Arab Emirates", "Uzbekistan", "Vietnam", "Yemen",
		},
	},
	{
		Name: "Europe",
		Countries: []string{
			"Albania", "Andorra", "Armenia", "Austria", "Azerbaijan", "Belarus",
			"Belgium", "Bosnia and Herzegovina", "Bulgaria", "Croatia", "Cyprus",
			"Czech Republic", "Denmark", "Estonia", "Finland", "France", "Georgia",
			"Germany", "Greece", "Hungary", "Iceland", "Ireland", "Italy", "Kosovo",
			"Latvia", "Liechtenstein", "Lithuania", "Luxembourg", "Macedonia",
			"Malta", "Moldova", "Monaco", "Montenegro", "Netherlands", "Norway",
			"Poland", "Portugal", "Romania", "Russia", "San Marino", "Serbia",
			"Slovakia", "Slovenia", "Spain", "Sweden", "Switzerland", "Ukraine",
			"United Kingdom", "Vatican City",
		},
	},
	{
		Name: "North America",
		Countries: []string{
			"Antigua and Barbuda", "Bahamas", "Barbados", "Belize", "Canada",
			"Costa Rica", "Cuba", "Dominica", "Dominican Republic", "El Salvador",
			"Grenada", "Guatemala", "Haiti", "Honduras", "Jamaica", "Mexico",
			"Nicaragua", "Panama", "Saint Kitts and Nevis", "Saint Lucia",
			"Saint Vincent and the Grenadines", "Trinidad and Tobago", "United States",
		},
	},
	{
		Name: "South America",
		Countries: []string{
			"Argentina", "Bolivia", "Brazil", "Chile", "Colombia", "Ecuador",
			"Guyana", "Paraguay", "Peru", "Suriname", "Uruguay", "Venezuela",
		},
	},
	{
		Name: "Oceania",
		Countries: []string{
			"Australia", "Fiji", "Kiribati", "Marshall Islands", "Micronesia",
			"Nauru", "New Zealand", "Palau", "Papua New Guinea", "Samoa",
			"Solomon Islands", "Tonga", "Tuvalu", "Vanuatu",
		},
	},
}

// ContinentNames returns the browse hierarchy's top-level names in display order.
func ContinentNames() []string {
	names := make([]string, len(Continents))
	for i, c := range Continents {
		names[i] = c.Name
	}
	return names
}

// CountriesIn returns the country names grouped under a continent,
// or nil for an unknown continent name.
func CountriesIn(continent string) []string {
	for _, c := range Continents {
		if c.Name == continent {
			return c.Countries
		}
	}
	return nil
}
