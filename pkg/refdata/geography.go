package refdata

// Regions is the geographic hierarchy. Each region maps to exactly one legal
// entity.
var Regions = []Region{
	{
		Code:        "NA",
		LegalEntity: "First National Bank NA",
		SubRegions: []SubRegion{
			{Name: "North America", Countries: []Country{
				{Name: "United States", Sites: []Site{{"New York", "NYC01"}, {"San Francisco", "SFO01"}, {"Chicago", "CHI01"}, {"Houston", "HOU01"}, {"Dallas", "DFW01"}, {"Charlotte", "CLT01"}, {"Boston", "BOS01"}, {"Atlanta", "ATL01"}, {"Denver", "DEN01"}, {"Miami", "MIA01"}}},
				{Name: "Canada", Sites: []Site{{"Toronto", "YYZ01"}, {"Vancouver", "YVR01"}, {"Montreal", "YUL01"}, {"Calgary", "YYC01"}}},
			}},
		},
	},
	{
		Code:        "EMEA",
		LegalEntity: "First National Bank AG",
		SubRegions: []SubRegion{
			{Name: "Europe", Countries: []Country{
				{Name: "United Kingdom", Sites: []Site{{"London", "LHR01"}, {"Edinburgh", "EDI01"}, {"Manchester", "MAN01"}}},
				{Name: "Germany", Sites: []Site{{"Frankfurt", "FRA01"}, {"Munich", "MUC01"}, {"Berlin", "BER01"}}},
				{Name: "France", Sites: []Site{{"Paris", "CDG01"}, {"Lyon", "LYS01"}}},
				{Name: "Switzerland", Sites: []Site{{"Zurich", "ZRH01"}, {"Geneva", "GVA01"}}},
				{Name: "Spain", Sites: []Site{{"Madrid", "MAD01"}, {"Barcelona", "BCN01"}}},
				{Name: "Netherlands", Sites: []Site{{"Amsterdam", "AMS01"}}},
				{Name: "Ireland", Sites: []Site{{"Dublin", "DUB01"}}},
			}},
			{Name: "Middle East & Africa", Countries: []Country{
				{Name: "United Arab Emirates", Sites: []Site{{"Dubai", "DXB01"}, {"Abu Dhabi", "AUH01"}}},
				{Name: "Saudi Arabia", Sites: []Site{{"Riyadh", "RUH01"}}},
				{Name: "South Africa", Sites: []Site{{"Johannesburg", "JNB01"}, {"Cape Town", "CPT01"}}},
				{Name: "Nigeria", Sites: []Site{{"Lagos", "LOS01"}}},
			}},
		},
	},
	{
		Code:        "APAC",
		LegalEntity: "First National Bank Asia Ltd",
		SubRegions: []SubRegion{
			{Name: "Asia Pacific", Countries: []Country{
				{Name: "Japan", Sites: []Site{{"Tokyo", "NRT01"}, {"Osaka", "KIX01"}}},
				{Name: "Singapore", Sites: []Site{{"Singapore", "SIN01"}}},
				{Name: "Hong Kong", Sites: []Site{{"Hong Kong", "HKG01"}}},
				{Name: "Australia", Sites: []Site{{"Sydney", "SYD01"}, {"Melbourne", "MEL01"}}},
				{Name: "India", Sites: []Site{{"Mumbai", "BOM01"}, {"Bangalore", "BLR01"}, {"Chennai", "MAA01"}}},
				{Name: "China", Sites: []Site{{"Shanghai", "PVG01"}, {"Beijing", "PEK01"}}},
				{Name: "South Korea", Sites: []Site{{"Seoul", "ICN01"}}},
			}},
		},
	},
	{
		Code:        "LATAM",
		LegalEntity: "First National Bank Brazil SA",
		SubRegions: []SubRegion{
			{Name: "Latin America", Countries: []Country{
				{Name: "Brazil", Sites: []Site{{"São Paulo", "GRU01"}, {"Rio de Janeiro", "GIG01"}}},
				{Name: "Mexico", Sites: []Site{{"Mexico City", "MEX01"}, {"Monterrey", "MTY01"}}},
				{Name: "Argentina", Sites: []Site{{"Buenos Aires", "EZE01"}}},
				{Name: "Chile", Sites: []Site{{"Santiago", "SCL01"}}},
				{Name: "Colombia", Sites: []Site{{"Bogotá", "BOG01"}}},
				{Name: "Peru", Sites: []Site{{"Lima", "LIM01"}}},
			}},
		},
	},
}
