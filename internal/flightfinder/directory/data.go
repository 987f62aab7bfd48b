package directory

import "github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"

// airports is the static reference set. Directory order is significant:
// search ties are broken by position in this table.
var airports = []entity.Airport{
	// India, major international
	{IATA: "DEL", ICAO: "VIDP", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India", Lat: 28.5562, Lon: 77.1},
	{IATA: "BOM", ICAO: "VABB", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India", Lat: 19.0896, Lon: 72.8656},
	{IATA: "BLR", ICAO: "VOBL", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India", Lat: 13.1986, Lon: 77.7066},
	{IATA: "MAA", ICAO: "VOMM", Name: "Chennai International Airport", City: "Chennai", Country: "India", Lat: 12.9941, Lon: 80.1709},
	{IATA: "CCU", ICAO: "VECC", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata", Country: "India", Lat: 22.6547, Lon: 88.4467},
	{IATA: "HYD", ICAO: "VOHS", Name: "Rajiv Gandhi International Airport", City: "Hyderabad", Country: "India", Lat: 17.2403, Lon: 78.4294},
	{IATA: "COK", ICAO: "VOCI", Name: "Cochin International Airport", City: "Kochi", Country: "India", Lat: 10.152, Lon: 76.4019},
	{IATA: "AMD", ICAO: "VAAH", Name: "Sardar Vallabhbhai Patel International Airport", City: "Ahmedabad", Country: "India", Lat: 23.0726, Lon: 72.6177},
	{IATA: "PNQ", ICAO: "VAPO", Name: "Pune Airport", City: "Pune", Country: "India", Lat: 18.5822, Lon: 73.9197},
	{IATA: "GOI", ICAO: "VOGO", Name: "Goa Airport (Dabolim)", City: "Goa", Country: "India", Lat: 15.3808, Lon: 73.8314},

	// India, Uttarakhand
	{IATA: "DED", ICAO: "VIDN", Name: "Jolly Grant Airport", City: "Dehradun", Country: "India", Lat: 30.1897, Lon: 78.1806},
	{IATA: "PGH", ICAO: "VIPG", Name: "Pantnagar Airport", City: "Pantnagar", Country: "India", Lat: 29.0336, Lon: 79.4737},

	// India, Uttar Pradesh
	{IATA: "LKO", ICAO: "VILK", Name: "Chaudhary Charan Singh International Airport", City: "Lucknow", Country: "India", Lat: 26.7606, Lon: 80.8893},
	{IATA: "VNS", ICAO: "VIBN", Name: "Lal Bahadur Shastri Airport", City: "Varanasi", Country: "India", Lat: 25.452, Lon: 82.8596},
	{IATA: "IXD", ICAO: "VIAL", Name: "Allahabad Airport", City: "Prayagraj", Country: "India", Lat: 25.4404, Lon: 81.7339},
	{IATA: "KNU", ICAO: "VIKA", Name: "Kanpur Airport", City: "Kanpur", Country: "India", Lat: 26.4041, Lon: 80.4115},
	{IATA: "GWL", ICAO: "VIGW", Name: "Gwalior Airport", City: "Gwalior", Country: "India", Lat: 26.2936, Lon: 78.2277},
	{IATA: "AGR", ICAO: "VIAG", Name: "Kheria Airport", City: "Agra", Country: "India", Lat: 27.1579, Lon: 77.9611},
	{IATA: "GOR", ICAO: "VIGO", Name: "Gorakhpur Airport", City: "Gorakhpur", Country: "India", Lat: 26.7396, Lon: 83.4497},

	// India, Rajasthan
	{IATA: "JAI", ICAO: "VIJP", Name: "Jaipur International Airport", City: "Jaipur", Country: "India", Lat: 26.8247, Lon: 75.8122},
	{IATA: "UDR", ICAO: "VAUD", Name: "Maharana Pratap Airport", City: "Udaipur", Country: "India", Lat: 24.6177, Lon: 73.8961},
	{IATA: "JDH", ICAO: "VIJO", Name: "Jodhpur Airport", City: "Jodhpur", Country: "India", Lat: 26.2511, Lon: 73.0489},
	{IATA: "BKB", ICAO: "VEBK", Name: "Nal Airport", City: "Bikaner", Country: "India", Lat: 28.0707, Lon: 73.2052},

	// India, Gujarat
	{IATA: "STV", ICAO: "VASU", Name: "Surat Airport", City: "Surat", Country: "India", Lat: 21.114, Lon: 72.7417},
	{IATA: "RAJ", ICAO: "VARK", Name: "Rajkot Airport", City: "Rajkot", Country: "India", Lat: 22.3092, Lon: 70.7795},
	{IATA: "BHJ", ICAO: "VABJ", Name: "Bhuj Airport", City: "Bhuj", Country: "India", Lat: 23.2878, Lon: 69.6702},
	{IATA: "JGA", ICAO: "VIJG", Name: "Jamnagar Airport", City: "Jamnagar", Country: "India", Lat: 22.4655, Lon: 70.0126},

	// India, Himachal Pradesh
	{IATA: "DHM", ICAO: "VIGG", Name: "Gaggal Airport", City: "Dharamshala", Country: "India", Lat: 32.1651, Lon: 76.2634},
	{IATA: "KUU", ICAO: "VIKU", Name: "Kullu-Manali Airport", City: "Kullu", Country: "India", Lat: 31.8767, Lon: 77.1544},
	{IATA: "SLV", ICAO: "VISM", Name: "Shimla Airport", City: "Shimla", Country: "India", Lat: 31.0816, Lon: 77.0674},

	// India, Punjab and Haryana
	{IATA: "IXC", ICAO: "VICG", Name: "Chandigarh Airport", City: "Chandigarh", Country: "India", Lat: 30.6735, Lon: 76.7884},
	{IATA: "ATQ", ICAO: "VIAT", Name: "Amritsar Airport", City: "Amritsar", Country: "India", Lat: 31.7096, Lon: 74.7973},

	// India, Jammu and Kashmir
	{IATA: "IXJ", ICAO: "VOJS", Name: "Jammu Airport", City: "Jammu", Country: "India", Lat: 32.689, Lon: 74.8374},
	{IATA: "SXR", ICAO: "VISR", Name: "Sheikh ul-Alam Airport", City: "Srinagar", Country: "India", Lat: 34.0854, Lon: 74.7742},
	{IATA: "LEH", ICAO: "VILH", Name: "Kushok Bakula Rimpochee Airport", City: "Leh", Country: "India", Lat: 34.1358, Lon: 77.5465},

	// India, Bihar and Jharkhand
	{IATA: "PAT", ICAO: "VEPT", Name: "Jay Prakash Narayan International Airport", City: "Patna", Country: "India", Lat: 25.5913, Lon: 85.088},
	{IATA: "RNC", ICAO: "VERC", Name: "Birsa Munda Airport", City: "Ranchi", Country: "India", Lat: 23.3142, Lon: 85.3217},
	{IATA: "IXW", ICAO: "VEJS", Name: "Sonari Airport", City: "Jamshedpur", Country: "India", Lat: 22.8133, Lon: 86.1522},

	// India, West Bengal and Northeast
	{IATA: "IXB", ICAO: "VEBD", Name: "Bagdogra Airport", City: "Siliguri", Country: "India", Lat: 26.6812, Lon: 88.3285},
	{IATA: "GAU", ICAO: "VEGT", Name: "Lokpriya Gopinath Bordoloi International Airport", City: "Guwahati", Country: "India", Lat: 26.1061, Lon: 91.5859},
	{IATA: "IXA", ICAO: "VEAT", Name: "Agartala Airport", City: "Agartala", Country: "India", Lat: 23.887, Lon: 91.2403},
	{IATA: "IXS", ICAO: "VASK", Name: "Silchar Airport", City: "Silchar", Country: "India", Lat: 24.9129, Lon: 92.9787},
	{IATA: "DIB", ICAO: "VEMN", Name: "Dibrugarh Airport", City: "Dibrugarh", Country: "India", Lat: 27.4836, Lon: 95.0169},
	{IATA: "JRH", ICAO: "VEJS", Name: "Jorhat Airport", City: "Jorhat", Country: "India", Lat: 26.7315, Lon: 94.1755},
	{IATA: "IMF", ICAO: "VEIM", Name: "Imphal Airport", City: "Imphal", Country: "India", Lat: 24.7597, Lon: 93.8967},
	{IATA: "AJL", ICAO: "VELR", Name: "Lengpui Airport", City: "Aizawl", Country: "India", Lat: 23.8407, Lon: 92.6197},

	// India, Madhya Pradesh and Chhattisgarh
	{IATA: "BHO", ICAO: "VABP", Name: "Raja Bhoj Airport", City: "Bhopal", Country: "India", Lat: 23.2875, Lon: 77.3374},
	{IATA: "IDR", ICAO: "VAID", Name: "Devi Ahilya Bai Holkar Airport", City: "Indore", Country: "India", Lat: 22.7218, Lon: 75.8011},
	{IATA: "JLR", ICAO: "VAJL", Name: "Jabalpur Airport", City: "Jabalpur", Country: "India", Lat: 23.1778, Lon: 80.0522},
	{IATA: "RPR", ICAO: "VARP", Name: "Swami Vivekananda Airport", City: "Raipur", Country: "India", Lat: 21.18, Lon: 81.7388},
	{IATA: "JGB", ICAO: "VAJB", Name: "Jagdalpur Airport", City: "Jagdalpur", Country: "India", Lat: 19.0717, Lon: 82.0344},

	// India, Maharashtra
	{IATA: "NAG", ICAO: "VANP", Name: "Dr. Babasaheb Ambedkar International Airport", City: "Nagpur", Country: "India", Lat: 21.0925, Lon: 79.0475},
	{IATA: "IXU", ICAO: "VEAU", Name: "Aurangabad Airport", City: "Aurangabad", Country: "India", Lat: 19.8627, Lon: 75.3981},
	{IATA: "KLH", ICAO: "VAKP", Name: "Kolhapur Airport", City: "Kolhapur", Country: "India", Lat: 16.6647, Lon: 74.2894},

	// India, Odisha
	{IATA: "BBI", ICAO: "VEBS", Name: "Biju Patnaik International Airport", City: "Bhubaneswar", Country: "India", Lat: 20.244, Lon: 85.8178},
	{IATA: "JRG", ICAO: "VEJH", Name: "Veer Surendra Sai Airport", City: "Jharsuguda", Country: "India", Lat: 21.9133, Lon: 84.0503},

	// India, Karnataka
	{IATA: "IXG", ICAO: "VOBG", Name: "Belgaum Airport", City: "Belgaum", Country: "India", Lat: 15.8593, Lon: 74.6183},
	{IATA: "HBX", ICAO: "VOHB", Name: "Hubli Airport", City: "Hubli", Country: "India", Lat: 15.3617, Lon: 75.0849},
	{IATA: "MYQ", ICAO: "VOMY", Name: "Mysore Airport", City: "Mysore", Country: "India", Lat: 12.2302, Lon: 76.6497},

	// India, Tamil Nadu
	{IATA: "TRZ", ICAO: "VOTR", Name: "Tiruchirappalli International Airport", City: "Tiruchirappalli", Country: "India", Lat: 10.7654, Lon: 78.7094},
	{IATA: "CJB", ICAO: "VOCB", Name: "Coimbatore International Airport", City: "Coimbatore", Country: "India", Lat: 11.0297, Lon: 77.0434},
	{IATA: "MDU", ICAO: "VOMD", Name: "Madurai Airport", City: "Madurai", Country: "India", Lat: 9.8349, Lon: 78.0934},
	{IATA: "TRV", ICAO: "VOTV", Name: "Trivandrum International Airport", City: "Trivandrum", Country: "India", Lat: 8.4821, Lon: 76.92},
	{IATA: "TCR", ICAO: "VOTR", Name: "Tuticorin Airport", City: "Tuticorin", Country: "India", Lat: 8.7239, Lon: 78.0269},
	{IATA: "SXV", ICAO: "VOSM", Name: "Salem Airport", City: "Salem", Country: "India", Lat: 11.7833, Lon: 78.0656},

	// India, Kerala
	{IATA: "CNN", ICAO: "VOCN", Name: "Kannur International Airport", City: "Kannur", Country: "India", Lat: 11.9502, Lon: 75.5533},
	{IATA: "CCJ", ICAO: "VOCC", Name: "Calicut International Airport", City: "Kozhikode", Country: "India", Lat: 11.1362, Lon: 75.9553},

	// India, Andhra Pradesh and Telangana
	{IATA: "VGA", ICAO: "VOVZ", Name: "Vijayawada Airport", City: "Vijayawada", Country: "India", Lat: 16.5304, Lon: 80.7968},
	{IATA: "VTZ", ICAO: "VOVT", Name: "Vishakhapatnam Airport", City: "Vishakhapatnam", Country: "India", Lat: 17.7211, Lon: 83.2245},
	{IATA: "TIR", ICAO: "VOTP", Name: "Tirupati Airport", City: "Tirupati", Country: "India", Lat: 13.6327, Lon: 79.5433},

	// India, Andaman and Nicobar Islands
	{IATA: "IXZ", ICAO: "VABP", Name: "Veer Savarkar International Airport", City: "Port Blair", Country: "India", Lat: 11.641, Lon: 92.7296},

	// Middle East and Asia hubs
	{IATA: "DXB", ICAO: "OMDB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE", Lat: 25.2532, Lon: 55.3657},
	{IATA: "DOH", ICAO: "OTHH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Lat: 25.2733, Lon: 51.6081},
	{IATA: "AUH", ICAO: "OMAA", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "UAE", Lat: 24.433, Lon: 54.6512},
	{IATA: "SIN", ICAO: "WSSS", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Lat: 1.3644, Lon: 103.9915},
	{IATA: "HKG", ICAO: "VHHH", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Lat: 22.308, Lon: 113.9185},
	{IATA: "BKK", ICAO: "VTBS", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Lat: 14.0682, Lon: 100.6077},
	{IATA: "KUL", ICAO: "WMKK", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Lat: 2.7456, Lon: 101.7072},
	{IATA: "ICN", ICAO: "RKSI", Name: "Seoul Incheon International Airport", City: "Seoul", Country: "South Korea", Lat: 37.4602, Lon: 126.4407},
	{IATA: "NRT", ICAO: "RJAA", Name: "Tokyo Narita International Airport", City: "Tokyo", Country: "Japan", Lat: 35.772, Lon: 140.3929},
	{IATA: "HND", ICAO: "RJTT", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan", Lat: 35.5494, Lon: 139.7798},

	// Europe hubs
	{IATA: "LHR", ICAO: "EGLL", Name: "London Heathrow Airport", City: "London", Country: "UK", Lat: 51.47, Lon: -0.4543},
	{IATA: "LGW", ICAO: "EGKK", Name: "London Gatwick Airport", City: "London", Country: "UK", Lat: 51.1481, Lon: -0.1903},
	{IATA: "CDG", ICAO: "LFPG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Lat: 49.0097, Lon: 2.5479},
	{IATA: "FRA", ICAO: "EDDF", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Lat: 50.0379, Lon: 8.5622},
	{IATA: "AMS", ICAO: "EHAM", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Lat: 52.3105, Lon: 4.7683},
	{IATA: "IST", ICAO: "LTFM", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Lat: 41.2619, Lon: 28.7419},

	// North America hubs
	{IATA: "JFK", ICAO: "KJFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA", Lat: 40.6413, Lon: -73.7781},
	{IATA: "LGA", ICAO: "KLGA", Name: "LaGuardia Airport", City: "New York", Country: "USA", Lat: 40.7769, Lon: -73.874},
	{IATA: "LAX", ICAO: "KLAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA", Lat: 33.9425, Lon: -118.4081},
	{IATA: "ORD", ICAO: "KORD", Name: "Chicago O'Hare International Airport", City: "Chicago", Country: "USA", Lat: 41.9742, Lon: -87.9073},
	{IATA: "ATL", ICAO: "KATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "USA", Lat: 33.6407, Lon: -84.4277},
	{IATA: "DFW", ICAO: "KDFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "USA", Lat: 32.8998, Lon: -97.0403},
	{IATA: "SFO", ICAO: "KSFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "USA", Lat: 37.6213, Lon: -122.379},

	// Australia and Canada
	{IATA: "SYD", ICAO: "YSSY", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Lat: -33.9399, Lon: 151.1753},
	{IATA: "MEL", ICAO: "YMML", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Lat: -37.669, Lon: 144.841},
	{IATA: "YYZ", ICAO: "CYYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Lat: 43.6777, Lon: -79.6248},
}

// cityAliases maps lowercased city names without a serviced airport to the
// IATA codes of the nearest airports.
var cityAliases = map[string][]string{
	"dehradun":    {"DED"},
	"haridwar":    {"DED"},
	"rishikesh":   {"DED"},
	"mussoorie":   {"DED"},
	"nainital":    {"PGH"},
	"haldwani":    {"PGH"},
	"almora":      {"PGH"},
	"shimla":      {"SLV"},
	"manali":      {"KUU", "SLV"},
	"dharamshala": {"DHM"},
	"mcleodganj":  {"DHM"},
	"dalhousie":   {"DHM"},
	"kasauli":     {"IXC"},
	"rajkot":      {"RAJ"},
	"jamnagar":    {"JGA"},
	"dwarka":      {"JGA"},
	"somnath":     {"JGA"},
	"mount abu":   {"UDR"},
	"chittorgarh": {"UDR"},
	"pushkar":     {"JAI"},
	"ajmer":       {"JAI"},
	"ranthambore": {"JAI"},
	"jim corbett": {"DED"},
	"corbett":     {"DED"},
}

var majorHubs = map[string]struct{}{
	"DEL": {}, "BOM": {}, "BLR": {}, "MAA": {}, "CCU": {}, "HYD": {},
	"COK": {}, "AMD": {}, "PNQ": {}, "GOI": {},
	"DXB": {}, "DOH": {}, "AUH": {},
	"LHR": {}, "CDG": {}, "FRA": {}, "AMS": {}, "IST": {},
	"JFK": {}, "LAX": {}, "ORD": {}, "ATL": {}, "DFW": {}, "SFO": {},
	"SIN": {}, "HKG": {}, "ICN": {}, "NRT": {}, "BKK": {},
	"SYD": {}, "MEL": {},
}
