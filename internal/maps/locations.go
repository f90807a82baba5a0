package maps

// Location is the static HQ record for a stock exchange. Query is the search
// string used for the maps embed; it differs from the exchange name where a
// city qualifier improves the place match.
type Location struct {
	Address   string
	Latitude  float64
	Longitude float64
	Query     string
}

// exchangeLocations maps exchange display names to their headquarters. The
// table is immutable for the process lifetime.
var exchangeLocations = map[string]Location{
	"Tokyo Stock Exchange": {
		Address:   "Tokyo Stock Exchange, 2-1 Nihonbashi-Kabutocho, Chuo City, Tokyo, Japan",
		Latitude:  35.6809,
		Longitude: 139.7776,
		Query:     "Tokyo Stock Exchange",
	},
	"National Stock Exchange of India": {
		Address:   "Exchange Plaza, Bandra Kurla Complex, Bandra East, Mumbai, Maharashtra 400051, India",
		Latitude:  19.0633,
		Longitude: 72.8706,
		Query:     "National Stock Exchange of India, Mumbai",
	},
	"New York Stock Exchange": {
		Address:   "11 Wall St, New York, NY 10005, United States",
		Latitude:  40.7074,
		Longitude: -74.0113,
		Query:     "New York Stock Exchange",
	},
	"London Stock Exchange": {
		Address:   "10 Paternoster Square, London EC4M 7LS, United Kingdom",
		Latitude:  51.5142,
		Longitude: -0.0991,
		Query:     "London Stock Exchange",
	},
	"Korea Exchange": {
		Address:   "76 Yeouinaru-ro, Yeongdeungpo-gu, Seoul, South Korea",
		Latitude:  37.5262,
		Longitude: 126.9282,
		Query:     "Korea Exchange, Seoul",
	},
	"Shanghai Stock Exchange": {
		Address:   "528 Pudong South Road, Pudong, Shanghai, China",
		Latitude:  31.2385,
		Longitude: 121.5007,
		Query:     "Shanghai Stock Exchange",
	},
	"Frankfurt Stock Exchange": {
		Address:   "Börsenplatz 4, 60313 Frankfurt am Main, Germany",
		Latitude:  50.1135,
		Longitude: 8.6762,
		Query:     "Frankfurt Stock Exchange",
	},
	"Euronext Paris": {
		Address:   "39 Rue Cambon, 75001 Paris, France",
		Latitude:  48.8675,
		Longitude: 2.3265,
		Query:     "Euronext Paris",
	},
	"Toronto Stock Exchange": {
		Address:   "The Exchange Tower, 130 King St W, Toronto, ON M5X 1J2, Canada",
		Latitude:  43.6478,
		Longitude: -79.3813,
		Query:     "Toronto Stock Exchange",
	},
	"Australian Securities Exchange": {
		Address:   "20 Bridge St, Sydney NSW 2000, Australia",
		Latitude:  -33.8646,
		Longitude: 151.2101,
		Query:     "Australian Securities Exchange, Sydney",
	},
	"Hong Kong Stock Exchange": {
		Address:   "8 Finance St, Central, Hong Kong",
		Latitude:  22.2845,
		Longitude: 114.1580,
		Query:     "Hong Kong Stock Exchange",
	},
	"Singapore Exchange": {
		Address:   "2 Shenton Way, Singapore 068804",
		Latitude:  1.2789,
		Longitude: 103.8497,
		Query:     "Singapore Exchange",
	},
	"B3 - Brasil Bolsa Balcão": {
		Address:   "Praça Antonio Prado, 48 - Centro Histórico de São Paulo, São Paulo, Brazil",
		Latitude:  -23.5449,
		Longitude: -46.6342,
		Query:     "B3 Stock Exchange, São Paulo",
	},
	"SIX Swiss Exchange": {
		Address:   "Pfingstweidstrasse 110, 8005 Zürich, Switzerland",
		Latitude:  47.3897,
		Longitude: 8.5162,
		Query:     "SIX Swiss Exchange, Zurich",
	},
	"Bolsa de Madrid": {
		Address:   "Plaza de la Lealtad, 1, 28014 Madrid, Spain",
		Latitude:  40.4169,
		Longitude: -3.6943,
		Query:     "Bolsa de Madrid",
	},
	"Borsa Italiana": {
		Address:   "Piazza Affari, 6, 20123 Milano MI, Italy",
		Latitude:  45.4654,
		Longitude: 9.1859,
		Query:     "Borsa Italiana, Milan",
	},
	"Euronext Amsterdam": {
		Address:   "Beursplein 5, 1012 JW Amsterdam, Netherlands",
		Latitude:  52.3736,
		Longitude: 4.8936,
		Query:     "Euronext Amsterdam",
	},
	"Nasdaq Stockholm": {
		Address:   "Tullvaktsvägen 15, 115 56 Stockholm, Sweden",
		Latitude:  59.3326,
		Longitude: 18.0824,
		Query:     "Nasdaq Stockholm",
	},
	"Moscow Exchange": {
		Address:   "13 Bolshoy Kislovsky Lane, Moscow, Russia",
		Latitude:  55.7595,
		Longitude: 37.6028,
		Query:     "Moscow Exchange",
	},
	"Mexican Stock Exchange": {
		Address:   "Paseo de la Reforma 255, Cuauhtémoc, Mexico City, Mexico",
		Latitude:  19.4284,
		Longitude: -99.1677,
		Query:     "Mexican Stock Exchange, Mexico City",
	},
	"Stock Exchange of Thailand": {
		Address:   "93 Ratchadaphisek Road, Din Daeng, Bangkok, Thailand",
		Latitude:  13.7649,
		Longitude: 100.5630,
		Query:     "Stock Exchange of Thailand, Bangkok",
	},
	"Indonesia Stock Exchange": {
		Address:   "Jl. Jend. Sudirman Kav 52-53, Jakarta 12190, Indonesia",
		Latitude:  -6.2258,
		Longitude: 106.8086,
		Query:     "Indonesia Stock Exchange, Jakarta",
	},
	"Bursa Malaysia": {
		Address:   "15 Jalan Semantan, Bukit Damansara, 50490 Kuala Lumpur, Malaysia",
		Latitude:  3.1520,
		Longitude: 101.6695,
		Query:     "Bursa Malaysia, Kuala Lumpur",
	},
}
