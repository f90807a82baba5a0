package markets

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Index pairs an index display name with its ticker symbol.
type Index struct {
	Name   string
	Symbol string
}

// Exchange is the static market record for a country.
type Exchange struct {
	Exchanges       []string
	Indices         []Index
	PrimaryExchange string
	HQLocation      string
}

// ExchangeInfo is an Exchange resolved for a specific country query.
type ExchangeInfo struct {
	Country string
	Exchange
}

// stockExchanges maps lowercase country names to their exchanges and major
// indices. Index order is the report order. The table is immutable for the
// process lifetime.
var stockExchanges = map[string]Exchange{
	"japan": {
		Exchanges: []string{"Tokyo Stock Exchange (TSE)", "Osaka Exchange (OSE)"},
		Indices: []Index{
			{Name: "Nikkei 225", Symbol: "^N225"},
			{Name: "TOPIX", Symbol: "^TOPX"},
			{Name: "JPX-Nikkei 400", Symbol: "^JPN400"},
		},
		PrimaryExchange: "Tokyo Stock Exchange",
		HQLocation:      "Tokyo, Japan",
	},
	"india": {
		Exchanges: []string{"National Stock Exchange (NSE)", "Bombay Stock Exchange (BSE)"},
		Indices: []Index{
			{Name: "NIFTY 50", Symbol: "^NSEI"},
			{Name: "SENSEX", Symbol: "^BSESN"},
			{Name: "NIFTY Bank", Symbol: "^NSEBANK"},
		},
		PrimaryExchange: "National Stock Exchange of India",
		HQLocation:      "Mumbai, Maharashtra, India",
	},
	"united states": {
		Exchanges: []string{"New York Stock Exchange (NYSE)", "NASDAQ", "CBOE"},
		Indices: []Index{
			{Name: "S&P 500", Symbol: "^GSPC"},
			{Name: "Dow Jones", Symbol: "^DJI"},
			{Name: "NASDAQ Composite", Symbol: "^IXIC"},
			{Name: "Russell 2000", Symbol: "^RUT"},
		},
		PrimaryExchange: "New York Stock Exchange",
		HQLocation:      "New York, NY, USA",
	},
	"usa": {
		Exchanges: []string{"New York Stock Exchange (NYSE)", "NASDAQ", "CBOE"},
		Indices: []Index{
			{Name: "S&P 500", Symbol: "^GSPC"},
			{Name: "Dow Jones", Symbol: "^DJI"},
			{Name: "NASDAQ Composite", Symbol: "^IXIC"},
			{Name: "Russell 2000", Symbol: "^RUT"},
		},
		PrimaryExchange: "New York Stock Exchange",
		HQLocation:      "New York, NY, USA",
	},
	"united kingdom": {
		Exchanges: []string{"London Stock Exchange (LSE)"},
		Indices: []Index{
			{Name: "FTSE 100", Symbol: "^FTSE"},
			{Name: "FTSE 250", Symbol: "^FTMC"},
			{Name: "FTSE All-Share", Symbol: "^FTAS"},
		},
		PrimaryExchange: "London Stock Exchange",
		HQLocation:      "London, United Kingdom",
	},
	"uk": {
		Exchanges: []string{"London Stock Exchange (LSE)"},
		Indices: []Index{
			{Name: "FTSE 100", Symbol: "^FTSE"},
			{Name: "FTSE 250", Symbol: "^FTMC"},
		},
		PrimaryExchange: "London Stock Exchange",
		HQLocation:      "London, United Kingdom",
	},
	"south korea": {
		Exchanges: []string{"Korea Exchange (KRX)"},
		Indices: []Index{
			{Name: "KOSPI", Symbol: "^KS11"},
			{Name: "KOSDAQ", Symbol: "^KQ11"},
		},
		PrimaryExchange: "Korea Exchange",
		HQLocation:      "Seoul, South Korea",
	},
	"korea": {
		Exchanges: []string{"Korea Exchange (KRX)"},
		Indices: []Index{
			{Name: "KOSPI", Symbol: "^KS11"},
			{Name: "KOSDAQ", Symbol: "^KQ11"},
		},
		PrimaryExchange: "Korea Exchange",
		HQLocation:      "Seoul, South Korea",
	},
	"china": {
		Exchanges: []string{
			"Shanghai Stock Exchange (SSE)",
			"Shenzhen Stock Exchange (SZSE)",
			"Hong Kong Stock Exchange (HKEX)",
		},
		Indices: []Index{
			{Name: "SSE Composite", Symbol: "000001.SS"},
			{Name: "Shenzhen Component", Symbol: "399001.SZ"},
			{Name: "Hang Seng", Symbol: "^HSI"},
		},
		PrimaryExchange: "Shanghai Stock Exchange",
		HQLocation:      "Shanghai, China",
	},
	"germany": {
		Exchanges: []string{"Frankfurt Stock Exchange (FWB)"},
		Indices: []Index{
			{Name: "DAX", Symbol: "^GDAXI"},
			{Name: "MDAX", Symbol: "^MDAXI"},
			{Name: "TecDAX", Symbol: "^TECDAX"},
		},
		PrimaryExchange: "Frankfurt Stock Exchange",
		HQLocation:      "Frankfurt, Germany",
	},
	"france": {
		Exchanges: []string{"Euronext Paris"},
		Indices: []Index{
			{Name: "CAC 40", Symbol: "^FCHI"},
		},
		PrimaryExchange: "Euronext Paris",
		HQLocation:      "Paris, France",
	},
	"canada": {
		Exchanges: []string{"Toronto Stock Exchange (TSX)"},
		Indices: []Index{
			{Name: "S&P/TSX Composite", Symbol: "^GSPTSE"},
			{Name: "S&P/TSX 60", Symbol: "^TX60"},
		},
		PrimaryExchange: "Toronto Stock Exchange",
		HQLocation:      "Toronto, Ontario, Canada",
	},
	"australia": {
		Exchanges: []string{"Australian Securities Exchange (ASX)"},
		Indices: []Index{
			{Name: "ASX 200", Symbol: "^AXJO"},
			{Name: "All Ordinaries", Symbol: "^AORD"},
		},
		PrimaryExchange: "Australian Securities Exchange",
		HQLocation:      "Sydney, NSW, Australia",
	},
	"hong kong": {
		Exchanges: []string{"Hong Kong Stock Exchange (HKEX)"},
		Indices: []Index{
			{Name: "Hang Seng", Symbol: "^HSI"},
			{Name: "Hang Seng Tech", Symbol: "^HSTECH"},
		},
		PrimaryExchange: "Hong Kong Stock Exchange",
		HQLocation:      "Hong Kong",
	},
	"singapore": {
		Exchanges: []string{"Singapore Exchange (SGX)"},
		Indices: []Index{
			{Name: "Straits Times Index", Symbol: "^STI"},
		},
		PrimaryExchange: "Singapore Exchange",
		HQLocation:      "Singapore",
	},
	"brazil": {
		Exchanges: []string{"B3 - Brasil Bolsa Balcão"},
		Indices: []Index{
			{Name: "Bovespa", Symbol: "^BVSP"},
		},
		PrimaryExchange: "B3 - Brasil Bolsa Balcão",
		HQLocation:      "São Paulo, Brazil",
	},
	"switzerland": {
		Exchanges: []string{"SIX Swiss Exchange"},
		Indices: []Index{
			{Name: "SMI", Symbol: "^SSMI"},
		},
		PrimaryExchange: "SIX Swiss Exchange",
		HQLocation:      "Zurich, Switzerland",
	},
	"spain": {
		Exchanges: []string{"Bolsa de Madrid"},
		Indices: []Index{
			{Name: "IBEX 35", Symbol: "^IBEX"},
		},
		PrimaryExchange: "Bolsa de Madrid",
		HQLocation:      "Madrid, Spain",
	},
	"italy": {
		Exchanges: []string{"Borsa Italiana"},
		Indices: []Index{
			{Name: "FTSE MIB", Symbol: "FTSEMIB.MI"},
		},
		PrimaryExchange: "Borsa Italiana",
		HQLocation:      "Milan, Italy",
	},
	"netherlands": {
		Exchanges: []string{"Euronext Amsterdam"},
		Indices: []Index{
			{Name: "AEX", Symbol: "^AEX"},
		},
		PrimaryExchange: "Euronext Amsterdam",
		HQLocation:      "Amsterdam, Netherlands",
	},
	"sweden": {
		Exchanges: []string{"Nasdaq Stockholm"},
		Indices: []Index{
			{Name: "OMX Stockholm 30", Symbol: "^OMX"},
		},
		PrimaryExchange: "Nasdaq Stockholm",
		HQLocation:      "Stockholm, Sweden",
	},
	"russia": {
		Exchanges: []string{"Moscow Exchange (MOEX)"},
		Indices: []Index{
			{Name: "MOEX Russia Index", Symbol: "IMOEX.ME"},
		},
		PrimaryExchange: "Moscow Exchange",
		HQLocation:      "Moscow, Russia",
	},
	"mexico": {
		Exchanges: []string{"Mexican Stock Exchange (BMV)"},
		Indices: []Index{
			{Name: "IPC", Symbol: "^MXX"},
		},
		PrimaryExchange: "Mexican Stock Exchange",
		HQLocation:      "Mexico City, Mexico",
	},
	"thailand": {
		Exchanges: []string{"Stock Exchange of Thailand (SET)"},
		Indices: []Index{
			{Name: "SET Index", Symbol: "^SET.BK"},
		},
		PrimaryExchange: "Stock Exchange of Thailand",
		HQLocation:      "Bangkok, Thailand",
	},
	"indonesia": {
		Exchanges: []string{"Indonesia Stock Exchange (IDX)"},
		Indices: []Index{
			{Name: "Jakarta Composite", Symbol: "^JKSE"},
		},
		PrimaryExchange: "Indonesia Stock Exchange",
		HQLocation:      "Jakarta, Indonesia",
	},
	"malaysia": {
		Exchanges: []string{"Bursa Malaysia"},
		Indices: []Index{
			{Name: "KLCI", Symbol: "^KLSE"},
		},
		PrimaryExchange: "Bursa Malaysia",
		HQLocation:      "Kuala Lumpur, Malaysia",
	},
}

// LookupExchange returns the static market record for a country. The match is
// an exact lowercase comparison; no network access is involved.
func LookupExchange(country string) (*ExchangeInfo, error) {
	key := strings.ToLower(strings.TrimSpace(country))
	ex, ok := stockExchanges[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}

	return &ExchangeInfo{
		Country:  titleCaser.String(country),
		Exchange: ex,
	}, nil
}
