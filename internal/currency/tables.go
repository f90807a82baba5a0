package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CountryCurrency is the static currency record for a country.
type CountryCurrency struct {
	Country string
	Code    string
	Name    string
}

// countryCurrencies maps lowercase country names to ISO 4217 currency codes.
// The table is immutable for the process lifetime; a country absent from it
// is a lookup error, never a guess.
var countryCurrencies = map[string]CountryCurrency{
	"japan":          {Code: "JPY", Name: "Japanese Yen"},
	"india":          {Code: "INR", Name: "Indian Rupee"},
	"united states":  {Code: "USD", Name: "US Dollar"},
	"usa":            {Code: "USD", Name: "US Dollar"},
	"united kingdom": {Code: "GBP", Name: "British Pound Sterling"},
	"uk":             {Code: "GBP", Name: "British Pound Sterling"},
	"south korea":    {Code: "KRW", Name: "South Korean Won"},
	"korea":          {Code: "KRW", Name: "South Korean Won"},
	"china":          {Code: "CNY", Name: "Chinese Yuan"},
	"germany":        {Code: "EUR", Name: "Euro"},
	"france":         {Code: "EUR", Name: "Euro"},
	"italy":          {Code: "EUR", Name: "Euro"},
	"spain":          {Code: "EUR", Name: "Euro"},
	"canada":         {Code: "CAD", Name: "Canadian Dollar"},
	"australia":      {Code: "AUD", Name: "Australian Dollar"},
	"brazil":         {Code: "BRL", Name: "Brazilian Real"},
	"mexico":         {Code: "MXN", Name: "Mexican Peso"},
	"switzerland":    {Code: "CHF", Name: "Swiss Franc"},
	"singapore":      {Code: "SGD", Name: "Singapore Dollar"},
	"hong kong":      {Code: "HKD", Name: "Hong Kong Dollar"},
	"russia":         {Code: "RUB", Name: "Russian Ruble"},
	"south africa":   {Code: "ZAR", Name: "South African Rand"},
	"turkey":         {Code: "TRY", Name: "Turkish Lira"},
	"saudi arabia":   {Code: "SAR", Name: "Saudi Riyal"},
	"uae":            {Code: "AED", Name: "UAE Dirham"},
	"thailand":       {Code: "THB", Name: "Thai Baht"},
	"malaysia":       {Code: "MYR", Name: "Malaysian Ringgit"},
	"indonesia":      {Code: "IDR", Name: "Indonesian Rupiah"},
	"philippines":    {Code: "PHP", Name: "Philippine Peso"},
	"vietnam":        {Code: "VND", Name: "Vietnamese Dong"},
	"poland":         {Code: "PLN", Name: "Polish Zloty"},
	"sweden":         {Code: "SEK", Name: "Swedish Krona"},
	"norway":         {Code: "NOK", Name: "Norwegian Krone"},
	"denmark":        {Code: "DKK", Name: "Danish Krone"},
	"new zealand":    {Code: "NZD", Name: "New Zealand Dollar"},
	"argentina":      {Code: "ARS", Name: "Argentine Peso"},
	"chile":          {Code: "CLP", Name: "Chilean Peso"},
	"colombia":       {Code: "COP", Name: "Colombian Peso"},
	"egypt":          {Code: "EGP", Name: "Egyptian Pound"},
	"israel":         {Code: "ILS", Name: "Israeli Shekel"},
	"pakistan":       {Code: "PKR", Name: "Pakistani Rupee"},
	"bangladesh":     {Code: "BDT", Name: "Bangladeshi Taka"},
	"nigeria":        {Code: "NGN", Name: "Nigerian Naira"},
	"kenya":          {Code: "KES", Name: "Kenyan Shilling"},
}

// Lookup returns the static currency record for a country. The match is an
// exact lowercase comparison; no network access is involved.
func Lookup(country string) (CountryCurrency, error) {
	key := strings.ToLower(strings.TrimSpace(country))
	cc, ok := countryCurrencies[key]
	if !ok {
		return CountryCurrency{}, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}

	cc.Country = titleCaser.String(country)
	return cc, nil
}
