// Package currency converts and formats amounts using a static exchange-rate
// table. Rates are relative to USD, the base currency for all stored costs.
package currency

import "fmt"

// Rates maps a currency code to its rate against one USD.
var Rates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 150.25,
	"CAD": 1.36,
	"AUD": 1.52,
	"CNY": 7.23,
	"INR": 83.45,
	"MXN": 16.82,
	"BRL": 5.07,
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CNY": "¥",
	"INR": "₹",
	"MXN": "$",
	"BRL": "R$",
}

var countryCurrency = map[string]string{
	"US": "USD",
	"CA": "CAD",
	"GB": "GBP",
	"JP": "JPY",
	"CN": "CNY",
	"IN": "INR",
	"AU": "AUD",
	"MX": "MXN",
	"BR": "BRL",
}

var euroCountries = map[string]bool{
	"AT": true, "BE": true, "CY": true, "EE": true, "FI": true,
	"FR": true, "DE": true, "GR": true, "IE": true, "IT": true,
	"LV": true, "LT": true, "LU": true, "MT": true, "NL": true,
	"PT": true, "SK": true, "SI": true, "ES": true,
}

// IsSupported reports whether code has a known rate.
func IsSupported(code string) bool {
	_, ok := Rates[code]
	return ok
}

// Convert converts a USD amount into the given currency. Unknown codes fall
// back to USD (rate 1).
func Convert(usdAmount float64, code string) float64 {
	rate, ok := Rates[code]
	if !ok {
		rate = 1
	}
	return usdAmount * rate
}

// Format converts a USD amount and renders it with the currency's symbol and
// two decimal places. The yen has no minor unit and is rendered without
// decimals.
func Format(usdAmount float64, code string) string {
	symbol, ok := symbols[code]
	if !ok {
		symbol, code = "$", "USD"
	}
	amount := Convert(usdAmount, code)
	if code == "JPY" {
		return fmt.Sprintf("%s%.0f", symbol, amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// DefaultForCountry returns the conventional currency for an ISO country
// code, defaulting to USD.
func DefaultForCountry(countryCode string) string {
	if euroCountries[countryCode] {
		return "EUR"
	}
	if code, ok := countryCurrency[countryCode]; ok {
		return code
	}
	return "USD"
}
