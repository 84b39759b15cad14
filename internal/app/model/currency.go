package model

// Currency is a static display-conversion record. The selected currency is
// per-request state and never persisted; prices are stored in the base
// currency and multiplied by Rate at display time.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"` // multiplier against the base currency
	Flag   string  `json:"flag"`
	Name   string  `json:"name"`
}

// Currencies is the supported set; the first entry is the base currency
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Rate: 1, Flag: "🇺🇸", Name: "USD"},
	{Code: "EUR", Symbol: "€", Rate: 0.92, Flag: "🇪🇺", Name: "EUR"},
	{Code: "GBP", Symbol: "£", Rate: 0.79, Flag: "🇬🇧", Name: "GBP"},
	{Code: "MAD", Symbol: "DH", Rate: 10.12, Flag: "🇲🇦", Name: "MAD"},
}

// CurrencyByCode looks up a currency; ok is false for unknown codes
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
