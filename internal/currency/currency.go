// Package currency maps ISO currency codes to the compact display
// symbols shown on the watch face.
package currency

// symbols covers the common settlement currencies; JPY and CNY share ¥.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "CHF",
	"SEK": "kr",
	"NZD": "NZ$",
}

// Symbol returns the display symbol for a currency code, or the code
// itself when no symbol is known.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}
