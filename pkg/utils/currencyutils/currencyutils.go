package currencyutils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// DefaultSymbol is the symbol used by Format and Parse
const DefaultSymbol = "$"

// ErrInvalidCurrencyCode indicates a code that is not an ISO 4217 currency
var ErrInvalidCurrencyCode = errors.New("invalid currency code")

// Format prefixes a numeric string with the default currency symbol.
// The value is not validated; "10" becomes "$10" and "" becomes "$".
func Format(value string) string {
	return FormatWithSymbol(value, DefaultSymbol)
}

// Parse strips one leading currency symbol from a display string.
// Symbols elsewhere in the string are left alone, so "a$b" is unchanged.
func Parse(display string) string {
	return ParseWithSymbol(display, DefaultSymbol)
}

// FormatWithSymbol prefixes value with symbol
func FormatWithSymbol(value, symbol string) string {
	return symbol + value
}

// ParseWithSymbol removes a single leading symbol if present
func ParseWithSymbol(display, symbol string) string {
	return strings.TrimPrefix(display, symbol)
}

// ValidateCode checks that code names an ISO 4217 currency and returns it
// in canonical upper case.
func ValidateCode(code string) (string, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, code)
	}
	return unit.String(), nil
}
