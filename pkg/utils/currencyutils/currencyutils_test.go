package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$10", Format("10"))
	assert.Equal(t, "$", Format(""))
	assert.Equal(t, "$$5", Format("$5"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{name: "leading symbol", display: "$10", want: "10"},
		{name: "no symbol", display: "10", want: "10"},
		{name: "inner symbol untouched", display: "a$b", want: "a$b"},
		{name: "trailing symbol untouched", display: "10$", want: "10$"},
		{name: "only one symbol stripped", display: "$$10", want: "$10"},
		{name: "empty", display: "", want: ""},
		{name: "symbol only", display: "$", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.display))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, v := range []string{"", "10", "1234.56", "0", "-3", "1,000"} {
		assert.Equal(t, v, Parse(Format(v)), "value %q", v)
	}
}

func TestWithSymbol(t *testing.T) {
	assert.Equal(t, "€5", FormatWithSymbol("5", "€"))
	assert.Equal(t, "5", ParseWithSymbol("€5", "€"))
	assert.Equal(t, "$5", ParseWithSymbol("$5", "€"))
	assert.Equal(t, "5", FormatWithSymbol("5", ""))
	assert.Equal(t, "5", ParseWithSymbol("5", ""))
}

func TestValidateCode(t *testing.T) {
	code, err := ValidateCode("usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", code)

	code, err = ValidateCode(" EUR ")
	require.NoError(t, err)
	assert.Equal(t, "EUR", code)

	_, err = ValidateCode("dollars")
	assert.ErrorIs(t, err, ErrInvalidCurrencyCode)

	_, err = ValidateCode("")
	assert.ErrorIs(t, err, ErrInvalidCurrencyCode)
}
