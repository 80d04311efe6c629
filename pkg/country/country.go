// Package country maps ISO 3166-1 alpha-2 codes to display names.
//
// The default table is decoded from the embedded dataset during package
// initialization and never written again, so it is safe to read from any
// goroutine without locking.
package country

import (
	_ "embed"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

//go:embed countries.yaml
var embeddedDataset []byte

var defaultTable = mustDecodeTable(embeddedDataset)

// Country is one record of a country dataset
type Country struct {
	Alpha2 string `json:"alpha2" yaml:"alpha2"`
	Name   string `json:"name" yaml:"name"`
}

// BuildCountryMap indexes names by lowercased alpha-2 code.
// When two records share a code after lowercasing, the later record wins.
func BuildCountryMap(countries []Country) map[string]string {
	names := make(map[string]string, len(countries))
	for _, c := range countries {
		names[strings.ToLower(c.Alpha2)] = c.Name
	}
	return names
}

// Table is a read-only country lookup
type Table struct {
	names map[string]string
}

// NewTable builds a table from countries
func NewTable(countries []Country) *Table {
	return &Table{names: BuildCountryMap(countries)}
}

// Name returns the display name for code, matched case-insensitively
func (t *Table) Name(code string) (string, bool) {
	name, ok := t.names[strings.ToLower(code)]
	return name, ok
}

// Len returns the number of distinct codes
func (t *Table) Len() int {
	return len(t.names)
}

// Countries returns the table contents sorted by name, codes upper-cased.
// The slice is a fresh copy.
func (t *Table) Countries() []Country {
	countries := make([]Country, 0, len(t.names))
	for code, name := range t.names {
		countries = append(countries, Country{Alpha2: strings.ToUpper(code), Name: name})
	}

	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Name != countries[j].Name {
			return countries[i].Name < countries[j].Name
		}
		return countries[i].Alpha2 < countries[j].Alpha2
	})
	return countries
}

// Default returns the table built from the embedded dataset
func Default() *Table {
	return defaultTable
}

// Name looks code up in the default table
func Name(code string) (string, bool) {
	return defaultTable.Name(code)
}

// IsValidCode reports whether code is a two-letter ISO 3166-1 country code
func IsValidCode(code string) bool {
	region, ok := parseRegion(code)
	return ok && region.IsCountry()
}

// CurrencyFor returns the ISO 4217 currency used in the country
func CurrencyFor(code string) (string, bool) {
	region, ok := parseRegion(code)
	if !ok {
		return "", false
	}

	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", false
	}
	return unit.String(), true
}

func parseRegion(code string) (language.Region, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return language.Region{}, false
	}

	region, err := language.ParseRegion(code)
	if err != nil {
		return language.Region{}, false
	}
	return region, true
}
