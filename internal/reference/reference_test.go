package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryName(t *testing.T) {
	name, ok := CountryName("US")
	require.True(t, ok)
	assert.Equal(t, "United States", name)

	_, ok = CountryName("ZZ")
	assert.False(t, ok)
}

func TestCountryConflictsFirstEntryWins(t *testing.T) {
	cases := map[string]string{
		"RE": "Réunion",
		"CG": "Congo",
		"CD": "Democratic Republic of the Congo",
		"VI": "United States Virgin Islands",
	}
	for code, want := range cases {
		got, ok := CountryName(code)
		require.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}

	conflicts := CountryConflicts()
	assert.Contains(t, conflicts, Conflict{Code: "RE", Kept: "Réunion", Discarded: "Reunion"})
	assert.Contains(t, conflicts, Conflict{Code: "VI", Kept: "United States Virgin Islands", Discarded: "U.S. Virgin Islands"})
	assert.Len(t, conflicts, 4)
}

func TestContinent(t *testing.T) {
	assert.Equal(t, NorthAmerica, Continent("US"))
	assert.Equal(t, MiddleEast, Continent("TR"))
	assert.Equal(t, Asia, Continent("IQ"))
	assert.Equal(t, Oceania, Continent("GU"))
	assert.Equal(t, Other, Continent("AQ"))
	assert.Equal(t, Other, Continent(""))
}

func TestContinentConflicts(t *testing.T) {
	assert.Equal(t, NorthAmerica, Continent("GL"))
	assert.Equal(t, []Conflict{{Code: "GL", Kept: NorthAmerica, Discarded: Europe}}, ContinentConflicts())
}

func TestTablesAreCopies(t *testing.T) {
	c := Countries()
	c["US"] = "changed"
	name, _ := CountryName("US")
	assert.Equal(t, "United States", name)

	r := WorldRegions()
	r[0] = "XX"
	assert.Equal(t, "DZ", WorldRegions()[0])

	ct := ContinentTable()
	ct["US"] = Europe
	assert.Equal(t, NorthAmerica, Continent("US"))
}

func TestContinentsEnumeration(t *testing.T) {
	assert.Equal(t, []string{Africa, NorthAmerica, SouthAmerica, Asia, MiddleEast, Europe, Oceania, Other}, Continents())
}
