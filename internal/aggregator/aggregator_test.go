package aggregator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trending-insights-go/internal/types"
)

func rec(country, category string) types.NormalizedRecord {
	return types.NormalizedRecord{Country: country, CategoryName: category}
}

func TestAggregateScenario(t *testing.T) {
	rows := Aggregate([]types.NormalizedRecord{
		rec("United States", "Music"),
		rec("United States", "Music"),
		rec("United States", "Gaming"),
	})
	require.Len(t, rows, 2)

	assert.Equal(t, "Music", rows[0].CategoryName)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 0.6667, rows[0].Percentage, 1e-4)
	assert.Equal(t, "Gaming", rows[1].CategoryName)
	assert.Equal(t, 1, rows[1].Count)
	assert.InDelta(t, 0.3333, rows[1].Percentage, 1e-4)
	for _, r := range rows {
		assert.Equal(t, "United States", r.Region)
		assert.Equal(t, "Music", r.MaxCategory)
		assert.InDelta(t, 0.6667, r.MaxPercentage, 1e-4)
	}
}

func TestAggregateOrdering(t *testing.T) {
	rows := Aggregate([]types.NormalizedRecord{
		rec("Japan", "Gaming"),
		rec("Brazil", "Sports"),
		rec("Brazil", "Music"),
		rec("Brazil", "Music"),
		rec("Brazil", "Comedy"),
		rec("Japan", "Music"),
	})
	var got []string
	for _, r := range rows {
		got = append(got, r.Region+"/"+r.CategoryName)
	}
	// Sports and Comedy tie on count and keep their first-seen order.
	assert.Equal(t, []string{
		"Brazil/Music", "Brazil/Sports", "Brazil/Comedy",
		"Japan/Gaming", "Japan/Music",
	}, got)
}

func TestAggregateTieBreaksLexicographically(t *testing.T) {
	rows := Aggregate([]types.NormalizedRecord{
		rec("Japan", "Music"),
		rec("Japan", "Gaming"),
	})
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "Gaming", r.MaxCategory)
		assert.Equal(t, 0.5, r.MaxPercentage)
	}
	// row order is still encounter order for equal counts
	assert.Equal(t, "Music", rows[0].CategoryName)
}

func TestAggregatePercentagesSumToOne(t *testing.T) {
	var records []types.NormalizedRecord
	cats := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i := 0; i < 50; i++ {
		records = append(records, rec("Region", cats[i%len(cats)]))
		if i%3 == 0 {
			records = append(records, rec("Other", cats[(i*5)%len(cats)]))
		}
	}
	sums := map[string]float64{}
	for _, r := range Aggregate(records) {
		sums[r.Region] += r.Percentage
		assert.GreaterOrEqual(t, r.Count, 1)
		assert.True(t, r.Percentage > 0 && r.Percentage <= 1)
	}
	require.Len(t, sums, 2)
	for region, s := range sums {
		assert.LessOrEqual(t, math.Abs(s-1), 1e-6, region)
	}
}

func TestAggregateMaxMatchesHighestRow(t *testing.T) {
	rows := Aggregate([]types.NormalizedRecord{
		rec("X", "b"), rec("X", "a"), rec("X", "b"), rec("X", "c"), rec("X", "c"), rec("X", "c"),
	})
	best := rows[0]
	for _, r := range rows {
		if r.Percentage > best.Percentage {
			best = r
		}
	}
	for _, r := range rows {
		assert.Equal(t, best.CategoryName, r.MaxCategory)
		assert.Equal(t, best.Percentage, r.MaxPercentage)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	records := []types.NormalizedRecord{
		rec("B", "x"), rec("A", "y"), rec("B", "y"), rec("A", "y"), rec("C", "z"),
	}
	assert.Empty(t, cmp.Diff(Aggregate(records), Aggregate(records)))
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestSummarize(t *testing.T) {
	records := []types.NormalizedRecord{
		{Country: "United States", Continent: "North America", CategoryName: "Music", DurationCategory: "short"},
		{Country: "United States", Continent: "North America", CategoryName: "Music", DurationCategory: "medium"},
		{Country: "Canada", Continent: "North America", CategoryName: "Gaming", DurationCategory: "short"},
		{Country: "France", Continent: "Europe", CategoryName: "Sports", DurationCategory: "no duration"},
	}
	ins := Summarize(records, Aggregate(records))

	assert.Equal(t, 3, ins.Regions)
	assert.Equal(t, 4, ins.Records)
	assert.Equal(t, map[string]int{"Music": 2, "Gaming": 1, "Sports": 1}, ins.CategoryCounts)
	assert.Equal(t, 2, ins.DurationCounts["short"])
	assert.Equal(t, "Gaming", ins.DominantByRegion["Canada"])
	assert.Equal(t, map[string]string{"North America": "Music", "Europe": "Sports"}, ins.ContinentDominance)
}

func TestTop(t *testing.T) {
	assert.Equal(t, "", Top(nil))
	assert.Equal(t, "a", Top(map[string]int{"b": 2, "a": 2, "c": 1}))
	assert.Equal(t, "c", Top(map[string]int{"b": 2, "a": 2, "c": 3}))
}
