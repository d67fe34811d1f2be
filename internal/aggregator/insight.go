package aggregator

import (
	"sort"

	"trending-insights-go/internal/types"
)

// Insight is a run-level overview of the normalized table and its summary.
type Insight struct {
	Regions            int               `json:"regions"`
	Records            int               `json:"records"`
	CategoryCounts     map[string]int    `json:"category_counts"`
	DurationCounts     map[string]int    `json:"duration_counts"`
	DominantByRegion   map[string]string `json:"dominant_by_region"`
	ContinentDominance map[string]string `json:"continent_dominance"`
}

// Summarize computes the overview. A continent's dominant category is the one with most
// records across its regions, ties going to the smaller name.
func Summarize(records []types.NormalizedRecord, rows []types.RegionCategorySummary) Insight {
	ins := Insight{
		Records:            len(records),
		CategoryCounts:     map[string]int{},
		DurationCounts:     map[string]int{},
		DominantByRegion:   map[string]string{},
		ContinentDominance: map[string]string{},
	}
	byContinent := map[string]map[string]int{}
	for _, r := range records {
		ins.CategoryCounts[r.CategoryName]++
		ins.DurationCounts[r.DurationCategory]++
		m, ok := byContinent[r.Continent]
		if !ok {
			m = map[string]int{}
			byContinent[r.Continent] = m
		}
		m[r.CategoryName]++
	}
	for _, row := range rows {
		ins.DominantByRegion[row.Region] = row.MaxCategory
	}
	ins.Regions = len(ins.DominantByRegion)
	for continent, counts := range byContinent {
		ins.ContinentDominance[continent] = Top(counts)
	}
	return ins
}

// Top returns the key with the highest count, ties going to the smaller key. Empty for an
// empty map.
func Top(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := ""
	bestN := 0
	for _, k := range keys {
		if counts[k] > bestN {
			best, bestN = k, counts[k]
		}
	}
	return best
}
