package aggregator

import (
	"sort"

	"trending-insights-go/internal/types"
)

// Aggregate builds the per-region category distribution. Records are grouped by Country;
// each row carries its region's dominant category, ties broken by the smaller name. Rows are
// ordered by region ascending, then count descending, equal counts keeping the order in which
// the categories were first seen.
func Aggregate(records []types.NormalizedRecord) []types.RegionCategorySummary {
	type group struct {
		total  int
		order  []string
		counts map[string]int
	}
	groups := map[string]*group{}
	for _, r := range records {
		g, ok := groups[r.Country]
		if !ok {
			g = &group{counts: map[string]int{}}
			groups[r.Country] = g
		}
		if _, seen := g.counts[r.CategoryName]; !seen {
			g.order = append(g.order, r.CategoryName)
		}
		g.counts[r.CategoryName]++
		g.total++
	}

	regions := make([]string, 0, len(groups))
	for region := range groups {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	var out []types.RegionCategorySummary
	for _, region := range regions {
		g := groups[region]
		maxCat := ""
		maxCount := 0
		for _, cat := range g.order {
			c := g.counts[cat]
			if c > maxCount || (c == maxCount && cat < maxCat) {
				maxCat, maxCount = cat, c
			}
		}
		maxPct := float64(maxCount) / float64(g.total)

		rows := make([]types.RegionCategorySummary, 0, len(g.order))
		for _, cat := range g.order {
			rows = append(rows, types.RegionCategorySummary{
				Region:        region,
				CategoryName:  cat,
				Count:         g.counts[cat],
				Percentage:    float64(g.counts[cat]) / float64(g.total),
				MaxPercentage: maxPct,
				MaxCategory:   maxCat,
			})
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
		out = append(out, rows...)
	}
	return out
}
