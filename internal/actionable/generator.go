package actionable

import (
	"fmt"
	"sort"

	"trending-insights-go/internal/aggregator"
)

type ActionCard struct {
	Scope   string `json:"scope"`
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate turns the run overview into headline cards: one global card for the category that
// leads the most regions, then one card per continent in name order.
func Generate(ins aggregator.Insight) []ActionCard {
	if ins.Records == 0 {
		return []ActionCard{{
			Scope:   "global",
			Insight: "No trending data collected",
			Action:  "Check API key, quota and region list",
			Impact:  "No report produced",
		}}
	}

	leads := map[string]int{}
	for _, cat := range ins.DominantByRegion {
		leads[cat]++
	}
	top := aggregator.Top(leads)
	cards := []ActionCard{{
		Scope:   "global",
		Insight: fmt.Sprintf("%s leads trending in %d of %d regions", top, leads[top], ins.Regions),
		Action:  fmt.Sprintf("Prioritise %s for cross-region campaigns", top),
		Impact:  fmt.Sprintf("%d trending videos analysed", ins.Records),
	}}

	continents := make([]string, 0, len(ins.ContinentDominance))
	for c := range ins.ContinentDominance {
		continents = append(continents, c)
	}
	sort.Strings(continents)
	for _, c := range continents {
		cat := ins.ContinentDominance[c]
		cards = append(cards, ActionCard{
			Scope:   c,
			Insight: fmt.Sprintf("%s dominates trending in %s", cat, c),
			Action:  fmt.Sprintf("Localise %s content for %s", cat, c),
			Impact:  "Regional reach",
		})
	}
	return cards
}
