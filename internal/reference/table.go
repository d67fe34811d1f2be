package reference

import "fmt"

// Conflict is a source entry that was discarded because its code was already mapped to a
// different value.
type Conflict struct {
	Code      string
	Kept      string
	Discarded string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s: kept %q, discarded %q", c.Code, c.Kept, c.Discarded)
}

// buildTable folds entries into a map, first entry wins. Repeats with the same value are
// not conflicts.
func buildTable(entries []entry) (map[string]string, []Conflict) {
	table := make(map[string]string, len(entries))
	var conflicts []Conflict
	for _, e := range entries {
		kept, ok := table[e.code]
		if !ok {
			table[e.code] = e.value
			continue
		}
		if kept != e.value {
			conflicts = append(conflicts, Conflict{Code: e.code, Kept: kept, Discarded: e.value})
		}
	}
	return table, conflicts
}
