// Package categories merges the per-region category listings into one id -> name map.
package categories

import (
	"context"

	"trending-insights-go/internal/types"
)

// Source returns one region's category id -> name listing.
type Source interface {
	FetchCategories(ctx context.Context, region string) (map[string]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, region string) (map[string]string, error)

func (f SourceFunc) FetchCategories(ctx context.Context, region string) (map[string]string, error) {
	return f(ctx, region)
}

// ErrorHandler is told about every region whose listing could not be fetched.
type ErrorHandler func(region string, err error)

// Resolve folds the regions' listings in order into one map. An id keeps the name from the
// first region that reported it. A failing region contributes nothing and is passed to
// onError; resolution continues with the next region.
func Resolve(ctx context.Context, regions []string, src Source, onError ErrorHandler) types.CategoryMap {
	combined, _ := ResolveContext(ctx, regions, src, onError)
	return combined
}

// ResolveContext is Resolve but stops when ctx is done, returning the map built so far and
// ctx.Err().
func ResolveContext(ctx context.Context, regions []string, src Source, onError ErrorHandler) (types.CategoryMap, error) {
	combined := types.CategoryMap{}
	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return combined, err
		}
		listing, err := src.FetchCategories(ctx, region)
		if err != nil {
			if onError != nil {
				onError(region, err)
			}
			continue
		}
		Merge(combined, listing)
	}
	return combined, nil
}

// Merge adds the ids of listing that dst does not have yet. Empty ids and names are skipped.
func Merge(dst types.CategoryMap, listing map[string]string) {
	for id, name := range listing {
		if id == "" || name == "" {
			continue
		}
		if _, ok := dst[id]; !ok {
			dst[id] = name
		}
	}
}
