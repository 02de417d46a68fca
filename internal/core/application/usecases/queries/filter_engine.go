package queries

import (
	"sort"
	"strings"
)

// matches reports whether a single order view passes every active filter.
// Filters are conjunctive: each active one must match.
func (f OrderFilterSet) matches(view OrderView) bool {
	if f.hasStatus && view.Status != f.status.String() {
		return false
	}
	if f.regionCode != "" && view.RegionCode != f.regionCode {
		return false
	}
	if f.hasMode && view.HomeDelivery != f.homeDelivery {
		return false
	}
	if f.hasProductID && !view.ProductID.IsEqual(f.productID) {
		return false
	}
	if f.customer != "" &&
		!strings.Contains(strings.ToLower(view.CustomerName), strings.ToLower(f.customer)) {
		return false
	}
	return true
}

// Apply filters and sorts the given views. The input slice is not modified;
// sorting is stable, so orders that compare equal keep their incoming
// relative position.
func (f OrderFilterSet) Apply(views []OrderView) ([]OrderView, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	filtered := make([]OrderView, 0, len(views))
	for _, view := range views {
		if f.matches(view) {
			filtered = append(filtered, view)
		}
	}

	switch f.sort {
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Total > filtered[j].Total
		})
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Total < filtered[j].Total
		})
	}

	return filtered, nil
}

// DistinctProducts builds the product dropdown from the full, unfiltered
// order collection, so narrowing by one filter never shrinks the other
// dropdowns. The first occurrence of a product id fixes the displayed name,
// even if later orders carry a renamed snapshot of the same product.
func DistinctProducts(views []OrderView) []ProductOption {
	seen := make(map[string]bool, len(views))
	options := make([]ProductOption, 0)
	for _, view := range views {
		key := view.ProductID.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, ProductOption{ID: view.ProductID, Name: view.ProductName})
	}
	return options
}

// DistinctRegions builds the region dropdown from the full, unfiltered order
// collection, in first-seen order.
func DistinctRegions(views []OrderView) []RegionOption {
	seen := make(map[string]bool, len(views))
	options := make([]RegionOption, 0)
	for _, view := range views {
		if seen[view.RegionCode] {
			continue
		}
		seen[view.RegionCode] = true
		options = append(options, RegionOption{Code: view.RegionCode, Name: view.RegionName})
	}
	return options
}
