package analysis

import (
	"sort"

	"github.com/staykit/stay/internal/model"
)

// RevenueByPlatform sums revenue per platform, sorted by platform label.
// Cancelled bookings keep their revenue here: a cancellation does not
// undo what the platform already billed.
func RevenueByPlatform(ds model.Dataset) []PlatformTotal {
	return groupByPlatform(ds, func(b *model.Booking) (float64, bool) {
		return b.Revenue, true
	})
}

// RevenueShareByPlatform converts the per-platform revenue sums into
// percentage shares. Shares sum to 100 within floating-point tolerance;
// a zero-revenue dataset has no shares and returns nil.
func RevenueShareByPlatform(ds model.Dataset) []PlatformTotal {
	return toShares(RevenueByPlatform(ds))
}

// NightsByPlatform sums booked nights per platform, excluding cancelled
// bookings: a cancelled stay occupies no nights. The same exclusion
// applies to every nights-booked metric (see the monthly series).
func NightsByPlatform(ds model.Dataset) []PlatformTotal {
	return groupByPlatform(ds, func(b *model.Booking) (float64, bool) {
		if b.IsCancelled() {
			return 0, false
		}
		return float64(b.Nights), true
	})
}

// NightsShareByPlatform converts the per-platform night sums into
// percentage shares, with the same cancelled-row exclusion.
func NightsShareByPlatform(ds model.Dataset) []PlatformTotal {
	return toShares(NightsByPlatform(ds))
}

// RevenueByPropertyPlatform produces the stacked-chart segments, one
// per (property, platform) pair, plus per-property totals for the chart
// annotations. Both are sorted by property then platform; totals are
// sorted descending by revenue so the chart can order its bars.
func RevenueByPropertyPlatform(ds model.Dataset) ([]PropertyPlatformRevenue, []PropertyTotal) {
	type key struct{ property, platform string }
	sums := make(map[key]float64)
	totals := make(map[string]float64)
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		sums[key{b.PropertyName, b.Platform}] += b.Revenue
		totals[b.PropertyName] += b.Revenue
	}

	segments := make([]PropertyPlatformRevenue, 0, len(sums))
	for k, v := range sums {
		segments = append(segments, PropertyPlatformRevenue{
			Property: k.property,
			Platform: k.platform,
			Revenue:  v,
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Property != segments[j].Property {
			return segments[i].Property < segments[j].Property
		}
		return segments[i].Platform < segments[j].Platform
	})

	propertyTotals := make([]PropertyTotal, 0, len(totals))
	for property, revenue := range totals {
		propertyTotals = append(propertyTotals, PropertyTotal{Property: property, Revenue: revenue})
	}
	sort.Slice(propertyTotals, func(i, j int) bool {
		if propertyTotals[i].Revenue != propertyTotals[j].Revenue {
			return propertyTotals[i].Revenue > propertyTotals[j].Revenue
		}
		return propertyTotals[i].Property < propertyTotals[j].Property
	})

	return segments, propertyTotals
}

func groupByPlatform(ds model.Dataset, value func(*model.Booking) (float64, bool)) []PlatformTotal {
	sums := make(map[string]float64)
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		if v, ok := value(b); ok {
			sums[b.Platform] += v
		}
	}

	out := make([]PlatformTotal, 0, len(sums))
	for platform, v := range sums {
		out = append(out, PlatformTotal{Platform: platform, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out
}

func toShares(totals []PlatformTotal) []PlatformTotal {
	var sum float64
	for _, t := range totals {
		sum += t.Value
	}
	if sum == 0 {
		return nil
	}
	shares := make([]PlatformTotal, len(totals))
	for i, t := range totals {
		shares[i] = PlatformTotal{Platform: t.Platform, Value: t.Value / sum * 100}
	}
	return shares
}
