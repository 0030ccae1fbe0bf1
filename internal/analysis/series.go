package analysis

import (
	"sort"
	"time"

	"github.com/staykit/stay/internal/model"
)

type groupKey struct {
	month    time.Time
	property string
}

// MonthlyRevenueSeries sums revenue per (month, property). Revenue keeps
// cancelled bookings, matching the headline revenue KPI.
func MonthlyRevenueSeries(ds model.Dataset) []SeriesPoint {
	sums := make(map[groupKey]float64)
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		sums[groupKey{b.Month, b.PropertyName}] += b.Revenue
	}

	points := make([]SeriesPoint, 0, len(sums))
	for k, v := range sums {
		points = append(points, SeriesPoint{Month: k.month, Property: k.property, Value: NewValue(v)})
	}
	sortSeries(points)
	return points
}

// MonthlyOccupancySeries computes, per (month, property), booked nights
// over the group's observed span in days. Cancelled bookings are
// excluded: they occupy no nights. The value is a fraction in [0, ~1];
// the presentation layer renders it as a percentage.
func MonthlyOccupancySeries(ds model.Dataset) []SeriesPoint {
	type span struct {
		checkin  time.Time
		checkout time.Time
		nights   int
	}
	groups := make(map[groupKey]*span)
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		if b.IsCancelled() {
			continue
		}
		k := groupKey{b.Month, b.PropertyName}
		g, ok := groups[k]
		if !ok {
			g = &span{checkin: b.CheckinDate, checkout: b.CheckoutDate}
			groups[k] = g
		}
		if b.CheckinDate.Before(g.checkin) {
			g.checkin = b.CheckinDate
		}
		if b.CheckoutDate.After(g.checkout) {
			g.checkout = b.CheckoutDate
		}
		g.nights += b.Nights
	}

	points := make([]SeriesPoint, 0, len(groups))
	for k, g := range groups {
		days := int(g.checkout.Sub(g.checkin)/(24*time.Hour)) + 1
		points = append(points, SeriesPoint{
			Month:    k.month,
			Property: k.property,
			Value:    ratio(float64(g.nights), float64(days)),
		})
	}
	sortSeries(points)
	return points
}

// MonthlyADRSeries computes revenue over nights per (month, property),
// excluding cancelled bookings from both sums. A group whose surviving
// bookings have zero nights reports NoData for that point.
func MonthlyADRSeries(ds model.Dataset) []SeriesPoint {
	type sums struct {
		revenue float64
		nights  int
	}
	groups := make(map[groupKey]*sums)
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		if b.IsCancelled() {
			continue
		}
		k := groupKey{b.Month, b.PropertyName}
		g, ok := groups[k]
		if !ok {
			g = &sums{}
			groups[k] = g
		}
		g.revenue += b.Revenue
		g.nights += b.Nights
	}

	points := make([]SeriesPoint, 0, len(groups))
	for k, g := range groups {
		points = append(points, SeriesPoint{
			Month:    k.month,
			Property: k.property,
			Value:    ratio(g.revenue, float64(g.nights)),
		})
	}
	sortSeries(points)
	return points
}

// sortSeries orders points chronologically, then by property, so chart
// output is stable across recomputations.
func sortSeries(points []SeriesPoint) {
	sort.Slice(points, func(i, j int) bool {
		if !points[i].Month.Equal(points[j].Month) {
			return points[i].Month.Before(points[j].Month)
		}
		return points[i].Property < points[j].Property
	})
}
