// Package analysis computes the KPI report and the chart aggregations
// over a booking dataset. Every function here is pure: input datasets
// are never mutated, and recomputing over the same data yields the same
// result, so the package is safe to call concurrently over different
// filter selections.
package analysis

import (
	"math"
	"time"
)

// Value is a KPI value that may be undefined. Every ratio whose
// denominator is zero (occupancy over an empty span, ADR over zero
// nights, ratings with no reviews, ...) is invalid and renders as
// "N/A"; a NaN or Inf never leaves this package.
type Value struct {
	Val   float64
	Valid bool
}

// NewValue returns a valid value rounded to two decimals.
func NewValue(v float64) Value {
	return Value{Val: round2(v), Valid: true}
}

// NoData is the sentinel for undefined KPI values.
var NoData = Value{}

// Float returns the numeric value and whether it is defined.
func (v Value) Float() (float64, bool) {
	return v.Val, v.Valid
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summary is the fixed-shape KPI report for one (possibly filtered)
// dataset. Counters are plain numbers; every ratio is a Value.
type Summary struct {
	OccupancyRate        Value
	ADR                  Value
	RevPAR               Value
	LeadTime             Value
	AverageLengthOfStay  Value
	CancellationRate     Value
	Rating               Value
	ValueRating          Value
	CommunicationRating  Value
	LocationRating       Value
	CleanlinessRating    Value
	AccuracyRating       Value
	CheckinRating        Value
	TotalRevenue         float64
	TotalNights          int
	TotalAvailableNights int
	NumberOfReservations int
}

// PlatformTotal is one bar or pie slice of a per-platform aggregation.
type PlatformTotal struct {
	Platform string
	Value    float64
}

// PropertyPlatformRevenue is one segment of the stacked
// revenue-per-property chart.
type PropertyPlatformRevenue struct {
	Property string
	Platform string
	Revenue  float64
}

// PropertyTotal annotates the stacked chart with per-property totals.
type PropertyTotal struct {
	Property string
	Revenue  float64
}

// SeriesPoint is one (month, property) point of a monthly series.
// Value is invalid where the point's denominator was zero.
type SeriesPoint struct {
	Month    time.Time
	Property string
	Value    Value
}
