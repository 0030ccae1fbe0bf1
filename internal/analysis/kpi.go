package analysis

import (
	"github.com/staykit/stay/internal/model"
)

// Summarize computes the KPI report over ds. It is total over every
// documented edge case: an empty dataset yields zero counters and
// NoData for every ratio rather than an error or a NaN.
func Summarize(ds model.Dataset) *Summary {
	s := &Summary{
		NumberOfReservations: ds.Len(),
	}

	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		s.TotalRevenue += b.Revenue
		s.TotalNights += b.Nights
	}

	// Available nights derive from the filtered table's own date span,
	// not a fixed calendar period. An empty dataset has no span, which
	// cascades into NoData for the span-based ratios below.
	s.TotalAvailableNights = ds.SpanDays() * len(ds.Properties())

	s.OccupancyRate = ratio(float64(s.TotalNights)*100, float64(s.TotalAvailableNights))
	s.ADR = ratio(s.TotalRevenue, float64(s.TotalNights))
	s.RevPAR = ratio(s.TotalRevenue, float64(s.TotalAvailableNights))

	if n := ds.Len(); n > 0 {
		var leadDays, nights, cancelled int
		for i := range ds.Bookings {
			b := &ds.Bookings[i]
			leadDays += b.LeadTimeDays()
			nights += b.Nights
			if b.IsCancelled() {
				cancelled++
			}
		}
		s.LeadTime = NewValue(float64(leadDays) / float64(n))
		s.AverageLengthOfStay = NewValue(float64(nights) / float64(n))
		s.CancellationRate = NewValue(float64(cancelled) / float64(n) * 100)
	}

	s.Rating = ratingMean(ds, func(r *model.Review) float64 { return r.Rating })
	s.ValueRating = ratingMean(ds, func(r *model.Review) float64 { return r.ValueRating })
	s.CommunicationRating = ratingMean(ds, func(r *model.Review) float64 { return r.CommunicationRating })
	s.LocationRating = ratingMean(ds, func(r *model.Review) float64 { return r.LocationRating })
	s.CleanlinessRating = ratingMean(ds, func(r *model.Review) float64 { return r.CleanlinessRating })
	s.AccuracyRating = ratingMean(ds, func(r *model.Review) float64 { return r.AccuracyRating })
	s.CheckinRating = ratingMean(ds, func(r *model.Review) float64 { return r.CheckinRating })

	return s
}

// ratio divides num by den, returning NoData on a zero denominator.
func ratio(num, den float64) Value {
	if den == 0 {
		return NoData
	}
	return NewValue(num / den)
}

// ratingMean averages one rating column over the bookings that actually
// have a review. Bookings without a review are skipped, never counted
// as zero; a selection with no reviewed bookings reports NoData.
func ratingMean(ds model.Dataset, pick func(*model.Review) float64) Value {
	var sum float64
	var n int
	for i := range ds.Bookings {
		if r := ds.Bookings[i].Review; r != nil {
			sum += pick(r)
			n++
		}
	}
	if n == 0 {
		return NoData
	}
	return NewValue(sum / float64(n))
}
