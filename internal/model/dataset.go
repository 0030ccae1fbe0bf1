package model

import (
	"sort"
	"time"
)

// Dataset is the flat booking table produced by the loader, one row per
// booking with its review joined on. It is built once per load and never
// mutated; filters and aggregations work on copies or read-only passes.
type Dataset struct {
	Bookings []Booking
}

// NewDataset copies bookings into a fresh dataset so later mutation of
// the caller's slice cannot leak into cached data.
func NewDataset(bookings []Booking) Dataset {
	out := make([]Booking, len(bookings))
	copy(out, bookings)
	return Dataset{Bookings: out}
}

// Len returns the number of bookings.
func (d Dataset) Len() int {
	return len(d.Bookings)
}

// Empty reports whether the dataset has no bookings.
func (d Dataset) Empty() bool {
	return len(d.Bookings) == 0
}

// Properties returns the distinct property names, sorted.
func (d Dataset) Properties() []string {
	return d.distinct(func(b *Booking) string { return b.PropertyName })
}

// Platforms returns the distinct platform labels, sorted.
func (d Dataset) Platforms() []string {
	return d.distinct(func(b *Booking) string { return b.Platform })
}

func (d Dataset) distinct(key func(*Booking) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range d.Bookings {
		k := key(&d.Bookings[i])
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Span returns the earliest check-in and latest check-out dates.
// ok is false for an empty dataset.
func (d Dataset) Span() (start, end time.Time, ok bool) {
	if len(d.Bookings) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start = d.Bookings[0].CheckinDate
	end = d.Bookings[0].CheckoutDate
	for i := range d.Bookings[1:] {
		b := &d.Bookings[i+1]
		if b.CheckinDate.Before(start) {
			start = b.CheckinDate
		}
		if b.CheckoutDate.After(end) {
			end = b.CheckoutDate
		}
	}
	return start, end, true
}

// SpanDays returns the inclusive day count between the earliest
// check-in and the latest check-out, or 0 for an empty dataset.
func (d Dataset) SpanDays() int {
	start, end, ok := d.Span()
	if !ok {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
