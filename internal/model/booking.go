// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a booking.
type Status string

const (
	// StatusConfirmed represents a booking that will be (or was) honored.
	StatusConfirmed Status = "confirmed"
	// StatusCancelled represents a booking that was cancelled before the stay.
	StatusCancelled Status = "cancelled"
)

// Booking represents a single reservation after the review join.
// The platform set is open: "airbnb", "booking.com" and "vrbo" are the
// usual values but new channels appear without code changes.
type Booking struct {
	CheckinDate  time.Time
	CheckoutDate time.Time
	BookingDate  time.Time
	Month        time.Time // first calendar day of CheckinDate's month
	Review       *Review   // nil when no review exists for this booking
	Code         string    // unique join key to reviews
	PropertyName string
	Platform     string
	Status       Status
	Nights       int
	Revenue      float64
}

// Review holds the per-booking guest ratings, each in [1, 5].
// A booking either has a full review or none at all; individual ratings
// are never absent within a review.
type Review struct {
	Rating              float64
	ValueRating         float64
	CommunicationRating float64
	LocationRating      float64
	CleanlinessRating   float64
	AccuracyRating      float64
	CheckinRating       float64
}

// IsCancelled reports whether the booking was cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// NightlyRate returns revenue per night. The rate is undefined for
// zero-night bookings; ok is false in that case and the value must not
// be displayed as a number.
func (b *Booking) NightlyRate() (float64, bool) {
	if b.Nights <= 0 {
		return 0, false
	}
	return b.Revenue / float64(b.Nights), true
}

// LeadTimeDays returns the whole days between booking and check-in.
func (b *Booking) LeadTimeDays() int {
	return int(b.CheckinDate.Sub(b.BookingDate) / (24 * time.Hour))
}

// Validate checks the record-level invariants established at load time.
func (b *Booking) Validate() error {
	if b.Code == "" {
		return fmt.Errorf("booking code is required")
	}
	if b.PropertyName == "" {
		return fmt.Errorf("booking %s: property name is required", b.Code)
	}
	if b.Platform == "" {
		return fmt.Errorf("booking %s: platform is required", b.Code)
	}
	if b.CheckinDate.After(b.CheckoutDate) {
		return fmt.Errorf("booking %s: check-in %s is after check-out %s",
			b.Code,
			b.CheckinDate.Format("2006-01-02"),
			b.CheckoutDate.Format("2006-01-02"))
	}
	if b.Nights < 0 {
		return fmt.Errorf("booking %s: nights must not be negative", b.Code)
	}
	if b.Revenue < 0 {
		return fmt.Errorf("booking %s: revenue must not be negative", b.Code)
	}
	return nil
}

// Validate checks that every rating is inside the [1, 5] scale.
func (r *Review) Validate() error {
	ratings := map[string]float64{
		"rating":               r.Rating,
		"value_rating":         r.ValueRating,
		"communication_rating": r.CommunicationRating,
		"location_rating":      r.LocationRating,
		"cleanliness_rating":   r.CleanlinessRating,
		"accuracy_rating":      r.AccuracyRating,
		"checkin_rating":       r.CheckinRating,
	}
	for name, v := range ratings {
		if v < 1 || v > 5 {
			return fmt.Errorf("%s %.2f is outside the 1-5 scale", name, v)
		}
	}
	return nil
}

// MonthOf returns the first calendar day of t's month, the bucket used
// for all monthly series.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
