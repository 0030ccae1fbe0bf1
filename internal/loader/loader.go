// Package loader reads the bookings and reviews sources, joins them and
// produces the immutable dataset every other component works from.
// Loads fail loudly: a missing file, a missing required column or an
// unparsable cell aborts the load instead of silently producing empty
// KPIs downstream.
package loader

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/staykit/stay/internal/common"
	"github.com/staykit/stay/internal/model"
)

// Source names the two tabular inputs.
type Source struct {
	Bookings string
	Reviews  string
}

// Required column sets. Extra columns in the sources are ignored.
var (
	bookingColumns = []string{
		"code", "property_name", "platform", "status",
		"checkin_date", "checkout_date", "booking_date",
		"nights", "revenue",
	}
	reviewColumns = []string{
		"code", "rating", "value_rating", "communication_rating",
		"location_rating", "cleanliness_rating", "accuracy_rating",
		"checkin_rating",
	}
)

// ProgressFunc receives parsing progress for long-running loads.
type ProgressFunc func(stage string, current, total int)

type options struct {
	progress ProgressFunc
}

// Option configures a load.
type Option func(*options)

// WithProgress reports per-row parsing progress to fn.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Load reads both sources, validates them and returns the joined dataset.
func Load(src Source, opts ...Option) (model.Dataset, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	bookings, err := readBookings(src.Bookings, o.progress)
	if err != nil {
		return model.Dataset{}, err
	}

	reviews, err := readReviews(src.Reviews, o.progress)
	if err != nil {
		return model.Dataset{}, err
	}

	ds := Join(bookings, reviews)
	slog.Info("loaded dataset",
		"bookings", ds.Len(),
		"reviews", len(reviews),
		"properties", len(ds.Properties()),
		"platforms", len(ds.Platforms()))
	return ds, nil
}

// Join attaches reviews to bookings by code (left join: bookings without
// a review keep a nil Review) and derives the month bucket. It returns a
// new dataset and mutates neither input.
func Join(bookings []model.Booking, reviews map[string]model.Review) model.Dataset {
	joined := make([]model.Booking, len(bookings))
	for i, b := range bookings {
		b.Month = model.MonthOf(b.CheckinDate)
		if r, ok := reviews[b.Code]; ok {
			rc := r
			b.Review = &rc
		} else {
			b.Review = nil
		}
		joined[i] = b
	}
	return model.Dataset{Bookings: joined}
}

func readBookings(path string, progress ProgressFunc) ([]model.Booking, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := tbl.requireColumns(bookingColumns); err != nil {
		return nil, err
	}

	bookings := make([]model.Booking, 0, len(tbl.rows))
	for i, row := range tbl.rows {
		b, err := parseBooking(tbl, row)
		if err != nil {
			return nil, rowError(path, i, err)
		}
		if err := b.Validate(); err != nil {
			return nil, rowError(path, i, err)
		}
		bookings = append(bookings, b)
		if progress != nil {
			progress("bookings", i+1, len(tbl.rows))
		}
	}
	return bookings, nil
}

func readReviews(path string, progress ProgressFunc) (map[string]model.Review, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := tbl.requireColumns(reviewColumns); err != nil {
		return nil, err
	}

	reviews := make(map[string]model.Review, len(tbl.rows))
	for i, row := range tbl.rows {
		code := strings.TrimSpace(tbl.cell(row, "code"))
		if code == "" {
			return nil, rowError(path, i, fmt.Errorf("review code is required"))
		}
		r, err := parseReview(tbl, row)
		if err != nil {
			return nil, rowError(path, i, err)
		}
		if err := r.Validate(); err != nil {
			return nil, rowError(path, i, err)
		}
		if _, dup := reviews[code]; dup {
			// Last review wins; the sources occasionally re-export rows.
			slog.Warn("duplicate review code, keeping the later row",
				"file", path, "code", code)
		}
		reviews[code] = r
		if progress != nil {
			progress("reviews", i+1, len(tbl.rows))
		}
	}
	return reviews, nil
}

func parseBooking(tbl *table, row []string) (model.Booking, error) {
	checkin, err := parseDate(tbl.cell(row, "checkin_date"), "checkin_date")
	if err != nil {
		return model.Booking{}, err
	}
	checkout, err := parseDate(tbl.cell(row, "checkout_date"), "checkout_date")
	if err != nil {
		return model.Booking{}, err
	}
	booked, err := parseDate(tbl.cell(row, "booking_date"), "booking_date")
	if err != nil {
		return model.Booking{}, err
	}
	nights, err := parseInt(tbl.cell(row, "nights"), "nights")
	if err != nil {
		return model.Booking{}, err
	}
	revenue, err := parseFloat(tbl.cell(row, "revenue"), "revenue")
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		Code:         strings.TrimSpace(tbl.cell(row, "code")),
		PropertyName: strings.TrimSpace(tbl.cell(row, "property_name")),
		Platform:     strings.ToLower(strings.TrimSpace(tbl.cell(row, "platform"))),
		Status:       model.Status(strings.ToLower(strings.TrimSpace(tbl.cell(row, "status")))),
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		BookingDate:  booked,
		Nights:       nights,
		Revenue:      revenue,
	}, nil
}

func parseReview(tbl *table, row []string) (model.Review, error) {
	var r model.Review
	fields := []struct {
		dst *float64
		col string
	}{
		{&r.Rating, "rating"},
		{&r.ValueRating, "value_rating"},
		{&r.CommunicationRating, "communication_rating"},
		{&r.LocationRating, "location_rating"},
		{&r.CleanlinessRating, "cleanliness_rating"},
		{&r.AccuracyRating, "accuracy_rating"},
		{&r.CheckinRating, "checkin_rating"},
	}
	for _, f := range fields {
		v, err := parseFloat(tbl.cell(row, f.col), f.col)
		if err != nil {
			return model.Review{}, err
		}
		*f.dst = v
	}
	return r, nil
}

// Date layouts accepted in the sources, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseDate(cell, column string) (time.Time, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, fmt.Errorf("column %s: empty date: %w", column, common.ErrMalformedRow)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// Normalize to midnight UTC so day arithmetic is exact.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s: cannot parse date %q: %w", column, s, common.ErrMalformedRow)
}

func parseInt(cell, column string) (int, error) {
	s := strings.TrimSpace(cell)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse integer %q: %w", column, s, common.ErrMalformedRow)
	}
	return n, nil
}

func parseFloat(cell, column string) (float64, error) {
	s := strings.TrimSpace(cell)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse number %q: %w", column, s, common.ErrMalformedRow)
	}
	return v, nil
}

func rowError(path string, index int, err error) error {
	// +2: header line plus 1-based numbering, matching what editors show.
	return fmt.Errorf("%s row %d: %w", path, index+2, err)
}
