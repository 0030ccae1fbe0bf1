package analysis

import (
	"time"

	"github.com/staykit/stay/internal/model"
)

// Filter selects a subset of a dataset. A zero From or To leaves that
// side of the date window open; an empty Platforms or Properties set
// means "no filter", never "exclude all".
type Filter struct {
	From       time.Time
	To         time.Time
	Platforms  []string
	Properties []string
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return f.From.IsZero() && f.To.IsZero() &&
		len(f.Platforms) == 0 && len(f.Properties) == 0
}

// Match reports whether a booking passes the filter. The date window is
// inclusive on both ends and tests the check-in date only.
func (f Filter) Match(b *model.Booking) bool {
	if !f.From.IsZero() && b.CheckinDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && b.CheckinDate.After(f.To) {
		return false
	}
	if len(f.Platforms) > 0 && !contains(f.Platforms, b.Platform) {
		return false
	}
	if len(f.Properties) > 0 && !contains(f.Properties, b.PropertyName) {
		return false
	}
	return true
}

// Apply returns a new dataset holding the matching bookings. The input
// dataset is never modified.
func Apply(ds model.Dataset, f Filter) model.Dataset {
	if f.IsZero() {
		return model.NewDataset(ds.Bookings)
	}
	var out []model.Booking
	for i := range ds.Bookings {
		if f.Match(&ds.Bookings[i]) {
			out = append(out, ds.Bookings[i])
		}
	}
	return model.Dataset{Bookings: out}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
