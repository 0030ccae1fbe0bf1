package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Validate(t *testing.T) {
	valid := Booking{
		Code:         "BK-1001",
		PropertyName: "Casa del Mar",
		Platform:     "airbnb",
		Status:       StatusConfirmed,
		CheckinDate:  date(2024, 1, 10),
		CheckoutDate: date(2024, 1, 14),
		BookingDate:  date(2023, 12, 20),
		Nights:       4,
		Revenue:      480,
	}

	tests := []struct {
		mutate  func(*Booking)
		name    string
		wantErr bool
	}{
		{
			name:    "valid booking",
			mutate:  func(*Booking) {},
			wantErr: false,
		},
		{
			name:    "missing code",
			mutate:  func(b *Booking) { b.Code = "" },
			wantErr: true,
		},
		{
			name:    "missing property",
			mutate:  func(b *Booking) { b.PropertyName = "" },
			wantErr: true,
		},
		{
			name:    "missing platform",
			mutate:  func(b *Booking) { b.Platform = "" },
			wantErr: true,
		},
		{
			name:    "check-in after check-out",
			mutate:  func(b *Booking) { b.CheckinDate = date(2024, 2, 1) },
			wantErr: true,
		},
		{
			name:    "negative nights",
			mutate:  func(b *Booking) { b.Nights = -1 },
			wantErr: true,
		},
		{
			name:    "negative revenue",
			mutate:  func(b *Booking) { b.Revenue = -10 },
			wantErr: true,
		},
		{
			name:    "zero nights is allowed",
			mutate:  func(b *Booking) { b.Nights = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := b.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBooking_NightlyRate(t *testing.T) {
	b := Booking{Revenue: 300, Nights: 3}
	rate, ok := b.NightlyRate()
	if !ok {
		t.Fatal("expected nightly rate to be defined")
	}
	if rate != 100 {
		t.Errorf("NightlyRate() = %v, want 100", rate)
	}

	// A zero-night booking must report an undefined rate, never +Inf.
	b = Booking{Revenue: 300, Nights: 0}
	if _, ok := b.NightlyRate(); ok {
		t.Error("expected nightly rate to be undefined for zero nights")
	}
}

func TestBooking_LeadTimeDays(t *testing.T) {
	b := Booking{
		BookingDate: date(2024, 1, 1),
		CheckinDate: date(2024, 1, 15),
	}
	if got := b.LeadTimeDays(); got != 14 {
		t.Errorf("LeadTimeDays() = %d, want 14", got)
	}
}

func TestReview_Validate(t *testing.T) {
	r := Review{
		Rating:              4.5,
		ValueRating:         4,
		CommunicationRating: 5,
		LocationRating:      4.8,
		CleanlinessRating:   4.9,
		AccuracyRating:      4.7,
		CheckinRating:       5,
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	r.ValueRating = 0
	if err := r.Validate(); err == nil {
		t.Error("expected error for rating below scale")
	}

	r.ValueRating = 5.5
	if err := r.Validate(); err == nil {
		t.Error("expected error for rating above scale")
	}
}

func TestDataset_Span(t *testing.T) {
	ds := NewDataset([]Booking{
		{CheckinDate: date(2024, 1, 10), CheckoutDate: date(2024, 1, 12)},
		{CheckinDate: date(2024, 1, 2), CheckoutDate: date(2024, 1, 5)},
		{CheckinDate: date(2024, 1, 20), CheckoutDate: date(2024, 1, 31)},
	})

	start, end, ok := ds.Span()
	if !ok {
		t.Fatal("expected span for non-empty dataset")
	}
	if !start.Equal(date(2024, 1, 2)) || !end.Equal(date(2024, 1, 31)) {
		t.Errorf("Span() = %v..%v, want 2024-01-02..2024-01-31", start, end)
	}
	if got := ds.SpanDays(); got != 30 {
		t.Errorf("SpanDays() = %d, want 30", got)
	}

	empty := Dataset{}
	if _, _, ok := empty.Span(); ok {
		t.Error("expected no span for empty dataset")
	}
	if got := empty.SpanDays(); got != 0 {
		t.Errorf("SpanDays() on empty = %d, want 0", got)
	}
}

func TestDataset_Distinct(t *testing.T) {
	ds := NewDataset([]Booking{
		{PropertyName: "B", Platform: "vrbo"},
		{PropertyName: "A", Platform: "airbnb"},
		{PropertyName: "B", Platform: "airbnb"},
	})

	props := ds.Properties()
	if len(props) != 2 || props[0] != "A" || props[1] != "B" {
		t.Errorf("Properties() = %v, want [A B]", props)
	}

	plats := ds.Platforms()
	if len(plats) != 2 || plats[0] != "airbnb" || plats[1] != "vrbo" {
		t.Errorf("Platforms() = %v, want [airbnb vrbo]", plats)
	}
}

func TestMonthOf(t *testing.T) {
	got := MonthOf(date(2024, 3, 17))
	if !got.Equal(date(2024, 3, 1)) {
		t.Errorf("MonthOf() = %v, want 2024-03-01", got)
	}
}
