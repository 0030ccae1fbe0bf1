package analysis

import (
	"math"
	"testing"

	"github.com/staykit/stay/internal/model"
)

func TestRevenueByPlatform(t *testing.T) {
	totals := RevenueByPlatform(threeBookings())

	// Cancellation does not remove revenue: airbnb keeps 100+200.
	want := []PlatformTotal{
		{Platform: "airbnb", Value: 300},
		{Platform: "vrbo", Value: 150},
	}
	if len(totals) != len(want) {
		t.Fatalf("got %d platforms, want %d", len(totals), len(want))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %+v, want %+v", i, totals[i], want[i])
		}
	}
}

func TestRevenueShareByPlatform(t *testing.T) {
	shares := RevenueShareByPlatform(threeBookings())

	var sum float64
	for _, s := range shares {
		sum += s.Value
	}
	if math.Abs(sum-100) > 0.01 {
		t.Errorf("shares sum to %v, want 100 ± 0.01", sum)
	}
	if shares[0].Platform != "airbnb" || math.Abs(shares[0].Value-66.6667) > 0.01 {
		t.Errorf("airbnb share = %+v, want ~66.67", shares[0])
	}
}

func TestRevenueShareByPlatform_ZeroRevenue(t *testing.T) {
	ds := threeBookings()
	for i := range ds.Bookings {
		ds.Bookings[i].Revenue = 0
	}
	if shares := RevenueShareByPlatform(ds); shares != nil {
		t.Errorf("zero-revenue dataset should have no shares, got %v", shares)
	}
}

func TestNightsShareByPlatform_ExcludesCancelled(t *testing.T) {
	shares := NightsShareByPlatform(threeBookings())

	// The cancelled airbnb booking's 2 nights are excluded, leaving
	// airbnb 2 and vrbo 3: 40% and 60%.
	if len(shares) != 2 {
		t.Fatalf("got %d platforms, want 2", len(shares))
	}
	if shares[0].Platform != "airbnb" || math.Abs(shares[0].Value-40) > 0.001 {
		t.Errorf("airbnb nights share = %+v, want 40%%", shares[0])
	}
	if shares[1].Platform != "vrbo" || math.Abs(shares[1].Value-60) > 0.001 {
		t.Errorf("vrbo nights share = %+v, want 60%%", shares[1])
	}
}

func TestNightsByPlatform_AllCancelled(t *testing.T) {
	ds := threeBookings()
	for i := range ds.Bookings {
		ds.Bookings[i].Status = model.StatusCancelled
	}
	if totals := NightsByPlatform(ds); len(totals) != 0 {
		t.Errorf("all-cancelled dataset should book no nights, got %v", totals)
	}
	if shares := NightsShareByPlatform(ds); shares != nil {
		t.Errorf("all-cancelled dataset should have no night shares, got %v", shares)
	}
}

func TestRevenueByPropertyPlatform(t *testing.T) {
	segments, totals := RevenueByPropertyPlatform(threeBookings())

	wantSegments := []PropertyPlatformRevenue{
		{Property: "A", Platform: "airbnb", Revenue: 300},
		{Property: "B", Platform: "vrbo", Revenue: 150},
	}
	if len(segments) != len(wantSegments) {
		t.Fatalf("got %d segments, want %d", len(segments), len(wantSegments))
	}
	for i := range wantSegments {
		if segments[i] != wantSegments[i] {
			t.Errorf("segments[%d] = %+v, want %+v", i, segments[i], wantSegments[i])
		}
	}

	// Totals are sorted by revenue descending for the chart ordering.
	if len(totals) != 2 || totals[0].Property != "A" || totals[0].Revenue != 300 ||
		totals[1].Property != "B" || totals[1].Revenue != 150 {
		t.Errorf("property totals = %+v", totals)
	}
}

func TestAggregations_EmptyDataset(t *testing.T) {
	var ds model.Dataset
	if got := RevenueByPlatform(ds); len(got) != 0 {
		t.Errorf("RevenueByPlatform on empty = %v", got)
	}
	if got := RevenueShareByPlatform(ds); got != nil {
		t.Errorf("RevenueShareByPlatform on empty = %v", got)
	}
	if got := NightsShareByPlatform(ds); got != nil {
		t.Errorf("NightsShareByPlatform on empty = %v", got)
	}
	segments, totals := RevenueByPropertyPlatform(ds)
	if len(segments) != 0 || len(totals) != 0 {
		t.Errorf("RevenueByPropertyPlatform on empty = %v, %v", segments, totals)
	}
}
