package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/staykit/stay/internal/model"
)

// twoMonths spans January and February for two properties, with one
// cancelled February booking.
func twoMonths() model.Dataset {
	return model.NewDataset([]model.Booking{
		{
			Code: "A-1", PropertyName: "A", Platform: "airbnb", Status: model.StatusConfirmed,
			CheckinDate: date(2024, 1, 1), CheckoutDate: date(2024, 1, 5),
			BookingDate: date(2023, 12, 1), Month: date(2024, 1, 1), Nights: 4, Revenue: 400,
		},
		{
			Code: "A-2", PropertyName: "A", Platform: "airbnb", Status: model.StatusConfirmed,
			CheckinDate: date(2024, 1, 8), CheckoutDate: date(2024, 1, 10),
			BookingDate: date(2023, 12, 10), Month: date(2024, 1, 1), Nights: 2, Revenue: 260,
		},
		{
			Code: "B-1", PropertyName: "B", Platform: "vrbo", Status: model.StatusConfirmed,
			CheckinDate: date(2024, 2, 1), CheckoutDate: date(2024, 2, 6),
			BookingDate: date(2024, 1, 5), Month: date(2024, 2, 1), Nights: 5, Revenue: 500,
		},
		{
			Code: "B-2", PropertyName: "B", Platform: "vrbo", Status: model.StatusCancelled,
			CheckinDate: date(2024, 2, 10), CheckoutDate: date(2024, 2, 12),
			BookingDate: date(2024, 1, 20), Month: date(2024, 2, 1), Nights: 2, Revenue: 180,
		},
	})
}

func findPoint(points []SeriesPoint, month time.Time, property string) (SeriesPoint, bool) {
	for _, p := range points {
		if p.Month.Equal(month) && p.Property == property {
			return p, true
		}
	}
	return SeriesPoint{}, false
}

func TestMonthlyRevenueSeries(t *testing.T) {
	points := MonthlyRevenueSeries(twoMonths())

	jan, ok := findPoint(points, date(2024, 1, 1), "A")
	if !ok {
		t.Fatal("missing January point for A")
	}
	if v, _ := jan.Value.Float(); v != 660 {
		t.Errorf("January revenue for A = %v, want 660", v)
	}

	// Revenue keeps cancelled bookings: 500 + 180.
	feb, ok := findPoint(points, date(2024, 2, 1), "B")
	if !ok {
		t.Fatal("missing February point for B")
	}
	if v, _ := feb.Value.Float(); v != 680 {
		t.Errorf("February revenue for B = %v, want 680", v)
	}

	// Chronological, then by property.
	for i := 1; i < len(points); i++ {
		if points[i].Month.Before(points[i-1].Month) {
			t.Fatalf("points out of order: %v before %v", points[i].Month, points[i-1].Month)
		}
	}
}

func TestMonthlyOccupancySeries(t *testing.T) {
	points := MonthlyOccupancySeries(twoMonths())

	// A in January: 6 nights over the observed span 01-01..01-10,
	// 10 days inclusive.
	jan, ok := findPoint(points, date(2024, 1, 1), "A")
	if !ok {
		t.Fatal("missing January point for A")
	}
	if v, valid := jan.Value.Float(); !valid || math.Abs(v-0.6) > 0.001 {
		t.Errorf("January occupancy for A = %v (valid=%v), want 0.60", v, valid)
	}

	// B in February: the cancelled booking is excluded, so the span is
	// 02-01..02-06 (6 days) with 5 nights.
	feb, ok := findPoint(points, date(2024, 2, 1), "B")
	if !ok {
		t.Fatal("missing February point for B")
	}
	if v, valid := feb.Value.Float(); !valid || math.Abs(v-5.0/6.0) > 0.005 {
		t.Errorf("February occupancy for B = %v (valid=%v), want ~0.83", v, valid)
	}
}

func TestMonthlyOccupancySeries_AllCancelledMonth(t *testing.T) {
	ds := twoMonths()
	ds.Bookings[2].Status = model.StatusCancelled

	points := MonthlyOccupancySeries(ds)
	if _, ok := findPoint(points, date(2024, 2, 1), "B"); ok {
		t.Error("a month with only cancelled bookings should produce no point")
	}
}

func TestMonthlyADRSeries(t *testing.T) {
	points := MonthlyADRSeries(twoMonths())

	jan, ok := findPoint(points, date(2024, 1, 1), "A")
	if !ok {
		t.Fatal("missing January point for A")
	}
	if v, _ := jan.Value.Float(); v != 110 {
		t.Errorf("January ADR for A = %v, want 110", v)
	}

	// Cancelled bookings are excluded from both sums: 500/5.
	feb, ok := findPoint(points, date(2024, 2, 1), "B")
	if !ok {
		t.Fatal("missing February point for B")
	}
	if v, _ := feb.Value.Float(); v != 100 {
		t.Errorf("February ADR for B = %v, want 100", v)
	}
}

func TestMonthlyADRSeries_ZeroNightsGroup(t *testing.T) {
	ds := model.NewDataset([]model.Booking{{
		Code: "Z-1", PropertyName: "A", Platform: "airbnb", Status: model.StatusConfirmed,
		CheckinDate: date(2024, 1, 1), CheckoutDate: date(2024, 1, 1),
		BookingDate: date(2024, 1, 1), Month: date(2024, 1, 1), Nights: 0, Revenue: 50,
	}})

	points := MonthlyADRSeries(ds)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].Value.Valid {
		t.Error("ADR over zero nights should be no-data, not infinity")
	}
}

func TestSeries_EmptyDataset(t *testing.T) {
	var ds model.Dataset
	if got := MonthlyRevenueSeries(ds); len(got) != 0 {
		t.Errorf("MonthlyRevenueSeries on empty = %v", got)
	}
	if got := MonthlyOccupancySeries(ds); len(got) != 0 {
		t.Errorf("MonthlyOccupancySeries on empty = %v", got)
	}
	if got := MonthlyADRSeries(ds); len(got) != 0 {
		t.Errorf("MonthlyADRSeries on empty = %v", got)
	}
}
