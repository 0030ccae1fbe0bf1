// Package export writes the dashboard numbers to an XLSX workbook so a
// selection can be shared outside the terminal.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/staykit/stay/internal/analysis"
	"github.com/staykit/stay/internal/model"
)

// Report bundles everything the workbook contains, computed over one
// (possibly filtered) dataset.
type Report struct {
	Summary           *analysis.Summary
	RevenueByPlatform []analysis.PlatformTotal
	RevenueShares     []analysis.PlatformTotal
	NightsShares      []analysis.PlatformTotal
	PropertySegments  []analysis.PropertyPlatformRevenue
	PropertyTotals    []analysis.PropertyTotal
	MonthlyRevenue    []analysis.SeriesPoint
	MonthlyOccupancy  []analysis.SeriesPoint
	MonthlyADR        []analysis.SeriesPoint
}

// BuildReport computes the full report for a dataset.
func BuildReport(ds model.Dataset) Report {
	segments, totals := analysis.RevenueByPropertyPlatform(ds)
	return Report{
		Summary:           analysis.Summarize(ds),
		RevenueByPlatform: analysis.RevenueByPlatform(ds),
		RevenueShares:     analysis.RevenueShareByPlatform(ds),
		NightsShares:      analysis.NightsShareByPlatform(ds),
		PropertySegments:  segments,
		PropertyTotals:    totals,
		MonthlyRevenue:    analysis.MonthlyRevenueSeries(ds),
		MonthlyOccupancy:  analysis.MonthlyOccupancySeries(ds),
		MonthlyADR:        analysis.MonthlyADRSeries(ds),
	}
}

// WriteXLSX writes the report as a workbook with one sheet per chart.
// Undefined values are written as the N/A sentinel, never as NaN.
func WriteXLSX(path string, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeKPISheet(f, r.Summary); err != nil {
		return err
	}
	if err := writePlatformSheet(f, r); err != nil {
		return err
	}
	if err := writePropertySheet(f, r); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, r); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}

func writeKPISheet(f *excelize.File, s *analysis.Summary) error {
	const sheet = "KPIs"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, "Metric", "Value"); err != nil {
		return err
	}

	row := 2
	for _, t := range analysis.Tiles(s) {
		if err := setRow(f, sheet, row, t.Label, t.Display); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writePlatformSheet(f *excelize.File, r Report) error {
	const sheet = "Platforms"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, "Platform", "Revenue", "Revenue Share (%)", "Nights Share (%)"); err != nil {
		return err
	}

	revShares := make(map[string]float64, len(r.RevenueShares))
	for _, s := range r.RevenueShares {
		revShares[s.Platform] = s.Value
	}
	nightShares := make(map[string]float64, len(r.NightsShares))
	for _, s := range r.NightsShares {
		nightShares[s.Platform] = s.Value
	}

	row := 2
	for _, t := range r.RevenueByPlatform {
		rev := shareCell(revShares, t.Platform)
		nights := shareCell(nightShares, t.Platform)
		if err := setRow(f, sheet, row, t.Platform, t.Value, rev, nights); err != nil {
			return err
		}
		row++
	}
	return nil
}

// shareCell returns the share value, or the sentinel when the platform
// has no share (all-zero denominators drop the whole share slice).
func shareCell(shares map[string]float64, platform string) interface{} {
	if v, ok := shares[platform]; ok {
		return v
	}
	return analysis.NoDataDisplay
}

func writePropertySheet(f *excelize.File, r Report) error {
	const sheet = "Properties"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, "Property", "Platform", "Revenue"); err != nil {
		return err
	}

	row := 2
	for _, s := range r.PropertySegments {
		if err := setRow(f, sheet, row, s.Property, s.Platform, s.Revenue); err != nil {
			return err
		}
		row++
	}

	row++
	if err := setRow(f, sheet, row, "Property", "Total Revenue"); err != nil {
		return err
	}
	row++
	for _, t := range r.PropertyTotals {
		if err := setRow(f, sheet, row, t.Property, t.Revenue); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, r Report) error {
	const sheet = "Monthly"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, "Month", "Property", "Revenue", "Occupancy (%)", "ADR"); err != nil {
		return err
	}

	type rowKey struct {
		month    time.Time
		property string
	}
	type rowValues struct {
		revenue   interface{}
		occupancy interface{}
		adr       interface{}
	}

	rows := make(map[rowKey]*rowValues)
	var order []rowKey
	get := func(k rowKey) *rowValues {
		if v, ok := rows[k]; ok {
			return v
		}
		v := &rowValues{
			revenue:   analysis.NoDataDisplay,
			occupancy: analysis.NoDataDisplay,
			adr:       analysis.NoDataDisplay,
		}
		rows[k] = v
		order = append(order, k)
		return v
	}

	// Revenue points define the row order; the other series arrive in
	// the same month-then-property order.
	for _, p := range r.MonthlyRevenue {
		get(rowKey{p.Month, p.Property}).revenue = seriesCell(p.Value, 1)
	}
	for _, p := range r.MonthlyOccupancy {
		get(rowKey{p.Month, p.Property}).occupancy = seriesCell(p.Value, 100)
	}
	for _, p := range r.MonthlyADR {
		get(rowKey{p.Month, p.Property}).adr = seriesCell(p.Value, 1)
	}

	row := 2
	for _, k := range order {
		v := rows[k]
		err := setRow(f, sheet, row,
			k.month.Format("2006-01"), k.property, v.revenue, v.occupancy, v.adr)
		if err != nil {
			return err
		}
		row++
	}
	return nil
}

// seriesCell converts a series value to a cell, scaling defined values
// (occupancy fractions become percentages).
func seriesCell(v analysis.Value, scale float64) interface{} {
	if val, ok := v.Float(); ok {
		return val * scale
	}
	return analysis.NoDataDisplay
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
