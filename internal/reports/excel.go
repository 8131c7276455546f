// Package reports renders admin report series as xlsx workbooks.
package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// WriteSeries writes one report series to path, with a title row followed by
// one row per point.
func WriteSeries(path, sheet, valueHeader string, points []domain.RevenuePoint) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"Date", valueHeader}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	total := 0.0
	for r, p := range points {
		row := r + 2
		values := []any{p.Label, p.Amount}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		total += p.Amount
	}
	totalRow := len(points) + 2
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	_ = f.SetCellValue(sheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(2, totalRow)
	_ = f.SetCellValue(sheet, cell, total)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// WriteRevenue writes the revenue report workbook.
func WriteRevenue(path string, points []domain.RevenuePoint) error {
	return WriteSeries(path, "Revenue", "Revenue", points)
}

// WriteUsage writes the energy usage report workbook.
func WriteUsage(path string, points []domain.RevenuePoint) error {
	return WriteSeries(path, "Usage", "Energy (kWh)", points)
}
