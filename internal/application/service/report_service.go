package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

const salesSheet = "Sales"

var salesColumns = []any{"Sale ID", "Bill", "Type", "Date", "Time", "Items", "Amount"}

// SalesSource reads ledger days
type SalesSource interface {
	RecordsFor(ctx context.Context, day string) ([]entity.SaleRecord, error)
}

// ReportService exports ledger days as spreadsheets
type ReportService struct {
	sales SalesSource
}

// NewReportService creates a new report service
func NewReportService(sales SalesSource) *ReportService {
	return &ReportService{sales: sales}
}

// ExportDay builds an .xlsx workbook with one row per sale and a totals row
func (s *ReportService) ExportDay(ctx context.Context, day string) ([]byte, error) {
	if _, err := time.Parse(entity.DayLayout, day); err != nil {
		return nil, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
	}

	records, err := s.sales.RecordsFor(ctx, day)
	if err != nil {
		return nil, err
	}
	totals := entity.SumRecords(day, records)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), salesSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, 1, salesColumns); err != nil {
		return nil, err
	}

	for i, r := range records {
		local := r.Timestamp.Local()
		row := []any{
			r.ID,
			r.BillReference,
			r.OrderKind.String(),
			local.Format(entity.DayLayout),
			local.Format("15:04:05"),
			r.ItemSummary,
			r.Amount,
		}
		if err := setRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	footer := []any{"TOTAL", fmt.Sprintf("%d sales", totals.Count), "", day, "", "Average " + totals.Average.StringFixed(2), totals.Amount}
	if err := setRow(f, len(records)+2, footer); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(salesSheet, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(salesSheet, "F", "F", 48); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(salesSheet, cell, &values)
}
