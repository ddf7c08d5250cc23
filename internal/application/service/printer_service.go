package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/pkg/apperror"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"github.com/sangkips/restaurant-pos/pkg/printer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrPrinter wraps every failed print job
var ErrPrinter = apperror.NewAppError(http.StatusBadGateway, "Printer unavailable")

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	width       int
	header      entity.ReceiptHeader
	log         logger.ZapLogger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string, width int, header entity.ReceiptHeader, log logger.ZapLogger) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		width:       width,
		header:      header,
		log:         log,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
		Width:      s.width,
	}
}

// TestPrint sends a sample parcel receipt to the printer.
// The receipt is returned even when printing fails.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	bill := entity.Bill{
		Label: "TEST",
		Items: []entity.LineItem{
			{Name: "Test Item (Half)", VariantLabel: entity.VariantHalf, UnitPrice: 100, Quantity: 1, LineTotal: 100},
			{Name: "Test Item", VariantLabel: entity.VariantPlate, UnitPrice: 20, Quantity: 2, LineTotal: 40},
		},
	}
	receipt := entity.NewReceipt(entity.ZoneParcel, bill, time.Now())
	receipt.Header = s.header

	return receipt, s.PrintReceipt(ctx, receipt)
}

// PrintReceipt renders and prints a receipt
func (s *PrinterService) PrintReceipt(ctx context.Context, r *entity.Receipt) error {
	if err := s.printer.Print(ctx, s.FormatReceipt(r)); err != nil {
		s.log.Warn("Printer error", zap.String("bill", r.BillReference), zap.Error(err))
		return apperror.Wrap(ErrPrinter, err)
	}
	return nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Ph: %s", r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		SetBold(true).
		Text(r.Title).
		SetBold(false).
		KeyValue("Date:", r.IssuedAt.Format("02/01/2006")).
		KeyValue("Time:", r.IssuedAt.Format("03:04 PM")).
		Separator('-').
		Row("Item", "Qty", "Amt").
		Separator('-')

	for _, item := range r.Items {
		name := item.Name
		if item.ShowVariant() {
			name = fmt.Sprintf("%s (%s)", item.Name, item.VariantLabel)
		}
		doc.Row(name, fmt.Sprint(item.Quantity), FormatAmount(item.LineTotal))
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("TOTAL:", "Rs "+FormatAmount(r.Total)).
		SetBold(false).
		Separator('-')

	// Footer
	if r.Header.Footer != "" {
		doc.LineFeed().Centered(r.Header.Footer)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatAmount renders whole rupees with two decimals
func FormatAmount(v int64) string {
	return decimal.NewFromInt(v).StringFixed(2)
}
