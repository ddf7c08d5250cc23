package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/application/service"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SalesHandler handles the daily sales ledger
type SalesHandler struct {
	ledger        *service.SalesLedger
	reportService *service.ReportService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(ledger *service.SalesLedger, reportService *service.ReportService) *SalesHandler {
	return &SalesHandler{ledger: ledger, reportService: reportService}
}

// Today returns today's totals and sale records
func (h *SalesHandler) Today(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, "Sales retrieved successfully", gin.H{
		"totals":  h.ledger.DailyTotals(ctx),
		"records": h.ledger.Records(ctx),
	})
}

// ClearToday purges today's ledger. The caller must pass confirm=true.
func (h *SalesHandler) ClearToday(c *gin.Context) {
	var req request.ClearSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil || !req.Confirm {
		response.BadRequest(c, "Clearing today's sales requires confirm=true")
		return
	}

	if err := h.ledger.ClearToday(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Today's sales cleared", h.ledger.DailyTotals(c.Request.Context()))
}

// Export downloads one day's sales as a spreadsheet
func (h *SalesHandler) Export(c *gin.Context) {
	day := c.Param("date")
	data, err := h.reportService.ExportDay(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Attachment(c, "sales-"+day+".xlsx", xlsxContentType, data)
}
