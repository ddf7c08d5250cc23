package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/application/service"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/response"
)

// PrinterHandler exposes the receipt printer to the till UI
type PrinterHandler struct {
	printerService *service.PrinterService
}

func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus reports the configured printer and whether it is reachable
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// TestPrint prints a sample parcel receipt. A printer failure answers 502.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{"receipt": receipt})
}
