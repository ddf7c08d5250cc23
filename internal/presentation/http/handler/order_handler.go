package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/application/service"
	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/response"
)

// OrderHandler handles zone, bill and checkout requests
type OrderHandler struct {
	engine         *service.OrderEngine
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(engine *service.OrderEngine, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{engine: engine, printerService: printerService}
}

func zoneIDParam(c *gin.Context) entity.ZoneID {
	return entity.ZoneID(c.Param("id"))
}

// ListZones returns every zone summary and the selected zone
func (h *OrderHandler) ListZones(c *gin.Context) {
	active := h.engine.ActiveZone()
	response.OK(c, "Zones retrieved successfully", gin.H{
		"active_zone": active.ID,
		"zones":       h.engine.Zones(),
	})
}

// GetActiveZone returns the selected zone
func (h *OrderHandler) GetActiveZone(c *gin.Context) {
	response.OK(c, "Active zone retrieved successfully", response.NewZoneView(h.engine.ActiveZone()))
}

// SelectZone selects the active zone, seeding an empty SPECIAL bill
func (h *OrderHandler) SelectZone(c *gin.Context) {
	var req request.SelectZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	zone, err := h.engine.SelectZone(c.Request.Context(), entity.ZoneID(req.ZoneID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Zone selected", response.NewZoneView(zone))
}

// GetZone returns one zone with its bills
func (h *OrderHandler) GetZone(c *gin.Context) {
	zone, err := h.engine.Zone(zoneIDParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Zone retrieved successfully", response.NewZoneView(zone))
}

// OpenBill opens another bill on a zone
func (h *OrderHandler) OpenBill(c *gin.Context) {
	zone, err := h.engine.OpenNewBill(c.Request.Context(), zoneIDParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill opened", response.NewZoneView(zone))
}

// SwitchBill changes the active bill tab
func (h *OrderHandler) SwitchBill(c *gin.Context) {
	var req request.SwitchBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	zone, err := h.engine.SwitchActiveBill(c.Request.Context(), zoneIDParam(c), *req.Index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active bill updated", response.NewZoneView(zone))
}

// AddItem adds a catalog item to the active bill
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	delta := 1
	if req.Remove {
		delta = -1
	}
	if req.Quantity != "" {
		d, ok := service.ParseQuantityEntry(req.Quantity, quantityMode(req.Remove))
		if !ok {
			h.unchanged(c)
			return
		}
		delta = d
	}

	zone, err := h.engine.AddCatalogItem(c.Request.Context(), zoneIDParam(c), req.ItemID, req.Variant, delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated", response.NewZoneView(zone))
}

// AdjustQuantity changes the quantity of one line of the active bill
func (h *OrderHandler) AdjustQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line item index")
		return
	}

	var req request.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var delta int
	switch {
	case req.Delta != nil:
		delta = *req.Delta
	case req.Quantity != "":
		d, ok := service.ParseQuantityEntry(req.Quantity, quantityMode(req.Remove))
		if !ok {
			h.unchanged(c)
			return
		}
		delta = d
	default:
		response.BadRequest(c, "Either delta or quantity is required")
		return
	}

	zone, err := h.engine.AdjustLine(c.Request.Context(), zoneIDParam(c), index, delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated", response.NewZoneView(zone))
}

// PreviewReceipt renders the active bill without checking out
func (h *OrderHandler) PreviewReceipt(c *gin.Context) {
	receipt, err := h.engine.Preview(zoneIDParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt preview", receipt)
}

// Checkout closes the active bill, records the sale and prints the receipt.
// A print failure is reported as a warning; the checkout stands.
func (h *OrderHandler) Checkout(c *gin.Context) {
	// The body is optional; an empty one prints
	var req request.CheckoutRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Invalid request: "+err.Error())
			return
		}
	}

	result, err := h.engine.Checkout(c.Request.Context(), zoneIDParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{
		"receipt": result.Receipt,
		"sale":    result.Sale,
		"zone":    response.NewZoneView(result.Zone),
	}

	message := "Bill checked out"
	if result.Sale == nil {
		message = "Empty bill cleared"
	}

	if (req.Print == nil || *req.Print) && result.Sale != nil {
		if err := h.printerService.PrintReceipt(c.Request.Context(), result.Receipt); err != nil {
			data["warning"] = err.Error()
			message = "Bill checked out but printing failed"
		}
	}

	response.OK(c, message, data)
}

// unchanged answers a no-op quantity entry with the current zone
func (h *OrderHandler) unchanged(c *gin.Context) {
	zone, err := h.engine.Zone(zoneIDParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "No change", response.NewZoneView(zone))
}

func quantityMode(remove bool) service.QuantityMode {
	if remove {
		return service.QuantityRemove
	}
	return service.QuantityAdd
}
