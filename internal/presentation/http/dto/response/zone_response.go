package response

import (
	"github.com/sangkips/restaurant-pos/internal/domain/entity"
)

// BillView is a bill tab with its running total
type BillView struct {
	Label  string            `json:"label"`
	Items  []entity.LineItem `json:"items"`
	Total  int64             `json:"total"`
	Active bool              `json:"active"`
}

// ZoneView is the order panel of one zone
type ZoneView struct {
	ID              entity.ZoneID `json:"id"`
	Kind            string        `json:"kind"`
	Occupied        bool          `json:"occupied"`
	ActiveBills     int           `json:"active_bills"`
	ActiveBillIndex int           `json:"active_bill_index"`
	Bills           []BillView    `json:"bills"`
}

// NewZoneView builds the response view of a zone
func NewZoneView(z entity.Zone) *ZoneView {
	v := &ZoneView{
		ID:              z.ID,
		Kind:            z.ID.Kind().String(),
		Occupied:        z.Occupied(),
		ActiveBills:     z.OpenBillCount(),
		ActiveBillIndex: z.ActiveBillIndex,
		Bills:           make([]BillView, len(z.Bills)),
	}
	for i, b := range z.Bills {
		v.Bills[i] = BillView{
			Label:  b.Label,
			Items:  b.Items,
			Total:  entity.TotalOf(b),
			Active: i == z.ActiveBillIndex,
		}
	}
	return v
}
