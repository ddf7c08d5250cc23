package enum

import (
	"encoding/json"
	"fmt"
)

// OrderKind classifies a completed sale by where it was served
type OrderKind int

const (
	OrderKindDineIn  OrderKind = 0
	OrderKindParcel  OrderKind = 1
	OrderKindSpecial OrderKind = 2
)

var orderKindNames = [...]string{"Dine-In", "Parcel", "Special"}

func (k OrderKind) String() string {
	if int(k) < 0 || int(k) >= len(orderKindNames) {
		return "Dine-In"
	}
	return orderKindNames[k]
}

func (k OrderKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *OrderKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if i < 0 || i >= len(orderKindNames) {
			return fmt.Errorf("unknown order kind %d", i)
		}
		*k = OrderKind(i)
		return nil
	}
	switch str {
	case "Dine-In", "DineIn":
		*k = OrderKindDineIn
	case "Parcel":
		*k = OrderKindParcel
	case "Special":
		*k = OrderKindSpecial
	default:
		return fmt.Errorf("unknown order kind %q", str)
	}
	return nil
}
