package enum

import (
	"encoding/json"
	"fmt"
)

// DietType marks an item as vegetarian or not
type DietType int

const (
	DietTypeVeg    DietType = 0
	DietTypeNonVeg DietType = 1
)

func (d DietType) String() string {
	return [...]string{"veg", "non-veg"}[d]
}

// ParseDietType accepts "veg" or "non-veg"
func ParseDietType(s string) (DietType, bool) {
	switch s {
	case "veg":
		return DietTypeVeg, true
	case "non-veg":
		return DietTypeNonVeg, true
	}
	return DietTypeVeg, false
}

func (d DietType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DietType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, ok := ParseDietType(str)
	if !ok {
		return fmt.Errorf("unknown diet type %q", str)
	}
	*d = parsed
	return nil
}
