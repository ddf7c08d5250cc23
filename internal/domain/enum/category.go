package enum

import (
	"encoding/json"
	"fmt"
)

// Category groups menu items on the order screen
type Category int

const (
	CategoryMainCourse Category = 0
	CategoryRice       Category = 1
	CategoryBreads     Category = 2
	CategorySides      Category = 3
)

var categoryNames = [...]string{"Main Course", "Rice", "Breads", "Sides"}

// Categories returns every category in menu order
func Categories() []Category {
	return []Category{CategoryMainCourse, CategoryRice, CategoryBreads, CategorySides}
}

func (c Category) String() string {
	if int(c) < 0 || int(c) >= len(categoryNames) {
		return "Main Course"
	}
	return categoryNames[c]
}

// ParseCategory maps a display name back to a Category
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), true
		}
	}
	return CategoryMainCourse, false
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if i < 0 || i >= len(categoryNames) {
			return fmt.Errorf("unknown category %d", i)
		}
		*c = Category(i)
		return nil
	}
	parsed, ok := ParseCategory(str)
	if !ok {
		return fmt.Errorf("unknown category %q", str)
	}
	*c = parsed
	return nil
}
