package enum

// ZoneKind distinguishes physical tables from the two virtual zones
type ZoneKind int

const (
	ZoneKindTable   ZoneKind = 0
	ZoneKindParcel  ZoneKind = 1
	ZoneKindSpecial ZoneKind = 2
)

func (k ZoneKind) String() string {
	return [...]string{"Table", "Parcel", "Special"}[k]
}

// OrderKind is the sale classification recorded at checkout
func (k ZoneKind) OrderKind() OrderKind {
	switch k {
	case ZoneKindParcel:
		return OrderKindParcel
	case ZoneKindSpecial:
		return OrderKindSpecial
	case ZoneKindTable:
		return OrderKindDineIn
	}
	panic("enum: unhandled zone kind")
}

// Virtual reports whether bills in this zone are numbered rather than lettered
func (k ZoneKind) Virtual() bool {
	switch k {
	case ZoneKindParcel, ZoneKindSpecial:
		return true
	case ZoneKindTable:
		return false
	}
	panic("enum: unhandled zone kind")
}
