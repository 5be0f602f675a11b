package legal

import "strings"

// Category is the legal domain a query, record or document is routed to.
type Category string

const (
	Property Category = "property"
	Criminal Category = "criminal"
	Family   Category = "family"
	Civil    Category = "civil"
	Consumer Category = "consumer"
	General  Category = "general"
)

// Categories lists every category in classification priority order.
var Categories = []Category{Property, Criminal, Family, Civil, Consumer, General}

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a user supplied name. Unknown or empty names return
// ok=false and General.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return General, false
	}
	return c, true
}
