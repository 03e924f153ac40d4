package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Product statuses. Only active products are visible to search.
const (
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusInactive = "inactive"
)

// Product conditions.
const (
	ConditionNew         = "new"
	ConditionUsed        = "used"
	ConditionRefurbished = "refurbished"
)

type Product struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Condition   string               `json:"condition"`
	Status      string               `json:"status"`
	Category    string               `json:"category"`
	Subcategory string               `json:"subcategory"`
	Brand       string               `json:"brand"`
	Specs       map[string]SpecValue `json:"specs,omitempty"`
	Location    Location             `json:"location"`
	SellerID    int                  `json:"seller_id"`
	CreatedAt   time.Time            `json:"created_at"`
}

type Location struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// SpecValue holds a single specification value. Listings carry heterogeneous
// spec maps (screen size as a number, color as a string, warranty as a bool),
// so the value is a tagged variant. Only string values participate in text
// search.
type SpecValue struct {
	Kind SpecKind
	Str  string
	Num  float64
	Bool bool
}

type SpecKind int

const (
	SpecString SpecKind = iota
	SpecNumber
	SpecBool
)

func StringSpec(s string) SpecValue  { return SpecValue{Kind: SpecString, Str: s} }
func NumberSpec(n float64) SpecValue { return SpecValue{Kind: SpecNumber, Num: n} }
func BoolSpec(b bool) SpecValue      { return SpecValue{Kind: SpecBool, Bool: b} }

// MarshalJSON writes the value as a bare JSON scalar so spec maps look like
// {"ram_gb": 16, "color": "silver", "under_warranty": true} on the wire.
func (v SpecValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case SpecNumber:
		return json.Marshal(v.Num)
	case SpecBool:
		return json.Marshal(v.Bool)
	default:
		return json.Marshal(v.Str)
	}
}

func (v *SpecValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringSpec(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberSpec(n)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolSpec(b)
		return nil
	}
	return fmt.Errorf("models: spec value must be a string, number or boolean: %s", data)
}
