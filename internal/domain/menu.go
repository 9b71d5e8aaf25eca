package domain

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryBreakfast     Category = "Breakfast"
	CategoryLunch         Category = "Lunch"
	CategoryEveningSnacks Category = "Evening Snacks"
	CategoryDinner        Category = "Dinner"
)

var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryEveningSnacks,
	CategoryDinner,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultMaxPerCart applies when a persisted item predates the per-cart cap
// field.
const DefaultMaxPerCart = 10

// MenuItem represents a sellable catalog entry.
type MenuItem struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          Category        `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Vegetarian        bool            `json:"veg"`
	SpiceLevel        int             `json:"spicy"`
	AvailableQuantity int             `json:"available_quantity"`
	MaxPerCart        int             `json:"max_per_cart_quantity"`
	Highlighted       bool            `json:"highlight"`
	Unavailable       bool            `json:"unavailable"`
	Image             string          `json:"img,omitempty"`
	Description       string          `json:"desc,omitempty"`
}

// UnmarshalJSON tolerates records persisted before the stock fields existed:
// available_quantity defaults to 0 and max_per_cart_quantity to
// DefaultMaxPerCart.
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	type alias MenuItem
	aux := struct {
		*alias
		MaxPerCart *int `json:"max_per_cart_quantity"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.MaxPerCart == nil {
		m.MaxPerCart = DefaultMaxPerCart
	} else {
		m.MaxPerCart = *aux.MaxPerCart
	}
	return nil
}

// Normalize applies write-time rules before the item is persisted. An
// unavailable item can never be highlighted.
func (m *MenuItem) Normalize() {
	if m.Unavailable {
		m.Highlighted = false
	}
	if m.MaxPerCart <= 0 {
		m.MaxPerCart = DefaultMaxPerCart
	}
}

// Validate applies business validation rules.
func (m *MenuItem) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("item id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("item name is required")
	}
	if !m.Category.Valid() {
		return errors.New("invalid category")
	}
	if m.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if m.SpiceLevel < 0 || m.SpiceLevel > 5 {
		return errors.New("spice level must be between 0 and 5")
	}
	if m.AvailableQuantity < 0 {
		return errors.New("available quantity must not be negative")
	}
	return nil
}

// MaxAllowed is the hard cap a single cart may hold of this item at this
// moment: the smaller of the per-cart cap and the live stock.
func (m *MenuItem) MaxAllowed() int {
	if m.MaxPerCart < m.AvailableQuantity {
		return m.MaxPerCart
	}
	return m.AvailableQuantity
}

// Sellable reports whether the item can be added to a cart at all.
func (m *MenuItem) Sellable() bool {
	return !m.Unavailable && m.AvailableQuantity > 0
}
