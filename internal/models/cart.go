package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one study inside a cart or a persisted quote. UnitPrice is a
// snapshot taken when the line was added; it is never re-fetched from the
// catalog.
type CartLine struct {
	ItemID    uuid.UUID       `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Key is the derived line identifier: the catalog item id when the line has
// one, otherwise the display name. Every lookup that needs a line identity
// goes through here.
func (l CartLine) Key() string {
	if l.ItemID != uuid.Nil {
		return l.ItemID.String()
	}
	return l.Name
}

// CartLines is an ordered line sequence stored as a JSON column on quotes.
type CartLines []CartLine

// Value implements driver.Valuer for gorm JSON storage.
func (ls CartLines) Value() (driver.Value, error) {
	if ls == nil {
		ls = CartLines{}
	}
	return json.Marshal(ls)
}

// Scan implements sql.Scanner for gorm JSON storage.
func (ls *CartLines) Scan(value interface{}) error {
	if value == nil {
		*ls = CartLines{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ls)
	case string:
		return json.Unmarshal([]byte(v), ls)
	default:
		return fmt.Errorf("cannot scan %T into CartLines", value)
	}
}

// Cart is the transient, session-scoped state of one quotation being
// assembled. Each editing session owns its own instance; nothing here is
// shared process state.
type Cart struct {
	Lines CartLines `json:"lines"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Lines: CartLines{}}
}

// Contains reports whether a line with the given derived key is present.
func (c *Cart) Contains(key string) bool {
	for _, l := range c.Lines {
		if l.Key() == key {
			return true
		}
	}
	return false
}

// AddLine appends a line unless one with the same derived key already
// exists. Adding a duplicate is a silent no-op, so the operation is
// idempotent.
func (c *Cart) AddLine(line CartLine) bool {
	if c.Contains(line.Key()) {
		return false
	}
	c.Lines = append(c.Lines, line)
	return true
}

// RemoveLine deletes the line with the given derived key. Removing an
// absent key is a no-op, not an error.
func (c *Cart) RemoveLine(key string) bool {
	for i, l := range c.Lines {
		if l.Key() == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.Lines)
}

// Totals holds the computed money amounts for a cart and tier.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, discount and total for a line sequence
// under a tier. An empty sequence yields zeroes. For non-negative unit
// prices and a rate in [0,1): 0 <= total <= subtotal.
func ComputeTotals(lines CartLines, tier DiscountTier) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice)
	}
	discount := subtotal.Mul(tier.Rate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}
