package medicine

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("medicine not found")

// DefaultMinimumStock is the minimum stock level applied when none is
// supplied.
const DefaultMinimumStock = 10

// Medicine is an inventory item. ExpiryDate is a YYYY-MM-DD string and
// is stored and compared as such; the store does no date parsing.
type Medicine struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	ExpiryDate        string    `json:"expiry_date"`
	Quantity          int       `json:"quantity"`
	UnitPrice         float64   `json:"unit_price"`
	Category          string    `json:"category"`
	MinimumStockLevel int       `json:"minimum_stock_level"`
	CreatedAt         time.Time `json:"created_at"`
}

// LowStock reports whether the quantity has fallen to or below the
// minimum stock level.
func (m *Medicine) LowStock() bool {
	return m.Quantity <= m.MinimumStockLevel
}

// ExpiredAsOf reports whether the medicine is expired on the given
// YYYY-MM-DD date. Lexicographic comparison equals calendar comparison
// for well-formed dates in this format.
func (m *Medicine) ExpiredAsOf(today string) bool {
	return m.ExpiryDate <= today
}
