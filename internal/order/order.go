package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Order represents a customer purchase managed through the admin panel.
// Monetary fields hold integer minor currency units; display layers divide
// by 100 for presentation only. Orders are created by the external checkout
// flow — this service only reads them and mutates status/tracking.
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   *string       `json:"customerPhone,omitempty"`
	CustomerAddress *Address      `json:"customerAddress,omitempty"`
	Products        []ProductItem `json:"products"`
	Total           int64         `json:"total"`
	Status          Status        `json:"status"`
	TrackingURL     *string       `json:"trackingUrl,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// ProductItem is a single order line. Price is the unit price in minor
// currency units; the stored order total is NOT derived from these lines.
type ProductItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// Address is the structured shipping address attached to an order.
type Address struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// ParseProducts decodes the serialized line-item column. The checkout that
// writes these rows has historically produced both a plain JSON array and a
// doubly-encoded variant (a JSON string containing the array), so a leading
// quote means one extra unwrap before the real decode. Callers only ever see
// the structured form.
func ParseProducts(raw []byte) ([]ProductItem, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []ProductItem{}, nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("unwrap products payload: %w", err)
		}
		if inner == "" {
			return []ProductItem{}, nil
		}
		raw = []byte(inner)
	}
	items := make([]ProductItem, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode products payload: %w", err)
	}
	return items, nil
}

// ParseAddress decodes the serialized customer address, tolerating the same
// doubly-encoded legacy rows as ParseProducts. Empty input means the order
// carries no stored address.
func ParseAddress(raw []byte) (*Address, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("unwrap address payload: %w", err)
		}
		if inner == "" {
			return nil, nil
		}
		raw = []byte(inner)
	}
	addr := new(Address)
	if err := json.Unmarshal(raw, addr); err != nil {
		return nil, fmt.Errorf("decode address payload: %w", err)
	}
	return addr, nil
}
