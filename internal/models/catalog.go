// internal/models/catalog.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Catalog is the persisted unit. Product order is the display (tab) order.
type Catalog struct {
	Products []Product `json:"products"`
}

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BaseSku   string    `json:"baseSku"`
	Delimiter string    `json:"delimiter"`
	SetPrefix string    `json:"setPrefix"`
	Pieces    []Piece   `json:"pieces"`
	Variants  []Variant `json:"variants"`
}

type Piece struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	IsActive bool   `json:"isActive"`
}

type Variant struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	PieceIDs []PieceRef `json:"pieceIds"`
}

// PieceRef points at a piece of the same product. Quantity is at least 1.
type PieceRef struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1,max=10"`
}

// UnmarshalJSON accepts both the object form and the older bare piece id
// string, which carries an implicit quantity of 1.
func (r *PieceRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = PieceRef{ID: id, Quantity: 1}
		return nil
	}

	var raw struct {
		ID       string `json:"id"`
		Quantity *int   `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid piece reference: %w", err)
	}

	r.ID = raw.ID
	r.Quantity = 1
	if raw.Quantity != nil {
		r.Quantity = *raw.Quantity
	}
	return nil
}
