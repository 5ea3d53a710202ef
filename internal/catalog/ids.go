package catalog

import "github.com/google/uuid"

// IDGenerator mints opaque ids for products, pieces and variants.
type IDGenerator func() string

// NewID is the default IDGenerator.
func NewID() string {
	return uuid.NewString()
}
