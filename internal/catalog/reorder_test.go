package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javajoker/sku-generator/internal/models"
)

func TestMove(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"b", "c", "a", "d"}, Move(list, 0, 2))
	assert.Equal(t, []string{"d", "a", "b", "c"}, Move(list, 3, 0))
	assert.Equal(t, []string{"a", "c", "b", "d"}, Move(list, 1, 2))
	assert.Equal(t, list, Move(list, 1, 1))
	assert.Equal(t, list, Move(list, -1, 2))
	assert.Equal(t, list, Move(list, 0, 4))

	// input is never modified
	assert.Equal(t, []string{"a", "b", "c", "d"}, list)
}

func TestMoveByID(t *testing.T) {
	refs := []models.PieceRef{{ID: "a", Quantity: 1}, {ID: "b", Quantity: 2}, {ID: "c", Quantity: 3}}

	moved := MoveByID(refs, "c", "a")
	assert.Equal(t, []models.PieceRef{{ID: "c", Quantity: 3}, {ID: "a", Quantity: 1}, {ID: "b", Quantity: 2}}, moved)

	assert.Equal(t, refs, MoveByID(refs, "missing", "a"))
	assert.Equal(t, refs, MoveByID(refs, "a", "missing"))
}
