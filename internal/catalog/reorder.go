package catalog

import "github.com/javajoker/sku-generator/internal/models"

// Move returns a copy of list with the element at from placed at index to,
// shifting the elements in between. Out of range indexes leave the order
// unchanged.
func Move[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	item := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = item
	return out
}

// MoveByID moves the ref identified by fromID to the position currently held
// by toID.
func MoveByID(refs []models.PieceRef, fromID, toID string) []models.PieceRef {
	return Move(refs, indexOfRef(refs, fromID), indexOfRef(refs, toID))
}

func indexOfRef(refs []models.PieceRef, id string) int {
	for i, r := range refs {
		if r.ID == id {
			return i
		}
	}
	return -1
}
