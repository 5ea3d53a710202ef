package catalog

import "github.com/javajoker/sku-generator/internal/models"

func FindVariant(variants []models.Variant, id string) (models.Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return models.Variant{}, false
}

// AddVariant appends a new variant. Name and refs presence is checked by the
// caller.
func AddVariant(variants []models.Variant, id, name string, refs []models.PieceRef) []models.Variant {
	out := make([]models.Variant, 0, len(variants)+1)
	out = append(out, variants...)
	return append(out, models.Variant{
		ID:       id,
		Name:     name,
		PieceIDs: cloneRefs(refs),
	})
}

// UpdateVariant replaces name and refs of the matching variant wholesale.
func UpdateVariant(variants []models.Variant, id, name string, refs []models.PieceRef) []models.Variant {
	return mapVariant(variants, id, func(v models.Variant) models.Variant {
		v.Name = name
		v.PieceIDs = cloneRefs(refs)
		return v
	})
}

func DeleteVariant(variants []models.Variant, id string) []models.Variant {
	out := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}

// ReorderPieceInVariant moves the ref fromPieceID to the slot of toPieceID
// inside one variant. Unknown ids leave the list as it is.
func ReorderPieceInVariant(variants []models.Variant, variantID, fromPieceID, toPieceID string) []models.Variant {
	return mapVariant(variants, variantID, func(v models.Variant) models.Variant {
		v.PieceIDs = MoveByID(v.PieceIDs, fromPieceID, toPieceID)
		return v
	})
}

// AvailablePieces lists the pieces that can still be added to a selection:
// active and not selected yet.
func AvailablePieces(pieces []models.Piece, selected []models.PieceRef) []models.Piece {
	out := []models.Piece{}
	for _, p := range pieces {
		if p.IsActive && indexOfRef(selected, p.ID) < 0 {
			out = append(out, p)
		}
	}
	return out
}

// AddToSelection appends pieceID with quantity 1. It declines pieces that are
// already selected, inactive or unknown.
func AddToSelection(selected []models.PieceRef, pieces []models.Piece, pieceID string) ([]models.PieceRef, bool) {
	if _, ok := FindPiece(AvailablePieces(pieces, selected), pieceID); !ok {
		return cloneRefs(selected), false
	}
	return append(cloneRefs(selected), models.PieceRef{ID: pieceID, Quantity: 1}), true
}

// RemoveFromSelection drops pieceID, which makes it available again.
func RemoveFromSelection(selected []models.PieceRef, pieceID string) []models.PieceRef {
	out := make([]models.PieceRef, 0, len(selected))
	for _, r := range selected {
		if r.ID != pieceID {
			out = append(out, r)
		}
	}
	return out
}

// SetSelectionQuantity changes the quantity of one selected ref. Quantities
// below 1 are ignored.
func SetSelectionQuantity(selected []models.PieceRef, pieceID string, quantity int) []models.PieceRef {
	out := cloneRefs(selected)
	if quantity < 1 {
		return out
	}
	if i := indexOfRef(out, pieceID); i >= 0 {
		out[i].Quantity = quantity
	}
	return out
}

// DuplicateRef reports the first piece id that appears more than once.
func DuplicateRef(refs []models.PieceRef) (string, bool) {
	seen := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		if _, ok := seen[r.ID]; ok {
			return r.ID, true
		}
		seen[r.ID] = struct{}{}
	}
	return "", false
}

func mapVariant(variants []models.Variant, id string, fn func(models.Variant) models.Variant) []models.Variant {
	out := make([]models.Variant, len(variants))
	for i, v := range variants {
		if v.ID == id {
			v = fn(v)
		}
		out[i] = v
	}
	return out
}

func cloneRefs(refs []models.PieceRef) []models.PieceRef {
	out := make([]models.PieceRef, len(refs))
	copy(out, refs)
	return out
}
