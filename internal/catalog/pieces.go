package catalog

import "github.com/javajoker/sku-generator/internal/models"

// FindPiece looks a piece up by id. Callers must handle the absent case.
func FindPiece(pieces []models.Piece, id string) (models.Piece, bool) {
	for _, p := range pieces {
		if p.ID == id {
			return p, true
		}
	}
	return models.Piece{}, false
}

// AddPiece appends a new active piece.
func AddPiece(pieces []models.Piece, id, name, value string) []models.Piece {
	out := make([]models.Piece, 0, len(pieces)+1)
	out = append(out, pieces...)
	return append(out, models.Piece{
		ID:       id,
		Name:     name,
		Value:    value,
		IsActive: true,
	})
}

func SetPieceValue(pieces []models.Piece, id, value string) []models.Piece {
	return mapPiece(pieces, id, func(p models.Piece) models.Piece {
		p.Value = value
		return p
	})
}

func TogglePieceActive(pieces []models.Piece, id string) []models.Piece {
	return mapPiece(pieces, id, func(p models.Piece) models.Piece {
		p.IsActive = !p.IsActive
		return p
	})
}

func RemovePiece(pieces []models.Piece, id string) []models.Piece {
	out := make([]models.Piece, 0, len(pieces))
	for _, p := range pieces {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// PieceUsage returns the ids of the variants referencing pieceID, in variant
// order. It is the query half of the two-phase piece delete.
func PieceUsage(variants []models.Variant, pieceID string) []string {
	used := []string{}
	for _, v := range variants {
		if indexOfRef(v.PieceIDs, pieceID) >= 0 {
			used = append(used, v.ID)
		}
	}
	return used
}

func IsPieceInUse(variants []models.Variant, pieceID string) bool {
	return len(PieceUsage(variants, pieceID)) > 0
}

// StripPieceRefs removes every reference to pieceID from every variant.
func StripPieceRefs(variants []models.Variant, pieceID string) []models.Variant {
	out := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		refs := make([]models.PieceRef, 0, len(v.PieceIDs))
		for _, r := range v.PieceIDs {
			if r.ID != pieceID {
				refs = append(refs, r)
			}
		}
		v.PieceIDs = refs
		out = append(out, v)
	}
	return out
}

func mapPiece(pieces []models.Piece, id string, fn func(models.Piece) models.Piece) []models.Piece {
	out := make([]models.Piece, len(pieces))
	for i, p := range pieces {
		if p.ID == id {
			p = fn(p)
		}
		out[i] = p
	}
	return out
}
