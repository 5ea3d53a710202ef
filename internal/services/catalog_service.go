// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/sku-generator/internal/catalog"
	"github.com/javajoker/sku-generator/internal/i18n"
	"github.com/javajoker/sku-generator/internal/models"
	"github.com/javajoker/sku-generator/internal/storage"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ConfirmFunc asks whoever triggered a destructive operation to approve it.
type ConfirmFunc func(message string) bool

// Confirmed is a ConfirmFunc that always approves.
func Confirmed(string) bool { return true }

// PieceInUseError is returned when deleting a piece that variants reference
// was not confirmed.
type PieceInUseError struct {
	PieceID    string
	VariantIDs []string
}

func (e *PieceInUseError) Error() string {
	return fmt.Sprintf("piece %s is used in %d variant(s)", e.PieceID, len(e.VariantIDs))
}

func (e *PieceInUseError) Unwrap() error {
	return ErrConfirmationRequired
}

// CatalogService owns the current catalog. Every mutation computes the next
// catalog with the pure functions of package catalog, persists the whole
// document and only then makes it current.
type CatalogService struct {
	mu      sync.Mutex
	store   storage.Store
	key     string
	newID   catalog.IDGenerator
	catalog models.Catalog
	active  string
}

func NewCatalogService(store storage.Store, key string, newID catalog.IDGenerator) *CatalogService {
	if key == "" {
		key = catalog.StorageKey
	}
	if newID == nil {
		newID = catalog.NewID
	}
	return &CatalogService{
		store:   store,
		key:     key,
		newID:   newID,
		catalog: catalog.Empty(),
	}
}

// Load reads the persisted document. A missing or undecodable document
// starts an empty catalog; only storage failures are returned.
func (s *CatalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Get(ctx, s.key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c, decodeErr := catalog.Decode(data)
	if decodeErr != nil {
		logrus.WithError(decodeErr).WithField("key", s.key).Warn("Persisted catalog is malformed, starting empty")
	}

	s.catalog = c
	s.active = catalog.DefaultActive(c)

	logrus.WithFields(logrus.Fields{
		"key":      s.key,
		"products": len(c.Products),
	}).Info("Catalog loaded")
	return nil
}

func (s *CatalogService) Catalog() models.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

func (s *CatalogService) ActiveProductID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActiveProduct changes the transient tab selection. It is not persisted.
func (s *CatalogService) SetActiveProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := catalog.FindProduct(s.catalog, productID); !ok {
		return ErrProductNotFound
	}
	s.active = productID
	return nil
}

func (s *CatalogService) ListProducts() []models.Product {
	return s.Catalog().Products
}

func (s *CatalogService) GetProduct(productID string) (models.Product, error) {
	p, ok := catalog.FindProduct(s.Catalog(), productID)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, name string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, product, ok := catalog.CreateProduct(s.catalog, s.newID, name)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}

	if err := s.commit(ctx, next, "create_product", logrus.Fields{"product_id": product.ID}); err != nil {
		return models.Product{}, err
	}
	s.active = product.ID
	return product, nil
}

func (s *CatalogService) UpdateProductField(ctx context.Context, productID string, field catalog.Field, value any) (models.Product, error) {
	return s.mutateProduct(ctx, productID, "update_product_field", logrus.Fields{"field": field},
		func(p models.Product) (models.Product, error) {
			var updated models.Product
			var err error
			switch field {
			case catalog.FieldPieces:
				updated, err = replacePieces(p, value)
			case catalog.FieldVariants:
				updated, err = replaceVariants(p, value)
			default:
				updated, err = catalog.UpdateField(p, field, value)
			}
			if err != nil {
				return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return updated, nil
		})
}

// DeleteProduct removes a product with its pieces and variants. Products that
// still have variants need confirmation.
func (s *CatalogService) DeleteProduct(ctx context.Context, productID string, confirm ConfirmFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := catalog.FindProduct(s.catalog, productID)
	if !ok {
		return ErrProductNotFound
	}

	if len(product.Variants) > 0 && !askConfirm(confirm, i18n.KeyProductDeleteConfirm) {
		return ErrConfirmationRequired
	}

	next := catalog.DeleteProduct(s.catalog, productID)
	if err := s.commit(ctx, next, "delete_product", logrus.Fields{"product_id": productID}); err != nil {
		return err
	}
	if s.active == productID {
		s.active = catalog.DefaultActive(next)
	}
	return nil
}

func (s *CatalogService) AddPiece(ctx context.Context, productID, name, value string) (models.Piece, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Piece{}, fmt.Errorf("%w: piece name is required", ErrInvalidInput)
	}

	id := s.mintID()
	product, err := s.mutateProduct(ctx, productID, "add_piece", logrus.Fields{"piece_id": id},
		func(p models.Product) (models.Product, error) {
			return catalog.UpdateField(p, catalog.FieldPieces, catalog.AddPiece(p.Pieces, id, name, value))
		})
	if err != nil {
		return models.Piece{}, err
	}

	piece, _ := catalog.FindPiece(product.Pieces, id)
	return piece, nil
}

func (s *CatalogService) SetPieceValue(ctx context.Context, productID, pieceID, value string) (models.Product, error) {
	return s.mutateProduct(ctx, productID, "set_piece_value", logrus.Fields{"piece_id": pieceID},
		func(p models.Product) (models.Product, error) {
			return catalog.UpdateField(p, catalog.FieldPieces, catalog.SetPieceValue(p.Pieces, pieceID, value))
		})
}

func (s *CatalogService) TogglePieceActive(ctx context.Context, productID, pieceID string) (models.Product, error) {
	return s.mutateProduct(ctx, productID, "toggle_piece_active", logrus.Fields{"piece_id": pieceID},
		func(p models.Product) (models.Product, error) {
			return catalog.UpdateField(p, catalog.FieldPieces, catalog.TogglePieceActive(p.Pieces, pieceID))
		})
}

// PieceUsage lists the variants a piece delete would affect.
func (s *CatalogService) PieceUsage(productID, pieceID string) ([]string, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	return catalog.PieceUsage(product.Variants, pieceID), nil
}

// DeletePiece removes a piece and every reference to it. When variants use
// the piece, confirm must approve, otherwise a *PieceInUseError is returned.
func (s *CatalogService) DeletePiece(ctx context.Context, productID, pieceID string, confirm ConfirmFunc) (models.Product, error) {
	return s.mutateProduct(ctx, productID, "delete_piece", logrus.Fields{"piece_id": pieceID},
		func(p models.Product) (models.Product, error) {
			usedIn := catalog.PieceUsage(p.Variants, pieceID)
			if len(usedIn) > 0 && !askConfirm(confirm, i18n.KeyPieceInUseConfirm) {
				return p, &PieceInUseError{PieceID: pieceID, VariantIDs: usedIn}
			}
			return catalog.DeletePiece(p, pieceID), nil
		})
}

// AvailablePieces lists the pieces the variant editor may still add. An empty
// variantID means a new variant.
func (s *CatalogService) AvailablePieces(productID, variantID string) ([]models.Piece, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	var selected []models.PieceRef
	if v, ok := catalog.FindVariant(product.Variants, variantID); ok {
		selected = v.PieceIDs
	}
	return catalog.AvailablePieces(product.Pieces, selected), nil
}

func (s *CatalogService) AddVariant(ctx context.Context, productID, name string, refs []models.PieceRef) (models.Variant, error) {
	name, err := checkVariantInput(name, refs)
	if err != nil {
		return models.Variant{}, err
	}

	id := s.mintID()
	product, err := s.mutateProduct(ctx, productID, "add_variant", logrus.Fields{"variant_id": id},
		func(p models.Product) (models.Product, error) {
			if err := checkRefsResolve(p.Pieces, refs, nil); err != nil {
				return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return catalog.UpdateField(p, catalog.FieldVariants, catalog.AddVariant(p.Variants, id, name, refs))
		})
	if err != nil {
		return models.Variant{}, err
	}

	variant, _ := catalog.FindVariant(product.Variants, id)
	return variant, nil
}

func (s *CatalogService) UpdateVariant(ctx context.Context, productID, variantID, name string, refs []models.PieceRef) (models.Product, error) {
	name, err := checkVariantInput(name, refs)
	if err != nil {
		return models.Product{}, err
	}

	return s.mutateProduct(ctx, productID, "update_variant", logrus.Fields{"variant_id": variantID},
		func(p models.Product) (models.Product, error) {
			var held []models.PieceRef
			if existing, ok := catalog.FindVariant(p.Variants, variantID); ok {
				held = existing.PieceIDs
			}
			if err := checkRefsResolve(p.Pieces, refs, held); err != nil {
				return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return catalog.UpdateField(p, catalog.FieldVariants, catalog.UpdateVariant(p.Variants, variantID, name, refs))
		})
}

func (s *CatalogService) DeleteVariant(ctx context.Context, productID, variantID string) (models.Product, error) {
	return s.mutateProduct(ctx, productID, "delete_variant", logrus.Fields{"variant_id": variantID},
		func(p models.Product) (models.Product, error) {
			return catalog.UpdateField(p, catalog.FieldVariants, catalog.DeleteVariant(p.Variants, variantID))
		})
}

func (s *CatalogService) ReorderPieceInVariant(ctx context.Context, productID, variantID, fromPieceID, toPieceID string) (models.Product, error) {
	fields := logrus.Fields{"variant_id": variantID, "from": fromPieceID, "to": toPieceID}
	return s.mutateProduct(ctx, productID, "reorder_piece", fields,
		func(p models.Product) (models.Product, error) {
			variants := catalog.ReorderPieceInVariant(p.Variants, variantID, fromPieceID, toPieceID)
			return catalog.UpdateField(p, catalog.FieldVariants, variants)
		})
}

// GenerateSku returns the SKU of one variant, "" when the variant is unknown
// or has nothing to show.
func (s *CatalogService) GenerateSku(productID, variantID string) (string, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return "", err
	}

	variant, ok := catalog.FindVariant(product.Variants, variantID)
	if !ok {
		return "", nil
	}
	return catalog.GenerateSku(product, variant), nil
}

func (s *CatalogService) SkuRows(productID string) ([]catalog.SkuRow, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	return catalog.SkuRows(product), nil
}

// ExportFormat selects what ExportSkuTable renders.
type ExportFormat string

const (
	ExportTable ExportFormat = "table"
	ExportNames ExportFormat = "names"
	ExportSkus  ExportFormat = "skus"
)

func (s *CatalogService) ExportSkuTable(productID string, format ExportFormat) (string, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return "", err
	}

	switch format {
	case ExportTable, "":
		return catalog.ExportTable(product), nil
	case ExportNames:
		return catalog.ExportNames(product), nil
	case ExportSkus:
		return catalog.ExportSkus(product), nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", ErrInvalidInput, format)
}

// mutateProduct applies fn to one product and commits the resulting catalog.
func (s *CatalogService) mutateProduct(ctx context.Context, productID, op string, fields logrus.Fields, fn func(models.Product) (models.Product, error)) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := catalog.FindProduct(s.catalog, productID)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	updated, err := fn(product)
	if err != nil {
		return product, err
	}

	fields["product_id"] = productID
	if err := s.commit(ctx, catalog.ReplaceProduct(s.catalog, updated), op, fields); err != nil {
		return product, err
	}

	committed, _ := catalog.FindProduct(s.catalog, productID)
	return committed, nil
}

// commit persists next and makes its normalized form the current catalog, so
// memory always matches the stored document. Callers hold s.mu.
func (s *CatalogService) commit(ctx context.Context, next models.Catalog, op string, fields logrus.Fields) error {
	next = catalog.Normalize(next)
	data, err := catalog.Encode(next)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, s.key, data); err != nil {
		logrus.WithError(err).WithFields(fields).WithField("operation", op).Error("Failed to persist catalog")
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	s.catalog = next
	logrus.WithFields(fields).WithField("operation", op).Debug("Catalog updated")
	return nil
}

func (s *CatalogService) mintID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newID()
}

func checkVariantInput(name string, refs []models.PieceRef) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: variant name is required", ErrInvalidInput)
	}
	if len(refs) == 0 {
		return "", fmt.Errorf("%w: a variant needs at least one piece", ErrInvalidInput)
	}
	for _, r := range refs {
		if r.ID == "" || r.Quantity < 1 {
			return "", fmt.Errorf("%w: piece references need an id and a positive quantity", ErrInvalidInput)
		}
	}
	if id, dup := catalog.DuplicateRef(refs); dup {
		return "", fmt.Errorf("%w: piece %s is selected more than once", ErrInvalidInput, id)
	}
	return name, nil
}

func askConfirm(confirm ConfirmFunc, key string) bool {
	if confirm == nil {
		return false
	}
	return confirm(i18n.T("", key))
}

// checkRefsResolve rejects references to pieces the product does not own.
// Inactive pieces are accepted only when held already lists them.
func checkRefsResolve(pieces []models.Piece, refs, held []models.PieceRef) error {
	for _, r := range refs {
		piece, ok := catalog.FindPiece(pieces, r.ID)
		if !ok {
			return fmt.Errorf("piece %s does not belong to this product", r.ID)
		}
		if !piece.IsActive && !holdsPiece(held, r.ID) {
			return fmt.Errorf("piece %s is inactive", r.ID)
		}
	}
	return nil
}

func holdsPiece(refs []models.PieceRef, pieceID string) bool {
	for _, r := range refs {
		if r.ID == pieceID {
			return true
		}
	}
	return false
}

// replacePieces swaps in a client supplied pieces list. Piece ids must be
// unique and non-empty; references to dropped pieces are stripped.
func replacePieces(p models.Product, value any) (models.Product, error) {
	pieces, ok := value.([]models.Piece)
	if !ok {
		return catalog.UpdateField(p, catalog.FieldPieces, value)
	}
	if id, dup := duplicateID(pieces, func(piece models.Piece) string { return piece.ID }); dup {
		return p, fmt.Errorf("piece id %q is empty or repeated", id)
	}

	updated, err := catalog.UpdateField(p, catalog.FieldPieces, pieces)
	if err != nil {
		return p, err
	}
	for _, old := range p.Pieces {
		if _, kept := catalog.FindPiece(pieces, old.ID); !kept {
			updated = catalog.DeletePiece(updated, old.ID)
		}
	}
	return updated, nil
}

// replaceVariants swaps in a client supplied variants list. Variant ids must
// be unique and every reference must resolve to a piece of the product.
func replaceVariants(p models.Product, value any) (models.Product, error) {
	variants, ok := value.([]models.Variant)
	if !ok {
		return catalog.UpdateField(p, catalog.FieldVariants, value)
	}
	if id, dup := duplicateID(variants, func(v models.Variant) string { return v.ID }); dup {
		return p, fmt.Errorf("variant id %q is empty or repeated", id)
	}

	for _, v := range variants {
		if id, dup := catalog.DuplicateRef(v.PieceIDs); dup {
			return p, fmt.Errorf("piece %s is selected more than once in variant %s", id, v.ID)
		}
		var held []models.PieceRef
		if existing, ok := catalog.FindVariant(p.Variants, v.ID); ok {
			held = existing.PieceIDs
		}
		if err := checkRefsResolve(p.Pieces, v.PieceIDs, held); err != nil {
			return p, fmt.Errorf("variant %s: %w", v.ID, err)
		}
	}
	return catalog.UpdateField(p, catalog.FieldVariants, variants)
}

// duplicateID reports the first id that is empty or appears twice.
func duplicateID[T any](items []T, id func(T) string) (string, bool) {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := id(item)
		if _, ok := seen[key]; ok || key == "" {
			return key, true
		}
		seen[key] = struct{}{}
	}
	return "", false
}
