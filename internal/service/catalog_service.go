package service

import (
	"context"

	"github.com/Pasiduchamod/CompareShop/internal/catalog"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/model"
	"github.com/Pasiduchamod/CompareShop/internal/pricing"
	"github.com/Pasiduchamod/CompareShop/internal/repository"
	"github.com/Pasiduchamod/CompareShop/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CatalogService defines the category/product CRUD surface. Mutations
// validate input, apply the in-memory state transition, and mirror the new
// state to the persistence backend without blocking. Mutations referencing
// a missing category or product succeed as silent no-ops — the UI is
// allowed to hold stale references, but never to submit bad numbers.
type CatalogService interface {
	ListCategories(ctx context.Context) []dto.CategoryResponse
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) dto.CategoryResponse
	RenameCategory(ctx context.Context, id uuid.UUID, req dto.RenameCategoryRequest)
	DeleteCategory(ctx context.Context, id uuid.UUID)
	TogglePin(ctx context.Context, id uuid.UUID)

	ListProducts(ctx context.Context, categoryID uuid.UUID) []dto.ProductResponse
	AddProduct(ctx context.Context, categoryID uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, categoryID, productID uuid.UUID, req dto.ProductRequest) error
	DeleteProduct(ctx context.Context, categoryID, productID uuid.UUID)

	BestValue(ctx context.Context, categoryID uuid.UUID) *uuid.UUID
	Preview(ctx context.Context, req dto.PricingPreviewRequest, currencySymbol string) (*dto.PricingPreviewResponse, error)
}

type catalogService struct {
	store *catalog.Store
	saver *worker.Saver
}

func NewCatalogService(store *catalog.Store, saver *worker.Saver) CatalogService {
	return &catalogService{store: store, saver: saver}
}

// mapCategory converts a model to a DTO response.
func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Pinned:       c.Pinned,
		ProductCount: len(c.Products),
		CreatedAt:    c.CreatedAt,
	}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		Brand:      p.Brand,
		Price:      p.Price,
		Discount:   p.Discount,
		FinalPrice: p.FinalPrice,
		Quantity:   p.Quantity,
		Unit:       string(p.Unit),
		UnitPrice:  p.UnitPrice,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}

// ── Categories ───────────────────────────────────────────────────────────────

func (s *catalogService) ListCategories(_ context.Context) []dto.CategoryResponse {
	cats := s.store.Categories()
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, mapCategory(c))
	}
	return out
}

func (s *catalogService) CreateCategory(_ context.Context, req dto.CreateCategoryRequest) dto.CategoryResponse {
	cat := s.store.AddCategory(req.Name)
	s.persist()
	return mapCategory(cat)
}

func (s *catalogService) RenameCategory(_ context.Context, id uuid.UUID, req dto.RenameCategoryRequest) {
	if s.store.RenameCategory(id, req.Name) {
		s.persist()
	}
}

func (s *catalogService) DeleteCategory(_ context.Context, id uuid.UUID) {
	if s.store.DeleteCategory(id) {
		s.persist()
	}
}

func (s *catalogService) TogglePin(_ context.Context, id uuid.UUID) {
	if s.store.TogglePin(id) {
		s.persist()
	}
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *catalogService) ListProducts(_ context.Context, categoryID uuid.UUID) []dto.ProductResponse {
	products := s.store.CategoryProducts(categoryID)
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	return out
}

// AddProduct validates via the pricing contract before any state mutation —
// partial writes are impossible. A missing category is a silent no-op and
// returns (nil, nil).
func (s *catalogService) AddProduct(_ context.Context, categoryID uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := buildProduct(req)
	if err != nil {
		return nil, err
	}

	stored, ok := s.store.AddProduct(categoryID, product)
	if !ok {
		return nil, nil
	}
	s.persist()

	resp := mapProduct(stored)
	return &resp, nil
}

// UpdateProduct replaces all mutable fields and recomputes both derived
// fields atomically. Validation errors surface before any mutation; a
// missing target is a silent no-op.
func (s *catalogService) UpdateProduct(_ context.Context, categoryID, productID uuid.UUID, req dto.ProductRequest) error {
	product, err := buildProduct(req)
	if err != nil {
		return err
	}

	if s.store.UpdateProduct(categoryID, productID, product) {
		s.persist()
	}
	return nil
}

func (s *catalogService) DeleteProduct(_ context.Context, categoryID, productID uuid.UUID) {
	if s.store.DeleteProduct(categoryID, productID) {
		s.persist()
	}
}

func (s *catalogService) BestValue(_ context.Context, categoryID uuid.UUID) *uuid.UUID {
	id, ok := s.store.BestValueProductID(categoryID)
	if !ok {
		return nil
	}
	return &id
}

// Preview computes the live unit-price preview through the exact same
// pricing call used when the product is stored, so the preview can never
// drift from the persisted value.
func (s *catalogService) Preview(_ context.Context, req dto.PricingPreviewRequest, currencySymbol string) (*dto.PricingPreviewResponse, error) {
	unit := pricing.Unit(req.Unit)
	result, err := pricing.Compute(req.Price, req.Discount, req.Quantity, unit)
	if err != nil {
		return nil, err
	}

	return &dto.PricingPreviewResponse{
		FinalPrice: result.FinalPrice,
		UnitPrice:  result.UnitPrice,
		Display:    pricing.FormatUnitPrice(result.UnitPrice, unit, currencySymbol),
	}, nil
}

// buildProduct turns validated raw input into a product with both derived
// fields freshly computed. Id and timestamp are assigned by the store.
func buildProduct(req dto.ProductRequest) (model.Product, error) {
	unit := pricing.Unit(req.Unit)
	result, err := pricing.Compute(req.Price, req.Discount, req.Quantity, unit)
	if err != nil {
		return model.Product{}, err
	}

	return model.Product{
		Brand:      req.Brand,
		Price:      req.Price,
		Discount:   req.Discount,
		FinalPrice: result.FinalPrice,
		Quantity:   req.Quantity,
		Unit:       unit,
		UnitPrice:  result.UnitPrice,
		Notes:      req.Notes,
	}, nil
}

// persist mirrors the current category collection to the key-value backend.
// Fire-and-forget: serialization errors are logged and swallowed, and the
// save itself happens on the saver goroutine.
func (s *catalogService) persist() {
	blob, err := s.store.Snapshot()
	if err != nil {
		log.Warn().Err(err).Msg("failed to serialize catalog snapshot")
		return
	}
	s.saver.Enqueue(repository.KeyCategories, blob)
}
