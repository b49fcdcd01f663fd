package catalog

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/Pasiduchamod/CompareShop/internal/model"

	"github.com/google/uuid"
)

// SelectionLimit caps how many products can be compared side by side.
const SelectionLimit = 5

// Store owns the in-memory category collection and the global comparison
// selection. It is the source of truth for every engine computation; the
// persisted copy is a best-effort mirror written after each mutation by the
// caller. Handlers run concurrently, so access is guarded by a RWMutex even
// though there is only one logical user.
//
// Mutators targeting a missing category or product are silent no-ops and
// report false. Reads over missing ids return empty results. Invalid numeric
// input is rejected upstream, before a Product is ever constructed — the
// asymmetry is deliberate: stale references are tolerated, bad input is not.
type Store struct {
	mu         sync.RWMutex
	categories []model.Category
	selection  []uuid.UUID
}

func NewStore() *Store {
	return &Store{}
}

// ── Categories ───────────────────────────────────────────────────────────────

// Categories returns a copy of all categories sorted for display:
// pinned first, then newest-created first.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.copyCategories()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AddCategory appends a fresh category. Names are not deduplicated: two
// categories may share a name.
func (s *Store) AddCategory(name string) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := model.Category{
		ID:        uuid.New(),
		Name:      name,
		Products:  []model.Product{},
		CreatedAt: time.Now().UTC(),
	}
	s.categories = append(s.categories, cat)
	return cat
}

// RenameCategory sets a new name. No-op if the id is absent.
func (s *Store) RenameCategory(id uuid.UUID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = name
			return true
		}
	}
	return false
}

// DeleteCategory removes the category with all its products and scrubs those
// product ids from the comparison selection so it never holds dangling
// references.
func (s *Store) DeleteCategory(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		removed := make(map[uuid.UUID]struct{}, len(s.categories[i].Products))
		for _, p := range s.categories[i].Products {
			removed[p.ID] = struct{}{}
		}
		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		s.scrubSelection(removed)
		return true
	}
	return false
}

// TogglePin flips the pinned flag. No-op if the id is absent.
func (s *Store) TogglePin(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Pinned = !s.categories[i].Pinned
			return true
		}
	}
	return false
}

// ── Products ─────────────────────────────────────────────────────────────────

// AddProduct assigns a fresh id and timestamp and appends p to the category's
// product sequence (insertion order, append-only except for deletion). The
// derived fields of p must already be computed; the store never does pricing
// math itself. Returns the stored product, or false if the category is absent.
func (s *Store) AddProduct(categoryID uuid.UUID, p model.Product) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			p.ID = uuid.New()
			p.CreatedAt = time.Now().UTC()
			s.categories[i].Products = append(s.categories[i].Products, p)
			return p, true
		}
	}
	return model.Product{}, false
}

// UpdateProduct replaces all mutable fields of an existing product with those
// of p, preserving its id and creation timestamp. Both derived fields arrive
// freshly computed together with the raw fields, so a stored product can
// never carry stale derived values. No-op if category or product is absent.
func (s *Store) UpdateProduct(categoryID, productID uuid.UUID, p model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != categoryID {
			continue
		}
		for j := range s.categories[i].Products {
			if s.categories[i].Products[j].ID == productID {
				p.ID = productID
				p.CreatedAt = s.categories[i].Products[j].CreatedAt
				s.categories[i].Products[j] = p
				return true
			}
		}
		return false
	}
	return false
}

// DeleteProduct removes the product from its category and from the
// comparison selection. No-op if category or product is absent.
func (s *Store) DeleteProduct(categoryID, productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != categoryID {
			continue
		}
		products := s.categories[i].Products
		for j := range products {
			if products[j].ID == productID {
				s.categories[i].Products = append(products[:j], products[j+1:]...)
				s.scrubSelection(map[uuid.UUID]struct{}{productID: {}})
				return true
			}
		}
		return false
	}
	return false
}

// CategoryProducts returns a copy of a category's product sequence in
// insertion order, or an empty slice when the category does not exist —
// never an error for a read.
func (s *Store) CategoryProducts(categoryID uuid.UUID) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			out := make([]model.Product, len(s.categories[i].Products))
			copy(out, s.categories[i].Products)
			return out
		}
	}
	return []model.Product{}
}

// BestValueProductID scans a category for the product with the minimum unit
// price. Ties break toward the first-inserted product. The boolean is false
// for an empty or missing category.
func (s *Store) BestValueProductID(categoryID uuid.UUID) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].ID != categoryID {
			continue
		}
		products := s.categories[i].Products
		if len(products) == 0 {
			return uuid.Nil, false
		}
		best := products[0]
		for _, p := range products[1:] {
			if p.UnitPrice.LessThan(best.UnitPrice) {
				best = p
			}
		}
		return best.ID, true
	}
	return uuid.Nil, false
}

// ── Comparison selection ─────────────────────────────────────────────────────

// ToggleSelection adds or removes a product id from the comparison set.
// Toggling an absent id while the set is full is a silent no-op, not an
// error: the set never exceeds SelectionLimit members.
func (s *Store) ToggleSelection(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.selection {
		if id == productID {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return true
		}
	}
	if len(s.selection) >= SelectionLimit {
		return false
	}
	s.selection = append(s.selection, productID)
	return true
}

// ClearSelection empties the comparison set from any state.
func (s *Store) ClearSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.selection) == 0 {
		return false
	}
	s.selection = nil
	return true
}

// SelectedIDs returns the comparison set in selection order.
func (s *Store) SelectedIDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]uuid.UUID, len(s.selection))
	copy(out, s.selection)
	return out
}

// IsSelected reports membership of a single product id.
func (s *Store) IsSelected(productID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.selection {
		if id == productID {
			return true
		}
	}
	return false
}

// ── Persistence mirror ───────────────────────────────────────────────────────

// Snapshot serializes the category collection for the key-value mirror.
// The selection is ephemeral and deliberately not part of the snapshot.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return json.Marshal(s.categories)
}

// Restore replaces the in-memory state with a previously persisted snapshot.
// Called once at startup, before the HTTP surface is up.
func (s *Store) Restore(blob []byte) error {
	var categories []model.Category
	if err := json.Unmarshal(blob, &categories); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
	s.selection = nil
	return nil
}

// scrubSelection drops the given product ids from the selection.
// Callers must hold the write lock.
func (s *Store) scrubSelection(removed map[uuid.UUID]struct{}) {
	kept := s.selection[:0]
	for _, id := range s.selection {
		if _, gone := removed[id]; !gone {
			kept = append(kept, id)
		}
	}
	s.selection = kept
}

// copyCategories deep-copies the category slice so callers can never mutate
// store state through a returned value. Callers must hold at least the read
// lock.
func (s *Store) copyCategories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	for i := range out {
		products := make([]model.Product, len(out[i].Products))
		copy(products, out[i].Products)
		out[i].Products = products
	}
	return out
}
