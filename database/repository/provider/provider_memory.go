package providerRepo

import (
	"sync"

	"careindex/models"
)

// MemoryProviderRepo holds the provider collection in process memory.
// State is owned by the repo instance and lost on restart. Guarded by a
// RWMutex since the HTTP layer serves requests concurrently.
type MemoryProviderRepo struct {
	mu        sync.RWMutex
	providers []models.Provider
	nextID    int
}

// NewMemoryProviderRepo returns an empty store. IDs start at 1.
func NewMemoryProviderRepo() *MemoryProviderRepo {
	return &MemoryProviderRepo{nextID: 1}
}

func (r *MemoryProviderRepo) Create(provider *models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	provider.ID = r.nextID
	r.nextID++
	r.providers = append(r.providers, *provider)
	return nil
}

func (r *MemoryProviderRepo) GetByID(id int) (*models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.providers {
		if r.providers[i].ID == id {
			p := r.providers[i]
			return &p, nil
		}
	}
	return nil, ErrProviderNotFound
}

func (r *MemoryProviderRepo) List(page, limit int, sortBy string) ([]models.Provider, int, error) {
	all := r.snapshot()
	sortProviders(all, sortBy)
	return paginate(all, page, limit), len(all), nil
}

func (r *MemoryProviderRepo) CountBySpecialty() (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, len(r.providers))
	for i := range r.providers {
		counts[r.providers[i].Specialty]++
	}
	return counts, nil
}

// snapshot copies the collection so sorting never mutates stored order.
func (r *MemoryProviderRepo) snapshot() []models.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// paginate slices items to [(page-1)*limit, page*limit). Out-of-range pages
// yield an empty (non-nil) slice so responses serialize as [] rather than null.
func paginate(items []models.Provider, page, limit int) []models.Provider {
	start := (page - 1) * limit
	if start >= len(items) {
		return []models.Provider{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
