package referenceRepo

import (
	"strings"
	"sync"

	"careindex/models"
)

// ReferenceRepository holds the specialty and insurance-plan vocabularies.
type ReferenceRepository interface {
	// AddSpecialty registers a specialty, deduplicated case-insensitively.
	AddSpecialty(name string)
	// AddInsurancePlan registers an insurance plan, deduplicated case-insensitively.
	AddInsurancePlan(name string)
	// ListSpecialties returns specialty names in insertion order.
	ListSpecialties() ([]string, error)
	// ListInsurancePlans returns plan names in insertion order.
	ListInsurancePlans() ([]string, error)
}

// MemoryReferenceRepo keeps both vocabularies in process memory.
type MemoryReferenceRepo struct {
	mu          sync.RWMutex
	specialties []models.Specialty
	plans       []models.InsurancePlan
	seenSpec    map[string]struct{}
	seenPlan    map[string]struct{}
}

func NewMemoryReferenceRepo() *MemoryReferenceRepo {
	return &MemoryReferenceRepo{
		seenSpec: make(map[string]struct{}),
		seenPlan: make(map[string]struct{}),
	}
}

func (r *MemoryReferenceRepo) AddSpecialty(name string) {
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := r.seenSpec[key]; ok {
		return
	}
	r.seenSpec[key] = struct{}{}
	r.specialties = append(r.specialties, models.Specialty{Name: name})
}

func (r *MemoryReferenceRepo) AddInsurancePlan(name string) {
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := r.seenPlan[key]; ok {
		return
	}
	r.seenPlan[key] = struct{}{}
	r.plans = append(r.plans, models.InsurancePlan{Name: name})
}

func (r *MemoryReferenceRepo) ListSpecialties() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.specialties))
	for i, s := range r.specialties {
		names[i] = s.Name
	}
	return names, nil
}

func (r *MemoryReferenceRepo) ListInsurancePlans() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.plans))
	for i, p := range r.plans {
		names[i] = p.Name
	}
	return names, nil
}
