package models

// Specialty is a name-keyed reference entity, deduplicated by name. It is
// both filter vocabulary and a free-standing lookup list.
type Specialty struct {
	Name string `json:"name"`
}

// InsurancePlan is a name-keyed reference entity, deduplicated by name.
// Provider records reference plans by plain name, not by foreign key.
type InsurancePlan struct {
	Name string `json:"name"`
}
