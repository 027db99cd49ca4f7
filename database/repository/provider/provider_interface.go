package providerRepo

import (
	"errors"

	"careindex/models"
)

// ErrProviderNotFound is returned when no provider matches the requested ID.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id int) (*models.Provider, error)
	// List returns one page of providers sorted by sortBy, plus the total
	// count of the unfiltered collection.
	List(page, limit int, sortBy string) ([]models.Provider, int, error)
	// Create inserts a new provider record, assigning the next sequential ID.
	Create(provider *models.Provider) error
	// Search applies the filter pipeline and returns one page of matches,
	// plus the filtered count before pagination.
	Search(filter models.ProviderFilter) ([]models.Provider, int, error)
	// CountBySpecialty returns the number of listed providers per specialty.
	CountBySpecialty() (map[string]int, error)
}
