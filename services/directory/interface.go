package directory

import (
	"context"

	"careindex/models"
)

// DirectoryService is the application-facing surface of the provider
// directory: paged listings, profile lookup, creation, filtered search,
// and the reference vocabularies.
type DirectoryService interface {
	ListProviders(ctx context.Context, page, limit int, sortBy string) (*models.ProviderPage, error)
	GetProvider(ctx context.Context, id int) (*models.Provider, error)
	CreateProvider(ctx context.Context, provider models.Provider) (*models.Provider, error)
	SearchProviders(ctx context.Context, filter models.ProviderFilter) (*models.ProviderPage, error)
	ListSpecialties(ctx context.Context) ([]string, error)
	ListInsurancePlans(ctx context.Context) ([]string, error)
	// CollectStats returns provider counts per specialty for the metrics
	// refresher.
	CollectStats(ctx context.Context) (map[string]int, error)
}
