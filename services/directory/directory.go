package directory

import (
	"context"
	"fmt"

	providerRepo "careindex/database/repository/provider"
	referenceRepo "careindex/database/repository/reference"
	"careindex/models"
	"careindex/utils"

	"go.uber.org/zap"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 50

	// Shown when no zip code was supplied; the directory does no geocoding.
	defaultLocationLabel = "Current Location"
)

// DefaultDirectoryService is the production implementation. Cache is
// optional; a nil cache disables search-result caching entirely.
type DefaultDirectoryService struct {
	Providers providerRepo.ProviderRepository
	Reference referenceRepo.ReferenceRepository
	Cache     SearchCache
}

func NewDefaultDirectoryService(
	providers providerRepo.ProviderRepository,
	reference referenceRepo.ReferenceRepository,
	cache SearchCache,
) (*DefaultDirectoryService, error) {
	if providers == nil || reference == nil {
		return nil, fmt.Errorf("directory service initialization error: one or more dependencies are nil")
	}
	return &DefaultDirectoryService{
		Providers: providers,
		Reference: reference,
		Cache:     cache,
	}, nil
}

func (s *DefaultDirectoryService) ListProviders(ctx context.Context, page, limit int, sortBy string) (*models.ProviderPage, error) {
	page, limit = normalizePaging(page, limit)
	sortBy = normalizeSort(sortBy)

	providers, total, err := s.Providers.List(page, limit, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return &models.ProviderPage{Providers: providers, Total: total}, nil
}

func (s *DefaultDirectoryService) GetProvider(ctx context.Context, id int) (*models.Provider, error) {
	provider, err := s.Providers.GetByID(id)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// CreateProvider stores the record and folds its specialty and insurance
// names into the reference vocabularies so the filter options stay complete.
func (s *DefaultDirectoryService) CreateProvider(ctx context.Context, provider models.Provider) (*models.Provider, error) {
	if err := s.Providers.Create(&provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	s.Reference.AddSpecialty(provider.Specialty)
	for _, plan := range provider.AcceptedInsurance {
		s.Reference.AddInsurancePlan(plan)
	}
	return &provider, nil
}

func (s *DefaultDirectoryService) SearchProviders(ctx context.Context, filter models.ProviderFilter) (*models.ProviderPage, error) {
	filter = normalizeFilter(filter)

	key := searchCacheKey(filter)
	if s.Cache != nil {
		if page, err := s.Cache.Get(ctx, key); err == nil && page != nil {
			return page, nil
		}
		// Cache errors degrade to a miss, never to a request failure.
	}

	providers, total, err := s.Providers.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search providers: %w", err)
	}

	page := &models.ProviderPage{
		Providers: providers,
		Total:     total,
		Location:  locationLabel(filter.ZipCode),
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, page); err != nil {
			utils.GetLogger().Warn("search cache write failed", zap.Error(err))
		}
	}
	return page, nil
}

func (s *DefaultDirectoryService) ListSpecialties(ctx context.Context) ([]string, error) {
	return s.Reference.ListSpecialties()
}

func (s *DefaultDirectoryService) ListInsurancePlans(ctx context.Context) ([]string, error) {
	return s.Reference.ListInsurancePlans()
}

func (s *DefaultDirectoryService) CollectStats(ctx context.Context) (map[string]int, error) {
	return s.Providers.CountBySpecialty()
}

// normalizeFilter applies paging and sort defaults so the storage pipeline
// never sees malformed values. Handlers validate stricter constraints before
// this point; normalization here only fills gaps and clamps the limit.
func normalizeFilter(f models.ProviderFilter) models.ProviderFilter {
	f.Page, f.Limit = normalizePaging(f.Page, f.Limit)
	f.SortBy = normalizeSort(f.SortBy)
	return f
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func normalizeSort(sortBy string) string {
	switch sortBy {
	case models.SortDistance, models.SortAvailability, models.SortRating, models.SortRelevance:
		return sortBy
	default:
		return models.SortRelevance
	}
}

// locationLabel is a templated string, not a geocoding result.
func locationLabel(zip string) string {
	if zip == "" {
		return defaultLocationLabel
	}
	return fmt.Sprintf("near %s", zip)
}
