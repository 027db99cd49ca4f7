package providerRepo

import (
	"fmt"
	"testing"

	"careindex/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithProviders(t *testing.T, count int) *MemoryProviderRepo {
	t.Helper()
	repo := NewMemoryProviderRepo()
	for i := 0; i < count; i++ {
		p := models.Provider{
			Name:      fmt.Sprintf("Dr. Test %d", i+1),
			Specialty: "Family Medicine",
			Rating:    4.0,
		}
		require.NoError(t, repo.Create(&p))
	}
	return repo
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryProviderRepo()

	first := models.Provider{Name: "Dr. One"}
	second := models.Provider{Name: "Dr. Two"}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestGetByID(t *testing.T) {
	repo := newRepoWithProviders(t, 3)

	p, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Test 2", p.Name)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestListPaginates(t *testing.T) {
	repo := newRepoWithProviders(t, 25)

	// Same rating everywhere, so the stable relevance sort preserves
	// insertion order and page 2 holds items 11-20.
	providers, total, err := repo.List(2, 10, models.SortRelevance)
	require.NoError(t, err)

	assert.Equal(t, 25, total)
	require.Len(t, providers, 10)
	assert.Equal(t, 11, providers[0].ID)
	assert.Equal(t, 20, providers[9].ID)
}

func TestListNeverExceedsLimit(t *testing.T) {
	repo := newRepoWithProviders(t, 25)

	for page := 1; page <= 4; page++ {
		providers, total, err := repo.List(page, 10, models.SortRelevance)
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		assert.LessOrEqual(t, len(providers), 10)
	}
}

func TestListOutOfRangePageIsEmpty(t *testing.T) {
	repo := newRepoWithProviders(t, 5)

	providers, total, err := repo.List(3, 10, models.SortRelevance)
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	assert.NotNil(t, providers)
	assert.Empty(t, providers)
}

func TestCountBySpecialty(t *testing.T) {
	repo := NewMemoryProviderRepo()
	for _, spec := range []string{"Cardiology", "Cardiology", "Dermatology"} {
		p := models.Provider{Name: "Dr. X", Specialty: spec}
		require.NoError(t, repo.Create(&p))
	}

	counts, err := repo.CountBySpecialty()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Cardiology": 2, "Dermatology": 1}, counts)
}
