package referenceRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtiesDeduplicateCaseInsensitively(t *testing.T) {
	repo := NewMemoryReferenceRepo()

	repo.AddSpecialty("Cardiology")
	repo.AddSpecialty("cardiology")
	repo.AddSpecialty("Dermatology")
	repo.AddSpecialty("")

	names, err := repo.ListSpecialties()
	require.NoError(t, err)

	// First spelling wins; insertion order is preserved.
	assert.Equal(t, []string{"Cardiology", "Dermatology"}, names)
}

func TestInsurancePlansDeduplicateCaseInsensitively(t *testing.T) {
	repo := NewMemoryReferenceRepo()

	repo.AddInsurancePlan("Aetna")
	repo.AddInsurancePlan("AETNA")
	repo.AddInsurancePlan("Cigna")

	names, err := repo.ListInsurancePlans()
	require.NoError(t, err)

	assert.Equal(t, []string{"Aetna", "Cigna"}, names)
}

func TestEmptyRepoListsAreEmpty(t *testing.T) {
	repo := NewMemoryReferenceRepo()

	specialties, err := repo.ListSpecialties()
	require.NoError(t, err)
	assert.Empty(t, specialties)

	plans, err := repo.ListInsurancePlans()
	require.NoError(t, err)
	assert.Empty(t, plans)
}
