package providerRepo

import (
	"testing"

	"careindex/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultFilter keeps paging wide enough that pagination never hides
// matches in predicate tests.
func defaultFilter() models.ProviderFilter {
	return models.ProviderFilter{Page: 1, Limit: 50, SortBy: models.SortRelevance}
}

func newSearchFixture(t *testing.T) *MemoryProviderRepo {
	t.Helper()
	repo := NewMemoryProviderRepo()
	fixtures := []models.Provider{
		{
			Name:              "Dr. Sarah Johnson",
			Specialty:         "Cardiology",
			Facility:          "Bayview Heart Center",
			Rating:            4.9,
			ReviewCount:       284,
			Distance:          1.2,
			NextAvailable:     "Today, 3:30 PM",
			AcceptedInsurance: []string{"Aetna", "Medicare"},
			Languages:         []string{"English"},
			Bio:               "Preventive cardiology and heart failure management.",
			Address: models.OfficeAddress{
				Street: "2450 Harbor Blvd", City: "San Francisco", State: "CA", Zip: "94107",
			},
			AcceptingNewPatients: true,
			VirtualVisits:        true,
		},
		{
			Name:              "Dr. Miguel Alvarez",
			Specialty:         "Family Medicine",
			Rating:            4.7,
			ReviewCount:       198,
			Distance:          0.8,
			NextAvailable:     "Tomorrow, 9:00 AM",
			AcceptedInsurance: []string{"Medicaid", "Blue Cross Blue Shield"},
			Languages:         []string{"English", "Spanish"},
			Address: models.OfficeAddress{
				Street: "3120 24th St", City: "San Francisco", State: "CA", Zip: "94110",
			},
			AcceptingNewPatients: true,
		},
		{
			Name:              "Dr. Emily Chen",
			Specialty:         "Dermatology",
			Rating:            4.8,
			ReviewCount:       356,
			Distance:          2.4,
			NextAvailable:     "Saturday, 11:00 AM",
			AcceptedInsurance: []string{"Cigna"},
			Languages:         []string{"English", "Mandarin"},
			Address: models.OfficeAddress{
				Street: "1800 Divisadero St", City: "San Francisco", State: "CA", Zip: "94115",
			},
			VirtualVisits: true,
		},
		{
			Name:              "Dr. Hannah Park",
			Specialty:         "Family Medicine",
			Rating:            4.3,
			ReviewCount:       0,
			Distance:          0,
			NextAvailable:     "Next month",
			AcceptedInsurance: []string{"Medicare"},
			Languages:         []string{"English", "Korean"},
			Address: models.OfficeAddress{
				Street: "5330 Geary Blvd", City: "San Francisco", State: "CA", Zip: "94121",
			},
			AcceptingNewPatients: true,
		},
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(&fixtures[i]))
	}
	return repo
}

func names(providers []models.Provider) []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = p.Name
	}
	return out
}

func TestSearchEmptyFilterReturnsAll(t *testing.T) {
	repo := newSearchFixture(t)

	providers, total, err := repo.Search(defaultFilter())
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	assert.Len(t, providers, 4)
}

func TestSearchFreeTextQuery(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.SearchQuery = "cardio"
	providers, _, err := repo.Search(f)
	require.NoError(t, err)
	assert.Contains(t, names(providers), "Dr. Sarah Johnson")

	// Matches bio text too, not just name and specialty.
	f.SearchQuery = "heart failure"
	providers, _, err = repo.Search(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Sarah Johnson"}, names(providers))

	// Insurance names are part of the searchable text.
	f.SearchQuery = "blue cross"
	providers, _, err = repo.Search(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Miguel Alvarez"}, names(providers))

	// And the formatted office address.
	f.SearchQuery = "geary"
	providers, _, err = repo.Search(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Hannah Park"}, names(providers))
}

func TestSearchSpecialtyIsCaseInsensitiveExactMatch(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.Specialty = "cardiology"
	providers, total, err := repo.Search(f)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Dr. Sarah Johnson", providers[0].Name)

	f.Specialty = "Dermatology"
	providers, _, err = repo.Search(f)
	require.NoError(t, err)
	assert.NotContains(t, names(providers), "Dr. Sarah Johnson")
}

func TestSearchInsurance(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.Insurance = "medicare"
	providers, _, err := repo.Search(f)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Dr. Sarah Johnson", "Dr. Hannah Park"}, names(providers))
}

func TestSearchAvailabilityWindows(t *testing.T) {
	repo := newSearchFixture(t)

	cases := []struct {
		window string
		want   []string
	}{
		{models.AvailabilityToday, []string{"Dr. Sarah Johnson"}},
		// this-week matches today, tomorrow, and any weekday name;
		// "Next month" matches no recognized token and is excluded.
		{models.AvailabilityThisWeek, []string{"Dr. Sarah Johnson", "Dr. Miguel Alvarez", "Dr. Emily Chen"}},
		{models.AvailabilityWeekends, []string{"Dr. Emily Chen"}},
	}
	for _, tc := range cases {
		f := defaultFilter()
		f.Availability = tc.window
		providers, _, err := repo.Search(f)
		require.NoError(t, err, tc.window)
		assert.ElementsMatch(t, tc.want, names(providers), tc.window)
	}
}

func TestSearchFlags(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.AcceptingNewPatients = true
	providers, _, err := repo.Search(f)
	require.NoError(t, err)
	assert.NotContains(t, names(providers), "Dr. Emily Chen")

	f = defaultFilter()
	f.VirtualVisits = true
	providers, _, err = repo.Search(f)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dr. Sarah Johnson", "Dr. Emily Chen"}, names(providers))

	f = defaultFilter()
	f.SpanishSpeaking = true
	providers, _, err = repo.Search(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Miguel Alvarez"}, names(providers))
}

func TestSearchPredicatesIntersect(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.Specialty = "Family Medicine"
	f.Insurance = "Medicare"
	providers, total, err := repo.Search(f)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	assert.Equal(t, "Dr. Hannah Park", providers[0].Name)
}

func TestSearchTotalIsPrePagination(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.Limit = 2
	providers, total, err := repo.Search(f)
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	assert.Len(t, providers, 2)
}

func TestSortByRatingDescending(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.SortBy = models.SortRating
	providers, _, err := repo.Search(f)
	require.NoError(t, err)

	for i := 0; i < len(providers)-1; i++ {
		assert.GreaterOrEqual(t, providers[i].Rating, providers[i+1].Rating)
	}
}

func TestSortByDistanceAscending(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.SortBy = models.SortDistance
	providers, _, err := repo.Search(f)
	require.NoError(t, err)

	for i := 0; i < len(providers)-1; i++ {
		assert.LessOrEqual(t, providers[i].Distance, providers[i+1].Distance)
	}
	// Missing distance counts as zero and sorts first.
	assert.Equal(t, "Dr. Hannah Park", providers[0].Name)
}

func TestSortByAvailabilityTodayThenTomorrow(t *testing.T) {
	repo := newSearchFixture(t)

	f := defaultFilter()
	f.SortBy = models.SortAvailability
	providers, _, err := repo.Search(f)
	require.NoError(t, err)

	require.Len(t, providers, 4)
	assert.Equal(t, "Dr. Sarah Johnson", providers[0].Name)
	assert.Equal(t, "Dr. Miguel Alvarez", providers[1].Name)
	// Remaining ties keep insertion order (stable sort).
	assert.Equal(t, "Dr. Emily Chen", providers[2].Name)
	assert.Equal(t, "Dr. Hannah Park", providers[3].Name)
}

func TestRelevanceScore(t *testing.T) {
	// Zero reviews score zero regardless of rating.
	assert.Zero(t, relevanceScore(models.Provider{Rating: 5.0, ReviewCount: 0}))

	// Monotonic non-decreasing in rating for fixed review count.
	low := relevanceScore(models.Provider{Rating: 3.0, ReviewCount: 100})
	high := relevanceScore(models.Provider{Rating: 4.5, ReviewCount: 100})
	assert.GreaterOrEqual(t, high, low)

	// Monotonic non-decreasing in review count for fixed rating.
	few := relevanceScore(models.Provider{Rating: 4.0, ReviewCount: 10})
	many := relevanceScore(models.Provider{Rating: 4.0, ReviewCount: 1000})
	assert.GreaterOrEqual(t, many, few)
}

func TestSortByRelevanceWeighsReviews(t *testing.T) {
	repo := NewMemoryProviderRepo()
	unproven := models.Provider{Name: "Dr. Unproven", Rating: 5.0, ReviewCount: 0}
	popular := models.Provider{Name: "Dr. Popular", Rating: 4.5, ReviewCount: 400}
	require.NoError(t, repo.Create(&unproven))
	require.NoError(t, repo.Create(&popular))

	providers, _, err := repo.Search(defaultFilter())
	require.NoError(t, err)

	assert.Equal(t, []string{"Dr. Popular", "Dr. Unproven"}, names(providers))
}
