package providerRepo

import (
	"math"
	"sort"
	"strings"

	"careindex/models"
)

// sortProviders orders the slice in place. All sorts are stable so that
// ties preserve input order. An unknown key falls back to relevance.
func sortProviders(providers []models.Provider, sortBy string) {
	switch sortBy {
	case models.SortDistance:
		sort.SliceStable(providers, func(i, j int) bool {
			return providers[i].Distance < providers[j].Distance
		})
	case models.SortRating:
		sort.SliceStable(providers, func(i, j int) bool {
			return providers[i].Rating > providers[j].Rating
		})
	case models.SortAvailability:
		sort.SliceStable(providers, func(i, j int) bool {
			return availabilityRank(providers[i].NextAvailable) < availabilityRank(providers[j].NextAvailable)
		})
	default:
		sort.SliceStable(providers, func(i, j int) bool {
			return relevanceScore(providers[i]) > relevanceScore(providers[j])
		})
	}
}

// availabilityRank buckets next-available text: today first, then tomorrow,
// then everything else.
func availabilityRank(nextAvailable string) int {
	text := strings.ToLower(nextAvailable)
	switch {
	case strings.Contains(text, "today"):
		return 0
	case strings.Contains(text, "tomorrow"):
		return 1
	default:
		return 2
	}
}

// relevanceScore is a popularity-weighted rating: rating x ln(reviews+1).
// A provider with zero reviews scores zero regardless of rating.
func relevanceScore(p models.Provider) float64 {
	return p.Rating * math.Log(float64(p.ReviewCount)+1)
}
