package providerRepo

import (
	"strings"

	"careindex/models"
)

// Search applies the filter predicates in fixed order, each intersecting
// with the prior result set, then sorts and paginates. The total returned
// is the filtered count before pagination. The pipeline assumes the filter
// has already been normalized (page >= 1, limit > 0, known sort key).
func (r *MemoryProviderRepo) Search(filter models.ProviderFilter) ([]models.Provider, int, error) {
	all := r.snapshot()

	matched := make([]models.Provider, 0, len(all))
	for _, p := range all {
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}

	sortProviders(matched, filter.SortBy)
	return paginate(matched, filter.Page, filter.Limit), len(matched), nil
}

func matchesFilter(p models.Provider, f models.ProviderFilter) bool {
	if f.SearchQuery != "" && !matchesQuery(p, f.SearchQuery) {
		return false
	}
	if f.Specialty != "" && !strings.EqualFold(p.Specialty, f.Specialty) {
		return false
	}
	if f.Insurance != "" && !acceptsInsurance(p, f.Insurance) {
		return false
	}
	if f.Availability != "" && !matchesAvailability(p.NextAvailable, f.Availability) {
		return false
	}
	if f.AcceptingNewPatients && !p.AcceptingNewPatients {
		return false
	}
	if f.VirtualVisits && !p.VirtualVisits {
		return false
	}
	if f.SpanishSpeaking && !speaksSpanish(p) {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against the
// provider's name, specialty, formatted office address, bio, and every
// accepted insurance name.
func matchesQuery(p models.Provider, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Specialty), q) ||
		strings.Contains(strings.ToLower(p.Address.Formatted()), q) ||
		strings.Contains(strings.ToLower(p.Bio), q) {
		return true
	}
	for _, ins := range p.AcceptedInsurance {
		if strings.Contains(strings.ToLower(ins), q) {
			return true
		}
	}
	return false
}

func acceptsInsurance(p models.Provider, name string) bool {
	for _, ins := range p.AcceptedInsurance {
		if strings.EqualFold(ins, name) {
			return true
		}
	}
	return false
}

var weekdayTokens = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// matchesAvailability checks the free-text next-available slot against the
// requested window. A slot text matching no recognized token is excluded
// from all three windows.
func matchesAvailability(nextAvailable, window string) bool {
	text := strings.ToLower(nextAvailable)
	switch window {
	case models.AvailabilityToday:
		return strings.Contains(text, "today")
	case models.AvailabilityThisWeek:
		if strings.Contains(text, "today") || strings.Contains(text, "tomorrow") {
			return true
		}
		for _, day := range weekdayTokens {
			if strings.Contains(text, day) {
				return true
			}
		}
		return false
	case models.AvailabilityWeekends:
		return strings.Contains(text, "saturday") || strings.Contains(text, "sunday")
	}
	return false
}

func speaksSpanish(p models.Provider) bool {
	for _, lang := range p.Languages {
		if strings.EqualFold(lang, "spanish") {
			return true
		}
	}
	return false
}
