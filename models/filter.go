package models

// Sort keys accepted by provider listings and search.
const (
	SortRelevance    = "relevance"
	SortDistance     = "distance"
	SortAvailability = "availability"
	SortRating       = "rating"
)

// Availability windows recognized by the search pipeline. Matching is a
// substring check against the provider's free-text next-available slot,
// not date parsing.
const (
	AvailabilityToday    = "today"
	AvailabilityThisWeek = "this-week"
	AvailabilityWeekends = "weekends"
)

// ProviderFilter describes one search request. It is request-scoped and
// never persisted. Every populated predicate intersects (AND) with the
// prior result set.
type ProviderFilter struct {
	SearchQuery          string `json:"searchQuery"`
	Specialty            string `json:"specialty"`
	Insurance            string `json:"insurance"`
	ZipCode              string `json:"zipCode"`
	Radius               int    `json:"radius" binding:"omitempty,min=1"`
	Availability         string `json:"availability" binding:"omitempty,oneof=today this-week weekends"`
	AcceptingNewPatients bool   `json:"acceptingNewPatients"`
	VirtualVisits        bool   `json:"virtualVisits"`
	SpanishSpeaking      bool   `json:"spanishSpeaking"`
	Page                 int    `json:"page" binding:"omitempty,min=1"`
	Limit                int    `json:"limit" binding:"omitempty,min=1,max=50"`
	SortBy               string `json:"sortBy" binding:"omitempty,oneof=relevance distance availability rating"`
}

// ProviderPage is the paged result shape shared by the list and search
// endpoints. Total counts the filtered set before pagination.
type ProviderPage struct {
	Providers []Provider `json:"providers"`
	Total     int        `json:"total"`
	Location  string     `json:"location,omitempty"`
}

// FieldError reports a single invalid field of a filter payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
