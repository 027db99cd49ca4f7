package models

import "fmt"

// Education is one entry in a provider's training history.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// Certification is a board certification held by a provider.
type Certification struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

// OfficeAddress is the provider's practice location. Coordinates are
// optional; the directory does no geocoding of its own.
type OfficeAddress struct {
	Street string   `json:"street"`
	City   string   `json:"city"`
	State  string   `json:"state"`
	Zip    string   `json:"zip"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
}

// Formatted returns the single-line form of the address used for
// free-text matching and display.
func (a OfficeAddress) Formatted() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
}

// Provider is one directory listing. Records are immutable after creation;
// the ID is assigned sequentially by the repository.
type Provider struct {
	ID                   int               `json:"id"`
	Name                 string            `json:"name"`
	Title                string            `json:"title"`
	Specialty            string            `json:"specialty"`
	Facility             string            `json:"facility"`
	Rating               float64           `json:"rating"`
	ReviewCount          int               `json:"reviewCount"`
	Distance             float64           `json:"distance"`
	NextAvailable        string            `json:"nextAvailable"`
	AcceptedInsurance    []string          `json:"acceptedInsurance"`
	InNetwork            bool              `json:"inNetwork"`
	VirtualVisits        bool              `json:"virtualVisits"`
	AcceptingNewPatients bool              `json:"acceptingNewPatients"`
	SpanishSpeaking      bool              `json:"spanishSpeaking"`
	Languages            []string          `json:"languages"`
	Bio                  string            `json:"bio"`
	Education            []Education       `json:"education"`
	Certifications       []Certification   `json:"certifications"`
	Address              OfficeAddress     `json:"address"`
	Phone                string            `json:"phone"`
	OfficeHours          map[string]string `json:"officeHours"`
}
