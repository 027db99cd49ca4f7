package seed

import (
	"fmt"

	providerRepo "careindex/database/repository/provider"
	referenceRepo "careindex/database/repository/reference"
	"careindex/models"
)

// defaultSpecialties is the base filter vocabulary; specialties appearing
// on seeded providers are absorbed on top of it.
var defaultSpecialties = []string{
	"Cardiology",
	"Dermatology",
	"Family Medicine",
	"Internal Medicine",
	"Neurology",
	"Obstetrics & Gynecology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
}

var defaultInsurancePlans = []string{
	"Aetna",
	"Blue Cross Blue Shield",
	"Cigna",
	"Humana",
	"Kaiser Permanente",
	"Medicaid",
	"Medicare",
	"UnitedHealthcare",
}

// Load populates the provider store and the reference vocabularies with the
// fixed startup dataset. State is process-wide and lost on restart.
func Load(providers providerRepo.ProviderRepository, reference referenceRepo.ReferenceRepository) error {
	for i := range seedProviders {
		p := seedProviders[i]
		if err := providers.Create(&p); err != nil {
			return fmt.Errorf("seed: failed to create provider %q: %w", p.Name, err)
		}
		reference.AddSpecialty(p.Specialty)
		for _, plan := range p.AcceptedInsurance {
			reference.AddInsurancePlan(plan)
		}
	}
	for _, s := range defaultSpecialties {
		reference.AddSpecialty(s)
	}
	for _, plan := range defaultInsurancePlans {
		reference.AddInsurancePlan(plan)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }

var weekdayHours = map[string]string{
	"Monday":    "8:00 AM - 5:00 PM",
	"Tuesday":   "8:00 AM - 5:00 PM",
	"Wednesday": "8:00 AM - 5:00 PM",
	"Thursday":  "8:00 AM - 5:00 PM",
	"Friday":    "8:00 AM - 4:00 PM",
	"Saturday":  "Closed",
	"Sunday":    "Closed",
}

var seedProviders = []models.Provider{
	{
		Name:          "Dr. Sarah Johnson",
		Title:         "MD, FACC",
		Specialty:     "Cardiology",
		Facility:      "Bayview Heart Center",
		Rating:        4.9,
		ReviewCount:   284,
		Distance:      1.2,
		NextAvailable: "Today, 3:30 PM",
		AcceptedInsurance: []string{
			"Aetna", "Blue Cross Blue Shield", "Medicare", "UnitedHealthcare",
		},
		InNetwork:            true,
		VirtualVisits:        true,
		AcceptingNewPatients: true,
		SpanishSpeaking:      false,
		Languages:            []string{"English"},
		Bio: "Dr. Johnson is a board-certified cardiologist specializing in preventive " +
			"cardiology and the management of heart failure and arrhythmias. She has " +
			"practiced for over fifteen years and leads the cardiac rehabilitation " +
			"program at Bayview Heart Center.",
		Education: []models.Education{
			{Degree: "MD", Institution: "Johns Hopkins University School of Medicine", Year: 2004},
			{Degree: "Residency, Internal Medicine", Institution: "Massachusetts General Hospital", Year: 2007},
			{Degree: "Fellowship, Cardiovascular Disease", Institution: "Stanford University Medical Center", Year: 2010},
		},
		Certifications: []models.Certification{
			{Name: "Cardiovascular Disease", Organization: "American Board of Internal Medicine"},
			{Name: "Echocardiography", Organization: "National Board of Echocardiography"},
		},
		Address: models.OfficeAddress{
			Street: "2450 Harbor Blvd, Suite 300", City: "San Francisco", State: "CA", Zip: "94107",
			Lat: ptr(37.7668), Lng: ptr(-122.3934),
		},
		Phone:       "(415) 555-0142",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Miguel Alvarez",
		Title:         "MD",
		Specialty:     "Family Medicine",
		Facility:      "Mission District Family Health",
		Rating:        4.7,
		ReviewCount:   198,
		Distance:      0.8,
		NextAvailable: "Today, 1:15 PM",
		AcceptedInsurance: []string{
			"Blue Cross Blue Shield", "Medicaid", "Medicare", "Kaiser Permanente",
		},
		InNetwork:            true,
		VirtualVisits:        true,
		AcceptingNewPatients: true,
		SpanishSpeaking:      true,
		Languages:            []string{"English", "Spanish"},
		Bio: "Dr. Alvarez provides comprehensive primary care for patients of all ages, " +
			"with a focus on chronic disease management and community health. He has " +
			"served the Mission District for over a decade.",
		Education: []models.Education{
			{Degree: "MD", Institution: "UCSF School of Medicine", Year: 2009},
			{Degree: "Residency, Family Medicine", Institution: "UCSF Medical Center", Year: 2012},
		},
		Certifications: []models.Certification{
			{Name: "Family Medicine", Organization: "American Board of Family Medicine"},
		},
		Address: models.OfficeAddress{
			Street: "3120 24th St", City: "San Francisco", State: "CA", Zip: "94110",
			Lat: ptr(37.7526), Lng: ptr(-122.4146),
		},
		Phone:       "(415) 555-0178",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Emily Chen",
		Title:         "MD, FAAD",
		Specialty:     "Dermatology",
		Facility:      "Pacific Skin Institute",
		Rating:        4.8,
		ReviewCount:   356,
		Distance:      2.4,
		NextAvailable: "Tomorrow, 9:00 AM",
		AcceptedInsurance: []string{
			"Aetna", "Cigna", "UnitedHealthcare",
		},
		InNetwork:            true,
		VirtualVisits:        true,
		AcceptingNewPatients: false,
		SpanishSpeaking:      false,
		Languages:            []string{"English", "Mandarin"},
		Bio: "Dr. Chen is a fellowship-trained dermatologist specializing in medical " +
			"and surgical dermatology, including skin cancer screening and Mohs surgery.",
		Education: []models.Education{
			{Degree: "MD", Institution: "Columbia University Vagelos College of Physicians and Surgeons", Year: 2008},
			{Degree: "Residency, Dermatology", Institution: "NYU Langone Health", Year: 2012},
		},
		Certifications: []models.Certification{
			{Name: "Dermatology", Organization: "American Board of Dermatology"},
		},
		Address: models.OfficeAddress{
			Street: "1800 Divisadero St, Suite 210", City: "San Francisco", State: "CA", Zip: "94115",
			Lat: ptr(37.7867), Lng: ptr(-122.4399),
		},
		Phone:       "(415) 555-0119",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Priya Raman",
		Title:         "MD, FAAP",
		Specialty:     "Pediatrics",
		Facility:      "Sunset Children's Clinic",
		Rating:        4.9,
		ReviewCount:   412,
		Distance:      3.1,
		NextAvailable: "Today, 4:45 PM",
		AcceptedInsurance: []string{
			"Blue Cross Blue Shield", "Cigna", "Medicaid", "Kaiser Permanente",
		},
		InNetwork:            true,
		VirtualVisits:        true,
		AcceptingNewPatients: true,
		SpanishSpeaking:      false,
		Languages:            []string{"English", "Hindi", "Tamil"},
		Bio: "Dr. Raman cares for newborns through adolescents, with special interests " +
			"in developmental pediatrics and asthma management.",
		Education: []models.Education{
			{Degree: "MD", Institution: "Baylor College of Medicine", Year: 2011},
			{Degree: "Residency, Pediatrics", Institution: "Texas Children's Hospital", Year: 2014},
		},
		Certifications: []models.Certification{
			{Name: "Pediatrics", Organization: "American Board of Pediatrics"},
		},
		Address: models.OfficeAddress{
			Street: "1240 Irving St", City: "San Francisco", State: "CA", Zip: "94122",
			Lat: ptr(37.7636), Lng: ptr(-122.4708),
		},
		Phone:       "(415) 555-0163",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. James Whitfield",
		Title:         "MD",
		Specialty:     "Orthopedics",
		Facility:      "Golden Gate Orthopedic Group",
		Rating:        4.6,
		ReviewCount:   167,
		Distance:      4.7,
		NextAvailable: "Monday, 10:00 AM",
		AcceptedInsurance: []string{
			"Aetna", "Blue Cross Blue Shield", "Medicare",
		},
		InNetwork:            true,
		VirtualVisits:        false,
		AcceptingNewPatients: true,
		SpanishSpeaking:      false,
		Languages:            []string{"English"},
		Bio: "Dr. Whitfield is an orthopedic surgeon focused on sports medicine and " +
			"minimally invasive knee and shoulder procedures.",
		Education: []models.Education{
			{Degree: "MD", Institution: "University of Michigan Medical School", Year: 2006},
			{Degree: "Residency, Orthopedic Surgery", Institution: "Hospital for Special Surgery", Year: 2011},
		},
		Certifications: []models.Certification{
			{Name: "Orthopaedic Surgery", Organization: "American Board of Orthopaedic Surgery"},
			{Name: "Sports Medicine", Organization: "American Board of Orthopaedic Surgery"},
		},
		Address: models.OfficeAddress{
			Street: "450 Parnassus Ave, Suite 500", City: "San Francisco", State: "CA", Zip: "94143",
			Lat: ptr(37.7631), Lng: ptr(-122.4586),
		},
		Phone:       "(415) 555-0187",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Lucia Fernandez",
		Title:         "MD, MPH",
		Specialty:     "Internal Medicine",
		Facility:      "Embarcadero Medical Associates",
		Rating:        4.5,
		ReviewCount:   89,
		Distance:      1.9,
		NextAvailable: "Tomorrow, 11:30 AM",
		AcceptedInsurance: []string{
			"Cigna", "Humana", "Medicare", "UnitedHealthcare",
		},
		InNetwork:            false,
		VirtualVisits:        true,
		AcceptingNewPatients: true,
		SpanishSpeaking:      true,
		Languages:            []string{"English", "Spanish", "Portuguese"},
		Bio: "Dr. Fernandez practices adult primary care with an emphasis on " +
			"preventive medicine, diabetes care, and hypertension management.",
		Education: []models.Education{
			{Degree: "MD", Institution: "University of Miami Miller School of Medicine", Year: 2010},
			{Degree: "MPH", Institution: "Harvard T.H. Chan School of Public Health", Year: 2012},
			{Degree: "Residency, Internal Medicine", Institution: "Brigham and Women's Hospital", Year: 2015},
		},
		Certifications: []models.Certification{
			{Name: "Internal Medicine", Organization: "American Board of Internal Medicine"},
		},
		Address: models.OfficeAddress{
			Street: "101 Spear St, Suite 240", City: "San Francisco", State: "CA", Zip: "94105",
			Lat: ptr(37.7924), Lng: ptr(-122.3934),
		},
		Phone:       "(415) 555-0131",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Aaron Goldberg",
		Title:         "MD, PhD",
		Specialty:     "Neurology",
		Facility:      "Bay Area Neuroscience Center",
		Rating:        4.8,
		ReviewCount:   143,
		Distance:      5.6,
		NextAvailable: "Thursday, 2:00 PM",
		AcceptedInsurance: []string{
			"Aetna", "Blue Cross Blue Shield", "Medicare",
		},
		InNetwork:            true,
		VirtualVisits:        true,
		AcceptingNewPatients: false,
		SpanishSpeaking:      false,
		Languages:            []string{"English", "Hebrew"},
		Bio: "Dr. Goldberg specializes in movement disorders and neurodegenerative " +
			"disease, and directs a clinical research program on Parkinson's disease.",
		Education: []models.Education{
			{Degree: "MD/PhD", Institution: "Washington University School of Medicine", Year: 2007},
			{Degree: "Residency, Neurology", Institution: "UCSF Medical Center", Year: 2011},
		},
		Certifications: []models.Certification{
			{Name: "Neurology", Organization: "American Board of Psychiatry and Neurology"},
		},
		Address: models.OfficeAddress{
			Street: "2200 Post St", City: "San Francisco", State: "CA", Zip: "94115",
			Lat: ptr(37.7852), Lng: ptr(-122.4423),
		},
		Phone:       "(415) 555-0155",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Nicole Washington",
		Title:         "MD, FACOG",
		Specialty:     "Obstetrics & Gynecology",
		Facility:      "Presidio Women's Health",
		Rating:        4.9,
		ReviewCount:   301,
		Distance:      2.8,
		NextAvailable: "Saturday, 9:30 AM",
		AcceptedInsurance: []string{
			"Blue Cross Blue Shield", "Cigna", "Kaiser Permanente", "UnitedHealthcare",
		},
		InNetwork:            true,
		VirtualVisits:        false,
		AcceptingNewPatients: true,
		SpanishSpeaking:      false,
		Languages:            []string{"English", "French"},
		Bio: "Dr. Washington provides full-spectrum obstetric and gynecologic care, " +
			"including high-risk pregnancy management and minimally invasive surgery.",
		Education: []models.Education{
			{Degree: "MD", Institution: "Emory University School of Medicine", Year: 2009},
			{Degree: "Residency, Obstetrics and Gynecology", Institution: "Northwestern Memorial Hospital", Year: 2013},
		},
		Certifications: []models.Certification{
			{Name: "Obstetrics and Gynecology", Organization: "American Board of Obstetrics and Gynecology"},
		},
		Address: models.OfficeAddress{
			Street: "3838 California St, Suite 110", City: "San Francisco", State: "CA", Zip: "94118",
			Lat: ptr(37.7857), Lng: ptr(-122.4579),
		},
		Phone:       "(415) 555-0102",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Rosa Delgado",
		Title:         "MD",
		Specialty:     "Psychiatry",
		Facility:      "Castro Behavioral Health",
		Rating:        4.4,
		ReviewCount:   76,
		Distance:      3.5,
		NextAvailable: "Tomorrow, 3:00 PM",
		AcceptedInsurance: []string{
			"Aetna", "Medicaid",
		},
		InNetwork:            false,
		VirtualVisits:        true,
		AcceptingNewPatients: true,
		SpanishSpeaking:      true,
		Languages:            []string{"English", "Spanish"},
		Bio: "Dr. Delgado treats mood and anxiety disorders in adults, combining " +
			"medication management with supportive psychotherapy. Telehealth visits " +
			"are available for established patients.",
		Education: []models.Education{
			{Degree: "MD", Institution: "UCLA David Geffen School of Medicine", Year: 2012},
			{Degree: "Residency, Psychiatry", Institution: "UCSD Medical Center", Year: 2016},
		},
		Certifications: []models.Certification{
			{Name: "Psychiatry", Organization: "American Board of Psychiatry and Neurology"},
		},
		Address: models.OfficeAddress{
			Street: "584 Castro St, Suite 200", City: "San Francisco", State: "CA", Zip: "94114",
			Lat: ptr(37.7609), Lng: ptr(-122.4350),
		},
		Phone:       "(415) 555-0126",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Kevin O'Brien",
		Title:         "MD",
		Specialty:     "Ophthalmology",
		Facility:      "Marina Eye Care",
		Rating:        4.7,
		ReviewCount:   221,
		Distance:      6.2,
		NextAvailable: "Sunday, 10:15 AM",
		AcceptedInsurance: []string{
			"Blue Cross Blue Shield", "Humana", "Medicare",
		},
		InNetwork:            true,
		VirtualVisits:        false,
		AcceptingNewPatients: true,
		SpanishSpeaking:      false,
		Languages:            []string{"English"},
		Bio: "Dr. O'Brien is a comprehensive ophthalmologist performing cataract " +
			"surgery and managing glaucoma and diabetic eye disease. Weekend clinic " +
			"hours are offered twice a month.",
		Education: []models.Education{
			{Degree: "MD", Institution: "Georgetown University School of Medicine", Year: 2005},
			{Degree: "Residency, Ophthalmology", Institution: "Wills Eye Hospital", Year: 2009},
		},
		Certifications: []models.Certification{
			{Name: "Ophthalmology", Organization: "American Board of Ophthalmology"},
		},
		Address: models.OfficeAddress{
			Street: "2100 Chestnut St", City: "San Francisco", State: "CA", Zip: "94123",
			Lat: ptr(37.8008), Lng: ptr(-122.4380),
		},
		Phone:       "(415) 555-0171",
		OfficeHours: map[string]string{
			"Monday":    "9:00 AM - 5:00 PM",
			"Tuesday":   "9:00 AM - 5:00 PM",
			"Wednesday": "9:00 AM - 5:00 PM",
			"Thursday":  "9:00 AM - 5:00 PM",
			"Friday":    "9:00 AM - 3:00 PM",
			"Saturday":  "Closed",
			"Sunday":    "10:00 AM - 2:00 PM",
		},
	},
	{
		Name:          "Dr. Hannah Park",
		Title:         "DO",
		Specialty:     "Family Medicine",
		Facility:      "Richmond Community Clinic",
		Rating:        4.3,
		ReviewCount:   0,
		Distance:      0,
		NextAvailable: "Next month",
		AcceptedInsurance: []string{
			"Medicaid", "Medicare",
		},
		InNetwork:            true,
		VirtualVisits:        true,
		AcceptingNewPatients: true,
		SpanishSpeaking:      false,
		Languages:            []string{"English", "Korean"},
		Bio: "Dr. Park recently joined Richmond Community Clinic after completing " +
			"residency, practicing full-spectrum family medicine with an osteopathic " +
			"approach.",
		Education: []models.Education{
			{Degree: "DO", Institution: "Touro University College of Osteopathic Medicine", Year: 2020},
			{Degree: "Residency, Family Medicine", Institution: "Sutter Health CPMC", Year: 2023},
		},
		Certifications: []models.Certification{
			{Name: "Family Medicine", Organization: "American Osteopathic Board of Family Physicians"},
		},
		Address: models.OfficeAddress{
			Street: "5330 Geary Blvd", City: "San Francisco", State: "CA", Zip: "94121",
		},
		Phone:       "(415) 555-0193",
		OfficeHours: weekdayHours,
	},
	{
		Name:          "Dr. Marcus Reed",
		Title:         "MD, FACC",
		Specialty:     "Cardiology",
		Facility:      "Embarcadero Medical Associates",
		Rating:        4.2,
		ReviewCount:   54,
		Distance:      1.9,
		NextAvailable: "Friday, 8:45 AM",
		AcceptedInsurance: []string{
			"Cigna", "Medicare", "UnitedHealthcare",
		},
		InNetwork:            true,
		VirtualVisits:        true,
		AcceptingNewPatients: false,
		SpanishSpeaking:      false,
		Languages:            []string{"English"},
		Bio: "Dr. Reed is an interventional cardiologist performing coronary " +
			"angiography and stenting, with clinic days dedicated to post-procedure " +
			"follow-up.",
		Education: []models.Education{
			{Degree: "MD", Institution: "Duke University School of Medicine", Year: 2003},
			{Degree: "Fellowship, Interventional Cardiology", Institution: "Cleveland Clinic", Year: 2010},
		},
		Certifications: []models.Certification{
			{Name: "Interventional Cardiology", Organization: "American Board of Internal Medicine"},
		},
		Address: models.OfficeAddress{
			Street: "101 Spear St, Suite 250", City: "San Francisco", State: "CA", Zip: "94105",
			Lat: ptr(37.7924), Lng: ptr(-122.3934),
		},
		Phone:       "(415) 555-0148",
		OfficeHours: weekdayHours,
	},
}
