package engine_test

import (
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

// testProviders returns a small directory fixture. Snapshot order is id
// order; several records exist specifically to pin down edge cases (the
// near-miss cardiologist, the tie at rating 5.0, the provider with no
// address).
func testProviders() []*entities.Provider {
	return []*entities.Provider{
		{
			ID: 1, FirstName: "Maria", LastName: "Gonzalez", FullName: "Dr. Maria Gonzalez",
			Specialty: "Cardiology",
			Address:   &entities.Address{Street: "101 Alamo Plaza", City: "San Antonio", State: "TX", Zip: "78205"},
			YearsExperience: 18, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Aetna", "Medicare", "Cigna"},
			Languages:         []string{"English", "Spanish"},
			Rating:            4.7, LicenseNumber: "TX-10482", BoardCertified: false,
		},
		{
			ID: 2, FirstName: "Emily", LastName: "Chen", FullName: "Dr. Emily Chen",
			Specialty: "Pediatrics",
			Address:   &entities.Address{Street: "800 Market St", City: "San Francisco", State: "CA", Zip: "94102"},
			YearsExperience: 12, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Blue Cross Blue Shield", "Cigna", "Medicaid", "Kaiser Permanente"},
			Languages:         []string{"English", "Mandarin"},
			Rating:            4.6, LicenseNumber: "CA-22817", BoardCertified: true,
		},
		{
			ID: 3, FirstName: "James", LastName: "Wright", FullName: "Dr. James Wright",
			Specialty: "Internal Medicine",
			Address:   &entities.Address{Street: "20 W 34th St", City: "New York", State: "NY", Zip: "10001"},
			YearsExperience: 15, AcceptingNewPatients: false,
			InsuranceAccepted: []string{"Aetna", "Medicare"},
			Languages:         []string{"English"},
			Rating:            4.8, LicenseNumber: "NY-55120", BoardCertified: true,
		},
		{
			ID: 4, FirstName: "Sarah", LastName: "Patel", FullName: "Dr. Sarah Patel",
			Specialty: "Internal Medicine",
			Address:   &entities.Address{Street: "1200 Main St", City: "Houston", State: "TX", Zip: "77002"},
			YearsExperience: 22, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"United Healthcare", "Medicare"},
			Languages:         []string{"English", "Hindi", "Gujarati"},
			Rating:            4.2, LicenseNumber: "TX-33901", BoardCertified: true,
		},
		{
			ID: 5, FirstName: "Robert", LastName: "Kim", FullName: "Dr. Robert Kim",
			Specialty: "Internal Medicine",
			Address:   &entities.Address{Street: "450 Wilshire Blvd", City: "Los Angeles", State: "CA", Zip: "90010"},
			YearsExperience: 11, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Blue Cross Blue Shield"},
			Languages:         []string{"English", "Korean"},
			Rating:            3.9, LicenseNumber: "CA-77045", BoardCertified: true,
		},
		{
			ID: 6, FirstName: "Linda", LastName: "Okafor", FullName: "Dr. Linda Okafor",
			Specialty: "Internal Medicine",
			Address:   &entities.Address{Street: "233 S Wacker Dr", City: "Chicago", State: "IL", Zip: "60606"},
			YearsExperience: 19, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Cigna", "Medicaid", "Medicare"},
			Languages:         []string{"English"},
			Rating:            4.5, LicenseNumber: "IL-88213", BoardCertified: true,
		},
		{
			ID: 7, FirstName: "Tom", LastName: "Becker", FullName: "Dr. Tom Becker",
			Specialty: "Internal Medicine",
			Address:   &entities.Address{Street: "1600 Broadway", City: "Denver", State: "CO", Zip: "80202"},
			YearsExperience: 8, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Kaiser Permanente", "Medicare", "Medicaid"},
			Languages:         []string{"English", "German"},
			Rating:            4.1, LicenseNumber: "CO-40917", BoardCertified: false,
		},
		{
			ID: 8, FirstName: "Ana", LastName: "Lopez", FullName: "Dr. Ana Lopez",
			Specialty: "Pediatrics",
			Address:   &entities.Address{Street: "600 Sunset Blvd", City: "Los Angeles", State: "CA", Zip: "90028"},
			YearsExperience: 9, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Aetna", "Blue Cross Blue Shield"},
			Languages:         []string{"English", "Spanish"},
			Rating:            4.9, LicenseNumber: "CA-61230", BoardCertified: true,
		},
		{
			ID: 9, FirstName: "David", LastName: "Nguyen", FullName: "Dr. David Nguyen",
			Specialty: "Dermatology",
			Address:   &entities.Address{Street: "1918 Pike Pl", City: "Seattle", State: "WA", Zip: "98101"},
			YearsExperience: 14, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Aetna", "Cigna", "Medicare", "Medicaid"},
			Languages:         []string{"English", "Vietnamese"},
			Rating:            5.0, LicenseNumber: "WA-90314", BoardCertified: true,
		},
		{
			ID: 10, FirstName: "Fatima", LastName: "Hassan", FullName: "Dr. Fatima Hassan",
			Specialty: "Neurology",
			Address:   &entities.Address{Street: "2300 Elm St", City: "Dallas", State: "TX", Zip: "75201"},
			YearsExperience: 26, AcceptingNewPatients: false,
			InsuranceAccepted: []string{"Blue Cross Blue Shield", "Medicare", "Kaiser Permanente"},
			Languages:         []string{"English", "Arabic", "French"},
			Rating:            5.0, LicenseNumber: "TX-72050", BoardCertified: true,
		},
		{
			ID: 11, FirstName: "Carlos", LastName: "Rivera", FullName: "Dr. Carlos Rivera",
			Specialty: "Family Medicine",
			Address:   &entities.Address{Street: "98 Congress Ave", City: "Austin", State: "TX", Zip: "78701"},
			YearsExperience: 30, AcceptingNewPatients: false,
			InsuranceAccepted: []string{"Aetna", "Kaiser Permanente", "Medicare"},
			Languages:         []string{"English", "Spanish"},
			Rating:            4.8, LicenseNumber: "TX-15538", BoardCertified: true,
		},
		{
			// No recorded address; predicates on address fields must fail for
			// this record without failing the query.
			ID: 12, FirstName: "Grace", LastName: "Liu", FullName: "Dr. Grace Liu",
			Specialty:       "Radiology",
			YearsExperience: 7, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Cigna"},
			Languages:         []string{"English", "Mandarin"},
			Rating:            4.9, BoardCertified: true,
		},
	}
}

func providerIDs(providers []*entities.Provider) []int {
	ids := make([]int, len(providers))
	for i, p := range providers {
		ids[i] = p.ID
	}
	return ids
}
