package entities

// Provider represents a healthcare provider in the directory
type Provider struct {
	ID                   int      `json:"id" db:"id"`
	FirstName            string   `json:"first_name" db:"first_name"`
	LastName             string   `json:"last_name" db:"last_name"`
	FullName             string   `json:"full_name" db:"full_name"`
	Specialty            string   `json:"specialty" db:"specialty"`
	Phone                string   `json:"phone" db:"phone"`
	Email                string   `json:"email" db:"email"`
	Address              *Address `json:"address,omitempty" db:"-"`
	YearsExperience      int      `json:"years_experience" db:"years_experience"`
	AcceptingNewPatients bool     `json:"accepting_new_patients" db:"accepting_new_patients"`
	InsuranceAccepted    []string `json:"insurance_accepted" db:"-"`
	Languages            []string `json:"languages" db:"-"`
	Rating               float64  `json:"rating" db:"rating"`
	LicenseNumber        string   `json:"license_number,omitempty" db:"license_number"`
	BoardCertified       bool     `json:"board_certified" db:"board_certified"`
}

// Address represents a physical address
type Address struct {
	Street string `json:"street" db:"street"`
	City   string `json:"city" db:"city"`
	State  string `json:"state" db:"state"`
	Zip    string `json:"zip" db:"zip_code"`
}

// State returns the provider's two-letter state code, or "" when no address is recorded.
func (p *Provider) State() string {
	if p.Address == nil {
		return ""
	}
	return p.Address.State
}

// City returns the provider's city, or "" when no address is recorded.
func (p *Provider) City() string {
	if p.Address == nil {
		return ""
	}
	return p.Address.City
}

// AcceptsInsurance reports whether the named insurer appears in the provider's accepted set.
func (p *Provider) AcceptsInsurance(name string) bool {
	return containsString(p.InsuranceAccepted, name)
}

// SpeaksLanguage reports whether the named language is literally present in the
// provider's language set. An empty set means nothing matches; English is not
// assumed.
func (p *Provider) SpeaksLanguage(name string) bool {
	return containsString(p.Languages, name)
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
