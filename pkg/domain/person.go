package domain

import (
	"time"

	"lugo/pkg/serrors"
)

// Role is the relationship a person holds with its affiliated company.
type Role string

const (
	// RoleEmployee may perform administrative operations for the company.
	RoleEmployee Role = "employee"
	// RoleClient is a customer registered by the company's employees.
	RoleClient Role = "client"
)

// Person is an individual, optionally affiliated with one company. The CPF is
// unique within the person's affiliation group: among the persons of the same
// company, or among all unaffiliated persons.
type Person struct {
	// Key is the opaque business key callers use to reference the person.
	Key string `json:"key"`

	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	// CPF is the personal tax identifier.
	CPF CPF `json:"cpf"`

	// CompanyKey is the affiliated company, empty when unaffiliated.
	CompanyKey string `json:"companyKey,omitempty"`
	// Role is meaningful only when CompanyKey is set.
	Role Role `json:"role,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func validatePersonNames(givenName, familyName string) error {
	if givenName == "" {
		return serrors.With(serrors.ErrInvalid, "given name is required")
	}
	if familyName == "" {
		return serrors.With(serrors.ErrInvalid, "family name is required")
	}

	return nil
}

// NewPerson validates all fields and returns a fully constructed person.
// companyKey and role come as a pair: both set, or both empty.
func NewPerson(key, givenName, familyName, cpf, companyKey string, role Role) (*Person, error) {
	if key == "" {
		return nil, serrors.With(serrors.ErrInvalid, "person key is required")
	}
	if err := validatePersonNames(givenName, familyName); err != nil {
		return nil, err
	}
	taxID, err := NewCPF(cpf)
	if err != nil {
		return nil, err
	}
	if companyKey == "" && role != "" {
		return nil, serrors.With(serrors.ErrInvalid, "role requires a company affiliation")
	}
	if companyKey != "" && role != RoleEmployee && role != RoleClient {
		return nil, serrors.With(serrors.ErrInvalid, "invalid company role %q", role)
	}

	return &Person{
		Key:        key,
		GivenName:  givenName,
		FamilyName: familyName,
		CPF:        taxID,
		CompanyKey: companyKey,
		Role:       role,
	}, nil
}

// Alter replaces the person's mutable fields after re-validation. Affiliation
// and role are not touched here; they change only through the dedicated
// operations (company creation, client registration).
func (p *Person) Alter(givenName, familyName, cpf string) error {
	if err := validatePersonNames(givenName, familyName); err != nil {
		return err
	}
	taxID, err := NewCPF(cpf)
	if err != nil {
		return err
	}

	p.GivenName = givenName
	p.FamilyName = familyName
	p.CPF = taxID

	return nil
}

// Affiliated reports whether the person belongs to a company.
func (p *Person) Affiliated() bool { return p.CompanyKey != "" }
