package domain

import (
	"strings"
	"time"
)

// ContactStatus is the lifecycle stage of a contact
type ContactStatus string

const (
	ContactStatusLead     ContactStatus = "LEAD"
	ContactStatusProspect ContactStatus = "PROSPECT"
	ContactStatusClient   ContactStatus = "CLIENT"
	ContactStatusInactive ContactStatus = "INACTIVE"
)

// DefaultContactStatus is assigned to every newly created contact
const DefaultContactStatus = ContactStatusLead

// ContactStatuses lists the statuses in display order
var ContactStatuses = []ContactStatus{
	ContactStatusLead,
	ContactStatusProspect,
	ContactStatusClient,
	ContactStatusInactive,
}

// Valid reports whether s is one of the four known statuses
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusLead, ContactStatusProspect, ContactStatusClient, ContactStatusInactive:
		return true
	}
	return false
}

// ContactType distinguishes people from organizations
type ContactType string

const (
	ContactTypeIndividual ContactType = "INDIVIDUAL"
	ContactTypeCompany    ContactType = "COMPANY"
)

// Valid reports whether t is a known contact type
func (t ContactType) Valid() bool {
	return t == ContactTypeIndividual || t == ContactTypeCompany
}

// Contact is a managed person or organization owned by a single user
type Contact struct {
	ID        string
	OwnerID   string
	Type      ContactType
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Company   *string
	Address   *string
	Status    ContactStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns "First Last" when a name pair is set, otherwise the company
func (c *Contact) DisplayName() string {
	name := strings.TrimSpace(strings.Join([]string{deref(c.FirstName), deref(c.LastName)}, " "))
	if name != "" {
		return name
	}
	return deref(c.Company)
}

// ContactFields carries the user-editable attributes of a contact.
// Empty strings are normalized to nil by Normalize.
type ContactFields struct {
	Type      ContactType
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Company   *string
	Address   *string
}

// Normalize trims every field, turns blanks into nil and defaults the type
func (f ContactFields) Normalize() ContactFields {
	if f.Type == "" {
		f.Type = ContactTypeIndividual
	}
	f.FirstName = trimToNil(f.FirstName)
	f.LastName = trimToNil(f.LastName)
	f.Email = trimToNil(f.Email)
	f.Phone = trimToNil(f.Phone)
	f.Company = trimToNil(f.Company)
	f.Address = trimToNil(f.Address)
	return f
}

// Validate checks the required-field contract on normalized fields:
// a first and last name pair or a company name must be present, and
// company contacts always need the company name.
func (f ContactFields) Validate() error {
	if !f.Type.Valid() {
		return NewValidationError("type", "unknown contact type %q", f.Type)
	}

	hasNamePair := f.FirstName != nil && f.LastName != nil
	hasCompany := f.Company != nil

	if f.Type == ContactTypeCompany && !hasCompany {
		return NewValidationError("company", "company name is required for a company contact")
	}
	if !hasNamePair && !hasCompany {
		return NewValidationError("name", "first and last name, or a company name, are required")
	}
	if f.Email != nil && !IsValidEmail(*f.Email) {
		return NewValidationError("email", "invalid email address")
	}

	return nil
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
