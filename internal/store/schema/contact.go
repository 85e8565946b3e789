package schema

import "time"

// Contact represents the contacts table - people and organizations managed by one owner
type Contact struct {
	// ID is the contact identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// OwnerID is the identity that owns the contact; every query filters on it
	OwnerID string `gorm:"column:owner_id;not null;type:varchar(255);index"`
	// Type is either INDIVIDUAL or COMPANY
	Type string `gorm:"column:type;not null;type:varchar(20);default:INDIVIDUAL"`
	// FirstName is the given name of an individual
	FirstName *string `gorm:"column:first_name;type:text"`
	// LastName is the family name of an individual
	LastName *string `gorm:"column:last_name;type:text"`
	// Email is the contact email address
	Email *string `gorm:"column:email;type:text"`
	// Phone is the contact phone number
	Phone *string `gorm:"column:phone;type:text"`
	// Company is the organization name
	Company *string `gorm:"column:company;type:text"`
	// Address is a free-form postal address
	Address *string `gorm:"column:address;type:text"`
	// Status is one of LEAD, PROSPECT, CLIENT, INACTIVE
	Status string `gorm:"column:status;not null;type:varchar(20);default:LEAD"`
	// CreatedAt is the timestamp when the contact was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the contact was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Contact model
func (Contact) TableName() string {
	return "contacts"
}
