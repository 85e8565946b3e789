package schema

import "time"

// ContactEvent represents the contact_events table - the append-only activity trail of a contact.
// Rows are removed only by the ON DELETE CASCADE of their contact.
type ContactEvent struct {
	// ID is the event identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Seq is a monotonic insertion sequence used to break created_at ties
	Seq int64 `gorm:"column:seq;not null;autoIncrement"`
	// ContactID references the contact the event belongs to
	ContactID string `gorm:"column:contact_id;not null;type:uuid"`
	// OwnerID is the identity that caused the event
	OwnerID string `gorm:"column:owner_id;not null;type:varchar(255)"`
	// Type is one of CREATED, STATUS_CHANGE, NOTE
	Type string `gorm:"column:type;not null;type:varchar(20)"`
	// Content is the note text (NOTE only)
	Content *string `gorm:"column:content;type:text"`
	// FromStatus is the previous status (STATUS_CHANGE only)
	FromStatus *string `gorm:"column:from_status;type:varchar(20)"`
	// ToStatus is the new status (STATUS_CHANGE only)
	ToStatus *string `gorm:"column:to_status;type:varchar(20)"`
	// CreatedAt is the timestamp of the event
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ContactEvent model
func (ContactEvent) TableName() string {
	return "contact_events"
}
