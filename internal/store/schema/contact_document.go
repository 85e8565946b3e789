package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ContactDocument represents the contact_documents table - files attached to a contact.
// The file itself lives in object storage under Key.
type ContactDocument struct {
	// ID is the document identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// ContactID references the contact the document is attached to
	ContactID string `gorm:"column:contact_id;not null;type:uuid;index"`
	// OwnerID is the identity that uploaded the document
	OwnerID string `gorm:"column:owner_id;not null;type:varchar(255)"`
	// Name is the original file name
	Name string `gorm:"column:name;not null;type:text"`
	// Key is the object storage key
	Key string `gorm:"column:key;not null;type:text;uniqueIndex"`
	// Size is the file size in bytes
	Size int64 `gorm:"column:size;not null"`
	// ContentType is the sniffed MIME type
	ContentType string `gorm:"column:content_type;not null;type:varchar(255)"`
	// Metadata holds upload details (declared type, extension, checksum)
	Metadata datatypes.JSONMap `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the upload timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ContactDocument model
func (ContactDocument) TableName() string {
	return "contact_documents"
}
