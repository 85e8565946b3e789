package domain

import "time"

const (
	// MaxDocumentSize is the largest accepted upload (10 MiB)
	MaxDocumentSize = 10 * 1024 * 1024

	// DocumentURLTTL is the lifetime of a presigned viewer URL
	DocumentURLTTL = time.Hour

	// DocumentUploadURLTTL is the lifetime of a presigned direct-upload URL
	DocumentUploadURLTTL = 15 * time.Minute
)

// AllowedDocumentTypes lists the content types accepted for contact documents
var AllowedDocumentTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// IsAllowedDocumentType reports whether contentType may be uploaded
func IsAllowedDocumentType(contentType string) bool {
	for _, t := range AllowedDocumentTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// ContactDocument is a file attached to a contact and stored in object storage
type ContactDocument struct {
	ID          string
	ContactID   string
	OwnerID     string
	Name        string
	Key         string
	Size        int64
	ContentType string
	CreatedAt   time.Time
}

// ContactSummary is the subset of a contact shown next to one of its documents
type ContactSummary struct {
	ID        string
	FirstName *string
	LastName  *string
	Company   *string
}

// DocumentView is a document resolved for display with a temporary URL
type DocumentView struct {
	ID          string
	Name        string
	ContentType string
	URL         string
	Contact     ContactSummary
}
