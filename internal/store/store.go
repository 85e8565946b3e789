package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/store/schema"
)

// CreateContactInput represents the input for creating a contact
type CreateContactInput struct {
	OwnerID string
	Fields  domain.ContactFields
	Status  domain.ContactStatus
}

// UpdateContactInput represents the input for updating a contact.
// Every field is overwritten; concurrent updates are last-write-wins.
type UpdateContactInput struct {
	OwnerID   string
	ContactID string
	Fields    domain.ContactFields
	Status    domain.ContactStatus
}

// ContactFilter narrows a contact listing
type ContactFilter struct {
	OwnerID string
	// Type restricts the listing to one contact type when set
	Type *domain.ContactType
	// Limit caps the number of contacts, 0 means no limit
	Limit int
}

// CreateContactEventInput represents the input for appending a contact event
type CreateContactEventInput struct {
	ContactID string
	OwnerID   string
	Payload   domain.EventPayload
	// CreatedAt defaults to the current time when zero
	CreatedAt time.Time
}

// ContactEventFilter selects a window of a contact's events, newest first
type ContactEventFilter struct {
	OwnerID   string
	ContactID string
	Limit     int
	Offset    int
}

// CreateContactDocumentInput represents the input for attaching a document to a contact
type CreateContactDocumentInput struct {
	ContactID   string
	OwnerID     string
	Name        string
	Key         string
	Size        int64
	ContentType string
	Metadata    map[string]any
}

// Store defines the interface for database operations.
// Lookups scoped by owner return (nil, nil) when the row is absent or owned by someone else.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Transaction runs fn inside a database transaction bound to the returned Store.
	// The transaction is rolled back when fn returns an error.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// CreateContact inserts a contact owned by input.OwnerID
	CreateContact(ctx context.Context, input CreateContactInput) (*domain.Contact, error)
	// GetContact retrieves a contact owned by ownerID
	GetContact(ctx context.Context, ownerID, contactID string) (*domain.Contact, error)
	// ListContacts lists contacts newest first
	ListContacts(ctx context.Context, filter ContactFilter) ([]domain.Contact, error)
	// UpdateContact overwrites a contact owned by input.OwnerID and returns the new row
	UpdateContact(ctx context.Context, input UpdateContactInput) (*domain.Contact, error)
	// DeleteContact removes a contact owned by ownerID; events and documents cascade
	DeleteContact(ctx context.Context, ownerID, contactID string) (bool, error)

	// CreateContactEvent appends an event to a contact's activity trail
	CreateContactEvent(ctx context.Context, input CreateContactEventInput) (*domain.ContactEvent, error)
	// ListContactEvents lists events ordered by created_at DESC, seq DESC
	ListContactEvents(ctx context.Context, filter ContactEventFilter) ([]domain.ContactEvent, error)

	// CreateProduct inserts a product owned by ownerID
	CreateProduct(ctx context.Context, ownerID string, fields domain.ProductFields) (*domain.Product, error)
	// GetProduct retrieves a product owned by ownerID
	GetProduct(ctx context.Context, ownerID, productID string) (*domain.Product, error)
	// ListProducts lists products newest first
	ListProducts(ctx context.Context, ownerID string) ([]domain.Product, error)
	// UpdateProduct overwrites a product owned by ownerID
	UpdateProduct(ctx context.Context, ownerID, productID string, fields domain.ProductFields) (*domain.Product, error)
	// DeleteProduct removes a product owned by ownerID
	DeleteProduct(ctx context.Context, ownerID, productID string) (bool, error)

	// CreateContactDocument records an uploaded document
	CreateContactDocument(ctx context.Context, input CreateContactDocumentInput) (*domain.ContactDocument, error)
	// GetContactDocument retrieves a document owned by ownerID
	GetContactDocument(ctx context.Context, ownerID, documentID string) (*domain.ContactDocument, error)
	// ListContactDocuments lists a contact's documents newest first
	ListContactDocuments(ctx context.Context, ownerID, contactID string) ([]domain.ContactDocument, error)
	// DeleteContactDocument removes a document row owned by ownerID
	DeleteContactDocument(ctx context.Context, ownerID, documentID string) (bool, error)

	// RecordOrphanedObjects remembers storage keys whose delete failed
	RecordOrphanedObjects(ctx context.Context, reason string, keys []string, lastError string) error
	// GetPendingOrphanedObjects returns orphaned objects to retry, least recently attempted first
	GetPendingOrphanedObjects(ctx context.Context, limit int) ([]schema.OrphanedObject, error)
	// MarkOrphanedObjectFailed records a failed retry; the object is abandoned after maxAttempts
	MarkOrphanedObjectFailed(ctx context.Context, id uint64, errMsg string, maxAttempts int) error
	// DeleteOrphanedObject forgets an orphaned object once its storage delete succeeded
	DeleteOrphanedObject(ctx context.Context, id uint64) error
}
