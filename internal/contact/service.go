package contact

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/storage"
	"github.com/feral-file/ff-crm/internal/store"
	"github.com/feral-file/ff-crm/internal/timeline"
	"github.com/feral-file/ff-crm/internal/viewcache"
)

const (
	// DefaultRecentLimit is the number of contacts shown on the dashboard
	DefaultRecentLimit = 5
	// MaxRecentLimit caps the dashboard listing
	MaxRecentLimit = 50

	// OrphanReasonContactDeleted tags objects left behind by a contact delete
	OrphanReasonContactDeleted = "contact_deleted"
)

// Detail is a contact with the first page of its activity trail
type Detail struct {
	Contact *domain.Contact
	Events  *domain.EventPage
}

// Service applies contact mutations together with their audit events.
// Every call resolves the actor first: anonymous reads return empty results
// and anonymous writes fail with domain.ErrUnauthorized. Contacts owned by
// another actor are reported as domain.ErrNotFound.
//
//go:generate mockgen -source=service.go -destination=../mocks/contact_service.go -package=mocks -mock_names=Service=MockContactService
type Service interface {
	// Create inserts a LEAD contact and its CREATED event
	Create(ctx context.Context, fields domain.ContactFields) (*domain.Contact, error)
	// Update overwrites the contact fields and status. An empty status keeps the
	// current one. A STATUS_CHANGE event is recorded only when the status changes.
	Update(ctx context.Context, contactID string, fields domain.ContactFields, status domain.ContactStatus) (*domain.Contact, error)
	// AddNote appends a NOTE event to the contact
	AddNote(ctx context.Context, contactID string, content string) (*domain.ContactEvent, error)
	// Delete removes the contact, its events and its documents
	Delete(ctx context.Context, contactID string) error

	// GetByID returns the contact with its first page of events
	GetByID(ctx context.Context, contactID string) (*Detail, error)
	// ListAll lists the actor's contacts newest first, optionally of one type
	ListAll(ctx context.Context, contactType *domain.ContactType) ([]domain.Contact, error)
	// ListRecent lists the latest contacts, DefaultRecentLimit when limit <= 0
	ListRecent(ctx context.Context, limit int) ([]domain.Contact, error)
	// NextEvents returns the page of events following the first skip events
	NextEvents(ctx context.Context, contactID string, skip int) (*domain.EventPage, error)
}

type service struct {
	store       store.Store
	recorder    timeline.Recorder
	paginator   timeline.Paginator
	resolver    auth.Resolver
	invalidator viewcache.Invalidator
	objects     storage.ObjectStorage
	metrics     *metrics.Metrics
}

// NewService creates a new contact service
func NewService(
	st store.Store,
	recorder timeline.Recorder,
	paginator timeline.Paginator,
	resolver auth.Resolver,
	invalidator viewcache.Invalidator,
	objects storage.ObjectStorage,
	m *metrics.Metrics,
) Service {
	return &service{
		store:       st,
		recorder:    recorder,
		paginator:   paginator,
		resolver:    resolver,
		invalidator: invalidator,
		objects:     objects,
		metrics:     m,
	}
}

func (s *service) Create(ctx context.Context, fields domain.ContactFields) (*domain.Contact, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Contact
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		contact, err := tx.CreateContact(ctx, store.CreateContactInput{
			OwnerID: actor.ID,
			Fields:  fields,
			Status:  domain.DefaultContactStatus,
		})
		if err != nil {
			return err
		}

		if _, err := s.recorder.RecordCreated(ctx, tx, contact, actor); err != nil {
			return err
		}

		created = contact
		return nil
	})
	if err != nil {
		return nil, domain.NewStoreError("create contact", err)
	}

	s.metrics.IncrementContactMutation("create")
	s.invalidate(ctx, actor.ID, viewcache.RouteIndex, viewcache.RouteContacts, viewcache.ContactRoute(created.ID))

	return created, nil
}

func (s *service) Update(ctx context.Context, contactID string, fields domain.ContactFields, status domain.ContactStatus) (*domain.Contact, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown status %q", status)
	}

	var updated *domain.Contact
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.GetContact(ctx, actor.ID, contactID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		newStatus := status
		if newStatus == "" {
			newStatus = existing.Status
		}

		contact, err := tx.UpdateContact(ctx, store.UpdateContactInput{
			OwnerID:   actor.ID,
			ContactID: contactID,
			Fields:    fields,
			Status:    newStatus,
		})
		if err != nil {
			return err
		}
		if contact == nil {
			return domain.ErrNotFound
		}

		if newStatus != existing.Status {
			if _, err := s.recorder.RecordStatusChange(ctx, tx, contact, existing.Status, newStatus, actor); err != nil {
				return err
			}
		}

		updated = contact
		return nil
	})
	if err != nil {
		return nil, domain.NewStoreError("update contact", err)
	}

	s.metrics.IncrementContactMutation("update")
	s.invalidate(ctx, actor.ID, viewcache.RouteIndex, viewcache.RouteContacts, viewcache.ContactRoute(updated.ID))

	return updated, nil
}

func (s *service) AddNote(ctx context.Context, contactID string, content string) (*domain.ContactEvent, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", "note content is required")
	}

	var note *domain.ContactEvent
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.GetContact(ctx, actor.ID, contactID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		note, err = s.recorder.RecordNote(ctx, tx, existing.ID, content, actor)
		return err
	})
	if err != nil {
		return nil, domain.NewStoreError("add note", err)
	}

	s.metrics.IncrementContactMutation("note")
	s.invalidate(ctx, actor.ID, viewcache.ContactRoute(contactID))

	return note, nil
}

func (s *service) Delete(ctx context.Context, contactID string) error {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var keys []string
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.GetContact(ctx, actor.ID, contactID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		documents, err := tx.ListContactDocuments(ctx, actor.ID, contactID)
		if err != nil {
			return err
		}
		for _, d := range documents {
			keys = append(keys, d.Key)
		}

		// Events and documents go with the contact through the foreign key cascade
		deleted, err := tx.DeleteContact(ctx, actor.ID, contactID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.NewStoreError("delete contact", err)
	}

	s.removeObjects(ctx, keys)

	s.metrics.IncrementContactMutation("delete")
	s.invalidate(ctx, actor.ID, viewcache.RouteIndex, viewcache.RouteContacts, viewcache.ContactRoute(contactID))

	return nil
}

// removeObjects deletes the storage objects of a deleted contact.
// Failures never undo the delete; the keys are kept for the orphan sweeper.
func (s *service) removeObjects(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}

	var failed []string
	var lastErr error
	for _, key := range keys {
		if err := s.objects.Delete(ctx, key); err != nil {
			logger.WarnCtx(ctx, "Failed to delete document object", zap.String("key", key), zap.Error(err))
			failed = append(failed, key)
			lastErr = err
		}
	}
	if len(failed) == 0 {
		return
	}

	if err := s.store.RecordOrphanedObjects(ctx, OrphanReasonContactDeleted, failed, lastErr.Error()); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record orphaned objects: %w", err), zap.Strings("keys", failed))
		return
	}
	s.metrics.AddOrphanedObjects("recorded", len(failed))
}

func (s *service) GetByID(ctx context.Context, contactID string) (*Detail, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrNotFound
	}

	contact, err := s.store.GetContact(ctx, actor.ID, contactID)
	if err != nil {
		return nil, domain.NewStoreError("get contact", err)
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}

	page, err := s.paginator.FirstPage(ctx, actor.ID, contact.ID)
	if err != nil {
		return nil, domain.NewStoreError("get contact events", err)
	}

	return &Detail{Contact: contact, Events: page}, nil
}

func (s *service) ListAll(ctx context.Context, contactType *domain.ContactType) ([]domain.Contact, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return []domain.Contact{}, nil
	}
	if contactType != nil && !contactType.Valid() {
		return nil, domain.NewValidationError("type", "unknown contact type %q", *contactType)
	}

	contacts, err := s.store.ListContacts(ctx, store.ContactFilter{
		OwnerID: actor.ID,
		Type:    contactType,
	})
	if err != nil {
		return nil, domain.NewStoreError("list contacts", err)
	}
	return nonNil(contacts), nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]domain.Contact, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return []domain.Contact{}, nil
	}

	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)

	contacts, err := s.store.ListContacts(ctx, store.ContactFilter{
		OwnerID: actor.ID,
		Limit:   limit,
	})
	if err != nil {
		return nil, domain.NewStoreError("list recent contacts", err)
	}
	return nonNil(contacts), nil
}

func (s *service) NextEvents(ctx context.Context, contactID string, skip int) (*domain.EventPage, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return &domain.EventPage{Events: []domain.ContactEvent{}}, nil
	}
	if skip < 0 {
		return nil, domain.NewValidationError("skip", "skip must not be negative")
	}

	contact, err := s.store.GetContact(ctx, actor.ID, contactID)
	if err != nil {
		return nil, domain.NewStoreError("get contact", err)
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}

	page, err := s.paginator.Page(ctx, actor.ID, contact.ID, skip)
	if err != nil {
		return nil, domain.NewStoreError("list contact events", err)
	}
	return page, nil
}

// invalidate purges the cached views of routes once a mutation has committed.
// A failure leaves stale views until they expire; it never fails the mutation.
func (s *service) invalidate(ctx context.Context, ownerID string, routes ...string) {
	if err := s.invalidator.Invalidate(ctx, ownerID, routes...); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate views",
			zap.String("ownerID", ownerID),
			zap.Strings("routes", routes),
			zap.Error(err))
	}
}

func nonNil(contacts []domain.Contact) []domain.Contact {
	if contacts == nil {
		return []domain.Contact{}
	}
	return contacts
}
