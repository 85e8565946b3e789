package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/storage"
	"github.com/feral-file/ff-crm/internal/store"
	"github.com/feral-file/ff-crm/internal/viewcache"
)

const (
	// OrphanReasonDocumentDeleted tags objects whose document row was deleted
	OrphanReasonDocumentDeleted = "document_deleted"
	// OrphanReasonUploadAborted tags objects uploaded without a document row
	OrphanReasonUploadAborted = "upload_aborted"
)

// UploadInput is a file sent through the API
type UploadInput struct {
	ContactID string
	Name      string
	// ContentType is the type declared by the client, checked against the sniffed one
	ContentType string
	Body        io.Reader
}

// UploadTicket lets a client upload a file straight to object storage
type UploadTicket struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// ConfirmInput registers a file uploaded with an UploadTicket
type ConfirmInput struct {
	ContactID   string
	Key         string
	Name        string
	ContentType string
	Size        int64
}

// Service manages the documents attached to the actor's contacts
//
//go:generate mockgen -source=service.go -destination=../mocks/document_service.go -package=mocks -mock_names=Service=MockDocumentService
type Service interface {
	// Upload stores a file and attaches it to a contact
	Upload(ctx context.Context, in UploadInput) (*domain.ContactDocument, error)
	// PresignUpload reserves a key for a direct upload to object storage
	PresignUpload(ctx context.Context, contactID, fileName, contentType string) (*UploadTicket, error)
	// ConfirmUpload attaches a file uploaded with a ticket once it is present in storage
	ConfirmUpload(ctx context.Context, in ConfirmInput) (*domain.ContactDocument, error)
	// List lists a contact's documents newest first
	List(ctx context.Context, contactID string) ([]domain.ContactDocument, error)
	// View resolves a document with a temporary read URL
	View(ctx context.Context, documentID string) (*domain.DocumentView, error)
	// Delete removes the stored file and the document row
	Delete(ctx context.Context, documentID string) error
}

type service struct {
	store       store.Store
	objects     storage.ObjectStorage
	resolver    auth.Resolver
	invalidator viewcache.Invalidator
	clock       adapter.Clock
	metrics     *metrics.Metrics
}

// NewService creates a new document service
func NewService(
	st store.Store,
	objects storage.ObjectStorage,
	resolver auth.Resolver,
	invalidator viewcache.Invalidator,
	clock adapter.Clock,
	m *metrics.Metrics,
) Service {
	return &service{
		store:       st,
		objects:     objects,
		resolver:    resolver,
		invalidator: invalidator,
		clock:       clock,
		metrics:     m,
	}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*domain.ContactDocument, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := s.requireContact(ctx, actor.ID, in.ContactID); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(in.Body, domain.MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("file", "file is empty")
	}
	if len(data) > domain.MaxDocumentSize {
		return nil, domain.NewValidationError("file", "file exceeds %d MiB", domain.MaxDocumentSize>>20)
	}

	mtype := mimetype.Detect(data)
	contentType := baseType(mtype.String())
	if !domain.IsAllowedDocumentType(contentType) {
		return nil, domain.NewValidationError("file", "file type %s is not allowed", contentType)
	}
	if declared := baseType(in.ContentType); declared != "" && declared != "application/octet-stream" && declared != contentType {
		return nil, domain.NewValidationError("file", "declared type %s does not match content %s", declared, contentType)
	}

	key := s.newKey(in.ContactID, mtype.Extension())
	if err := s.objects.Upload(ctx, storage.Object{
		Key:         key,
		Body:        bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: contentType,
	}); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc, err := s.store.CreateContactDocument(ctx, store.CreateContactDocumentInput{
		ContactID:   in.ContactID,
		OwnerID:     actor.ID,
		Name:        displayName(in.Name, mtype.Extension()),
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata:    map[string]any{"declared_type": in.ContentType, "source": "api"},
	})
	if err != nil {
		s.discard(ctx, OrphanReasonUploadAborted, key)
		return nil, domain.NewStoreError("create document", err)
	}

	s.invalidate(ctx, actor.ID, in.ContactID)
	return doc, nil
}

func (s *service) PresignUpload(ctx context.Context, contactID, fileName, contentType string) (*UploadTicket, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	contentType = baseType(contentType)
	if !domain.IsAllowedDocumentType(contentType) {
		return nil, domain.NewValidationError("content_type", "file type %s is not allowed", contentType)
	}
	if err := s.requireContact(ctx, actor.ID, contactID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(fileName))
	if ext == "" {
		if m := mimetype.Lookup(contentType); m != nil {
			ext = m.Extension()
		}
	}

	key := s.newKey(contactID, ext)
	url, err := s.objects.PresignedPutURL(ctx, key, domain.DocumentUploadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &UploadTicket{
		Key:       key,
		URL:       url,
		ExpiresAt: s.clock.Now().Add(domain.DocumentUploadURLTTL).UTC(),
	}, nil
}

func (s *service) ConfirmUpload(ctx context.Context, in ConfirmInput) (*domain.ContactDocument, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !strings.HasPrefix(in.Key, storage.BuildKey("contacts", in.ContactID)+"/") {
		return nil, domain.NewValidationError("key", "key does not belong to this contact")
	}
	contentType := baseType(in.ContentType)
	if !domain.IsAllowedDocumentType(contentType) {
		return nil, domain.NewValidationError("content_type", "file type %s is not allowed", contentType)
	}
	if in.Size <= 0 || in.Size > domain.MaxDocumentSize {
		return nil, domain.NewValidationError("size", "size must be between 1 byte and %d MiB", domain.MaxDocumentSize>>20)
	}
	if err := s.requireContact(ctx, actor.ID, in.ContactID); err != nil {
		return nil, err
	}

	exists, err := s.objects.Exists(ctx, in.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to check uploaded object: %w", err)
	}
	if !exists {
		return nil, domain.NewValidationError("key", "no file was uploaded for this key")
	}

	doc, err := s.store.CreateContactDocument(ctx, store.CreateContactDocumentInput{
		ContactID:   in.ContactID,
		OwnerID:     actor.ID,
		Name:        displayName(in.Name, path.Ext(in.Key)),
		Key:         in.Key,
		Size:        in.Size,
		ContentType: contentType,
		Metadata:    map[string]any{"source": "presigned"},
	})
	if err != nil {
		return nil, domain.NewStoreError("create document", err)
	}

	s.invalidate(ctx, actor.ID, in.ContactID)
	return doc, nil
}

func (s *service) List(ctx context.Context, contactID string) ([]domain.ContactDocument, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return []domain.ContactDocument{}, nil
	}

	docs, err := s.store.ListContactDocuments(ctx, actor.ID, contactID)
	if err != nil {
		return nil, domain.NewStoreError("list documents", err)
	}
	if docs == nil {
		docs = []domain.ContactDocument{}
	}
	return docs, nil
}

func (s *service) View(ctx context.Context, documentID string) (*domain.DocumentView, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrNotFound
	}

	doc, err := s.store.GetContactDocument(ctx, actor.ID, documentID)
	if err != nil {
		return nil, domain.NewStoreError("get document", err)
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}

	contact, err := s.store.GetContact(ctx, actor.ID, doc.ContactID)
	if err != nil {
		return nil, domain.NewStoreError("get contact", err)
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}

	url, err := s.objects.PresignedGetURL(ctx, doc.Key, domain.DocumentURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign document: %w", err)
	}

	return &domain.DocumentView{
		ID:          doc.ID,
		Name:        doc.Name,
		ContentType: doc.ContentType,
		URL:         url,
		Contact: domain.ContactSummary{
			ID:        contact.ID,
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Company:   contact.Company,
		},
	}, nil
}

// Delete removes the stored file first. A storage failure is logged and the
// key recorded for the orphan sweeper; the row is deleted regardless.
func (s *service) Delete(ctx context.Context, documentID string) error {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	doc, err := s.store.GetContactDocument(ctx, actor.ID, documentID)
	if err != nil {
		return domain.NewStoreError("get document", err)
	}
	if doc == nil {
		return domain.ErrNotFound
	}

	s.discard(ctx, OrphanReasonDocumentDeleted, doc.Key)

	deleted, err := s.store.DeleteContactDocument(ctx, actor.ID, documentID)
	if err != nil {
		return domain.NewStoreError("delete document", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	s.invalidate(ctx, actor.ID, doc.ContactID)
	return nil
}

func (s *service) requireContact(ctx context.Context, ownerID, contactID string) error {
	contact, err := s.store.GetContact(ctx, ownerID, contactID)
	if err != nil {
		return domain.NewStoreError("get contact", err)
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return nil
}

// newKey builds contacts/{contactID}/{ulid}{ext}
func (s *service) newKey(contactID, ext string) string {
	return storage.BuildKey("contacts", contactID, ulid.MustNewDefault(s.clock.Now()).String()+ext)
}

// discard deletes an object, handing it to the orphan sweeper when that fails
func (s *service) discard(ctx context.Context, reason, key string) {
	err := s.objects.Delete(ctx, key)
	if err == nil {
		return
	}

	logger.WarnCtx(ctx, "Failed to delete document object", zap.String("key", key), zap.Error(err))
	if recErr := s.store.RecordOrphanedObjects(ctx, reason, []string{key}, err.Error()); recErr != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record orphaned object: %w", recErr), zap.String("key", key))
		return
	}
	s.metrics.AddOrphanedObjects("recorded", 1)
}

func (s *service) invalidate(ctx context.Context, ownerID, contactID string) {
	if err := s.invalidator.Invalidate(ctx, ownerID, viewcache.ContactRoute(contactID)); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate contact view", zap.String("contactID", contactID), zap.Error(err))
	}
}

// baseType strips parameters such as "; charset=utf-8"
func baseType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// displayName keeps the base name of an uploaded file
func displayName(name, ext string) string {
	name = strings.TrimSpace(path.Base(strings.ReplaceAll(name, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		return "document" + ext
	}
	return name
}
