package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/store/schema"
)

const maxOrphanErrorLength = 1024

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// Zero values are replaced by the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Transaction runs fn inside a database transaction.
// Nested calls on a transaction-bound store use savepoints.
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// =============================================================================
// Contacts
// =============================================================================

// CreateContact inserts a contact owned by input.OwnerID
func (s *pgStore) CreateContact(ctx context.Context, input CreateContactInput) (*domain.Contact, error) {
	status := input.Status
	if status == "" {
		status = domain.DefaultContactStatus
	}

	contact := schema.Contact{
		ID:        uuid.NewString(),
		OwnerID:   input.OwnerID,
		Type:      string(input.Fields.Type),
		FirstName: input.Fields.FirstName,
		LastName:  input.Fields.LastName,
		Email:     input.Fields.Email,
		Phone:     input.Fields.Phone,
		Company:   input.Fields.Company,
		Address:   input.Fields.Address,
		Status:    string(status),
	}

	if err := s.db.WithContext(ctx).Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return toDomainContact(&contact), nil
}

// GetContact retrieves a contact owned by ownerID
func (s *pgStore) GetContact(ctx context.Context, ownerID, contactID string) (*domain.Contact, error) {
	if _, err := uuid.Parse(contactID); err != nil {
		return nil, nil
	}

	var contact schema.Contact
	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", contactID, ownerID).
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return toDomainContact(&contact), nil
}

// ListContacts lists contacts newest first
func (s *pgStore) ListContacts(ctx context.Context, filter ContactFilter) ([]domain.Contact, error) {
	query := s.db.WithContext(ctx).
		Where("owner_id = ?", filter.OwnerID).
		Order("created_at DESC, id DESC")

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []schema.Contact
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := make([]domain.Contact, 0, len(rows))
	for i := range rows {
		contacts = append(contacts, *toDomainContact(&rows[i]))
	}

	return contacts, nil
}

// UpdateContact overwrites a contact owned by input.OwnerID and returns the new row
func (s *pgStore) UpdateContact(ctx context.Context, input UpdateContactInput) (*domain.Contact, error) {
	if _, err := uuid.Parse(input.ContactID); err != nil {
		return nil, nil
	}

	updates := contactColumns(input.Fields, input.Status)
	updates["updated_at"] = time.Now()

	var contact schema.Contact
	result := s.db.WithContext(ctx).
		Model(&contact).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", input.ContactID, input.OwnerID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return toDomainContact(&contact), nil
}

// DeleteContact removes a contact owned by ownerID; events and documents cascade
func (s *pgStore) DeleteContact(ctx context.Context, ownerID, contactID string) (bool, error) {
	if _, err := uuid.Parse(contactID); err != nil {
		return false, nil
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", contactID, ownerID).
		Delete(&schema.Contact{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete contact: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// =============================================================================
// Contact events
// =============================================================================

// CreateContactEvent appends an event to a contact's activity trail
func (s *pgStore) CreateContactEvent(ctx context.Context, input CreateContactEventInput) (*domain.ContactEvent, error) {
	event, err := toSchemaEvent(input)
	if err != nil {
		return nil, err
	}
	event.ID = uuid.NewString()

	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact event: %w", err)
	}

	result, err := toDomainEvent(event)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListContactEvents lists events ordered by created_at DESC, seq DESC.
// Ownership is checked against the parent contact.
func (s *pgStore) ListContactEvents(ctx context.Context, filter ContactEventFilter) ([]domain.ContactEvent, error) {
	if filter.Limit <= 0 || filter.Offset < 0 {
		return nil, fmt.Errorf("%w: limit %d offset %d", domain.ErrInvalidArgument, filter.Limit, filter.Offset)
	}
	if _, err := uuid.Parse(filter.ContactID); err != nil {
		return []domain.ContactEvent{}, nil
	}

	var rows []schema.ContactEvent
	err := s.db.WithContext(ctx).
		Joins("JOIN contacts ON contacts.id = contact_events.contact_id").
		Where("contact_events.contact_id = ? AND contacts.owner_id = ?", filter.ContactID, filter.OwnerID).
		Order("contact_events.created_at DESC, contact_events.seq DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact events: %w", err)
	}

	events := make([]domain.ContactEvent, 0, len(rows))
	for i := range rows {
		event, err := toDomainEvent(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map contact event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// =============================================================================
// Products
// =============================================================================

// CreateProduct inserts a product owned by ownerID
func (s *pgStore) CreateProduct(ctx context.Context, ownerID string, fields domain.ProductFields) (*domain.Product, error) {
	product := schema.Product{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Name:           fields.Name,
		Description:    fields.Description,
		Price:          fields.Price,
		BillingType:    string(fields.BillingType),
		DepositEnabled: fields.DepositEnabled,
		DepositValue:   fields.DepositValue,
	}
	if fields.RecurringInterval != nil {
		v := string(*fields.RecurringInterval)
		product.RecurringInterval = &v
	}
	if fields.DepositType != nil {
		v := string(*fields.DepositType)
		product.DepositType = &v
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDomainProduct(&product), nil
}

// GetProduct retrieves a product owned by ownerID
func (s *pgStore) GetProduct(ctx context.Context, ownerID, productID string) (*domain.Product, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, nil
	}

	var product schema.Product
	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", productID, ownerID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return toDomainProduct(&product), nil
}

// ListProducts lists products newest first
func (s *pgStore) ListProducts(ctx context.Context, ownerID string) ([]domain.Product, error) {
	var rows []schema.Product
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *toDomainProduct(&rows[i]))
	}

	return products, nil
}

// UpdateProduct overwrites a product owned by ownerID
func (s *pgStore) UpdateProduct(ctx context.Context, ownerID, productID string, fields domain.ProductFields) (*domain.Product, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, nil
	}

	updates := productColumns(fields)
	updates["updated_at"] = time.Now()

	var product schema.Product
	result := s.db.WithContext(ctx).
		Model(&product).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", productID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return toDomainProduct(&product), nil
}

// DeleteProduct removes a product owned by ownerID
func (s *pgStore) DeleteProduct(ctx context.Context, ownerID, productID string) (bool, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return false, nil
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", productID, ownerID).
		Delete(&schema.Product{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete product: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// =============================================================================
// Contact documents
// =============================================================================

// CreateContactDocument records an uploaded document
func (s *pgStore) CreateContactDocument(ctx context.Context, input CreateContactDocumentInput) (*domain.ContactDocument, error) {
	document := schema.ContactDocument{
		ID:          uuid.NewString(),
		ContactID:   input.ContactID,
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Key:         input.Key,
		Size:        input.Size,
		ContentType: input.ContentType,
	}
	if len(input.Metadata) > 0 {
		document.Metadata = datatypes.JSONMap(input.Metadata)
	}

	if err := s.db.WithContext(ctx).Create(&document).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact document: %w", err)
	}

	return toDomainDocument(&document), nil
}

// GetContactDocument retrieves a document owned by ownerID
func (s *pgStore) GetContactDocument(ctx context.Context, ownerID, documentID string) (*domain.ContactDocument, error) {
	if _, err := uuid.Parse(documentID); err != nil {
		return nil, nil
	}

	var document schema.ContactDocument
	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", documentID, ownerID).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact document: %w", err)
	}

	return toDomainDocument(&document), nil
}

// ListContactDocuments lists a contact's documents newest first
func (s *pgStore) ListContactDocuments(ctx context.Context, ownerID, contactID string) ([]domain.ContactDocument, error) {
	if _, err := uuid.Parse(contactID); err != nil {
		return []domain.ContactDocument{}, nil
	}

	var rows []schema.ContactDocument
	err := s.db.WithContext(ctx).
		Where("contact_id = ? AND owner_id = ?", contactID, ownerID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact documents: %w", err)
	}

	documents := make([]domain.ContactDocument, 0, len(rows))
	for i := range rows {
		documents = append(documents, *toDomainDocument(&rows[i]))
	}

	return documents, nil
}

// DeleteContactDocument removes a document row owned by ownerID
func (s *pgStore) DeleteContactDocument(ctx context.Context, ownerID, documentID string) (bool, error) {
	if _, err := uuid.Parse(documentID); err != nil {
		return false, nil
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", documentID, ownerID).
		Delete(&schema.ContactDocument{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete contact document: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// =============================================================================
// Orphaned objects
// =============================================================================

// RecordOrphanedObjects remembers storage keys whose delete failed.
// Keys already recorded are reset to pending with the new error.
func (s *pgStore) RecordOrphanedObjects(ctx context.Context, reason string, keys []string, lastError string) error {
	if len(keys) == 0 {
		return nil
	}

	lastError = truncate(lastError, maxOrphanErrorLength)
	objects := make([]schema.OrphanedObject, 0, len(keys))
	for _, key := range keys {
		errMsg := lastError
		objects = append(objects, schema.OrphanedObject{
			Key:       key,
			Reason:    reason,
			Status:    schema.OrphanedObjectStatusPending,
			LastError: &errMsg,
		})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"reason":     reason,
			"status":     schema.OrphanedObjectStatusPending,
			"last_error": lastError,
			"updated_at": time.Now(),
		}),
	}).Create(&objects).Error
	if err != nil {
		return fmt.Errorf("failed to record orphaned objects: %w", err)
	}

	return nil
}

// GetPendingOrphanedObjects returns orphaned objects to retry, least recently attempted first
func (s *pgStore) GetPendingOrphanedObjects(ctx context.Context, limit int) ([]schema.OrphanedObject, error) {
	var objects []schema.OrphanedObject
	err := s.db.WithContext(ctx).
		Where("status = ?", schema.OrphanedObjectStatusPending).
		Order("last_attempt_at ASC NULLS FIRST, id ASC").
		Limit(limit).
		Find(&objects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending orphaned objects: %w", err)
	}

	return objects, nil
}

// MarkOrphanedObjectFailed records a failed retry; the object is abandoned after maxAttempts
func (s *pgStore) MarkOrphanedObjectFailed(ctx context.Context, id uint64, errMsg string, maxAttempts int) error {
	now := time.Now()
	updates := map[string]any{
		"attempts":        gorm.Expr("attempts + 1"),
		"last_error":      truncate(errMsg, maxOrphanErrorLength),
		"last_attempt_at": now,
		"updated_at":      now,
		"status": gorm.Expr("CASE WHEN attempts + 1 >= ? THEN ? ELSE ? END",
			maxAttempts, schema.OrphanedObjectStatusAbandoned, schema.OrphanedObjectStatusPending),
	}

	err := s.db.WithContext(ctx).
		Model(&schema.OrphanedObject{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to mark orphaned object failed: %w", err)
	}

	return nil
}

// DeleteOrphanedObject forgets an orphaned object once its storage delete succeeded
func (s *pgStore) DeleteOrphanedObject(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&schema.OrphanedObject{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete orphaned object: %w", err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
