package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-crm/internal/domain"
)

const (
	ownerA = "user-a"
	ownerB = "user-b"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestContact creates an individual contact input
func buildTestContact(owner, first, last string) CreateContactInput {
	return CreateContactInput{
		OwnerID: owner,
		Fields: domain.ContactFields{
			Type:      domain.ContactTypeIndividual,
			FirstName: domain.StringPtr(first),
			LastName:  domain.StringPtr(last),
			Email:     domain.StringPtr(fmt.Sprintf("%s@example.fr", first)),
		},
	}
}

// buildTestCompany creates a company contact input
func buildTestCompany(owner, company string) CreateContactInput {
	return CreateContactInput{
		OwnerID: owner,
		Fields: domain.ContactFields{
			Type:    domain.ContactTypeCompany,
			Company: domain.StringPtr(company),
		},
	}
}

func mustCreateContact(t *testing.T, store Store, input CreateContactInput) *domain.Contact {
	t.Helper()
	contact, err := store.CreateContact(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, contact)
	return contact
}

func mustCreateEvent(t *testing.T, store Store, contact *domain.Contact, payload domain.EventPayload, at time.Time) *domain.ContactEvent {
	t.Helper()
	event, err := store.CreateContactEvent(context.Background(), CreateContactEventInput{
		ContactID: contact.ID,
		OwnerID:   contact.OwnerID,
		Payload:   payload,
		CreatedAt: at,
	})
	require.NoError(t, err)
	require.NotNil(t, event)
	return event
}

// =============================================================================
// Test: Contacts
// =============================================================================

func testContacts(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create applies the default status", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Jean", "Dupont"))

		assert.NotEmpty(t, contact.ID)
		assert.Equal(t, ownerA, contact.OwnerID)
		assert.Equal(t, domain.ContactStatusLead, contact.Status)
		assert.Equal(t, domain.ContactTypeIndividual, contact.Type)
		assert.Equal(t, "Jean Dupont", contact.DisplayName())
		assert.False(t, contact.CreatedAt.IsZero())
	})

	t.Run("get is scoped by owner", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Marie", "Curie"))

		got, err := store.GetContact(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, contact.ID, got.ID)

		other, err := store.GetContact(ctx, ownerB, contact.ID)
		require.NoError(t, err)
		assert.Nil(t, other)
	})

	t.Run("get with malformed or unknown id returns nil", func(t *testing.T) {
		got, err := store.GetContact(ctx, ownerA, "not-a-uuid")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.GetContact(ctx, ownerA, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list filters by owner and type, newest first", func(t *testing.T) {
		listOwner := "list-owner"
		first := mustCreateContact(t, store, buildTestContact(listOwner, "Alice", "Martin"))
		second := mustCreateCompanyAfter(t, store, listOwner, "ACME", first.CreatedAt)
		mustCreateContact(t, store, buildTestContact(ownerB, "Bob", "Durand"))

		all, err := store.ListContacts(ctx, ContactFilter{OwnerID: listOwner})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID)
		assert.Equal(t, first.ID, all[1].ID)

		companyType := domain.ContactTypeCompany
		companies, err := store.ListContacts(ctx, ContactFilter{OwnerID: listOwner, Type: &companyType})
		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, second.ID, companies[0].ID)

		limited, err := store.ListContacts(ctx, ContactFilter{OwnerID: listOwner, Limit: 1})
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, second.ID, limited[0].ID)
	})

	t.Run("update overwrites fields and status", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Paul", "Bernard"))

		updated, err := store.UpdateContact(ctx, UpdateContactInput{
			OwnerID:   ownerA,
			ContactID: contact.ID,
			Fields: domain.ContactFields{
				Type:      domain.ContactTypeIndividual,
				FirstName: domain.StringPtr("Paul"),
				LastName:  domain.StringPtr("Bernard"),
				Phone:     domain.StringPtr("+33 1 23 45 67 89"),
			},
			Status: domain.ContactStatusClient,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.ContactStatusClient, updated.Status)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, "+33 1 23 45 67 89", *updated.Phone)
		assert.Nil(t, updated.Email)
		assert.Equal(t, contact.ID, updated.ID)
	})

	t.Run("update of another owner's contact returns nil", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Luc", "Petit"))

		updated, err := store.UpdateContact(ctx, UpdateContactInput{
			OwnerID:   ownerB,
			ContactID: contact.ID,
			Fields:    domain.ContactFields{Type: domain.ContactTypeCompany, Company: domain.StringPtr("Hijack")},
			Status:    domain.ContactStatusInactive,
		})
		require.NoError(t, err)
		assert.Nil(t, updated)

		got, err := store.GetContact(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ContactStatusLead, got.Status)
	})

	t.Run("delete is scoped by owner", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Emma", "Roux"))

		deleted, err := store.DeleteContact(ctx, ownerB, contact.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = store.DeleteContact(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := store.GetContact(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func mustCreateCompanyAfter(t *testing.T, store Store, owner, company string, after time.Time) *domain.Contact {
	t.Helper()
	// created_at comes from the clock; make sure it moves past the previous row
	for !time.Now().After(after.Add(time.Millisecond)) {
		time.Sleep(time.Millisecond)
	}
	return mustCreateContact(t, store, buildTestCompany(owner, company))
}

// =============================================================================
// Test: Contact events
// =============================================================================

func testContactEvents(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("payloads round trip", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Jean", "Dupont"))
		base := time.Now().UTC().Truncate(time.Second)

		mustCreateEvent(t, store, contact, domain.CreatedPayload{}, base)
		mustCreateEvent(t, store, contact, domain.StatusChangePayload{From: domain.ContactStatusLead, To: domain.ContactStatusClient}, base.Add(time.Second))
		mustCreateEvent(t, store, contact, domain.NotePayload{Content: "Follow up next week"}, base.Add(2*time.Second))

		events, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: contact.ID, Limit: 10})
		require.NoError(t, err)
		require.Len(t, events, 3)

		assert.Equal(t, domain.NotePayload{Content: "Follow up next week"}, events[0].Payload)
		assert.Equal(t, domain.StatusChangePayload{From: domain.ContactStatusLead, To: domain.ContactStatusClient}, events[1].Payload)
		assert.Equal(t, domain.CreatedPayload{}, events[2].Payload)
		assert.Equal(t, domain.ContactEventTypeCreated, events[2].Type())
	})

	t.Run("equal timestamps are ordered by insertion sequence", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Tie", "Break"))
		at := time.Now().UTC().Truncate(time.Second)

		var inserted []*domain.ContactEvent
		for i := 0; i < 4; i++ {
			inserted = append(inserted, mustCreateEvent(t, store, contact, domain.NotePayload{Content: fmt.Sprintf("note %d", i)}, at))
		}
		for i := 1; i < len(inserted); i++ {
			assert.Greater(t, inserted[i].Seq, inserted[i-1].Seq)
		}

		first, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: contact.ID, Limit: 10})
		require.NoError(t, err)
		second, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: contact.ID, Limit: 10})
		require.NoError(t, err)

		require.Len(t, first, 4)
		assert.Equal(t, first, second)
		for i, event := range first {
			assert.Equal(t, inserted[len(inserted)-1-i].ID, event.ID)
		}
	})

	t.Run("limit and offset window", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Page", "Test"))
		base := time.Now().UTC().Truncate(time.Second)
		for i := 0; i < 7; i++ {
			mustCreateEvent(t, store, contact, domain.NotePayload{Content: fmt.Sprintf("note %d", i)}, base.Add(time.Duration(i)*time.Second))
		}

		window, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: contact.ID, Limit: 3, Offset: 5})
		require.NoError(t, err)
		require.Len(t, window, 2)
		assert.Equal(t, domain.NotePayload{Content: "note 1"}, window[0].Payload)
		assert.Equal(t, domain.NotePayload{Content: "note 0"}, window[1].Payload)

		past, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: contact.ID, Limit: 3, Offset: 50})
		require.NoError(t, err)
		assert.Empty(t, past)
	})

	t.Run("events of another owner's contact are invisible", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Hidden", "Trail"))
		mustCreateEvent(t, store, contact, domain.CreatedPayload{}, time.Time{})

		events, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerB, ContactID: contact.ID, Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("invalid window is rejected", func(t *testing.T) {
		_, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: uuid.NewString(), Limit: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: uuid.NewString(), Limit: 5, Offset: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("nil payload is rejected", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "No", "Payload"))
		_, err := store.CreateContactEvent(ctx, CreateContactEventInput{ContactID: contact.ID, OwnerID: ownerA})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("deleting a contact cascades to its events", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Gone", "Soon"))
		mustCreateEvent(t, store, contact, domain.CreatedPayload{}, time.Time{})
		mustCreateEvent(t, store, contact, domain.NotePayload{Content: "bye"}, time.Time{})

		deleted, err := store.DeleteContact(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		events, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: contact.ID, Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

// =============================================================================
// Test: Transaction
// =============================================================================

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("commit keeps contact and event together", func(t *testing.T) {
		var contactID string
		err := store.Transaction(ctx, func(tx Store) error {
			contact, err := tx.CreateContact(ctx, buildTestContact(ownerA, "Atomic", "Commit"))
			if err != nil {
				return err
			}
			contactID = contact.ID
			_, err = tx.CreateContactEvent(ctx, CreateContactEventInput{ContactID: contact.ID, OwnerID: ownerA, Payload: domain.CreatedPayload{}})
			return err
		})
		require.NoError(t, err)

		contact, err := store.GetContact(ctx, ownerA, contactID)
		require.NoError(t, err)
		require.NotNil(t, contact)

		events, err := store.ListContactEvents(ctx, ContactEventFilter{OwnerID: ownerA, ContactID: contactID, Limit: 5})
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("failed event insert rolls back the contact", func(t *testing.T) {
		var contactID string
		err := store.Transaction(ctx, func(tx Store) error {
			contact, err := tx.CreateContact(ctx, buildTestContact(ownerA, "Atomic", "Rollback"))
			if err != nil {
				return err
			}
			contactID = contact.ID
			// from == to violates the payload check constraint
			_, err = tx.CreateContactEvent(ctx, CreateContactEventInput{
				ContactID: contact.ID,
				OwnerID:   ownerA,
				Payload:   domain.StatusChangePayload{From: domain.ContactStatusLead, To: domain.ContactStatusLead},
			})
			return err
		})
		require.Error(t, err)
		require.NotEmpty(t, contactID)

		contact, err := store.GetContact(ctx, ownerA, contactID)
		require.NoError(t, err)
		assert.Nil(t, contact)
	})

	t.Run("error returned by the callback rolls back", func(t *testing.T) {
		sentinel := errors.New("boom")
		var contactID string
		err := store.Transaction(ctx, func(tx Store) error {
			contact, err := tx.CreateContact(ctx, buildTestCompany(ownerA, "Rollback Inc"))
			if err != nil {
				return err
			}
			contactID = contact.ID
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)

		contact, err := store.GetContact(ctx, ownerA, contactID)
		require.NoError(t, err)
		assert.Nil(t, contact)
	})
}

// =============================================================================
// Test: Products
// =============================================================================

func testProducts(t *testing.T, store Store) {
	ctx := context.Background()

	recurring := func(name string) domain.ProductFields {
		f, err := domain.ParseProductFields(domain.ProductInput{
			Name:        name,
			Price:       "49.90",
			BillingType: string(domain.BillingTypeRecurring),
		})
		require.NoError(t, err)
		return f
	}

	t.Run("create, get, list", func(t *testing.T) {
		product, err := store.CreateProduct(ctx, ownerA, recurring("Maintenance"))
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, domain.BillingTypeRecurring, product.BillingType)
		require.NotNil(t, product.RecurringInterval)
		assert.Equal(t, domain.RecurringIntervalMonthly, *product.RecurringInterval)
		assert.Nil(t, product.DepositType)

		got, err := store.GetProduct(ctx, ownerA, product.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 49.90, got.Price)

		other, err := store.GetProduct(ctx, ownerB, product.ID)
		require.NoError(t, err)
		assert.Nil(t, other)

		list, err := store.ListProducts(ctx, ownerA)
		require.NoError(t, err)
		assert.NotEmpty(t, list)
	})

	t.Run("update replaces billing fields", func(t *testing.T) {
		product, err := store.CreateProduct(ctx, ownerA, recurring("Hosting"))
		require.NoError(t, err)

		fields, err := domain.ParseProductFields(domain.ProductInput{
			Name:           "Hosting",
			Price:          "1200",
			DepositEnabled: true,
			DepositType:    string(domain.DepositTypePercentage),
			DepositValue:   "30",
		})
		require.NoError(t, err)

		updated, err := store.UpdateProduct(ctx, ownerA, product.ID, fields)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.BillingTypeOneTime, updated.BillingType)
		assert.Nil(t, updated.RecurringInterval)
		require.NotNil(t, updated.DepositType)
		assert.Equal(t, domain.DepositTypePercentage, *updated.DepositType)
		require.NotNil(t, updated.DepositValue)
		assert.Equal(t, 30.0, *updated.DepositValue)

		notMine, err := store.UpdateProduct(ctx, ownerB, product.ID, fields)
		require.NoError(t, err)
		assert.Nil(t, notMine)
	})

	t.Run("delete is scoped by owner", func(t *testing.T) {
		product, err := store.CreateProduct(ctx, ownerA, recurring("Support"))
		require.NoError(t, err)

		deleted, err := store.DeleteProduct(ctx, ownerB, product.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = store.DeleteProduct(ctx, ownerA, product.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}

// =============================================================================
// Test: Contact documents
// =============================================================================

func testContactDocuments(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create, list, get and delete", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Doc", "Holder"))

		document, err := store.CreateContactDocument(ctx, CreateContactDocumentInput{
			ContactID:   contact.ID,
			OwnerID:     ownerA,
			Name:        "devis.pdf",
			Key:         fmt.Sprintf("contacts/%s/%s.pdf", contact.ID, uuid.NewString()),
			Size:        2048,
			ContentType: "application/pdf",
			Metadata:    map[string]any{"declared_type": "application/pdf"},
		})
		require.NoError(t, err)
		require.NotNil(t, document)

		list, err := store.ListContactDocuments(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, document.Key, list[0].Key)

		hidden, err := store.ListContactDocuments(ctx, ownerB, contact.ID)
		require.NoError(t, err)
		assert.Empty(t, hidden)

		got, err := store.GetContactDocument(ctx, ownerA, document.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(2048), got.Size)

		deleted, err := store.DeleteContactDocument(ctx, ownerA, document.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err = store.GetContactDocument(ctx, ownerA, document.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("documents cascade with their contact", func(t *testing.T) {
		contact := mustCreateContact(t, store, buildTestContact(ownerA, "Doc", "Cascade"))
		_, err := store.CreateContactDocument(ctx, CreateContactDocumentInput{
			ContactID:   contact.ID,
			OwnerID:     ownerA,
			Name:        "photo.png",
			Key:         fmt.Sprintf("contacts/%s/%s.png", contact.ID, uuid.NewString()),
			Size:        10,
			ContentType: "image/png",
		})
		require.NoError(t, err)

		deleted, err := store.DeleteContact(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		list, err := store.ListContactDocuments(ctx, ownerA, contact.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

// =============================================================================
// Test: Orphaned objects
// =============================================================================

func testOrphanedObjects(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("record, retry and abandon", func(t *testing.T) {
		keys := []string{"contacts/x/" + uuid.NewString() + ".pdf", "contacts/x/" + uuid.NewString() + ".png"}
		require.NoError(t, store.RecordOrphanedObjects(ctx, "contact_delete", keys, "connection refused"))

		// Recording the same key twice is idempotent
		require.NoError(t, store.RecordOrphanedObjects(ctx, "document_delete", keys[:1], "timeout"))

		pending, err := store.GetPendingOrphanedObjects(ctx, 100)
		require.NoError(t, err)

		byKey := map[string]uint64{}
		for _, o := range pending {
			byKey[o.Key] = o.ID
		}
		require.Contains(t, byKey, keys[0])
		require.Contains(t, byKey, keys[1])

		require.NoError(t, store.MarkOrphanedObjectFailed(ctx, byKey[keys[0]], "still down", 2))
		require.NoError(t, store.MarkOrphanedObjectFailed(ctx, byKey[keys[0]], "still down", 2))
		require.NoError(t, store.DeleteOrphanedObject(ctx, byKey[keys[1]]))

		pending, err = store.GetPendingOrphanedObjects(ctx, 100)
		require.NoError(t, err)
		for _, o := range pending {
			assert.NotEqual(t, keys[0], o.Key, "abandoned object must not be retried")
			assert.NotEqual(t, keys[1], o.Key, "deleted object must not be retried")
		}
	})

	t.Run("empty key list is a no-op", func(t *testing.T) {
		assert.NoError(t, store.RecordOrphanedObjects(ctx, "contact_delete", nil, "x"))
	})
}

// RunStoreTests runs all store tests against the provided store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Contacts", testContacts},
		{"ContactEvents", testContactEvents},
		{"Transaction", testTransaction},
		{"Products", testProducts},
		{"ContactDocuments", testContactDocuments},
		{"OrphanedObjects", testOrphanedObjects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
