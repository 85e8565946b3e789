package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/contact"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/mocks"
	"github.com/feral-file/ff-crm/internal/store"
	"github.com/feral-file/ff-crm/internal/timeline"
	"github.com/feral-file/ff-crm/internal/viewcache"
)

const (
	testOwner     = "user-1"
	testContactID = "6f1c3a8e-3c57-4a55-9a3a-0d2b1b0c8f10"
)

var testActor = auth.Actor{ID: testOwner}

type testServiceMocks struct {
	store       *mocks.MockStore
	recorder    *mocks.MockRecorder
	paginator   *mocks.MockPaginator
	resolver    *mocks.MockResolver
	invalidator *mocks.MockInvalidator
	objects     *mocks.MockObjectStorage
}

func setupTestService(t *testing.T) (contact.Service, *testServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &testServiceMocks{
		store:       mocks.NewMockStore(ctrl),
		recorder:    mocks.NewMockRecorder(ctrl),
		paginator:   mocks.NewMockPaginator(ctrl),
		resolver:    mocks.NewMockResolver(ctrl),
		invalidator: mocks.NewMockInvalidator(ctrl),
		objects:     mocks.NewMockObjectStorage(ctrl),
	}
	svc := contact.NewService(m.store, m.recorder, m.paginator, m.resolver, m.invalidator, m.objects, nil)
	return svc, m
}

// expectTransaction runs the transaction callback against the same mock store
func (m *testServiceMocks) expectTransaction() {
	m.store.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx store.Store) error) error {
			return fn(m.store)
		})
}

func (m *testServiceMocks) signedIn() {
	m.resolver.EXPECT().ResolveActor(gomock.Any()).Return(testActor, true)
}

func (m *testServiceMocks) anonymous() {
	m.resolver.EXPECT().ResolveActor(gomock.Any()).Return(auth.Actor{}, false)
}

func jeanDupont() domain.ContactFields {
	return domain.ContactFields{
		FirstName: domain.StringPtr(" Jean "),
		LastName:  domain.StringPtr("Dupont"),
		Email:     domain.StringPtr("jean@x.fr"),
	}
}

func testContact(status domain.ContactStatus) *domain.Contact {
	return &domain.Contact{
		ID:        testContactID,
		OwnerID:   testOwner,
		Type:      domain.ContactTypeIndividual,
		FirstName: domain.StringPtr("Jean"),
		LastName:  domain.StringPtr("Dupont"),
		Email:     domain.StringPtr("jean@x.fr"),
		Status:    status,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()
	saved := testContact(domain.ContactStatusLead)

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().
		CreateContact(ctx, store.CreateContactInput{
			OwnerID: testOwner,
			Fields:  jeanDupont().Normalize(),
			Status:  domain.ContactStatusLead,
		}).
		Return(saved, nil)
	m.recorder.EXPECT().
		RecordCreated(ctx, m.store, saved, testActor).
		Return(&domain.ContactEvent{ContactID: saved.ID, Payload: domain.CreatedPayload{}}, nil)
	m.invalidator.EXPECT().
		Invalidate(ctx, testOwner, viewcache.RouteIndex, viewcache.RouteContacts, viewcache.ContactRoute(saved.ID)).
		Return(nil)

	got, err := svc.Create(ctx, jeanDupont())
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestCreate_Anonymous(t *testing.T) {
	svc, m := setupTestService(t)
	m.anonymous()

	_, err := svc.Create(context.Background(), jeanDupont())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		fields domain.ContactFields
		field  string
	}{
		{
			name:   "no name and no company",
			fields: domain.ContactFields{Email: domain.StringPtr("a@b.fr")},
			field:  "name",
		},
		{
			name:   "first name only",
			fields: domain.ContactFields{FirstName: domain.StringPtr("Jean")},
			field:  "name",
		},
		{
			name:   "blank company",
			fields: domain.ContactFields{Type: domain.ContactTypeCompany, Company: domain.StringPtr("  ")},
			field:  "company",
		},
		{
			name: "invalid email",
			fields: domain.ContactFields{
				Company: domain.StringPtr("ACME"),
				Email:   domain.StringPtr("not-an-email"),
			},
			field: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupTestService(t)
			m.signedIn()

			_, err := svc.Create(context.Background(), tt.fields)
			require.ErrorIs(t, err, domain.ErrValidation)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestCreate_EventFailureAbortsTransaction(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()
	eventErr := errors.New("connection lost")

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().CreateContact(ctx, gomock.Any()).Return(testContact(domain.ContactStatusLead), nil)
	m.recorder.EXPECT().RecordCreated(ctx, m.store, gomock.Any(), testActor).Return(nil, eventErr)

	_, err := svc.Create(ctx, jeanDupont())
	require.Error(t, err)
	assert.True(t, domain.IsStoreError(err))
	assert.ErrorIs(t, err, eventErr)
}

func TestCreate_InvalidationFailureIsIgnored(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().CreateContact(ctx, gomock.Any()).Return(testContact(domain.ContactStatusLead), nil)
	m.recorder.EXPECT().RecordCreated(ctx, m.store, gomock.Any(), testActor).Return(&domain.ContactEvent{}, nil)
	m.invalidator.EXPECT().Invalidate(ctx, testOwner, gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.Create(ctx, jeanDupont())
	require.NoError(t, err)
}

func TestUpdate_StatusChange(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.ContactStatus
		wantEvent   bool
		wantWritten domain.ContactStatus
	}{
		{name: "same status records nothing", status: domain.ContactStatusLead, wantWritten: domain.ContactStatusLead},
		{name: "empty status keeps the current one", status: "", wantWritten: domain.ContactStatusLead},
		{name: "new status records a transition", status: domain.ContactStatusClient, wantEvent: true, wantWritten: domain.ContactStatusClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupTestService(t)
			ctx := context.Background()
			existing := testContact(domain.ContactStatusLead)
			updated := testContact(tt.wantWritten)
			updated.Phone = domain.StringPtr("+33 1 23 45 67 89")

			fields := jeanDupont()
			fields.Phone = domain.StringPtr("+33 1 23 45 67 89")

			m.signedIn()
			m.expectTransaction()
			m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(existing, nil)
			m.store.EXPECT().
				UpdateContact(ctx, store.UpdateContactInput{
					OwnerID:   testOwner,
					ContactID: testContactID,
					Fields:    fields.Normalize(),
					Status:    tt.wantWritten,
				}).
				Return(updated, nil)
			if tt.wantEvent {
				m.recorder.EXPECT().
					RecordStatusChange(ctx, m.store, updated, domain.ContactStatusLead, domain.ContactStatusClient, testActor).
					Return(&domain.ContactEvent{}, nil)
			}
			m.invalidator.EXPECT().
				Invalidate(ctx, testOwner, viewcache.RouteIndex, viewcache.RouteContacts, viewcache.ContactRoute(testContactID)).
				Return(nil)

			got, err := svc.Update(ctx, testContactID, fields, tt.status)
			require.NoError(t, err)
			assert.Equal(t, updated, got)
		})
	}
}

func TestUpdate_NotOwned(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(nil, nil)

	_, err := svc.Update(ctx, testContactID, jeanDupont(), domain.ContactStatusClient)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, domain.IsStoreError(err))
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc, m := setupTestService(t)
	m.signedIn()

	_, err := svc.Update(context.Background(), testContactID, jeanDupont(), "ARCHIVED")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_Anonymous(t *testing.T) {
	svc, m := setupTestService(t)
	m.anonymous()

	_, err := svc.Update(context.Background(), testContactID, jeanDupont(), domain.ContactStatusClient)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAddNote(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()
	note := &domain.ContactEvent{ContactID: testContactID, Payload: domain.NotePayload{Content: "Follow up next week"}}

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(testContact(domain.ContactStatusLead), nil)
	m.recorder.EXPECT().RecordNote(ctx, m.store, testContactID, "Follow up next week", testActor).Return(note, nil)
	// Only the detail view shows notes
	m.invalidator.EXPECT().Invalidate(ctx, testOwner, viewcache.ContactRoute(testContactID)).Return(nil)

	got, err := svc.AddNote(ctx, testContactID, "  Follow up next week ")
	require.NoError(t, err)
	assert.Equal(t, note, got)
}

func TestAddNote_Blank(t *testing.T) {
	svc, m := setupTestService(t)
	m.signedIn()

	_, err := svc.AddNote(context.Background(), testContactID, " \n\t ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddNote_NotOwned(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(nil, nil)

	_, err := svc.AddNote(ctx, testContactID, "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()
	documents := []domain.ContactDocument{
		{ID: "d1", Key: "contacts/c/a.pdf"},
		{ID: "d2", Key: "contacts/c/b.png"},
	}

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(testContact(domain.ContactStatusLead), nil)
	m.store.EXPECT().ListContactDocuments(ctx, testOwner, testContactID).Return(documents, nil)
	m.store.EXPECT().DeleteContact(ctx, testOwner, testContactID).Return(true, nil)
	m.objects.EXPECT().Delete(ctx, "contacts/c/a.pdf").Return(nil)
	m.objects.EXPECT().Delete(ctx, "contacts/c/b.png").Return(errors.New("storage timeout"))
	m.store.EXPECT().
		RecordOrphanedObjects(ctx, contact.OrphanReasonContactDeleted, []string{"contacts/c/b.png"}, "storage timeout").
		Return(nil)
	m.invalidator.EXPECT().
		Invalidate(ctx, testOwner, viewcache.RouteIndex, viewcache.RouteContacts, viewcache.ContactRoute(testContactID)).
		Return(nil)

	require.NoError(t, svc.Delete(ctx, testContactID))
}

func TestDelete_NotOwned(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(nil, nil)

	assert.ErrorIs(t, svc.Delete(ctx, testContactID), domain.ErrNotFound)
}

func TestDelete_StoreFailure(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()

	m.signedIn()
	m.expectTransaction()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(testContact(domain.ContactStatusLead), nil)
	m.store.EXPECT().ListContactDocuments(ctx, testOwner, testContactID).Return(nil, nil)
	m.store.EXPECT().DeleteContact(ctx, testOwner, testContactID).Return(false, errors.New("deadlock"))

	err := svc.Delete(ctx, testContactID)
	assert.True(t, domain.IsStoreError(err))
}

func TestGetByID(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()
	saved := testContact(domain.ContactStatusLead)
	page := &domain.EventPage{Events: []domain.ContactEvent{{ContactID: saved.ID, Payload: domain.CreatedPayload{}}}}

	m.signedIn()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(saved, nil)
	m.paginator.EXPECT().FirstPage(ctx, testOwner, testContactID).Return(page, nil)

	detail, err := svc.GetByID(ctx, testContactID)
	require.NoError(t, err)
	assert.Equal(t, saved, detail.Contact)
	assert.Equal(t, page, detail.Events)
}

func TestGetByID_NotVisible(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		svc, m := setupTestService(t)
		m.anonymous()

		_, err := svc.GetByID(context.Background(), testContactID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("other owner", func(t *testing.T) {
		svc, m := setupTestService(t)
		m.signedIn()
		m.store.EXPECT().GetContact(gomock.Any(), testOwner, testContactID).Return(nil, nil)

		_, err := svc.GetByID(context.Background(), testContactID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListAll(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()
	companyType := domain.ContactTypeCompany

	m.signedIn()
	m.store.EXPECT().
		ListContacts(ctx, store.ContactFilter{OwnerID: testOwner, Type: &companyType}).
		Return(nil, nil)

	contacts, err := svc.ListAll(ctx, &companyType)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestListAll_Anonymous(t *testing.T) {
	svc, m := setupTestService(t)
	m.anonymous()

	contacts, err := svc.ListAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestListRecent(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: contact.DefaultRecentLimit},
		{name: "explicit", limit: 3, wantLimit: 3},
		{name: "capped", limit: 500, wantLimit: contact.MaxRecentLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupTestService(t)
			m.signedIn()
			m.store.EXPECT().
				ListContacts(gomock.Any(), store.ContactFilter{OwnerID: testOwner, Limit: tt.wantLimit}).
				Return([]domain.Contact{*testContact(domain.ContactStatusLead)}, nil)

			contacts, err := svc.ListRecent(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Len(t, contacts, 1)
		})
	}
}

func TestNextEvents(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()
	page := &domain.EventPage{Events: []domain.ContactEvent{}, HasMore: false}

	m.signedIn()
	m.store.EXPECT().GetContact(ctx, testOwner, testContactID).Return(testContact(domain.ContactStatusLead), nil)
	m.paginator.EXPECT().Page(ctx, testOwner, testContactID, timeline.PageSize).Return(page, nil)

	got, err := svc.NextEvents(ctx, testContactID, timeline.PageSize)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestNextEvents_Invalid(t *testing.T) {
	t.Run("negative skip", func(t *testing.T) {
		svc, m := setupTestService(t)
		m.signedIn()

		_, err := svc.NextEvents(context.Background(), testContactID, -1)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("anonymous gets an empty page", func(t *testing.T) {
		svc, m := setupTestService(t)
		m.anonymous()

		page, err := svc.NextEvents(context.Background(), testContactID, 0)
		require.NoError(t, err)
		assert.Empty(t, page.Events)
		assert.False(t, page.HasMore)
	})
}
