package timeline

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/store"
)

// PageSize is the number of events served per page
const PageSize = 5

// EventReader lists a window of contact events ordered by created_at DESC, seq DESC
type EventReader interface {
	ListContactEvents(ctx context.Context, filter store.ContactEventFilter) ([]domain.ContactEvent, error)
}

// Paginator serves a contact's activity trail newest first in pages of PageSize.
// Ownership of the contact is checked by the caller and again by the reader.
//
//go:generate mockgen -source=paginator.go -destination=../mocks/paginator.go -package=mocks -mock_names=Paginator=MockPaginator
type Paginator interface {
	// FirstPage is Page with skip = 0
	FirstPage(ctx context.Context, ownerID, contactID string) (*domain.EventPage, error)
	// Page returns up to PageSize events after skipping the first skip events.
	// A skip past the end yields an empty page without error.
	Page(ctx context.Context, ownerID, contactID string, skip int) (*domain.EventPage, error)
}

type paginator struct {
	reader EventReader
}

// NewPaginator creates a new event paginator
func NewPaginator(reader EventReader) Paginator {
	return &paginator{reader: reader}
}

func (p *paginator) FirstPage(ctx context.Context, ownerID, contactID string) (*domain.EventPage, error) {
	return p.Page(ctx, ownerID, contactID, 0)
}

func (p *paginator) Page(ctx context.Context, ownerID, contactID string, skip int) (*domain.EventPage, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", domain.ErrInvalidArgument)
	}

	// Fetch one extra row to learn whether another page exists
	events, err := p.reader.ListContactEvents(ctx, store.ContactEventFilter{
		OwnerID:   ownerID,
		ContactID: contactID,
		Limit:     PageSize + 1,
		Offset:    skip,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contact events: %w", err)
	}

	page := &domain.EventPage{Events: events}
	if len(events) > PageSize {
		page.Events = events[:PageSize]
		page.HasMore = true
	}
	if page.Events == nil {
		page.Events = []domain.ContactEvent{}
	}

	return page, nil
}
