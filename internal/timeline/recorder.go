package timeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/store"
)

// EventWriter appends contact events. Pass the transaction-bound store so the
// event commits or rolls back together with the mutation it documents.
type EventWriter interface {
	CreateContactEvent(ctx context.Context, input store.CreateContactEventInput) (*domain.ContactEvent, error)
}

// Recorder appends exactly one audit event per qualifying contact mutation.
// Errors are returned untouched so that the enclosing transaction aborts.
//
//go:generate mockgen -source=recorder.go -destination=../mocks/recorder.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	// RecordCreated appends a CREATED event for a freshly inserted contact
	RecordCreated(ctx context.Context, w EventWriter, contact *domain.Contact, actor auth.Actor) (*domain.ContactEvent, error)
	// RecordStatusChange appends a STATUS_CHANGE event. Callers only invoke it when from != to.
	RecordStatusChange(ctx context.Context, w EventWriter, contact *domain.Contact, from, to domain.ContactStatus, actor auth.Actor) (*domain.ContactEvent, error)
	// RecordNote appends a NOTE event; blank content fails with domain.ErrInvalidArgument
	RecordNote(ctx context.Context, w EventWriter, contactID string, content string, actor auth.Actor) (*domain.ContactEvent, error)
}

type recorder struct {
	clock adapter.Clock
}

// NewRecorder creates a new event recorder
func NewRecorder(clock adapter.Clock) Recorder {
	return &recorder{clock: clock}
}

func (r *recorder) RecordCreated(ctx context.Context, w EventWriter, contact *domain.Contact, actor auth.Actor) (*domain.ContactEvent, error) {
	if contact == nil {
		return nil, fmt.Errorf("%w: contact is required", domain.ErrInvalidArgument)
	}
	return r.append(ctx, w, contact.ID, actor, domain.CreatedPayload{})
}

func (r *recorder) RecordStatusChange(ctx context.Context, w EventWriter, contact *domain.Contact, from, to domain.ContactStatus, actor auth.Actor) (*domain.ContactEvent, error) {
	if contact == nil {
		return nil, fmt.Errorf("%w: contact is required", domain.ErrInvalidArgument)
	}
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: invalid status transition %q -> %q", domain.ErrInvalidArgument, from, to)
	}
	if from == to {
		return nil, fmt.Errorf("%w: status %q did not change", domain.ErrInvalidArgument, from)
	}
	return r.append(ctx, w, contact.ID, actor, domain.StatusChangePayload{From: from, To: to})
}

func (r *recorder) RecordNote(ctx context.Context, w EventWriter, contactID string, content string, actor auth.Actor) (*domain.ContactEvent, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: note content is empty", domain.ErrInvalidArgument)
	}
	return r.append(ctx, w, contactID, actor, domain.NotePayload{Content: content})
}

func (r *recorder) append(ctx context.Context, w EventWriter, contactID string, actor auth.Actor, payload domain.EventPayload) (*domain.ContactEvent, error) {
	if contactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrInvalidArgument)
	}
	if actor.ID == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrInvalidArgument)
	}

	event, err := w.CreateContactEvent(ctx, store.CreateContactEventInput{
		ContactID: contactID,
		OwnerID:   actor.ID,
		Payload:   payload,
		CreatedAt: r.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record %s event: %w", payload.EventType(), err)
	}

	return event, nil
}
