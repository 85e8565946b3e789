package domain

import "time"

// ContactEventType identifies the kind of activity recorded on a contact
type ContactEventType string

const (
	ContactEventTypeCreated      ContactEventType = "CREATED"
	ContactEventTypeStatusChange ContactEventType = "STATUS_CHANGE"
	ContactEventTypeNote         ContactEventType = "NOTE"
)

// EventPayload is the type-specific body of a contact event.
// The set of implementations is closed: CreatedPayload, StatusChangePayload and NotePayload.
type EventPayload interface {
	EventType() ContactEventType
	sealed()
}

// CreatedPayload marks the creation of a contact; it carries no data
type CreatedPayload struct{}

// StatusChangePayload records a lifecycle transition
type StatusChangePayload struct {
	From ContactStatus
	To   ContactStatus
}

// NotePayload is a free-text annotation
type NotePayload struct {
	Content string
}

func (CreatedPayload) EventType() ContactEventType      { return ContactEventTypeCreated }
func (StatusChangePayload) EventType() ContactEventType { return ContactEventTypeStatusChange }
func (NotePayload) EventType() ContactEventType         { return ContactEventTypeNote }

func (CreatedPayload) sealed()      {}
func (StatusChangePayload) sealed() {}
func (NotePayload) sealed()         {}

// ContactEvent is one immutable entry of a contact's activity trail
type ContactEvent struct {
	ID        string
	Seq       int64
	ContactID string
	OwnerID   string
	CreatedAt time.Time
	Payload   EventPayload
}

// Type returns the event type derived from the payload
func (e *ContactEvent) Type() ContactEventType {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.EventType()
}

// EventPage is one page of a contact's activity trail, newest first
type EventPage struct {
	Events  []ContactEvent
	HasMore bool
}
