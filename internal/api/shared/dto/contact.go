package dto

import (
	"time"

	"github.com/feral-file/ff-crm/internal/domain"
)

// ContactResponse is a contact as served by the API
type ContactResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	TypeLabel   string    `json:"type_label"`
	DisplayName string    `json:"display_name"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Company     *string   `json:"company"`
	Address     *string   `json:"address"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	StatusColor string    `json:"status_color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactListResponse wraps a list of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int               `json:"total"`
}

// EventResponse is one entry of a contact's activity trail
type EventResponse struct {
	ID        string    `json:"id"`
	Seq       int64     `json:"seq"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`
	From      *string   `json:"from,omitempty"`
	To        *string   `json:"to,omitempty"`
	Content   *string   `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPageResponse is a page of events, newest first.
// NextSkip is set when another page exists.
type EventPageResponse struct {
	Events   []EventResponse `json:"events"`
	HasMore  bool            `json:"has_more"`
	NextSkip *int            `json:"next_skip,omitempty"`
}

// ContactDetailResponse is a contact with the first page of its events
type ContactDetailResponse struct {
	Contact ContactResponse   `json:"contact"`
	Events  EventPageResponse `json:"events"`
}

// MapContactToDTO maps a domain contact to its response
func MapContactToDTO(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		Type:        string(c.Type),
		TypeLabel:   domain.ContactTypeLabel(c.Type),
		DisplayName: c.DisplayName(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		Address:     c.Address,
		Status:      string(c.Status),
		StatusLabel: domain.StatusLabel(c.Status),
		StatusColor: domain.StatusColor(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// MapContactsToDTO maps a list of contacts
func MapContactsToDTO(contacts []domain.Contact) ContactListResponse {
	resp := ContactListResponse{
		Contacts: make([]ContactResponse, 0, len(contacts)),
		Total:    len(contacts),
	}
	for i := range contacts {
		resp.Contacts = append(resp.Contacts, MapContactToDTO(&contacts[i]))
	}
	return resp
}

// MapEventToDTO maps a contact event, flattening its payload
func MapEventToDTO(e *domain.ContactEvent) EventResponse {
	resp := EventResponse{
		ID:        e.ID,
		Seq:       e.Seq,
		Type:      string(e.Type()),
		Label:     domain.EventLabel(e.Type()),
		CreatedAt: e.CreatedAt,
	}

	switch p := e.Payload.(type) {
	case domain.StatusChangePayload:
		from, to := string(p.From), string(p.To)
		resp.From = &from
		resp.To = &to
	case domain.NotePayload:
		content := p.Content
		resp.Content = &content
	}

	return resp
}

// MapEventPageToDTO maps a page of events served after skip events
func MapEventPageToDTO(page *domain.EventPage, skip int) EventPageResponse {
	resp := EventPageResponse{
		Events:  make([]EventResponse, 0, len(page.Events)),
		HasMore: page.HasMore,
	}
	for i := range page.Events {
		resp.Events = append(resp.Events, MapEventToDTO(&page.Events[i]))
	}
	if page.HasMore {
		next := skip + len(page.Events)
		resp.NextSkip = &next
	}
	return resp
}
