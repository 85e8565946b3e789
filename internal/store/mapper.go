package store

import (
	"fmt"

	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/store/schema"
)

func toDomainContact(c *schema.Contact) *domain.Contact {
	return &domain.Contact{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Type:      domain.ContactType(c.Type),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Address:   c.Address,
		Status:    domain.ContactStatus(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// contactColumns maps editable fields to their columns
func contactColumns(fields domain.ContactFields, status domain.ContactStatus) map[string]any {
	return map[string]any{
		"type":       string(fields.Type),
		"first_name": fields.FirstName,
		"last_name":  fields.LastName,
		"email":      fields.Email,
		"phone":      fields.Phone,
		"company":    fields.Company,
		"address":    fields.Address,
		"status":     string(status),
	}
}

// toSchemaEvent flattens a payload into the nullable event columns
func toSchemaEvent(input CreateContactEventInput) (*schema.ContactEvent, error) {
	event := &schema.ContactEvent{
		ContactID: input.ContactID,
		OwnerID:   input.OwnerID,
		CreatedAt: input.CreatedAt,
	}

	switch p := input.Payload.(type) {
	case domain.CreatedPayload:
	case domain.StatusChangePayload:
		from, to := string(p.From), string(p.To)
		event.FromStatus = &from
		event.ToStatus = &to
	case domain.NotePayload:
		content := p.Content
		event.Content = &content
	default:
		return nil, fmt.Errorf("%w: unsupported event payload %T", domain.ErrInvalidArgument, input.Payload)
	}
	event.Type = string(input.Payload.EventType())

	return event, nil
}

func toDomainEvent(e *schema.ContactEvent) (domain.ContactEvent, error) {
	event := domain.ContactEvent{
		ID:        e.ID,
		Seq:       e.Seq,
		ContactID: e.ContactID,
		OwnerID:   e.OwnerID,
		CreatedAt: e.CreatedAt,
	}

	switch domain.ContactEventType(e.Type) {
	case domain.ContactEventTypeCreated:
		event.Payload = domain.CreatedPayload{}
	case domain.ContactEventTypeStatusChange:
		if e.FromStatus == nil || e.ToStatus == nil {
			return domain.ContactEvent{}, fmt.Errorf("status change event %s has no statuses", e.ID)
		}
		event.Payload = domain.StatusChangePayload{
			From: domain.ContactStatus(*e.FromStatus),
			To:   domain.ContactStatus(*e.ToStatus),
		}
	case domain.ContactEventTypeNote:
		if e.Content == nil {
			return domain.ContactEvent{}, fmt.Errorf("note event %s has no content", e.ID)
		}
		event.Payload = domain.NotePayload{Content: *e.Content}
	default:
		return domain.ContactEvent{}, fmt.Errorf("unknown event type %q", e.Type)
	}

	return event, nil
}

func toDomainProduct(p *schema.Product) *domain.Product {
	product := &domain.Product{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		BillingType:    domain.BillingType(p.BillingType),
		DepositEnabled: p.DepositEnabled,
		DepositValue:   p.DepositValue,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.RecurringInterval != nil {
		interval := domain.RecurringInterval(*p.RecurringInterval)
		product.RecurringInterval = &interval
	}
	if p.DepositType != nil {
		depositType := domain.DepositType(*p.DepositType)
		product.DepositType = &depositType
	}
	return product
}

func productColumns(fields domain.ProductFields) map[string]any {
	var interval, depositType *string
	if fields.RecurringInterval != nil {
		v := string(*fields.RecurringInterval)
		interval = &v
	}
	if fields.DepositType != nil {
		v := string(*fields.DepositType)
		depositType = &v
	}
	return map[string]any{
		"name":               fields.Name,
		"description":        fields.Description,
		"price":              fields.Price,
		"billing_type":       string(fields.BillingType),
		"recurring_interval": interval,
		"deposit_enabled":    fields.DepositEnabled,
		"deposit_type":       depositType,
		"deposit_value":      fields.DepositValue,
	}
}

func toDomainDocument(d *schema.ContactDocument) *domain.ContactDocument {
	return &domain.ContactDocument{
		ID:          d.ID,
		ContactID:   d.ContactID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Key:         d.Key,
		Size:        d.Size,
		ContentType: d.ContentType,
		CreatedAt:   d.CreatedAt,
	}
}
