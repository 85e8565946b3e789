package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/feral-file/ff-crm/internal/domain"
)

// ContactRequest is the body of contact create and update requests
type ContactRequest struct {
	Type      string  `json:"type" binding:"omitempty,oneof=INDIVIDUAL COMPANY"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Address   *string `json:"address"`
}

// Fields converts the request into contact fields
func (r ContactRequest) Fields() domain.ContactFields {
	return domain.ContactFields{
		Type:      domain.ContactType(strings.TrimSpace(r.Type)),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Address:   r.Address,
	}
}

// UpdateContactRequest is the body of PUT /contacts/:id.
// An omitted status keeps the current one.
type UpdateContactRequest struct {
	ContactRequest
	Status string `json:"status" binding:"omitempty,oneof=LEAD PROSPECT CLIENT INACTIVE"`
}

// NoteRequest is the body of POST /contacts/:id/notes
type NoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// NumberString accepts a JSON number or string and keeps its text,
// so that non-numeric input reaches the validation layer
type NumberString string

func (n *NumberString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}
	*n = NumberString(data)
	return nil
}

// ProductRequest is the body of product create and update requests
type ProductRequest struct {
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Price             NumberString `json:"price"`
	BillingType       string       `json:"billing_type"`
	RecurringInterval string       `json:"recurring_interval"`
	DepositEnabled    bool         `json:"deposit_enabled"`
	DepositType       string       `json:"deposit_type"`
	DepositValue      NumberString `json:"deposit_value"`
}

// Input converts the request into the raw product input
func (r ProductRequest) Input() domain.ProductInput {
	return domain.ProductInput{
		Name:              r.Name,
		Description:       r.Description,
		Price:             string(r.Price),
		BillingType:       r.BillingType,
		RecurringInterval: r.RecurringInterval,
		DepositEnabled:    r.DepositEnabled,
		DepositType:       r.DepositType,
		DepositValue:      string(r.DepositValue),
	}
}

// PresignUploadRequest is the body of POST /contacts/:id/documents/presign
type PresignUploadRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// ConfirmUploadRequest is the body of POST /contacts/:id/documents/confirm
type ConfirmUploadRequest struct {
	Key         string `json:"key" binding:"required"`
	Name        string `json:"name"`
	ContentType string `json:"content_type" binding:"required"`
	Size        int64  `json:"size" binding:"required,gt=0"`
}
