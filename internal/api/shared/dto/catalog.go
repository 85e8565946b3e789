package dto

import (
	"time"

	"github.com/feral-file/ff-crm/internal/domain"
)

// ProductResponse is a catalog product
type ProductResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	Price             float64   `json:"price"`
	BillingType       string    `json:"billing_type"`
	RecurringInterval *string   `json:"recurring_interval"`
	DepositEnabled    bool      `json:"deposit_enabled"`
	DepositType       *string   `json:"deposit_type"`
	DepositValue      *float64  `json:"deposit_value"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DocumentResponse is a document attached to a contact
type DocumentResponse struct {
	ID          string    `json:"id"`
	ContactID   string    `json:"contact_id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentViewResponse is a document with a temporary read URL
type DocumentViewResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
	Contact     struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"contact"`
}

// UploadTicketResponse lets a client upload a file straight to storage
type UploadTicketResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapProductToDTO maps a domain product to its response
func MapProductToDTO(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		BillingType:    string(p.BillingType),
		DepositEnabled: p.DepositEnabled,
		DepositValue:   p.DepositValue,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.RecurringInterval != nil {
		v := string(*p.RecurringInterval)
		resp.RecurringInterval = &v
	}
	if p.DepositType != nil {
		v := string(*p.DepositType)
		resp.DepositType = &v
	}
	return resp
}

// MapProductsToDTO maps a list of products
func MapProductsToDTO(products []domain.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, MapProductToDTO(&products[i]))
	}
	return resp
}

// MapDocumentToDTO maps a contact document
func MapDocumentToDTO(d *domain.ContactDocument) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		ContactID:   d.ContactID,
		Name:        d.Name,
		Size:        d.Size,
		ContentType: d.ContentType,
		CreatedAt:   d.CreatedAt,
	}
}

// MapDocumentsToDTO maps a list of documents
func MapDocumentsToDTO(docs []domain.ContactDocument) []DocumentResponse {
	resp := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, MapDocumentToDTO(&docs[i]))
	}
	return resp
}

// MapDocumentViewToDTO maps a resolved document view
func MapDocumentViewToDTO(v *domain.DocumentView) DocumentViewResponse {
	resp := DocumentViewResponse{
		ID:          v.ID,
		Name:        v.Name,
		ContentType: v.ContentType,
		URL:         v.URL,
	}
	resp.Contact.ID = v.Contact.ID
	resp.Contact.DisplayName = (&domain.Contact{
		FirstName: v.Contact.FirstName,
		LastName:  v.Contact.LastName,
		Company:   v.Contact.Company,
	}).DisplayName()
	return resp
}
