package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/api/shared/dto"
	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/contact"
	"github.com/feral-file/ff-crm/internal/document"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/product"
	"github.com/feral-file/ff-crm/internal/viewcache"
)

const jsonContentType = "application/json; charset=utf-8"

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListContacts lists the caller's contacts
	// GET /api/v1/contacts?type=<INDIVIDUAL|COMPANY>
	ListContacts(c *gin.Context)

	// ListRecentContacts lists the latest contacts for the dashboard
	// GET /api/v1/contacts/recent?limit=<limit>
	ListRecentContacts(c *gin.Context)

	// GetContact returns a contact with the first page of its activity trail
	// GET /api/v1/contacts/:id
	GetContact(c *gin.Context)

	// CreateContact creates a LEAD contact
	// POST /api/v1/contacts
	CreateContact(c *gin.Context)

	// UpdateContact overwrites a contact's fields and status
	// PUT /api/v1/contacts/:id
	UpdateContact(c *gin.Context)

	// DeleteContact deletes a contact with its events and documents
	// DELETE /api/v1/contacts/:id
	DeleteContact(c *gin.Context)

	// AddNote appends a note to a contact's trail
	// POST /api/v1/contacts/:id/notes
	AddNote(c *gin.Context)

	// ListEvents returns the next page of a contact's trail
	// GET /api/v1/contacts/:id/events?skip=<skip>
	ListEvents(c *gin.Context)

	// ListDocuments lists a contact's documents
	// GET /api/v1/contacts/:id/documents
	ListDocuments(c *gin.Context)

	// UploadDocument attaches a multipart "file" to a contact
	// POST /api/v1/contacts/:id/documents
	UploadDocument(c *gin.Context)

	// PresignDocumentUpload returns a URL to upload a file straight to storage
	// POST /api/v1/contacts/:id/documents/presign
	PresignDocumentUpload(c *gin.Context)

	// ConfirmDocumentUpload attaches a file uploaded with a presigned URL
	// POST /api/v1/contacts/:id/documents/confirm
	ConfirmDocumentUpload(c *gin.Context)

	// GetDocument returns a document with a temporary read URL
	// GET /api/v1/documents/:id
	GetDocument(c *gin.Context)

	// DeleteDocument removes a document
	// DELETE /api/v1/documents/:id
	DeleteDocument(c *gin.Context)

	// ListProducts lists the caller's catalog
	// GET /api/v1/products
	ListProducts(c *gin.Context)

	// GetProduct returns one product
	// GET /api/v1/products/:id
	GetProduct(c *gin.Context)

	// CreateProduct adds a product to the catalog
	// POST /api/v1/products
	CreateProduct(c *gin.Context)

	// UpdateProduct overwrites a product
	// PUT /api/v1/products/:id
	UpdateProduct(c *gin.Context)

	// DeleteProduct removes a product
	// DELETE /api/v1/products/:id
	DeleteProduct(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	contacts  contact.Service
	products  product.Service
	documents document.Service
	resolver  auth.Resolver
	cache     viewcache.Cache
	json      adapter.JSON
}

// NewHandler creates a new REST API handler
func NewHandler(
	contacts contact.Service,
	products product.Service,
	documents document.Service,
	resolver auth.Resolver,
	cache viewcache.Cache,
	json adapter.JSON,
) Handler {
	if cache == nil {
		cache = viewcache.NewNopCache()
	}
	return &handler{
		contacts:  contacts,
		products:  products,
		documents: documents,
		resolver:  resolver,
		cache:     cache,
		json:      json,
	}
}

// serveView responds with the cached view of route and variant, or loads,
// renders and caches it. Anonymous views are never cached. The write back
// carries the generation read before loading, so a view loaded across a
// concurrent invalidation is discarded by the cache.
func (h *handler) serveView(c *gin.Context, route, variant string, load func(ctx context.Context) (any, error)) {
	ctx := c.Request.Context()
	actor, cacheable := h.resolver.ResolveActor(ctx)

	writeBack := cacheable
	var generation int64
	if cacheable {
		lookup, err := h.cache.Get(ctx, actor.ID, route, variant)
		switch {
		case err != nil:
			// Generation unknown, so the rendered view must not be stored
			logger.WarnCtx(ctx, "Failed to read view cache", zap.String("route", route), zap.Error(err))
			writeBack = false
		case lookup.Found:
			c.Header("X-View-Cache", "HIT")
			c.Data(http.StatusOK, jsonContentType, lookup.Data)
			return
		default:
			generation = lookup.Generation
		}
	}

	view, err := load(ctx)
	if err != nil {
		respondError(c, err, zap.String("route", route))
		return
	}

	data, err := h.json.Marshal(view)
	if err != nil {
		respondError(c, fmt.Errorf("failed to render view: %w", err))
		return
	}

	if writeBack {
		if err := h.cache.Set(ctx, actor.ID, route, variant, generation, data); err != nil {
			logger.WarnCtx(ctx, "Failed to write view cache", zap.String("route", route), zap.Error(err))
		}
	}
	if cacheable {
		c.Header("X-View-Cache", "MISS")
	}

	c.Data(http.StatusOK, jsonContentType, data)
}

func (h *handler) ListContacts(c *gin.Context) {
	query, err := ParseListContactsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	h.serveView(c, viewcache.RouteContacts, query.Variant(), func(ctx context.Context) (any, error) {
		contacts, err := h.contacts.ListAll(ctx, query.Type)
		if err != nil {
			return nil, err
		}
		return dto.MapContactsToDTO(contacts), nil
	})
}

func (h *handler) ListRecentContacts(c *gin.Context) {
	limit, err := ParseRecentLimit(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	h.serveView(c, viewcache.RouteIndex, fmt.Sprintf("recent:limit=%d", limit), func(ctx context.Context) (any, error) {
		contacts, err := h.contacts.ListRecent(ctx, limit)
		if err != nil {
			return nil, err
		}
		return dto.MapContactsToDTO(contacts), nil
	})
}

func (h *handler) GetContact(c *gin.Context) {
	contactID := c.Param("id")

	h.serveView(c, viewcache.ContactRoute(contactID), "detail", func(ctx context.Context) (any, error) {
		detail, err := h.contacts.GetByID(ctx, contactID)
		if err != nil {
			return nil, err
		}
		return dto.ContactDetailResponse{
			Contact: dto.MapContactToDTO(detail.Contact),
			Events:  dto.MapEventPageToDTO(detail.Events, 0),
		}, nil
	})
}

func (h *handler) CreateContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	created, err := h.contacts.Create(c.Request.Context(), req.Fields())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MapContactToDTO(created))
}

func (h *handler) UpdateContact(c *gin.Context) {
	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	updated, err := h.contacts.Update(c.Request.Context(), c.Param("id"), req.Fields(), domain.ContactStatus(req.Status))
	if err != nil {
		respondError(c, err, zap.String("contactID", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, dto.MapContactToDTO(updated))
}

func (h *handler) DeleteContact(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, zap.String("contactID", c.Param("id")))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) AddNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	event, err := h.contacts.AddNote(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err, zap.String("contactID", c.Param("id")))
		return
	}

	c.JSON(http.StatusCreated, dto.MapEventToDTO(event))
}

func (h *handler) ListEvents(c *gin.Context) {
	skip, err := ParseSkip(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	contactID := c.Param("id")
	h.serveView(c, viewcache.ContactRoute(contactID), fmt.Sprintf("events:skip=%d", skip), func(ctx context.Context) (any, error) {
		page, err := h.contacts.NextEvents(ctx, contactID, skip)
		if err != nil {
			return nil, err
		}
		return dto.MapEventPageToDTO(page, skip), nil
	})
}

func (h *handler) ListDocuments(c *gin.Context) {
	contactID := c.Param("id")

	h.serveView(c, viewcache.ContactRoute(contactID), "documents", func(ctx context.Context) (any, error) {
		docs, err := h.documents.List(ctx, contactID)
		if err != nil {
			return nil, err
		}
		return dto.MapDocumentsToDTO(docs), nil
	})
}

func (h *handler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondValidationError(c, "file: a multipart file is required")
		return
	}
	if fileHeader.Size > domain.MaxDocumentSize {
		respondValidationError(c, fmt.Sprintf("file: file exceeds %d MiB", domain.MaxDocumentSize>>20))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondBadRequest(c, "Failed to read upload", err.Error())
		return
	}
	defer file.Close()

	doc, err := h.documents.Upload(c.Request.Context(), document.UploadInput{
		ContactID:   c.Param("id"),
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		respondError(c, err, zap.String("contactID", c.Param("id")))
		return
	}

	c.JSON(http.StatusCreated, dto.MapDocumentToDTO(doc))
}

func (h *handler) PresignDocumentUpload(c *gin.Context) {
	var req dto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ticket, err := h.documents.PresignUpload(c.Request.Context(), c.Param("id"), req.FileName, req.ContentType)
	if err != nil {
		respondError(c, err, zap.String("contactID", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, dto.UploadTicketResponse{
		Key:       ticket.Key,
		URL:       ticket.URL,
		ExpiresAt: ticket.ExpiresAt,
	})
}

func (h *handler) ConfirmDocumentUpload(c *gin.Context) {
	var req dto.ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	doc, err := h.documents.ConfirmUpload(c.Request.Context(), document.ConfirmInput{
		ContactID:   c.Param("id"),
		Key:         req.Key,
		Name:        req.Name,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	if err != nil {
		respondError(c, err, zap.String("contactID", c.Param("id")))
		return
	}

	c.JSON(http.StatusCreated, dto.MapDocumentToDTO(doc))
}

// GetDocument is not cached: the read URL expires
func (h *handler) GetDocument(c *gin.Context) {
	view, err := h.documents.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, zap.String("documentID", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, dto.MapDocumentViewToDTO(view))
}

func (h *handler) DeleteDocument(c *gin.Context) {
	if err := h.documents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, zap.String("documentID", c.Param("id")))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) ListProducts(c *gin.Context) {
	h.serveView(c, viewcache.RouteCatalog, "products", func(ctx context.Context) (any, error) {
		products, err := h.products.List(ctx)
		if err != nil {
			return nil, err
		}
		return dto.MapProductsToDTO(products), nil
	})
}

func (h *handler) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	h.serveView(c, viewcache.RouteCatalog, "product:"+productID, func(ctx context.Context) (any, error) {
		p, err := h.products.Get(ctx, productID)
		if err != nil {
			return nil, err
		}
		return dto.MapProductToDTO(p), nil
	})
}

func (h *handler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	created, err := h.products.Create(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProductToDTO(created))
}

func (h *handler) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	updated, err := h.products.Update(c.Request.Context(), c.Param("id"), req.Input())
	if err != nil {
		respondError(c, err, zap.String("productID", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToDTO(updated))
}

func (h *handler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, zap.String("productID", c.Param("id")))
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-crm-api",
	})
}
