package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes.
// writeMiddleware runs before every mutating route.
func SetupRoutes(router *gin.Engine, handler Handler, writeMiddleware ...gin.HandlerFunc) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), h)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Contacts
		v1.GET("/contacts", handler.ListContacts)
		v1.GET("/contacts/recent", handler.ListRecentContacts)
		v1.POST("/contacts", write(handler.CreateContact)...)
		v1.GET("/contacts/:id", handler.GetContact)
		v1.PUT("/contacts/:id", write(handler.UpdateContact)...)
		v1.DELETE("/contacts/:id", write(handler.DeleteContact)...)

		// Activity trail
		v1.POST("/contacts/:id/notes", write(handler.AddNote)...)
		v1.GET("/contacts/:id/events", handler.ListEvents)

		// Documents
		v1.GET("/contacts/:id/documents", handler.ListDocuments)
		v1.POST("/contacts/:id/documents", write(handler.UploadDocument)...)
		v1.POST("/contacts/:id/documents/presign", write(handler.PresignDocumentUpload)...)
		v1.POST("/contacts/:id/documents/confirm", write(handler.ConfirmDocumentUpload)...)
		v1.GET("/documents/:id", handler.GetDocument)
		v1.DELETE("/documents/:id", write(handler.DeleteDocument)...)

		// Catalog
		v1.GET("/products", handler.ListProducts)
		v1.POST("/products", write(handler.CreateProduct)...)
		v1.GET("/products/:id", handler.GetProduct)
		v1.PUT("/products/:id", write(handler.UpdateProduct)...)
		v1.DELETE("/products/:id", write(handler.DeleteProduct)...)
	}
}
