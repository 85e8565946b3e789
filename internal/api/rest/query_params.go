package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-crm/internal/contact"
	"github.com/feral-file/ff-crm/internal/domain"
)

// ListContactsQuery holds the query of GET /contacts
type ListContactsQuery struct {
	Type *domain.ContactType
}

// ParseListContactsQuery parses ?type=INDIVIDUAL|COMPANY
func ParseListContactsQuery(c *gin.Context) (*ListContactsQuery, error) {
	q := &ListContactsQuery{}

	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		t := domain.ContactType(strings.ToUpper(raw))
		if !t.Valid() {
			return nil, fmt.Errorf("invalid type %q, must be one of INDIVIDUAL, COMPANY", raw)
		}
		q.Type = &t
	}

	return q, nil
}

// Variant identifies the query in the view cache
func (q *ListContactsQuery) Variant() string {
	if q.Type == nil {
		return "all"
	}
	return "type=" + string(*q.Type)
}

// ParseRecentLimit parses ?limit= for GET /contacts/recent
func ParseRecentLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return contact.DefaultRecentLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	if limit < 1 || limit > contact.MaxRecentLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", contact.MaxRecentLimit)
	}

	return limit, nil
}

// ParseSkip parses ?skip= for GET /contacts/:id/events.
// Negative values are left to the service to reject.
func ParseSkip(c *gin.Context) (int, error) {
	raw := c.Query("skip")
	if raw == "" {
		return 0, nil
	}

	skip, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid skip %q", raw)
	}

	return skip, nil
}
