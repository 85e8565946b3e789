package messaging

import (
	"context"

	"github.com/feral-file/ff-crm/internal/domain"
)

// Publisher defines the interface for broadcasting view invalidations to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishInvalidation announces that an owner's cached routes are stale
	PublishInvalidation(ctx context.Context, event *domain.ViewInvalidation) error
	// Close closes the connection
	Close()
}
