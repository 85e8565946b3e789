package viewcache

import (
	"context"
	"errors"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/messaging"
)

type chain []Invalidator

// Chain returns an Invalidator calling every invalidator in order.
// All of them run even when one fails; the errors are joined.
func Chain(invalidators ...Invalidator) Invalidator {
	c := make(chain, 0, len(invalidators))
	for _, inv := range invalidators {
		if inv != nil {
			c = append(c, inv)
		}
	}
	return c
}

func (c chain) Invalidate(ctx context.Context, ownerID string, routes ...string) error {
	var errs []error
	for _, inv := range c {
		if err := inv.Invalidate(ctx, ownerID, routes...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type broadcaster struct {
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewBroadcaster creates an Invalidator announcing stale routes on the message broker
// so that connected clients and other instances can refresh their views
func NewBroadcaster(publisher messaging.Publisher, clock adapter.Clock) Invalidator {
	return &broadcaster{publisher: publisher, clock: clock}
}

func (b *broadcaster) Invalidate(ctx context.Context, ownerID string, routes ...string) error {
	if len(routes) == 0 {
		return nil
	}
	return b.publisher.PublishInvalidation(ctx, &domain.ViewInvalidation{
		OwnerID: ownerID,
		Routes:  routes,
		At:      b.clock.Now().UTC(),
	})
}
