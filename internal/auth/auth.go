package auth

import (
	"context"
	"strings"
)

// Actor is the resolved identity performing an operation
type Actor struct {
	// ID is the subject of the verified token and the owner key of every record
	ID string
}

type actorKey struct{}

// WithActor returns a copy of ctx carrying actor
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// FromContext returns the actor stored in ctx, if any
func FromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	actor, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || strings.TrimSpace(actor.ID) == "" {
		return Actor{}, false
	}
	return actor, true
}

// Resolver resolves the identity calling into the services.
// A false result means the caller is anonymous.
//
//go:generate mockgen -source=auth.go -destination=../mocks/auth.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	ResolveActor(ctx context.Context) (Actor, bool)
}

type contextResolver struct{}

// NewContextResolver creates a resolver reading the actor placed in the
// request context by the authentication middleware
func NewContextResolver() Resolver {
	return &contextResolver{}
}

func (r *contextResolver) ResolveActor(ctx context.Context) (Actor, bool) {
	return FromContext(ctx)
}
