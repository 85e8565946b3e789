package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/store"
	"github.com/feral-file/ff-crm/internal/viewcache"
)

// Service manages the actor's product catalog
//
//go:generate mockgen -source=service.go -destination=../mocks/product_service.go -package=mocks -mock_names=Service=MockProductService
type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, productID string, in domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
}

type service struct {
	store       store.Store
	resolver    auth.Resolver
	invalidator viewcache.Invalidator
}

// NewService creates a new product service
func NewService(st store.Store, resolver auth.Resolver, invalidator viewcache.Invalidator) Service {
	return &service{
		store:       st,
		resolver:    resolver,
		invalidator: invalidator,
	}
}

func (s *service) List(ctx context.Context) ([]domain.Product, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return []domain.Product{}, nil
	}

	products, err := s.store.ListProducts(ctx, actor.ID)
	if err != nil {
		return nil, domain.NewStoreError("list products", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, productID string) (*domain.Product, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrNotFound
	}

	p, err := s.store.GetProduct(ctx, actor.ID, productID)
	if err != nil {
		return nil, domain.NewStoreError("get product", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields, err := domain.ParseProductFields(in)
	if err != nil {
		return nil, err
	}

	p, err := s.store.CreateProduct(ctx, actor.ID, fields)
	if err != nil {
		return nil, domain.NewStoreError("create product", err)
	}

	s.invalidate(ctx, actor.ID)
	return p, nil
}

func (s *service) Update(ctx context.Context, productID string, in domain.ProductInput) (*domain.Product, error) {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields, err := domain.ParseProductFields(in)
	if err != nil {
		return nil, err
	}

	p, err := s.store.UpdateProduct(ctx, actor.ID, productID, fields)
	if err != nil {
		return nil, domain.NewStoreError("update product", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	s.invalidate(ctx, actor.ID)
	return p, nil
}

func (s *service) Delete(ctx context.Context, productID string) error {
	actor, ok := s.resolver.ResolveActor(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.store.DeleteProduct(ctx, actor.ID, productID)
	if err != nil {
		return domain.NewStoreError("delete product", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	s.invalidate(ctx, actor.ID)
	return nil
}

func (s *service) invalidate(ctx context.Context, ownerID string) {
	if err := s.invalidator.Invalidate(ctx, ownerID, viewcache.RouteCatalog); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate catalog view", zap.String("ownerID", ownerID), zap.Error(err))
	}
}
