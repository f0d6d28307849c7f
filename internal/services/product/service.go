package product

import (
	"context"
	"fmt"

	"dante/internal/cache"
	"dante/internal/domain"
	"dante/internal/services/scope"
)

// Service fetches and mutates products on the server and mirrors the results.
type Service struct {
	api   domain.ProductAPI
	scope *scope.Scope
	list  *cache.List[domain.Product]
}

func New(api domain.ProductAPI, sc *scope.Scope) *Service {
	return &Service{api: api, scope: sc, list: cache.New[domain.Product]()}
}

// FetchAll replaces the local list with every product of the company.
func (s *Service) FetchAll(ctx context.Context) ([]domain.Product, error) {
	return s.fetch(ctx, "")
}

// FetchByCategory replaces the local list with the company's products in category.
func (s *Service) FetchByCategory(ctx context.Context, category domain.CategoryID) ([]domain.Product, error) {
	return s.fetch(ctx, category)
}

func (s *Service) fetch(ctx context.Context, category domain.CategoryID) ([]domain.Product, error) {
	company, err := s.scope.CompanyID()
	if err != nil {
		return nil, err
	}
	gen := s.list.Generation()
	items, err := s.api.ListProducts(ctx, company, category)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	s.list.Replace(gen, items)
	return items, nil
}

// Add creates a product and prepends it.
func (s *Service) Add(ctx context.Context, in domain.NewProduct, image *domain.Attachment) (domain.Product, error) {
	if in.CompanyID == "" {
		company, err := s.scope.CompanyID()
		if err != nil {
			return domain.Product{}, err
		}
		in.CompanyID = company
	}
	gen := s.list.Generation()
	p, err := s.api.CreateProduct(ctx, in, image)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	s.list.Prepend(gen, p)
	return p, nil
}

// Update patches a product and replaces the matching entry.
func (s *Service) Update(ctx context.Context, id domain.ProductID, patch domain.ProductPatch, image *domain.Attachment) (domain.Product, error) {
	gen := s.list.Generation()
	p, err := s.api.UpdateProduct(ctx, id, patch, image)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	s.list.ReplaceByKey(gen, p)
	return p, nil
}

// Remove deletes a product and filters it out.
func (s *Service) Remove(ctx context.Context, id domain.ProductID) error {
	gen := s.list.Generation()
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	s.list.RemoveByKey(gen, id.String())
	return nil
}

// Get fetches one product without touching the mirror.
func (s *Service) Get(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	p, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

func (s *Service) Logout() { s.list.Reset() }

func (s *Service) Products() []domain.Product { return s.list.Items() }

var _ domain.ProductService = (*Service)(nil)
