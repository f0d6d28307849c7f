package category

import (
	"context"
	"fmt"

	"dante/internal/cache"
	"dante/internal/domain"
	"dante/internal/services/scope"
)

type Service struct {
	api   domain.CategoryAPI
	scope *scope.Scope
	list  *cache.List[domain.Category]
}

func New(api domain.CategoryAPI, sc *scope.Scope) *Service {
	return &Service{api: api, scope: sc, list: cache.New[domain.Category]()}
}

// FetchAll replaces the local list with the company's categories of kind.
// domain.AnyCategoryKind fetches both kinds.
func (s *Service) FetchAll(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	company, err := s.scope.CompanyID()
	if err != nil {
		return nil, err
	}
	gen := s.list.Generation()
	items, err := s.api.ListCategories(ctx, company, kind)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	s.list.Replace(gen, items)
	return items, nil
}

func (s *Service) Add(ctx context.Context, in domain.NewCategory, image *domain.Attachment) (domain.Category, error) {
	if in.CompanyID == "" {
		company, err := s.scope.CompanyID()
		if err != nil {
			return domain.Category{}, err
		}
		in.CompanyID = company
	}
	gen := s.list.Generation()
	c, err := s.api.CreateCategory(ctx, in, image)
	if err != nil {
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}
	s.list.Prepend(gen, c)
	return c, nil
}

func (s *Service) Update(ctx context.Context, id domain.CategoryID, patch domain.CategoryPatch, image *domain.Attachment) (domain.Category, error) {
	gen := s.list.Generation()
	c, err := s.api.UpdateCategory(ctx, id, patch, image)
	if err != nil {
		return domain.Category{}, fmt.Errorf("update category %s: %w", id, err)
	}
	s.list.ReplaceByKey(gen, c)
	return c, nil
}

func (s *Service) Remove(ctx context.Context, id domain.CategoryID) error {
	gen := s.list.Generation()
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	s.list.RemoveByKey(gen, id.String())
	return nil
}

func (s *Service) Logout() { s.list.Reset() }

func (s *Service) Categories() []domain.Category { return s.list.Items() }

var _ domain.CategoryService = (*Service)(nil)
