package user

import (
	"context"
	"fmt"

	"dante/internal/cache"
	"dante/internal/domain"
	"dante/internal/services/scope"
)

type Service struct {
	api   domain.UserAPI
	scope *scope.Scope
	users domain.UserStore
	list  *cache.List[domain.User]
}

func New(api domain.UserAPI, sc *scope.Scope, users domain.UserStore) *Service {
	return &Service{api: api, scope: sc, users: users, list: cache.New[domain.User]()}
}

// FetchAll replaces the local list with the company's users.
func (s *Service) FetchAll(ctx context.Context) ([]domain.User, error) {
	company, err := s.scope.CompanyID()
	if err != nil {
		return nil, err
	}
	gen := s.list.Generation()
	items, err := s.api.ListUsers(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	s.list.Replace(gen, items)
	return items, nil
}

// Add creates a user in the current company and prepends it.
func (s *Service) Add(ctx context.Context, in domain.NewUser, avatar *domain.Attachment) (domain.User, error) {
	if in.CompanyID == "" {
		company, err := s.scope.CompanyID()
		if err != nil {
			return domain.User{}, err
		}
		in.CompanyID = company
	}
	if in.Role != "" && !in.Role.Valid() {
		return domain.User{}, &domain.ValidationError{Fields: map[string]string{"role": "unknown role " + string(in.Role)}}
	}
	gen := s.list.Generation()
	u, err := s.api.CreateUser(ctx, in, avatar)
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	s.list.Prepend(gen, u)
	return u, nil
}

// Update patches a user. Editing the logged-in user also refreshes the user store.
func (s *Service) Update(ctx context.Context, id domain.UserID, patch domain.UserPatch, avatar *domain.Attachment) (domain.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return domain.User{}, &domain.ValidationError{Fields: map[string]string{"role": "unknown role " + string(*patch.Role)}}
	}
	gen := s.list.Generation()
	u, err := s.api.UpdateUser(ctx, id, patch, avatar)
	if err != nil {
		return domain.User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	s.applied(gen, u)
	return u, nil
}

// UpdateCurrent patches the logged-in user.
func (s *Service) UpdateCurrent(ctx context.Context, patch domain.UserPatch, avatar *domain.Attachment) (domain.User, error) {
	me, err := s.scope.UserID()
	if err != nil {
		return domain.User{}, err
	}
	return s.Update(ctx, me, patch, avatar)
}

// UpdateAvatar replaces the logged-in user's avatar.
func (s *Service) UpdateAvatar(ctx context.Context, avatar domain.Attachment) (domain.User, error) {
	me, err := s.scope.UserID()
	if err != nil {
		return domain.User{}, err
	}
	gen := s.list.Generation()
	u, err := s.api.UpdateAvatar(ctx, me, avatar)
	if err != nil {
		return domain.User{}, fmt.Errorf("update avatar: %w", err)
	}
	s.applied(gen, u)
	return u, nil
}

// ChangePassword changes the logged-in user's password.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	me, err := s.scope.UserID()
	if err != nil {
		return err
	}
	verr := &domain.ValidationError{}
	if current == "" {
		verr.Add("current_password", "current password is required")
	}
	if next == "" {
		verr.Add("new_password", "new password is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	if err := s.api.ChangePassword(ctx, me, domain.PasswordChange{CurrentPassword: current, NewPassword: next}); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, id domain.UserID) error {
	gen := s.list.Generation()
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	s.list.RemoveByKey(gen, id.String())
	return nil
}

// Me returns the logged-in user as last stored.
func (s *Service) Me() (domain.User, bool) { return s.users.User() }

func (s *Service) Logout() { s.list.Reset() }

func (s *Service) Users() []domain.User { return s.list.Items() }

// applied mirrors an updated user and refreshes the user store if it is the logged-in one.
func (s *Service) applied(gen uint64, u domain.User) {
	s.list.ReplaceByKey(gen, u)
	if cur, ok := s.users.User(); ok && cur.ID == u.ID && s.list.Generation() == gen {
		if u.Company == nil {
			u.Company = cur.Company
		}
		s.users.SetUser(u)
	}
}

var _ domain.UserService = (*Service)(nil)
