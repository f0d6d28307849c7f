package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"dante/internal/domain"
)

// API is the subset of the REST client used for authentication.
type API interface {
	domain.CompanyAPI
	LoginUser(ctx context.Context, cred domain.Credentials) (domain.UserLogin, error)
}

// Service performs registration and login.
type Service struct {
	api       API
	companies domain.CompanyStore
	users     domain.UserStore
	session   domain.SessionStore
	validate  *validator.Validate
}

func New(api API, companies domain.CompanyStore, users domain.UserStore, session domain.SessionStore) *Service {
	return &Service{
		api:       api,
		companies: companies,
		users:     users,
		session:   session,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterCompany creates a company. It does not log in.
func (s *Service) RegisterCompany(ctx context.Context, reg domain.CompanyRegistration) (domain.Company, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Name = strings.TrimSpace(reg.Name)

	verr := &domain.ValidationError{}
	s.checkRequired(verr, "name", reg.Name, "name is required")
	s.checkEmail(verr, reg.Email)
	s.checkRequired(verr, "password", reg.Password, "password is required")
	if err := verr.OrNil(); err != nil {
		return domain.Company{}, err
	}

	c, err := s.api.RegisterCompany(ctx, reg)
	if err != nil {
		return domain.Company{}, fmt.Errorf("register company: %w", err)
	}
	return c, nil
}

// LoginCompany stores the company and token in the company store and the token in the session store.
func (s *Service) LoginCompany(ctx context.Context, email, password string) (domain.Company, error) {
	cred, err := s.credentials(email, password)
	if err != nil {
		return domain.Company{}, err
	}
	out, err := s.api.LoginCompany(ctx, cred)
	if err != nil {
		return domain.Company{}, fmt.Errorf("company login: %w", err)
	}
	s.companies.Login(out.Company, out.AccessToken)
	s.session.Login(out.AccessToken)
	return out.Company, nil
}

// LoginUser stores the token in the session store and the user in the user store.
func (s *Service) LoginUser(ctx context.Context, email, password string) (domain.User, error) {
	cred, err := s.credentials(email, password)
	if err != nil {
		return domain.User{}, err
	}
	out, err := s.api.LoginUser(ctx, cred)
	if err != nil {
		return domain.User{}, fmt.Errorf("user login: %w", err)
	}
	s.session.Login(out.AccessToken)
	s.users.SetUser(out.User)
	return out.User, nil
}

func (s *Service) credentials(email, password string) (domain.Credentials, error) {
	email = strings.TrimSpace(email)
	verr := &domain.ValidationError{}
	s.checkEmail(verr, email)
	s.checkRequired(verr, "password", password, "password is required")
	if err := verr.OrNil(); err != nil {
		return domain.Credentials{}, err
	}
	return domain.Credentials{Email: email, Password: password}, nil
}

func (s *Service) checkRequired(verr *domain.ValidationError, field, value, msg string) {
	if s.validate.Var(value, "required") != nil {
		verr.Add(field, msg)
	}
}

func (s *Service) checkEmail(verr *domain.ValidationError, email string) {
	if s.validate.Var(email, "required") != nil {
		verr.Add("email", "email is required")
		return
	}
	if s.validate.Var(email, "email") != nil {
		verr.Add("email", "email is not valid")
	}
}

var _ domain.AuthService = (*Service)(nil)
