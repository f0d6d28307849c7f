package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"dante/internal/domain"
)

var _ domain.APIClient = (*HTTPClient)(nil)

// ---- companies ----

func (c *HTTPClient) RegisterCompany(ctx context.Context, reg domain.CompanyRegistration) (domain.Company, error) {
	var out domain.Company
	err := c.do(ctx, http.MethodPost, "/companies", nil, reg, &out)
	return out, err
}

func (c *HTTPClient) LoginCompany(ctx context.Context, cred domain.Credentials) (domain.CompanyLogin, error) {
	var out domain.CompanyLogin
	err := c.do(ctx, http.MethodPost, "/companies/login", nil, cred, &out)
	return out, err
}

func (c *HTTPClient) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var out []domain.Company
	err := c.do(ctx, http.MethodGet, "/companies", nil, nil, &out)
	return out, err
}

// ---- users ----

func (c *HTTPClient) LoginUser(ctx context.Context, cred domain.Credentials) (domain.UserLogin, error) {
	var out domain.UserLogin
	err := c.do(ctx, http.MethodPost, "/users/login", nil, cred, &out)
	return out, err
}

func (c *HTTPClient) ListUsers(ctx context.Context, company domain.CompanyID) ([]domain.User, error) {
	var out []domain.User
	err := c.do(ctx, http.MethodGet, "/users", url.Values{"company_id": {company.String()}}, nil, &out)
	return out, err
}

func (c *HTTPClient) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id.String()), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateUser(ctx context.Context, in domain.NewUser, avatar *domain.Attachment) (domain.User, error) {
	var out domain.User
	if avatar == nil {
		err := c.do(ctx, http.MethodPost, "/users", nil, in, &out)
		return out, err
	}
	fields, err := formFields(in)
	if err != nil {
		return out, err
	}
	err = c.doMultipart(ctx, http.MethodPost, "/users", fields, "avatar", avatar, &out)
	return out, err
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id domain.UserID, patch domain.UserPatch, avatar *domain.Attachment) (domain.User, error) {
	var out domain.User
	path := "/users/" + url.PathEscape(id.String())
	if avatar == nil {
		err := c.do(ctx, http.MethodPut, path, nil, patch, &out)
		return out, err
	}
	fields, err := formFields(patch)
	if err != nil {
		return out, err
	}
	err = c.doMultipart(ctx, http.MethodPut, path, fields, "avatar", avatar, &out)
	return out, err
}

func (c *HTTPClient) UpdateAvatar(ctx context.Context, id domain.UserID, avatar domain.Attachment) (domain.User, error) {
	var out domain.User
	err := c.doMultipart(ctx, http.MethodPut, "/users/"+url.PathEscape(id.String())+"/avatar", nil, "avatar", &avatar, &out)
	return out, err
}

func (c *HTTPClient) ChangePassword(ctx context.Context, id domain.UserID, change domain.PasswordChange) error {
	return c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id.String())+"/change-password", nil, change, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id domain.UserID) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id.String()), nil, nil, nil)
}

// ---- clients ----

func (c *HTTPClient) ListClients(ctx context.Context, company domain.CompanyID) ([]domain.Client, error) {
	var out []domain.Client
	err := c.do(ctx, http.MethodGet, "/clients", url.Values{"company_id": {company.String()}}, nil, &out)
	return out, err
}

func (c *HTTPClient) GetClient(ctx context.Context, id domain.ClientID) (domain.Client, error) {
	var out domain.Client
	err := c.do(ctx, http.MethodGet, "/clients/"+url.PathEscape(id.String()), nil, nil, &out)
	return out, err
}

// CreateClient always posts multipart/form-data, as the server expects for this route.
func (c *HTTPClient) CreateClient(ctx context.Context, in domain.NewClient, avatar *domain.Attachment) (domain.Client, error) {
	var out domain.Client
	fields, err := formFields(in)
	if err != nil {
		return out, err
	}
	err = c.doMultipart(ctx, http.MethodPost, "/clients", fields, "avatar", avatar, &out)
	return out, err
}

func (c *HTTPClient) UpdateClient(ctx context.Context, id domain.ClientID, patch domain.ClientPatch) (domain.Client, error) {
	var out domain.Client
	err := c.do(ctx, http.MethodPut, "/clients/"+url.PathEscape(id.String()), nil, patch, &out)
	return out, err
}

func (c *HTTPClient) DeleteClient(ctx context.Context, id domain.ClientID) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+url.PathEscape(id.String()), nil, nil, nil)
}

// ---- products ----

func (c *HTTPClient) ListProducts(ctx context.Context, company domain.CompanyID, category domain.CategoryID) ([]domain.Product, error) {
	q := url.Values{}
	if company != "" {
		q.Set("company_id", company.String())
	}
	if category != "" {
		q.Set("category_id", category.String())
	}
	var out []domain.Product
	err := c.do(ctx, http.MethodGet, "/products", q, nil, &out)
	return out, err
}

func (c *HTTPClient) GetProduct(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id.String()), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateProduct(ctx context.Context, in domain.NewProduct, image *domain.Attachment) (domain.Product, error) {
	var out domain.Product
	fields, err := formFields(in)
	if err != nil {
		return out, err
	}
	err = c.doMultipart(ctx, http.MethodPost, "/products", fields, "image", image, &out)
	return out, err
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id domain.ProductID, patch domain.ProductPatch, image *domain.Attachment) (domain.Product, error) {
	var out domain.Product
	path := "/products/" + url.PathEscape(id.String())
	if image == nil {
		err := c.do(ctx, http.MethodPut, path, nil, patch, &out)
		return out, err
	}
	fields, err := formFields(patch)
	if err != nil {
		return out, err
	}
	err = c.doMultipart(ctx, http.MethodPut, path, fields, "image", image, &out)
	return out, err
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id.String()), nil, nil, nil)
}

// ---- categories ----

func (c *HTTPClient) ListCategories(ctx context.Context, company domain.CompanyID, kind domain.CategoryKind) ([]domain.Category, error) {
	q := url.Values{}
	if company != "" {
		q.Set("company_id", company.String())
	}
	if kind != domain.AnyCategoryKind {
		q.Set("typeon", strconv.Itoa(int(kind)))
	}
	var out []domain.Category
	err := c.do(ctx, http.MethodGet, "/categories", q, nil, &out)
	return out, err
}

func (c *HTTPClient) GetCategory(ctx context.Context, id domain.CategoryID) (domain.Category, error) {
	var out domain.Category
	err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(id.String()), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateCategory(ctx context.Context, in domain.NewCategory, image *domain.Attachment) (domain.Category, error) {
	var out domain.Category
	fields, err := formFields(in)
	if err != nil {
		return out, err
	}
	err = c.doMultipart(ctx, http.MethodPost, "/categories", fields, "image", image, &out)
	return out, err
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id domain.CategoryID, patch domain.CategoryPatch, image *domain.Attachment) (domain.Category, error) {
	var out domain.Category
	path := "/categories/" + url.PathEscape(id.String())
	if image == nil {
		err := c.do(ctx, http.MethodPut, path, nil, patch, &out)
		return out, err
	}
	fields, err := formFields(patch)
	if err != nil {
		return out, err
	}
	err = c.doMultipart(ctx, http.MethodPut, path, fields, "image", image, &out)
	return out, err
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id domain.CategoryID) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id.String()), nil, nil, nil)
}

// ---- messages ----

func (c *HTTPClient) SendMessage(ctx context.Context, in domain.NewMessage) (domain.Message, error) {
	var out domain.Message
	err := c.do(ctx, http.MethodPost, "/messages", nil, in, &out)
	return out, err
}

func (c *HTTPClient) Conversation(ctx context.Context, user, other domain.UserID) ([]domain.Message, error) {
	var out []domain.Message
	err := c.do(ctx, http.MethodGet, "/messages/"+url.PathEscape(user.String()),
		url.Values{"other_user_id": {other.String()}}, nil, &out)
	return out, err
}

func (c *HTTPClient) MarkMessageRead(ctx context.Context, id domain.MessageID) (domain.Message, error) {
	var out domain.Message
	err := c.do(ctx, http.MethodPut, "/messages/"+url.PathEscape(id.String())+"/read", nil, nil, &out)
	return out, err
}

func (c *HTTPClient) DeleteMessage(ctx context.Context, id domain.MessageID) error {
	return c.do(ctx, http.MethodDelete, "/messages/"+url.PathEscape(id.String()), nil, nil, nil)
}

// ---- support tickets ----

func (c *HTTPClient) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := c.do(ctx, http.MethodGet, "/support/tickets", nil, nil, &out)
	return out, err
}

func (c *HTTPClient) GetTicket(ctx context.Context, id domain.TicketID) (domain.SupportTicket, error) {
	var out domain.SupportTicket
	err := c.do(ctx, http.MethodGet, "/support/tickets/"+url.PathEscape(id.String()), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateTicket(ctx context.Context, in domain.NewTicket) (domain.SupportTicket, error) {
	var out domain.SupportTicket
	err := c.do(ctx, http.MethodPost, "/support/tickets", nil, in, &out)
	return out, err
}

func (c *HTTPClient) UpdateTicket(ctx context.Context, id domain.TicketID, patch domain.TicketPatch) (domain.SupportTicket, error) {
	var out domain.SupportTicket
	err := c.do(ctx, http.MethodPut, "/support/tickets/"+url.PathEscape(id.String()), nil, patch, &out)
	return out, err
}

func (c *HTTPClient) DeleteTicket(ctx context.Context, id domain.TicketID) error {
	return c.do(ctx, http.MethodDelete, "/support/tickets/"+url.PathEscape(id.String()), nil, nil, nil)
}

// ---- assistant ----

func (c *HTTPClient) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatReply, error) {
	var out domain.ChatReply
	err := c.do(ctx, http.MethodPost, "/chatbot", nil, req, &out)
	return out, err
}
