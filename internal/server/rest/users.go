package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dante/internal/domain"
	"dante/internal/server/auth"
	"dante/internal/server/storage"
)

type userCreate struct {
	Name      string      `json:"name" validate:"required"`
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required"`
	CompanyID string      `json:"company_id" validate:"required"`
	Role      domain.Role `json:"role"`
	BirthDate string      `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

const userNotFound = "Usuario no encontrado"

func (h *handler) loginUser(c echo.Context) error {
	ctx := c.Request().Context()
	req, err := readCredentials(c)
	if err != nil {
		return err
	}
	user, hash, err := h.store.UserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err != nil || !auth.CheckPassword(hash, req.Password) {
		h.metrics.RecordLogin(string(auth.KindUser), false)
		return echo.NewHTTPError(http.StatusUnauthorized, "Credenciales inválidas")
	}
	token, err := h.tokens.Issue(auth.KindUser, user.ID.String())
	if err != nil {
		return err
	}
	if company, err := h.store.GetCompany(ctx, user.CompanyID); err == nil {
		user.Company = &company
	}
	h.metrics.RecordLogin(string(auth.KindUser), true)
	return c.JSON(http.StatusOK, domain.UserLogin{AccessToken: token, User: user})
}

func (h *handler) listUsers(c echo.Context) error {
	company := c.QueryParam("company_id")
	if company == "" {
		return c.JSON(http.StatusOK, []domain.User{})
	}
	users, err := h.store.ListUsers(c.Request().Context(), domain.CompanyID(company))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *handler) getUser(c echo.Context) error {
	u, err := h.store.GetUser(c.Request().Context(), domain.UserID(c.Param("id")))
	if err != nil {
		return storageErr(err, userNotFound)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *handler) createUser(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	req := userCreate{
		Name:      in.text("name"),
		Email:     strings.ToLower(in.text("email")),
		Password:  in.raw("password"),
		CompanyID: in.text("company_id"),
		Role:      domain.Role(in.text("role")),
		BirthDate: in.text("birth_date"),
	}
	if err := in.Err(); err != nil {
		return err
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.CompanyID == "" {
		return badRequest("Faltan campos obligatorios")
	}
	if err := check(req); err != nil {
		return err
	}
	if req.Role == "" {
		req.Role = domain.DefaultUserRole
	}
	if !req.Role.Valid() {
		return badRequest("Rol inválido")
	}

	ctx := c.Request().Context()
	if _, _, err := h.store.UserByEmail(ctx, req.Email); err == nil {
		return badRequest("Email ya registrado")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	avatar, err := h.saveUpload(c, "avatar")
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.discardUpload(avatar)
		return err
	}
	user, err := h.store.CreateUser(ctx, domain.User{
		ID:        domain.UserID(uuid.NewString()),
		CompanyID: domain.CompanyID(req.CompanyID),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     in.text("phone"),
		JobTitle:  in.text("job_title"),
		Gender:    in.text("gender"),
		BirthDate: req.BirthDate,
		Role:      req.Role,
		AvatarURL: avatar,
		IsActive:  true,
	}, hash)
	if err != nil {
		h.discardUpload(avatar)
		if errors.Is(err, storage.ErrConflict) {
			return badRequest("Email ya registrado")
		}
		return storageErr(err, userNotFound)
	}
	return c.JSON(http.StatusCreated, user)
}

// updateUser applies only the fields present in the body. A body that changes
// nothing returns the stored user unchanged.
func (h *handler) updateUser(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.store.GetUser(ctx, domain.UserID(c.Param("id")))
	if err != nil {
		return storageErr(err, userNotFound)
	}
	in, err := readInput(c)
	if err != nil {
		return err
	}

	changed := false
	set := func(dst *string, key string) {
		if v := in.str(key); v != nil && strings.TrimSpace(*v) != *dst {
			*dst = strings.TrimSpace(*v)
			changed = true
		}
	}

	if v := in.str("email"); v != nil {
		email := strings.ToLower(strings.TrimSpace(*v))
		if email != strings.ToLower(user.Email) {
			if err := validate.Var(email, "required,email"); err != nil {
				return badRequest("Campos inválidos: email")
			}
			other, _, err := h.store.UserByEmail(ctx, email)
			if err == nil && other.ID != user.ID {
				return badRequest("El correo ya está registrado por otro usuario")
			}
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			user.Email = email
			changed = true
		}
	}
	set(&user.Name, "name")
	set(&user.Phone, "phone")
	set(&user.JobTitle, "job_title")
	set(&user.Gender, "gender")
	if v := in.str("role"); v != nil && domain.Role(*v) != user.Role {
		if !domain.Role(*v).Valid() {
			return badRequest("Rol inválido")
		}
		user.Role = domain.Role(*v)
		changed = true
	}
	if v := in.str("birth_date"); v != nil && *v != user.BirthDate {
		if *v != "" {
			if _, err := time.Parse(domain.BirthDateLayout, *v); err != nil {
				return badRequest("Formato de fecha inválido, use AAAA-MM-DD")
			}
		}
		user.BirthDate = *v
		changed = true
	}
	if v := in.boolean("is_active"); v != nil && *v != user.IsActive {
		user.IsActive = *v
		changed = true
	}
	if v := in.boolean("is_verified"); v != nil && *v != user.IsVerified {
		user.IsVerified = *v
		changed = true
	}
	if err := in.Err(); err != nil {
		return err
	}

	if pw := in.raw("password"); pw != "" {
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return err
		}
		if err := h.store.SetUserPassword(ctx, user.ID, hash); err != nil {
			return storageErr(err, userNotFound)
		}
		changed = true
	}

	avatar, err := h.saveUpload(c, "avatar")
	if err != nil {
		return err
	}
	old := user.AvatarURL
	if avatar != "" {
		user.AvatarURL = avatar
		changed = true
	}

	if !changed {
		return c.JSON(http.StatusOK, user)
	}
	updated, err := h.store.UpdateUser(ctx, user)
	if err != nil {
		h.discardUpload(avatar)
		if errors.Is(err, storage.ErrConflict) {
			return badRequest("El correo ya está registrado por otro usuario")
		}
		return storageErr(err, userNotFound)
	}
	if avatar != "" {
		h.replaceUpload(old, avatar)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) updateAvatar(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.store.GetUser(ctx, domain.UserID(c.Param("id")))
	if err != nil {
		return storageErr(err, userNotFound)
	}
	avatar, err := h.saveUpload(c, "avatar")
	if err != nil {
		return err
	}
	if avatar == "" {
		return errNoFile
	}
	old := user.AvatarURL
	user.AvatarURL = avatar
	updated, err := h.store.UpdateUser(ctx, user)
	if err != nil {
		h.discardUpload(avatar)
		return storageErr(err, userNotFound)
	}
	h.replaceUpload(old, avatar)
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) changePassword(c echo.Context) error {
	ctx := c.Request().Context()
	id := domain.UserID(c.Param("id"))
	hash, err := h.store.UserPasswordHash(ctx, id)
	if err != nil {
		return storageErr(err, userNotFound)
	}
	in, err := readInput(c)
	if err != nil {
		return err
	}
	current, next := in.raw("current_password"), in.raw("new_password")
	if err := in.Err(); err != nil {
		return err
	}
	if current == "" || next == "" {
		return badRequest("Faltan campos")
	}
	if !auth.CheckPassword(hash, current) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Contraseña actual incorrecta")
	}
	newHash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	if err := h.store.SetUserPassword(ctx, id, newHash); err != nil {
		return storageErr(err, userNotFound)
	}
	return message(c, http.StatusOK, "Contraseña actualizada correctamente")
}

func (h *handler) deleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	id := domain.UserID(c.Param("id"))
	user, err := h.store.GetUser(ctx, id)
	if err != nil {
		return storageErr(err, userNotFound)
	}
	if err := h.store.DeleteUser(ctx, id); err != nil {
		return storageErr(err, userNotFound)
	}
	h.discardUpload(user.AvatarURL)
	return c.NoContent(http.StatusNoContent)
}
