package auth

import (
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/auth"
	"github.com/codebar/admin/internal/server/middleware"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc *auth.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(authSvc *auth.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		authSvc: authSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	bearer := middleware.BearerAuth(h.authSvc)

	r.Post("/register", h.errorsHandler, validation.DecorateWithBodyEx(h.validator, h.register))
	r.Post("/login", h.errorsHandler, validation.DecorateWithBodyEx(h.validator, h.login))
	r.Get("/protected", h.errorsHandler, bearer, h.protected)
	r.Get("/users", h.errorsHandler, h.listUsers)
	r.Put("/users/me", h.errorsHandler, bearer, validation.DecorateWithBodyEx(h.validator, h.updateMe))
}

//	@Summary		Register user
//	@Description	Creates a user. The password is stored as a bcrypt hash.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"User"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	fiber.Error
//	@Router			/register/ [post]
func (h *Handler) register(c *fiber.Ctx, req *RegisterRequest) error {
	_, err := h.authSvc.Register(c.UserContext(), auth.UserDraft{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	return c.JSON(MessageResponse{Message: "User created"})
}

//	@Summary		Log in
//	@Description	Exchanges a username and password for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	fiber.Error
//	@Failure		401		{object}	fiber.Error
//	@Router			/login/ [post]
func (h *Handler) login(c *fiber.Ctx, req *LoginRequest) error {
	token, err := h.authSvc.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	return c.JSON(TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

//	@Summary		Protected route
//	@Description	Greets the authenticated user.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	MessageResponse
//	@Failure		401	{object}	fiber.Error
//	@Router			/protected/ [get]
func (h *Handler) protected(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	return c.JSON(MessageResponse{
		Message: fmt.Sprintf("Hello, %s. This is a protected route.", user.Username),
	})
}

//	@Summary		List users
//	@Description	Lists all users without their credentials.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{array}	UserResponse
//	@Router			/users/ [get]
func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.authSvc.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	return c.JSON(lo.Map(users, func(u auth.User, _ int) UserResponse {
		return UserResponse{Username: u.Username, Role: u.Role}
	}))
}

//	@Summary		Update current user
//	@Description	Overwrites the supplied fields of the authenticated user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		UpdateMeRequest	true	"Fields to update"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	fiber.Error
//	@Failure		401		{object}	fiber.Error
//	@Failure		404		{object}	fiber.Error
//	@Router			/users/me/ [put]
func (h *Handler) updateMe(c *fiber.Ctx, req *UpdateMeRequest) error {
	user := middleware.CurrentUser(c)

	_, err := h.authSvc.UpdateSelf(c.UserContext(), user.Username, auth.UserUpdate{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return c.JSON(MessageResponse{Message: "User information updated successfully"})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, auth.ErrDuplicateUser):
		return fiber.NewError(fiber.StatusBadRequest, "Username already exists")
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, auth.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	case errors.Is(err, auth.ErrUnauthorized):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	return err //nolint:wrapcheck //already wrapped
}
