package workshops

import (
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/server/request"
	"github.com/codebar/admin/internal/workshops"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	workshopsSvc *workshops.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(workshopsSvc *workshops.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		workshopsSvc: workshopsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/workshops")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Delete("/:id", h.delete)
}

//	@Summary		Create workshop
//	@Description	Instructors and students are referenced by name and are not checked.
//	@Tags			Workshops
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRequest	true	"Workshop"
//	@Success		200		{object}	WorkshopResponse
//	@Failure		400		{object}	fiber.Error
//	@Router			/workshops/ [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	workshop, err := h.workshopsSvc.Create(c.UserContext(), workshops.WorkshopDraft{
		Subject:     req.Subject,
		Date:        req.Date,
		Instructors: req.Instructors,
		Students:    req.Students,
		Description: req.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to create workshop: %w", err)
	}

	return c.JSON(toResponse(*workshop))
}

//	@Summary	List workshops
//	@Tags		Workshops
//	@Produce	json
//	@Success	200	{array}	WorkshopResponse
//	@Router		/workshops/ [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.workshopsSvc.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("failed to list workshops: %w", err)
	}

	return c.JSON(lo.Map(items, func(w workshops.Workshop, _ int) WorkshopResponse {
		return toResponse(w)
	}))
}

//	@Summary	Get workshop
//	@Tags		Workshops
//	@Produce	json
//	@Param		id	path		int	true	"Workshop ID"
//	@Success	200	{object}	WorkshopResponse
//	@Failure	404	{object}	fiber.Error
//	@Router		/workshops/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	workshop, err := h.workshopsSvc.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get workshop: %w", err)
	}

	return c.JSON(toResponse(*workshop))
}

//	@Summary	Update workshop
//	@Tags		Workshops
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Workshop ID"
//	@Param		request	body		UpdateRequest	true	"Fields to update"
//	@Success	200		{object}	WorkshopResponse
//	@Failure	400		{object}	fiber.Error
//	@Failure	404		{object}	fiber.Error
//	@Router		/workshops/{id} [put]
func (h *Handler) put(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	workshop, err := h.workshopsSvc.Update(c.UserContext(), id, workshops.WorkshopUpdate{
		Subject:     req.Subject,
		Date:        req.Date,
		Instructors: req.Instructors,
		Students:    req.Students,
		Description: req.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to update workshop: %w", err)
	}

	return c.JSON(toResponse(*workshop))
}

//	@Summary	Delete workshop
//	@Tags		Workshops
//	@Produce	json
//	@Param		id	path		int	true	"Workshop ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	fiber.Error
//	@Router		/workshops/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	if delErr := h.workshopsSvc.Delete(c.UserContext(), id); delErr != nil {
		return fmt.Errorf("failed to delete workshop: %w", delErr)
	}

	return c.JSON(MessageResponse{Message: "Workshop deleted successfully"})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, workshops.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Workshop not found")
	case errors.Is(err, workshops.ErrAlreadyExists):
		return fiber.NewError(fiber.StatusBadRequest, "Workshop already exists")
	}

	return err //nolint:wrapcheck //already wrapped
}

func toResponse(workshop workshops.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:          workshop.ID,
		Subject:     workshop.Subject,
		Date:        workshop.Date,
		Instructors: workshop.Instructors,
		Students:    workshop.Students,
		Description: workshop.Description,
	}
}
