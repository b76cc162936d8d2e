package instructors

import (
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/instructors"
	"github.com/codebar/admin/internal/server/request"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	instructorsSvc *instructors.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(instructorsSvc *instructors.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		instructorsSvc: instructorsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/instructors")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Delete("/:id", h.delete)
}

//	@Summary		Create instructor
//	@Tags			Instructors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRequest	true	"Instructor"
//	@Success		200		{object}	InstructorResponse
//	@Failure		400		{object}	fiber.Error
//	@Router			/instructors/ [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	instructor, err := h.instructorsSvc.Create(c.UserContext(), instructors.InstructorDraft{
		Name:   req.Name,
		Skills: req.Skills,
		Bio:    req.Bio,
	})
	if err != nil {
		return fmt.Errorf("failed to create instructor: %w", err)
	}

	return c.JSON(toResponse(*instructor))
}

//	@Summary	List instructors
//	@Tags		Instructors
//	@Produce	json
//	@Success	200	{array}	InstructorResponse
//	@Router		/instructors/ [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.instructorsSvc.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("failed to list instructors: %w", err)
	}

	return c.JSON(lo.Map(items, func(i instructors.Instructor, _ int) InstructorResponse {
		return toResponse(i)
	}))
}

//	@Summary	Get instructor
//	@Tags		Instructors
//	@Produce	json
//	@Param		id	path		int	true	"Instructor ID"
//	@Success	200	{object}	InstructorResponse
//	@Failure	404	{object}	fiber.Error
//	@Router		/instructors/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	instructor, err := h.instructorsSvc.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get instructor: %w", err)
	}

	return c.JSON(toResponse(*instructor))
}

//	@Summary	Update instructor
//	@Tags		Instructors
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Instructor ID"
//	@Param		request	body		UpdateRequest	true	"Fields to update"
//	@Success	200		{object}	InstructorResponse
//	@Failure	400		{object}	fiber.Error
//	@Failure	404		{object}	fiber.Error
//	@Router		/instructors/{id} [put]
func (h *Handler) put(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	instructor, err := h.instructorsSvc.Update(c.UserContext(), id, instructors.InstructorUpdate{
		Name:   req.Name,
		Skills: req.Skills,
		Bio:    req.Bio,
	})
	if err != nil {
		return fmt.Errorf("failed to update instructor: %w", err)
	}

	return c.JSON(toResponse(*instructor))
}

//	@Summary	Delete instructor
//	@Tags		Instructors
//	@Produce	json
//	@Param		id	path		int	true	"Instructor ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	fiber.Error
//	@Router		/instructors/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	if delErr := h.instructorsSvc.Delete(c.UserContext(), id); delErr != nil {
		return fmt.Errorf("failed to delete instructor: %w", delErr)
	}

	return c.JSON(MessageResponse{Message: "Instructor deleted successfully"})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, instructors.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Instructor not found")
	case errors.Is(err, instructors.ErrAlreadyExists):
		return fiber.NewError(fiber.StatusBadRequest, "Instructor already exists")
	}

	return err //nolint:wrapcheck //already wrapped
}

func toResponse(instructor instructors.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:     instructor.ID,
		Name:   instructor.Name,
		Skills: instructor.Skills,
		Bio:    instructor.Bio,
	}
}
