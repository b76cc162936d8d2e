package students

import (
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/server/request"
	"github.com/codebar/admin/internal/students"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	studentsSvc *students.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(studentsSvc *students.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		studentsSvc: studentsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/students")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Delete("/:id", h.delete)
}

//	@Summary		Create student
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRequest	true	"Student"
//	@Success		200		{object}	StudentResponse
//	@Failure		400		{object}	fiber.Error
//	@Router			/students/ [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	student, err := h.studentsSvc.Create(c.UserContext(), students.StudentDraft{
		Name:    req.Name,
		Reasons: req.Reasons,
		Picture: req.Picture,
	})
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	return c.JSON(toResponse(*student))
}

//	@Summary	List students
//	@Tags		Students
//	@Produce	json
//	@Success	200	{array}	StudentResponse
//	@Router		/students/ [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.studentsSvc.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("failed to list students: %w", err)
	}

	return c.JSON(lo.Map(items, func(s students.Student, _ int) StudentResponse {
		return toResponse(s)
	}))
}

//	@Summary	Get student
//	@Tags		Students
//	@Produce	json
//	@Param		id	path		int	true	"Student ID"
//	@Success	200	{object}	StudentResponse
//	@Failure	400	{object}	fiber.Error
//	@Failure	404	{object}	fiber.Error
//	@Router		/students/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	student, err := h.studentsSvc.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get student: %w", err)
	}

	return c.JSON(toResponse(*student))
}

//	@Summary		Update student
//	@Description	Overwrites the supplied fields.
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Student ID"
//	@Param			request	body		UpdateRequest	true	"Fields to update"
//	@Success		200		{object}	StudentResponse
//	@Failure		400		{object}	fiber.Error
//	@Failure		404		{object}	fiber.Error
//	@Router			/students/{id} [put]
func (h *Handler) put(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	student, err := h.studentsSvc.Update(c.UserContext(), id, students.StudentUpdate{
		Name:    req.Name,
		Reasons: req.Reasons,
		Picture: req.Picture,
	})
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	return c.JSON(toResponse(*student))
}

//	@Summary	Delete student
//	@Tags		Students
//	@Produce	json
//	@Param		id	path		int	true	"Student ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	400	{object}	fiber.Error
//	@Failure	404	{object}	fiber.Error
//	@Router		/students/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := request.ParamID(c, "id")
	if err != nil {
		return err //nolint:wrapcheck //fiber error
	}

	if delErr := h.studentsSvc.Delete(c.UserContext(), id); delErr != nil {
		return fmt.Errorf("failed to delete student: %w", delErr)
	}

	return c.JSON(MessageResponse{Message: "Student deleted successfully"})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, students.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	case errors.Is(err, students.ErrAlreadyExists):
		return fiber.NewError(fiber.StatusBadRequest, "Student already exists")
	}

	return err //nolint:wrapcheck //already wrapped
}

func toResponse(student students.Student) StudentResponse {
	return StudentResponse{
		ID:      student.ID,
		Name:    student.Name,
		Reasons: student.Reasons,
		Picture: student.Picture,
	}
}
