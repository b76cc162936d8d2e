// Package request holds the request parsing helpers the fiberfx validation
// package does not cover.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParamID reads a positive integer path parameter.
func ParamID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s: %q", name, c.Params(name)))
	}

	return uint64(id), nil
}

// DecodeErrors reports request bodies that are not valid JSON for the target
// type as 400 Bad Request.
func DecodeErrors(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		timeErr   *time.ParseError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.As(err, &timeErr) {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse request: %s", err))
	}

	return err //nolint:wrapcheck // pass to upstream middleware
}
