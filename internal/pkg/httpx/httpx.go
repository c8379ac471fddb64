package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/labstack/echo/v4"
)

// FieldErrors maps a request field to the rule it failed.
type FieldErrors map[string]string

func (fields FieldErrors) Error() string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func NewValidation(fields FieldErrors) error {
	return errorx.Wrap(fields, errorx.Validation)
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// RestAbort writes data with 200 when err is nil, otherwise the error response for err.
// Bodies are written bare, without the toolkit's code/message/data envelope.
func RestAbort(c echo.Context, data any, err error) error {
	if err != nil {
		return Abort(c, err)
	}
	if data == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, data)
}

// Abort writes the error response for err. Validation failures answer 400 rather than
// the toolkit's 422.
func Abort(c echo.Context, err error) error {
	if errors.Is(err, limiter.ErrRateLimited) {
		err = errorx.Wrap(err, errorx.RateLimiting)
	}

	var target *errorx.Error
	if !errors.As(err, &target) || target.Status() == http.StatusInternalServerError {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: errorx.MaskErrorMessage(err)})
	}

	if target.Of(errorx.Validation) {
		var fields FieldErrors
		if errors.As(err, &fields) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Validation error", Errors: fields})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: target.Error()})
	}

	return c.JSON(target.Status(), ErrorResponse{Message: target.Error()})
}
