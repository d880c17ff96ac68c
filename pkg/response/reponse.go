package response

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
)

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Code      string      `json:"code,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

func SuccessMessage(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Path(), appErr)
		}
		return fail(c, appErr.Status, appErr.Code, appErr.Message)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return handleHTTPError(c, httpErr)
	}

	logger.Error("%s %s: unexpected error: %v", c.Request().Method, c.Path(), err)
	return fail(c, http.StatusInternalServerError, apperrors.CodeInternal, "An unexpected error occurred")
}

// HTTPErrorHandler routes every error echo sees through Error so the envelope stays uniform.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if werr := Error(c, err); werr != nil {
		logger.Error("failed to write error response: %v", werr)
	}
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, Response{
		Success:   false,
		Message:   message,
		Code:      code,
		Timestamp: now(),
	})
}

func handleHTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok && m != "" {
		message = m
	}

	var code string
	switch httpErr.Code {
	case http.StatusBadRequest:
		code = apperrors.CodeValidation
	case http.StatusRequestEntityTooLarge:
		code = apperrors.CodeValidation
		message = "Request body too large"
	case http.StatusUnauthorized:
		code = apperrors.CodeUnauthenticated
	case http.StatusForbidden:
		code = apperrors.CodeForbidden
	case http.StatusNotFound:
		code = apperrors.CodeNotFound
	case http.StatusTooManyRequests:
		code = apperrors.CodeTooManyRequests
		message = "Too many requests, please try again later"
	default:
		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Path(), httpErr)
			return fail(c, http.StatusInternalServerError, apperrors.CodeInternal, "An unexpected error occurred")
		}
		code = strings.ToUpper(strings.ReplaceAll(http.StatusText(httpErr.Code), " ", "_"))
	}

	return fail(c, httpErr.Code, code, message)
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := err.Field()
		param := err.Param()

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min", "gte":
			message = field + " must be at least " + param
		case "max", "lte":
			message = field + " must be at most " + param
		case "oneof":
			message = field + " must be one of: " + param
		case "email":
			message = field + " must be a valid email address"
		default:
			message = field + " is invalid"
		}

		return fail(c, http.StatusBadRequest, apperrors.CodeValidation, message)
	}

	return fail(c, http.StatusBadRequest, apperrors.CodeValidation, "Invalid input data")
}
