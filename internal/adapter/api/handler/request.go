package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/middleware"
	"thriftbay/internal/usecase"
	apperrors "thriftbay/pkg/errors"
)

// bindAndValidate binds the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.BadRequest("Invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

func currentUserID(c echo.Context) (string, error) {
	uid := middleware.UserIDFrom(c)
	if uid == "" {
		return "", apperrors.Unauthenticated("Authentication required")
	}
	return uid, nil
}

// formNumber accepts a JSON number, a numeric JSON string or a form value.
// An absent or empty value leaves it unset.
type formNumber struct {
	set   bool
	value float64
}

func (n *formNumber) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return n.UnmarshalParam(s)
	}
	return n.UnmarshalParam(raw)
}

func (n *formNumber) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		return nil
	}
	v, err := strconv.ParseFloat(param, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%q is not a number", param)
	}
	n.set, n.value = true, v
	return nil
}

func (n formNumber) ptr() *float64 {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// formUpload opens an optional multipart file. The returned release func
// closes the file and is safe to call when no file was sent.
func formUpload(c echo.Context, field string, maxBytes int64) (*usecase.Upload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, apperrors.BadRequest("Invalid file upload", err)
	}

	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, noop, apperrors.Validation(fmt.Sprintf("%s exceeds the maximum size of %d bytes", field, maxBytes))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, noop, apperrors.Internal("Unable to read uploaded file", err)
	}

	return &usecase.Upload{
		Reader:      src,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}, func() { src.Close() }, nil
}
