package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// Request bodies are small JSON objects
const maxBodyBytes = 1 << 20

// textField records whether a JSON string field was sent and what it held.
// A non-string value marks the field invalid.
type textField struct {
	present bool
	invalid bool
	value   string
}

func (f *textField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	f.present = true
	if err := json.Unmarshal(b, &f.value); err != nil {
		f.invalid = true
	}
	return nil
}

func (f textField) empty() bool { return f.present && !f.invalid && f.value == "" }

// numberField accepts a JSON integer or a string holding one
type numberField struct {
	present bool
	empty   bool
	invalid bool
	value   int64
}

func (f *numberField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	f.present = true

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			f.invalid = true
			return nil
		}
		if raw == "" {
			f.empty = true
			return nil
		}
		raw = strings.TrimSpace(raw)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || fl != float64(int64(fl)) {
			f.invalid = true
			return nil
		}
		n = int64(fl)
	}
	f.value = n
	return nil
}

func (f numberField) usable() bool { return f.present && !f.empty && !f.invalid }

// decodeBody reads a JSON object from the request body. A missing, empty or
// malformed body is a bad request.
func decodeBody(c echo.Context, v any) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", service.ErrBadRequest, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return fmt.Errorf("%w: request body must be a JSON object", service.ErrBadRequest)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", service.ErrBadRequest, err)
	}
	return nil
}

// pageParam returns the page query parameter, defaulting to 1 when it is
// missing or not an integer.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("page")))
	if err != nil {
		return 1
	}
	return page
}

// idParam parses an integer path parameter. Anything else does not name a
// resource.
func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", service.ErrNotFound, name, c.Param(name))
	}
	return id, nil
}
