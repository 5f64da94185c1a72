package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

func TestNumberField(t *testing.T) {
	tests := []struct {
		raw     string
		present bool
		empty   bool
		invalid bool
		value   int64
	}{
		{raw: `7`, present: true, value: 7},
		{raw: `"7"`, present: true, value: 7},
		{raw: `" 12 "`, present: true, value: 12},
		{raw: `3.0`, present: true, value: 3},
		{raw: `3.5`, present: true, invalid: true},
		{raw: `""`, present: true, empty: true},
		{raw: `"abc"`, present: true, invalid: true},
		{raw: `true`, present: true, invalid: true},
		{raw: `null`},
	}

	for _, tt := range tests {
		var body struct {
			N numberField `json:"n"`
		}
		if err := json.Unmarshal([]byte(`{"n": `+tt.raw+`}`), &body); err != nil {
			t.Fatalf("%s: Unmarshal failed: %v", tt.raw, err)
		}
		f := body.N
		if f.present != tt.present || f.empty != tt.empty || f.invalid != tt.invalid {
			t.Fatalf("%s: got %+v", tt.raw, f)
		}
		if !tt.invalid && !tt.empty && f.value != tt.value {
			t.Fatalf("%s: value = %d, want %d", tt.raw, f.value, tt.value)
		}
	}

	var missing struct {
		N numberField `json:"n"`
	}
	if err := json.Unmarshal([]byte(`{}`), &missing); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if missing.N.present || missing.N.usable() {
		t.Fatalf("absent field reported as %+v", missing.N)
	}
}

func TestTextField(t *testing.T) {
	var body struct {
		A textField `json:"a"`
		B textField `json:"b"`
		C textField `json:"c"`
		D textField `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a": "hello", "b": "", "c": 42}`), &body); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !body.A.present || body.A.value != "hello" || body.A.empty() {
		t.Fatalf("a = %+v", body.A)
	}
	if !body.B.empty() {
		t.Fatalf("b should be empty: %+v", body.B)
	}
	if !body.C.invalid || body.C.empty() {
		t.Fatalf("c should be invalid: %+v", body.C)
	}
	if body.D.present {
		t.Fatalf("d should be absent: %+v", body.D)
	}
}

func TestPageParam(t *testing.T) {
	e := echo.New()
	tests := map[string]int{
		"/questions":          1,
		"/questions?page=":    1,
		"/questions?page=x":   1,
		"/questions?page=4":   4,
		"/questions?page=0":   0,
		"/questions?page=-3":  -3,
		"/questions?page=2.5": 1,
	}

	for target, want := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
		if got := pageParam(c); got != want {
			t.Fatalf("%s: pageParam = %d, want %d", target, got, want)
		}
	}
}

func TestDecodeBody(t *testing.T) {
	e := echo.New()
	decode := func(body string) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c := e.NewContext(req, httptest.NewRecorder())
		var v map[string]any
		return decodeBody(c, &v)
	}

	for _, body := range []string{"", "   ", "null", "[1]", `"text"`, `{"a":`} {
		if err := decode(body); !errors.Is(err, service.ErrBadRequest) {
			t.Fatalf("%q: err = %v, want ErrBadRequest", body, err)
		}
	}
	if err := decode(` {"a": 1} `); err != nil {
		t.Fatalf("valid object rejected: %v", err)
	}
}

func TestIDParam(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("42")
	if id, err := idParam(c, "id"); err != nil || id != 42 {
		t.Fatalf("idParam = (%d, %v), want 42", id, err)
	}

	c.SetParamValues("forty")
	if _, err := idParam(c, "id"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
