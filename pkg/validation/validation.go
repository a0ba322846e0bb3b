// Package validation turns gin binding failures into per-field error
// descriptions suitable for a 422 response body.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field. Loc is the path of the field
// inside the request, starting with "body".
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ErrTrailingData marks a body that holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level JSON value")

var setupOnce sync.Once

// Setup makes the gin validator report JSON field names instead of Go
// struct field names. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// Describe converts a binding error into field errors. It never returns an
// empty slice for a non-nil error.
func Describe(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fromFieldError(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.Kind()),
			Type: "type_error." + typeErr.Type.Kind().String(),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []FieldError{{
			Loc:  []string{"body"},
			Msg:  fmt.Sprintf("invalid JSON at offset %d: %s", syntaxErr.Offset, syntaxErr.Error()),
			Type: "value_error.jsondecode",
		}}
	}

	if errors.Is(err, ErrTrailingData) {
		return []FieldError{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON: " + err.Error(),
			Type: "value_error.jsondecode",
		}}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []FieldError{{
			Loc:  []string{"body"},
			Msg:  "request body is empty or truncated",
			Type: "value_error.missing",
		}}
	}

	return []FieldError{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
}

func fromFieldError(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	case "email":
		return FieldError{Loc: loc, Msg: "value is not a valid email address", Type: "value_error.email"}
	case "max":
		return FieldError{Loc: loc, Msg: fmt.Sprintf("ensure this value has at most %s characters", fe.Param()), Type: "value_error.any_str.max_length"}
	case "min":
		return FieldError{Loc: loc, Msg: fmt.Sprintf("ensure this value has at least %s characters", fe.Param()), Type: "value_error.any_str.min_length"}
	}
	return FieldError{Loc: loc, Msg: fmt.Sprintf("failed on the %q rule", fe.Tag()), Type: "value_error." + fe.Tag()}
}
