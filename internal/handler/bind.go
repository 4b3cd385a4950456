package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and validates it.
//   - empty or syntactically broken JSON, or data after the first JSON
//     value, is a bad request (400)
//   - well-formed JSON with wrong types or failing struct tags is a
//     validation error (422)
//   - a body over the size limit surfaces as *http.MaxBytesError (413)
func (s *Server) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	var (
		syntaxErr *json.SyntaxError
		maxErr    *http.MaxBytesError
	)
	switch {
	case err == nil:
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			if errors.As(err, &maxErr) {
				return err
			}
			return badRequestf("malformed JSON body: unexpected data after the JSON object")
		}
	case errors.As(err, &maxErr):
		return err
	case errors.Is(err, io.EOF):
		return badRequestf("request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return badRequestf("malformed JSON body: %v", err)
	default:
		return domain.Validationf("invalid request body: %v", err)
	}

	if err := s.validate.Struct(dst); err != nil {
		return domain.Validationf("%s", validationMessage(err))
	}
	return nil
}

// validationMessage flattens validator errors into one client-facing sentence.
func validationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}

// pathUUID binds the named chi path parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return uuid.Nil, badRequestf("invalid format for parameter %s: %v", name, err)
	}
	return id, nil
}

// pathUUIDs binds several path parameters in order, stopping at the first failure.
func pathUUIDs(r *http.Request, names ...string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(names))
	for i, name := range names {
		id, err := pathUUID(r, name)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// listParams binds the optional skip and limit query parameters.
func listParams(r *http.Request) (domain.ListParams, error) {
	var skip, limit *int
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "skip", q, &skip); err != nil {
		return domain.ListParams{}, badRequestf("invalid format for parameter skip: %v", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return domain.ListParams{}, badRequestf("invalid format for parameter limit: %v", err)
	}
	return domain.NewListParams(skip, limit), nil
}

// queryUUID binds an optional UUID query parameter. It is nil when absent.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	var id *uuid.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &id); err != nil {
		return nil, badRequestf("invalid format for parameter %s: %v", name, err)
	}
	return id, nil
}
