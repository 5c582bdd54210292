// Package schema validates authored market content.
//
// Content is decoded with gopkg.in/yaml.v3, which also reads JSON, and
// checked with go-playground/validator struct tags declared on the domain
// types. Decoding type errors and structural violations are merged into a
// single *domain.ValidationError so an editor can fix everything in one pass.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.SchemaValidator = (*Validator)(nil)

// Validator is the yaml.v3 + validator/v10 implementation of driven.SchemaValidator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("finite", isFinite)
	return &Validator{validate: v}
}

// isFinite rejects Inf and NaN, which YAML accepts (.inf, .nan) but JSON
// cannot encode.
func isFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	default:
		return true
	}
}

// Validate decodes data and checks it against the market content schema.
func (v *Validator) Validate(data []byte) (*domain.MarketContent, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, invalid(domain.Violation{Reason: "content is empty"})
	}

	var content domain.MarketContent
	var violations []domain.Violation

	if err := yaml.Unmarshal(data, &content); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return nil, invalid(domain.Violation{Reason: "cannot parse content: " + err.Error()})
		}
		// yaml.v3 keeps decoding past type mismatches and reports them together.
		for _, msg := range typeErr.Errors {
			violations = append(violations, decodeViolation(msg))
		}
	}

	if err := v.validate.Struct(&content); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("validate content: %w", err)
		}
		for _, fe := range fieldErrs {
			violations = append(violations, fieldViolation(fe))
		}
	}

	if len(violations) > 0 {
		return nil, invalid(violations...)
	}

	content.GeneratedAt = ""
	return &content, nil
}

func invalid(violations ...domain.Violation) *domain.ValidationError {
	return &domain.ValidationError{Violations: violations}
}

// decodeViolation turns "line 7: cannot unmarshal ..." into a violation
// located at "line 7".
func decodeViolation(msg string) domain.Violation {
	if strings.HasPrefix(msg, "line ") {
		if loc, reason, ok := strings.Cut(msg, ": "); ok {
			return domain.Violation{Path: loc, Reason: reason}
		}
	}
	return domain.Violation{Reason: msg}
}

// fieldViolation maps a validator field error to a path such as
// "series[0].points" and a readable reason.
func fieldViolation(fe validator.FieldError) domain.Violation {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}
	return domain.Violation{Path: path, Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "url":
		return "must be a valid absolute URL"
	case "finite":
		return "must be a finite number"
	case "unique":
		return fmt.Sprintf("must not contain duplicate %s values", strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
