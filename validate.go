package docsite

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	reIconSizes = regexp.MustCompile(`^\d+x\d+( \d+x\d+)*$`)
	reMediaType = regexp.MustCompile(`^[a-z]+/[a-z0-9][a-z0-9.+-]*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their configuration key, not the Go name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "navpath", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), "/")
	})
	mustRegister(v, "iconsizes", func(fl validator.FieldLevel) bool {
		return reIconSizes.MatchString(fl.Field().String())
	})
	mustRegister(v, "mimetype", func(fl validator.FieldLevel) bool {
		return reMediaType.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("docsite: register %s validation: %v", tag, err))
	}
}

// Validate checks site against every configuration invariant and returns
// a *ValidationError listing all violations, or nil.
func Validate(site SiteConfiguration) error {
	var violations []Violation

	vs, err := structViolations(&site, "")
	if err != nil {
		return err
	}
	violations = append(violations, vs...)

	if site.PWA.Enabled {
		vs, err := structViolations(&site.PWA.Manifest, "pwa.manifest")
		if err != nil {
			return err
		}
		violations = append(violations, vs...)
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func structViolations(s interface{}, prefix string) ([]Violation, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("docsite: validate: %w", err)
	}
	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{
			Field:      fieldPath(prefix, fe.Namespace()),
			Constraint: describe(fe),
		})
	}
	return out, nil
}

// fieldPath drops the root type name from a validator namespace and
// prepends prefix.
func fieldPath(prefix, namespace string) string {
	_, rest, ok := strings.Cut(namespace, ".")
	if !ok {
		rest = namespace
	}
	if prefix == "" {
		return rest
	}
	return prefix + "." + rest
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		field, value, _ := strings.Cut(fe.Param(), " ")
		return fmt.Sprintf("is required when %s is %s", lowerFirst(field), value)
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	case "http_url":
		return "must be an absolute http(s) URL"
	case "navpath":
		return `must be a path starting with "/"`
	case "min":
		return "must have at least " + fe.Param() + " entries"
	case "iconsizes":
		return `must be "<W>x<H>"`
	case "mimetype":
		return "must be a MIME type"
	default:
		return "fails " + fe.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
