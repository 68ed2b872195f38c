// Package linkcheck validates user-supplied thread links before anything is sent to the backend.
package linkcheck

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/reddit-wordcloud/internal/types"
)

// InvalidLinkMessage is the user-displayable message for a rejected link.
const InvalidLinkMessage = "Link must be valid."

// linkRules is applied to raw input. "url" requires a scheme, "threadlink" additionally requires a host.
const linkRules = "required,url,threadlink"

// Kind classifies a validation failure.
type Kind string

const (
	// NotAURL means the input is not a well-formed absolute URL.
	NotAURL Kind = "not_a_url"
)

// ErrNotAURL matches any ValidationError of kind NotAURL via errors.Is.
var ErrNotAURL = errors.New("not a url")

// ValidationError is returned when input fails link validation.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrNotAURL && e.Kind == NotAURL
}

// Validator checks links and link-carrying structs.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the threadlink rule registered.
func New() *Validator {
	v := validator.New()
	// Report json names ("link") rather than Go field names ("Link").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("threadlink", validateThreadLink); err != nil {
		panic(fmt.Sprintf("linkcheck: register threadlink rule: %v", err))
	}
	return &Validator{validate: v}
}

// Validate trims raw and accepts it only if it is an absolute URL with a scheme and a host.
// Any scheme the URL grammar recognizes is accepted.
func (v *Validator) Validate(raw string) (types.ThreadLink, error) {
	trimmed := strings.TrimSpace(raw)
	if err := v.validate.Var(trimmed, linkRules); err != nil {
		return "", notAURL("link", err)
	}
	return types.ThreadLink(trimmed), nil
}

// Struct validates a struct using its validate tags.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return notAURL(fieldErrs[0].Field(), err)
	}
	return err
}

func notAURL(field string, cause error) *ValidationError {
	return &ValidationError{
		Kind:    NotAURL,
		Field:   field,
		Message: InvalidLinkMessage,
		Cause:   cause,
	}
}

// validateThreadLink mirrors the backend's ValidateLink rule and also demands a host,
// so opaque forms like "mailto:x@y.z" are rejected.
func validateThreadLink(fl validator.FieldLevel) bool {
	u, err := url.ParseRequestURI(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

var defaultValidator = New()

// Validate checks raw with the package default Validator.
func Validate(raw string) (types.ThreadLink, error) {
	return defaultValidator.Validate(raw)
}

// Struct validates s with the package default Validator.
func Struct(s any) error {
	return defaultValidator.Struct(s)
}
