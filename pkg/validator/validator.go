package validator

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrNilEventID is returned for the all zero UUID
var ErrNilEventID = stdErrors.New("event id must not be the nil uuid")

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator that knows the event_id tag and reports fields
// by their request name (path, query or json) instead of the Go field name.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(requestName)
	if err := v.RegisterValidation("event_id", validateEventID); err != nil {
		panic(err)
	}
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	var fields validator.ValidationErrors
	if stdErrors.As(err, &fields) {
		return &Error{Fields: fields}
	}
	return err
}

// Error lists the request fields that failed validation
type Error struct {
	Fields validator.ValidationErrors
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, describe(fe))
	}
	return strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error {
	return e.Fields
}

// ParseEventID parses an event id taken from a request
func ParseEventID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid event id %q: %w", raw, err)
	}
	if id == uuid.Nil {
		return uuid.Nil, ErrNilEventID
	}
	return id, nil
}

func validateEventID(fl validator.FieldLevel) bool {
	_, err := ParseEventID(fl.Field().String())
	return err == nil
}

func requestName(f reflect.StructField) string {
	for _, key := range []string{"param", "query", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "event_id":
		return fe.Field() + " must be a non nil event UUID"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
