package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names of [models.TravelStoryRequest] used to validate a subset of
// its rules. Names are Go struct field names, not JSON names.
const (
	FieldTitle           = "Title"
	FieldStory           = "Story"
	FieldVisitedLocation = "VisitedLocation"
	FieldImageURL        = "ImageURL"
	FieldVisitedDate     = "VisitedDate"
)

// StoryEditFields is the field subset checked when a story is edited: every
// field of a new story except the image URL.
var StoryEditFields = []string{FieldTitle, FieldStory, FieldVisitedLocation, FieldVisitedDate}

// RequestValidator implements [Validator] on top of go-playground/validator
// using the `validate` tags of request models. Violations are reported with
// the JSON names of the offending fields.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return strings.ToLower(field.Name[:1]) + field.Name[1:]
		default:
			return name
		}
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields are checked.
//
// Rule violations are returned wrapped in [ErrInvalidInput] with one
// message per field, e.g. "invalid input: email must be a valid e-mail address".
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if err := checkFields(obj, fields); err != nil {
		return err
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		messages := make([]string, 0, len(violations))
		for _, violation := range violations {
			messages = append(messages, describe(violation))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(messages, "; "))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func checkFields(obj any, fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	for _, field := range fields {
		if _, ok := t.FieldByName(field); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t.Name(), field)
		}
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid e-mail address"
	default:
		return fe.Field() + " is invalid"
	}
}
