package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected field, shaped for the JSON response.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErrors is returned by ParseCartItem when any field is rejected.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseCartItem is the strict counterpart of SanitizeCartItem: the same
// coercions apply, but a value that would have been silently replaced by a
// default is reported instead.
func ParseCartItem(body map[string]interface{}) (CartItem, error) {
	var fieldErrs ValidationErrors

	if raw, present := body["productName"]; present && raw != nil {
		if _, ok := raw.(string); !ok {
			fieldErrs = append(fieldErrs, FieldError{Field: "productName", Error: "must be a string"})
		}
	}

	for _, field := range []string{"quantity", "price"} {
		if _, ok := toNumber(body[field]); !ok {
			fieldErrs = append(fieldErrs, FieldError{Field: field, Error: "must be a number"})
		}
	}

	if raw := body["date"]; isTruthy(raw) {
		if _, ok := toDate(raw); !ok {
			fieldErrs = append(fieldErrs, FieldError{Field: "date", Error: "must be a valid date"})
		}
	}

	item := SanitizeCartItem(body)

	if err := validate.Struct(item); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return CartItem{}, err
		}
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Error: describe(fe)})
		}
	}

	if len(fieldErrs) > 0 {
		return CartItem{}, fieldErrs
	}
	return item, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

func isTruthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	}
	return true
}
