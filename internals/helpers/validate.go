package helper

import (
	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// FieldErrors flattens validator.ValidationErrors into the per-field map
// used by JsonValidationError.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email"
		case "min":
			msg = "must be at least " + fe.Param()
		case "max":
			msg = "must be at most " + fe.Param()
		case "oneof":
			msg = "must be one of " + fe.Param()
		case "gt":
			msg = "must be greater than " + fe.Param()
		default:
			msg = "is invalid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
