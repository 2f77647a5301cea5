// File: caep/decode.go
package caep

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// decodeInto decodes the final merged values into the target struct. Keys
// match the `caep` tag or the snake_cased field name, the same mapping the
// classifier derives names from.
func decodeInto(values map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "caep",
		WeaklyTypedInput: true,
		MatchName: func(mapKey, fieldName string) bool {
			return strings.EqualFold(mapKey, fieldName) || mapKey == toSnake(fieldName)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validateFinal runs struct validation on the populated target and maps
// failures back to command-line flags, one entry per invalid field.
func validateFinal(target any, fields []*Field) *ValidationError {
	err := structValidator.Struct(target)
	if err == nil {
		return nil
	}

	byGoName := make(map[string]*Field, len(fields))
	for _, f := range fields {
		byGoName[f.GoName] = f
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []InvalidField{{Message: err.Error()}}}
	}

	invalid := make([]InvalidField, 0, len(verrs))
	for _, fe := range verrs {
		flag := strings.ReplaceAll(toSnake(fe.StructField()), "_", "-")
		if f, ok := byGoName[fe.StructField()]; ok {
			flag = f.Flag
		}
		invalid = append(invalid, InvalidField{Flag: flag, Message: validationMessage(fe)})
	}
	return &ValidationError{Fields: invalid}
}

// validationMessage renders a single validation failure in user terms.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing required value"
	case "min":
		return fmt.Sprintf("value below minimum %s", fe.Param())
	case "max":
		return fmt.Sprintf("value above maximum %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("value must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
