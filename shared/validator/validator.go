package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"tablebook/shared/base64"
	"tablebook/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// enum is implemented by closed string enumerations.
type enum interface {
	Valid() bool
}

func validateEnum(field val.FieldLevel) bool {
	if e, ok := field.Field().Interface().(enum); ok {
		return e.Valid()
	}

	return false
}

// validateMimetypes accepts base64 data URLs whose content type is listed in
// the tag parameter. Plain URLs pass.
func validateMimetypes(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if !base64.IsDataURL(str) {
		return !strings.HasPrefix(str, "data:")
	}

	return slices.Contains(strings.Split(field.Param(), " "), base64.GetContentType(str))
}

// validateMaxFileSize bounds the encoded length in megabytes.
func validateMaxFileSize(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(len(str)) <= maxSizeMB*1024*1024
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	for tag, fn := range map[string]val.Func{
		"enum":        validateEnum,
		"mimetypes":   validateMimetypes,
		"maxfilesize": validateMaxFileSize,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Both decode and
// validation problems come back as 400 failures.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
