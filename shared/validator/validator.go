package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"hotelclient/shared/failure"
	"io"
	"reflect"
	"strings"

	"cloud.google.com/go/civil"
	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// civilDateValue lets tags such as required and omitempty see an unset civil.Date as empty.
func civilDateValue(field reflect.Value) interface{} {
	date, ok := field.Interface().(civil.Date)
	if !ok || date.IsZero() {
		return ""
	}

	return date.String()
}

func registerCivilDateValidation(field val.FieldLevel) bool {
	switch value := field.Field().Interface().(type) {
	case civil.Date:
		return value.IsValid()
	case string:
		_, err := civil.ParseDate(value)

		return err == nil
	default:
		return false
	}
}

// wireName reports fields by their JSON key so messages match what the caller sent.
func wireName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(wireName)
	validate.RegisterCustomTypeFunc(civilDateValue, civil.Date{})

	err := validate.RegisterValidation("civildate", registerCivilDateValidation)
	if err != nil {
		panic(err)
	}
}

// Decode reads exactly one JSON document into data. Field conversion failures keep their
// *failure.MalformedFieldError type; anything else, trailing input included, becomes a
// bad request.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		var malformed *failure.MalformedFieldError
		if errors.As(err, &malformed) {
			return malformed
		}

		if errors.Is(err, io.EOF) {
			return failure.EmptyPayload
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if _, err = decoder.Token(); !errors.Is(err, io.EOF) {
		return failure.BadRequestFromString("request body must contain a single JSON document") //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
