package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"railbook/shared/constant"
	"railbook/shared/failure"
	"reflect"
	"regexp"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	pnrPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)
)

func registerPNRValidation(fl val.FieldLevel) bool {
	return pnrPattern.MatchString(fl.Field().String())
}

func registerClockValidation(fl val.FieldLevel) bool {
	_, err := time.Parse(constant.ClockFormat, fl.Field().String())

	return err == nil
}

func registerJourneyDateValidation(fl val.FieldLevel) bool {
	_, err := time.Parse(constant.JourneyDateFormat, fl.Field().String())

	return err == nil
}

// registerSelfValidation delegates to a Validate() error method on the field.
func registerSelfValidation(fl val.FieldLevel) bool {
	method := fl.Field().MethodByName("Validate")
	if !method.IsValid() && fl.Field().CanAddr() {
		method = fl.Field().Addr().MethodByName("Validate")
	}

	if !method.IsValid() {
		return false
	}

	result := method.Call([]reflect.Value{})

	return len(result) == 1 && result[0].IsNil()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	validations := map[string]val.Func{
		"self":        registerSelfValidation,
		"pnr":         registerPNRValidation,
		"clock":       registerClockValidation,
		"journeydate": registerJourneyDateValidation,
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
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
