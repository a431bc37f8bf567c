package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-foodmap/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	tagNotBlank = "notblank"
	tagEmail    = "email"
	tagGeoPoint = "geopoint"
)

// CredentialsValidator validates registration and login payloads.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator returns a [Validator] for [models.RegisterRequest]
// and [models.LoginRequest] values (or pointers to them).
func NewCredentialsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(tagNotBlank, nonstandard.NotBlank)
	v.RegisterStructValidation(validateLocation, models.Location{})

	return &CredentialsValidator{validate: v}
}

func (v *CredentialsValidator) Validate(ctx context.Context, payload any) models.ValidationResult {
	switch value := payload.(type) {
	case models.RegisterRequest:
		return v.validateStruct(ctx, value)
	case *models.RegisterRequest:
		if value == nil {
			return unsupported()
		}
		return v.validateStruct(ctx, *value)

	case models.LoginRequest:
		return v.validateStruct(ctx, value)
	case *models.LoginRequest:
		if value == nil {
			return unsupported()
		}
		return v.validateStruct(ctx, *value)

	default:
		return unsupported()
	}
}

func (v *CredentialsValidator) validateStruct(ctx context.Context, s any) models.ValidationResult {
	err := v.validate.StructCtx(ctx, s)
	if err == nil {
		return models.Valid()
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return unsupported()
	}

	result := models.ValidationResult{Errors: models.FieldErrors{}}
	for _, fe := range fieldErrs {
		key, msg := describe(fe)
		// first failing rule per field wins
		if _, exists := result.Errors[key]; !exists {
			result.Errors[key] = msg
		}
	}
	return result
}

// describe maps a validator failure to the field key and client message.
func describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case tagGeoPoint:
		return FieldLocation, MsgLocationInvalid
	case tagEmail:
		return fe.Field(), MsgEmailInvalid
	default:
		return fe.Field(), requiredMessage(fe.Field())
	}
}

// validateLocation is the struct-level rule for [models.Location]: a
// GeoJSON Point with in-range [longitude, latitude].
func validateLocation(sl validator.StructLevel) {
	loc, ok := sl.Current().Interface().(models.Location)
	if !ok || !loc.IsValidPoint() {
		sl.ReportError(sl.Current().Interface(), FieldLocation, "Location", tagGeoPoint, "")
	}
}

func unsupported() models.ValidationResult {
	return models.ValidationResult{
		Errors: models.FieldErrors{FieldPayload: MsgUnsupportedPayload},
	}
}
