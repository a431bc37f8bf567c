package service

import (
	"context"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/validators"
	"github.com/MKhiriev/go-foodmap/models"
)

// AuthValidationService rejects malformed register and login payloads
// before they reach the wrapped AuthService, so invalid input never touches
// the store or the hasher.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validator,
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Token{}, err
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Token{}, err
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

func (v *AuthValidationService) validate(ctx context.Context, payload any) error {
	result := v.validator.Validate(ctx, payload)
	if result.IsValid {
		return nil
	}

	fields := make([]string, 0, len(result.Errors))
	for field := range result.Errors {
		fields = append(fields, field)
	}
	logger.FromContext(ctx).Debug().Strs("fields", fields).Msg("payload rejected by validation")

	return NewFieldErrors(ErrInvalidDataProvided, result.Errors)
}
