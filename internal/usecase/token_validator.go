package usecase

import (
	"workshop-booking/internal/domain/user"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUnknownRole = errs.New("token carries an unknown role")

// Caller is the identity a request acts as.
type Caller struct {
	UserID uuid.UUID
	Role   user.Role
}

// TokenValidator resolves a bearer token into the caller identity used by the booking commands.
type TokenValidator interface {
	ValidateToken(tokenString string) (Caller, error)
}

type jwtTokenValidator struct {
	verifier *jwt.Service
}

func NewTokenValidator(verifier *jwt.Service) TokenValidator {
	return &jwtTokenValidator{verifier: verifier}
}

func (v *jwtTokenValidator) ValidateToken(tokenString string) (Caller, error) {
	claims, err := v.verifier.ValidateToken(tokenString)
	if err != nil {
		return Caller{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Caller{}, errs.Mark(err, ErrUnknownRole)
	}
	return Caller{UserID: claims.UserID, Role: role}, nil
}
