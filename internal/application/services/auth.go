package services

import (
	"errors"
	"time"

	"user-records-api/internal/application/ports"
	"user-records-api/internal/domain/user"
	"user-records-api/internal/infrastructure/jwt"
)

var ErrFailedToGenerateToken = errors.New("failed to generate token")

const tokenTTL = time.Hour

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(jwtService *jwt.Service) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(u *user.User) (string, error) {
	token, err := as.jwtService.GenerateJWT(u.UUID.String(), string(u.Role), tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
