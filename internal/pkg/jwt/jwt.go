package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies bearer tokens minted by the identity provider and issues
// short-lived access tokens for internal tooling and tests. Registration,
// login and password flows live outside this service.
type Service interface {
	GenerateAccessToken(userID string, email string, companyID *string, role employee.Role, expiresIn time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, companyID *string, role employee.Role, expiresIn time.Duration) (string, int64, error) {
	expiresAt := time.Now().Add(expiresIn).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"email":      email,
		"company_id": nil,
		"role":       string(role),
		"type":       "access",
		"exp":        expiresAt,
	}
	if companyID != nil {
		claims["company_id"] = *companyID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// UserID extracts the user_id claim from the request context.
func UserID(ctx context.Context) (string, error) {
	return claimString(ctx, "user_id")
}

// CompanyID extracts the company_id claim from the request context.
func CompanyID(ctx context.Context) (string, error) {
	return claimString(ctx, "company_id")
}

// RoleFromContext extracts the role claim from the request context.
func RoleFromContext(ctx context.Context) (employee.Role, error) {
	role, err := claimString(ctx, "role")
	if err != nil {
		return "", err
	}
	return employee.Role(role), nil
}

func claimString(ctx context.Context, key string) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s not found in claims", key)
	}
	return value, nil
}
